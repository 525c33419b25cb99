package offday

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "off-day not found")
	ErrAlreadyExists  = apperror.New(http.StatusConflict, "an off-day already exists on this date")
	ErrInvalidPattern = apperror.New(http.StatusBadRequest, "recurring pattern must be a valid RRULE")
)

// OffDay is a vendor-declared day of unavailability. A recurring off-day
// anchors at Date and repeats per RecurringPattern; the availability
// aggregation expands it onto concrete dates at read time.
type OffDay struct {
	ID               string
	VendorID         string
	Date             availability.DateKey
	Reason           string
	IsRecurring      bool
	RecurringPattern string
	CreatedAt        time.Time
}
