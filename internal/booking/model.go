package booking

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound          = apperror.New(http.StatusNotFound, "booking not found")
	ErrDateUnavailable   = apperror.New(http.StatusConflict, "the requested date is not available")
	ErrPastDate          = apperror.New(http.StatusBadRequest, "event date must not be in the past")
	ErrInvalidTransition = apperror.New(http.StatusConflict, "booking status transition not allowed")
	ErrInvalidStatus     = apperror.New(http.StatusBadRequest, "unknown booking status")
	ErrListingMismatch   = apperror.New(http.StatusBadRequest, "listing does not belong to the vendor")
)

// Booking is a client's reservation of a vendor for one event date.
// Status follows the lifecycle defined in the availability package; only
// occupying statuses count against the vendor's daily capacity.
type Booking struct {
	ID           string
	ClientUserID string
	VendorID     string
	ListingID    *string
	EventDate    availability.DateKey
	Status       availability.BookingStatus
	Note         string
	PriceCents   int64
	Currency     string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// allowedTransitions is the full status machine. Cancelled and refunded
// are terminal.
var allowedTransitions = map[availability.BookingStatus][]availability.BookingStatus{
	availability.StatusPending:    {availability.StatusConfirmed, availability.StatusCancelled},
	availability.StatusConfirmed:  {availability.StatusInProgress, availability.StatusCancelled},
	availability.StatusInProgress: {availability.StatusCompleted, availability.StatusCancelled},
	availability.StatusCompleted:  {availability.StatusRefunded},
}

// CanTransition reports whether a booking may move from one status to
// another.
func CanTransition(from, to availability.BookingStatus) bool {
	for _, next := range allowedTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Filter narrows a booking listing.
type Filter struct {
	VendorID     string
	ClientUserID string
	Status       availability.BookingStatus
	From         availability.DateKey
	To           availability.DateKey
	Page         int
	PageSize     int
}
