package listing

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound      = apperror.New(http.StatusNotFound, "listing not found")
	ErrEmptyName     = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidVendor = apperror.New(http.StatusBadRequest, "invalid vendor_id")
	ErrInvalidPrice  = apperror.New(http.StatusBadRequest, "price must not be negative")
)

// Listing is one bookable service offering of a vendor (e.g. "Full-day
// photography package"). Bookings may be scoped to a listing, which
// narrows capacity accounting from vendor-wide to per-listing.
type Listing struct {
	ID          string
	VendorID    string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
	IsActive    bool
	CreatedAt   time.Time
}

// Filter defines parameters for listing service offerings.
type Filter struct {
	VendorID   string
	ActiveOnly bool
	Page       int
	PageSize   int
}
