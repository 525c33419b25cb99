package vendors

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound        = apperror.New(http.StatusNotFound, "vendor not found")
	ErrEmptyName       = apperror.New(http.StatusBadRequest, "name cannot be empty")
	ErrInvalidCategory = apperror.New(http.StatusBadRequest, "invalid vendor category")
	ErrInvalidTimezone = apperror.New(http.StatusBadRequest, "invalid IANA timezone")
	ErrInvalidCapacity = apperror.New(http.StatusBadRequest, "max bookings per day must be at least 1")
	ErrAlreadyExists   = apperror.New(http.StatusConflict, "user already has a vendor profile")
)

// Categories a vendor can list under.
var ValidCategories = []string{
	"photography", "videography", "catering", "venue",
	"florist", "music", "beauty", "transport", "planning", "other",
}

// Vendor is a business profile on the marketplace. Timezone is the
// reference zone for all of the vendor's calendar dates;
// MaxBookingsPerDay is the daily capacity availability is computed
// against.
type Vendor struct {
	ID                string
	OwnerUserID       string
	Name              string
	Category          string
	Description       string
	City              string
	Latitude          *float64
	Longitude         *float64
	Timezone          string
	MaxBookingsPerDay int
	IsVerified        bool
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

// Filter defines parameters for listing vendors.
type Filter struct {
	Category string
	City     string
	Verified *bool
	Page     int
	PageSize int
}
