package availability

import (
	"net/http"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrInvalidRange    = apperror.New(http.StatusBadRequest, "end date must not be before start date")
	ErrInvalidDateKey  = apperror.New(http.StatusBadRequest, "date must be in YYYY-MM-DD format")
	ErrInvalidStatus   = apperror.New(http.StatusBadRequest, "unknown booking status")
	ErrVendorRequired  = apperror.New(http.StatusBadRequest, "vendor id is required")
	ErrMonthOutOfRange = apperror.New(http.StatusBadRequest, "month must be between 1 and 12")
)

// BookingStatus is the lifecycle state of a booking as seen by the
// availability computation. Only a subset of states occupies capacity.
type BookingStatus string

const (
	StatusPending    BookingStatus = "pending"
	StatusConfirmed  BookingStatus = "confirmed"
	StatusInProgress BookingStatus = "in_progress"
	StatusCompleted  BookingStatus = "completed"
	StatusCancelled  BookingStatus = "cancelled"
	StatusRefunded   BookingStatus = "refunded"
)

// ValidBookingStatuses enumerates every status accepted on the wire.
var ValidBookingStatuses = []BookingStatus{
	StatusPending, StatusConfirmed, StatusInProgress,
	StatusCompleted, StatusCancelled, StatusRefunded,
}

// DefaultOccupying is the set of statuses that count against a vendor's
// daily capacity. Pending requests deliberately do not occupy capacity so
// an unanswered request never blocks other clients from seeing the date
// as available.
func DefaultOccupying() map[BookingStatus]bool {
	return map[BookingStatus]bool{
		StatusConfirmed:  true,
		StatusInProgress: true,
	}
}

// BookingRecord is one booking occupying (or not) a vendor's day.
// ClientName and ServiceName are display-only.
type BookingRecord struct {
	VendorID    string
	ServiceID   string // empty = not scoped to a specific service listing
	EventDate   DateKey
	Status      BookingStatus
	ClientName  string
	ServiceName string
}

// OffDayRecord is a vendor-declared day of unavailability. Recurring
// records carry an RRULE fragment (e.g. "FREQ=WEEKLY") that is expanded
// onto concrete dates before aggregation.
type OffDayRecord struct {
	ID               string
	VendorID         string
	Date             DateKey
	Reason           string
	IsRecurring      bool
	RecurringPattern string
}

// DayStatus is the derived availability state of a single day.
type DayStatus string

const (
	DayAvailable       DayStatus = "available"
	DayPartiallyBooked DayStatus = "partially_booked"
	DayFullyBooked     DayStatus = "fully_booked"
	DayOff             DayStatus = "off_day"
)

// DayAvailability is the aggregation output for one date. It is a pure
// computation result: recomputed on every load, never persisted.
type DayAvailability struct {
	Date              DateKey
	IsAvailable       bool
	CurrentBookings   int
	MaxBookingsPerDay int
	Status            DayStatus
	Reason            string
}
