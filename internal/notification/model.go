package notification

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound     = apperror.New(http.StatusNotFound, "notification not found")
	ErrEmptyMessage = apperror.New(http.StatusBadRequest, "message is required")
)

// Kind tags what a notification is about so clients can route taps.
type Kind string

const (
	KindBookingRequested Kind = "booking_requested"
	KindBookingConfirmed Kind = "booking_confirmed"
	KindBookingCancelled Kind = "booking_cancelled"
	KindSystem           Kind = "system"
)

// Notification is a per-user in-app message.
type Notification struct {
	ID        string
	UserID    string
	Kind      Kind
	Message   string
	BookingID *string
	IsRead    bool
	CreatedAt time.Time
}

// Filter defines parameters for listing a user's notifications.
type Filter struct {
	UserID     string
	UnreadOnly bool
	Page       int
	PageSize   int
}
