package http

import (
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/booking"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/request"
)

type CreateBookingRequest struct {
	VendorID  string  `json:"vendor_id" binding:"required,uuid"`
	ListingID *string `json:"listing_id" binding:"omitempty,uuid"`
	EventDate string  `json:"event_date" binding:"required"`
	Note      string  `json:"note" binding:"omitempty,max=2000"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type ListBookingsRequest struct {
	request.ListParams
	VendorID string `form:"vendor_id" binding:"omitempty,uuid"`
	Status   string `form:"status"`
	From     string `form:"from"`
	To       string `form:"to"`
}

type BookingResponse struct {
	ID           string    `json:"id"`
	ClientUserID string    `json:"client_user_id"`
	VendorID     string    `json:"vendor_id"`
	ListingID    *string   `json:"listing_id,omitempty"`
	EventDate    string    `json:"event_date"`
	Status       string    `json:"status"`
	Note         string    `json:"note,omitempty"`
	PriceCents   int64     `json:"price_cents"`
	Currency     string    `json:"currency,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewBookingResponse(b *booking.Booking) BookingResponse {
	return BookingResponse{
		ID:           b.ID,
		ClientUserID: b.ClientUserID,
		VendorID:     b.VendorID,
		ListingID:    b.ListingID,
		EventDate:    string(b.EventDate),
		Status:       string(b.Status),
		Note:         b.Note,
		PriceCents:   b.PriceCents,
		Currency:     b.Currency,
		CreatedAt:    b.CreatedAt,
		UpdatedAt:    b.UpdatedAt,
	}
}
