package http

import (
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/offday"
)

type SetOffDayRequest struct {
	VendorID         string `json:"vendor_id" binding:"required,uuid"`
	Date             string `json:"date" binding:"required"`
	Reason           string `json:"reason" binding:"omitempty,max=500"`
	IsRecurring      bool   `json:"is_recurring"`
	RecurringPattern string `json:"recurring_pattern" binding:"omitempty,max=200"`
}

type OffDayResponse struct {
	ID               string    `json:"id"`
	VendorID         string    `json:"vendor_id"`
	Date             string    `json:"date"`
	Reason           string    `json:"reason,omitempty"`
	IsRecurring      bool      `json:"is_recurring"`
	RecurringPattern string    `json:"recurring_pattern,omitempty"`
	CreatedAt        time.Time `json:"created_at"`
}

func NewOffDayResponse(o *offday.OffDay) OffDayResponse {
	return OffDayResponse{
		ID:               o.ID,
		VendorID:         o.VendorID,
		Date:             string(o.Date),
		Reason:           o.Reason,
		IsRecurring:      o.IsRecurring,
		RecurringPattern: o.RecurringPattern,
		CreatedAt:        o.CreatedAt,
	}
}
