package http

import (
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/request"
)

type CreateListingRequest struct {
	VendorID    string `json:"vendor_id" binding:"required,uuid"`
	Name        string `json:"name" binding:"required,max=200"`
	Description string `json:"description" binding:"omitempty,max=2000"`
	PriceCents  int64  `json:"price_cents" binding:"omitempty,min=0"`
	Currency    string `json:"currency" binding:"omitempty,len=3"`
}

type UpdateListingRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	PriceCents  *int64  `json:"price_cents" binding:"omitempty,min=0"`
	IsActive    *bool   `json:"is_active"`
}

type ListListingsRequest struct {
	request.ListParams
	VendorID   string `form:"vendor_id" binding:"omitempty,uuid"`
	ActiveOnly bool   `form:"active_only"`
}

type ListingResponse struct {
	ID          string    `json:"id"`
	VendorID    string    `json:"vendor_id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PriceCents  int64     `json:"price_cents"`
	Currency    string    `json:"currency"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
}

func NewListingResponse(l *listing.Listing) ListingResponse {
	return ListingResponse{
		ID:          l.ID,
		VendorID:    l.VendorID,
		Name:        l.Name,
		Description: l.Description,
		PriceCents:  l.PriceCents,
		Currency:    l.Currency,
		IsActive:    l.IsActive,
		CreatedAt:   l.CreatedAt,
	}
}
