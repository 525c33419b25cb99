package http

import (
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/request"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type CreateVendorRequest struct {
	Name              string   `json:"name" binding:"required,max=200"`
	Category          string   `json:"category" binding:"required"`
	Description       string   `json:"description" binding:"omitempty,max=2000"`
	City              string   `json:"city" binding:"omitempty,max=100"`
	Latitude          *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude         *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone          string   `json:"timezone" binding:"omitempty,max=64"`
	MaxBookingsPerDay int      `json:"max_bookings_per_day" binding:"omitempty,min=1"`
}

type UpdateVendorRequest struct {
	Name              *string  `json:"name"`
	Category          *string  `json:"category"`
	Description       *string  `json:"description"`
	City              *string  `json:"city"`
	Latitude          *float64 `json:"latitude" binding:"omitempty,min=-90,max=90"`
	Longitude         *float64 `json:"longitude" binding:"omitempty,min=-180,max=180"`
	Timezone          *string  `json:"timezone"`
	MaxBookingsPerDay *int     `json:"max_bookings_per_day" binding:"omitempty,min=1"`
}

type ListVendorsRequest struct {
	request.ListParams
	Category string `form:"category" binding:"omitempty"`
	City     string `form:"city" binding:"omitempty"`
	Verified *bool  `form:"verified"`
}

type VendorResponse struct {
	ID                string    `json:"id"`
	Name              string    `json:"name"`
	Category          string    `json:"category"`
	Description       string    `json:"description,omitempty"`
	City              string    `json:"city,omitempty"`
	Latitude          *float64  `json:"latitude,omitempty"`
	Longitude         *float64  `json:"longitude,omitempty"`
	Timezone          string    `json:"timezone"`
	MaxBookingsPerDay int       `json:"max_bookings_per_day"`
	IsVerified        bool      `json:"is_verified"`
	CreatedAt         time.Time `json:"created_at"`
}

func NewVendorResponse(v *vendors.Vendor) VendorResponse {
	return VendorResponse{
		ID:                v.ID,
		Name:              v.Name,
		Category:          v.Category,
		Description:       v.Description,
		City:              v.City,
		Latitude:          v.Latitude,
		Longitude:         v.Longitude,
		Timezone:          v.Timezone,
		MaxBookingsPerDay: v.MaxBookingsPerDay,
		IsVerified:        v.IsVerified,
		CreatedAt:         v.CreatedAt,
	}
}

// VendorTag holds minimal vendor info embedded in other responses.
type VendorTag struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}
