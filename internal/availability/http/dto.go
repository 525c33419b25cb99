package http

import (
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
)

type MonthQuery struct {
	Month     string `form:"month" binding:"omitempty,len=7"` // YYYY-MM
	ServiceID string `form:"service_id" binding:"omitempty,uuid"`
	Selected  string `form:"selected" binding:"omitempty,len=10"` // YYYY-MM-DD
}

// CellResponse merges the grid cell, the aggregated day and the render
// decision for one date.
type CellResponse struct {
	Date            string `json:"date"`
	InMonth         bool   `json:"in_month"`
	IsToday         bool   `json:"is_today"`
	IsAvailable     bool   `json:"is_available"`
	CurrentBookings int    `json:"current_bookings"`
	MaxBookings     int    `json:"max_bookings_per_day"`
	Status          string `json:"status"`
	Reason          string `json:"reason,omitempty"`
	Selectable      bool   `json:"selectable"`
	Label           string `json:"label"`
	Category        string `json:"category"`
}

type MonthResponse struct {
	VendorID string         `json:"vendor_id"`
	Year     int            `json:"year"`
	Month    int            `json:"month"`
	Degraded bool           `json:"degraded"`
	Days     []CellResponse `json:"days"`
}

func newCellResponse(cell availability.GridDay, day *availability.DayAvailability, decision availability.DateDecision) CellResponse {
	resp := CellResponse{
		Date:       string(cell.Date),
		InMonth:    cell.InMonth,
		IsToday:    cell.IsToday,
		Selectable: decision.Selectable,
		Label:      decision.Label,
		Category:   string(decision.Category),
	}
	if day != nil {
		resp.IsAvailable = day.IsAvailable
		resp.CurrentBookings = day.CurrentBookings
		resp.MaxBookings = day.MaxBookingsPerDay
		resp.Status = string(day.Status)
		resp.Reason = day.Reason
	}
	return resp
}
