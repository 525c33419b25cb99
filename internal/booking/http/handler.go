package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/booking"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service       booking.Service
	vendorService vendors.Service
}

func NewHandler(service booking.Service, vendorService vendors.Service) *Handler {
	return &Handler{
		service:       service,
		vendorService: vendorService,
	}
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateBookingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	b, err := h.service.Create(c.Request.Context(), booking.CreateRequest{
		ClientUserID: auth.GetUserID(c),
		VendorID:     body.VendorID,
		ListingID:    body.ListingID,
		EventDate:    body.EventDate,
		Note:         body.Note,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewBookingResponse(b))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.canView(c, b) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(b))
}

// List returns the caller's own bookings: clients see bookings they
// placed, vendors see bookings on their profile, admins see everything
// matching the filter.
func (h *Handler) List(c *gin.Context) {
	var req ListBookingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	filter := booking.Filter{
		Status:   availability.BookingStatus(req.Status),
		From:     availability.DateKey(req.From),
		To:       availability.DateKey(req.To),
		Page:     req.Page,
		PageSize: req.PageSize,
	}

	switch auth.GetUserRole(c) {
	case auth.RoleAdmin:
		filter.VendorID = req.VendorID
	case auth.RoleVendor:
		v, err := h.vendorService.GetByOwner(c.Request.Context(), auth.GetUserID(c))
		if err != nil {
			response.Error(c, err)
			return
		}
		filter.VendorID = v.ID
	default:
		filter.ClientUserID = auth.GetUserID(c)
	}

	bookings, total, err := h.service.List(c.Request.Context(), filter)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]BookingResponse, len(bookings))
	for i, b := range bookings {
		items[i] = NewBookingResponse(b)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

// UpdateStatus advances the booking lifecycle. Clients may only cancel
// their own bookings; vendors drive the rest of the lifecycle for
// bookings on their profile.
func (h *Handler) UpdateStatus(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	var body UpdateStatusRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	status := availability.BookingStatus(body.Status)

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.canTransition(c, b, status) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	updated, err := h.service.UpdateStatus(c.Request.Context(), id, status)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewBookingResponse(updated))
}

func (h *Handler) canView(c *gin.Context, b *booking.Booking) bool {
	switch auth.GetUserRole(c) {
	case auth.RoleAdmin:
		return true
	case auth.RoleVendor:
		return h.ownsVendor(c, b.VendorID)
	default:
		return b.ClientUserID == auth.GetUserID(c)
	}
}

func (h *Handler) canTransition(c *gin.Context, b *booking.Booking, status availability.BookingStatus) bool {
	switch auth.GetUserRole(c) {
	case auth.RoleAdmin:
		return true
	case auth.RoleVendor:
		return h.ownsVendor(c, b.VendorID)
	default:
		return b.ClientUserID == auth.GetUserID(c) && status == availability.StatusCancelled
	}
}

func (h *Handler) ownsVendor(c *gin.Context, vendorID string) bool {
	v, err := h.vendorService.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		return false
	}
	return v.OwnerUserID == auth.GetUserID(c)
}
