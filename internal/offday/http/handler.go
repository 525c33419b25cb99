package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/offday"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service       offday.Service
	vendorService vendors.Service
}

func NewHandler(service offday.Service, vendorService vendors.Service) *Handler {
	return &Handler{
		service:       service,
		vendorService: vendorService,
	}
}

func (h *Handler) Set(c *gin.Context) {
	var body SetOffDayRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.ownsVendor(c, body.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	o, err := h.service.Set(c.Request.Context(), offday.SetRequest{
		VendorID:         body.VendorID,
		Date:             body.Date,
		Reason:           body.Reason,
		IsRecurring:      body.IsRecurring,
		RecurringPattern: body.RecurringPattern,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewOffDayResponse(o))
}

func (h *Handler) ListByVendor(c *gin.Context) {
	vendorID := c.Param("id")
	if _, err := uuid.Parse(vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	offDays, err := h.service.ListByVendor(c.Request.Context(), vendorID)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]OffDayResponse, len(offDays))
	for i, o := range offDays {
		items[i] = NewOffDayResponse(o)
	}

	c.JSON(http.StatusOK, gin.H{"off_days": items})
}

func (h *Handler) Remove(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	o, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.ownsVendor(c, o.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Remove(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *Handler) ownsVendor(c *gin.Context, vendorID string) bool {
	if auth.GetUserRole(c) == auth.RoleAdmin {
		return true
	}
	v, err := h.vendorService.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		return false
	}
	return v.OwnerUserID == auth.GetUserID(c)
}
