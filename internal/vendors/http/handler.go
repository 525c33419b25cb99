package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service vendors.Service
}

func NewHandler(service vendors.Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) List(c *gin.Context) {
	var req ListVendorsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	list, total, err := h.service.List(c.Request.Context(), vendors.Filter{
		Category: req.Category,
		City:     req.City,
		Verified: req.Verified,
		Page:     req.Page,
		PageSize: req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]VendorResponse, len(list))
	for i, v := range list {
		items[i] = NewVendorResponse(v)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	v, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVendorResponse(v))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateVendorRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	v, err := h.service.Create(c.Request.Context(), vendors.CreateRequest{
		OwnerUserID:       auth.GetUserID(c),
		Name:              body.Name,
		Category:          body.Category,
		Description:       body.Description,
		City:              body.City,
		Latitude:          body.Latitude,
		Longitude:         body.Longitude,
		Timezone:          body.Timezone,
		MaxBookingsPerDay: body.MaxBookingsPerDay,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewVendorResponse(v))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if !h.canManage(c, id) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var body UpdateVendorRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	v, err := h.service.Update(c.Request.Context(), id, vendors.UpdateRequest{
		Name:              body.Name,
		Category:          body.Category,
		Description:       body.Description,
		City:              body.City,
		Latitude:          body.Latitude,
		Longitude:         body.Longitude,
		Timezone:          body.Timezone,
		MaxBookingsPerDay: body.MaxBookingsPerDay,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewVendorResponse(v))
}

func (h *Handler) Verify(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	if err := h.service.SetVerified(c.Request.Context(), id, true); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// canManage reports whether the current user owns the vendor profile or
// is a platform admin.
func (h *Handler) canManage(c *gin.Context, vendorID string) bool {
	if auth.GetUserRole(c) == auth.RoleAdmin {
		return true
	}
	v, err := h.service.GetByID(c.Request.Context(), vendorID)
	if err != nil {
		return false
	}
	return v.OwnerUserID == auth.GetUserID(c)
}
