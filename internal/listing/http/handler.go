package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service       listing.Service
	vendorService vendors.Service
}

func NewHandler(service listing.Service, vendorService vendors.Service) *Handler {
	return &Handler{
		service:       service,
		vendorService: vendorService,
	}
}

func (h *Handler) List(c *gin.Context) {
	var req ListListingsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid query parameters", "details": err.Error()})
		return
	}

	listings, total, err := h.service.List(c.Request.Context(), listing.Filter{
		VendorID:   req.VendorID,
		ActiveOnly: req.ActiveOnly,
		Page:       req.Page,
		PageSize:   req.PageSize,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]ListingResponse, len(listings))
	for i, l := range listings {
		items[i] = NewListingResponse(l)
	}

	c.JSON(http.StatusOK, response.NewPageResponse(items, req.Page, req.PageSize, total))
}

func (h *Handler) Get(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewListingResponse(l))
}

func (h *Handler) Create(c *gin.Context) {
	var body CreateListingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body", "details": err.Error()})
		return
	}

	if !h.ownsVendor(c, body.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	l, err := h.service.Create(c.Request.Context(), listing.CreateRequest{
		VendorID:    body.VendorID,
		Name:        body.Name,
		Description: body.Description,
		PriceCents:  body.PriceCents,
		Currency:    body.Currency,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewListingResponse(l))
}

func (h *Handler) Update(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.ownsVendor(c, l.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	var body UpdateListingRequest
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	updated, err := h.service.Update(c.Request.Context(), id, listing.UpdateRequest{
		Name:        body.Name,
		Description: body.Description,
		PriceCents:  body.PriceCents,
		IsActive:    body.IsActive,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, NewListingResponse(updated))
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	l, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.ownsVendor(c, l.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
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
