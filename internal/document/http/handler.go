package http

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/auth"
	"github.com/wedmarket/wedding-vendor-backend/internal/document"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/response"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type Handler struct {
	service       document.Service
	vendorService vendors.Service
}

func NewHandler(service document.Service, vendorService vendors.Service) *Handler {
	return &Handler{
		service:       service,
		vendorService: vendorService,
	}
}

// Upload accepts a multipart form with a "file" field plus "vendor_id"
// and "purpose" fields. Only the vendor owner (or an admin) may upload.
func (h *Handler) Upload(c *gin.Context) {
	vendorID := c.PostForm("vendor_id")
	if _, err := uuid.Parse(vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "vendor_id must be a valid UUID"})
		return
	}
	if !h.ownsVendor(c, vendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "file is required"})
		return
	}

	d, err := h.service.Upload(c.Request.Context(), document.UploadInput{
		FileHeader: fileHeader,
		VendorID:   vendorID,
		UploadedBy: auth.GetUserID(c),
		Purpose:    c.PostForm("purpose"),
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, NewDocumentResponse(d))
}

// ListByVendor returns a vendor's documents. Portfolio images are
// public; identity documents are only listed for the owner and admins.
func (h *Handler) ListByVendor(c *gin.Context) {
	vendorID := c.Param("id")
	if _, err := uuid.Parse(vendorID); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	purpose := c.Query("purpose")
	if purpose == document.PurposeIdentity && !h.ownsVendor(c, vendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}
	if purpose == "" {
		purpose = document.PurposePortfolio
	}

	docs, err := h.service.ListByVendor(c.Request.Context(), vendorID, purpose)
	if err != nil {
		response.Error(c, err)
		return
	}

	items := make([]DocumentResponse, len(docs))
	for i, d := range docs {
		items[i] = NewDocumentResponse(d)
	}

	c.JSON(http.StatusOK, gin.H{"documents": items})
}

func (h *Handler) Serve(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, d, err := h.service.Download(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if d.Purpose == document.PurposeIdentity && !h.ownsVendor(c, d.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.Header("Content-Type", d.ContentType)
	c.Header("Content-Disposition", `inline; filename="`+d.Filename+`"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) ServeThumbnail(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	stream, d, err := h.service.DownloadThumbnail(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	defer stream.Close()

	if d.Purpose == document.PurposeIdentity && !h.ownsVendor(c, d.VendorID) {
		c.JSON(http.StatusForbidden, gin.H{"error": "permission denied"})
		return
	}

	c.Header("Content-Type", "image/jpeg")
	c.Header("Content-Disposition", `inline; filename="`+d.Filename+`_thumb.jpg"`)
	c.Status(http.StatusOK)
	_, _ = io.Copy(c.Writer, stream)
}

func (h *Handler) Delete(c *gin.Context) {
	id := c.Param("id")
	if _, err := uuid.Parse(id); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid UUID"})
		return
	}

	d, err := h.service.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	if !h.ownsVendor(c, d.VendorID) {
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
