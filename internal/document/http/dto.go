package http

import (
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/document"
)

type DocumentResponse struct {
	ID           string    `json:"id"`
	VendorID     string    `json:"vendor_id"`
	Purpose      string    `json:"purpose"`
	Filename     string    `json:"filename"`
	ContentType  string    `json:"content_type"`
	Size         int64     `json:"size"`
	URL          string    `json:"url"`
	ThumbnailURL *string   `json:"thumbnail_url,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
}

func NewDocumentResponse(d *document.Document) DocumentResponse {
	resp := DocumentResponse{
		ID:          d.ID,
		VendorID:    d.VendorID,
		Purpose:     d.Purpose,
		Filename:    d.Filename,
		ContentType: d.ContentType,
		Size:        d.Size,
		URL:         "/v1/documents/" + d.ID,
		CreatedAt:   d.CreatedAt,
	}
	if d.ThumbnailPath != nil {
		t := "/v1/documents/" + d.ID + "/thumbnail"
		resp.ThumbnailURL = &t
	}
	return resp
}
