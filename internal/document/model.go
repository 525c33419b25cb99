package document

import (
	"net/http"
	"time"

	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/apperror"
)

var (
	ErrNotFound       = apperror.New(http.StatusNotFound, "document not found")
	ErrInvalidPurpose = apperror.New(http.StatusBadRequest, "purpose must be portfolio or identity_document")
	ErrTooLarge       = apperror.New(http.StatusRequestEntityTooLarge, "file exceeds the size limit")
	ErrNoThumbnail    = apperror.New(http.StatusNotFound, "no thumbnail for this document")
)

const (
	PurposePortfolio = "portfolio"
	PurposeIdentity  = "identity_document"
)

// Document is an uploaded blob tied to a vendor profile: a portfolio
// image shown publicly, or an identity document reviewed by admins
// during vendor verification.
type Document struct {
	ID            string
	VendorID      string
	UploadedBy    string
	Purpose       string
	Filename      string
	StoragePath   string
	ThumbnailPath *string
	ContentType   string
	Size          int64
	CreatedAt     time.Time
}

func validPurpose(p string) bool {
	return p == PurposePortfolio || p == PurposeIdentity
}
