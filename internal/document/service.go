package document

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/wedmarket/wedding-vendor-backend/internal/pkg/storage"
)

// maxUploadBytes caps identity documents and portfolio images alike.
const maxUploadBytes = 10 << 20

type UploadInput struct {
	FileHeader *multipart.FileHeader
	VendorID   string
	UploadedBy string
	Purpose    string
}

type Service interface {
	Upload(ctx context.Context, in UploadInput) (*Document, error)
	Get(ctx context.Context, id string) (*Document, error)
	ListByVendor(ctx context.Context, vendorID, purpose string) ([]*Document, error)
	Download(ctx context.Context, id string) (io.ReadCloser, *Document, error)
	DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Document, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo    Repository
	storage storage.Storage
	imgProc *storage.ImageProcessor
}

func NewService(repo Repository, store storage.Storage) Service {
	return &service{
		repo:    repo,
		storage: store,
		imgProc: storage.NewImageProcessor(),
	}
}

func (s *service) Upload(ctx context.Context, in UploadInput) (*Document, error) {
	if !validPurpose(in.Purpose) {
		return nil, ErrInvalidPurpose
	}
	if in.FileHeader.Size > maxUploadBytes {
		return nil, ErrTooLarge
	}

	src, err := in.FileHeader.Open()
	if err != nil {
		return nil, fmt.Errorf("open uploaded file failed: %w", err)
	}
	defer src.Close()

	// Buffer the content so it can be read twice: once for the original
	// save, once for the thumbnail.
	fileBytes, err := io.ReadAll(io.LimitReader(src, maxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read uploaded file failed: %w", err)
	}
	if int64(len(fileBytes)) > maxUploadBytes {
		return nil, ErrTooLarge
	}

	contentType := in.FileHeader.Header.Get("Content-Type")
	ext := strings.ToLower(filepath.Ext(in.FileHeader.Filename))

	docID := uuid.New().String()
	shard := docID[:2]
	storagePath := fmt.Sprintf("documents/%s/%s%s", shard, docID, ext)

	if err := s.storage.Save(ctx, storagePath, bytes.NewReader(fileBytes)); err != nil {
		return nil, fmt.Errorf("save document to storage failed: %w", err)
	}

	var thumbnailPath *string
	if strings.HasPrefix(contentType, "image/") {
		thumbReader, err := s.imgProc.GenerateThumbnail(bytes.NewReader(fileBytes), 400, 400)
		if err != nil {
			log.Printf("document: thumbnail generation failed for %s: %v", docID, err)
		} else {
			tPath := fmt.Sprintf("documents/%s/%s_thumb.jpg", shard, docID)
			if err := s.storage.Save(ctx, tPath, thumbReader); err == nil {
				thumbnailPath = &tPath
			}
		}
	}

	d := &Document{
		ID:            docID,
		VendorID:      in.VendorID,
		UploadedBy:    in.UploadedBy,
		Purpose:       in.Purpose,
		Filename:      in.FileHeader.Filename,
		StoragePath:   storagePath,
		ThumbnailPath: thumbnailPath,
		ContentType:   contentType,
		Size:          int64(len(fileBytes)),
	}

	if err := s.repo.Create(ctx, d); err != nil {
		_ = s.storage.Delete(ctx, storagePath)
		if thumbnailPath != nil {
			_ = s.storage.Delete(ctx, *thumbnailPath)
		}
		return nil, err
	}

	return d, nil
}

func (s *service) Get(ctx context.Context, id string) (*Document, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByVendor(ctx context.Context, vendorID, purpose string) ([]*Document, error) {
	if purpose != "" && !validPurpose(purpose) {
		return nil, ErrInvalidPurpose
	}
	return s.repo.ListByVendor(ctx, vendorID, purpose)
}

func (s *service) Download(ctx context.Context, id string) (io.ReadCloser, *Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}

	stream, err := s.storage.Get(ctx, d.StoragePath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve document from storage failed: %w", err)
	}
	return stream, d, nil
}

func (s *service) DownloadThumbnail(ctx context.Context, id string) (io.ReadCloser, *Document, error) {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	if d.ThumbnailPath == nil {
		return nil, nil, ErrNoThumbnail
	}

	stream, err := s.storage.Get(ctx, *d.ThumbnailPath)
	if err != nil {
		return nil, nil, fmt.Errorf("retrieve thumbnail from storage failed: %w", err)
	}
	return stream, d, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	d, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.storage.Delete(ctx, d.StoragePath); err != nil {
		log.Printf("document: storage delete failed for %s: %v", id, err)
	}
	if d.ThumbnailPath != nil {
		_ = s.storage.Delete(ctx, *d.ThumbnailPath)
	}

	return s.repo.Delete(ctx, id)
}
