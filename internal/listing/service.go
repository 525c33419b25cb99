package listing

import (
	"context"
	"strings"

	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

type CreateRequest struct {
	VendorID    string
	Name        string
	Description string
	PriceCents  int64
	Currency    string
}

type UpdateRequest struct {
	Name        *string
	Description *string
	PriceCents  *int64
	IsActive    *bool
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Listing, error)
	GetByID(ctx context.Context, id string) (*Listing, error)
	List(ctx context.Context, filter Filter) ([]*Listing, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Listing, error)
	Delete(ctx context.Context, id string) error
}

type service struct {
	repo          Repository
	vendorService vendors.Service
}

func NewService(repo Repository, vendorService vendors.Service) Service {
	return &service{
		repo:          repo,
		vendorService: vendorService,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Listing, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if req.PriceCents < 0 {
		return nil, ErrInvalidPrice
	}

	// Validation: vendor must exist.
	if _, err := s.vendorService.GetByID(ctx, req.VendorID); err != nil {
		return nil, ErrInvalidVendor
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}

	l := &Listing{
		VendorID:    req.VendorID,
		Name:        strings.TrimSpace(req.Name),
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Currency:    currency,
		IsActive:    true,
	}

	if err := s.repo.Create(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Listing, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Listing, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Listing, error) {
	l, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		l.Name = strings.TrimSpace(*req.Name)
	}
	if req.Description != nil {
		l.Description = *req.Description
	}
	if req.PriceCents != nil {
		if *req.PriceCents < 0 {
			return nil, ErrInvalidPrice
		}
		l.PriceCents = *req.PriceCents
	}
	if req.IsActive != nil {
		l.IsActive = *req.IsActive
	}

	if err := s.repo.Update(ctx, l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *service) Delete(ctx context.Context, id string) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.repo.Delete(ctx, id)
}
