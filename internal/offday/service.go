package offday

import (
	"context"
	"strings"

	"github.com/teambition/rrule-go"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
)

type SetRequest struct {
	VendorID         string
	Date             string
	Reason           string
	IsRecurring      bool
	RecurringPattern string
}

type Service interface {
	Set(ctx context.Context, req SetRequest) (*OffDay, error)
	GetByID(ctx context.Context, id string) (*OffDay, error)
	ListByVendor(ctx context.Context, vendorID string) ([]*OffDay, error)
	Remove(ctx context.Context, id string) error
}

type service struct {
	repo Repository
}

func NewService(repo Repository) Service {
	return &service{repo: repo}
}

// Set declares an off-day. The write goes straight to the store; the
// calendar picks it up on its next load rather than being patched
// optimistically.
func (s *service) Set(ctx context.Context, req SetRequest) (*OffDay, error) {
	date, err := availability.ParseDateKey(req.Date)
	if err != nil {
		return nil, err
	}

	pattern := ""
	if req.IsRecurring {
		pattern = strings.TrimSpace(req.RecurringPattern)
		if pattern == "" {
			pattern = "FREQ=WEEKLY"
		}
		if _, err := rrule.StrToRRule(pattern); err != nil {
			return nil, ErrInvalidPattern
		}
	}

	o := &OffDay{
		VendorID:         req.VendorID,
		Date:             date,
		Reason:           req.Reason,
		IsRecurring:      req.IsRecurring,
		RecurringPattern: pattern,
	}

	if err := s.repo.Create(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*OffDay, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) ListByVendor(ctx context.Context, vendorID string) ([]*OffDay, error) {
	return s.repo.ListByVendor(ctx, vendorID)
}

func (s *service) Remove(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
