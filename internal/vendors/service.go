package vendors

import (
	"context"
	"strings"
	"time"
)

type CreateRequest struct {
	OwnerUserID       string
	Name              string
	Category          string
	Description       string
	City              string
	Latitude          *float64
	Longitude         *float64
	Timezone          string
	MaxBookingsPerDay int
}

type UpdateRequest struct {
	Name              *string
	Category          *string
	Description       *string
	City              *string
	Latitude          *float64
	Longitude         *float64
	Timezone          *string
	MaxBookingsPerDay *int
}

// CalendarInfo is the subset of a vendor profile the availability and
// booking paths need: the reference timezone and daily capacity.
type CalendarInfo struct {
	ID       string
	Name     string
	Location *time.Location
	Capacity int
}

type Service interface {
	Create(ctx context.Context, req CreateRequest) (*Vendor, error)
	GetByID(ctx context.Context, id string) (*Vendor, error)
	GetByOwner(ctx context.Context, ownerUserID string) (*Vendor, error)
	List(ctx context.Context, filter Filter) ([]*Vendor, int, error)
	Update(ctx context.Context, id string, req UpdateRequest) (*Vendor, error)
	SetVerified(ctx context.Context, id string, verified bool) error
	CalendarInfo(ctx context.Context, id string) (*CalendarInfo, error)
}

type service struct {
	repo            Repository
	defaultTimezone string
	defaultCapacity int
}

func NewService(repo Repository, defaultTimezone string, defaultCapacity int) Service {
	if defaultTimezone == "" {
		defaultTimezone = "UTC"
	}
	if defaultCapacity < 1 {
		defaultCapacity = 1
	}
	return &service{
		repo:            repo,
		defaultTimezone: defaultTimezone,
		defaultCapacity: defaultCapacity,
	}
}

func (s *service) Create(ctx context.Context, req CreateRequest) (*Vendor, error) {
	if strings.TrimSpace(req.Name) == "" {
		return nil, ErrEmptyName
	}
	if !validCategory(req.Category) {
		return nil, ErrInvalidCategory
	}

	tz := req.Timezone
	if tz == "" {
		tz = s.defaultTimezone
	}
	if _, err := time.LoadLocation(tz); err != nil {
		return nil, ErrInvalidTimezone
	}

	capacity := req.MaxBookingsPerDay
	if capacity == 0 {
		capacity = s.defaultCapacity
	}
	if capacity < 1 {
		return nil, ErrInvalidCapacity
	}

	v := &Vendor{
		OwnerUserID:       req.OwnerUserID,
		Name:              strings.TrimSpace(req.Name),
		Category:          req.Category,
		Description:       req.Description,
		City:              req.City,
		Latitude:          req.Latitude,
		Longitude:         req.Longitude,
		Timezone:          tz,
		MaxBookingsPerDay: capacity,
	}

	if err := s.repo.Create(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Vendor, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) GetByOwner(ctx context.Context, ownerUserID string) (*Vendor, error) {
	return s.repo.GetByOwner(ctx, ownerUserID)
}

func (s *service) List(ctx context.Context, filter Filter) ([]*Vendor, int, error) {
	return s.repo.List(ctx, filter)
}

func (s *service) Update(ctx context.Context, id string, req UpdateRequest) (*Vendor, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		if strings.TrimSpace(*req.Name) == "" {
			return nil, ErrEmptyName
		}
		v.Name = strings.TrimSpace(*req.Name)
	}
	if req.Category != nil {
		if !validCategory(*req.Category) {
			return nil, ErrInvalidCategory
		}
		v.Category = *req.Category
	}
	if req.Description != nil {
		v.Description = *req.Description
	}
	if req.City != nil {
		v.City = *req.City
	}
	if req.Latitude != nil {
		v.Latitude = req.Latitude
	}
	if req.Longitude != nil {
		v.Longitude = req.Longitude
	}
	if req.Timezone != nil {
		if _, err := time.LoadLocation(*req.Timezone); err != nil {
			return nil, ErrInvalidTimezone
		}
		v.Timezone = *req.Timezone
	}
	if req.MaxBookingsPerDay != nil {
		if *req.MaxBookingsPerDay < 1 {
			return nil, ErrInvalidCapacity
		}
		v.MaxBookingsPerDay = *req.MaxBookingsPerDay
	}

	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	return v, nil
}

func (s *service) SetVerified(ctx context.Context, id string, verified bool) error {
	return s.repo.SetVerified(ctx, id, verified)
}

// CalendarInfo resolves the vendor's reference timezone and capacity.
// A stored timezone that no longer loads falls back to UTC rather than
// breaking the vendor's calendar.
func (s *service) CalendarInfo(ctx context.Context, id string) (*CalendarInfo, error) {
	v, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	loc, err := time.LoadLocation(v.Timezone)
	if err != nil {
		loc = time.UTC
	}

	return &CalendarInfo{
		ID:       v.ID,
		Name:     v.Name,
		Location: loc,
		Capacity: v.MaxBookingsPerDay,
	}, nil
}

func validCategory(c string) bool {
	for _, v := range ValidCategories {
		if c == v {
			return true
		}
	}
	return false
}
