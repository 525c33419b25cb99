package vendors

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOwnerID = "22222222-2222-2222-2222-222222222222"

type fakeRepo struct {
	vendors map[string]*Vendor
	nextID  int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{vendors: make(map[string]*Vendor)}
}

func (f *fakeRepo) Create(_ context.Context, v *Vendor) error {
	for _, existing := range f.vendors {
		if existing.OwnerUserID == v.OwnerUserID {
			return ErrAlreadyExists
		}
	}
	f.nextID++
	v.ID = fmt.Sprintf("vendor-%d", f.nextID)
	cp := *v
	f.vendors[v.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Vendor, error) {
	v, ok := f.vendors[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *v
	return &cp, nil
}

func (f *fakeRepo) GetByOwner(_ context.Context, ownerUserID string) (*Vendor, error) {
	for _, v := range f.vendors {
		if v.OwnerUserID == ownerUserID {
			cp := *v
			return &cp, nil
		}
	}
	return nil, ErrNotFound
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Vendor, int, error) {
	var out []*Vendor
	for _, v := range f.vendors {
		if filter.Category != "" && v.Category != filter.Category {
			continue
		}
		cp := *v
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, v *Vendor) error {
	if _, ok := f.vendors[v.ID]; !ok {
		return ErrNotFound
	}
	cp := *v
	f.vendors[v.ID] = &cp
	return nil
}

func (f *fakeRepo) SetVerified(_ context.Context, id string, verified bool) error {
	v, ok := f.vendors[id]
	if !ok {
		return ErrNotFound
	}
	v.IsVerified = verified
	return nil
}

func TestCreateVendor(t *testing.T) {
	svc := NewService(newFakeRepo(), "UTC", 1)

	v, err := svc.Create(context.Background(), CreateRequest{
		OwnerUserID:       testOwnerID,
		Name:              "  Rose Garden Photography  ",
		Category:          "photography",
		Timezone:          "Europe/Paris",
		MaxBookingsPerDay: 2,
	})
	require.NoError(t, err)

	assert.Equal(t, "Rose Garden Photography", v.Name)
	assert.Equal(t, "Europe/Paris", v.Timezone)
	assert.Equal(t, 2, v.MaxBookingsPerDay)
	assert.False(t, v.IsVerified)
}

func TestCreateVendorDefaults(t *testing.T) {
	svc := NewService(newFakeRepo(), "Asia/Taipei", 3)

	v, err := svc.Create(context.Background(), CreateRequest{
		OwnerUserID: testOwnerID,
		Name:        "Catering Co",
		Category:    "catering",
	})
	require.NoError(t, err)
	assert.Equal(t, "Asia/Taipei", v.Timezone)
	assert.Equal(t, 3, v.MaxBookingsPerDay)
}

func TestCreateVendorValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), "UTC", 1)

	cases := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"empty name", CreateRequest{OwnerUserID: testOwnerID, Category: "venue"}, ErrEmptyName},
		{"unknown category", CreateRequest{OwnerUserID: testOwnerID, Name: "X", Category: "time-travel"}, ErrInvalidCategory},
		{"bad timezone", CreateRequest{OwnerUserID: testOwnerID, Name: "X", Category: "venue", Timezone: "Mars/Olympus"}, ErrInvalidTimezone},
		{"negative capacity", CreateRequest{OwnerUserID: testOwnerID, Name: "X", Category: "venue", MaxBookingsPerDay: -1}, ErrInvalidCapacity},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}

	t.Run("one profile per owner", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateRequest{OwnerUserID: testOwnerID, Name: "First", Category: "venue"})
		require.NoError(t, err)
		_, err = svc.Create(context.Background(), CreateRequest{OwnerUserID: testOwnerID, Name: "Second", Category: "venue"})
		assert.ErrorIs(t, err, ErrAlreadyExists)
	})
}

func TestCalendarInfo(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo, "UTC", 1)

	v, err := svc.Create(context.Background(), CreateRequest{
		OwnerUserID:       testOwnerID,
		Name:              "Venue",
		Category:          "venue",
		Timezone:          "America/New_York",
		MaxBookingsPerDay: 4,
	})
	require.NoError(t, err)

	info, err := svc.CalendarInfo(context.Background(), v.ID)
	require.NoError(t, err)
	assert.Equal(t, "Venue", info.Name)
	assert.Equal(t, 4, info.Capacity)
	assert.Equal(t, "America/New_York", info.Location.String())

	t.Run("broken stored timezone falls back to UTC", func(t *testing.T) {
		repo.vendors[v.ID].Timezone = "Atlantis/Sunken"

		info, err := svc.CalendarInfo(context.Background(), v.ID)
		require.NoError(t, err)
		assert.Equal(t, time.UTC, info.Location)
	})
}

func TestUpdateVendor(t *testing.T) {
	svc := NewService(newFakeRepo(), "UTC", 1)

	v, err := svc.Create(context.Background(), CreateRequest{
		OwnerUserID: testOwnerID, Name: "Venue", Category: "venue",
	})
	require.NoError(t, err)

	newName := "Grand Venue"
	newCapacity := 5
	updated, err := svc.Update(context.Background(), v.ID, UpdateRequest{
		Name:              &newName,
		MaxBookingsPerDay: &newCapacity,
	})
	require.NoError(t, err)
	assert.Equal(t, "Grand Venue", updated.Name)
	assert.Equal(t, 5, updated.MaxBookingsPerDay)

	badTZ := "Nowhere/Null"
	_, err = svc.Update(context.Background(), v.ID, UpdateRequest{Timezone: &badTZ})
	assert.ErrorIs(t, err, ErrInvalidTimezone)
}
