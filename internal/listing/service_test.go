package listing

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

const testVendorID = "11111111-1111-1111-1111-111111111111"

type fakeRepo struct {
	listings map[string]*Listing
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{listings: make(map[string]*Listing)}
}

func (f *fakeRepo) Create(_ context.Context, l *Listing) error {
	f.nextID++
	l.ID = fmt.Sprintf("listing-%d", f.nextID)
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Listing, error) {
	l, ok := f.listings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *l
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Listing, int, error) {
	var out []*Listing
	for _, l := range f.listings {
		if filter.VendorID != "" && l.VendorID != filter.VendorID {
			continue
		}
		if filter.ActiveOnly && !l.IsActive {
			continue
		}
		cp := *l
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) Update(_ context.Context, l *Listing) error {
	if _, ok := f.listings[l.ID]; !ok {
		return ErrNotFound
	}
	cp := *l
	f.listings[l.ID] = &cp
	return nil
}

func (f *fakeRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.listings[id]; !ok {
		return ErrNotFound
	}
	delete(f.listings, id)
	return nil
}

type fakeVendorService struct {
	vendors.Service
}

func (f *fakeVendorService) GetByID(_ context.Context, id string) (*vendors.Vendor, error) {
	if id != testVendorID {
		return nil, vendors.ErrNotFound
	}
	return &vendors.Vendor{ID: testVendorID}, nil
}

func TestCreateListing(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVendorService{})

	l, err := svc.Create(context.Background(), CreateRequest{
		VendorID:   testVendorID,
		Name:       " Full-day package ",
		PriceCents: 250000,
	})
	require.NoError(t, err)

	assert.Equal(t, "Full-day package", l.Name)
	assert.Equal(t, "USD", l.Currency)
	assert.True(t, l.IsActive)
}

func TestCreateListingValidation(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVendorService{})

	cases := []struct {
		name    string
		req     CreateRequest
		wantErr error
	}{
		{"empty name", CreateRequest{VendorID: testVendorID, Name: "   "}, ErrEmptyName},
		{"negative price", CreateRequest{VendorID: testVendorID, Name: "X", PriceCents: -1}, ErrInvalidPrice},
		{"unknown vendor", CreateRequest{VendorID: "nope", Name: "X"}, ErrInvalidVendor},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestUpdateListing(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVendorService{})

	l, err := svc.Create(context.Background(), CreateRequest{VendorID: testVendorID, Name: "Package"})
	require.NoError(t, err)

	inactive := false
	price := int64(300000)
	updated, err := svc.Update(context.Background(), l.ID, UpdateRequest{
		PriceCents: &price,
		IsActive:   &inactive,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(300000), updated.PriceCents)
	assert.False(t, updated.IsActive)

	empty := "  "
	_, err = svc.Update(context.Background(), l.ID, UpdateRequest{Name: &empty})
	assert.ErrorIs(t, err, ErrEmptyName)
}

func TestListActiveOnly(t *testing.T) {
	svc := NewService(newFakeRepo(), &fakeVendorService{})

	active, err := svc.Create(context.Background(), CreateRequest{VendorID: testVendorID, Name: "Active"})
	require.NoError(t, err)
	retired, err := svc.Create(context.Background(), CreateRequest{VendorID: testVendorID, Name: "Retired"})
	require.NoError(t, err)

	off := false
	_, err = svc.Update(context.Background(), retired.ID, UpdateRequest{IsActive: &off})
	require.NoError(t, err)

	listings, total, err := svc.List(context.Background(), Filter{VendorID: testVendorID, ActiveOnly: true})
	require.NoError(t, err)
	assert.Equal(t, 1, total)
	require.Len(t, listings, 1)
	assert.Equal(t, active.ID, listings[0].ID)
}
