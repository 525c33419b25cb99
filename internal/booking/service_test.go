package booking

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wedmarket/wedding-vendor-backend/internal/availability"
	"github.com/wedmarket/wedding-vendor-backend/internal/listing"
	"github.com/wedmarket/wedding-vendor-backend/internal/notification"
	"github.com/wedmarket/wedding-vendor-backend/internal/vendors"
)

const (
	testVendorID  = "11111111-1111-1111-1111-111111111111"
	testOwnerID   = "22222222-2222-2222-2222-222222222222"
	testClientID  = "33333333-3333-3333-3333-333333333333"
	testListingID = "44444444-4444-4444-4444-444444444444"
)

// futureDate returns a date far enough ahead that past-date checks never
// trip regardless of when the tests run.
func futureDate(days int) availability.DateKey {
	return availability.MakeDateKey(time.Now().AddDate(0, 0, days), time.UTC)
}

type fakeRepo struct {
	bookings map[string]*Booking
	nextID   int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{bookings: make(map[string]*Booking)}
}

func (f *fakeRepo) Create(_ context.Context, b *Booking) error {
	f.nextID++
	b.ID = fmt.Sprintf("booking-%d", f.nextID)
	b.CreatedAt = time.Now()
	b.UpdatedAt = b.CreatedAt
	cp := *b
	f.bookings[b.ID] = &cp
	return nil
}

func (f *fakeRepo) GetByID(_ context.Context, id string) (*Booking, error) {
	b, ok := f.bookings[id]
	if !ok {
		return nil, ErrNotFound
	}
	cp := *b
	return &cp, nil
}

func (f *fakeRepo) List(_ context.Context, filter Filter) ([]*Booking, int, error) {
	var out []*Booking
	for _, b := range f.bookings {
		if filter.VendorID != "" && b.VendorID != filter.VendorID {
			continue
		}
		if filter.ClientUserID != "" && b.ClientUserID != filter.ClientUserID {
			continue
		}
		cp := *b
		out = append(out, &cp)
	}
	return out, len(out), nil
}

func (f *fakeRepo) UpdateStatus(_ context.Context, id string, status availability.BookingStatus) error {
	b, ok := f.bookings[id]
	if !ok {
		return ErrNotFound
	}
	b.Status = status
	return nil
}

func (f *fakeRepo) CompleteBefore(_ context.Context, cutoff availability.DateKey) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.EventDate.Before(cutoff) &&
			(b.Status == availability.StatusConfirmed || b.Status == availability.StatusInProgress) {
			b.Status = availability.StatusCompleted
			count++
		}
	}
	return count, nil
}

func (f *fakeRepo) CancelPendingBefore(_ context.Context, createdBefore time.Time) (int, error) {
	count := 0
	for _, b := range f.bookings {
		if b.Status == availability.StatusPending && b.CreatedAt.Before(createdBefore) {
			b.Status = availability.StatusCancelled
			count++
		}
	}
	return count, nil
}

type fakeVendorService struct {
	vendors.Service
	capacity int
}

func (f *fakeVendorService) GetByID(_ context.Context, id string) (*vendors.Vendor, error) {
	if id != testVendorID {
		return nil, vendors.ErrNotFound
	}
	return &vendors.Vendor{ID: testVendorID, OwnerUserID: testOwnerID, MaxBookingsPerDay: f.capacity}, nil
}

func (f *fakeVendorService) CalendarInfo(_ context.Context, id string) (*vendors.CalendarInfo, error) {
	if id != testVendorID {
		return nil, vendors.ErrNotFound
	}
	return &vendors.CalendarInfo{
		ID:       testVendorID,
		Name:     "Test Vendor",
		Location: time.UTC,
		Capacity: f.capacity,
	}, nil
}

type fakeListingService struct {
	listing.Service
}

func (f *fakeListingService) GetByID(_ context.Context, id string) (*listing.Listing, error) {
	switch id {
	case testListingID:
		return &listing.Listing{ID: testListingID, VendorID: testVendorID, PriceCents: 50000, Currency: "USD"}, nil
	case "foreign":
		return &listing.Listing{ID: "foreign", VendorID: "99999999-9999-9999-9999-999999999999"}, nil
	default:
		return nil, listing.ErrNotFound
	}
}

type recordingNotifier struct {
	notification.Service
	created []notification.CreateRequest
}

func (r *recordingNotifier) Create(_ context.Context, req notification.CreateRequest) (*notification.Notification, error) {
	r.created = append(r.created, req)
	return &notification.Notification{ID: "n", UserID: req.UserID}, nil
}

// availabilityData is a stub backing store for the availability service.
type availabilityData struct {
	bookings []availability.BookingRecord
	offDays  []availability.OffDayRecord
}

func (d *availabilityData) FetchBookings(context.Context, string, string, availability.DateKey, availability.DateKey) ([]availability.BookingRecord, error) {
	return d.bookings, nil
}

func (d *availabilityData) FetchOffDays(context.Context, string) ([]availability.OffDayRecord, error) {
	return d.offDays, nil
}

func newTestService(repo *fakeRepo, data *availabilityData, notifier *recordingNotifier) Service {
	if data == nil {
		data = &availabilityData{}
	}
	return NewService(
		repo,
		&fakeVendorService{capacity: 1},
		&fakeListingService{},
		availability.NewService(data),
		notifier,
	)
}

func TestCreateBooking(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, nil, notifier)

	date := futureDate(30)
	b, err := svc.Create(context.Background(), CreateRequest{
		ClientUserID: testClientID,
		VendorID:     testVendorID,
		EventDate:    string(date),
		Note:         "garden ceremony",
	})
	require.NoError(t, err)

	assert.NotEmpty(t, b.ID)
	assert.Equal(t, availability.StatusPending, b.Status)
	assert.Equal(t, date, b.EventDate)

	// The vendor owner is notified of the new request.
	require.Len(t, notifier.created, 1)
	assert.Equal(t, testOwnerID, notifier.created[0].UserID)
	assert.Equal(t, notification.KindBookingRequested, notifier.created[0].Kind)
}

func TestCreateBookingWithListing(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, &recordingNotifier{})

	listingID := testListingID
	b, err := svc.Create(context.Background(), CreateRequest{
		ClientUserID: testClientID,
		VendorID:     testVendorID,
		ListingID:    &listingID,
		EventDate:    string(futureDate(30)),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(50000), b.PriceCents)
	assert.Equal(t, "USD", b.Currency)
}

func TestCreateBookingRejections(t *testing.T) {
	foreign := "foreign"
	occupied := futureDate(30)

	cases := []struct {
		name    string
		req     CreateRequest
		data    *availabilityData
		wantErr error
	}{
		{
			name:    "malformed date",
			req:     CreateRequest{ClientUserID: testClientID, VendorID: testVendorID, EventDate: "June 15th"},
			wantErr: availability.ErrInvalidDateKey,
		},
		{
			name:    "past date",
			req:     CreateRequest{ClientUserID: testClientID, VendorID: testVendorID, EventDate: "2020-01-01"},
			wantErr: ErrPastDate,
		},
		{
			name:    "unknown vendor",
			req:     CreateRequest{ClientUserID: testClientID, VendorID: "nope", EventDate: string(futureDate(30))},
			wantErr: vendors.ErrNotFound,
		},
		{
			name:    "listing of another vendor",
			req:     CreateRequest{ClientUserID: testClientID, VendorID: testVendorID, ListingID: &foreign, EventDate: string(futureDate(30))},
			wantErr: ErrListingMismatch,
		},
		{
			name: "occupied date",
			req:  CreateRequest{ClientUserID: testClientID, VendorID: testVendorID, EventDate: string(occupied)},
			data: &availabilityData{bookings: []availability.BookingRecord{
				{VendorID: testVendorID, EventDate: occupied, Status: availability.StatusConfirmed},
			}},
			wantErr: ErrDateUnavailable,
		},
		{
			name: "off day",
			req:  CreateRequest{ClientUserID: testClientID, VendorID: testVendorID, EventDate: string(occupied)},
			data: &availabilityData{offDays: []availability.OffDayRecord{
				{VendorID: testVendorID, Date: occupied, Reason: "closed"},
			}},
			wantErr: ErrDateUnavailable,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			svc := newTestService(newFakeRepo(), tc.data, &recordingNotifier{})
			_, err := svc.Create(context.Background(), tc.req)
			assert.ErrorIs(t, err, tc.wantErr)
		})
	}
}

func TestCreateBookingPendingDoesNotBlock(t *testing.T) {
	// An unanswered pending request on the same date must not block a new
	// request.
	date := futureDate(30)
	data := &availabilityData{bookings: []availability.BookingRecord{
		{VendorID: testVendorID, EventDate: date, Status: availability.StatusPending},
	}}
	svc := newTestService(newFakeRepo(), data, &recordingNotifier{})

	_, err := svc.Create(context.Background(), CreateRequest{
		ClientUserID: testClientID,
		VendorID:     testVendorID,
		EventDate:    string(date),
	})
	assert.NoError(t, err)
}

func TestCanTransition(t *testing.T) {
	allowed := []struct{ from, to availability.BookingStatus }{
		{availability.StatusPending, availability.StatusConfirmed},
		{availability.StatusPending, availability.StatusCancelled},
		{availability.StatusConfirmed, availability.StatusInProgress},
		{availability.StatusConfirmed, availability.StatusCancelled},
		{availability.StatusInProgress, availability.StatusCompleted},
		{availability.StatusInProgress, availability.StatusCancelled},
		{availability.StatusCompleted, availability.StatusRefunded},
	}
	for _, tr := range allowed {
		assert.True(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}

	denied := []struct{ from, to availability.BookingStatus }{
		{availability.StatusPending, availability.StatusCompleted},
		{availability.StatusPending, availability.StatusInProgress},
		{availability.StatusConfirmed, availability.StatusRefunded},
		{availability.StatusCancelled, availability.StatusConfirmed},
		{availability.StatusRefunded, availability.StatusPending},
		{availability.StatusCompleted, availability.StatusConfirmed},
	}
	for _, tr := range denied {
		assert.False(t, CanTransition(tr.from, tr.to), "%s -> %s", tr.from, tr.to)
	}
}

func TestUpdateStatusLifecycle(t *testing.T) {
	repo := newFakeRepo()
	notifier := &recordingNotifier{}
	svc := newTestService(repo, nil, notifier)

	b, err := svc.Create(context.Background(), CreateRequest{
		ClientUserID: testClientID,
		VendorID:     testVendorID,
		EventDate:    string(futureDate(30)),
	})
	require.NoError(t, err)

	confirmed, err := svc.UpdateStatus(context.Background(), b.ID, availability.StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, availability.StatusConfirmed, confirmed.Status)

	// Request notification plus the confirmation to the client.
	require.Len(t, notifier.created, 2)
	assert.Equal(t, testClientID, notifier.created[1].UserID)
	assert.Equal(t, notification.KindBookingConfirmed, notifier.created[1].Kind)

	_, err = svc.UpdateStatus(context.Background(), b.ID, availability.StatusRefunded)
	assert.ErrorIs(t, err, ErrInvalidTransition)

	_, err = svc.UpdateStatus(context.Background(), b.ID, "teleported")
	assert.ErrorIs(t, err, ErrInvalidStatus)

	_, err = svc.UpdateStatus(context.Background(), "missing", availability.StatusConfirmed)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestConfirmRechecksCapacity(t *testing.T) {
	date := futureDate(30)
	data := &availabilityData{}
	repo := newFakeRepo()
	svc := newTestService(repo, data, &recordingNotifier{})

	b, err := svc.Create(context.Background(), CreateRequest{
		ClientUserID: testClientID,
		VendorID:     testVendorID,
		EventDate:    string(date),
	})
	require.NoError(t, err)

	// Another booking was confirmed for the same date in the meantime.
	data.bookings = []availability.BookingRecord{
		{VendorID: testVendorID, EventDate: date, Status: availability.StatusConfirmed},
	}

	_, err = svc.UpdateStatus(context.Background(), b.ID, availability.StatusConfirmed)
	assert.ErrorIs(t, err, ErrDateUnavailable)

	// Cancelling is still allowed.
	cancelled, err := svc.UpdateStatus(context.Background(), b.ID, availability.StatusCancelled)
	require.NoError(t, err)
	assert.Equal(t, availability.StatusCancelled, cancelled.Status)
}

func TestLifecycleJobs(t *testing.T) {
	repo := newFakeRepo()
	svc := newTestService(repo, nil, &recordingNotifier{})

	now := time.Now()
	repo.bookings["past-confirmed"] = &Booking{
		ID: "past-confirmed", VendorID: testVendorID, EventDate: "2020-06-15",
		Status: availability.StatusConfirmed, CreatedAt: now,
	}
	repo.bookings["stale-pending"] = &Booking{
		ID: "stale-pending", VendorID: testVendorID, EventDate: futureDate(30),
		Status: availability.StatusPending, CreatedAt: now.AddDate(0, 0, -30),
	}
	repo.bookings["fresh-pending"] = &Booking{
		ID: "fresh-pending", VendorID: testVendorID, EventDate: futureDate(30),
		Status: availability.StatusPending, CreatedAt: now,
	}

	completed, err := svc.CompletePastConfirmed(context.Background(), now)
	require.NoError(t, err)
	assert.Equal(t, 1, completed)
	assert.Equal(t, availability.StatusCompleted, repo.bookings["past-confirmed"].Status)

	expired, err := svc.ExpireStalePending(context.Background(), now, 14*24*time.Hour)
	require.NoError(t, err)
	assert.Equal(t, 1, expired)
	assert.Equal(t, availability.StatusCancelled, repo.bookings["stale-pending"].Status)
	assert.Equal(t, availability.StatusPending, repo.bookings["fresh-pending"].Status)
}
