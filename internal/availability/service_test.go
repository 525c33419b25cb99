package availability

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeDataAccess serves canned records and can be told to fail.
type fakeDataAccess struct {
	bookings []BookingRecord
	offDays  []OffDayRecord

	bookingsErr error
	offDaysErr  error

	fetchCalls int
}

func (f *fakeDataAccess) FetchBookings(_ context.Context, vendorID, serviceID string, start, end DateKey) ([]BookingRecord, error) {
	f.fetchCalls++
	if f.bookingsErr != nil {
		return nil, f.bookingsErr
	}
	return f.bookings, nil
}

func (f *fakeDataAccess) FetchOffDays(_ context.Context, vendorID string) ([]OffDayRecord, error) {
	if f.offDaysErr != nil {
		return nil, f.offDaysErr
	}
	return f.offDays, nil
}

func TestServiceRange(t *testing.T) {
	data := &fakeDataAccess{
		bookings: []BookingRecord{
			{VendorID: testVendor, EventDate: "2025-06-15", Status: StatusConfirmed},
		},
		offDays: []OffDayRecord{
			{VendorID: testVendor, Date: "2025-06-20", Reason: "Holiday"},
		},
	}
	svc := NewService(data)

	result, err := svc.Range(context.Background(), RangeRequest{
		VendorID: testVendor,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		Capacity: 1,
	})
	require.NoError(t, err)
	assert.False(t, result.Degraded)
	require.Len(t, result.Days, 30)

	assert.Equal(t, DayFullyBooked, result.Days["2025-06-15"].Status)
	assert.Equal(t, DayOff, result.Days["2025-06-20"].Status)
	assert.Equal(t, DayAvailable, result.Days["2025-06-01"].Status)
}

func TestServiceRangeFailsOpenOnBookingError(t *testing.T) {
	data := &fakeDataAccess{bookingsErr: errors.New("connection refused")}
	svc := NewService(data)

	result, err := svc.Range(context.Background(), RangeRequest{
		VendorID: testVendor,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		Capacity: 1,
	})
	require.NoError(t, err)
	assert.True(t, result.Degraded)

	// Every date degrades to available rather than blocked.
	require.Len(t, result.Days, 30)
	for _, day := range result.Days {
		assert.True(t, day.IsAvailable)
	}
}

func TestServiceRangeFailsOpenOnOffDayError(t *testing.T) {
	data := &fakeDataAccess{
		bookings: []BookingRecord{
			{VendorID: testVendor, EventDate: "2025-06-15", Status: StatusConfirmed},
		},
		offDaysErr: errors.New("timeout"),
	}
	svc := NewService(data)

	result, err := svc.Range(context.Background(), RangeRequest{
		VendorID: testVendor,
		Start:    "2025-06-01",
		End:      "2025-06-30",
		Capacity: 1,
	})
	require.NoError(t, err)
	assert.True(t, result.Degraded)

	// A partial dataset is not applied: the booking fetched before the
	// off-day failure does not leak into the degraded result.
	assert.True(t, result.Days["2025-06-15"].IsAvailable)
}

func TestServiceRangeValidation(t *testing.T) {
	svc := NewService(&fakeDataAccess{})

	_, err := svc.Range(context.Background(), RangeRequest{
		Start: "2025-06-01", End: "2025-06-30",
	})
	assert.ErrorIs(t, err, ErrVendorRequired)

	_, err = svc.Range(context.Background(), RangeRequest{
		VendorID: testVendor, Start: "2025-06-30", End: "2025-06-01",
	})
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestServiceMonth(t *testing.T) {
	data := &fakeDataAccess{
		bookings: []BookingRecord{
			// Spill day from May visible on the June grid.
			{VendorID: testVendor, EventDate: "2025-07-01", Status: StatusConfirmed},
		},
	}
	svc := NewService(data)

	view, err := svc.Month(context.Background(), MonthRequest{
		VendorID: testVendor,
		Year:     2025,
		Month:    time.June,
		Capacity: 1,
		Today:    "2025-06-15",
	})
	require.NoError(t, err)

	require.Len(t, view.Grid, GridSize)
	// Aggregation covers the whole grid, adjacent-month spill included.
	require.Len(t, view.Days, GridSize)
	assert.Equal(t, DayFullyBooked, view.Days["2025-07-01"].Status)
}

func TestServiceMonthValidation(t *testing.T) {
	svc := NewService(&fakeDataAccess{})

	_, err := svc.Month(context.Background(), MonthRequest{
		VendorID: testVendor,
		Year:     2025,
		Month:    time.Month(13),
	})
	assert.ErrorIs(t, err, ErrMonthOutOfRange)
}
