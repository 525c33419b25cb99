package availability

import (
	"context"
	"log"
	"time"
)

// DataAccess is the boundary to the booking/off-day store. Implementations
// must fetch a whole range in one call; the aggregation never issues
// per-day queries.
type DataAccess interface {
	// FetchBookings returns the vendor's bookings with event dates inside
	// the inclusive [start, end] range, optionally narrowed to one service
	// listing. All statuses are returned; occupancy filtering is the
	// aggregator's concern.
	FetchBookings(ctx context.Context, vendorID, serviceID string, start, end DateKey) ([]BookingRecord, error)

	// FetchOffDays returns all of the vendor's off-day records, recurring
	// ones included. Range filtering happens during expansion.
	FetchOffDays(ctx context.Context, vendorID string) ([]OffDayRecord, error)
}

// RangeRequest asks for the availability of an arbitrary inclusive range.
type RangeRequest struct {
	VendorID  string
	ServiceID string
	Start     DateKey
	End       DateKey
	Capacity  int
	Occupying map[BookingStatus]bool
	Location  *time.Location
}

// RangeResult is the aggregation output for one request.
//
// Degraded is set when the upstream fetch failed and the result fell back
// to "everything available". Callers are expected to surface a warning
// rather than treat the data as authoritative.
type RangeResult struct {
	Days     map[DateKey]DayAvailability
	Degraded bool
}

// MonthRequest asks for one vendor-month as rendered by a calendar.
type MonthRequest struct {
	VendorID  string
	ServiceID string
	Year      int
	Month     time.Month
	Capacity  int
	Occupying map[BookingStatus]bool
	Location  *time.Location
	Today     DateKey // zero = current date in Location
}

// MonthView is a full 42-cell month: the grid plus the per-date statuses
// covering every grid cell, including the adjacent-month spill days.
type MonthView struct {
	Year     int
	Month    time.Month
	Grid     []GridDay
	Days     map[DateKey]DayAvailability
	Degraded bool
}

// Service is the one stateful entry point into the availability domain.
// It owns no caches and no ambient state; every call recomputes from the
// records the DataAccess returns.
type Service struct {
	data DataAccess
}

func NewService(data DataAccess) *Service {
	return &Service{data: data}
}

// Range fetches and aggregates one inclusive date range.
//
// A fetch failure is not fatal: the result falls back to all-available
// (fail-open) with Degraded set, so a flaky backend degrades to a usable
// calendar instead of a blank one. An invalid range is a caller bug and
// is rejected.
func (s *Service) Range(ctx context.Context, req RangeRequest) (*RangeResult, error) {
	if req.VendorID == "" {
		return nil, ErrVendorRequired
	}
	if _, err := RangeDays(req.Start, req.End); err != nil {
		return nil, err
	}

	degraded := false

	bookings, err := s.data.FetchBookings(ctx, req.VendorID, req.ServiceID, req.Start, req.End)
	if err != nil {
		log.Printf("availability: booking fetch failed for vendor %s, degrading to fail-open: %v", req.VendorID, err)
		bookings = nil
		degraded = true
	}

	var offDays []OffDayRecord
	if !degraded {
		offDays, err = s.data.FetchOffDays(ctx, req.VendorID)
		if err != nil {
			log.Printf("availability: off-day fetch failed for vendor %s, degrading to fail-open: %v", req.VendorID, err)
			bookings = nil
			offDays = nil
			degraded = true
		}
	}

	days, err := Aggregate(AggregateParams{
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		Start:     req.Start,
		End:       req.End,
		Capacity:  req.Capacity,
		Occupying: req.Occupying,
		Location:  req.Location,
	}, bookings, offDays)
	if err != nil {
		return nil, err
	}

	return &RangeResult{Days: days, Degraded: degraded}, nil
}

// Month builds the 42-day grid for the requested month and aggregates
// availability over the full grid range, spill days included.
func (s *Service) Month(ctx context.Context, req MonthRequest) (*MonthView, error) {
	if req.Month < time.January || req.Month > time.December {
		return nil, ErrMonthOutOfRange
	}

	grid := GenerateGrid(req.Year, req.Month, req.Location, req.Today)

	result, err := s.Range(ctx, RangeRequest{
		VendorID:  req.VendorID,
		ServiceID: req.ServiceID,
		Start:     grid[0].Date,
		End:       grid[len(grid)-1].Date,
		Capacity:  req.Capacity,
		Occupying: req.Occupying,
		Location:  req.Location,
	})
	if err != nil {
		return nil, err
	}

	return &MonthView{
		Year:     req.Year,
		Month:    req.Month,
		Grid:     grid,
		Days:     result.Days,
		Degraded: result.Degraded,
	}, nil
}
