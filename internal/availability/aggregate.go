package availability

import (
	"fmt"
	"time"
)

// AggregateParams scopes one aggregation pass.
type AggregateParams struct {
	VendorID  string
	ServiceID string // empty = count the vendor's bookings across all services
	Start     DateKey
	End       DateKey // inclusive
	Capacity  int     // max bookings per day; values < 1 fall back to 1
	Occupying map[BookingStatus]bool // nil = DefaultOccupying
	Location  *time.Location         // reference timezone; nil = UTC
}

// Aggregate derives one DayAvailability per date in the inclusive range
// from the raw booking and off-day records. It is a pure function: same
// inputs, same output, no hidden state.
//
// Status precedence per day: off_day overrides any booking count;
// otherwise the count against capacity decides between fully_booked,
// partially_booked and available. Dates with no records are available.
func Aggregate(p AggregateParams, bookings []BookingRecord, offDays []OffDayRecord) (map[DateKey]DayAvailability, error) {
	if p.VendorID == "" {
		return nil, ErrVendorRequired
	}

	days, err := RangeDays(p.Start, p.End)
	if err != nil {
		return nil, err
	}

	capacity := p.Capacity
	if capacity < 1 {
		capacity = 1
	}
	occupying := p.Occupying
	if occupying == nil {
		occupying = DefaultOccupying()
	}

	// One in-memory grouping pass over the whole range. Never query or
	// count per day: the records for the full range are already here.
	counts := make(map[DateKey]int)
	for _, b := range bookings {
		if b.VendorID != p.VendorID {
			continue
		}
		if p.ServiceID != "" && b.ServiceID != p.ServiceID {
			continue
		}
		if !occupying[b.Status] {
			continue
		}
		if b.EventDate.Before(p.Start) || p.End.Before(b.EventDate) {
			continue
		}
		counts[b.EventDate]++
	}

	vendorOffDays := offDays[:0:0]
	for _, od := range offDays {
		if od.VendorID == p.VendorID {
			vendorOffDays = append(vendorOffDays, od)
		}
	}
	off := ExpandOffDays(vendorOffDays, p.Start, p.End, p.Location)

	out := make(map[DateKey]DayAvailability, len(days))
	for _, d := range days {
		out[d] = buildDay(d, counts[d], capacity, off)
	}
	return out, nil
}

func buildDay(date DateKey, booked, capacity int, off map[DateKey]OffDayRecord) DayAvailability {
	day := DayAvailability{
		Date:              date,
		CurrentBookings:   booked,
		MaxBookingsPerDay: capacity,
	}

	if od, ok := off[date]; ok {
		day.Status = DayOff
		day.Reason = od.Reason
		return day
	}

	switch {
	case booked >= capacity:
		day.Status = DayFullyBooked
		day.Reason = fmt.Sprintf("%d/%d booked", booked, capacity)
	case booked > 0:
		day.Status = DayPartiallyBooked
		day.IsAvailable = true
	default:
		day.Status = DayAvailable
		day.IsAvailable = true
	}
	return day
}
