package availability

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDecide(t *testing.T) {
	offDay := &DayAvailability{Date: "2025-06-20", Status: DayOff, Reason: "Holiday"}
	fullDay := &DayAvailability{Date: "2025-06-15", Status: DayFullyBooked, CurrentBookings: 1, MaxBookingsPerDay: 1}
	partialDay := &DayAvailability{Date: "2025-06-16", Status: DayPartiallyBooked, CurrentBookings: 1, MaxBookingsPerDay: 3, IsAvailable: true}
	freeDay := &DayAvailability{Date: "2025-06-17", Status: DayAvailable, IsAvailable: true}

	cases := []struct {
		name       string
		day        *DayAvailability
		isPast     bool
		isSelected bool
		want       DateDecision
	}{
		{
			name: "available day is selectable",
			day:  freeDay,
			want: DateDecision{Selectable: true, Label: "available", Category: CategoryAvailable},
		},
		{
			name: "partial day is selectable with count",
			day:  partialDay,
			want: DateDecision{Selectable: true, Label: "1/3 booked", Category: CategoryPartial},
		},
		{
			name: "fully booked day is blocked",
			day:  fullDay,
			want: DateDecision{Selectable: false, Label: "1/1 booked", Category: CategoryFullyBooked},
		},
		{
			name: "off day carries its reason",
			day:  offDay,
			want: DateDecision{Selectable: false, Label: "off day: Holiday", Category: CategoryOff},
		},
		{
			name: "off day without reason",
			day:  &DayAvailability{Date: "2025-06-21", Status: DayOff},
			want: DateDecision{Selectable: false, Label: "off day", Category: CategoryOff},
		},
		{
			name:   "past available day is never selectable",
			day:    freeDay,
			isPast: true,
			want:   DateDecision{Selectable: false, Label: "available", Category: CategoryPast},
		},
		{
			name:   "past off day keeps its label",
			day:    offDay,
			isPast: true,
			want:   DateDecision{Selectable: false, Label: "off day: Holiday", Category: CategoryPast},
		},
		{
			name:       "selected day cannot be re-selected",
			day:        freeDay,
			isSelected: true,
			want:       DateDecision{Selectable: false, Label: "available", Category: CategoryAvailable},
		},
		{
			name: "missing data loads fail-open",
			day:  nil,
			want: DateDecision{Selectable: true, Label: "loading availability", Category: CategoryAvailable, Loading: true},
		},
		{
			name:   "missing data in the past stays blocked",
			day:    nil,
			isPast: true,
			want:   DateDecision{Selectable: false, Label: "loading availability", Category: CategoryAvailable, Loading: true},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Decide(tc.day, tc.isPast, tc.isSelected)
			assert.Equal(t, tc.want, got)
		})
	}
}
