package availability

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildCalendarFeed(t *testing.T) {
	days := map[DateKey]DayAvailability{
		"2025-06-15": {Date: "2025-06-15", Status: DayFullyBooked, CurrentBookings: 1, MaxBookingsPerDay: 1},
		"2025-06-16": {Date: "2025-06-16", Status: DayAvailable, IsAvailable: true},
		"2025-06-17": {Date: "2025-06-17", Status: DayPartiallyBooked, CurrentBookings: 1, MaxBookingsPerDay: 3, IsAvailable: true},
		"2025-06-20": {Date: "2025-06-20", Status: DayOff, Reason: "Holiday"},
	}

	feed := BuildCalendarFeed(testVendor, "Rose Garden Photography", days)

	assert.True(t, strings.HasPrefix(feed, "BEGIN:VCALENDAR"))
	assert.Contains(t, feed, "METHOD:PUBLISH")

	// Only blocked days become events.
	assert.Equal(t, 2, strings.Count(feed, "BEGIN:VEVENT"))
	assert.Contains(t, feed, "Rose Garden Photography: fully booked")
	assert.Contains(t, feed, "Rose Garden Photography: off day")
	assert.Contains(t, feed, "Holiday")
	assert.NotContains(t, feed, "available")

	// Deterministic UIDs keep re-imports idempotent.
	assert.Contains(t, feed, testVendor+"-2025-06-15@wedmarket")
	assert.Contains(t, feed, testVendor+"-2025-06-20@wedmarket")
}

func TestBuildCalendarFeedEmpty(t *testing.T) {
	feed := BuildCalendarFeed(testVendor, "Vendor", nil)
	assert.Contains(t, feed, "BEGIN:VCALENDAR")
	assert.NotContains(t, feed, "BEGIN:VEVENT")
}
