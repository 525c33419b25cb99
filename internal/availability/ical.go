package availability

import (
	"fmt"
	"sort"
	"time"

	ics "github.com/arran4/golang-ical"
)

// BuildCalendarFeed renders the blocked days of a range result as an
// iCalendar feed: one all-day event per off day or fully booked day.
// Available and partially available days carry no event, so the feed
// stays small and imports cleanly into external calendar apps.
func BuildCalendarFeed(vendorID, vendorName string, days map[DateKey]DayAvailability) string {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetDescription(fmt.Sprintf("Blocked dates for %s", vendorName))

	// Map iteration order is random; sort for a stable feed.
	keys := make([]DateKey, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i].Before(keys[j]) })

	for _, k := range keys {
		day := days[k]
		if day.Status != DayOff && day.Status != DayFullyBooked {
			continue
		}

		ev := cal.AddEvent(fmt.Sprintf("%s-%s@wedmarket", vendorID, day.Date))
		ev.SetDtStampTime(time.Now().UTC())

		start := day.Date.Time(time.UTC).Truncate(24 * time.Hour)
		ev.SetAllDayStartAt(start)
		ev.SetAllDayEndAt(start.AddDate(0, 0, 1))

		switch day.Status {
		case DayOff:
			ev.SetSummary(fmt.Sprintf("%s: off day", vendorName))
			if day.Reason != "" {
				ev.SetDescription(day.Reason)
			}
		case DayFullyBooked:
			ev.SetSummary(fmt.Sprintf("%s: fully booked", vendorName))
			ev.SetDescription(fmt.Sprintf("%d/%d booked", day.CurrentBookings, day.MaxBookingsPerDay))
		}
	}

	return cal.Serialize()
}
