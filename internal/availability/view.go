package availability

import (
	"fmt"
)

// Category is the render bucket for one calendar cell.
type Category string

const (
	CategoryPast        Category = "past"
	CategoryOff         Category = "off"
	CategoryFullyBooked Category = "fully_booked"
	CategoryPartial     Category = "partial"
	CategoryAvailable   Category = "available"
)

// DateDecision is the single view-level verdict for one date: whether a
// booking form may select it, what to show, and how to style it.
type DateDecision struct {
	Selectable bool
	Label      string
	Category   Category
	Loading    bool
}

// Decide maps one day's availability into a render decision.
//
// A nil day means the data for this date has not arrived yet; the date is
// treated as available but flagged Loading, so a calendar never looks
// fully blocked while a fetch is in flight. Past dates are never
// selectable but still carry their real status in the label. Selecting an
// already-selected date is a no-op, so such cells are not selectable.
func Decide(day *DayAvailability, isPast, isSelected bool) DateDecision {
	if day == nil {
		return DateDecision{
			Selectable: !isPast && !isSelected,
			Label:      "loading availability",
			Category:   CategoryAvailable,
			Loading:    true,
		}
	}

	d := DateDecision{}
	switch day.Status {
	case DayOff:
		d.Category = CategoryOff
		d.Label = "off day"
		if day.Reason != "" {
			d.Label = fmt.Sprintf("off day: %s", day.Reason)
		}
	case DayFullyBooked:
		d.Category = CategoryFullyBooked
		d.Label = fmt.Sprintf("%d/%d booked", day.CurrentBookings, day.MaxBookingsPerDay)
	case DayPartiallyBooked:
		d.Category = CategoryPartial
		d.Label = fmt.Sprintf("%d/%d booked", day.CurrentBookings, day.MaxBookingsPerDay)
		d.Selectable = true
	default:
		d.Category = CategoryAvailable
		d.Label = "available"
		d.Selectable = true
	}

	if isPast {
		d.Category = CategoryPast
		d.Selectable = false
	}
	if isSelected {
		d.Selectable = false
	}
	return d
}
