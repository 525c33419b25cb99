package availability

import (
	"log"
	"time"

	"github.com/teambition/rrule-go"
)

// maxOccurrencesPerOffDay caps recurrence expansion so a malformed or
// unbounded rule cannot blow up a range query.
const maxOccurrencesPerOffDay = 366

// defaultRecurringPattern is used when a record is flagged recurring but
// carries no explicit rule: the same weekday every week.
const defaultRecurringPattern = "FREQ=WEEKLY"

// ExpandOffDays resolves one-off and recurring off-day records onto the
// concrete dates inside the inclusive [start, end] range. Recurring
// patterns are RRULE fragments anchored at the record's date. A one-off
// record on the same date as a recurring occurrence wins, so its reason
// is the one reported. Records with unparseable dates or rules are
// skipped per record, never failing the whole expansion.
func ExpandOffDays(offDays []OffDayRecord, start, end DateKey, loc *time.Location) map[DateKey]OffDayRecord {
	if loc == nil {
		loc = time.UTC
	}

	out := make(map[DateKey]OffDayRecord)
	if end.Before(start) {
		return out
	}

	// Recurring records first so explicit one-offs overwrite them below.
	for _, od := range offDays {
		if !od.IsRecurring {
			continue
		}
		for _, d := range expandRecurring(od, start, end, loc) {
			out[d] = od
		}
	}

	for _, od := range offDays {
		if od.IsRecurring {
			continue
		}
		if od.Date.Before(start) || end.Before(od.Date) {
			continue
		}
		out[od.Date] = od
	}

	return out
}

func expandRecurring(od OffDayRecord, start, end DateKey, loc *time.Location) []DateKey {
	pattern := od.RecurringPattern
	if pattern == "" {
		pattern = defaultRecurringPattern
	}

	r, err := rrule.StrToRRule(pattern)
	if err != nil {
		log.Printf("off-day %s: unparseable recurring pattern %q, skipping: %v", od.ID, pattern, err)
		return nil
	}

	anchor := od.Date.Time(loc)
	if anchor.IsZero() {
		log.Printf("off-day %s: invalid date %q, skipping", od.ID, od.Date)
		return nil
	}
	r.DTStart(anchor)

	var set rrule.Set
	set.RRule(r)

	occ := set.Between(start.Time(loc), end.Time(loc), true)
	if len(occ) > maxOccurrencesPerOffDay {
		log.Printf("off-day %s: expansion truncated at %d occurrences", od.ID, maxOccurrencesPerOffDay)
		occ = occ[:maxOccurrencesPerOffDay]
	}

	dates := make([]DateKey, 0, len(occ))
	for _, t := range occ {
		dates = append(dates, MakeDateKey(t, loc))
	}
	return dates
}
