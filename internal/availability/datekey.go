package availability

import (
	"time"
)

const dateKeyLayout = "2006-01-02"

// DateKey is a calendar date normalized to "YYYY-MM-DD" in one explicit
// reference timezone (the vendor's declared timezone; UTC by default).
// The textual form sorts chronologically, so DateKey comparisons are
// plain string comparisons.
type DateKey string

// MakeDateKey converts an instant into the date it falls on in loc.
func MakeDateKey(t time.Time, loc *time.Location) DateKey {
	if loc == nil {
		loc = time.UTC
	}
	return DateKey(t.In(loc).Format(dateKeyLayout))
}

// ParseDateKey validates a "YYYY-MM-DD" string.
func ParseDateKey(s string) (DateKey, error) {
	t, err := time.Parse(dateKeyLayout, s)
	if err != nil {
		return "", ErrInvalidDateKey
	}
	// Round-trip to reject normalized inputs like 2025-06-31.
	if t.Format(dateKeyLayout) != s {
		return "", ErrInvalidDateKey
	}
	return DateKey(s), nil
}

// Today returns the current date in loc.
func Today(loc *time.Location) DateKey {
	return MakeDateKey(time.Now(), loc)
}

// Time returns the key's date at noon in loc. Noon keeps date arithmetic
// clear of DST transitions that happen around midnight in some zones.
func (k DateKey) Time(loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	t, err := time.Parse(dateKeyLayout, string(k))
	if err != nil {
		return time.Time{}
	}
	// Build noon as a wall-clock time. Adding 12h to midnight would land
	// on 13:00 across a spring-forward transition.
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, loc)
}

// AddDays returns the key shifted by n calendar days.
func (k DateKey) AddDays(n int) DateKey {
	return MakeDateKey(k.Time(time.UTC).AddDate(0, 0, n), time.UTC)
}

// Before reports whether k is strictly earlier than other.
func (k DateKey) Before(other DateKey) bool {
	return k < other
}

// IsZero reports whether the key is unset.
func (k DateKey) IsZero() bool {
	return k == ""
}

// RangeDays expands an inclusive [start, end] range into the ordered
// sequence of dates it contains. An end before start is a caller bug and
// is rejected.
func RangeDays(start, end DateKey) ([]DateKey, error) {
	if start.IsZero() || end.IsZero() {
		return nil, ErrInvalidDateKey
	}
	if end.Before(start) {
		return nil, ErrInvalidRange
	}

	var days []DateKey
	for d := start; !end.Before(d); d = d.AddDays(1) {
		days = append(days, d)
	}
	return days, nil
}
