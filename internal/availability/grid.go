package availability

import (
	"time"
)

// GridSize is the fixed number of cells in a rendered month: 6 rows of 7
// days, so every row is fully populated with leading/trailing days from
// the adjacent months.
const GridSize = 42

// GridDay is one cell of the month grid.
type GridDay struct {
	Date    DateKey
	InMonth bool // belongs to the anchor month (others are dimmed)
	IsToday bool
}

// GenerateGrid produces the 42-day grid for the given month, aligned to a
// Sunday week start. The first cell is the most recent Sunday on or before
// the 1st of the month; the last cell is always a Saturday. today may be
// zero, in which case the current date in loc is used.
func GenerateGrid(year int, month time.Month, loc *time.Location, today DateKey) []GridDay {
	if loc == nil {
		loc = time.UTC
	}
	if today.IsZero() {
		today = Today(loc)
	}

	// Walk at noon so DST transitions around midnight cannot shift the date.
	first := time.Date(year, month, 1, 12, 0, 0, 0, loc)
	start := first.AddDate(0, 0, -int(first.Weekday()))

	grid := make([]GridDay, 0, GridSize)
	for i := 0; i < GridSize; i++ {
		day := start.AddDate(0, 0, i)
		key := MakeDateKey(day, loc)
		grid = append(grid, GridDay{
			Date:    key,
			InMonth: day.Month() == month && day.Year() == year,
			IsToday: key == today,
		})
	}
	return grid
}
