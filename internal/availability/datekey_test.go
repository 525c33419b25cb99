package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	cases := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{"valid date", "2025-06-15", false},
		{"leap day", "2024-02-29", false},
		{"empty", "", true},
		{"wrong layout", "15/06/2025", true},
		{"missing zero padding", "2025-6-15", true},
		{"normalized overflow", "2025-06-31", true},
		{"non-leap february", "2025-02-29", true},
		{"trailing garbage", "2025-06-15T00:00:00Z", true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			key, err := ParseDateKey(tc.input)
			if tc.wantErr {
				assert.ErrorIs(t, err, ErrInvalidDateKey)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DateKey(tc.input), key)
		})
	}
}

func TestDateKeyOrdering(t *testing.T) {
	// Lexicographic order of the textual form must match chronological
	// order, since range filters compare keys as strings.
	assert.True(t, DateKey("2025-06-15").Before("2025-06-16"))
	assert.True(t, DateKey("2025-09-30").Before("2025-10-01"))
	assert.True(t, DateKey("2025-12-31").Before("2026-01-01"))
	assert.False(t, DateKey("2025-06-15").Before("2025-06-15"))
}

func TestDateKeyAddDays(t *testing.T) {
	assert.Equal(t, DateKey("2025-07-01"), DateKey("2025-06-30").AddDays(1))
	assert.Equal(t, DateKey("2025-06-30"), DateKey("2025-07-01").AddDays(-1))
	assert.Equal(t, DateKey("2024-02-29"), DateKey("2024-02-28").AddDays(1))
	assert.Equal(t, DateKey("2025-03-01"), DateKey("2025-02-28").AddDays(1))
}

func TestDateKeyTimeIsNoon(t *testing.T) {
	loc, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	// 2025-03-09 is the US spring-forward date; the noon anchor must not
	// shift the date.
	at := DateKey("2025-03-09").Time(loc)
	assert.Equal(t, 12, at.Hour())
	assert.Equal(t, DateKey("2025-03-09"), MakeDateKey(at, loc))
	assert.Equal(t, DateKey("2025-03-10"), DateKey("2025-03-09").AddDays(1))

	// 2025-11-02 is the US fall-back date; noon must stay at 12:00 wall
	// clock there too.
	at = DateKey("2025-11-02").Time(loc)
	assert.Equal(t, 12, at.Hour())
	assert.Equal(t, DateKey("2025-11-02"), MakeDateKey(at, loc))
}

func TestRangeDays(t *testing.T) {
	t.Run("single day", func(t *testing.T) {
		days, err := RangeDays("2025-06-15", "2025-06-15")
		require.NoError(t, err)
		assert.Equal(t, []DateKey{"2025-06-15"}, days)
	})

	t.Run("full month", func(t *testing.T) {
		days, err := RangeDays("2025-06-01", "2025-06-30")
		require.NoError(t, err)
		require.Len(t, days, 30)
		assert.Equal(t, DateKey("2025-06-01"), days[0])
		assert.Equal(t, DateKey("2025-06-30"), days[29])
	})

	t.Run("crosses month boundary", func(t *testing.T) {
		days, err := RangeDays("2025-06-29", "2025-07-02")
		require.NoError(t, err)
		assert.Equal(t, []DateKey{"2025-06-29", "2025-06-30", "2025-07-01", "2025-07-02"}, days)
	})

	t.Run("end before start", func(t *testing.T) {
		_, err := RangeDays("2025-06-16", "2025-06-15")
		assert.ErrorIs(t, err, ErrInvalidRange)
	})

	t.Run("zero bounds", func(t *testing.T) {
		_, err := RangeDays("", "2025-06-15")
		assert.ErrorIs(t, err, ErrInvalidDateKey)
	})
}
