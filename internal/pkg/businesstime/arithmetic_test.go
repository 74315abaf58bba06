package businesstime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddBusinessDays(t *testing.T) {
	s := testSchedule(t)

	cases := []struct {
		name     string
		start    time.Time
		days     int
		holidays HolidaySet
		want     time.Time
	}{
		{"zero days is identity", at(2025, 4, 16, 10, 0), 0, nil, at(2025, 4, 16, 10, 0)},
		{"next day same clock", at(2025, 4, 15, 10, 0), 1, nil, at(2025, 4, 16, 10, 0)},
		{"friday afternoon skips weekend", at(2025, 4, 11, 16, 0), 1, nil, at(2025, 4, 14, 16, 0)},
		{"holiday after start is skipped", at(2025, 4, 16, 9, 30), 1, easter2025, at(2025, 4, 21, 9, 30)},
		{"five days across easter", at(2025, 4, 10, 10, 0), 5, easter2025, at(2025, 4, 21, 10, 0)},
		{"keeps seconds", time.Date(2025, 4, 15, 10, 0, 42, 0, bogota), 2, nil, time.Date(2025, 4, 17, 10, 0, 42, 0, bogota)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.AddBusinessDays(c.start, c.days, c.holidays)
			assert.True(t, c.want.Equal(got), "got %s, want %s", got, c.want)
		})
	}
}

func TestAddBusinessDays_MonotonicAndClockPreserving(t *testing.T) {
	s := testSchedule(t)
	start := at(2025, 4, 9, 14, 25)

	prev := start
	for n := 1; n <= 30; n++ {
		got := s.AddBusinessDays(start, n, easter2025)
		assert.True(t, got.After(prev), "n=%d: %s not after %s", n, got, prev)
		assert.Equal(t, 14, got.Hour())
		assert.Equal(t, 25, got.Minute())
		assert.True(t, s.IsBusinessDay(got, easter2025))
		prev = got
	}
}

func TestAddBusinessHours(t *testing.T) {
	s := testSchedule(t)

	cases := []struct {
		name     string
		start    time.Time
		hours    float64
		holidays HolidaySet
		want     time.Time
	}{
		{"within morning", at(2025, 4, 16, 8, 0), 2, nil, at(2025, 4, 16, 10, 0)},
		{"lunch is skipped", at(2025, 4, 16, 11, 30), 1, nil, at(2025, 4, 16, 13, 30)},
		{"three hours over lunch", at(2025, 4, 16, 11, 30), 3, nil, at(2025, 4, 16, 15, 30)},
		{"full day ends at afternoon end", at(2025, 4, 16, 8, 0), 8, nil, at(2025, 4, 16, 17, 0)},
		{"morning fills exactly to lunch", at(2025, 4, 16, 8, 0), 4, nil, at(2025, 4, 16, 12, 0)},
		{"rolls to next morning", at(2025, 4, 15, 16, 0), 2, nil, at(2025, 4, 16, 9, 0)},
		{"from lunch starts at afternoon", at(2025, 4, 16, 12, 15), 1, nil, at(2025, 4, 16, 14, 0)},
		{"friday after work to monday", at(2025, 4, 11, 17, 0), 1, nil, at(2025, 4, 14, 9, 0)},
		{"saturday to monday", at(2025, 4, 12, 14, 0), 1, nil, at(2025, 4, 14, 9, 0)},
		{"rollover skips holidays", at(2025, 4, 16, 16, 30), 1, easter2025, at(2025, 4, 21, 8, 30)},
		{"fractional quarter hour", at(2025, 4, 16, 8, 0), 0.25, nil, at(2025, 4, 16, 8, 15)},
		{"fractional across lunch", at(2025, 4, 16, 11, 45), 0.5, nil, at(2025, 4, 16, 13, 15)},
		{"multi-day budget", at(2025, 4, 14, 8, 0), 20, nil, at(2025, 4, 16, 12, 0)},
		{"multi-day budget into afternoon", at(2025, 4, 14, 8, 0), 21, nil, at(2025, 4, 16, 14, 0)},
		{"zero hours returns normalized start", at(2025, 4, 16, 12, 30), 0, nil, at(2025, 4, 16, 13, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.AddBusinessHours(c.start, c.hours, c.holidays)
			assert.True(t, c.want.Equal(got), "got %s, want %s", got, c.want)
			assert.Equal(t, 0, got.Second())
		})
	}
}

func TestAddBusinessHours_ConservesBudget(t *testing.T) {
	s := testSchedule(t)

	for _, hours := range []float64{1, 2.5, 4, 7.75, 8, 13} {
		for _, x := range sweep() {
			from := s.NormalizeForward(x, easter2025)
			to := s.AddBusinessHours(x, hours, easter2025)
			consumed := s.BusinessDuration(from, to, easter2025)
			if !assert.InDelta(t, hours, consumed.Hours(), 1.0/60, "hours=%v start=%s end=%s", hours, x, to) {
				return
			}
		}
	}
}

func TestAdvance(t *testing.T) {
	s := testSchedule(t)

	cases := []struct {
		name     string
		start    time.Time
		days     int
		hours    float64
		holidays HolidaySet
		want     time.Time
	}{
		{"friday 17:00 plus 1 hour", at(2025, 4, 11, 17, 0), 0, 1, nil, at(2025, 4, 14, 9, 0)},
		{"saturday 14:00 plus 1 hour", at(2025, 4, 12, 14, 0), 0, 1, nil, at(2025, 4, 14, 9, 0)},
		{"tuesday 15:00 plus 1 day 4 hours", at(2025, 4, 15, 15, 0), 1, 4, nil, at(2025, 4, 17, 10, 0)},
		{"sunday 18:00 plus 1 day", at(2025, 4, 13, 18, 0), 1, 0, nil, at(2025, 4, 14, 17, 0)},
		{"08:00 plus 8 hours", at(2025, 4, 15, 8, 0), 0, 8, nil, at(2025, 4, 15, 17, 0)},
		{"08:00 plus 1 day", at(2025, 4, 15, 8, 0), 1, 0, nil, at(2025, 4, 16, 8, 0)},
		{"12:30 plus 1 day", at(2025, 4, 15, 12, 30), 1, 0, nil, at(2025, 4, 16, 12, 0)},
		{"11:30 plus 3 hours", at(2025, 4, 15, 11, 30), 0, 3, nil, at(2025, 4, 15, 15, 30)},
		{"5 days 4 hours across easter", at(2025, 4, 10, 10, 0), 5, 4, easter2025, at(2025, 4, 21, 15, 0)},
		{"days resolve before hours", at(2025, 4, 11, 16, 0), 1, 2, nil, at(2025, 4, 15, 9, 0)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got := s.Advance(c.start, c.days, c.hours, c.holidays)
			assert.True(t, c.want.Equal(got), "got %s, want %s", got, c.want)
		})
	}
}

func TestBusinessDuration(t *testing.T) {
	s := testSchedule(t)

	assert.Equal(t, time.Duration(0), s.BusinessDuration(at(2025, 4, 16, 10, 0), at(2025, 4, 16, 10, 0), nil))
	assert.Equal(t, time.Duration(0), s.BusinessDuration(at(2025, 4, 16, 10, 0), at(2025, 4, 16, 9, 0), nil))
	assert.Equal(t, 8*time.Hour, s.BusinessDuration(at(2025, 4, 16, 0, 0), at(2025, 4, 17, 0, 0), nil))
	assert.Equal(t, 90*time.Minute, s.BusinessDuration(at(2025, 4, 16, 11, 30), at(2025, 4, 16, 14, 0), nil))
	assert.Equal(t, 2*time.Hour, s.BusinessDuration(at(2025, 4, 11, 16, 0), at(2025, 4, 14, 9, 0), nil))
	assert.Equal(t, time.Hour, s.BusinessDuration(at(2025, 4, 16, 16, 0), at(2025, 4, 21, 8, 0), easter2025))
}

// Callers in other zones get the same answers as local callers.
func TestAdvance_ZoneIndependent(t *testing.T) {
	s := testSchedule(t)

	tokyo, err := time.LoadLocation("Asia/Tokyo")
	require.NoError(t, err)

	local := at(2025, 4, 15, 15, 0)
	got := s.Advance(local.In(tokyo), 1, 4, nil)
	assert.True(t, at(2025, 4, 17, 10, 0).Equal(got))
	assert.Equal(t, bogota.String(), got.Location().String())
}
