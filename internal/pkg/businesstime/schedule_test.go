package businesstime

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var bogota, _ = time.LoadLocation("America/Bogota")

func testSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := NewSchedule(ScheduleConfig{
		Timezone:       "America/Bogota",
		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "13:00",
		AfternoonEnd:   "17:00",
	})
	require.NoError(t, err)
	return s
}

func at(y int, m time.Month, d, hh, mm int) time.Time {
	return time.Date(y, m, d, hh, mm, 0, 0, bogota)
}

// Holy Thursday and Good Friday 2025.
var easter2025 = NewHolidaySet(
	Date{Year: 2025, Month: time.April, Day: 17},
	Date{Year: 2025, Month: time.April, Day: 18},
)

func TestParseClock(t *testing.T) {
	cases := []struct {
		input   string
		want    Clock
		wantErr bool
	}{
		{"08:00", Clock{8, 0}, false},
		{"17:30", Clock{17, 30}, false},
		{" 13:00 ", Clock{13, 0}, false},
		{"00:00", Clock{0, 0}, false},
		{"23:59", Clock{23, 59}, false},
		{"24:00", Clock{}, true},
		{"12:60", Clock{}, true},
		{"8:00", Clock{}, true},
		{"08:00:00", Clock{}, true},
		{"ab:cd", Clock{}, true},
		{"", Clock{}, true},
	}
	for _, c := range cases {
		got, err := ParseClock(c.input)
		if c.wantErr {
			assert.ErrorIs(t, err, ErrInvalidClock, "ParseClock(%q)", c.input)
			continue
		}
		require.NoError(t, err, "ParseClock(%q)", c.input)
		assert.Equal(t, c.want, got)
		assert.Equal(t, c.want.String(), got.String())
	}
}

func TestNewSchedule(t *testing.T) {
	s := testSchedule(t)
	assert.Equal(t, "America/Bogota", s.Location().String())

	ms, me, as, ae := s.Shifts()
	assert.Equal(t, Clock{8, 0}, ms)
	assert.Equal(t, Clock{12, 0}, me)
	assert.Equal(t, Clock{13, 0}, as)
	assert.Equal(t, Clock{17, 0}, ae)
}

func TestNewSchedule_NoLunchGap(t *testing.T) {
	_, err := NewSchedule(ScheduleConfig{
		Timezone:       "UTC",
		MorningStart:   "09:00",
		MorningEnd:     "12:00",
		AfternoonStart: "12:00",
		AfternoonEnd:   "18:00",
	})
	assert.NoError(t, err)
}

func TestNewSchedule_Invalid(t *testing.T) {
	base := ScheduleConfig{
		Timezone:       "America/Bogota",
		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "13:00",
		AfternoonEnd:   "17:00",
	}

	tz := base
	tz.Timezone = "Mars/Olympus_Mons"
	_, err := NewSchedule(tz)
	assert.ErrorIs(t, err, ErrUnknownTimezone)

	badClock := base
	badClock.AfternoonEnd = "5pm"
	_, err = NewSchedule(badClock)
	assert.ErrorIs(t, err, ErrInvalidClock)

	reversed := base
	reversed.MorningStart = "12:00"
	_, err = NewSchedule(reversed)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	overlapping := base
	overlapping.AfternoonStart = "11:00"
	_, err = NewSchedule(overlapping)
	assert.ErrorIs(t, err, ErrInvalidSchedule)

	emptyAfternoon := base
	emptyAfternoon.AfternoonEnd = "13:00"
	_, err = NewSchedule(emptyAfternoon)
	assert.ErrorIs(t, err, ErrInvalidSchedule)
}

func TestDate(t *testing.T) {
	d, err := ParseDate("2025-04-17")
	require.NoError(t, err)
	assert.Equal(t, Date{2025, time.April, 17}, d)
	assert.Equal(t, "2025-04-17", d.String())
	assert.Equal(t, time.Thursday, d.Weekday())
	assert.Equal(t, Date{2025, time.May, 1}, d.AddDays(14))
	assert.Equal(t, Date{2024, time.December, 31}, Date{2025, time.January, 1}.AddDays(-1))

	for _, bad := range []string{"2025-02-30", "2025-4-17", "17-04-2025", "2025/04/17", ""} {
		_, err := ParseDate(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "ParseDate(%q)", bad)
	}
}

func TestParseHolidaySet(t *testing.T) {
	set, err := ParseHolidaySet([]string{"2025-04-17", "2025-04-18", "2025-04-17"})
	require.NoError(t, err)
	assert.Equal(t, 2, set.Len())
	assert.True(t, set.Contains(Date{2025, time.April, 18}))
	assert.False(t, set.Contains(Date{2025, time.April, 19}))

	_, err = ParseHolidaySet([]string{"2025-04-17", "nope"})
	assert.ErrorIs(t, err, ErrInvalidDate)

	var empty HolidaySet
	assert.False(t, empty.Contains(Date{2025, time.April, 17}))
	assert.Equal(t, 0, empty.Len())
}
