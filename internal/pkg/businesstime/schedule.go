// Package businesstime implements business-calendar arithmetic over a fixed
// two-shift working day: classifying instants, normalizing out-of-hours
// instants to the nearest working instant, and adding whole business days or
// fractional business hours while skipping lunch, weekends and holidays.
//
// Every classification is done in the schedule's own location. Callers may pass
// instants in any zone; they are converted before the local date or clock is
// inspected.
package businesstime

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Clock is a local wall-clock time with minute precision.
type Clock struct {
	Hour   int
	Minute int
}

// ParseClock parses "HH:MM" (24h).
func ParseClock(s string) (Clock, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return Clock{}, fmt.Errorf("%w: %q", ErrInvalidClock, s)
	}
	return Clock{Hour: h, Minute: m}, nil
}

func (c Clock) minutes() int {
	return c.Hour*60 + c.Minute
}

func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.Hour, c.Minute)
}

// ScheduleConfig is the textual form of a schedule, as read from configuration.
type ScheduleConfig struct {
	Timezone       string
	MorningStart   string
	MorningEnd     string
	AfternoonStart string
	AfternoonEnd   string
}

// StandardConfig is the working day every calculation uses: 08:00-12:00 and
// 13:00-17:00, Monday to Friday, in America/Bogota.
func StandardConfig() ScheduleConfig {
	return ScheduleConfig{
		Timezone:       "America/Bogota",
		MorningStart:   "08:00",
		MorningEnd:     "12:00",
		AfternoonStart: "13:00",
		AfternoonEnd:   "17:00",
	}
}

// Schedule is an immutable two-shift working day in a fixed location.
// The lunch gap is [MorningEnd, AfternoonStart).
type Schedule struct {
	loc            *time.Location
	morningStart   Clock
	morningEnd     Clock
	afternoonStart Clock
	afternoonEnd   Clock
}

// NewSchedule validates cfg and builds a Schedule.
func NewSchedule(cfg ScheduleConfig) (*Schedule, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: %q: %v", ErrUnknownTimezone, cfg.Timezone, err)
	}

	var clocks [4]Clock
	for i, raw := range []string{cfg.MorningStart, cfg.MorningEnd, cfg.AfternoonStart, cfg.AfternoonEnd} {
		c, err := ParseClock(raw)
		if err != nil {
			return nil, err
		}
		clocks[i] = c
	}

	return newSchedule(loc, clocks[0], clocks[1], clocks[2], clocks[3])
}

func newSchedule(loc *time.Location, morningStart, morningEnd, afternoonStart, afternoonEnd Clock) (*Schedule, error) {
	if !(morningStart.minutes() < morningEnd.minutes() &&
		morningEnd.minutes() <= afternoonStart.minutes() &&
		afternoonStart.minutes() < afternoonEnd.minutes()) {
		return nil, fmt.Errorf("%w: %s-%s / %s-%s", ErrInvalidSchedule,
			morningStart, morningEnd, afternoonStart, afternoonEnd)
	}

	return &Schedule{
		loc:            loc,
		morningStart:   morningStart,
		morningEnd:     morningEnd,
		afternoonStart: afternoonStart,
		afternoonEnd:   afternoonEnd,
	}, nil
}

// Location returns the schedule's timezone.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Shifts returns the four shift boundaries in order.
func (s *Schedule) Shifts() (morningStart, morningEnd, afternoonStart, afternoonEnd Clock) {
	return s.morningStart, s.morningEnd, s.afternoonStart, s.afternoonEnd
}

// Local converts t to the schedule's location.
func (s *Schedule) Local(t time.Time) time.Time {
	return t.In(s.loc)
}

// at pins the local date of t to clock c.
func (s *Schedule) at(t time.Time, c Clock) time.Time {
	y, m, d := t.In(s.loc).Date()
	return time.Date(y, m, d, c.Hour, c.Minute, 0, 0, s.loc)
}

// atDate builds the instant for clock c on date d.
func (s *Schedule) atDate(d Date, c Clock) time.Time {
	return time.Date(d.Year, d.Month, d.Day, c.Hour, c.Minute, 0, 0, s.loc)
}

// truncateMinute zeroes seconds and sub-seconds in local time.
func (s *Schedule) truncateMinute(t time.Time) time.Time {
	l := t.In(s.loc)
	return time.Date(l.Year(), l.Month(), l.Day(), l.Hour(), l.Minute(), 0, 0, s.loc)
}
