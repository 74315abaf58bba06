package businesstime

import (
	"math"
	"time"
)

// hourEpsilon absorbs floating-point drift when a budget ends exactly on a
// shift boundary.
const hourEpsilon = 1e-9

// AddBusinessDays advances start by n business days, keeping the local clock
// (hour, minute, second, nanosecond). n <= 0 returns start in local time.
func (s *Schedule) AddBusinessDays(start time.Time, n int, holidays HolidaySet) time.Time {
	local := start.In(s.loc)
	if n <= 0 {
		return local
	}

	d := DateOf(local)
	for i := 0; i < n; i++ {
		d = nextBusinessDate(d, holidays)
	}

	return time.Date(d.Year, d.Month, d.Day,
		local.Hour(), local.Minute(), local.Second(), local.Nanosecond(), s.loc)
}

// AddBusinessHours walks shifts forward from the forward-normalized start,
// consuming hours of working time. Lunch, after-hours, weekends and holidays
// are skipped. The result has minute precision.
func (s *Schedule) AddBusinessHours(start time.Time, hours float64, holidays HolidaySet) time.Time {
	cur := s.NormalizeForward(start, holidays)
	remaining := hours

	for remaining > 0 {
		var shiftEnd time.Time
		morning := false

		switch {
		case s.InMorning(cur):
			shiftEnd = s.at(cur, s.morningEnd)
			morning = true
		case s.InAfternoon(cur):
			shiftEnd = s.at(cur, s.afternoonEnd)
		default:
			cur = s.NormalizeForward(cur, holidays)
			continue
		}

		available := math.Max(0, shiftEnd.Sub(cur).Hours())
		if remaining <= available+hourEpsilon {
			cur = s.truncateMinute(cur.Add(hoursToDuration(remaining)))
			remaining = 0
			break
		}

		remaining -= available
		if morning {
			cur = s.at(cur, s.afternoonStart)
		} else {
			cur = s.atDate(nextBusinessDate(DateOf(cur), holidays), s.morningStart)
		}
	}

	return cur
}

// Advance resolves a combined request: backward-normalize start once, then
// add days, then add hours. Zero days or hours skip that step.
func (s *Schedule) Advance(start time.Time, days int, hours float64, holidays HolidaySet) time.Time {
	cur := s.NormalizeBackward(start, holidays)
	if days > 0 {
		cur = s.AddBusinessDays(cur, days, holidays)
	}
	if hours > 0 {
		cur = s.AddBusinessHours(cur, hours, holidays)
	}
	return cur
}

// BusinessDuration sums the overlap of [from, to) with every shift on every
// business day in between. It returns 0 when to is not after from.
func (s *Schedule) BusinessDuration(from, to time.Time, holidays HolidaySet) time.Duration {
	if !to.After(from) {
		return 0
	}

	var total time.Duration
	last := DateOf(to.In(s.loc))
	for d := DateOf(from.In(s.loc)); !last.before(d); d = d.AddDays(1) {
		if !isBusinessDate(d, holidays) {
			continue
		}
		total += overlap(from, to, s.atDate(d, s.morningStart), s.atDate(d, s.morningEnd))
		total += overlap(from, to, s.atDate(d, s.afternoonStart), s.atDate(d, s.afternoonEnd))
	}
	return total
}

func overlap(from, to, start, end time.Time) time.Duration {
	if start.Before(from) {
		start = from
	}
	if end.After(to) {
		end = to
	}
	if !end.After(start) {
		return 0
	}
	return end.Sub(start)
}

func hoursToDuration(h float64) time.Duration {
	return time.Duration(math.Round(h * float64(time.Hour)))
}
