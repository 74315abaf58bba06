package businesstime

import "time"

// Position classifies a local instant against the working day.
type Position int

const (
	OffDay Position = iota // weekend or holiday, any clock
	BeforeWork
	Morning
	Lunch
	Afternoon
	AfterWork
)

var positionNames = [...]string{
	OffDay:     "off_day",
	BeforeWork: "before_work",
	Morning:    "morning",
	Lunch:      "lunch",
	Afternoon:  "afternoon",
	AfterWork:  "after_work",
}

func (p Position) String() string {
	if p < 0 || int(p) >= len(positionNames) {
		return "unknown"
	}
	return positionNames[p]
}

// IsWeekend reports whether t falls on a local Saturday or Sunday.
func (s *Schedule) IsWeekend(t time.Time) bool {
	return isWeekendDay(t.In(s.loc).Weekday())
}

// IsHoliday reports whether the local date of t is in holidays.
func (s *Schedule) IsHoliday(t time.Time, holidays HolidaySet) bool {
	return holidays.Contains(DateOf(t.In(s.loc)))
}

// IsBusinessDay reports whether the local date of t is neither weekend nor holiday.
func (s *Schedule) IsBusinessDay(t time.Time, holidays HolidaySet) bool {
	return isBusinessDate(DateOf(t.In(s.loc)), holidays)
}

// InMorning reports whether t falls in [morningStart, morningEnd).
func (s *Schedule) InMorning(t time.Time) bool {
	return s.within(t, s.morningStart, s.morningEnd)
}

// InAfternoon reports whether t falls in [afternoonStart, afternoonEnd).
func (s *Schedule) InAfternoon(t time.Time) bool {
	return s.within(t, s.afternoonStart, s.afternoonEnd)
}

// InLunch reports whether t falls in the gap [morningEnd, afternoonStart).
func (s *Schedule) InLunch(t time.Time) bool {
	return s.within(t, s.morningEnd, s.afternoonStart)
}

// BeforeWork is true from midnight to morningStart (exclusive).
func (s *Schedule) BeforeWork(t time.Time) bool {
	return t.Before(s.at(t, s.morningStart))
}

// AfterWork is true from afternoonEnd (inclusive) to midnight.
func (s *Schedule) AfterWork(t time.Time) bool {
	return !t.Before(s.at(t, s.afternoonEnd))
}

// Classify places t in exactly one Position. Non-business days are OffDay
// regardless of the clock.
func (s *Schedule) Classify(t time.Time, holidays HolidaySet) Position {
	switch {
	case !s.IsBusinessDay(t, holidays):
		return OffDay
	case s.BeforeWork(t):
		return BeforeWork
	case s.InMorning(t):
		return Morning
	case s.InLunch(t):
		return Lunch
	case s.InAfternoon(t):
		return Afternoon
	default:
		return AfterWork
	}
}

// within tests the half-open interval [from, to) on t's local date.
func (s *Schedule) within(t time.Time, from, to Clock) bool {
	start := s.at(t, from)
	end := s.at(t, to)
	return !t.Before(start) && t.Before(end)
}

func isWeekendDay(wd time.Weekday) bool {
	return wd == time.Saturday || wd == time.Sunday
}

func isBusinessDate(d Date, holidays HolidaySet) bool {
	return !isWeekendDay(d.Weekday()) && !holidays.Contains(d)
}

// nextBusinessDate returns the first business date strictly after d.
func nextBusinessDate(d Date, holidays HolidaySet) Date {
	d = d.AddDays(1)
	for !isBusinessDate(d, holidays) {
		d = d.AddDays(1)
	}
	return d
}

// prevBusinessDate returns the last business date strictly before d.
func prevBusinessDate(d Date, holidays HolidaySet) Date {
	d = d.AddDays(-1)
	for !isBusinessDate(d, holidays) {
		d = d.AddDays(-1)
	}
	return d
}
