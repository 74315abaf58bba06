package businesstime

import "time"

// Direction selects which neighbouring working instant normalization picks.
type Direction int

const (
	Backward Direction = iota // nearest working instant at or before
	Forward                   // nearest working instant at or after
)

type normalizeRule func(s *Schedule, local time.Time, holidays HolidaySet) time.Time

// normalizeTable is indexed by [Direction][Position]. Lunch is intentionally
// asymmetric: backward lands on the start of the gap, forward on its end.
var normalizeTable = [2][6]normalizeRule{
	Backward: {
		OffDay:     prevBusinessDayEnd,
		BeforeWork: prevBusinessDayEnd,
		Morning:    keepMinute,
		Lunch:      sameDay(func(s *Schedule) Clock { return s.morningEnd }),
		Afternoon:  keepMinute,
		AfterWork:  sameDay(func(s *Schedule) Clock { return s.afternoonEnd }),
	},
	Forward: {
		OffDay:     nextBusinessDayStart,
		BeforeWork: sameDay(func(s *Schedule) Clock { return s.morningStart }),
		Morning:    keepMinute,
		Lunch:      sameDay(func(s *Schedule) Clock { return s.afternoonStart }),
		Afternoon:  keepMinute,
		AfterWork:  nextBusinessDayStart,
	},
}

// Normalize maps t to a working instant in the given direction. The result is
// always in the schedule's location with zero seconds.
func (s *Schedule) Normalize(t time.Time, dir Direction, holidays HolidaySet) time.Time {
	local := t.In(s.loc)
	return normalizeTable[dir][s.Classify(local, holidays)](s, local, holidays)
}

// NormalizeBackward returns the latest working instant not after t.
func (s *Schedule) NormalizeBackward(t time.Time, holidays HolidaySet) time.Time {
	return s.Normalize(t, Backward, holidays)
}

// NormalizeForward returns the earliest working instant not before t.
func (s *Schedule) NormalizeForward(t time.Time, holidays HolidaySet) time.Time {
	return s.Normalize(t, Forward, holidays)
}

func keepMinute(s *Schedule, local time.Time, _ HolidaySet) time.Time {
	return s.truncateMinute(local)
}

func sameDay(boundary func(*Schedule) Clock) normalizeRule {
	return func(s *Schedule, local time.Time, _ HolidaySet) time.Time {
		return s.at(local, boundary(s))
	}
}

func prevBusinessDayEnd(s *Schedule, local time.Time, holidays HolidaySet) time.Time {
	return s.atDate(prevBusinessDate(DateOf(local), holidays), s.afternoonEnd)
}

func nextBusinessDayStart(s *Schedule, local time.Time, holidays HolidaySet) time.Time {
	return s.atDate(nextBusinessDate(DateOf(local), holidays), s.morningStart)
}
