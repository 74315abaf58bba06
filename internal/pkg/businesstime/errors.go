package businesstime

import "errors"

var (
	ErrInvalidClock    = errors.New("invalid clock, use HH:MM")
	ErrInvalidSchedule = errors.New("shift boundaries must satisfy morning start < morning end <= afternoon start < afternoon end")
	ErrUnknownTimezone = errors.New("unknown timezone")
	ErrInvalidDate     = errors.New("invalid date format, use YYYY-MM-DD")
)
