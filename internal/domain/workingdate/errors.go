package workingdate

import "errors"

var (
	ErrHolidaysUnavailable = errors.New("holiday calendar unavailable")
)
