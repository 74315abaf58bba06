package workingdate

import (
	"context"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
)

// HolidayProvider supplies the current set of non-working dates.
type HolidayProvider interface {
	Holidays(ctx context.Context) (businesstime.HolidaySet, error)
}

// Service computes working dates against the configured schedule.
type Service interface {
	// Compute validates req and returns the resulting instant. Validation
	// failures are validator.ValidationErrors; holiday failures wrap
	// ErrHolidaysUnavailable.
	Compute(ctx context.Context, req WorkingDateRequest) (*WorkingDateResponse, error)
	Info() InfoResponse
}
