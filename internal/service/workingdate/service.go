package workingdate

import (
	"context"
	"fmt"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/domain/workingdate"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

type workingDateServiceImpl struct {
	schedule *businesstime.Schedule
	holidays workingdate.HolidayProvider
	now      func() time.Time
	tracer   trace.Tracer
}

type Option func(*workingDateServiceImpl)

// WithClock replaces time.Now as the start instant when no date is given.
func WithClock(now func() time.Time) Option {
	return func(s *workingDateServiceImpl) { s.now = now }
}

func NewWorkingDateService(schedule *businesstime.Schedule, holidays workingdate.HolidayProvider, opts ...Option) workingdate.Service {
	s := &workingDateServiceImpl{
		schedule: schedule,
		holidays: holidays,
		now:      time.Now,
		tracer:   otel.Tracer("workingdate"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *workingDateServiceImpl) Compute(ctx context.Context, req workingdate.WorkingDateRequest) (*workingdate.WorkingDateResponse, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	days, hours := req.DaysValue(), req.HoursValue()
	ctx, span := s.tracer.Start(ctx, "workingdate.compute",
		trace.WithAttributes(
			attribute.Int("workingdate.days", days),
			attribute.Int("workingdate.hours", hours),
		),
	)
	defer span.End()

	start := s.schedule.Local(s.now())
	if req.HasDate() {
		parsed, _ := s.schedule.ParseUTCToLocal(*req.Date)
		start = parsed
	}

	holidays, err := s.holidays.Holidays(ctx)
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("%w: %w", workingdate.ErrHolidaysUnavailable, err)
	}
	span.SetAttributes(attribute.Int("workingdate.holidays", holidays.Len()))

	result := s.schedule.Advance(start, days, float64(hours), holidays)

	return &workingdate.WorkingDateResponse{Date: businesstime.FormatUTC(result)}, nil
}

func (s *workingDateServiceImpl) Info() workingdate.InfoResponse {
	return workingdate.InfoResponse{OK: true, TZ: s.schedule.Location().String()}
}
