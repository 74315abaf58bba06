package workingdate

import (
	"github.com/cmlabs-hris/working-date-go/internal/pkg/businesstime"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
)

// WorkingDateRequest carries the raw query values. A nil field was not sent.
type WorkingDateRequest struct {
	Days  *string
	Hours *string
	Date  *string
}

// WorkingDateResponse is the computed instant in UTC.
type WorkingDateResponse struct {
	Date string `json:"date"`
}

// InfoResponse describes the calendar the service computes against.
type InfoResponse struct {
	OK bool   `json:"ok"`
	TZ string `json:"tz"`
}

func (r *WorkingDateRequest) Validate() error {
	var errs validator.ValidationErrors

	if r.Days == nil && r.Hours == nil {
		errs = append(errs, validator.ValidationError{
			Field:   "days",
			Message: "at least one of the parameters days or hours is required",
		})
	}

	// Days
	if r.Days != nil {
		if _, ok := validator.ParsePositiveInt(*r.Days); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "days",
				Message: "days must be a positive integer",
			})
		}
	}

	// Hours
	if r.Hours != nil {
		if _, ok := validator.ParsePositiveInt(*r.Hours); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "hours",
				Message: "hours must be a positive integer",
			})
		}
	}

	// Date
	if r.HasDate() {
		if _, ok := businesstime.ParseUTC(*r.Date); !ok {
			errs = append(errs, validator.ValidationError{
				Field:   "date",
				Message: "date must be an ISO 8601 UTC timestamp with a Z suffix (e.g. 2025-04-21T20:00:00Z)",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// HasDate reports whether a non-empty start date was sent. An empty value
// means "now".
func (r *WorkingDateRequest) HasDate() bool {
	return r.Date != nil && *r.Date != ""
}

// DaysValue returns the parsed day count, 0 when absent. Call after Validate.
func (r *WorkingDateRequest) DaysValue() int {
	if r.Days == nil {
		return 0
	}
	n, _ := validator.ParsePositiveInt(*r.Days)
	return n
}

// HoursValue returns the parsed hour count, 0 when absent. Call after Validate.
func (r *WorkingDateRequest) HoursValue() int {
	if r.Hours == nil {
		return 0
	}
	n, _ := validator.ParsePositiveInt(*r.Hours)
	return n
}
