package workingdate

import (
	"testing"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string { return &s }

func TestWorkingDateRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		req       WorkingDateRequest
		wantField string
	}{
		{name: "days only", req: WorkingDateRequest{Days: ptr("1")}},
		{name: "hours only", req: WorkingDateRequest{Hours: ptr("4")}},
		{name: "both with date", req: WorkingDateRequest{Days: ptr("5"), Hours: ptr("4"), Date: ptr("2025-04-10T15:00:00Z")}},
		{name: "empty date means now", req: WorkingDateRequest{Days: ptr("1"), Date: ptr("")}},
		{name: "neither", req: WorkingDateRequest{}, wantField: "days"},
		{name: "only date", req: WorkingDateRequest{Date: ptr("2025-04-10T15:00:00Z")}, wantField: "days"},
		{name: "days zero", req: WorkingDateRequest{Days: ptr("0")}, wantField: "days"},
		{name: "days empty", req: WorkingDateRequest{Days: ptr("")}, wantField: "days"},
		{name: "days fractional", req: WorkingDateRequest{Days: ptr("1.5")}, wantField: "days"},
		{name: "hours negative", req: WorkingDateRequest{Hours: ptr("-2")}, wantField: "hours"},
		{name: "hours text", req: WorkingDateRequest{Hours: ptr("two")}, wantField: "hours"},
		{name: "date with offset", req: WorkingDateRequest{Days: ptr("1"), Date: ptr("2025-04-10T10:00:00-05:00")}, wantField: "date"},
		{name: "date without zone", req: WorkingDateRequest{Days: ptr("1"), Date: ptr("2025-04-10T10:00:00")}, wantField: "date"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verrs validator.ValidationErrors
			require.ErrorAs(t, err, &verrs)
			assert.Equal(t, tt.wantField, verrs[0].Field)
		})
	}
}

func TestWorkingDateRequest_ReportsFirstProblemFirst(t *testing.T) {
	req := WorkingDateRequest{Days: ptr("x"), Hours: ptr("y"), Date: ptr("bad")}
	var verrs validator.ValidationErrors
	require.ErrorAs(t, req.Validate(), &verrs)
	require.Len(t, verrs, 3)
	assert.Equal(t, []string{"days", "hours", "date"}, []string{verrs[0].Field, verrs[1].Field, verrs[2].Field})
}

func TestWorkingDateRequest_Values(t *testing.T) {
	req := WorkingDateRequest{Days: ptr(" 5 "), Hours: ptr("4.0")}
	assert.Equal(t, 5, req.DaysValue())
	assert.Equal(t, 4, req.HoursValue())
	assert.False(t, req.HasDate())

	empty := WorkingDateRequest{}
	assert.Equal(t, 0, empty.DaysValue())
	assert.Equal(t, 0, empty.HoursValue())
}
