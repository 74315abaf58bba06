package task

import (
	"strings"
	"testing"
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateTaskRequest_Validate(t *testing.T) {
	assert.NoError(t, (&CreateTaskRequest{Title: "Call the bank"}).Validate())

	for _, title := range []string{"", "   ", strings.Repeat("x", 201)} {
		err := (&CreateTaskRequest{Title: title}).Validate()
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs, "title %q", title)
		assert.Equal(t, "title", verrs[0].Field)
	}
}

func TestToResponse(t *testing.T) {
	now := time.Date(2025, 4, 8, 13, 0, 0, 0, time.UTC)
	resp := ToResponse(Task{ID: "id", Title: "t", IsCompleted: true, CreatedAt: now, UpdatedAt: now})
	assert.Equal(t, TaskResponse{ID: "id", Title: "t", IsCompleted: true, CreatedAt: now, UpdatedAt: now}, resp)
}
