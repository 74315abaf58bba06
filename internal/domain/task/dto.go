package task

import (
	"time"

	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
)

const maxTitleLength = 200

type TaskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	IsCompleted bool      `json:"is_completed"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateTaskRequest struct {
	Title string `json:"title"`
}

func (r *CreateTaskRequest) Validate() error {
	var errs validator.ValidationErrors

	// Title
	if validator.IsEmpty(r.Title) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title is required",
		})
	} else if !validator.MaxLength(r.Title, maxTitleLength) {
		errs = append(errs, validator.ValidationError{
			Field:   "title",
			Message: "title must not exceed 200 characters",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type CompleteTaskResponse struct {
	OK bool `json:"ok"`
}

// ToResponse maps the entity to its JSON shape.
func ToResponse(t Task) TaskResponse {
	return TaskResponse{
		ID:          t.ID,
		Title:       t.Title,
		IsCompleted: t.IsCompleted,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
