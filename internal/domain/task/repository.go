package task

import "context"

type TaskRepository interface {
	Create(ctx context.Context, t Task) (Task, error)
	List(ctx context.Context) ([]Task, error)
	GetByID(ctx context.Context, id string) (Task, error)
	// MarkCompleted and Delete return ErrTaskNotFound when no row matches.
	MarkCompleted(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
