package task

import "context"

type Service interface {
	ListTasks(ctx context.Context) ([]TaskResponse, error)
	CreateTask(ctx context.Context, req CreateTaskRequest) (TaskResponse, error)
	CompleteTask(ctx context.Context, id string) error
	DeleteTask(ctx context.Context, id string) error
}
