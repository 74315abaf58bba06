package task

import (
	"context"
	"fmt"
	"strings"

	"github.com/cmlabs-hris/working-date-go/internal/domain/task"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/validator"
	"github.com/google/uuid"
)

type taskServiceImpl struct {
	taskRepo task.TaskRepository
}

func NewTaskService(taskRepo task.TaskRepository) task.Service {
	return &taskServiceImpl{taskRepo: taskRepo}
}

func (s *taskServiceImpl) ListTasks(ctx context.Context) ([]task.TaskResponse, error) {
	tasks, err := s.taskRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}

	responses := make([]task.TaskResponse, 0, len(tasks))
	for _, t := range tasks {
		responses = append(responses, task.ToResponse(t))
	}
	return responses, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, req task.CreateTaskRequest) (task.TaskResponse, error) {
	if err := req.Validate(); err != nil {
		return task.TaskResponse{}, err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return task.TaskResponse{}, fmt.Errorf("failed to generate task id: %w", err)
	}

	created, err := s.taskRepo.Create(ctx, task.Task{
		ID:          id.String(),
		Title:       strings.TrimSpace(req.Title),
		IsCompleted: false,
	})
	if err != nil {
		return task.TaskResponse{}, err
	}

	return task.ToResponse(created), nil
}

func (s *taskServiceImpl) CompleteTask(ctx context.Context, id string) error {
	// Ids are UUIDv7; anything else cannot exist.
	if !validator.IsValidUUID(id) {
		return task.ErrTaskNotFound
	}
	return s.taskRepo.MarkCompleted(ctx, id)
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, id string) error {
	if !validator.IsValidUUID(id) {
		return task.ErrTaskNotFound
	}
	return s.taskRepo.Delete(ctx, id)
}
