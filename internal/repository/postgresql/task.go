package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/cmlabs-hris/working-date-go/internal/domain/task"
	"github.com/cmlabs-hris/working-date-go/internal/pkg/database"
	"github.com/jackc/pgx/v5"
)

type taskRepositoryImpl struct {
	db *database.DB
}

func NewTaskRepository(db *database.DB) task.TaskRepository {
	return &taskRepositoryImpl{db: db}
}

// Create implements task.TaskRepository.
func (r *taskRepositoryImpl) Create(ctx context.Context, t task.Task) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO tasks (id, title, is_completed, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		RETURNING id, title, is_completed, created_at, updated_at
	`

	var result task.Task
	err := q.QueryRow(ctx, query, t.ID, t.Title, t.IsCompleted).Scan(
		&result.ID,
		&result.Title,
		&result.IsCompleted,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		return task.Task{}, fmt.Errorf("failed to create task: %w", err)
	}

	return result, nil
}

// List implements task.TaskRepository.
func (r *taskRepositoryImpl) List(ctx context.Context) ([]task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, is_completed, created_at, updated_at
		FROM tasks
		ORDER BY created_at ASC, id ASC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	defer rows.Close()

	var tasks []task.Task
	for rows.Next() {
		var t task.Task
		if err := rows.Scan(&t.ID, &t.Title, &t.IsCompleted, &t.CreatedAt, &t.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, t)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return tasks, nil
}

// GetByID implements task.TaskRepository.
func (r *taskRepositoryImpl) GetByID(ctx context.Context, id string) (task.Task, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, title, is_completed, created_at, updated_at
		FROM tasks
		WHERE id = $1
	`

	var result task.Task
	err := q.QueryRow(ctx, query, id).Scan(
		&result.ID,
		&result.Title,
		&result.IsCompleted,
		&result.CreatedAt,
		&result.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return task.Task{}, task.ErrTaskNotFound
		}
		return task.Task{}, fmt.Errorf("failed to get task: %w", err)
	}

	return result, nil
}

// MarkCompleted implements task.TaskRepository.
func (r *taskRepositoryImpl) MarkCompleted(ctx context.Context, id string) error {
	return WithTransaction(ctx, r.db, func(ctx context.Context) error {
		q := GetQuerier(ctx, r.db)

		var completed bool
		err := q.QueryRow(ctx, `SELECT is_completed FROM tasks WHERE id = $1 FOR UPDATE`, id).Scan(&completed)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return task.ErrTaskNotFound
			}
			return fmt.Errorf("failed to lock task: %w", err)
		}
		if completed {
			return nil
		}

		if _, err := q.Exec(ctx, `UPDATE tasks SET is_completed = TRUE, updated_at = NOW() WHERE id = $1`, id); err != nil {
			return fmt.Errorf("failed to complete task: %w", err)
		}
		return nil
	})
}

// Delete implements task.TaskRepository.
func (r *taskRepositoryImpl) Delete(ctx context.Context, id string) error {
	q := GetQuerier(ctx, r.db)

	tag, err := q.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return task.ErrTaskNotFound
	}

	return nil
}
