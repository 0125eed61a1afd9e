package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

func (s *Storage) CreateTask(ctx context.Context, task *models.Task) error {
	const insertTaskQuery = `
INSERT INTO tasks (id,
                   owner_id,
                   title,
                   description,
                   complete_status,
                   created_at,
                   updated_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)
`
	_, err := s.pgPool.Exec(
		ctx,
		insertTaskQuery,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.CompleteStatus,
		task.CreatedAt,
		task.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *Storage) GetTasksByOwnerID(ctx context.Context, ownerID string) ([]*models.Task, error) {
	const selectTasksByOwnerIDQuery = `
SELECT id::text,
       title,
       description,
       complete_status,
       created_at,
       updated_at
FROM tasks
WHERE owner_id = $1
ORDER BY created_at, id
`
	rows, err := s.pgPool.Query(
		ctx,
		selectTasksByOwnerIDQuery,
		ownerID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to select tasks by owner id: %w", err)
	}
	defer rows.Close()

	tasks := make([]*models.Task, 0)
	for rows.Next() {
		task := &models.Task{OwnerID: ownerID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.CompleteStatus,
			&task.CreatedAt,
			&task.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		tasks = append(tasks, task)
	}

	err = rows.Err()
	if err != nil {
		return nil, fmt.Errorf("failed to iterate over rows: %w", err)
	}
	return tasks, nil
}

func (s *Storage) UpdateTask(ctx context.Context, params storage.UpdateTaskParams) (*models.Task, error) {
	task := &models.Task{
		ID:        params.ID,
		OwnerID:   params.OwnerID,
		UpdatedAt: params.UpdatedAt,
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = COALESCE($1, title),
    description = COALESCE($2, description),
    complete_status = $3,
    updated_at = $4
WHERE id = $5 AND owner_id = $6
RETURNING title, description, complete_status, created_at
`
	err := s.pgPool.QueryRow(
		ctx,
		updateTaskQuery,
		params.Title,
		params.Description,
		params.CompleteStatus,
		params.UpdatedAt,
		params.ID,
		params.OwnerID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.CompleteStatus,
		&task.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	return task, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id, ownerID string) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = $1 AND owner_id = $2
`
	tag, err := s.pgPool.Exec(
		ctx,
		deleteTaskQuery,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return storage.ErrNotFound
	}
	return nil
}
