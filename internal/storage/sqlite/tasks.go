package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

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
VALUES (?, ?, ?, ?, ?, ?, ?)
`
	_, err := s.db.ExecContext(
		ctx,
		insertTaskQuery,
		task.ID,
		task.OwnerID,
		task.Title,
		task.Description,
		task.CompleteStatus,
		toMillis(task.CreatedAt),
		toMillis(task.UpdatedAt),
	)
	if err != nil {
		return fmt.Errorf("failed to insert task: %w", err)
	}
	return nil
}

func (s *Storage) GetTasksByOwnerID(ctx context.Context, ownerID string) ([]*models.Task, error) {
	const selectTasksByOwnerIDQuery = `
SELECT id,
       title,
       description,
       complete_status,
       created_at,
       updated_at
FROM tasks
WHERE owner_id = ?
ORDER BY created_at, id
`
	rows, err := s.db.QueryContext(
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
		var createdAt, updatedAt int64
		task := &models.Task{OwnerID: ownerID}
		err = rows.Scan(
			&task.ID,
			&task.Title,
			&task.Description,
			&task.CompleteStatus,
			&createdAt,
			&updatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan task: %w", err)
		}
		task.CreatedAt = fromMillis(createdAt)
		task.UpdatedAt = fromMillis(updatedAt)
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
		UpdatedAt: fromMillis(toMillis(params.UpdatedAt)),
	}

	const updateTaskQuery = `
UPDATE tasks
SET title = COALESCE(?, title),
    description = COALESCE(?, description),
    complete_status = ?,
    updated_at = ?
WHERE id = ? AND owner_id = ?
RETURNING title, description, complete_status, created_at
`
	var createdAt int64
	err := s.db.QueryRowContext(
		ctx,
		updateTaskQuery,
		params.Title,
		params.Description,
		params.CompleteStatus,
		toMillis(params.UpdatedAt),
		params.ID,
		params.OwnerID,
	).Scan(
		&task.Title,
		&task.Description,
		&task.CompleteStatus,
		&createdAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}
	task.CreatedAt = fromMillis(createdAt)
	return task, nil
}

func (s *Storage) DeleteTask(ctx context.Context, id, ownerID string) error {
	const deleteTaskQuery = `
DELETE FROM tasks
WHERE id = ? AND owner_id = ?
`
	res, err := s.db.ExecContext(
		ctx,
		deleteTaskQuery,
		id,
		ownerID,
	)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get affected rows: %w", err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}
