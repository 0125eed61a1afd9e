package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

type taskServiceImpl struct {
	logger zerolog.Logger
	tasks  storage.TaskStorage
}

func NewTaskService(
	logger zerolog.Logger,
	tasks storage.TaskStorage,
) TaskService {
	return &taskServiceImpl{
		logger: logger,
		tasks:  tasks,
	}
}

func (s *taskServiceImpl) GetTasks(ctx context.Context, ownerID string) ([]*models.Task, error) {
	tasks, err := s.tasks.GetTasksByOwnerID(ctx, ownerID)
	if err != nil {
		s.logger.Error().
			Err(err).
			Str("user_id", ownerID).
			Msg("failed to select tasks by owner id")
		return nil, err
	}
	s.logger.Debug().
		Int("count", len(tasks)).
		Str("user_id", ownerID).
		Msg("selected tasks by owner id")
	return tasks, nil
}

func (s *taskServiceImpl) CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error) {
	err := validateCreateTaskParams(params)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("invalid create task params")
		return nil, err
	}

	now := time.Now()
	task := &models.Task{
		OwnerID:        params.OwnerID,
		Title:          params.Title,
		Description:    params.Description,
		CompleteStatus: false,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	taskUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate task uuid")
		return nil, err
	}
	task.ID = taskUUID.String()

	err = s.tasks.CreateTask(ctx, task)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to insert task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", task.OwnerID).
		Msg("created task")
	return task, nil
}

func (s *taskServiceImpl) UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error) {
	taskID, ok := canonicalTaskID(params.ID)
	if !ok {
		s.logger.Error().
			Str("task_id", params.ID).
			Msg("malformed task id")
		return nil, ErrTaskNotFound
	}
	params.ID = taskID

	err := validateUpdateTaskParams(params)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("invalid update task params")
		return nil, err
	}

	// Whatever the caller sent, an update completes the task.
	task, err := s.tasks.UpdateTask(ctx, storage.UpdateTaskParams{
		ID:             params.ID,
		OwnerID:        params.OwnerID,
		Title:          params.Title,
		Description:    params.Description,
		CompleteStatus: true,
		UpdatedAt:      time.Now(),
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Str("user_id", params.OwnerID).
				Msg("task not found")
			return nil, ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to update task")
		return nil, err
	}

	s.logger.Info().
		Str("task_id", task.ID).
		Str("user_id", task.OwnerID).
		Msg("updated task")
	return task, nil
}

func (s *taskServiceImpl) DeleteTask(ctx context.Context, params DeleteTaskParams) error {
	taskID, ok := canonicalTaskID(params.ID)
	if !ok {
		s.logger.Error().
			Str("task_id", params.ID).
			Msg("malformed task id")
		return ErrTaskNotFound
	}
	params.ID = taskID

	err := s.tasks.DeleteTask(ctx, params.ID, params.OwnerID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			s.logger.Error().
				Str("task_id", params.ID).
				Str("user_id", params.OwnerID).
				Msg("task not found")
			return ErrTaskNotFound
		}

		s.logger.Error().
			Err(err).
			Str("task_id", params.ID).
			Msg("failed to delete task")
		return err
	}

	s.logger.Info().
		Str("task_id", params.ID).
		Str("user_id", params.OwnerID).
		Msg("deleted task")
	return nil
}

// canonicalTaskID returns id in the lower-case hyphenated form the stores
// hold. Upper-case, braced and urn:uuid: forms are accepted.
func canonicalTaskID(id string) (string, bool) {
	taskUUID, err := uuid.Parse(id)
	if err != nil {
		return "", false
	}
	return taskUUID.String(), true
}
