// Package storage declares the persistence contracts shared by the
// postgres and sqlite backends.
package storage

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	ErrNotFound  = errors.New("record not found")
	ErrDuplicate = errors.New("record already exists")
)

type UserStorage interface {
	// CreateUser inserts the user as is. It returns ErrDuplicate
	// if a user with the same email is already stored.
	CreateUser(ctx context.Context, user *models.User) error

	// GetUserByEmail returns ErrNotFound if there is no user
	// with the given email.
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}

// TaskStorage operations that address a single task always select it by
// both its ID and its owner ID, so a task owned by someone else is
// reported as ErrNotFound.
type TaskStorage interface {
	CreateTask(ctx context.Context, task *models.Task) error
	GetTasksByOwnerID(ctx context.Context, ownerID string) ([]*models.Task, error)
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)
	DeleteTask(ctx context.Context, id, ownerID string) error
}

type Storage interface {
	UserStorage
	TaskStorage
	Close() error
}

// UpdateTaskParams describes a partial update. Nil fields are left as stored.
type UpdateTaskParams struct {
	ID             string
	OwnerID        string
	Title          *string
	Description    *string
	CompleteStatus bool
	UpdatedAt      time.Time
}
