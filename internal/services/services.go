package services

import (
	"context"
	"errors"
	"time"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

var (
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrMissingToken       = errors.New("access token is missing")
	ErrInvalidToken       = errors.New("invalid or expired token")
	ErrTaskNotFound       = errors.New("task not found")
)

type AuthService interface {
	// Register a user with the given username, email and password.
	//
	// It hashes the password, generates a unique ID and issues
	// a fresh token for the new user.
	//
	// It returns a *ValidationError if any field is empty or
	// ErrUserAlreadyExists if the email is already taken.
	Register(ctx context.Context, params RegisterParams) (*AuthResult, error)

	// Login authenticates the user by email and password.
	//
	// It returns ErrInvalidCredentials both when the email is
	// unknown and when the password doesn't match, so callers
	// can't tell the two apart.
	Login(ctx context.Context, params LoginParams) (*AuthResult, error)

	// ParseToken verifies the token and returns the identity it
	// was issued for, or ErrInvalidToken.
	ParseToken(token string) (*Identity, error)
}

// TaskService operations are always scoped to OwnerID. A task that
// belongs to another user is reported as ErrTaskNotFound.
type TaskService interface {
	GetTasks(ctx context.Context, ownerID string) ([]*models.Task, error)
	CreateTask(ctx context.Context, params CreateTaskParams) (*models.Task, error)

	// UpdateTask applies the given fields and marks the task as
	// completed. There is no way to reopen a task.
	UpdateTask(ctx context.Context, params UpdateTaskParams) (*models.Task, error)
	DeleteTask(ctx context.Context, params DeleteTaskParams) error
}

type RegisterParams struct {
	Username string
	Email    string
	Password string
}

type LoginParams struct {
	Email    string
	Password string
}

type AuthResult struct {
	UserID    string
	Token     string
	ExpiresAt time.Time
}

type Identity struct {
	UserID string
	Email  string
}

type CreateTaskParams struct {
	OwnerID     string
	Title       string
	Description string
}

// UpdateTaskParams carries a partial update. Nil fields are left unchanged.
type UpdateTaskParams struct {
	ID          string
	OwnerID     string
	Title       *string
	Description *string
}

type DeleteTaskParams struct {
	ID      string
	OwnerID string
}
