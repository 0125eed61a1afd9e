package services

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr(s string) *string {
	return &s
}

func TestTaskService_CreateTask(t *testing.T) {
	env := newTestEnv(t)
	ownerID := env.register(t, "alice@example.com")

	task, err := env.tasks.CreateTask(context.Background(), CreateTaskParams{
		OwnerID:     ownerID,
		Title:       "Buy milk",
		Description: "2%",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, task.ID)
	assert.Equal(t, ownerID, task.OwnerID)
	assert.Equal(t, "Buy milk", task.Title)
	assert.Equal(t, "2%", task.Description)
	assert.False(t, task.CompleteStatus)
	assert.False(t, task.CreatedAt.IsZero())
}

func TestTaskService_CreateTask_Validation(t *testing.T) {
	env := newTestEnv(t)
	ownerID := env.register(t, "alice@example.com")

	tests := []struct {
		name       string
		params     CreateTaskParams
		wantReason string
	}{
		{
			name:       "empty title",
			params:     CreateTaskParams{OwnerID: ownerID, Description: "2%"},
			wantReason: "Title is required",
		},
		{
			name:       "blank title",
			params:     CreateTaskParams{OwnerID: ownerID, Title: "   ", Description: "2%"},
			wantReason: "Title is required",
		},
		{
			name:       "empty description",
			params:     CreateTaskParams{OwnerID: ownerID, Title: "Buy milk"},
			wantReason: "Description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := env.tasks.CreateTask(context.Background(), tt.params)

			var validationErr *ValidationError
			require.ErrorAs(t, err, &validationErr)
			assert.Equal(t, tt.wantReason, validationErr.Reason)
		})
	}

	tasks, err := env.tasks.GetTasks(context.Background(), ownerID)
	require.NoError(t, err)
	assert.Empty(t, tasks, "rejected tasks must not be stored")
}

func TestTaskService_GetTasks(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")

	tasks, err := env.tasks.GetTasks(ctx, alice)
	require.NoError(t, err)
	assert.NotNil(t, tasks)
	assert.Empty(t, tasks)

	for _, title := range []string{"one", "two"} {
		_, err = env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: alice, Title: title, Description: "d"})
		require.NoError(t, err)
	}
	_, err = env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: bob, Title: "bob's", Description: "d"})
	require.NoError(t, err)

	first, err := env.tasks.GetTasks(ctx, alice)
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := env.tasks.GetTasks(ctx, alice)
	require.NoError(t, err)
	assert.Equal(t, first, second, "listing without writes must be stable")
}

func TestTaskService_UpdateTask_ForcesCompletion(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.register(t, "alice@example.com")

	created, err := env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: ownerID, Title: "Buy milk", Description: "2%"})
	require.NoError(t, err)

	updated, err := env.tasks.UpdateTask(ctx, UpdateTaskParams{
		ID:          created.ID,
		OwnerID:     ownerID,
		Description: ptr("oat"),
	})
	require.NoError(t, err)
	assert.True(t, updated.CompleteStatus)
	assert.Equal(t, "Buy milk", updated.Title)
	assert.Equal(t, "oat", updated.Description)

	// A second update still leaves the task completed.
	updated, err = env.tasks.UpdateTask(ctx, UpdateTaskParams{ID: created.ID, OwnerID: ownerID})
	require.NoError(t, err)
	assert.True(t, updated.CompleteStatus)

	tasks, err := env.tasks.GetTasks(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.True(t, tasks[0].CompleteStatus)
}

func TestTaskService_UpdateTask_Validation(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.register(t, "alice@example.com")

	created, err := env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: ownerID, Title: "Buy milk", Description: "2%"})
	require.NoError(t, err)

	_, err = env.tasks.UpdateTask(ctx, UpdateTaskParams{ID: created.ID, OwnerID: ownerID, Title: ptr("")})
	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	assert.Equal(t, "Title must not be empty", validationErr.Reason)

	tasks, err := env.tasks.GetTasks(ctx, ownerID)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].CompleteStatus, "rejected update must not complete the task")
}

func TestTaskService_OwnershipIsInvisible(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.register(t, "alice@example.com")
	bob := env.register(t, "bob@example.com")

	bobsTask, err := env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: bob, Title: "secret", Description: "d"})
	require.NoError(t, err)

	_, err = env.tasks.UpdateTask(ctx, UpdateTaskParams{ID: bobsTask.ID, OwnerID: alice})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = env.tasks.DeleteTask(ctx, DeleteTaskParams{ID: bobsTask.ID, OwnerID: alice})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	tasks, err := env.tasks.GetTasks(ctx, bob)
	require.NoError(t, err)
	require.Len(t, tasks, 1)
	assert.False(t, tasks[0].CompleteStatus)
}

func TestTaskService_DeleteTask(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.register(t, "alice@example.com")

	created, err := env.tasks.CreateTask(ctx, CreateTaskParams{OwnerID: ownerID, Title: "Buy milk", Description: "2%"})
	require.NoError(t, err)

	err = env.tasks.DeleteTask(ctx, DeleteTaskParams{ID: created.ID, OwnerID: ownerID})
	require.NoError(t, err)

	tasks, err := env.tasks.GetTasks(ctx, ownerID)
	require.NoError(t, err)
	assert.Empty(t, tasks)

	err = env.tasks.DeleteTask(ctx, DeleteTaskParams{ID: created.ID, OwnerID: ownerID})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_MalformedID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.register(t, "alice@example.com")

	_, err := env.tasks.UpdateTask(ctx, UpdateTaskParams{ID: "not-a-uuid", OwnerID: ownerID})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = env.tasks.DeleteTask(ctx, DeleteTaskParams{ID: "not-a-uuid", OwnerID: ownerID})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = env.tasks.DeleteTask(ctx, DeleteTaskParams{ID: uuid.NewString(), OwnerID: ownerID})
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskService_CanonicalID(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	ownerID := env.register(t, "alice@example.com")

	tests := []struct {
		name   string
		format func(id string) string
	}{
		{name: "upper case", format: strings.ToUpper},
		{name: "braced", format: func(id string) string { return "{" + id + "}" }},
		{name: "urn", format: func(id string) string { return "urn:uuid:" + id }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			created, err := env.tasks.CreateTask(ctx, CreateTaskParams{
				OwnerID:     ownerID,
				Title:       "Buy milk",
				Description: "2%",
			})
			require.NoError(t, err)

			updated, err := env.tasks.UpdateTask(ctx, UpdateTaskParams{
				ID:      tt.format(created.ID),
				OwnerID: ownerID,
			})
			require.NoError(t, err)
			assert.Equal(t, created.ID, updated.ID)
			assert.True(t, updated.CompleteStatus)

			err = env.tasks.DeleteTask(ctx, DeleteTaskParams{
				ID:      tt.format(created.ID),
				OwnerID: ownerID,
			})
			require.NoError(t, err)
		})
	}
}
