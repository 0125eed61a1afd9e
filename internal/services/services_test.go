package services

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage/sqlite"
)

const testSigningKey = "test-signing-key"

type testEnv struct {
	store  *sqlite.Storage
	tokens *TokenManager
	auth   AuthService
	tasks  TaskService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := sqlite.Open(context.Background(), zerolog.Nop(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	hasher, err := NewPasswordHasher(config.PasswordHasherBcrypt, bcrypt.MinCost)
	require.NoError(t, err)

	tokens := NewTokenManager("test", []byte(testSigningKey), time.Hour)
	return &testEnv{
		store:  store,
		tokens: tokens,
		auth:   NewAuthService(zerolog.Nop(), store, hasher, tokens),
		tasks:  NewTaskService(zerolog.Nop(), store),
	}
}

// register creates a user and returns its ID.
func (e *testEnv) register(t *testing.T, email string) string {
	t.Helper()

	result, err := e.auth.Register(context.Background(), RegisterParams{
		Username: "user",
		Email:    email,
		Password: "password123",
	})
	require.NoError(t, err)
	return result.UserID
}
