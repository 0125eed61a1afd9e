package app

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/adanyl0v/go-task-tracker/internal/config"
	"github.com/adanyl0v/go-task-tracker/internal/storage/sqlite"
)

const testOrigin = "http://localhost:5173"

func newTestApp(t *testing.T, hasher string) *App {
	t.Helper()

	s, err := sqlite.Open(context.Background(), zerolog.Nop(), sqlite.MemoryPath)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	return &App{
		logger: zerolog.Nop(),
		cfg: &config.Config{
			Env:  config.EnvLocal,
			CORS: config.CORSConfig{Origin: testOrigin},
			JWT: config.JWTConfig{
				Issuer:   "task-tracker",
				Secret:   "secret",
				TokenTTL: time.Hour,
			},
			Password: config.PasswordConfig{
				Hasher:     hasher,
				BcryptCost: 4,
			},
			Storage: config.StorageConfig{Driver: config.StorageDriverSQLite},
		},
		storage: s,
	}
}

func newTestRouter(t *testing.T, a *App) *gin.Engine {
	t.Helper()

	gin.SetMode(gin.TestMode)
	router := gin.New()
	a.registerRoutes(router)
	return router
}

func TestRegisterRoutes_CORS(t *testing.T) {
	router := newTestRouter(t, newTestApp(t, config.PasswordHasherBcrypt))

	t.Run("preflight from allowed origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodOptions, "/api/tasks/get-tasks", nil)
		req.Header.Set("Origin", testOrigin)
		req.Header.Set("Access-Control-Request-Method", http.MethodGet)
		req.Header.Set("Access-Control-Request-Headers", "Authorization")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		assert.Equal(t, testOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		assert.Equal(t, "true", rec.Header().Get("Access-Control-Allow-Credentials"))
	})

	t.Run("foreign origin", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set("Origin", "http://evil.example")
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Empty(t, rec.Header().Get("Access-Control-Allow-Origin"))
	})

	t.Run("same-origin request", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "Server is ready", rec.Body.String())
	})
}

func TestMustNewHandler_UnknownHasher(t *testing.T) {
	a := newTestApp(t, "md5")
	assert.Panics(t, func() { a.mustNewHandler() })
}

func TestMustInitApplicationLogger_UnknownEnv(t *testing.T) {
	a := newTestApp(t, config.PasswordHasherBcrypt)
	a.cfg.Env = "staging"
	assert.Panics(t, a.MustInitApplicationLogger)
}

func TestMustOpenStorage_SQLite(t *testing.T) {
	a := newTestApp(t, config.PasswordHasherArgon2id)
	a.cfg.SQLite.Path = sqlite.MemoryPath
	a.MustOpenStorage()

	require.NoError(t, a.closeStorage())
}
