package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnvReader_Read_Defaults(t *testing.T) {
	t.Setenv("ENV", EnvDev)
	t.Setenv("JWT_SECRET", "secret")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, EnvDev, cfg.Env)
	assert.Equal(t, "6000", cfg.HTTP.Port)
	assert.Equal(t, 5*time.Second, cfg.HTTP.ShutdownTimeout)
	assert.Equal(t, "secret", cfg.JWT.Secret)
	assert.Equal(t, 24*time.Hour, cfg.JWT.TokenTTL)
	assert.Equal(t, PasswordHasherBcrypt, cfg.Password.Hasher)
	assert.Equal(t, 10, cfg.Password.BcryptCost)
	assert.Equal(t, StorageDriverPostgres, cfg.Storage.Driver)
	assert.Equal(t, 5432, cfg.Postgres.Port)
}

func TestEnvReader_Read_Overrides(t *testing.T) {
	t.Setenv("ENV", EnvLocal)
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWT_TTL", "15m")
	t.Setenv("STORAGE_DRIVER", StorageDriverSQLite)
	t.Setenv("SQLITE_PATH", "/tmp/x.db")
	t.Setenv("PASSWORD_HASHER", PasswordHasherArgon2id)
	t.Setenv("CORS_ORIGIN", "https://tasks.example.com")

	cfg, err := NewEnvReader().Read()
	require.NoError(t, err)

	assert.Equal(t, 15*time.Minute, cfg.JWT.TokenTTL)
	assert.Equal(t, StorageDriverSQLite, cfg.Storage.Driver)
	assert.Equal(t, "/tmp/x.db", cfg.SQLite.Path)
	assert.Equal(t, PasswordHasherArgon2id, cfg.Password.Hasher)
	assert.Equal(t, "https://tasks.example.com", cfg.CORS.Origin)
}

func TestEnvReader_Read_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{
			name: "missing secret",
			env:  map[string]string{"ENV": EnvDev},
		},
		{
			name: "unknown env",
			env:  map[string]string{"ENV": "staging", "JWT_SECRET": "s"},
		},
		{
			name: "unknown driver",
			env:  map[string]string{"ENV": EnvDev, "JWT_SECRET": "s", "STORAGE_DRIVER": "mongo"},
		},
		{
			name: "unknown hasher",
			env:  map[string]string{"ENV": EnvDev, "JWT_SECRET": "s", "PASSWORD_HASHER": "md5"},
		},
		{
			name: "non-positive ttl",
			env:  map[string]string{"ENV": EnvDev, "JWT_SECRET": "s", "JWT_TTL": "0s"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("JWT_SECRET", "")
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			_, err := NewEnvReader().Read()
			assert.Error(t, err)
		})
	}
}
