package config

import (
	"fmt"
	"time"
)

const (
	EnvDev   = "dev"
	EnvProd  = "prod"
	EnvLocal = "local"
)

const (
	StorageDriverPostgres = "postgres"
	StorageDriverSQLite   = "sqlite"
)

const (
	PasswordHasherBcrypt   = "bcrypt"
	PasswordHasherArgon2id = "argon2id"
)

type Config struct {
	Env      string `env:"ENV" env-required:"true"`
	HTTP     HTTPConfig
	CORS     CORSConfig
	JWT      JWTConfig
	Password PasswordConfig
	Storage  StorageConfig
	Postgres PostgresConfig
	SQLite   SQLiteConfig
}

type HTTPConfig struct {
	Host              string        `env:"HTTP_HOST" env-default:""`
	Port              string        `env:"HTTP_PORT" env-default:"6000"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s"`
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" env-default:"5s"`
}

type CORSConfig struct {
	Origin string `env:"CORS_ORIGIN" env-default:"http://localhost:5173"`
}

type JWTConfig struct {
	Issuer   string        `env:"JWT_ISSUER" env-default:"task-tracker"`
	Secret   string        `env:"JWT_SECRET" env-required:"true"`
	TokenTTL time.Duration `env:"JWT_TTL" env-default:"24h"`
}

type PasswordConfig struct {
	Hasher     string `env:"PASSWORD_HASHER" env-default:"bcrypt"`
	BcryptCost int    `env:"BCRYPT_COST" env-default:"10"`
}

type StorageConfig struct {
	Driver string `env:"STORAGE_DRIVER" env-default:"postgres"`
}

type PostgresConfig struct {
	Host           string        `env:"POSTGRES_HOST" env-default:"localhost"`
	Port           int           `env:"POSTGRES_PORT" env-default:"5432"`
	Username       string        `env:"POSTGRES_USERNAME" env-default:"postgres"`
	Password       string        `env:"POSTGRES_PASSWORD"`
	Database       string        `env:"POSTGRES_DATABASE" env-default:"tasks"`
	SSLMode        string        `env:"POSTGRES_SSL_MODE" env-default:"disable"`
	ConnectTimeout time.Duration `env:"POSTGRES_CONNECT_TIMEOUT" env-default:"10s"`
	PingTimeout    time.Duration `env:"POSTGRES_PING_TIMEOUT" env-default:"10s"`
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH" env-default:"tasks.db"`
}

// Validate checks the enumerated settings that cleanenv can't.
func (c *Config) Validate() error {
	switch c.Env {
	case EnvDev, EnvProd, EnvLocal:
	default:
		return fmt.Errorf("unknown env: %q", c.Env)
	}

	switch c.Storage.Driver {
	case StorageDriverPostgres, StorageDriverSQLite:
	default:
		return fmt.Errorf("unknown storage driver: %q", c.Storage.Driver)
	}

	switch c.Password.Hasher {
	case PasswordHasherBcrypt, PasswordHasherArgon2id:
	default:
		return fmt.Errorf("unknown password hasher: %q", c.Password.Hasher)
	}

	if c.JWT.Secret == "" {
		return fmt.Errorf("jwt secret is empty")
	}
	if c.JWT.TokenTTL <= 0 {
		return fmt.Errorf("jwt ttl must be positive, got %s", c.JWT.TokenTTL)
	}
	return nil
}
