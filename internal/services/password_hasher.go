package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexedwards/argon2id"
	"golang.org/x/crypto/bcrypt"

	"github.com/adanyl0v/go-task-tracker/internal/config"
)

var errUnknownHashFormat = errors.New("unknown password hash format")

type PasswordHasher interface {
	Hash(password string) (string, error)

	// Compare reports whether the password matches the hash. A mismatch
	// is not an error.
	Compare(password, hash string) (bool, error)
}

// passwordHasherImpl creates hashes with the configured algorithm but
// verifies any hash it recognizes, so switching algorithms does not lock
// out existing users.
type passwordHasherImpl struct {
	algorithm    string
	bcryptCost   int
	argon2Params *argon2id.Params
}

func NewPasswordHasher(algorithm string, bcryptCost int) (PasswordHasher, error) {
	switch algorithm {
	case config.PasswordHasherBcrypt:
		if bcryptCost < bcrypt.MinCost || bcryptCost > bcrypt.MaxCost {
			return nil, fmt.Errorf("bcrypt cost %d out of range [%d, %d]",
				bcryptCost, bcrypt.MinCost, bcrypt.MaxCost)
		}
	case config.PasswordHasherArgon2id:
	default:
		return nil, fmt.Errorf("unknown password hasher: %q", algorithm)
	}

	return &passwordHasherImpl{
		algorithm:    algorithm,
		bcryptCost:   bcryptCost,
		argon2Params: argon2id.DefaultParams,
	}, nil
}

func (h *passwordHasherImpl) Hash(password string) (string, error) {
	if h.algorithm == config.PasswordHasherArgon2id {
		hash, err := argon2id.CreateHash(password, h.argon2Params)
		if err != nil {
			return "", fmt.Errorf("failed to create argon2id hash: %w", err)
		}
		return hash, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), h.bcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to create bcrypt hash: %w", err)
	}
	return string(hash), nil
}

func (h *passwordHasherImpl) Compare(password, hash string) (bool, error) {
	switch {
	case strings.HasPrefix(hash, "$argon2id$"):
		match, err := argon2id.ComparePasswordAndHash(password, hash)
		if err != nil {
			return false, fmt.Errorf("failed to compare argon2id hash: %w", err)
		}
		return match, nil
	case strings.HasPrefix(hash, "$2a$"),
		strings.HasPrefix(hash, "$2b$"),
		strings.HasPrefix(hash, "$2y$"):
		err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
		if err != nil {
			if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
				return false, nil
			}
			return false, fmt.Errorf("failed to compare bcrypt hash: %w", err)
		}
		return true, nil
	default:
		return false, errUnknownHashFormat
	}
}
