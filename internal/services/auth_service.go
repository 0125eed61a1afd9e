package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/adanyl0v/go-task-tracker/internal/models"
	"github.com/adanyl0v/go-task-tracker/internal/storage"
)

// dummyPassword is hashed once per service. Logins for unknown emails are
// compared against that hash so they take as long as a wrong password.
const dummyPassword = "dummy-password"

type authServiceImpl struct {
	logger    zerolog.Logger
	users     storage.UserStorage
	hasher    PasswordHasher
	tokens    *TokenManager
	dummyHash string
}

func NewAuthService(
	logger zerolog.Logger,
	users storage.UserStorage,
	hasher PasswordHasher,
	tokens *TokenManager,
) AuthService {
	dummyHash, err := hasher.Hash(dummyPassword)
	if err != nil {
		logger.Error().
			Err(err).
			Msg("failed to hash dummy password")
	}

	return &authServiceImpl{
		logger:    logger,
		users:     users,
		hasher:    hasher,
		tokens:    tokens,
		dummyHash: dummyHash,
	}
}

func (s *authServiceImpl) Register(ctx context.Context, params RegisterParams) (*AuthResult, error) {
	err := validateRegisterParams(params)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("invalid register params")
		return nil, err
	}

	now := time.Now()
	user := &models.User{
		Username:  params.Username,
		Email:     normalizeEmail(params.Email),
		CreatedAt: now,
		UpdatedAt: now,
	}

	userUUID, err := uuid.NewV7()
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to generate user uuid")
		return nil, err
	}
	user.ID = userUUID.String()

	passwordHash, err := s.hasher.Hash(params.Password)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to hash password")
		return nil, err
	}
	user.PasswordHash = passwordHash

	err = s.users.CreateUser(ctx, user)
	if err != nil {
		if errors.Is(err, storage.ErrDuplicate) {
			s.logger.Error().
				Str("email", user.Email).
				Msg("user with this email already exists")
			return nil, ErrUserAlreadyExists
		}

		s.logger.Error().
			Err(err).
			Msg("failed to insert user")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("inserted user")

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("registered user")
	return &AuthResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) Login(ctx context.Context, params LoginParams) (*AuthResult, error) {
	err := validateLoginParams(params)
	if err != nil {
		s.logger.Debug().
			Err(err).
			Msg("invalid login params")
		return nil, err
	}

	email := normalizeEmail(params.Email)
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			_, _ = s.hasher.Compare(params.Password, s.dummyHash)
			s.logger.Error().
				Str("email", email).
				Msg("user not found")
			return nil, ErrInvalidCredentials
		}

		s.logger.Error().
			Err(err).
			Str("email", email).
			Msg("failed to select user by email")
		return nil, err
	}
	s.logger.Debug().
		Str("user_id", user.ID).
		Str("email", user.Email).
		Msg("selected user")

	match, err := s.hasher.Compare(params.Password, user.PasswordHash)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to compare password")
		return nil, err
	} else if !match {
		s.logger.Error().
			Str("user_id", user.ID).
			Msg("passwords do not match")
		return nil, ErrInvalidCredentials
	}

	token, expiresAt, err := s.tokens.Issue(user)
	if err != nil {
		s.logger.Error().
			Err(err).
			Msg("failed to issue token")
		return nil, err
	}

	s.logger.Info().
		Str("user_id", user.ID).
		Msg("logged in")
	return &AuthResult{
		UserID:    user.ID,
		Token:     token,
		ExpiresAt: expiresAt,
	}, nil
}

func (s *authServiceImpl) ParseToken(token string) (*Identity, error) {
	if token == "" {
		return nil, ErrMissingToken
	}

	identity, err := s.tokens.Parse(token)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}
	return identity, nil
}
