package services

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/adanyl0v/go-task-tracker/internal/models"
)

// TokenClaims is the payload of a session token. The "_id" name is what
// existing clients read the user ID from.
type TokenClaims struct {
	UserID string `json:"_id"`
	Email  string `json:"email"`
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 session tokens. It holds no
// mutable state, tokens can't be revoked before they expire.
type TokenManager struct {
	issuer     string
	signingKey []byte
	ttl        time.Duration
	now        func() time.Time
}

func NewTokenManager(issuer string, signingKey []byte, ttl time.Duration) *TokenManager {
	return &TokenManager{
		issuer:     issuer,
		signingKey: signingKey,
		ttl:        ttl,
		now:        time.Now,
	}
}

func (m *TokenManager) Issue(user *models.User) (string, time.Time, error) {
	tokenUUID, err := uuid.NewRandom()
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to generate id: %w", err)
	}

	now := m.now()
	expiresAt := now.Add(m.ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, TokenClaims{
		UserID: user.ID,
		Email:  user.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenUUID.String(),
			Issuer:    m.issuer,
			Subject:   user.ID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	})

	signed, err := token.SignedString(m.signingKey)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse returns the identity the token was issued for. Any failure,
// including expiry, is reported as ErrInvalidToken wrapping the cause.
func (m *TokenManager) Parse(token string) (*Identity, error) {
	t, err := jwt.ParseWithClaims(
		token,
		&TokenClaims{},
		func(*jwt.Token) (any, error) {
			return m.signingKey, nil
		},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithIssuedAt(),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*TokenClaims)
	if !ok || claims.UserID == "" {
		return nil, ErrInvalidToken
	}
	return &Identity{
		UserID: claims.UserID,
		Email:  claims.Email,
	}, nil
}
