package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/o1egl/paseto"
)

var (
	ErrInvalidSessionToken = errors.New("invalid session token")
	ErrSessionTokenExpired = errors.New("session token expired")
)

// SessionToken is the encrypted payload stored in the session cookie.
type SessionToken struct {
	SessionID string    `json:"sid"`
	Expiry    time.Time `json:"expiry"`
}

// TokenManager seals and opens session tokens with a PASETO v2 local key.
type TokenManager struct {
	key    []byte
	maxAge time.Duration
	now    func() time.Time
}

// NewTokenManager checks that the symmetric key is 32 bytes long.
func NewTokenManager(symmetricKey string, maxAge time.Duration) (*TokenManager, error) {
	if len(symmetricKey) != 32 {
		return nil, fmt.Errorf("symmetric key must be 32 bytes long, got %d", len(symmetricKey))
	}
	return &TokenManager{key: []byte(symmetricKey), maxAge: maxAge, now: time.Now}, nil
}

// MaxAge is the absolute lifetime of an issued token.
func (m *TokenManager) MaxAge() time.Duration {
	return m.maxAge
}

// Issue encrypts a token for the given session id.
func (m *TokenManager) Issue(sessionID string) (string, error) {
	claims := SessionToken{
		SessionID: sessionID,
		Expiry:    m.now().Add(m.maxAge),
	}
	token, err := paseto.NewV2().Encrypt(m.key, claims, nil)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}

// Parse decrypts the token and rejects it once it has expired.
func (m *TokenManager) Parse(token string) (*SessionToken, error) {
	var claims SessionToken
	if err := paseto.NewV2().Decrypt(token, m.key, &claims, nil); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidSessionToken, err)
	}
	if claims.SessionID == "" {
		return nil, ErrInvalidSessionToken
	}
	if m.now().After(claims.Expiry) {
		return nil, ErrSessionTokenExpired
	}
	return &claims, nil
}
