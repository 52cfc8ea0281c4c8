package services

import (
	"CarePortal/models"
	"CarePortal/sessions"
	"CarePortal/utils"
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// RoleSource looks up the current role of a user. An empty role means the user is gone.
type RoleSource interface {
	CurrentRole(ctx context.Context, userID string) (models.Role, error)
}

// SessionService ties the server-side session store to the encrypted cookie token.
type SessionService struct {
	store         sessions.Store
	tokens        *utils.TokenManager
	roles         RoleSource
	recheckPeriod time.Duration
	now           func() time.Time
}

func NewSessionService(store sessions.Store, tokens *utils.TokenManager, roles RoleSource, recheckPeriod time.Duration) *SessionService {
	return &SessionService{
		store:         store,
		tokens:        tokens,
		roles:         roles,
		recheckPeriod: recheckPeriod,
		now:           time.Now,
	}
}

// Start opens a session for the user and returns the cookie token.
func (s *SessionService) Start(ctx context.Context, user *models.User) (string, error) {
	id, err := s.store.Create(ctx, sessions.Claims{
		UserID:      user.ID,
		Role:        user.Role,
		Email:       user.Email,
		ValidatedAt: s.now(),
	})
	if err != nil {
		return "", err
	}
	token, err := s.tokens.Issue(id)
	if err != nil {
		_ = s.store.Destroy(ctx, id)
		return "", err
	}
	return token, nil
}

// Resolve returns the claims behind a cookie token, or nil when there is no usable session.
// When the role was last confirmed longer ago than the recheck period, the user is reloaded;
// a deleted user or a changed role ends the session.
func (s *SessionService) Resolve(ctx context.Context, token string) (*sessions.Claims, error) {
	if token == "" {
		return nil, nil
	}
	parsed, err := s.tokens.Parse(token)
	if err != nil {
		if errors.Is(err, utils.ErrSessionTokenExpired) || errors.Is(err, utils.ErrInvalidSessionToken) {
			return nil, nil
		}
		return nil, err
	}

	claims, err := s.store.Get(ctx, parsed.SessionID)
	if err != nil || claims == nil || claims.UserID == "" {
		return nil, err
	}

	if s.recheckPeriod > 0 && s.now().Sub(claims.ValidatedAt) > s.recheckPeriod {
		role, err := s.roles.CurrentRole(ctx, claims.UserID)
		if err != nil {
			return nil, fmt.Errorf("failed to revalidate session: %w", err)
		}
		if role != claims.Role {
			log.Warn().Str("user_id", claims.UserID).Str("session_role", string(claims.Role)).
				Str("current_role", string(role)).Msg("session role no longer valid, ending session")
			if err := s.store.Destroy(ctx, parsed.SessionID); err != nil {
				return nil, err
			}
			return nil, nil
		}
		claims.ValidatedAt = s.now()
		if err := s.store.Update(ctx, parsed.SessionID, *claims); err != nil {
			return nil, err
		}
	}
	return claims, nil
}

// End destroys the session behind the token. Unknown or malformed tokens are ignored.
func (s *SessionService) End(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	parsed, err := s.tokens.Parse(token)
	if err != nil {
		return nil
	}
	return s.store.Destroy(ctx, parsed.SessionID)
}

// CookieMaxAge is how long the browser keeps the session cookie.
func (s *SessionService) CookieMaxAge() time.Duration {
	return s.tokens.MaxAge()
}
