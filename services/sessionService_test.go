package services

import (
	"CarePortal/cache"
	"CarePortal/models"
	"CarePortal/sessions"
	"CarePortal/utils"
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSessionService(t *testing.T, roles RoleSource, recheck time.Duration) (*SessionService, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	c, err := cache.NewCache(client)
	require.NoError(t, err)
	tokens, err := utils.NewTokenManager("0123456789abcdef0123456789abcdef", 12*time.Hour)
	require.NoError(t, err)

	return NewSessionService(sessions.NewRedisStore(c, 30*time.Minute), tokens, roles, recheck), mr
}

func TestSessionService_Lifecycle(t *testing.T) {
	svc, _ := newTestSessionService(t, &MockRoleSource{}, 0)
	ctx := context.Background()

	token, err := svc.Start(ctx, &models.User{ID: "u1", Email: "a@x.com", Role: models.RolePatient})
	require.NoError(t, err)

	claims, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, "u1", claims.UserID)
	assert.Equal(t, models.RolePatient, claims.Role)
	assert.Equal(t, "a@x.com", claims.Email)

	require.NoError(t, svc.End(ctx, token))
	require.NoError(t, svc.End(ctx, token))
	require.NoError(t, svc.End(ctx, ""))
	require.NoError(t, svc.End(ctx, "garbage"))

	claims, err = svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims)
}

func TestSessionService_ResolveRejectsBadTokens(t *testing.T) {
	svc, _ := newTestSessionService(t, &MockRoleSource{}, 0)

	for _, token := range []string{"", "garbage", "v2.local.AAAA"} {
		claims, err := svc.Resolve(context.Background(), token)
		require.NoError(t, err)
		assert.Nil(t, claims)
	}
}

func TestSessionService_IdleTimeout(t *testing.T) {
	svc, mr := newTestSessionService(t, &MockRoleSource{}, 0)
	ctx := context.Background()

	token, err := svc.Start(ctx, &models.User{ID: "u1", Role: models.RoleAdmin})
	require.NoError(t, err)

	mr.FastForward(31 * time.Minute)
	claims, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims)
}

func TestSessionService_RoleRecheck(t *testing.T) {
	current := models.RoleDoctor
	roles := &MockRoleSource{CurrentRoleFunc: func(context.Context, string) (models.Role, error) { return current, nil }}
	svc, _ := newTestSessionService(t, roles, 5*time.Minute)
	ctx := context.Background()

	clock := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	token, err := svc.Start(ctx, &models.User{ID: "u1", Role: models.RoleDoctor})
	require.NoError(t, err)

	// Within the interval the session role is trusted.
	clock = clock.Add(4 * time.Minute)
	claims, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Zero(t, roles.CallCount)

	// Past the interval the role is confirmed and the timestamp moves.
	clock = clock.Add(2 * time.Minute)
	claims, err = svc.Resolve(ctx, token)
	require.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, int32(1), roles.CallCount)
	assert.True(t, clock.Equal(claims.ValidatedAt))

	// A changed role ends the session.
	current = models.RolePatient
	clock = clock.Add(6 * time.Minute)
	claims, err = svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims)

	current = models.RoleDoctor
	claims, err = svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims, "the destroyed session does not come back")
}

func TestSessionService_DeletedUserEndsSession(t *testing.T) {
	roles := &MockRoleSource{}
	svc, _ := newTestSessionService(t, roles, time.Minute)
	ctx := context.Background()

	clock := time.Date(2026, 5, 10, 9, 0, 0, 0, time.UTC)
	svc.now = func() time.Time { return clock }

	token, err := svc.Start(ctx, &models.User{ID: "u1", Role: models.RolePatient})
	require.NoError(t, err)

	clock = clock.Add(2 * time.Minute)
	claims, err := svc.Resolve(ctx, token)
	require.NoError(t, err)
	assert.Nil(t, claims)
}
