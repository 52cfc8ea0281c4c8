package middlewares

import (
	"CarePortal/models"
	"CarePortal/sessions"
	"CarePortal/utils"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeResolver struct {
	sessions map[string]*sessions.Claims
	err      error
}

func (f *fakeResolver) Resolve(_ context.Context, token string) (*sessions.Claims, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.sessions[token], nil
}

func newRouter(resolver SessionResolver, guards ...gin.HandlerFunc) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(RecoveryMiddleware(), SessionMiddleware(resolver, false))
	handlers := append(guards, func(c *gin.Context) {
		id, err := ExtractUserIDFromContext(c.Request.Context())
		if err != nil {
			id = "anonymous"
		}
		c.String(http.StatusOK, id)
	})
	router.GET("/area", handlers...)
	router.GET("/panic", func(c *gin.Context) { panic("boom") })
	return router
}

func get(router http.Handler, path, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if token != "" {
		req.AddCookie(&http.Cookie{Name: utils.SessionCookieName, Value: token})
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func testResolver() *fakeResolver {
	return &fakeResolver{sessions: map[string]*sessions.Claims{
		"admin-token":   {UserID: "u-admin", Role: models.RoleAdmin, Email: "admin@example.com"},
		"patient-token": {UserID: "u-patient", Role: models.RolePatient, Email: "p@example.com"},
	}}
}

func TestSessionMiddleware_LoadsClaims(t *testing.T) {
	router := newRouter(testResolver())

	rec := get(router, "/area", "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "u-admin", rec.Body.String())

	rec = get(router, "/area", "")
	assert.Equal(t, "anonymous", rec.Body.String())
}

func TestSessionMiddleware_ClearsStaleCookie(t *testing.T) {
	router := newRouter(testResolver())

	rec := get(router, "/area", "expired-token")
	assert.Equal(t, "anonymous", rec.Body.String())
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, utils.SessionCookieName, cookies[0].Name)
	assert.True(t, cookies[0].MaxAge < 0)
}

func TestSessionMiddleware_StoreFailureIsAnonymous(t *testing.T) {
	router := newRouter(&fakeResolver{err: errors.New("redis down")}, RequireAuth())

	rec := get(router, "/area", "admin-token")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))
}

func TestRequireAuth(t *testing.T) {
	router := newRouter(testResolver(), RequireAuth())

	rec := get(router, "/area", "")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))

	rec = get(router, "/area", "patient-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRequireRole(t *testing.T) {
	router := newRouter(testResolver(), RequireAuth(), RequireRole(models.RoleAdmin))

	rec := get(router, "/area", "patient-token")
	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, LoginPath, rec.Header().Get("Location"))

	rec = get(router, "/area", "admin-token")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRecoveryMiddleware(t *testing.T) {
	router := newRouter(testResolver())

	rec := get(router, "/panic", "")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "something went wrong")
	assert.NotContains(t, rec.Body.String(), "boom")
}

func TestClientRateLimiter_PerClient(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewClientRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 2}))
	router.POST("/auth/login", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	post := func(ip string) int {
		req := httptest.NewRequest(http.MethodPost, "/auth/login", nil)
		req.RemoteAddr = ip + ":4321"
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, req)
		return rec.Code
	}

	assert.Equal(t, http.StatusNoContent, post("10.0.0.1"))
	assert.Equal(t, http.StatusNoContent, post("10.0.0.1"))
	assert.Equal(t, http.StatusTooManyRequests, post("10.0.0.1"))
	// Another client has its own bucket
	assert.Equal(t, http.StatusNoContent, post("10.0.0.2"))
}

func TestRateLimiter_Global(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(NewRateLimiterMiddleware(RateLimiterConfig{RequestsPerSecond: 0.001, Burst: 1}))
	router.GET("/", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	first := get(router, "/", "")
	second := get(router, "/", "")
	assert.Equal(t, http.StatusNoContent, first.Code)
	assert.Equal(t, http.StatusTooManyRequests, second.Code)
	assert.NotEmpty(t, second.Header().Get("Retry-After"))
}

func TestClientLimiters_Prune(t *testing.T) {
	store := newClientLimiters(RateLimiterConfig{RequestsPerSecond: 1, Burst: 1})
	store.maxSize = 2

	now := testNow()
	store.get("a", now)
	store.get("b", now)
	store.get("c", now.Add(store.idleTTL+1))

	assert.Len(t, store.limiters, 1)
	assert.Contains(t, store.limiters, "c")
}

func testNow() time.Time {
	return time.Date(2026, 5, 10, 12, 0, 0, 0, time.UTC)
}
