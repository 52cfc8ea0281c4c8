package middlewares

import (
	"CarePortal/models"
	"CarePortal/sessions"
	"CarePortal/utils"
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

// LoginPath is where requests without a usable session are sent.
const LoginPath = "/auth/login"

// contextKey defines a custom context key type to store session details in the context.
type contextKey string

const claimsKey contextKey = "sessionClaims"

// SessionResolver turns a cookie token into session claims. A nil result means no session.
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*sessions.Claims, error)
}

// SessionMiddleware loads the caller's session, if any, into the request context.
// It never rejects a request; RequireAuth and RequireRole decide that.
func SessionMiddleware(resolver SessionResolver, secureCookie bool) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := utils.SessionCookie(c)
		if token == "" {
			c.Next()
			return
		}

		claims, err := resolver.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Error().Err(err).Str("path", c.Request.URL.Path).Msg("failed to resolve session")
			c.Next()
			return
		}
		if claims == nil {
			utils.ClearSessionCookie(c, secureCookie)
			c.Next()
			return
		}

		c.Request = c.Request.WithContext(WithClaims(c.Request.Context(), claims))
		c.Next()
	}
}

// RequireAuth redirects callers without a session to the login page.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := ExtractClaimsFromContext(c.Request.Context()); !ok {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole keeps callers out of an area that belongs to another role.
func RequireRole(roles ...models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, err := ExtractUserRoleFromContext(c.Request.Context())
		if err != nil || !hasRole(role, roles) {
			c.Redirect(http.StatusFound, LoginPath)
			c.Abort()
			return
		}
		c.Next()
	}
}

func hasRole(role models.Role, allowed []models.Role) bool {
	for _, r := range allowed {
		if r == role {
			return true
		}
	}
	return false
}

// WithClaims stores session claims in ctx.
func WithClaims(ctx context.Context, claims *sessions.Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// ExtractClaimsFromContext retrieves the session claims from the context.
func ExtractClaimsFromContext(ctx context.Context) (*sessions.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*sessions.Claims)
	return claims, ok && claims != nil
}

// ExtractUserIDFromContext retrieves the userID from the context.
func ExtractUserIDFromContext(ctx context.Context) (string, error) {
	claims, ok := ExtractClaimsFromContext(ctx)
	if !ok {
		return "", errors.New("user ID not found in context")
	}
	return claims.UserID, nil
}

// ExtractUserRoleFromContext retrieves the user role from the context.
func ExtractUserRoleFromContext(ctx context.Context) (models.Role, error) {
	claims, ok := ExtractClaimsFromContext(ctx)
	if !ok {
		return "", errors.New("user role not found in context")
	}
	return claims.Role, nil
}
