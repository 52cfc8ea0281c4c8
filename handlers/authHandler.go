package handlers

import (
	"CarePortal/middlewares"
	"CarePortal/models"
	"CarePortal/services"
	"CarePortal/utils"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type AuthHandler struct {
	auth         *services.AuthService
	sessions     *services.SessionService
	secureCookie bool
}

func NewAuthHandler(auth *services.AuthService, sessions *services.SessionService, secureCookie bool) *AuthHandler {
	return &AuthHandler{
		auth:         auth,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// LoginPage tells an anonymous caller to log in and sends a logged in one to their dashboard.
func (h *AuthHandler) LoginPage(c *gin.Context) {
	if claims, ok := middlewares.ExtractClaimsFromContext(c.Request.Context()); ok {
		c.Redirect(http.StatusFound, DashboardPath(claims.Role))
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "authentication required"})
}

// Register creates a patient account. Callers who are already logged in are sent home.
func (h *AuthHandler) Register(c *gin.Context) {
	if _, ok := middlewares.ExtractClaimsFromContext(c.Request.Context()); ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	var req models.RegisterRequest
	if !bindRequest(c, &req) {
		return
	}

	user, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"id":    user.ID,
		"email": user.Email,
		"role":  user.Role,
	})
}

// Login authenticates the user, opens a session and redirects to the role's dashboard
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if !bindRequest(c, &req) {
		return
	}

	ctx := c.Request.Context()
	user, err := h.auth.Login(ctx, req)
	if err != nil {
		respondError(c, err)
		return
	}

	// Replace any session the browser still carries
	if err := h.sessions.End(ctx, utils.SessionCookie(c)); err != nil {
		log.Warn().Err(err).Msg("failed to end previous session")
	}

	token, err := h.sessions.Start(ctx, user)
	if err != nil {
		respondError(c, err)
		return
	}
	utils.SetSessionCookie(c, token, h.sessions.CookieMaxAge(), h.secureCookie)
	c.Redirect(http.StatusSeeOther, DashboardPath(user.Role))
}

// Logout ends the session. It is safe to call without one.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.sessions.End(c.Request.Context(), utils.SessionCookie(c)); err != nil {
		log.Warn().Err(err).Msg("failed to destroy session")
	}
	utils.ClearSessionCookie(c, h.secureCookie)

	if claims, ok := middlewares.ExtractClaimsFromContext(c.Request.Context()); ok {
		log.Info().Str("email", claims.Email).Msg("logged out")
	}
	c.Redirect(http.StatusSeeOther, middlewares.LoginPath)
}

// Me returns the claims of the current session
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, middlewares.LoginPath)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"user_id": claims.UserID,
		"role":    claims.Role,
		"email":   claims.Email,
	})
}
