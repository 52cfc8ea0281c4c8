package handlers

import (
	"CarePortal/middlewares"
	"CarePortal/services"
	"CarePortal/utils"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type DashboardHandler struct {
	service      *services.DashboardService
	sessions     *services.SessionService
	secureCookie bool
}

func NewDashboardHandler(service *services.DashboardService, sessions *services.SessionService, secureCookie bool) *DashboardHandler {
	return &DashboardHandler{
		service:      service,
		sessions:     sessions,
		secureCookie: secureCookie,
	}
}

// Dispatch sends the caller to the dashboard of their role.
func (h *DashboardHandler) Dispatch(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	c.Redirect(http.StatusFound, DashboardPath(actor.Role))
}

// Show renders the caller's dashboard. The route decides which role may reach it.
// A doctor or patient account without its profile is logged out and sent to the login page.
func (h *DashboardHandler) Show(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	dashboard, err := h.service.Build(c.Request.Context(), actor)
	if errors.Is(err, services.ErrNotFound) {
		log.Warn().Str("user_id", actor.UserID).Str("role", string(actor.Role)).Msg("no profile for dashboard")
		if err := h.sessions.End(c.Request.Context(), utils.SessionCookie(c)); err != nil {
			log.Warn().Err(err).Msg("failed to destroy session")
		}
		utils.ClearSessionCookie(c, h.secureCookie)
		c.Redirect(http.StatusFound, middlewares.LoginPath)
		return
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"role":      dashboard.Role(),
		"dashboard": dashboard,
	})
}

// Home redirects a logged in user to their dashboard and greets everyone else.
func Home(c *gin.Context) {
	if actor, ok := actorIfAny(c); ok {
		c.Redirect(http.StatusFound, DashboardPath(actor.Role))
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to CarePortal",
		"login":   "/auth/login",
	})
}
