package handlers

import (
	"CarePortal/middlewares"
	"CarePortal/models"
	"CarePortal/services"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

const internalErrorMessage = "something went wrong, please try again later"

// DashboardPath is where a user of the given role lands after login.
func DashboardPath(role models.Role) string {
	switch role {
	case models.RoleAdmin:
		return "/dashboard/admin"
	case models.RoleDoctor:
		return "/dashboard/doctor"
	case models.RolePatient:
		return "/dashboard/patient"
	}
	return "/"
}

// respondError maps service errors onto HTTP responses.
func respondError(c *gin.Context, err error) {
	var verr *services.ValidationError
	switch {
	case errors.As(err, &verr):
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "validation failed", "fields": verr.Fields})
	case errors.Is(err, services.ErrDuplicateEmail),
		errors.Is(err, services.ErrDuplicateRecord),
		errors.Is(err, services.ErrInvalidTransition):
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAccessDenied):
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.AbortWithStatusJSON(http.StatusNotFound, gin.H{"error": err.Error()})
	default:
		middlewares.HttpError(c, internalErrorMessage, http.StatusInternalServerError, err)
	}
}

// bindRequest decodes a JSON or form body into req.
func bindRequest(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBind(req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return false
	}
	return true
}

// currentActor returns the caller behind the session. Routes that reach handlers through
// RequireAuth always have one; the redirect covers handlers mounted without it.
func currentActor(c *gin.Context) (services.Actor, bool) {
	claims, ok := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if !ok {
		c.Redirect(http.StatusFound, middlewares.LoginPath)
		c.Abort()
		return services.Actor{}, false
	}
	return services.Actor{UserID: claims.UserID, Role: claims.Role}, true
}

// actorIfAny is currentActor for public routes: it never redirects.
func actorIfAny(c *gin.Context) (services.Actor, bool) {
	claims, ok := middlewares.ExtractClaimsFromContext(c.Request.Context())
	if !ok {
		return services.Actor{}, false
	}
	return services.Actor{UserID: claims.UserID, Role: claims.Role}, true
}
