package handlers

import (
	"CarePortal/models"
	"CarePortal/services"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRespondError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"validation", &services.ValidationError{Fields: map[string]string{"email": "cannot be blank"}}, http.StatusBadRequest},
		{"duplicate email", services.ErrDuplicateEmail, http.StatusConflict},
		{"duplicate record", services.ErrDuplicateRecord, http.StatusConflict},
		{"invalid transition", fmt.Errorf("cancel: %w", services.ErrInvalidTransition), http.StatusConflict},
		{"invalid credentials", services.ErrInvalidCredentials, http.StatusUnauthorized},
		{"access denied", services.ErrAccessDenied, http.StatusForbidden},
		{"not found", services.ErrNotFound, http.StatusNotFound},
		{"internal", errors.New("connection reset by peer"), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(rec)
			c.Request = httptest.NewRequest(http.MethodGet, "/", nil)

			respondError(c, tt.err)

			assert.Equal(t, tt.status, rec.Code)
			var body map[string]interface{}
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			if tt.status == http.StatusInternalServerError {
				assert.Equal(t, internalErrorMessage, body["error"])
			}
			if tt.status == http.StatusBadRequest {
				assert.Equal(t, map[string]interface{}{"email": "cannot be blank"}, body["fields"])
			}
		})
	}
}

func TestDashboardPath(t *testing.T) {
	assert.Equal(t, "/dashboard/admin", DashboardPath(models.RoleAdmin))
	assert.Equal(t, "/dashboard/doctor", DashboardPath(models.RoleDoctor))
	assert.Equal(t, "/dashboard/patient", DashboardPath(models.RolePatient))
	assert.Equal(t, "/", DashboardPath(""))
	assert.Equal(t, "/", DashboardPath("Receptionist"))
}
