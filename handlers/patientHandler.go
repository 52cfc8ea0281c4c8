package handlers

import (
	"CarePortal/models"
	"CarePortal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
}

func NewPatientHandler(service *services.PatientService) *PatientHandler {
	return &PatientHandler{service: service}
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	patients, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patients)
}

// GetPatientByID returns the profile with appointments, records and prescriptions.
func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	patient, err := h.service.Details(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}

// CreatePatient opens a patient account on behalf of an admin.
func (h *PatientHandler) CreatePatient(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.RegisterRequest
	if !bindRequest(c, &req) {
		return
	}
	patient, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, patient)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.PatientUpdateRequest
	if !bindRequest(c, &req) {
		return
	}
	patient, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, patient)
}
