package handlers

import (
	"CarePortal/models"
	"CarePortal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctors)
}

// GetDoctorByID returns the profile. Appointments are included for admins and the doctor only.
func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	doctor, err := h.service.Details(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

// GetMyProfile returns the doctor row of the calling doctor.
func (h *DoctorHandler) GetMyProfile(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	doctor, err := h.service.Me(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.DoctorCreateRequest
	if !bindRequest(c, &req) {
		return
	}
	doctor, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, doctor)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.DoctorUpdateRequest
	if !bindRequest(c, &req) {
		return
	}
	doctor, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, doctor)
}
