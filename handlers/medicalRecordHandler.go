package handlers

import (
	"CarePortal/models"
	"CarePortal/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

type MedicalRecordHandler struct {
	service *services.MedicalRecordService
}

func NewMedicalRecordHandler(service *services.MedicalRecordService) *MedicalRecordHandler {
	return &MedicalRecordHandler{service: service}
}

func (h *MedicalRecordHandler) GetAllMedicalRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	records, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *MedicalRecordHandler) GetMyMedicalRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	records, err := h.service.Mine(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

// GetPendingAppointments lists the calling doctor's scheduled appointments that still need a record.
func (h *MedicalRecordHandler) GetPendingAppointments(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	appointments, err := h.service.Pending(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, appointments)
}

func (h *MedicalRecordHandler) GetMedicalRecordByID(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	record, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *MedicalRecordHandler) CreateMedicalRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.MedicalRecordRequest
	if !bindRequest(c, &req) {
		return
	}
	record, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, record)
}

func (h *MedicalRecordHandler) UpdateMedicalRecord(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.MedicalRecordUpdateRequest
	if !bindRequest(c, &req) {
		return
	}
	record, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}
