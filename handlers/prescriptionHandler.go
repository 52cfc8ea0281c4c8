package handlers

import (
	"CarePortal/models"
	"CarePortal/services"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) GetAllPrescriptions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	prescriptions, err := h.service.List(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

func (h *PrescriptionHandler) GetMyPrescriptions(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	prescriptions, err := h.service.Mine(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescriptions)
}

// GetPrescribableRecords lists the records the calling doctor can prescribe against.
func (h *PrescriptionHandler) GetPrescribableRecords(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	records, err := h.service.Prescribable(c.Request.Context(), actor)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, records)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	prescription, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescription)
}

// PrintPrescription returns the printable form: the prescription with patient, doctor and record.
func (h *PrescriptionHandler) PrintPrescription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	prescription, err := h.service.Get(c.Request.Context(), actor, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"prescription": prescription,
		"printed_at":   time.Now().UTC(),
	})
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.PrescriptionRequest
	if !bindRequest(c, &req) {
		return
	}
	prescription, err := h.service.Create(c.Request.Context(), actor, req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, prescription)
}

func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	var req models.PrescriptionUpdateRequest
	if !bindRequest(c, &req) {
		return
	}
	prescription, err := h.service.Update(c.Request.Context(), actor, c.Param("id"), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, prescription)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	actor, ok := currentActor(c)
	if !ok {
		return
	}
	if err := h.service.Delete(c.Request.Context(), actor, c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
