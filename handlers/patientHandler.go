package handlers

import (
	"WardShift/models"
	"WardShift/repositories"
	"WardShift/services"
	"errors"

	"github.com/gin-gonic/gin"
)

type PatientHandler struct {
	service *services.PatientService
	users   services.UserService
}

func NewPatientHandler(service *services.PatientService, users services.UserService) *PatientHandler {
	return &PatientHandler{service: service, users: users}
}

func (h *PatientHandler) CreatePatient(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c.Request.Context(), &patient, actor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, patient)
}

func (h *PatientHandler) GetPatientByID(c *gin.Context) {
	id := c.Param("patient_id")
	patient, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil || patient == nil {
		c.JSON(404, gin.H{"error": "Patient not found"})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) GetAllPatients(c *gin.Context) {
	patients, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patients)
}

func (h *PatientHandler) UpdatePatient(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("patient_id")
	var patient models.Patient
	if err := c.ShouldBindJSON(&patient); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	patient.ID = id
	if err := h.service.Update(c.Request.Context(), &patient, actor); err != nil {
		if errors.Is(err, repositories.ErrPatientNotFound) {
			c.JSON(404, gin.H{"error": "Patient not found"})
			return
		}
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, patient)
}

func (h *PatientHandler) DeletePatient(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("patient_id")
	if err := h.service.Delete(c.Request.Context(), id, actor); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(204, gin.H{"message": "Patient deleted"})
}

// DischargePatient moves a patient to the discharged records.
func (h *PatientHandler) DischargePatient(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("patient_id")
	var record models.DischargedPatient
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Discharge(c.Request.Context(), id, &record, actor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

// RecordDeath moves a patient to the deceased records.
func (h *PatientHandler) RecordDeath(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("patient_id")
	var record models.DeceasedPatient
	if err := c.ShouldBindJSON(&record); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.RecordDeath(c.Request.Context(), id, &record, actor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	c.JSON(201, record)
}

func (h *PatientHandler) GetDischargedPatients(c *gin.Context) {
	records, err := h.service.GetDischarged(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, records)
}

func (h *PatientHandler) GetDeceasedPatients(c *gin.Context) {
	records, err := h.service.GetDeceased(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, records)
}
