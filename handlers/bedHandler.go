package handlers

import (
	"WardShift/models"
	"WardShift/services"
	"errors"

	"github.com/gin-gonic/gin"
)

type BedHandler struct {
	service *services.BedService
	users   services.UserService
}

func NewBedHandler(service *services.BedService, users services.UserService) *BedHandler {
	return &BedHandler{service: service, users: users}
}

// GetBedStatuses returns one entry per department, defaulting unconfigured
// departments to fully occupied.
func (h *BedHandler) GetBedStatuses(c *gin.Context) {
	statuses, err := h.service.Statuses(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, statuses)
}

// UpdateBedStatus replaces the occupancy record for the department named in
// the path.
func (h *BedHandler) UpdateBedStatus(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	department := c.Param("department")
	var body struct {
		FreeBeds models.FreeBedSplit `json:"free_beds"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	status, err := h.service.Update(c.Request.Context(), department, body.FreeBeds, actor)
	if err != nil {
		if errors.Is(err, services.ErrUnknownDepartment) {
			c.JSON(400, gin.H{"error": "Unknown department"})
			return
		}
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, status)
}
