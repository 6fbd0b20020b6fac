package handlers

import (
	"WardShift/services"
	"errors"
	"io"

	"github.com/gin-gonic/gin"
)

type ShiftHandler struct {
	service *services.ShiftService
	users   services.UserService
}

func NewShiftHandler(service *services.ShiftService, users services.UserService) *ShiftHandler {
	return &ShiftHandler{service: service, users: users}
}

// StartShift opens a new shift session. When one is already active that
// session is returned with 409 instead of opening another.
func (h *ShiftHandler) StartShift(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}

	shift, created, err := h.service.Start(c.Request.Context(), actor, body.Notes)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if !created {
		c.JSON(409, shift)
		return
	}
	c.JSON(201, shift)
}

// GetCurrentShift returns the active shift, or 404 when none is open.
func (h *ShiftHandler) GetCurrentShift(c *gin.Context) {
	shift, err := h.service.Current(c.Request.Context())
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if shift == nil {
		c.JSON(404, gin.H{"error": "No active shift"})
		return
	}
	c.JSON(200, shift)
}

func (h *ShiftHandler) JoinShift(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("shift_id")
	shift, err := h.service.Join(c.Request.Context(), id, actor)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if shift == nil {
		c.JSON(404, gin.H{"error": "No active shift"})
		return
	}
	c.JSON(200, shift)
}

func (h *ShiftHandler) LeaveShift(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("shift_id")
	shift, err := h.service.Leave(c.Request.Context(), id, actor)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	if shift == nil {
		c.JSON(404, gin.H{"error": "No active shift"})
		return
	}
	c.JSON(200, shift)
}

// EndShift closes the shift. Ending a shift that is not the active one is a
// no-op and still returns 200.
func (h *ShiftHandler) EndShift(c *gin.Context) {
	actor, err := resolveActor(c, h.users)
	if err != nil {
		c.JSON(401, gin.H{"error": "Unauthorized"})
		return
	}

	id := c.Param("shift_id")
	if err := h.service.End(c.Request.Context(), id, actor); err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, gin.H{"message": "Shift ended"})
}
