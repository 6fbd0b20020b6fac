package handlers

import (
	"WardShift/middlewares"
	"WardShift/repositories"

	"github.com/gin-gonic/gin"
)

type ActivityHandler struct {
	logs *repositories.ActivityLogRepository
}

func NewActivityHandler(logs *repositories.ActivityLogRepository) *ActivityHandler {
	return &ActivityHandler{logs: logs}
}

// GetActivityLogs returns the audit trail, most recent first.
func (h *ActivityHandler) GetActivityLogs(c *gin.Context) {
	entries, err := h.logs.GetAll(c.Request.Context())
	if err != nil {
		middlewares.HttpError(c, "Failed to load activity logs", 500, err)
		return
	}
	middlewares.RespondJSON(c, entries, 200)
}
