package handlers

import (
	"WardShift/middlewares"
	"WardShift/services"
	"errors"
	"fmt"

	"github.com/gin-gonic/gin"
)

type ReportHandler struct {
	service *services.ReportService
}

func NewReportHandler(service *services.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// GenerateShiftReport compiles the duty report for the active shift and
// serves it as a downloadable text file.
func (h *ReportHandler) GenerateShiftReport(c *gin.Context) {
	report, filename, err := h.service.Generate(c.Request.Context())
	if err != nil {
		if errors.Is(err, services.ErrNoActiveShift) {
			c.JSON(404, gin.H{"error": "No active shift"})
			return
		}
		middlewares.HttpError(c, "Failed to compile shift report", 500, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(200, "text/plain; charset=utf-8", []byte(report))
}
