package handlers

import (
	"WardShift/models"

	"github.com/gin-gonic/gin"
)

// ReferenceHandler serves the static lookup data the dashboard forms use.
type ReferenceHandler struct{}

func NewReferenceHandler() *ReferenceHandler {
	return &ReferenceHandler{}
}

func (h *ReferenceHandler) GetDepartments(c *gin.Context) {
	departments := make([]gin.H, 0, len(models.Departments))
	for _, name := range models.Departments {
		departments = append(departments, gin.H{
			"name":           name,
			"total_beds":     models.DepartmentBedCounts[name],
			"gender_tracked": !models.IsCoronaryUnit(name),
		})
	}
	c.JSON(200, departments)
}

func (h *ReferenceHandler) GetCountries(c *gin.Context) {
	c.JSON(200, models.Countries)
}
