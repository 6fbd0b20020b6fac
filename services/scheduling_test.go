package services

import (
	"WardShift/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"gorm.io/datatypes"
)

func patientWithAccess(radial, femoral, heparin bool) *models.Patient {
	return &models.Patient{
		ID:         "PT-000001",
		Name:       "Arben Hoxha",
		RoomNumber: "12",
		PCIAccess: datatypes.NewJSONType(models.PCIAccess{
			Radial:                radial,
			Femoral:               femoral,
			PeriproceduralHeparin: heparin,
		}),
	}
}

func TestSheathRemovalTasksRadialWithHeparin(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	tasks := SheathRemovalTasks(patientWithAccess(true, false, true), now)

	assert.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, "Radial Sheath Removal", task.Title)
	assert.Equal(t, now.Add(2*time.Hour), task.DueTime)
	assert.Equal(t, "High", task.Priority)
	assert.Equal(t, models.SystemUser, task.AddedBy)
	assert.True(t, task.AutoGenerated)
	assert.Contains(t, task.Description, "2 hours post-heparin")
	assert.Contains(t, task.Description, "room 12")
}

func TestSheathRemovalTasksFemoralWithHeparin(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	tasks := SheathRemovalTasks(patientWithAccess(false, true, true), now)

	assert.Len(t, tasks, 1)
	task := tasks[0]
	assert.Equal(t, "Femoral Sheath Removal", task.Title)
	assert.Equal(t, now.Add(6*time.Hour), task.DueTime)
	assert.Equal(t, "High", task.Priority)
	assert.Contains(t, task.Description, "6 hours post-heparin")
}

func TestSheathRemovalTasksWithoutHeparinAreCritical(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	tasks := SheathRemovalTasks(patientWithAccess(true, true, false), now)

	assert.Len(t, tasks, 2)
	for _, task := range tasks {
		assert.Equal(t, now, task.DueTime)
		assert.Equal(t, "Critical", task.Priority)
		assert.Contains(t, task.Description, "immediate - no heparin")
	}
}

func TestSheathRemovalTasksNoAccess(t *testing.T) {
	tasks := SheathRemovalTasks(patientWithAccess(false, false, true), time.Now())
	assert.Empty(t, tasks)
}

func TestDischargeReportTask(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	record := &models.DischargedPatient{Name: "Mira Dema", RoomNumber: "4"}

	task := DischargeReportTask(record, now)
	assert.Equal(t, "Generate Discharge Report", task.Title)
	assert.Equal(t, now.Add(24*time.Hour), task.DueTime)
	assert.Equal(t, "Low", task.Priority)
	assert.Equal(t, models.SystemUser, task.AddedBy)
	assert.True(t, task.AutoGenerated)
	assert.Contains(t, task.Description, "Mira Dema")
	assert.Contains(t, task.Description, "room 4")
}

func TestDeathReportTask(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)
	record := &models.DeceasedPatient{Name: "Gëzim Basha", RoomNumber: "7"}

	task := DeathReportTask(record, now)
	assert.Equal(t, "Generate Death Report", task.Title)
	assert.Equal(t, now.Add(4*time.Hour), task.DueTime)
	assert.Equal(t, "High", task.Priority)
	assert.True(t, task.AutoGenerated)
}

func TestDischargeFollowUpSkippedWhenReportDone(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	done := &models.DischargedPatient{Name: "Mira Dema", RoomNumber: "4", DischargeReportDone: true}
	assert.Nil(t, DischargeFollowUp(done, now))

	pending := &models.DischargedPatient{Name: "Mira Dema", RoomNumber: "4"}
	followUp := DischargeFollowUp(pending, now)
	if assert.NotNil(t, followUp) {
		assert.Equal(t, "Generate Discharge Report", followUp.Title)
		assert.Equal(t, now.Add(24*time.Hour), followUp.DueTime)
	}
}

func TestDeathFollowUpSkippedWhenReportDone(t *testing.T) {
	now := time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC)

	done := &models.DeceasedPatient{Name: "Gëzim Basha", RoomNumber: "7", DeathReportDone: true}
	assert.Nil(t, DeathFollowUp(done, now))

	pending := &models.DeceasedPatient{Name: "Gëzim Basha", RoomNumber: "7"}
	followUp := DeathFollowUp(pending, now)
	if assert.NotNil(t, followUp) {
		assert.Equal(t, "Generate Death Report", followUp.Title)
		assert.Equal(t, now.Add(4*time.Hour), followUp.DueTime)
	}
}
