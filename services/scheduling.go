package services

import (
	"WardShift/models"
	"fmt"
	"time"
)

// SheathRemovalTasks builds the follow-up tasks required after a PCI
// procedure. Radial access with periprocedural heparin is due 2 hours after
// admission, femoral with heparin 6 hours after. Without heparin the sheath
// comes out immediately and the task is Critical.
func SheathRemovalTasks(patient *models.Patient, now time.Time) []models.Task {
	access := patient.PCIAccess.Data()
	var tasks []models.Task
	if access.Radial {
		tasks = append(tasks, sheathRemovalTask(patient, "radial", access.PeriproceduralHeparin, now))
	}
	if access.Femoral {
		tasks = append(tasks, sheathRemovalTask(patient, "femoral", access.PeriproceduralHeparin, now))
	}
	return tasks
}

func sheathRemovalTask(patient *models.Patient, accessType string, withHeparin bool, now time.Time) models.Task {
	dueTime := now
	title := "Femoral Sheath Removal"
	delay := "6"
	if accessType == "radial" {
		title = "Radial Sheath Removal"
		delay = "2"
	}

	var suffix string
	priority := "Critical"
	if withHeparin {
		priority = "High"
		suffix = fmt.Sprintf(" (%s hours post-heparin)", delay)
		if accessType == "radial" {
			dueTime = now.Add(2 * time.Hour)
		} else {
			dueTime = now.Add(6 * time.Hour)
		}
	} else {
		suffix = " (immediate - no heparin)"
	}

	return models.Task{
		Title: title,
		Description: fmt.Sprintf("Remove %s sheath for patient %s in room %s%s",
			accessType, patient.Name, patient.RoomNumber, suffix),
		PatientID:     patient.ID,
		PatientName:   patient.Name,
		DueTime:       dueTime,
		Priority:      priority,
		Completed:     false,
		AddedBy:       models.SystemUser,
		AutoGenerated: true,
	}
}

// DischargeFollowUp returns the reminder task for a discharge, or nil when
// the discharge report was already written.
func DischargeFollowUp(record *models.DischargedPatient, now time.Time) *models.Task {
	if record.DischargeReportDone {
		return nil
	}
	task := DischargeReportTask(record, now)
	return &task
}

// DeathFollowUp returns the reminder task for a recorded death, or nil when
// the death report was already written.
func DeathFollowUp(record *models.DeceasedPatient, now time.Time) *models.Task {
	if record.DeathReportDone {
		return nil
	}
	task := DeathReportTask(record, now)
	return &task
}

// DischargeReportTask builds the reminder created when a patient is
// discharged before the discharge report has been written.
func DischargeReportTask(record *models.DischargedPatient, now time.Time) models.Task {
	return models.Task{
		Title: "Generate Discharge Report",
		Description: fmt.Sprintf("Generate discharge report for %s from room %s",
			record.Name, record.RoomNumber),
		DueTime:       now.Add(24 * time.Hour),
		Priority:      "Low",
		Completed:     false,
		AddedBy:       models.SystemUser,
		AutoGenerated: true,
	}
}

// DeathReportTask builds the reminder created when a death is recorded
// before the death report has been written.
func DeathReportTask(record *models.DeceasedPatient, now time.Time) models.Task {
	return models.Task{
		Title: "Generate Death Report",
		Description: fmt.Sprintf("Generate death report for %s from room %s",
			record.Name, record.RoomNumber),
		DueTime:       now.Add(4 * time.Hour),
		Priority:      "High",
		Completed:     false,
		AddedBy:       models.SystemUser,
		AutoGenerated: true,
	}
}
