package utils

import (
	"WardShift/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validPatient() *models.Patient {
	return &models.Patient{
		Name:       "Arben Hoxha",
		BirthYear:  1960,
		Gender:     "Male",
		Country:    "Shqipëri",
		Condition:  "NSTEMI",
		Department: "Kardiologjia",
		RoomNumber: "12",
		Priority:   "High",
	}
}

func TestValidatePatientAccepts(t *testing.T) {
	assert.NoError(t, ValidatePatient(validPatient()))
}

func TestValidatePatientRequiredFields(t *testing.T) {
	for _, mutate := range []func(*models.Patient){
		func(p *models.Patient) { p.Name = "" },
		func(p *models.Patient) { p.BirthYear = 0 },
		func(p *models.Patient) { p.Country = "" },
		func(p *models.Patient) { p.Condition = "" },
		func(p *models.Patient) { p.Department = "" },
		func(p *models.Patient) { p.RoomNumber = "" },
		func(p *models.Patient) { p.Priority = "" },
	} {
		patient := validPatient()
		mutate(patient)
		assert.Error(t, ValidatePatient(patient))
	}
}

func TestValidatePatientBirthYearRange(t *testing.T) {
	currentYear := time.Now().Year()

	patient := validPatient()
	patient.BirthYear = 1899
	assert.Error(t, ValidatePatient(patient))

	patient.BirthYear = currentYear + 1
	assert.Error(t, ValidatePatient(patient))

	patient.BirthYear = 1900
	assert.NoError(t, ValidatePatient(patient))

	patient.BirthYear = currentYear
	assert.NoError(t, ValidatePatient(patient))
}

func TestValidatePatientRejectsUnknownValues(t *testing.T) {
	patient := validPatient()
	patient.Department = "Radiologjia"
	assert.Error(t, ValidatePatient(patient))

	patient = validPatient()
	patient.Priority = "Urgent"
	assert.Error(t, ValidatePatient(patient))

	patient = validPatient()
	patient.Gender = "Other"
	assert.Error(t, ValidatePatient(patient))
}

func TestAgeFromBirthYear(t *testing.T) {
	now := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 65, AgeFromBirthYear(1960, now))
	assert.Equal(t, 0, AgeFromBirthYear(2025, now))
}

func TestValidateDischargeRecord(t *testing.T) {
	record := &models.DischargedPatient{
		Name:       "Besa Rama",
		BirthYear:  1969,
		Diagnosis:  "HTA",
		RoomNumber: "5",
	}
	assert.NoError(t, ValidateDischargeRecord(record))

	record.Diagnosis = ""
	assert.Error(t, ValidateDischargeRecord(record))
}

func TestValidateDeathRecord(t *testing.T) {
	record := &models.DeceasedPatient{
		Name:       "Gëzim Basha",
		BirthYear:  1941,
		Country:    "Shqipëri",
		Department: "Emergjenca",
		RoomNumber: "2",
		Diagnosis:  "Shok kardiogjen",
	}
	assert.NoError(t, ValidateDeathRecord(record))

	record.Department = ""
	assert.Error(t, ValidateDeathRecord(record))
}

func TestValidateTask(t *testing.T) {
	task := &models.Task{
		Title:    "Kontroll i shtratit 12",
		DueTime:  time.Now().Add(time.Hour),
		Priority: "Medium",
	}
	assert.NoError(t, ValidateTask(task))

	task.Priority = "ASAP"
	assert.Error(t, ValidateTask(task))
}
