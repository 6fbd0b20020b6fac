package utils

import (
	"WardShift/models"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var priorities = []interface{}{"Low", "Medium", "High", "Critical"}

func departmentValues() []interface{} {
	values := make([]interface{}, 0, len(models.Departments))
	for _, department := range models.Departments {
		values = append(values, department)
	}
	return values
}

// AgeFromBirthYear derives a patient's age from the stored birth year.
func AgeFromBirthYear(birthYear int, now time.Time) int {
	return now.Year() - birthYear
}

// ValidatePatient validates a patient registration or edit.
func ValidatePatient(patient *models.Patient) error {
	currentYear := time.Now().Year()
	return validation.ValidateStruct(patient,
		validation.Field(&patient.Name, validation.Required),
		validation.Field(&patient.BirthYear, validation.Required, validation.Min(1900), validation.Max(currentYear)),
		validation.Field(&patient.Gender, validation.Required, validation.In("Male", "Female")),
		validation.Field(&patient.Country, validation.Required),
		validation.Field(&patient.Condition, validation.Required),
		validation.Field(&patient.Department, validation.Required, validation.In(departmentValues()...)),
		validation.Field(&patient.RoomNumber, validation.Required),
		validation.Field(&patient.Priority, validation.Required, validation.In(priorities...)),
	)
}

// ValidateDischargeRecord validates the administrative subset required to
// discharge a patient.
func ValidateDischargeRecord(record *models.DischargedPatient) error {
	currentYear := time.Now().Year()
	return validation.ValidateStruct(record,
		validation.Field(&record.Name, validation.Required),
		validation.Field(&record.BirthYear, validation.Required, validation.Min(1900), validation.Max(currentYear)),
		validation.Field(&record.Diagnosis, validation.Required),
		validation.Field(&record.RoomNumber, validation.Required),
	)
}

// ValidateDeathRecord validates the subset required to register a death.
func ValidateDeathRecord(record *models.DeceasedPatient) error {
	currentYear := time.Now().Year()
	return validation.ValidateStruct(record,
		validation.Field(&record.Name, validation.Required),
		validation.Field(&record.BirthYear, validation.Required, validation.Min(1900), validation.Max(currentYear)),
		validation.Field(&record.Country, validation.Required),
		validation.Field(&record.Department, validation.Required, validation.In(departmentValues()...)),
		validation.Field(&record.RoomNumber, validation.Required),
		validation.Field(&record.Diagnosis, validation.Required),
	)
}

// ValidateTask validates a manually entered or edited task.
func ValidateTask(task *models.Task) error {
	return validation.ValidateStruct(task,
		validation.Field(&task.Title, validation.Required),
		validation.Field(&task.DueTime, validation.Required),
		validation.Field(&task.Priority, validation.Required, validation.In(priorities...)),
	)
}
