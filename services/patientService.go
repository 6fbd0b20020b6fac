package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"WardShift/utils"
	"context"
	"fmt"
	"log"
	"time"
)

type PatientService struct {
	patients repositories.PatientRepository
	tasks    *repositories.TaskRepository
	logs     *repositories.ActivityLogRepository
}

func NewPatientService(patients repositories.PatientRepository, tasks *repositories.TaskRepository, logs *repositories.ActivityLogRepository) *PatientService {
	return &PatientService{patients: patients, tasks: tasks, logs: logs}
}

// Create validates and registers a patient on the active roster, schedules
// any sheath removal tasks the PCI access data calls for, and records the
// admission in the activity log.
func (s *PatientService) Create(ctx context.Context, patient *models.Patient, actor string) error {
	if err := utils.ValidatePatient(patient); err != nil {
		return err
	}

	now := time.Now()
	patient.Age = utils.AgeFromBirthYear(patient.BirthYear, now)
	patient.AddedBy = actor
	patient.Status = "active"

	if err := s.patients.Create(ctx, patient); err != nil {
		return err
	}

	if tasks := SheathRemovalTasks(patient, now); len(tasks) > 0 {
		if err := s.tasks.CreateBatch(ctx, tasks); err != nil {
			log.Printf("Failed to create sheath removal tasks for patient %s: %v", patient.ID, err)
		}
	}

	s.logActivity(ctx, models.EventPatientAdded,
		fmt.Sprintf("Added %s patient: %s (%s) in %s", newOrExisting(patient), patient.Name, patient.Condition, patient.Department),
		actor, patient.ID)
	return nil
}

func (s *PatientService) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	return s.patients.GetByID(ctx, id)
}

func (s *PatientService) GetAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients.GetAll(ctx)
}

func (s *PatientService) Update(ctx context.Context, patient *models.Patient, actor string) error {
	if err := utils.ValidatePatient(patient); err != nil {
		return err
	}
	patient.Age = utils.AgeFromBirthYear(patient.BirthYear, time.Now())

	if err := s.patients.Update(ctx, patient); err != nil {
		return err
	}

	s.logActivity(ctx, models.EventPatientUpdated,
		fmt.Sprintf("Updated %s patient: %s (%s) in %s", newOrExisting(patient), patient.Name, patient.Condition, patient.Department),
		actor, patient.ID)
	return nil
}

func (s *PatientService) Delete(ctx context.Context, id, actor string) error {
	patient, err := s.patients.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.patients.Delete(ctx, id); err != nil {
		return err
	}

	description := fmt.Sprintf("Deleted patient record %s", id)
	if patient != nil {
		description = fmt.Sprintf("Deleted patient: %s", patient.Name)
	}
	s.logActivity(ctx, models.EventPatientDeleted, description, actor, id)
	return nil
}

// Discharge moves a patient off the active roster into the discharged
// records. When the discharge report is still pending a Low priority
// reminder task due in 24 hours is created in the same transaction.
func (s *PatientService) Discharge(ctx context.Context, patientID string, record *models.DischargedPatient, actor string) error {
	if err := utils.ValidateDischargeRecord(record); err != nil {
		return err
	}

	now := time.Now()
	record.DischargedBy = actor
	record.DischargedAt = now

	followUp := DischargeFollowUp(record, now)

	entry := &models.ActivityLog{
		Type:        models.EventPatientDischarged,
		Description: fmt.Sprintf("Discharged patient: %s", record.Name),
		User:        actor,
		Timestamp:   now,
	}

	return s.patients.Discharge(ctx, patientID, record, followUp, entry)
}

// RecordDeath moves a patient off the active roster into the deceased
// records. When the death report is still pending a High priority reminder
// task due in 4 hours is created in the same transaction.
func (s *PatientService) RecordDeath(ctx context.Context, patientID string, record *models.DeceasedPatient, actor string) error {
	if err := utils.ValidateDeathRecord(record); err != nil {
		return err
	}

	now := time.Now()
	record.RecordedBy = actor
	record.RecordedAt = now

	followUp := DeathFollowUp(record, now)

	entry := &models.ActivityLog{
		Type:        models.EventPatientDeceased,
		Description: fmt.Sprintf("Recorded death: %s from %s", record.Name, record.Department),
		User:        actor,
		Timestamp:   now,
	}

	return s.patients.RecordDeath(ctx, patientID, record, followUp, entry)
}

func (s *PatientService) GetDischarged(ctx context.Context) ([]models.DischargedPatient, error) {
	return s.patients.GetDischarged(ctx)
}

func (s *PatientService) GetDeceased(ctx context.Context) ([]models.DeceasedPatient, error) {
	return s.patients.GetDeceased(ctx)
}

func (s *PatientService) logActivity(ctx context.Context, eventType, description, actor, relatedID string) {
	entry := &models.ActivityLog{
		Type:        eventType,
		Description: description,
		User:        actor,
		Timestamp:   time.Now(),
		RelatedID:   relatedID,
	}
	if err := s.logs.Create(ctx, entry); err != nil {
		log.Printf("Failed to record activity log entry: %v", err)
	}
}

func newOrExisting(patient *models.Patient) string {
	if patient.IsNewPatient {
		return "new"
	}
	return "existing"
}
