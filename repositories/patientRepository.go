package repositories

import (
	"WardShift/cache"
	"WardShift/database"
	"WardShift/models"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	PatientCacheExpiry = 24 * time.Hour

	patientsCacheKey   = "patients_cache"
	dischargedCacheKey = "discharged_patients_cache"
	deceasedCacheKey   = "deceased_patients_cache"
)

// ErrPatientNotFound is returned when an update targets an id that is not on
// the active roster.
var ErrPatientNotFound = errors.New("patient not found")

// PatientRepository persists the active roster and its terminal records.
type PatientRepository interface {
	Create(ctx context.Context, patient *models.Patient) error
	GetByID(ctx context.Context, id string) (*models.Patient, error)
	GetAll(ctx context.Context) ([]models.Patient, error)
	Update(ctx context.Context, patient *models.Patient) error
	Delete(ctx context.Context, id string) error
	Discharge(ctx context.Context, patientID string, record *models.DischargedPatient, followUp *models.Task, entry *models.ActivityLog) error
	RecordDeath(ctx context.Context, patientID string, record *models.DeceasedPatient, followUp *models.Task, entry *models.ActivityLog) error
	GetDischarged(ctx context.Context) ([]models.DischargedPatient, error)
	GetDeceased(ctx context.Context) ([]models.DeceasedPatient, error)
}

type patientRepository struct {
	cache    *cache.Cache
	taskRepo *TaskRepository
	logRepo  *ActivityLogRepository
}

func NewPatientRepository(cache *cache.Cache, taskRepo *TaskRepository, logRepo *ActivityLogRepository) PatientRepository {
	return &patientRepository{
		cache:    cache,
		taskRepo: taskRepo,
		logRepo:  logRepo,
	}
}

// Create inserts a new patient into the active roster with a server-assigned ID.
func (r *patientRepository) Create(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s_%d_%s", patient.Name, patient.BirthYear, patient.RoomNumber)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	nextID, err := nextSequenceID("PT", "patient_id_seq")
	if err != nil {
		return err
	}
	patient.ID = nextID

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(patient).Error; err != nil {
			return fmt.Errorf("failed to create patient: %w", err)
		}
		if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
			return fmt.Errorf("failed to delete patient cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, patientsCacheKey)
	})
}

func (r *patientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cachedPatient, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cachedPatient != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cachedPatient), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	err = database.DB.First(&patient, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get patient: %w", err)
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

// GetAll returns the active roster in insertion order, which is also the
// order the report compiler relies on for department grouping.
func (r *patientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cachedPatients, err := r.cache.Get(ctx, patientsCacheKey)
	if err == nil && cachedPatients != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cachedPatients), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := database.DB.Order("added_at ASC").Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, patientsCacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

// Update replaces all patient fields except id, added_by and added_at.
func (r *patientRepository) Update(ctx context.Context, patient *models.Patient) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patient.ID)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	var count int64
	if err := database.DB.Model(&models.Patient{}).Where("id = ?", patient.ID).Count(&count).Error; err != nil {
		return fmt.Errorf("failed to check patient: %w", err)
	}
	if count == 0 {
		return ErrPatientNotFound
	}

	err = database.DB.Clauses(clause.OnConflict{
		Columns: []clause.Column{{Name: "id"}},
		DoUpdates: clause.AssignmentColumns([]string{
			"name", "age", "birth_year", "gender", "country", "condition",
			"symptoms", "ecg", "lab_results", "pci_data", "pci_access",
			"risk_factors", "allergies", "medications", "notes", "department",
			"room_number", "priority", "is_new_patient", "status",
		}),
	}).Save(patient).Error
	if err != nil {
		return fmt.Errorf("failed to update patient: %w", err)
	}

	if err := r.cache.Delete(ctx, r.getPatientCacheKey(patient.ID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, patientsCacheKey)
}

// Delete removes a patient from the active roster outright, with no
// terminal record retained.
func (r *patientRepository) Delete(ctx context.Context, id string) error {
	lockKey := fmt.Sprintf("patient_lock:%s", id)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	if err := database.DB.Delete(&models.Patient{}, "id = ?", id).Error; err != nil {
		return fmt.Errorf("failed to delete patient: %w", err)
	}
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteAll(ctx, patientsCacheKey)
}

// Discharge moves a patient to the discharged list in one transaction:
// the terminal record is inserted, the active row is removed, and the
// follow-up report task and audit entry (when present) are written alongside.
func (r *patientRepository) Discharge(ctx context.Context, patientID string, record *models.DischargedPatient, followUp *models.Task, entry *models.ActivityLog) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patientID)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	nextID, err := nextSequenceID("DC", "discharged_id_seq")
	if err != nil {
		return err
	}
	record.ID = nextID
	if entry != nil && entry.RelatedID == "" {
		entry.RelatedID = record.ID
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create discharge record: %w", err)
		}
		if err := tx.Delete(&models.Patient{}, "id = ?", patientID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to remove discharged patient: %w", err)
		}
		if err := r.attachFollowUp(ctx, tx, followUp, entry); err != nil {
			return err
		}
		return r.invalidateRosterCaches(ctx, patientID, dischargedCacheKey)
	})
}

// RecordDeath moves a patient to the deceased list; same transactional shape
// as Discharge.
func (r *patientRepository) RecordDeath(ctx context.Context, patientID string, record *models.DeceasedPatient, followUp *models.Task, entry *models.ActivityLog) error {
	lockKey := fmt.Sprintf("patient_lock:%s", patientID)
	lockValue, err := acquireLock(ctx, lockKey)
	if err != nil {
		return err
	}
	defer releaseLock(ctx, lockKey, lockValue)

	nextID, err := nextSequenceID("DX", "deceased_id_seq")
	if err != nil {
		return err
	}
	record.ID = nextID
	if entry != nil && entry.RelatedID == "" {
		entry.RelatedID = record.ID
	}

	return database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(record).Error; err != nil {
			return fmt.Errorf("failed to create death record: %w", err)
		}
		if err := tx.Delete(&models.Patient{}, "id = ?", patientID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("failed to remove deceased patient: %w", err)
		}
		if err := r.attachFollowUp(ctx, tx, followUp, entry); err != nil {
			return err
		}
		return r.invalidateRosterCaches(ctx, patientID, deceasedCacheKey)
	})
}

func (r *patientRepository) attachFollowUp(ctx context.Context, tx *gorm.DB, followUp *models.Task, entry *models.ActivityLog) error {
	if followUp != nil {
		if err := r.taskRepo.createTx(tx, followUp); err != nil {
			return err
		}
		if err := r.taskRepo.DeleteAllCache(ctx); err != nil {
			return err
		}
	}
	if entry != nil {
		if err := r.logRepo.createTx(tx, entry); err != nil {
			return err
		}
		if err := r.logRepo.DeleteAllCache(ctx); err != nil {
			return err
		}
	}
	return nil
}

func (r *patientRepository) invalidateRosterCaches(ctx context.Context, patientID, terminalKey string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(patientID)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.DeleteBatch(ctx, patientsCacheKey, terminalKey)
}

// GetDischarged returns the discharged patients in discharge order.
func (r *patientRepository) GetDischarged(ctx context.Context) ([]models.DischargedPatient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, dischargedCacheKey)
	if err == nil && cached != "" {
		var records []models.DischargedPatient
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			return records, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get discharged patients from cache: %v", err)
	}

	var records []models.DischargedPatient
	if err := database.DB.Order("discharged_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get discharged patients: %w", err)
	}

	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal discharged patients: %w", err)
	}
	if err := r.cache.Set(ctx, dischargedCacheKey, recordsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set discharged patients in cache: %v", err)
	}

	return records, nil
}

// GetDeceased returns the deceased patients in recording order.
func (r *patientRepository) GetDeceased(ctx context.Context) ([]models.DeceasedPatient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cached, err := r.cache.Get(ctx, deceasedCacheKey)
	if err == nil && cached != "" {
		var records []models.DeceasedPatient
		if err := json.Unmarshal([]byte(cached), &records); err == nil {
			return records, nil
		}
	} else if err != nil && err != redis.Nil {
		log.Printf("Failed to get deceased patients from cache: %v", err)
	}

	var records []models.DeceasedPatient
	if err := database.DB.Order("recorded_at ASC").Find(&records).Error; err != nil {
		return nil, fmt.Errorf("failed to get deceased patients: %w", err)
	}

	recordsJSON, err := json.Marshal(records)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal deceased patients: %w", err)
	}
	if err := r.cache.Set(ctx, deceasedCacheKey, recordsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set deceased patients in cache: %v", err)
	}

	return records, nil
}

func (r *patientRepository) getPatientCacheKey(patientID string) string {
	return fmt.Sprintf("patient_cache:%s", patientID)
}
