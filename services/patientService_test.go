package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockPatientRepository struct {
	mock.Mock
}

func (m *mockPatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	args := m.Called(ctx, id)
	patient, _ := args.Get(0).(*models.Patient)
	return patient, args.Error(1)
}

func (m *mockPatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	args := m.Called(ctx)
	patients, _ := args.Get(0).([]models.Patient)
	return patients, args.Error(1)
}

func (m *mockPatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	args := m.Called(ctx, patient)
	return args.Error(0)
}

func (m *mockPatientRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPatientRepository) Discharge(ctx context.Context, patientID string, record *models.DischargedPatient, followUp *models.Task, entry *models.ActivityLog) error {
	args := m.Called(ctx, patientID, record, followUp, entry)
	return args.Error(0)
}

func (m *mockPatientRepository) RecordDeath(ctx context.Context, patientID string, record *models.DeceasedPatient, followUp *models.Task, entry *models.ActivityLog) error {
	args := m.Called(ctx, patientID, record, followUp, entry)
	return args.Error(0)
}

func (m *mockPatientRepository) GetDischarged(ctx context.Context) ([]models.DischargedPatient, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]models.DischargedPatient)
	return records, args.Error(1)
}

func (m *mockPatientRepository) GetDeceased(ctx context.Context) ([]models.DeceasedPatient, error) {
	args := m.Called(ctx)
	records, _ := args.Get(0).([]models.DeceasedPatient)
	return records, args.Error(1)
}

func dischargeRecord(reportDone bool) *models.DischargedPatient {
	return &models.DischargedPatient{
		Name:                "Mira Dema",
		BirthYear:           1958,
		Diagnosis:           "NSTEMI",
		RoomNumber:          "4",
		DischargeReportDone: reportDone,
	}
}

func deathRecord(reportDone bool) *models.DeceasedPatient {
	return &models.DeceasedPatient{
		Name:            "Gëzim Basha",
		BirthYear:       1944,
		Country:         "Shqipëri",
		Department:      "Njësia koronare",
		Diagnosis:       "Shok kardiogjen",
		RoomNumber:      "7",
		DeathReportDone: reportDone,
	}
}

func TestDischargeWithReportDoneSkipsFollowUp(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("Discharge", mock.Anything, "PT-000001", mock.Anything, (*models.Task)(nil), mock.Anything).Return(nil)

	service := NewPatientService(repo, nil, nil)
	err := service.Discharge(context.Background(), "PT-000001", dischargeRecord(true), "Dr. Elira Kola")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestDischargeWithReportPendingCreatesFollowUp(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("Discharge", mock.Anything, "PT-000001", mock.Anything, mock.MatchedBy(func(followUp *models.Task) bool {
		return followUp != nil && followUp.Title == "Generate Discharge Report"
	}), mock.MatchedBy(func(entry *models.ActivityLog) bool {
		return entry.Description == "Discharged patient: Mira Dema"
	})).Return(nil)

	service := NewPatientService(repo, nil, nil)
	record := dischargeRecord(false)
	err := service.Discharge(context.Background(), "PT-000001", record, "Dr. Elira Kola")

	assert.NoError(t, err)
	assert.Equal(t, "Dr. Elira Kola", record.DischargedBy)
	repo.AssertExpectations(t)
}

func TestRecordDeathWithReportDoneSkipsFollowUp(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("RecordDeath", mock.Anything, "PT-000002", mock.Anything, (*models.Task)(nil), mock.Anything).Return(nil)

	service := NewPatientService(repo, nil, nil)
	err := service.RecordDeath(context.Background(), "PT-000002", deathRecord(true), "Dr. Elira Kola")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestRecordDeathWithReportPendingCreatesFollowUp(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("RecordDeath", mock.Anything, "PT-000002", mock.Anything, mock.MatchedBy(func(followUp *models.Task) bool {
		return followUp != nil && followUp.Title == "Generate Death Report"
	}), mock.Anything).Return(nil)

	service := NewPatientService(repo, nil, nil)
	err := service.RecordDeath(context.Background(), "PT-000002", deathRecord(false), "Dr. Elira Kola")

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestUpdateUnknownPatientReturnsNotFound(t *testing.T) {
	repo := new(mockPatientRepository)
	repo.On("Update", mock.Anything, mock.Anything).Return(repositories.ErrPatientNotFound)

	service := NewPatientService(repo, nil, nil)
	patient := &models.Patient{
		ID:         "PT-000099",
		Name:       "Arben Hoxha",
		BirthYear:  1960,
		Gender:     "Male",
		Country:    "Shqipëri",
		Condition:  "STEMI",
		Department: "Kardiologjia",
		RoomNumber: "12",
		Priority:   "High",
	}
	err := service.Update(context.Background(), patient, "Dr. Elira Kola")

	assert.True(t, errors.Is(err, repositories.ErrPatientNotFound))
}
