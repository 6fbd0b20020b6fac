package services

import (
	"WardShift/models"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func reportFixture() (*models.ShiftSession, []models.Patient, []models.DischargedPatient, []models.DeceasedPatient) {
	shift := &models.ShiftSession{
		ID:        "SH-000001",
		UserName:  "Dr. Elira Kola",
		StartTime: time.Date(2025, 3, 10, 8, 0, 0, 0, time.UTC),
		IsActive:  true,
	}
	patients := []models.Patient{
		{
			ID: "PT-000001", Name: "Arben Hoxha", BirthYear: 1960, Country: "Shqipëri",
			Department: "Kardiologjia", RoomNumber: "12",
			Symptoms: "Dhimbje gjoksi", ECG: "STEMI anterior", Condition: "NSTEMI",
		},
		{
			ID: "PT-000002", Name: "Mira Dema", BirthYear: 1975, Country: "Kosovë",
			Department: models.CoronaryUnit, RoomNumber: "3", Condition: "Angina pectoris",
		},
		{
			ID: "PT-000003", Name: "Luan Shala", BirthYear: 1958, Country: "Shqipëri",
			Department: "Kardiologjia", RoomNumber: "14", Condition: "AV bllok",
		},
	}
	discharged := []models.DischargedPatient{
		{ID: "DC-000001", Name: "Besa Rama", BirthYear: 1969, Diagnosis: "HTA", RoomNumber: "5", DischargeReportDone: true},
	}
	deceased := []models.DeceasedPatient{
		{ID: "DX-000001", Name: "Gëzim Basha", BirthYear: 1941, Country: "Shqipëri", Department: "Emergjenca", RoomNumber: "2", Diagnosis: "Shok kardiogjen"},
	}
	return shift, patients, discharged, deceased
}

func TestCompileShiftReportHeaderAndSections(t *testing.T) {
	shift, patients, discharged, deceased := reportFixture()
	report := CompileShiftReport(shift, patients, discharged, deceased)

	assert.True(t, strings.HasPrefix(report, "RAPORTI KUJDESTARISË SË DATËS 10.03.2025 08:00\n"))
	assert.Contains(t, report, "PACIENTËT SIPAS DEPARTAMENTEVE:")
	assert.Contains(t, report, "LËSHIMET:")
	assert.Contains(t, report, "EXITUSET:")
}

func TestCompileShiftReportGroupsByFirstAppearance(t *testing.T) {
	shift, patients, _, _ := reportFixture()
	report := CompileShiftReport(shift, patients, nil, nil)

	kardiologjia := strings.Index(report, "Kardiologjia:")
	koronare := strings.Index(report, models.CoronaryUnit+":")
	assert.True(t, kardiologjia >= 0)
	assert.True(t, koronare > kardiologjia)

	// Both Kardiologjia patients are numbered within their department.
	assert.Contains(t, report, "1. Arben Hoxha - 1960 - Shqipëri   Shtrati 12")
	assert.Contains(t, report, "2. Luan Shala - 1958 - Shqipëri   Shtrati 14")
	assert.Contains(t, report, "1. Mira Dema - 1975 - Kosovë   Shtrati 3")
}

func TestCompileShiftReportOptionalClinicalFields(t *testing.T) {
	shift, patients, _, _ := reportFixture()
	report := CompileShiftReport(shift, patients, nil, nil)

	assert.Contains(t, report, "AK: Dhimbje gjoksi")
	assert.Contains(t, report, "EKG: STEMI anterior")
	assert.Contains(t, report, "Dg: NSTEMI")
	// Fields left empty do not produce labels for that patient.
	assert.NotContains(t, report, "Analizat:")
	assert.NotContains(t, report, "Koro:")
}

func TestCompileShiftReportCompletionLines(t *testing.T) {
	shift, _, discharged, deceased := reportFixture()
	report := CompileShiftReport(shift, nil, discharged, deceased)

	assert.Contains(t, report, "Besa Rama - 1969")
	assert.Contains(t, report, "Fletëlëshimi i përfunduar.")
	assert.Contains(t, report, "1. Gëzim Basha - 1941 - Shqipëri")
	assert.Contains(t, report, "Emergjenca - Shtrati 2")
	assert.Contains(t, report, "Fletëlëshimi i papërfunduar.")
}

func TestCompileShiftReportOmitsEmptyTerminalSections(t *testing.T) {
	shift, patients, _, _ := reportFixture()
	report := CompileShiftReport(shift, patients, nil, nil)

	assert.NotContains(t, report, "LËSHIMET:")
	assert.NotContains(t, report, "EXITUSET:")
}

func TestCompileShiftReportIdempotent(t *testing.T) {
	shift, patients, discharged, deceased := reportFixture()
	first := CompileShiftReport(shift, patients, discharged, deceased)
	second := CompileShiftReport(shift, patients, discharged, deceased)
	assert.Equal(t, first, second)
}

func TestReportFilename(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 45, 0, 0, time.UTC)
	assert.Equal(t, "raporti-turni-2025-03-10.txt", ReportFilename(now))
}
