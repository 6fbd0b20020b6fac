package services

import (
	"WardShift/models"
	"WardShift/repositories"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
)

var ErrNoActiveShift = errors.New("no active shift")

const reportRule = "====================================="

type ReportService struct {
	shifts   repositories.ShiftRepository
	patients repositories.PatientRepository
}

func NewReportService(shifts repositories.ShiftRepository, patients repositories.PatientRepository) *ReportService {
	return &ReportService{shifts: shifts, patients: patients}
}

// Generate compiles the shift report for the active shift and returns the
// report text together with its download filename.
func (s *ReportService) Generate(ctx context.Context) (string, string, error) {
	shift, err := s.shifts.GetActive(ctx)
	if err != nil {
		return "", "", err
	}
	if shift == nil {
		return "", "", ErrNoActiveShift
	}

	patients, err := s.patients.GetAll(ctx)
	if err != nil {
		return "", "", err
	}
	discharged, err := s.patients.GetDischarged(ctx)
	if err != nil {
		return "", "", err
	}
	deceased, err := s.patients.GetDeceased(ctx)
	if err != nil {
		return "", "", err
	}

	return CompileShiftReport(shift, patients, discharged, deceased), ReportFilename(time.Now()), nil
}

// CompileShiftReport renders the Albanian duty report as plain text. Active
// patients are grouped by department in order of first appearance; discharged
// and deceased sections follow with a report completion line each. The output
// depends only on the inputs.
func CompileShiftReport(shift *models.ShiftSession, patients []models.Patient, discharged []models.DischargedPatient, deceased []models.DeceasedPatient) string {
	var b strings.Builder

	fmt.Fprintf(&b, "RAPORTI KUJDESTARISË SË DATËS %s\n", shift.StartTime.Format("02.01.2006 15:04"))
	b.WriteString("===================================================\n\n")

	b.WriteString("PACIENTËT SIPAS DEPARTAMENTEVE:\n")
	b.WriteString(reportRule + "\n\n")

	var departments []string
	byDepartment := make(map[string][]models.Patient)
	for _, patient := range patients {
		dept := patient.Department
		if dept == "" {
			dept = "Të tjera"
		}
		if _, seen := byDepartment[dept]; !seen {
			departments = append(departments, dept)
		}
		byDepartment[dept] = append(byDepartment[dept], patient)
	}

	for _, dept := range departments {
		fmt.Fprintf(&b, "%s:\n", dept)
		for i, patient := range byDepartment[dept] {
			fmt.Fprintf(&b, "%d. %s - %s - %s   Shtrati %s\n",
				i+1, patient.Name, orNA(birthYear(patient.BirthYear)), orNA(patient.Country), orNA(patient.RoomNumber))
			writeClinicalLine(&b, "AK", patient.Symptoms)
			writeClinicalLine(&b, "EKG", patient.ECG)
			writeClinicalLine(&b, "Analizat", patient.LabResults)
			writeClinicalLine(&b, "Dg", patient.Condition)
			writeClinicalLine(&b, "Koro", patient.PCIData)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	if len(discharged) > 0 {
		b.WriteString("LËSHIMET:\n")
		b.WriteString(reportRule + "\n")
		for _, record := range discharged {
			fmt.Fprintf(&b, "%s - %s\n", record.Name, orNA(birthYear(record.BirthYear)))
			fmt.Fprintf(&b, "Shtrati %s\n", orNA(record.RoomNumber))
			if record.Diagnosis != "" {
				fmt.Fprintf(&b, "Dg: %s\n", record.Diagnosis)
			}
			if record.Notes != "" {
				fmt.Fprintf(&b, "Shënime: %s\n", record.Notes)
			}
			b.WriteString(reportDoneLine(record.DischargeReportDone))
			b.WriteString("\n\n")
		}
	}

	if len(deceased) > 0 {
		b.WriteString("EXITUSET:\n")
		b.WriteString(reportRule + "\n")
		for i, record := range deceased {
			fmt.Fprintf(&b, "%d. %s - %s - %s\n",
				i+1, record.Name, orNA(birthYear(record.BirthYear)), orNA(record.Country))
			if record.Department != "" {
				fmt.Fprintf(&b, "%s - Shtrati %s\n", record.Department, orNA(record.RoomNumber))
			}
			if record.Diagnosis != "" {
				fmt.Fprintf(&b, "Dg: %s\n", record.Diagnosis)
			}
			b.WriteString(reportDoneLine(record.DeathReportDone))
			b.WriteString("\n")
		}
	}

	return b.String()
}

// ReportFilename returns the download name for a report generated at now.
func ReportFilename(now time.Time) string {
	return fmt.Sprintf("raporti-turni-%s.txt", now.Format("2006-01-02"))
}

func writeClinicalLine(b *strings.Builder, label, value string) {
	if strings.TrimSpace(value) == "" {
		return
	}
	fmt.Fprintf(b, "   %s: %s\n", label, value)
}

func reportDoneLine(done bool) string {
	if done {
		return "Fletëlëshimi i përfunduar.\n"
	}
	return "Fletëlëshimi i papërfunduar.\n"
}

func birthYear(year int) string {
	if year == 0 {
		return ""
	}
	return fmt.Sprintf("%d", year)
}

func orNA(value string) string {
	if value == "" {
		return "N/A"
	}
	return value
}
