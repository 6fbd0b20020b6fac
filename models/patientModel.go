package models

import (
	"time"

	"gorm.io/datatypes"
)

// PCIAccess records the vascular access sites used during a PCI procedure
// and whether periprocedural heparin was administered.
type PCIAccess struct {
	Radial                bool `json:"radial"`
	Femoral               bool `json:"femoral"`
	PeriproceduralHeparin bool `json:"periprocedural_heparin"`
}

// RiskFactors holds the cardiovascular risk factor flags for a patient.
type RiskFactors struct {
	Smoking      bool `json:"smoking"`
	Hypertension bool `json:"hypertension"`
	Diabetes     bool `json:"diabetes"`
	Obesity      bool `json:"obesity"`
	Dyslipidemia bool `json:"dyslipidemia"`
}

// Patient is a member of the active ward roster.
type Patient struct {
	ID           string                          `gorm:"primaryKey;column:id" json:"id"`
	Name         string                          `gorm:"column:name;not null;index" json:"name"`
	Age          int                             `gorm:"column:age;not null" json:"age"`
	BirthYear    int                             `gorm:"column:birth_year;not null" json:"birth_year"`
	Gender       string                          `gorm:"column:gender;check:gender IN ('Male', 'Female');not null" json:"gender"`
	Country      string                          `gorm:"column:country;not null" json:"country"`
	Condition    string                          `gorm:"column:condition;not null" json:"condition"`
	Symptoms     string                          `gorm:"column:symptoms" json:"symptoms"`
	ECG          string                          `gorm:"column:ecg" json:"ecg"`
	LabResults   string                          `gorm:"column:lab_results" json:"lab_results"`
	PCIData      string                          `gorm:"column:pci_data" json:"pci_data"`
	PCIAccess    datatypes.JSONType[PCIAccess]   `gorm:"column:pci_access" json:"pci_access"`
	RiskFactors  datatypes.JSONType[RiskFactors] `gorm:"column:risk_factors" json:"risk_factors"`
	Allergies    string                          `gorm:"column:allergies" json:"allergies"`
	Medications  string                          `gorm:"column:medications" json:"medications"`
	Notes        string                          `gorm:"column:notes" json:"notes"`
	Department   string                          `gorm:"column:department;not null;index" json:"department"`
	RoomNumber   string                          `gorm:"column:room_number;not null" json:"room_number"`
	Priority     string                          `gorm:"column:priority;check:priority IN ('Low', 'Medium', 'High', 'Critical');not null" json:"priority"`
	AddedBy      string                          `gorm:"column:added_by;not null" json:"added_by"`
	AddedAt      time.Time                       `gorm:"column:added_at;autoCreateTime" json:"added_at"`
	IsNewPatient bool                            `gorm:"column:is_new_patient" json:"is_new_patient"`
	Status       string                          `gorm:"column:status;not null" json:"status"`
}

func (Patient) TableName() string {
	return "patient"
}

// DischargedPatient is the terminal record created when a patient leaves the
// ward. It carries only the narrow administrative subset of the active record.
type DischargedPatient struct {
	ID                  string    `gorm:"primaryKey;column:id" json:"id"`
	Name                string    `gorm:"column:name;not null" json:"name"`
	BirthYear           int       `gorm:"column:birth_year;not null" json:"birth_year"`
	Diagnosis           string    `gorm:"column:diagnosis;not null" json:"diagnosis"`
	RoomNumber          string    `gorm:"column:room_number;not null" json:"room_number"`
	Notes               string    `gorm:"column:notes" json:"notes"`
	DischargeReportDone bool      `gorm:"column:discharge_report_done" json:"discharge_report_done"`
	DischargedBy        string    `gorm:"column:discharged_by;not null" json:"discharged_by"`
	DischargedAt        time.Time `gorm:"column:discharged_at;autoCreateTime" json:"discharged_at"`
}

func (DischargedPatient) TableName() string {
	return "discharged_patient"
}

// DeceasedPatient is the terminal record created when a death is registered.
type DeceasedPatient struct {
	ID              string    `gorm:"primaryKey;column:id" json:"id"`
	Name            string    `gorm:"column:name;not null" json:"name"`
	BirthYear       int       `gorm:"column:birth_year;not null" json:"birth_year"`
	Country         string    `gorm:"column:country;not null" json:"country"`
	Department      string    `gorm:"column:department;not null" json:"department"`
	RoomNumber      string    `gorm:"column:room_number;not null" json:"room_number"`
	Diagnosis       string    `gorm:"column:diagnosis;not null" json:"diagnosis"`
	DeathReportDone bool      `gorm:"column:death_report_done" json:"death_report_done"`
	RecordedBy      string    `gorm:"column:recorded_by;not null" json:"recorded_by"`
	RecordedAt      time.Time `gorm:"column:recorded_at;autoCreateTime" json:"recorded_at"`
}

func (DeceasedPatient) TableName() string {
	return "deceased_patient"
}
