package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// CoronaryUnit tracks its free beds as a single aggregate with no gender split.
const CoronaryUnit = "Njësia koronare"

// Departments lists the ward departments in display order.
var Departments = []string{
	"Kardiologjia",
	CoronaryUnit,
	"Gjysmëintensivi",
	"Emergjenca",
}

// DepartmentBedCounts is the static per-department bed capacity table.
var DepartmentBedCounts = map[string]int{
	"Kardiologjia":   24,
	CoronaryUnit:     10,
	"Gjysmëintensivi": 10,
	"Emergjenca":     12,
}

// IsCoronaryUnit reports whether department is tracked as an aggregate
// without a gender split.
func IsCoronaryUnit(department string) bool {
	return department == CoronaryUnit
}

// Department is the seeded lookup row backing the static capacity table.
type Department struct {
	Name          string `gorm:"primaryKey;column:name" json:"name"`
	TotalBeds     int    `gorm:"column:total_beds;not null" json:"total_beds"`
	GenderTracked bool   `gorm:"column:gender_tracked;not null" json:"gender_tracked"`
}

func (Department) TableName() string {
	return "department"
}

// SeedDepartments inserts the department capacity table into the database
func SeedDepartments(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, name := range Departments {
			department := Department{
				Name:          name,
				TotalBeds:     DepartmentBedCounts[name],
				GenderTracked: !IsCoronaryUnit(name),
			}
			if err := tx.FirstOrCreate(&department, Department{Name: name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// FreeBedSplit is the per-gender free bed count. For the coronary unit the
// aggregate is stored in Male and Female stays 0.
type FreeBedSplit struct {
	Male   int `json:"male"`
	Female int `json:"female"`
}

// Total returns the total number of free beds.
func (f FreeBedSplit) Total() int {
	return f.Male + f.Female
}

// BedStatus is the stored occupancy record for one department, replaced
// wholesale on every update.
type BedStatus struct {
	Department   string                           `gorm:"primaryKey;column:department" json:"department"`
	TotalBeds    int                              `gorm:"column:total_beds;not null" json:"total_beds"`
	OccupiedBeds int                              `gorm:"column:occupied_beds;not null" json:"occupied_beds"`
	FreeBeds     datatypes.JSONType[FreeBedSplit] `gorm:"column:free_beds" json:"free_beds"`
}

func (BedStatus) TableName() string {
	return "bed_status"
}
