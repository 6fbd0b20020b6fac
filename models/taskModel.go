package models

import (
	"time"
)

// SystemUser is recorded as the author of tasks created by scheduling policy
// rather than by a staff member.
const SystemUser = "System (Auto-generated)"

// Task is a ward task, either entered manually or generated by policy.
type Task struct {
	ID            string    `gorm:"primaryKey;column:id" json:"id"`
	Title         string    `gorm:"column:title;not null" json:"title"`
	Description   string    `gorm:"column:description" json:"description"`
	PatientID     string    `gorm:"column:patient_id;index" json:"patient_id"`
	PatientName   string    `gorm:"column:patient_name" json:"patient_name"`
	DueTime       time.Time `gorm:"column:due_time;not null;index" json:"due_time"`
	Priority      string    `gorm:"column:priority;check:priority IN ('Low', 'Medium', 'High', 'Critical');not null" json:"priority"`
	Completed     bool      `gorm:"column:completed;not null" json:"completed"`
	AddedBy       string    `gorm:"column:added_by;not null" json:"added_by"`
	AddedAt       time.Time `gorm:"column:added_at;autoCreateTime" json:"added_at"`
	AutoGenerated bool      `gorm:"column:auto_generated;not null" json:"auto_generated"`
}

func (Task) TableName() string {
	return "task"
}
