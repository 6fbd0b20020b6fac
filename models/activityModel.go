package models

import (
	"time"
)

// Activity log event kinds.
const (
	EventShiftStarted      = "shift_started"
	EventShiftEnded        = "shift_ended"
	EventShiftJoined       = "shift_joined"
	EventShiftLeft         = "shift_left"
	EventPatientAdded      = "patient_added"
	EventPatientUpdated    = "patient_updated"
	EventPatientDeleted    = "patient_deleted"
	EventPatientDischarged = "patient_discharged"
	EventPatientDeceased   = "patient_deceased"
	EventTaskAdded         = "task_added"
	EventTaskUpdated       = "task_updated"
	EventTaskCompleted     = "task_completed"
	EventTaskDeleted       = "task_deleted"
	EventBedUpdated        = "bed_updated"
)

// ActivityLog is one append-only audit entry for a state-changing action.
type ActivityLog struct {
	ID          string    `gorm:"primaryKey;column:id" json:"id"`
	Type        string    `gorm:"column:type;not null;index" json:"type"`
	Description string    `gorm:"column:description;not null" json:"description"`
	User        string    `gorm:"column:user_name;not null" json:"user"`
	Timestamp   time.Time `gorm:"column:timestamp;not null;index" json:"timestamp"`
	RelatedID   string    `gorm:"column:related_id" json:"related_id"`
}

func (ActivityLog) TableName() string {
	return "activity_log"
}
