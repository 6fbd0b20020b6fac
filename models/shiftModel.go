package models

import (
	"time"

	"gorm.io/datatypes"
)

// ShiftSession is a bounded work session during which one or more staff
// members are jointly responsible for the ward. At most one session is
// active at a time.
type ShiftSession struct {
	ID           string                       `gorm:"primaryKey;column:id" json:"id"`
	UserName     string                       `gorm:"column:user_name;not null" json:"user_name"`
	StartTime    time.Time                    `gorm:"column:start_time;not null" json:"start_time"`
	IsActive     bool                         `gorm:"column:is_active;not null;index" json:"is_active"`
	TeamMembers  datatypes.JSONSlice[string]  `gorm:"column:team_members" json:"team_members"`
	Notes        string                       `gorm:"column:notes" json:"notes"`
	BedStatuses  datatypes.JSON               `gorm:"column:bed_statuses" json:"bed_statuses"`
	EndApprovals datatypes.JSONSlice[string]  `gorm:"column:end_approvals" json:"end_approvals"`
}

func (ShiftSession) TableName() string {
	return "shift_session"
}

// HasMember reports whether name is part of the shift team.
func (s *ShiftSession) HasMember(name string) bool {
	for _, member := range s.TeamMembers {
		if member == name {
			return true
		}
	}
	return false
}

// AddMember adds name to the team. Membership behaves as a set, so repeated
// joins do not duplicate entries.
func (s *ShiftSession) AddMember(name string) {
	if s.HasMember(name) {
		return
	}
	s.TeamMembers = append(s.TeamMembers, name)
}

// RemoveMember removes name from the team.
func (s *ShiftSession) RemoveMember(name string) {
	members := make([]string, 0, len(s.TeamMembers))
	for _, member := range s.TeamMembers {
		if member != name {
			members = append(members, member)
		}
	}
	s.TeamMembers = members
}
