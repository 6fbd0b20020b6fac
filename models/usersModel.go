package models

import (
	"time"

	"gorm.io/gorm"
)

// Role represents a staff role
type Role struct {
	ID          int64     `gorm:"primaryKey;column:id" json:"id"`
	Name        string    `gorm:"size:50;not null;unique;index;column:name" json:"name"`
	Description string    `gorm:"type:text;column:description" json:"description"`
	CreatedAt   time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (Role) TableName() string {
	return "roles"
}

// SeedRoles inserts initial roles into the database
func SeedRoles(db *gorm.DB) error {
	initialRoles := []Role{
		{Name: "doctor", Description: "Can manage patients, tasks and shift reports"},
		{Name: "nurse", Description: "Can manage patients, tasks and bed status"},
		{Name: "staff", Description: "Can view the ward dashboard and manage tasks"},
		{Name: "admin", Description: "Full access to the system"},
	}
	return db.Transaction(func(tx *gorm.DB) error {
		for _, role := range initialRoles {
			if err := tx.FirstOrCreate(&role, Role{Name: role.Name}).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

// User represents a staff member in the system
type User struct {
	ID         int64     `gorm:"primaryKey;column:id" json:"id"`
	FullName   string    `gorm:"size:255;not null;column:full_name" json:"full_name"`
	Username   string    `gorm:"size:100;not null;unique;index;column:username" json:"username"`
	Email      string    `gorm:"size:255;not null;unique;index;column:email" json:"email"`
	Password   string    `gorm:"size:255;not null;column:password" json:"password"`
	Department string    `gorm:"size:100;not null;column:department" json:"department"`
	RoleID     int64     `gorm:"index;not null;column:role_id" json:"role_id"`
	Role       Role      `gorm:"foreignKey:RoleID;constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"role"`
	IsActive   bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt  time.Time `gorm:"autoCreateTime;column:created_at" json:"created_at"`
}

func (User) TableName() string {
	return "users"
}
