package model

import (
	"time"

	"github.com/google/uuid"
)

// TeacherModel represents the teachers table. employee_id and email carry
// unique indexes; the repository pre-check only decides the error message.
type TeacherModel struct {
	ID             uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	EmployeeID     string     `gorm:"size:50;uniqueIndex;not null" json:"employee_id"`
	Name           string     `gorm:"size:100;not null" json:"name"`
	Email          string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone          string     `gorm:"size:30" json:"phone,omitempty"`
	Department     string     `gorm:"size:100;not null" json:"department"`
	Specialization string     `gorm:"size:100;not null" json:"specialization"`
	Address        string     `gorm:"size:255" json:"address,omitempty"`
	DateOfBirth    *time.Time `json:"date_of_birth,omitempty"`
	Experience     int        `gorm:"not null;default:0" json:"experience"`
	Status         string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`
	CreatedAt      time.Time  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}

// Teacher status values.
const (
	StatusActive   = "active"
	StatusInactive = "inactive"
	StatusOnLeave  = "on-leave"
)
