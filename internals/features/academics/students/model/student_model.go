package model

import (
	"time"

	"github.com/google/uuid"

	courseModel "coursehub_backend/internals/features/academics/courses/model"
)

// StudentModel represents the students table. student_id (business id) and
// email carry unique indexes.
type StudentModel struct {
	ID          uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID   string     `gorm:"size:50;uniqueIndex;not null" json:"student_id"`
	Name        string     `gorm:"size:100;not null" json:"name"`
	Email       string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	Phone       string     `gorm:"size:30" json:"phone,omitempty"`
	Program     string     `gorm:"size:100;not null" json:"program"`
	Year        int        `gorm:"not null;default:1" json:"year"`
	Address     string     `gorm:"size:255" json:"address,omitempty"`
	DateOfBirth *time.Time `json:"date_of_birth,omitempty"`
	Status      string     `gorm:"type:varchar(20);not null;default:'active'" json:"status"`

	EnrolledCourses []courseModel.CourseModel `gorm:"many2many:course_enrollments;joinForeignKey:StudentID;joinReferences:CourseID" json:"enrolled_courses,omitempty"`

	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (StudentModel) TableName() string {
	return "students"
}

// Student status values.
const (
	StatusActive    = "active"
	StatusInactive  = "inactive"
	StatusGraduated = "graduated"
)
