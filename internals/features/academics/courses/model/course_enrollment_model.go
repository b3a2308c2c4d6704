package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseEnrollmentModel is the join table between courses and students. The
// composite primary key makes double enrollment impossible at the store.
type CourseEnrollmentModel struct {
	CourseID   uuid.UUID `gorm:"column:course_id;type:uuid;primaryKey" json:"course_id"`
	StudentID  uuid.UUID `gorm:"column:student_id;type:uuid;primaryKey" json:"student_id"`
	EnrolledAt time.Time `gorm:"autoCreateTime" json:"enrolled_at"`
}

func (CourseEnrollmentModel) TableName() string {
	return "course_enrollments"
}
