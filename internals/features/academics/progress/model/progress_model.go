package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseProgressModel tracks one student's progress through one course.
// The (student_id, course_id) pair is unique at the store.
type CourseProgressModel struct {
	ID             uuid.UUID              `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	StudentID      uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:uq_progress_student_course" json:"student_id"`
	CourseID       uuid.UUID              `gorm:"type:uuid;not null;uniqueIndex:uq_progress_student_course" json:"course_id"`
	Completed      bool                   `gorm:"not null;default:false" json:"completed"`
	CompletionDate *time.Time             `json:"completion_date,omitempty"`
	Lectures       []LectureProgressModel `gorm:"foreignKey:ProgressID;constraint:OnDelete:CASCADE" json:"lectures"`
	CreatedAt      time.Time              `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt      time.Time              `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseProgressModel) TableName() string {
	return "course_progress"
}

// LectureProgressModel is one viewed-lecture row under a progress record.
type LectureProgressModel struct {
	ID         uuid.UUID  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ProgressID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_lecture_progress" json:"progress_id"`
	LectureID  string     `gorm:"size:100;not null;uniqueIndex:uq_lecture_progress" json:"lecture_id"`
	Viewed     bool       `gorm:"not null;default:false" json:"viewed"`
	DateViewed *time.Time `json:"date_viewed,omitempty"`
}

func (LectureProgressModel) TableName() string {
	return "lecture_progress"
}
