package model

import (
	"time"

	"github.com/google/uuid"

	teacherModel "coursehub_backend/internals/features/academics/teachers/model"
)

// CourseModel represents the courses table. The owning teacher is a store
// level foreign key resolved by Preload at read time.
type CourseModel struct {
	ID          uuid.UUID                  `gorm:"type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	Code        string                     `gorm:"size:30;uniqueIndex;not null" json:"code"`
	Name        string                     `gorm:"size:150;not null" json:"name"`
	Description string                     `gorm:"type:text" json:"description"`
	Credits     int                        `gorm:"not null;default:0" json:"credits"`
	Capacity    int                        `gorm:"not null;default:30" json:"capacity"`
	TeacherID   *uuid.UUID                 `gorm:"type:uuid;index" json:"teacher_id,omitempty"`
	Teacher     *teacherModel.TeacherModel `gorm:"foreignKey:TeacherID" json:"teacher,omitempty"`
	IsActive    bool                       `gorm:"not null;default:true" json:"is_active"`
	StartDate   *time.Time                 `json:"start_date,omitempty"`
	EndDate     *time.Time                 `json:"end_date,omitempty"`
	CreatedAt   time.Time                  `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time                  `gorm:"autoUpdateTime" json:"updated_at"`
}

func (CourseModel) TableName() string {
	return "courses"
}
