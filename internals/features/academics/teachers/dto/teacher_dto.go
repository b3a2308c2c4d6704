package dto

import (
	"time"

	"github.com/google/uuid"

	courseDto "coursehub_backend/internals/features/academics/courses/dto"
	"coursehub_backend/internals/features/academics/teachers/model"
)

type CreateTeacherRequest struct {
	EmployeeID     string     `json:"employee_id" validate:"required,max=50"`
	Name           string     `json:"name" validate:"required,max=100"`
	Email          string     `json:"email" validate:"required,email"`
	Phone          string     `json:"phone" validate:"omitempty,max=30"`
	Department     string     `json:"department" validate:"required,max=100"`
	Specialization string     `json:"specialization" validate:"required,max=100"`
	Address        string     `json:"address" validate:"omitempty,max=255"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Experience     int        `json:"experience" validate:"omitempty,gte=0"`
	Status         string     `json:"status" validate:"omitempty,oneof=active inactive on-leave"`
}

// UpdateTeacherRequest is partial: nil means "leave unchanged".
type UpdateTeacherRequest struct {
	EmployeeID     *string    `json:"employee_id" validate:"omitempty,max=50"`
	Name           *string    `json:"name" validate:"omitempty,max=100"`
	Email          *string    `json:"email" validate:"omitempty,email"`
	Phone          *string    `json:"phone" validate:"omitempty,max=30"`
	Department     *string    `json:"department" validate:"omitempty,max=100"`
	Specialization *string    `json:"specialization" validate:"omitempty,max=100"`
	Address        *string    `json:"address" validate:"omitempty,max=255"`
	DateOfBirth    *time.Time `json:"date_of_birth"`
	Experience     *int       `json:"experience" validate:"omitempty,gte=0"`
	Status         *string    `json:"status" validate:"omitempty,oneof=active inactive on-leave"`
}

type TeacherResponse struct {
	ID              uuid.UUID                 `json:"id"`
	EmployeeID      string                    `json:"employee_id"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	Phone           string                    `json:"phone,omitempty"`
	Department      string                    `json:"department"`
	Specialization  string                    `json:"specialization"`
	Address         string                    `json:"address,omitempty"`
	DateOfBirth     *time.Time                `json:"date_of_birth,omitempty"`
	Experience      int                       `json:"experience"`
	Status          string                    `json:"status"`
	TeachingCourses []courseDto.CourseSummary `json:"teaching_courses"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func ToTeacherResponse(m *model.TeacherModel, courses []courseDto.CourseSummary) TeacherResponse {
	if courses == nil {
		courses = []courseDto.CourseSummary{}
	}
	return TeacherResponse{
		ID:              m.ID,
		EmployeeID:      m.EmployeeID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Department:      m.Department,
		Specialization:  m.Specialization,
		Address:         m.Address,
		DateOfBirth:     m.DateOfBirth,
		Experience:      m.Experience,
		Status:          m.Status,
		TeachingCourses: courses,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
