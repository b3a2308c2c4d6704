package dto

import (
	"time"

	"github.com/google/uuid"

	courseDto "coursehub_backend/internals/features/academics/courses/dto"
	"coursehub_backend/internals/features/academics/students/model"
)

type CreateStudentRequest struct {
	StudentID   string     `json:"student_id" validate:"required,max=50"`
	Name        string     `json:"name" validate:"required,max=100"`
	Email       string     `json:"email" validate:"required,email"`
	Phone       string     `json:"phone" validate:"omitempty,max=30"`
	Program     string     `json:"program" validate:"required,max=100"`
	Year        int        `json:"year" validate:"omitempty,gte=1,lte=10"`
	Address     string     `json:"address" validate:"omitempty,max=255"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Status      string     `json:"status" validate:"omitempty,oneof=active inactive graduated"`
}

// UpdateStudentRequest is partial: nil means "leave unchanged".
type UpdateStudentRequest struct {
	StudentID   *string    `json:"student_id" validate:"omitempty,max=50"`
	Name        *string    `json:"name" validate:"omitempty,max=100"`
	Email       *string    `json:"email" validate:"omitempty,email"`
	Phone       *string    `json:"phone" validate:"omitempty,max=30"`
	Program     *string    `json:"program" validate:"omitempty,max=100"`
	Year        *int       `json:"year" validate:"omitempty,gte=1,lte=10"`
	Address     *string    `json:"address" validate:"omitempty,max=255"`
	DateOfBirth *time.Time `json:"date_of_birth"`
	Status      *string    `json:"status" validate:"omitempty,oneof=active inactive graduated"`
}

type StudentResponse struct {
	ID              uuid.UUID                 `json:"id"`
	StudentID       string                    `json:"student_id"`
	Name            string                    `json:"name"`
	Email           string                    `json:"email"`
	Phone           string                    `json:"phone,omitempty"`
	Program         string                    `json:"program"`
	Year            int                       `json:"year"`
	Address         string                    `json:"address,omitempty"`
	DateOfBirth     *time.Time                `json:"date_of_birth,omitempty"`
	Status          string                    `json:"status"`
	EnrolledCourses []courseDto.CourseSummary `json:"enrolled_courses"`
	CreatedAt       time.Time                 `json:"created_at"`
	UpdatedAt       time.Time                 `json:"updated_at"`
}

func ToStudentResponse(m *model.StudentModel) StudentResponse {
	courses := make([]courseDto.CourseSummary, 0, len(m.EnrolledCourses))
	for _, c := range m.EnrolledCourses {
		courses = append(courses, courseDto.ToCourseSummary(c))
	}
	return StudentResponse{
		ID:              m.ID,
		StudentID:       m.StudentID,
		Name:            m.Name,
		Email:           m.Email,
		Phone:           m.Phone,
		Program:         m.Program,
		Year:            m.Year,
		Address:         m.Address,
		DateOfBirth:     m.DateOfBirth,
		Status:          m.Status,
		EnrolledCourses: courses,
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}

func ToStudentResponses(rows []model.StudentModel) []StudentResponse {
	out := make([]StudentResponse, 0, len(rows))
	for i := range rows {
		out = append(out, ToStudentResponse(&rows[i]))
	}
	return out
}
