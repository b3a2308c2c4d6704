package dto

import (
	"time"

	"github.com/google/uuid"

	"coursehub_backend/internals/features/academics/courses/model"
)

/* ===============================
   Summary projections
=================================*/

// CourseSummary is the shape course references resolve to on related
// entities (students, teachers).
type CourseSummary struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
	Code string    `json:"code"`
}

type TeacherSummary struct {
	ID         uuid.UUID `json:"id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	Department string    `json:"department"`
}

// StudentSummary is scanned straight out of the enrollment join.
type StudentSummary struct {
	ID        uuid.UUID `json:"id"`
	StudentID string    `json:"student_id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
}

/* ===============================
   Requests
=================================*/

type CreateCourseRequest struct {
	Code        string     `json:"code" validate:"required,max=30"`
	Name        string     `json:"name" validate:"required,max=150"`
	Description string     `json:"description"`
	Credits     int        `json:"credits" validate:"gte=0"`
	Capacity    int        `json:"capacity" validate:"omitempty,gte=1"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	IsActive    *bool      `json:"is_active"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

// UpdateCourseRequest is a partial update: only supplied fields change.
type UpdateCourseRequest struct {
	Code        *string    `json:"code" validate:"omitempty,max=30"`
	Name        *string    `json:"name" validate:"omitempty,max=150"`
	Description *string    `json:"description"`
	Credits     *int       `json:"credits" validate:"omitempty,gte=0"`
	Capacity    *int       `json:"capacity" validate:"omitempty,gte=1"`
	TeacherID   *uuid.UUID `json:"teacher_id"`
	IsActive    *bool      `json:"is_active"`
	StartDate   *time.Time `json:"start_date"`
	EndDate     *time.Time `json:"end_date"`
}

type EnrollRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
}

/* ===============================
   Responses
=================================*/

type CourseResponse struct {
	ID          uuid.UUID        `json:"id"`
	Code        string           `json:"code"`
	Name        string           `json:"name"`
	Description string           `json:"description"`
	Credits     int              `json:"credits"`
	Capacity    int              `json:"capacity"`
	Teacher     *TeacherSummary  `json:"teacher,omitempty"`
	IsActive    bool             `json:"is_active"`
	StartDate   *time.Time       `json:"start_date,omitempty"`
	EndDate     *time.Time       `json:"end_date,omitempty"`
	Enrolled    int64            `json:"enrolled"`
	Students    []StudentSummary `json:"students,omitempty"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

func ToCourseSummary(m model.CourseModel) CourseSummary {
	return CourseSummary{ID: m.ID, Name: m.Name, Code: m.Code}
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	resp := CourseResponse{
		ID:          m.ID,
		Code:        m.Code,
		Name:        m.Name,
		Description: m.Description,
		Credits:     m.Credits,
		Capacity:    m.Capacity,
		IsActive:    m.IsActive,
		StartDate:   m.StartDate,
		EndDate:     m.EndDate,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
	if m.Teacher != nil {
		resp.Teacher = &TeacherSummary{
			ID:         m.Teacher.ID,
			Name:       m.Teacher.Name,
			Email:      m.Teacher.Email,
			Department: m.Teacher.Department,
		}
	}
	return resp
}
