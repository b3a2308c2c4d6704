package dto

import "github.com/google/uuid"

type MarkLectureViewedRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
	LectureID string    `json:"lecture_id" validate:"required,max=100"`
}

type ResetProgressRequest struct {
	StudentID uuid.UUID `json:"student_id" validate:"required"`
	CourseID  uuid.UUID `json:"course_id" validate:"required"`
}
