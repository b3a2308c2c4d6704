package controller

import (
	"errors"
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/progress/dto"
	"coursehub_backend/internals/features/academics/progress/model"
	helper "coursehub_backend/internals/helpers"
)

var validateProgress = validator.New()

type ProgressController struct {
	DB *gorm.DB
}

func NewProgressController(db *gorm.DB) *ProgressController {
	return &ProgressController{DB: db}
}

// =============================
// Get Current Course Progress
// =============================
// GET /get/:studentId/:courseId
func (ctrl *ProgressController) GetCurrentCourseProgress(c *fiber.Ctx) error {
	studentID, err := uuid.Parse(c.Params("studentId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}
	courseID, err := uuid.Parse(c.Params("courseId"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid course ID")
	}

	var progress model.CourseProgressModel
	err = ctrl.DB.WithContext(c.UserContext()).
		Preload("Lectures").
		Where("student_id = ? AND course_id = ?", studentID, courseID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonOK(c, "No progress found", nil)
		}
		log.Println("[ERROR] fetching progress:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error fetching course progress")
	}

	return helper.JsonOK(c, "", progress)
}

// =============================
// Mark Lecture As Viewed
// =============================
// POST /mark-lecture-viewed
func (ctrl *ProgressController) MarkLectureAsViewed(c *fiber.Ctx) error {
	var body dto.MarkLectureViewedRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgress.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	now := time.Now().UTC()
	var progress model.CourseProgressModel

	err := ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		err := tx.Where("student_id = ? AND course_id = ?", body.StudentID, body.CourseID).
			First(&progress).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			progress = model.CourseProgressModel{
				StudentID: body.StudentID,
				CourseID:  body.CourseID,
			}
			if err := tx.Create(&progress).Error; err != nil {
				return err
			}
		} else if err != nil {
			return err
		}

		var lecture model.LectureProgressModel
		err = tx.Where("progress_id = ? AND lecture_id = ?", progress.ID, body.LectureID).
			First(&lecture).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			lecture = model.LectureProgressModel{
				ProgressID: progress.ID,
				LectureID:  body.LectureID,
				Viewed:     true,
				DateViewed: &now,
			}
			return tx.Create(&lecture).Error
		}
		if err != nil {
			return err
		}

		lecture.Viewed = true
		lecture.DateViewed = &now
		return tx.Save(&lecture).Error
	})
	if err != nil {
		log.Println("[ERROR] marking lecture viewed:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating course progress")
	}

	// Reload with lectures so the client sees the full state.
	if err := ctrl.DB.WithContext(c.UserContext()).
		Preload("Lectures").
		First(&progress, "id = ?", progress.ID).Error; err != nil {
		log.Println("[ERROR] reloading progress:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error updating course progress")
	}

	return helper.JsonOK(c, "Lecture marked as viewed", progress)
}

// =============================
// Reset Course Progress
// =============================
// POST /reset-progress
func (ctrl *ProgressController) ResetCurrentCourseProgress(c *fiber.Ctx) error {
	var body dto.ResetProgressRequest
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid request body")
	}
	if err := validateProgress.Struct(&body); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var progress model.CourseProgressModel
	err := ctrl.DB.WithContext(c.UserContext()).
		Where("student_id = ? AND course_id = ?", body.StudentID, body.CourseID).
		First(&progress).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.JsonError(c, fiber.StatusNotFound, "Progress not found")
		}
		log.Println("[ERROR] fetching progress:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error resetting course progress")
	}

	err = ctrl.DB.WithContext(c.UserContext()).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("progress_id = ?", progress.ID).
			Delete(&model.LectureProgressModel{}).Error; err != nil {
			return err
		}
		return tx.Model(&progress).
			Updates(map[string]any{"completed": false, "completion_date": nil}).Error
	})
	if err != nil {
		log.Println("[ERROR] resetting progress:", err)
		return helper.JsonError(c, fiber.StatusInternalServerError, "Error resetting course progress")
	}

	return helper.JsonOK(c, "Course progress has been reset", nil)
}
