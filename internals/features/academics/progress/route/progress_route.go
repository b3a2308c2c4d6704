package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/progress/controller"
)

func ProgressRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewProgressController(db)

	r.Get("/get/:studentId/:courseId", ctrl.GetCurrentCourseProgress)
	r.Post("/mark-lecture-viewed", ctrl.MarkLectureAsViewed)
	r.Post("/reset-progress", ctrl.ResetCurrentCourseProgress)
}
