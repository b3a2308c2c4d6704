package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/courses/controller"
)

// InstructorCourseRoutes registers the instructor-facing write path on an
// already role-gated group.
func InstructorCourseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewInstructorCourseController(db)

	r.Post("/add", ctrl.AddNewCourse)
	r.Get("/get", ctrl.GetAllCourses)
	r.Get("/get/details/:id", ctrl.GetCourseDetailsByID)
	r.Put("/update/:id", ctrl.UpdateCourseByID)
	r.Delete("/delete/:id", ctrl.DeleteCourseByID)
}

// StudentCourseRoutes registers the student-facing read path + enrollment.
func StudentCourseRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentCourseController(db)

	r.Get("/get", ctrl.GetAllStudentViewCourses)
	r.Get("/get/details/:id", ctrl.GetStudentViewCourseDetails)
	r.Post("/enroll/:id", ctrl.EnrollStudent)
	r.Get("/enrolled/:studentId", ctrl.GetCoursesByStudentID)
}
