package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/teachers/controller"
)

// TeacherRoutes registers the teacher CRUD contract on an already
// role-gated group.
func TeacherRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewTeacherController(db)

	r.Get("/", ctrl.GetAllTeachers)
	r.Get("/:id", ctrl.GetTeacherByID)
	r.Post("/", ctrl.CreateTeacher)
	r.Put("/:id", ctrl.UpdateTeacher)
	r.Delete("/:id", ctrl.DeleteTeacher)
}
