package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/features/academics/students/controller"
)

// StudentRoutes registers the student CRUD contract on an already
// role-gated group.
func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := controller.NewStudentController(db)

	r.Get("/", ctrl.GetAllStudents)
	r.Get("/:id", ctrl.GetStudentByID)
	r.Post("/", ctrl.CreateStudent)
	r.Put("/:id", ctrl.UpdateStudent)
	r.Delete("/:id", ctrl.DeleteStudent)
}
