package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	courseRoute "coursehub_backend/internals/features/academics/courses/route"
	progressRoute "coursehub_backend/internals/features/academics/progress/route"
	studentRoute "coursehub_backend/internals/features/academics/students/route"
	teacherRoute "coursehub_backend/internals/features/academics/teachers/route"
)

// StaffRoutes: people administration for admin + teacher accounts.
func StaffRoutes(r fiber.Router, db *gorm.DB) {
	studentRoute.StudentRoutes(r, db)
}

// AdminRoutes: teacher records, admin accounts only.
func AdminRoutes(r fiber.Router, db *gorm.DB) {
	teacherRoute.TeacherRoutes(r, db)
}

// InstructorRoutes: course management for teaching staff.
func InstructorRoutes(r fiber.Router, db *gorm.DB) {
	courseRoute.InstructorCourseRoutes(r, db)
}

// StudentViewRoutes: any authenticated account.
func StudentViewRoutes(courseGroup, progressGroup fiber.Router, db *gorm.DB) {
	courseRoute.StudentCourseRoutes(courseGroup, db)
	progressRoute.ProgressRoutes(progressGroup, db)
}
