package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/constants"
	authRoute "coursehub_backend/internals/features/users/auth/route"
	authMiddleware "coursehub_backend/internals/middlewares/auth"
	routeDetails "coursehub_backend/internals/route/details"
)

// SetupRoutes binds the whole HTTP surface. /auth is public (rate limited);
// everything under /api requires a verified bearer token, with role checks
// layered per path group. Role enforcement lives here, server-side, not in
// any client.
func SetupRoutes(app *fiber.App, db *gorm.DB, cfg *configs.Config) {
	log.Println("[INFO] Setting up AuthRoutes...")
	authRoute.AuthRoutes(app, db, cfg)

	api := app.Group("/api", authMiddleware.AuthMiddleware(cfg))

	// People administration: admin + teacher.
	log.Println("[INFO] Setting up STAFF group...")
	students := api.Group("/students",
		authMiddleware.OnlyRoles(constants.ErrOnlyStaffCanAccess,
			constants.RoleAdmin, constants.RoleTeacher),
	)
	routeDetails.StaffRoutes(students, db)

	// Teacher records: admin only.
	log.Println("[INFO] Setting up ADMIN group...")
	teachers := api.Group("/teachers",
		authMiddleware.OnlyRoles(constants.ErrOnlyAdminsCanAccess,
			constants.RoleAdmin),
	)
	routeDetails.AdminRoutes(teachers, db)

	// Course management: teaching staff.
	log.Println("[INFO] Setting up INSTRUCTOR group...")
	instructor := api.Group("/instructor/course",
		authMiddleware.OnlyRoles(constants.ErrOnlyInstructorCanAccess,
			constants.RoleAdmin, constants.RoleTeacher),
	)
	routeDetails.InstructorRoutes(instructor, db)

	// Student-facing reads: any authenticated role.
	log.Println("[INFO] Setting up STUDENT VIEW group...")
	studentCourse := api.Group("/student/course")
	progress := api.Group("/student/course-progress")
	routeDetails.StudentViewRoutes(studentCourse, progress, db)
}
