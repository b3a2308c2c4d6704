package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/features/users/auth/controller"
	"coursehub_backend/internals/middlewares"
	authMiddleware "coursehub_backend/internals/middlewares/auth"
)

func AuthRoutes(app fiber.Router, db *gorm.DB, cfg *configs.Config) {
	ctrl := controller.NewAuthController(db, cfg)

	auth := app.Group("/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Get("/me", authMiddleware.AuthMiddleware(cfg), ctrl.Me)
}
