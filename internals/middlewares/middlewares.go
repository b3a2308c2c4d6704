package middlewares

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/logger"

	"coursehub_backend/internals/configs"
)

// SetupMiddlewares wires the ambient middleware chain: recovery first so the
// rest runs under it, then the access log, CORS, and the global limiter.
func SetupMiddlewares(app *fiber.App, cfg *configs.Config) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.New(logger.Config{
		TimeFormat: "2006-01-02 15:04:05",
		Format:     "[${time}] ${ip} - ${method} ${path} - ${status} - ${latency}\n",
	}))
	app.Use(CorsMiddleware(cfg.AllowedOrigins))
	app.Use(GlobalRateLimiter())
}
