package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"coursehub_backend/internals/configs"
	"coursehub_backend/internals/constants"
	"coursehub_backend/internals/features/users/auth/service"
	helper "coursehub_backend/internals/helpers"
)

// AuthMiddleware gates every protected route. It is a pure function of the
// Authorization header and the signing secret: one verify attempt, no DB.
func AuthMiddleware(cfg *configs.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
		if authHeader == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "User is not authenticated")
		}

		fields := strings.Fields(authHeader)
		if len(fields) < 2 || !strings.EqualFold(fields[0], "Bearer") {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is missing")
		}
		tokenString := strings.Trim(fields[1], "\"'")
		if tokenString == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Token is missing")
		}

		claims, err := service.VerifyAccessToken(cfg, tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}
		// A signed token can still carry a role this deployment no longer
		// recognizes.
		if !constants.IsValidRole(claims.Role) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid token")
		}

		c.Locals(helper.LocalsUserID, claims.Subject)
		c.Locals(helper.LocalsUserName, claims.UserName)
		c.Locals(helper.LocalsUserEmail, claims.Email)
		c.Locals(helper.LocalsUserRole, claims.Role)

		return c.Next()
	}
}
