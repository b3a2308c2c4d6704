package auth

import (
	"github.com/gofiber/fiber/v2"

	helper "coursehub_backend/internals/helpers"
)

// RoleMiddlewareWithCustomError checks the authenticated role against an
// allow-list. Runs after AuthMiddleware.
func RoleMiddlewareWithCustomError(allowedRoles []string, customForbiddenMessage string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role, err := helper.GetUserRoleFromLocals(c)
		if err != nil {
			return helper.FromFiberError(c, err)
		}

		for _, allowed := range allowedRoles {
			if role == allowed {
				return c.Next()
			}
		}

		if customForbiddenMessage == "" {
			customForbiddenMessage = "You are not authorized to access this resource"
		}
		return helper.JsonError(c, fiber.StatusForbidden, customForbiddenMessage)
	}
}

// OnlyRoles is the shorthand used at route registration.
func OnlyRoles(customMessage string, roles ...string) fiber.Handler {
	return RoleMiddlewareWithCustomError(roles, customMessage)
}
