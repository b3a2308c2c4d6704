package helper

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

// Every handler answers with the same envelope:
// {success, message?, data?, pagination?{current,pages,total}}.

func JsonOK(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonCreated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusCreated, message, data)
}

func JsonUpdated(c *fiber.Ctx, message string, data any) error {
	return jsonSuccess(c, fiber.StatusOK, message, data)
}

func JsonDeleted(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": message,
	})
}

// JsonList: paginated listing (GET collection endpoints).
func JsonList(c *fiber.Ctx, data any, pagination Pagination) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"success":    true,
		"data":       data,
		"pagination": pagination,
	})
}

func jsonSuccess(c *fiber.Ctx, code int, message string, data any) error {
	body := fiber.Map{"success": true}
	if strings.TrimSpace(message) != "" {
		body["message"] = message
	}
	if data != nil {
		body["data"] = data
	}
	return c.Status(code).JSON(body)
}

// JsonError: classified failure (400/401/403/404/500). No stack traces or
// internal identifiers ever reach the client.
func JsonError(c *fiber.Ctx, status int, message string) error {
	if status == 0 {
		status = fiber.StatusInternalServerError
	}
	if strings.TrimSpace(message) == "" {
		message = "Something went wrong"
	}
	return c.Status(status).JSON(fiber.Map{
		"success": false,
		"message": message,
	})
}

// JsonConflict: unique-field collision. Names at least one colliding field
// so clients can highlight it.
func JsonConflict(c *fiber.Ctx, message, field string) error {
	body := fiber.Map{
		"success": false,
		"message": message,
	}
	if field != "" {
		body["field"] = field
	}
	return c.Status(fiber.StatusBadRequest).JSON(body)
}

// FromFiberError converts an error bubbled out of a transaction (usually a
// *fiber.Error) into the standard envelope.
func FromFiberError(c *fiber.Ctx, err error) error {
	if fe, ok := err.(*fiber.Error); ok {
		return JsonError(c, fe.Code, fe.Message)
	}
	return JsonError(c, fiber.StatusInternalServerError, "Something went wrong")
}
