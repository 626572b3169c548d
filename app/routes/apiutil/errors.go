package apiutil

import (
	"database/sql"
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/rosemaria96/SmartCampusSystem/app/services"
)

// ServiceError maps engine errors onto HTTP responses: validation → 400,
// not found → 404, conflict → 409, anything else → 500.
func ServiceError(c *fiber.Ctx, err error) error {
	var validationErr *services.ValidationError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		return c.Status(400).JSON(fiber.Map{"error": validationErr.Error()})
	case errors.Is(err, services.ErrNotFound), errors.Is(err, sql.ErrNoRows):
		return c.Status(404).JSON(fiber.Map{"error": "Not found"})
	case errors.As(err, &conflictErr):
		return c.Status(409).JSON(fiber.Map{"error": conflictErr.Error()})
	default:
		return c.Status(500).JSON(fiber.Map{"error": "Internal server error"})
	}
}
