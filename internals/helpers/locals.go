// file: internals/helpers/locals.go
package helper

import (
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// GetUserUUID lê o user_id gravado nos Locals pelo AuthMiddleware.
func GetUserUUID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, ok := c.Locals("user_id").(string)
	if !ok || raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user ID")
	}
	return id, nil
}

// GetUserRole lê o papel do usuário gravado nos Locals.
func GetUserRole(c *fiber.Ctx) string {
	role, _ := c.Locals("role").(string)
	return role
}
