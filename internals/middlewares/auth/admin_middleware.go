// internals/middlewares/auth/admin_middleware.go
package auth

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/constants"
	userModel "sistema_mar_backend/internals/features/users/user/model"
)

// RequireAdmin libera a rota apenas para role=admin.
// A claim do token decide o caminho rápido; na ausência dela o papel
// é confirmado no banco (mesmo contrato booleano do antigo is_admin).
func RequireAdmin(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if role, _ := c.Locals("role").(string); role == constants.RoleAdmin {
			return c.Next()
		}

		userIDStr, _ := c.Locals("user_id").(string)
		if userIDStr == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
		}

		var user userModel.UserModel
		if err := db.Select("id", "role").First(&user, "id = ?", userIDStr).Error; err != nil {
			return fiber.NewError(fiber.StatusForbidden, "Acesso restrito a administradores")
		}
		if user.Role != constants.RoleAdmin {
			return fiber.NewError(fiber.StatusForbidden, "Acesso restrito a administradores")
		}
		c.Locals("role", constants.RoleAdmin)
		return c.Next()
	}
}
