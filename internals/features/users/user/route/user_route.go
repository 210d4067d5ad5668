package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userController "sistema_mar_backend/internals/features/users/user/controller"
	storage "sistema_mar_backend/internals/helpers/storage"
)

// UserRoutes: perfil do usuário autenticado.
func UserRoutes(api fiber.Router, db *gorm.DB, uploader storage.Uploader) {
	ctrl := userController.NewUserController(db, uploader)

	users := api.Group("/users")
	users.Get("/me", ctrl.Me)
	users.Patch("/me", ctrl.UpdateProfile)
	users.Post("/me/avatar", ctrl.UploadAvatar)
}

// UserAdminRoutes: administração de usuários.
func UserAdminRoutes(api fiber.Router, db *gorm.DB, uploader storage.Uploader) {
	ctrl := userController.NewUserController(db, uploader)

	users := api.Group("/users")
	users.Get("/", ctrl.GetAll)
	users.Patch("/:id", ctrl.AdminUpdate)
}
