package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "sistema_mar_backend/internals/features/materials/controller"
	storage "sistema_mar_backend/internals/helpers/storage"
)

// MaterialAdminRoutes: manutenção dos materiais.
func MaterialAdminRoutes(api fiber.Router, db *gorm.DB, uploader storage.Uploader) {
	ctrl := materialController.NewMaterialController(db, uploader)

	materials := api.Group("/materials")
	materials.Post("/", ctrl.Create)
	materials.Put("/:id", ctrl.Update)
	materials.Delete("/:id", ctrl.Delete)
}
