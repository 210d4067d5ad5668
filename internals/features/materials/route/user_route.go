package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	materialController "sistema_mar_backend/internals/features/materials/controller"
	storage "sistema_mar_backend/internals/helpers/storage"
)

// MaterialUserRoutes: consulta e acesso aos materiais.
func MaterialUserRoutes(api fiber.Router, db *gorm.DB, uploader storage.Uploader) {
	ctrl := materialController.NewMaterialController(db, uploader)

	materials := api.Group("/materials")
	materials.Get("/", ctrl.GetAll)
	materials.Get("/:id", ctrl.GetByID)
	materials.Post("/:id/access", ctrl.Access)
}
