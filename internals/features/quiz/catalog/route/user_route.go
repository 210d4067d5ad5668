package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "sistema_mar_backend/internals/features/quiz/catalog/controller"
)

// CatalogUserRoutes: leitura do catálogo (módulos e perguntas).
func CatalogUserRoutes(api fiber.Router, db *gorm.DB) {
	moduleCtrl := catalogController.NewModuleController(db)

	modules := api.Group("/quiz/modules")
	modules.Get("/", moduleCtrl.GetAll)
	modules.Get("/:id/questions", moduleCtrl.GetQuestions)
}
