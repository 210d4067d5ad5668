package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	catalogController "sistema_mar_backend/internals/features/quiz/catalog/controller"
)

// CatalogAdminRoutes: manutenção de perguntas/alternativas e recuperação.
func CatalogAdminRoutes(api fiber.Router, db *gorm.DB) {
	questionCtrl := catalogController.NewQuestionController(db)
	recoveryCtrl := catalogController.NewRecoveryController(db)

	questions := api.Group("/quiz/questions")
	questions.Post("/", questionCtrl.Create)
	questions.Put("/:id", questionCtrl.Update)
	questions.Delete("/:id", questionCtrl.Delete)
	questions.Put("/:id/options", questionCtrl.ReplaceOptions)

	recovery := api.Group("/quiz/recovery")
	recovery.Post("/", recoveryCtrl.Rebuild)
	recovery.Post("/official", recoveryCtrl.RebuildFromFile)
}
