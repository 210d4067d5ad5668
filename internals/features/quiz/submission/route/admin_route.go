package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "sistema_mar_backend/internals/features/quiz/submission/controller"
)

// QuizAdminRoutes: respostas consolidadas e exportação.
func QuizAdminRoutes(api fiber.Router, db *gorm.DB) {
	exportCtrl := submissionController.NewExportController(db)

	responses := api.Group("/quiz/responses")
	responses.Get("/", exportCtrl.GetAll)
	responses.Get("/export.csv", exportCtrl.ExportCSV)
}
