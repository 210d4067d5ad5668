package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	submissionController "sistema_mar_backend/internals/features/quiz/submission/controller"
	"sistema_mar_backend/internals/features/quiz/submission/service"
)

// QuizUserRoutes: fluxo do diagnóstico do usuário autenticado.
func QuizUserRoutes(api fiber.Router, db *gorm.DB, webhook service.WebhookDispatcher) {
	ctrl := submissionController.NewQuizController(db, webhook)

	quiz := api.Group("/quiz")
	quiz.Get("/state", ctrl.GetState)
	quiz.Post("/answers", ctrl.SaveAnswer)
	quiz.Get("/answers", ctrl.MyAnswers)
	quiz.Post("/advance", ctrl.Advance)
	quiz.Post("/previous", ctrl.Previous)
	quiz.Post("/complete", ctrl.Complete)
}
