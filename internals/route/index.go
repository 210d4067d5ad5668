// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/configs"
	"sistema_mar_backend/internals/helpers/storage"
	authMiddleware "sistema_mar_backend/internals/middlewares/auth"

	catalogRoute "sistema_mar_backend/internals/features/quiz/catalog/route"
	quizRoute "sistema_mar_backend/internals/features/quiz/submission/route"
	quizService "sistema_mar_backend/internals/features/quiz/submission/service"

	materialRoute "sistema_mar_backend/internals/features/materials/route"
	authRoute "sistema_mar_backend/internals/features/users/auth/route"
	userRoute "sistema_mar_backend/internals/features/users/user/route"
)

// SetupRoutes monta toda a superfície HTTP:
//
//	/api/auth  → registro/login/refresh/logout (público, com rate limit)
//	/api/u     → rotas autenticadas do usuário
//	/api/a     → rotas administrativas (token + role admin)
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	uploader := buildUploader()
	webhook := quizService.NewHTTPWebhookDispatcher(configs.WebhookURL)

	// 🔓 Público
	authRoute.AuthRoutes(app, db)

	// 🔐 Usuário autenticado
	u := app.Group("/api/u", authMiddleware.AuthMiddleware(db))
	quizRoute.QuizUserRoutes(u, db, webhook)
	catalogRoute.CatalogUserRoutes(u, db)
	materialRoute.MaterialUserRoutes(u, db, uploader)
	userRoute.UserRoutes(u, db, uploader)

	// 🛡️ Admin
	a := app.Group("/api/a",
		authMiddleware.AuthMiddleware(db),
		authMiddleware.RequireAdmin(db),
	)
	catalogRoute.CatalogAdminRoutes(a, db)
	quizRoute.QuizAdminRoutes(a, db)
	materialRoute.MaterialAdminRoutes(a, db, uploader)
	userRoute.UserAdminRoutes(a, db, uploader)
}

// buildUploader devolve o storage OSS quando configurado. Sem as variáveis
// OSS_* o serviço sobe normalmente e os endpoints de upload respondem 503.
func buildUploader() storage.Uploader {
	up, err := storage.NewOSSUploader()
	if err != nil {
		log.Printf("[WARN] storage indisponível (upload desabilitado): %v", err)
		return storage.Unavailable{}
	}
	return up
}
