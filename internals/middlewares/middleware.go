package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"sistema_mar_backend/internals/middlewares/logger"
)

// SetupMiddlewares registra os middlewares globais na ordem correta.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(CorsMiddleware())
	app.Use(GlobalRateLimiter())
}
