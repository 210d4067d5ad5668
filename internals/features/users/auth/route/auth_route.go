package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "sistema_mar_backend/internals/features/users/auth/controller"
	"sistema_mar_backend/internals/middlewares"
	authMiddleware "sistema_mar_backend/internals/middlewares/auth"
)

func AuthRoutes(app *fiber.App, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	auth := app.Group("/api/auth")
	auth.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	auth.Post("/refresh-token", ctrl.RefreshToken)
	auth.Post("/logout", authMiddleware.AuthMiddleware(db), ctrl.Logout)
}
