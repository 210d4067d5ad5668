// middlewares/cors.go

package middlewares

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"sistema_mar_backend/internals/configs"
)

// CorsMiddleware cria o middleware de CORS
func CorsMiddleware() fiber.Handler {
	origins := configs.GetEnv("CORS_ORIGINS", strings.Join([]string{
		"http://localhost:5173",
		"http://localhost:3000",
		"https://sistemamar.com.br",
		"https://app.sistemamar.com.br",
	}, ", "))

	return cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: true,
	})
}
