// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/configs"
	authModel "sistema_mar_backend/internals/features/users/auth/model"
	userModel "sistema_mar_backend/internals/features/users/user/model"
)

// AuthMiddleware valida o access token e grava user_id/role nos Locals.
func AuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		// Token revogado no logout?
		if c.Locals("token_checked") == nil {
			var existing authModel.TokenBlacklistModel
			if err := db.Where("token = ?", tokenString).First(&existing).Error; err == nil {
				log.Println("[WARNING] Token encontrado na blacklist")
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is blacklisted")
			} else if !errors.Is(err, gorm.ErrRecordNotFound) {
				log.Println("[ERROR] Erro de DB ao checar blacklist:", err)
				return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
			}
			c.Locals("token_checked", true)
		}

		secretKey := configs.JWTSecret
		if secretKey == "" {
			log.Println("[ERROR] JWT_SECRET vazio")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			return []byte(secretKey), nil
		}); err != nil {
			log.Println("[ERROR] Falha ao parsear token:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, 30*time.Second); err != nil {
			log.Println("[ERROR] Validação de exp:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		userID, err := extractUserID(claims)
		if err != nil {
			log.Println("[ERROR] user_id:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", userID.String())

		if err := ensureUserActive(db, userID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - User not found")
			}
			return fiber.NewError(fiber.StatusForbidden, "Sua conta foi desativada")
		}

		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		if email, ok := claims["email"].(string); ok {
			c.Locals("user_email", email)
		}

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	if authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
			return "", errors.New("Unauthorized - Malformed Authorization header")
		}
		return strings.TrimSpace(parts[1]), nil
	}
	// fallback: cookie (sessões do painel web)
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("claim exp ausente")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("claim exp inválida")
	}
	expTime := time.Unix(int64(expFloat), 0)
	if time.Now().After(expTime.Add(leeway)) {
		return fmt.Errorf("token expirado em %s", expTime)
	}
	return nil
}

func extractUserID(claims jwt.MapClaims) (uuid.UUID, error) {
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		// compat: tokens antigos usavam "id"
		sub, ok = claims["id"].(string)
		if !ok || sub == "" {
			return uuid.Nil, errors.New("claim sub ausente")
		}
	}
	return uuid.Parse(sub)
}

func ensureUserActive(db *gorm.DB, userID uuid.UUID) error {
	var user userModel.UserModel
	if err := db.Select("id", "is_active").First(&user, "id = ?", userID).Error; err != nil {
		return err
	}
	if !user.IsActive {
		return errors.New("usuário desativado")
	}
	return nil
}
