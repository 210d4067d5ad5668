package service

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/configs"
	"sistema_mar_backend/internals/constants"
	authModel "sistema_mar_backend/internals/features/users/auth/model"
	userModel "sistema_mar_backend/internals/features/users/user/model"
	helpers "sistema_mar_backend/internals/helpers"
)

const (
	accessTTLDefault  = 24 * time.Hour
	refreshTTLDefault = 7 * 24 * time.Hour
)

func nowUTC() time.Time { return time.Now().UTC() }

func getJWTSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_SECRET não definido")
	}
	return secret, nil
}

func getRefreshSecret() (string, error) {
	secret := strings.TrimSpace(configs.JWTRefreshSecret)
	if secret == "" {
		return "", fiber.NewError(fiber.StatusInternalServerError, "JWT_REFRESH_SECRET não definido")
	}
	return secret, nil
}

// Hash HMAC do refresh token: o banco nunca guarda o token em claro.
func computeRefreshHash(token, secret string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

/* ==========================
   REGISTER
========================== */

type registerRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	FullName string `json:"full_name" validate:"required,min=3,max=255"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// Register cria um usuário comum (role=user) com senha bcrypt.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	req.Email = strings.ToLower(strings.TrimSpace(req.Email))

	var count int64
	if err := db.Model(&userModel.UserModel{}).Where("email = ?", req.Email).Count(&count).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao verificar e-mail")
	}
	if count > 0 {
		return helpers.JsonError(c, fiber.StatusConflict, "E-mail já cadastrado")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao processar senha")
	}

	user := userModel.UserModel{
		UserName: req.UserName,
		FullName: req.FullName,
		Email:    req.Email,
		Password: string(hash),
		Role:     constants.RoleUser,
	}
	if err := db.Create(&user).Error; err != nil {
		log.Println("[ERROR] Falha ao criar usuário:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao criar usuário")
	}

	return helpers.JsonCreated(c, "Usuário cadastrado com sucesso", fiber.Map{
		"id":        user.ID,
		"user_name": user.UserName,
		"email":     user.Email,
	})
}

/* ==========================
   LOGIN
========================== */

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login autentica por e-mail/senha e emite access + refresh token.
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	var user userModel.UserModel
	err := db.First(&user, "email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao buscar usuário")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Credenciais inválidas")
	}

	return issueTokens(db, c, &user)
}

func issueTokens(db *gorm.DB, c *fiber.Ctx, user *userModel.UserModel) error {
	jwtSecret, err := getJWTSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}
	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	now := nowUTC()

	accessClaims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"role":  user.Role,
		"iat":   now.Unix(),
		"exp":   now.Add(accessTTLDefault).Unix(),
	}
	accessToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, accessClaims).SignedString([]byte(jwtSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar token")
	}

	refreshClaims := jwt.MapClaims{
		"sub": user.ID.String(),
		"iat": now.Unix(),
		"exp": now.Add(refreshTTLDefault).Unix(),
	}
	refreshToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, refreshClaims).SignedString([]byte(refreshSecret))
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao gerar refresh token")
	}

	row := authModel.RefreshTokenModel{
		UserID:    user.ID,
		Token:     computeRefreshHash(refreshToken, refreshSecret),
		ExpiresAt: now.Add(refreshTTLDefault),
	}
	if err := db.Create(&row).Error; err != nil {
		log.Println("[ERROR] Falha ao persistir refresh token:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Erro ao persistir sessão")
	}

	c.Cookie(&fiber.Cookie{
		Name:     "refresh_token",
		Value:    refreshToken,
		Expires:  now.Add(refreshTTLDefault),
		HTTPOnly: true,
		Secure:   true,
		SameSite: "Lax",
		Path:     "/",
	})

	return helpers.JsonOK(c, "Login realizado com sucesso", fiber.Map{
		"access_token":  accessToken,
		"refresh_token": refreshToken,
		"user": fiber.Map{
			"id":         user.ID,
			"user_name":  user.UserName,
			"full_name":  user.FullName,
			"email":      user.Email,
			"role":       user.Role,
			"plan_level": user.PlanLevel,
		},
	})
}

/* ==========================
   REFRESH (com rotação)
========================== */

// RefreshToken valida o refresh atual, revoga o hash antigo e emite um novo par.
func RefreshToken(db *gorm.DB, c *fiber.Ctx) error {
	refreshCookie := strings.TrimSpace(c.Cookies("refresh_token"))
	if refreshCookie == "" {
		var body struct {
			RefreshToken string `json:"refresh_token"`
		}
		_ = c.BodyParser(&body)
		refreshCookie = strings.TrimSpace(body.RefreshToken)
	}
	if refreshCookie == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token ausente")
	}

	refreshSecret, err := getRefreshSecret()
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, err.Error())
	}

	tok, err := jwt.Parse(refreshCookie, func(t *jwt.Token) (any, error) {
		return []byte(refreshSecret), nil
	})
	if err != nil || !tok.Valid {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}
	claims, _ := tok.Claims.(jwt.MapClaims)
	sub, _ := claims["sub"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token inválido")
	}

	hash := computeRefreshHash(refreshCookie, refreshSecret)
	var row authModel.RefreshTokenModel
	if err := db.First(&row, "token = ?", hash).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token desconhecido")
	}
	if nowUTC().After(row.ExpiresAt) {
		_ = db.Delete(&row).Error
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Refresh token expirado")
	}

	var user userModel.UserModel
	if err := db.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Usuário não encontrado")
	}
	if !user.IsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Conta desativada")
	}

	// ROTATE: remove o hash antigo antes de emitir o novo par
	if err := db.Delete(&row).Error; err != nil {
		log.Printf("[refresh] falha ao remover hash antigo: %v", err)
	}

	return issueTokens(db, c, &user)
}

/* ==========================
   LOGOUT
========================== */

// Logout coloca o access token na blacklist e descarta o refresh token.
func Logout(db *gorm.DB, c *fiber.Ctx) error {
	authHeader := strings.TrimSpace(c.Get("Authorization"))
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[1] == "" {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Token ausente")
	}
	accessToken := strings.TrimSpace(parts[1])

	entry := authModel.TokenBlacklistModel{
		Token:     accessToken,
		ExpiresAt: nowUTC().Add(accessTTLDefault),
	}
	if err := db.Create(&entry).Error; err != nil {
		log.Println("[ERROR] Falha ao gravar blacklist:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao encerrar sessão")
	}

	if refreshCookie := strings.TrimSpace(c.Cookies("refresh_token")); refreshCookie != "" {
		if refreshSecret, err := getRefreshSecret(); err == nil {
			hash := computeRefreshHash(refreshCookie, refreshSecret)
			_ = db.Where("token = ?", hash).Delete(&authModel.RefreshTokenModel{}).Error
		}
	}
	c.ClearCookie("refresh_token")

	return helpers.JsonOK(c, "Sessão encerrada", nil)
}

/* ==========================
   LIMPEZA PERIÓDICA
========================== */

// CleanupExpiredTokens remove blacklist e refresh tokens vencidos.
func CleanupExpiredTokens(db *gorm.DB) {
	now := nowUTC()
	if err := db.Where("expires_at < ?", now).Delete(&authModel.TokenBlacklistModel{}).Error; err != nil {
		log.Printf("[cleanup] blacklist: %v", err)
	}
	if err := db.Where("expires_at < ?", now).Delete(&authModel.RefreshTokenModel{}).Error; err != nil {
		log.Printf("[cleanup] refresh tokens: %v", err)
	}
}
