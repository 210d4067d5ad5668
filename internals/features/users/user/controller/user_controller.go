package controller

import (
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	models "sistema_mar_backend/internals/features/users/user/model"
	helpers "sistema_mar_backend/internals/helpers"
	storage "sistema_mar_backend/internals/helpers/storage"
)

type UserController struct {
	DB       *gorm.DB
	Uploader storage.Uploader
}

func NewUserController(db *gorm.DB, uploader storage.Uploader) *UserController {
	return &UserController{DB: db, Uploader: uploader}
}

// Me devolve o usuário autenticado.
func (uc *UserController) Me(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var user models.UserModel
	if err := uc.DB.First(&user, "id = ?", userID).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helpers.JsonOK(c, "", user)
}

type updateProfileRequest struct {
	UserName *string `json:"user_name" validate:"omitempty,min=3,max=50"`
	FullName *string `json:"full_name" validate:"omitempty,min=3,max=255"`
}

// UpdateProfile altera nome de exibição / nome completo.
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	updates := map[string]any{}
	if req.UserName != nil {
		updates["user_name"] = strings.TrimSpace(*req.UserName)
	}
	if req.FullName != nil {
		updates["full_name"] = strings.TrimSpace(*req.FullName)
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	if err := uc.DB.Model(&models.UserModel{}).Where("id = ?", userID).Updates(updates).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar perfil")
	}
	return helpers.JsonUpdated(c, "Perfil atualizado", updates)
}

// UploadAvatar recebe multipart "avatar", envia ao storage e grava a URL.
func (uc *UserController) UploadAvatar(c *fiber.Ctx) error {
	userID, err := helpers.GetUserUUID(c)
	if err != nil {
		return err
	}

	file, err := c.FormFile("avatar")
	if err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Arquivo 'avatar' ausente")
	}

	url, err := uc.Uploader.UploadFile("avatars", file)
	if err != nil {
		log.Println("[ERROR] Upload de avatar:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha no upload do avatar")
	}

	if err := uc.DB.Model(&models.UserModel{}).Where("id = ?", userID).
		Update("avatar_url", url).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao gravar avatar")
	}
	return helpers.JsonUpdated(c, "Avatar atualizado", fiber.Map{"avatar_url": url})
}

/* ==========================
   Administração de usuários
========================== */

// GetAll lista usuários com paginação e busca (admin).
func (uc *UserController) GetAll(c *fiber.Ctx) error {
	paging := helpers.ResolvePaging(c, 20, 100)

	q := uc.DB.Model(&models.UserModel{})
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		like := "%" + strings.ToLower(search) + "%"
		q = q.Where("LOWER(email) LIKE ? OR LOWER(full_name) LIKE ?", like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao contar usuários")
	}

	var users []models.UserModel
	if err := q.Order("created_at DESC").Offset(paging.Offset).Limit(paging.Limit).Find(&users).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao listar usuários")
	}

	pagination := helpers.BuildPaginationFromPage(total, paging.Page, paging.PerPage)
	return helpers.JsonList(c, "", users, &pagination)
}

type adminUpdateUserRequest struct {
	Role      *string `json:"role" validate:"omitempty,oneof=user admin"`
	PlanLevel *string `json:"plan_level" validate:"omitempty,oneof=basic intermediate premium"`
	IsActive  *bool   `json:"is_active"`
}

// AdminUpdate altera role/plano/ativação de um usuário (admin).
func (uc *UserController) AdminUpdate(c *fiber.Ctx) error {
	id := c.Params("id")

	var req adminUpdateUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	updates := map[string]any{}
	if req.Role != nil {
		updates["role"] = *req.Role
	}
	if req.PlanLevel != nil {
		updates["plan_level"] = *req.PlanLevel
	}
	if req.IsActive != nil {
		updates["is_active"] = *req.IsActive
	}
	if len(updates) == 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Nada para atualizar")
	}

	res := uc.DB.Model(&models.UserModel{}).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar usuário")
	}
	if res.RowsAffected == 0 {
		return helpers.JsonError(c, fiber.StatusNotFound, "Usuário não encontrado")
	}
	return helpers.JsonUpdated(c, "Usuário atualizado", updates)
}
