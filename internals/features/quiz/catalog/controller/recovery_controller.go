package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/catalog/dto"
	"sistema_mar_backend/internals/features/quiz/catalog/service"
	helpers "sistema_mar_backend/internals/helpers"
	"sistema_mar_backend/internals/seeds/quiz"
)

type RecoveryController struct {
	Service *service.RecoveryService
}

func NewRecoveryController(db *gorm.DB) *RecoveryController {
	return &RecoveryController{Service: service.NewRecoveryService(db)}
}

// Rebuild recebe o seed no corpo e substitui o catálogo inteiro.
// Operação manual de administrador — o diagnóstico em andamento dos
// usuários não é tocado (apenas o catálogo é reconstruído).
func (ctrl *RecoveryController) Rebuild(c *fiber.Ctx) error {
	var seed dto.CatalogSeed
	if err := c.BodyParser(&seed); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Seed inválido (esperado JSON com modules)")
	}

	if err := service.ValidateSeed(&seed); err != nil {
		return helpers.JsonError(c, fiber.StatusUnprocessableEntity, err.Error())
	}

	if err := ctrl.Service.Rebuild(c.UserContext(), &seed); err != nil {
		log.Println("[ERROR] Recuperação do catálogo:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao reconstruir catálogo: "+err.Error())
	}
	return helpers.JsonOK(c, "Catálogo reconstruído", fiber.Map{"modules": len(seed.Modules)})
}

// RebuildFromFile usa o seed oficial versionado no repositório.
func (ctrl *RecoveryController) RebuildFromFile(c *fiber.Ctx) error {
	seed, err := quiz.LoadCatalogSeed(quiz.DefaultSeedPath)
	if err != nil {
		log.Println("[ERROR] Leitura do seed:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao ler o seed oficial")
	}

	if err := ctrl.Service.Rebuild(c.UserContext(), seed); err != nil {
		log.Println("[ERROR] Recuperação do catálogo:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao reconstruir catálogo: "+err.Error())
	}
	return helpers.JsonOK(c, "Catálogo reconstruído a partir do seed oficial", fiber.Map{"modules": len(seed.Modules)})
}
