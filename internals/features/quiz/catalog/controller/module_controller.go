package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/catalog/model"
	helpers "sistema_mar_backend/internals/helpers"
)

type ModuleController struct {
	DB *gorm.DB
}

func NewModuleController(db *gorm.DB) *ModuleController {
	return &ModuleController{DB: db}
}

// GetAll devolve os módulos ordenados por module_order_number.
func (ctrl *ModuleController) GetAll(c *fiber.Ctx) error {
	var modules []model.ModuleModel
	if err := ctrl.DB.Order("module_order_number ASC").Find(&modules).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar módulos")
	}
	return helpers.JsonOK(c, "", modules)
}

// GetQuestions devolve as perguntas de um módulo, ordenadas, com alternativas.
func (ctrl *ModuleController) GetQuestions(c *fiber.Ctx) error {
	moduleID := c.Params("id")

	var questions []model.QuestionModel
	err := ctrl.DB.
		Preload("Options", func(db *gorm.DB) *gorm.DB {
			return db.Order("option_order_number ASC")
		}).
		Where("question_module_id = ?", moduleID).
		Order("question_order_number ASC").
		Find(&questions).Error
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar perguntas")
	}
	return helpers.JsonOK(c, "", questions)
}
