package controller

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/catalog/dto"
	"sistema_mar_backend/internals/features/quiz/catalog/model"
	helpers "sistema_mar_backend/internals/helpers"
)

type QuestionController struct {
	DB *gorm.DB
}

func NewQuestionController(db *gorm.DB) *QuestionController {
	return &QuestionController{DB: db}
}

// Create insere uma pergunta nova vinculada explicitamente ao módulo.
func (ctrl *QuestionController) Create(c *fiber.Ctx) error {
	var req dto.CreateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	moduleID, _ := uuid.Parse(req.ModuleID)
	var module model.ModuleModel
	if err := ctrl.DB.First(&module, "module_id = ?", moduleID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Módulo não encontrado")
		}
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao buscar módulo")
	}

	if model.HasOptions(req.Type) && len(req.Options) < 2 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Perguntas radio/checkbox exigem pelo menos 2 alternativas")
	}
	if !model.HasOptions(req.Type) && len(req.Options) > 0 {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Este tipo de pergunta não aceita alternativas")
	}

	question := model.QuestionModel{
		QuestionModuleID:    module.ModuleID,
		QuestionText:        req.Text,
		QuestionType:        req.Type,
		QuestionRequired:    req.Required,
		QuestionOrderNumber: req.OrderNumber,
		QuestionHint:        req.Hint,
		QuestionMaxOptions:  req.MaxOptions,
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&question).Error; err != nil {
			return err
		}
		if len(req.Options) == 0 {
			return nil
		}
		options := make([]model.OptionModel, 0, len(req.Options))
		for i, text := range req.Options {
			options = append(options, model.OptionModel{
				OptionQuestionID:  question.QuestionID,
				OptionText:        text,
				OptionOrderNumber: i + 1,
			})
		}
		return tx.CreateInBatches(&options, 100).Error
	})
	if err != nil {
		log.Println("[ERROR] Falha ao inserir pergunta:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao inserir pergunta")
	}

	return helpers.JsonCreated(c, "Pergunta criada", question)
}

// Update altera texto/obrigatoriedade/dica de uma pergunta.
func (ctrl *QuestionController) Update(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Pergunta não encontrada")
	}

	var req dto.UpdateQuestionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}

	if req.Text != nil {
		question.QuestionText = *req.Text
	}
	if req.Required != nil {
		question.QuestionRequired = *req.Required
	}
	if req.Hint != nil {
		question.QuestionHint = req.Hint
	}
	if req.MaxOptions != nil {
		question.QuestionMaxOptions = req.MaxOptions
	}

	if err := ctrl.DB.Save(&question).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao atualizar pergunta")
	}
	return helpers.JsonUpdated(c, "Pergunta atualizada", question)
}

// Delete remove a pergunta e suas alternativas.
func (ctrl *QuestionController) Delete(c *fiber.Ctx) error {
	id := c.Params("id")

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OptionModel{}, "option_question_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&model.QuestionModel{}, "question_id = ?", id).Error
	})
	if err != nil {
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao remover pergunta")
	}
	return helpers.JsonDeleted(c, "Pergunta removida", fiber.Map{"question_id": id})
}

// ReplaceOptions troca o lote inteiro de alternativas de uma pergunta.
// Alternativas nunca recebem patch parcial.
func (ctrl *QuestionController) ReplaceOptions(c *fiber.Ctx) error {
	id := c.Params("id")

	var question model.QuestionModel
	if err := ctrl.DB.First(&question, "question_id = ?", id).Error; err != nil {
		return helpers.JsonError(c, fiber.StatusNotFound, "Pergunta não encontrada")
	}
	if !model.HasOptions(question.QuestionType) {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Esta pergunta não aceita alternativas")
	}

	var req dto.ReplaceOptionsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonError(c, fiber.StatusBadRequest, "Corpo da requisição inválido")
	}
	if handled, err := helpers.ValidateStruct(c, req); handled {
		return err
	}

	options := make([]model.OptionModel, 0, len(req.Options))
	for i, text := range req.Options {
		options = append(options, model.OptionModel{
			OptionQuestionID:  question.QuestionID,
			OptionText:        text,
			OptionOrderNumber: i + 1,
		})
	}

	err := ctrl.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&model.OptionModel{}, "option_question_id = ?", question.QuestionID).Error; err != nil {
			return err
		}
		return tx.CreateInBatches(&options, 100).Error
	})
	if err != nil {
		log.Println("[ERROR] Falha ao substituir alternativas:", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Falha ao substituir alternativas")
	}
	return helpers.JsonUpdated(c, "Alternativas substituídas", options)
}
