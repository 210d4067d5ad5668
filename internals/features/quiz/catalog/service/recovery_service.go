package service

import (
	"context"
	"fmt"
	"log"

	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/catalog/dto"
	"sistema_mar_backend/internals/features/quiz/catalog/model"
)

// RecoveryService reconstrói o catálogo do diagnóstico (módulos,
// perguntas e alternativas) por substituição total: delete + insert
// dentro de uma única transação. Nunca aplica patch parcial.
type RecoveryService struct {
	DB *gorm.DB
}

func NewRecoveryService(db *gorm.DB) *RecoveryService {
	return &RecoveryService{DB: db}
}

// ValidateSeed checa a integridade referencial do seed antes de tocar
// no banco: tipos válidos, order_number único por módulo e entre módulos,
// alternativas apenas em radio/checkbox.
func ValidateSeed(seed *dto.CatalogSeed) error {
	if seed == nil || len(seed.Modules) == 0 {
		return fmt.Errorf("seed vazio: nenhum módulo declarado")
	}

	moduleOrders := make(map[int]bool, len(seed.Modules))
	for _, m := range seed.Modules {
		if m.Title == "" {
			return fmt.Errorf("módulo com order_number %d sem título", m.OrderNumber)
		}
		if m.OrderNumber < 1 {
			return fmt.Errorf("módulo %q: order_number deve ser >= 1", m.Title)
		}
		if moduleOrders[m.OrderNumber] {
			return fmt.Errorf("order_number %d duplicado entre módulos", m.OrderNumber)
		}
		moduleOrders[m.OrderNumber] = true

		if len(m.Questions) == 0 {
			return fmt.Errorf("módulo %q não tem perguntas", m.Title)
		}

		questionOrders := make(map[int]bool, len(m.Questions))
		for _, q := range m.Questions {
			if q.Text == "" {
				return fmt.Errorf("módulo %q: pergunta sem texto", m.Title)
			}
			if !model.ValidQuestionTypes[q.Type] {
				return fmt.Errorf("módulo %q: tipo de pergunta inválido %q", m.Title, q.Type)
			}
			if questionOrders[q.OrderNumber] {
				return fmt.Errorf("módulo %q: order_number %d duplicado entre perguntas", m.Title, q.OrderNumber)
			}
			questionOrders[q.OrderNumber] = true

			if model.HasOptions(q.Type) {
				if len(q.Options) < 2 {
					return fmt.Errorf("módulo %q, pergunta %q: radio/checkbox exige pelo menos 2 alternativas", m.Title, q.Text)
				}
			} else if len(q.Options) > 0 {
				return fmt.Errorf("módulo %q, pergunta %q: tipo %q não aceita alternativas", m.Title, q.Text, q.Type)
			}
			if q.MaxOptions != nil && q.Type != model.QuestionTypeCheckbox {
				return fmt.Errorf("módulo %q, pergunta %q: max_options só vale para checkbox", m.Title, q.Text)
			}
		}
	}
	return nil
}

// Rebuild substitui o catálogo inteiro pelo seed validado.
func (s *RecoveryService) Rebuild(ctx context.Context, seed *dto.CatalogSeed) error {
	if err := ValidateSeed(seed); err != nil {
		return err
	}

	return s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// limpeza em ordem reversa de FK
		if err := tx.Where("1 = 1").Delete(&model.OptionModel{}).Error; err != nil {
			return fmt.Errorf("limpar alternativas: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.QuestionModel{}).Error; err != nil {
			return fmt.Errorf("limpar perguntas: %w", err)
		}
		if err := tx.Where("1 = 1").Delete(&model.ModuleModel{}).Error; err != nil {
			return fmt.Errorf("limpar módulos: %w", err)
		}

		for _, m := range seed.Modules {
			module := model.ModuleModel{
				ModuleTitle:       m.Title,
				ModuleDescription: m.Description,
				ModuleOrderNumber: m.OrderNumber,
			}
			if err := tx.Create(&module).Error; err != nil {
				return fmt.Errorf("inserir módulo %q: %w", m.Title, err)
			}

			for _, q := range m.Questions {
				question := model.QuestionModel{
					QuestionModuleID:    module.ModuleID,
					QuestionText:        q.Text,
					QuestionType:        q.Type,
					QuestionRequired:    q.Required,
					QuestionOrderNumber: q.OrderNumber,
					QuestionHint:        q.Hint,
					QuestionMaxOptions:  q.MaxOptions,
				}
				if err := tx.Create(&question).Error; err != nil {
					return fmt.Errorf("inserir pergunta %q: %w", q.Text, err)
				}

				if len(q.Options) == 0 {
					continue
				}
				options := make([]model.OptionModel, 0, len(q.Options))
				for i, text := range q.Options {
					options = append(options, model.OptionModel{
						OptionQuestionID:  question.QuestionID,
						OptionText:        text,
						OptionOrderNumber: i + 1,
					})
				}
				// lote único — alternativas nunca são inseridas uma a uma
				if err := tx.CreateInBatches(&options, 100).Error; err != nil {
					return fmt.Errorf("inserir alternativas da pergunta %q: %w", q.Text, err)
				}
			}
		}

		log.Printf("✅ Catálogo reconstruído: %d módulos", len(seed.Modules))
		return nil
	})
}
