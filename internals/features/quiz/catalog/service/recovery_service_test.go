package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sistema_mar_backend/internals/features/quiz/catalog/dto"
)

func validSeed() *dto.CatalogSeed {
	max := 3
	return &dto.CatalogSeed{Modules: []dto.ModuleSeed{
		{
			Title:       "Identificação",
			OrderNumber: 1,
			Questions: []dto.QuestionSeed{
				{Text: "Nome da empresa?", Type: "text", Required: true, OrderNumber: 1},
				{Text: "E-mail?", Type: "email", Required: true, OrderNumber: 2},
			},
		},
		{
			Title:       "Público",
			OrderNumber: 2,
			Questions: []dto.QuestionSeed{
				{Text: "Tempo de empresa?", Type: "radio", OrderNumber: 1, Options: []string{"Menos de 1 ano", "Mais de 1 ano"}},
				{Text: "Canais?", Type: "checkbox", OrderNumber: 2, MaxOptions: &max, Options: []string{"Instagram", "WhatsApp", "E-mail"}},
			},
		},
	}}
}

func TestValidateSeedAccepts(t *testing.T) {
	require.NoError(t, ValidateSeed(validSeed()))
}

func TestValidateSeedRejectsEmpty(t *testing.T) {
	assert.Error(t, ValidateSeed(nil))
	assert.Error(t, ValidateSeed(&dto.CatalogSeed{}))
}

func TestValidateSeedRejectsDuplicateModuleOrder(t *testing.T) {
	seed := validSeed()
	seed.Modules[1].OrderNumber = seed.Modules[0].OrderNumber
	err := ValidateSeed(seed)
	require.Error(t, err)
	assert.True(t, strings.Contains(err.Error(), "duplicado"))
}

func TestValidateSeedRejectsDuplicateQuestionOrderWithinModule(t *testing.T) {
	seed := validSeed()
	seed.Modules[0].Questions[1].OrderNumber = 1
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedAllowsSameQuestionOrderAcrossModules(t *testing.T) {
	// order_number é único por módulo, não global
	require.NoError(t, ValidateSeed(validSeed()))
}

func TestValidateSeedRejectsUnknownType(t *testing.T) {
	seed := validSeed()
	seed.Modules[0].Questions[0].Type = "dropdown"
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedRejectsRadioWithTooFewOptions(t *testing.T) {
	seed := validSeed()
	seed.Modules[1].Questions[0].Options = []string{"Única"}
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedRejectsOptionsOnFreeTextQuestion(t *testing.T) {
	seed := validSeed()
	seed.Modules[0].Questions[0].Options = []string{"a", "b"}
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedRejectsMaxOptionsOutsideCheckbox(t *testing.T) {
	seed := validSeed()
	two := 2
	seed.Modules[1].Questions[0].MaxOptions = &two // radio
	assert.Error(t, ValidateSeed(seed))
}

func TestValidateSeedRejectsModuleWithoutQuestions(t *testing.T) {
	seed := validSeed()
	seed.Modules[0].Questions = nil
	assert.Error(t, ValidateSeed(seed))
}
