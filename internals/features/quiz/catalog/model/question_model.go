package model

import (
	"time"

	"github.com/google/uuid"
)

// Tipos de pergunta aceitos.
const (
	QuestionTypeText      = "text"
	QuestionTypeEmail     = "email"
	QuestionTypeNumber    = "number"
	QuestionTypeURL       = "url"
	QuestionTypeInstagram = "instagram"
	QuestionTypeTextarea  = "textarea"
	QuestionTypeRadio     = "radio"
	QuestionTypeCheckbox  = "checkbox"
)

var ValidQuestionTypes = map[string]bool{
	QuestionTypeText:      true,
	QuestionTypeEmail:     true,
	QuestionTypeNumber:    true,
	QuestionTypeURL:       true,
	QuestionTypeInstagram: true,
	QuestionTypeTextarea:  true,
	QuestionTypeRadio:     true,
	QuestionTypeCheckbox:  true,
}

// HasOptions indica se o tipo carrega alternativas (radio/checkbox).
func HasOptions(questionType string) bool {
	return questionType == QuestionTypeRadio || questionType == QuestionTypeCheckbox
}

// QuestionModel representa uma pergunta (tabela quiz_questions).
// A pergunta referencia o módulo explicitamente — o vínculo nunca é
// inferido por faixa de order_number.
type QuestionModel struct {
	QuestionID          uuid.UUID `gorm:"column:question_id;type:uuid;default:gen_random_uuid();primaryKey" json:"question_id"`
	QuestionModuleID    uuid.UUID `gorm:"column:question_module_id;type:uuid;not null;index;uniqueIndex:idx_question_module_order,priority:1" json:"question_module_id"`
	QuestionText        string    `gorm:"column:question_text;type:text;not null" json:"question_text"`
	QuestionType        string    `gorm:"column:question_type;type:varchar(20);not null" json:"question_type"`
	QuestionRequired    bool      `gorm:"column:question_required;not null;default:false" json:"question_required"`
	QuestionOrderNumber int       `gorm:"column:question_order_number;not null;uniqueIndex:idx_question_module_order,priority:2" json:"question_order_number"`
	QuestionHint        *string   `gorm:"column:question_hint;type:text" json:"question_hint,omitempty"`
	QuestionMaxOptions  *int      `gorm:"column:question_max_options" json:"question_max_options,omitempty"`

	Options []OptionModel `gorm:"foreignKey:OptionQuestionID;references:QuestionID" json:"options,omitempty"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (QuestionModel) TableName() string {
	return "quiz_questions"
}
