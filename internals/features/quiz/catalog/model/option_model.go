package model

import (
	"time"

	"github.com/google/uuid"
)

// OptionModel representa uma alternativa de pergunta radio/checkbox
// (tabela quiz_options). Alternativas são substituídas sempre em lote.
type OptionModel struct {
	OptionID          uuid.UUID `gorm:"column:option_id;type:uuid;default:gen_random_uuid();primaryKey" json:"option_id"`
	OptionQuestionID  uuid.UUID `gorm:"column:option_question_id;type:uuid;not null;index" json:"option_question_id"`
	OptionText        string    `gorm:"column:option_text;type:text;not null" json:"option_text"`
	OptionOrderNumber int       `gorm:"column:option_order_number;not null" json:"option_order_number"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
}

func (OptionModel) TableName() string {
	return "quiz_options"
}
