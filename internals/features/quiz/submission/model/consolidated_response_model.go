package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ConsolidatedResponseModel é a projeção achatada das respostas de uma
// submissão (tabela quiz_respostas_completas), reconstruída por inteiro
// a cada finalização — nunca remendada incrementalmente.
type ConsolidatedResponseModel struct {
	RespostaID           uuid.UUID `gorm:"column:resposta_id;type:uuid;default:gen_random_uuid();primaryKey" json:"resposta_id"`
	RespostaSubmissionID uuid.UUID `gorm:"column:resposta_submission_id;type:uuid;not null;uniqueIndex" json:"resposta_submission_id"`
	RespostaUserID       uuid.UUID `gorm:"column:resposta_user_id;type:uuid;not null;index" json:"resposta_user_id"`
	RespostaUserEmail    string    `gorm:"column:resposta_user_email;size:255;not null" json:"resposta_user_email"`
	RespostaFullName     string    `gorm:"column:resposta_full_name;size:255;not null" json:"resposta_full_name"`
	DataSubmissao        time.Time `gorm:"column:data_submissao;not null" json:"data_submissao"`

	// NOT NULL: sem respostas o payload é um objeto vazio, nunca null.
	Respostas datatypes.JSON `gorm:"column:respostas;not null" json:"respostas"`
}

func (ConsolidatedResponseModel) TableName() string {
	return "quiz_respostas_completas"
}
