package model

import (
	"time"

	"github.com/google/uuid"
)

// AnswerModel representa uma resposta (tabela quiz_answers).
// No máximo uma resposta por (submissão, pergunta): o upsert pelo
// índice único garante last-write-wins, nunca duplicação.
type AnswerModel struct {
	AnswerID           uuid.UUID `gorm:"column:answer_id;type:uuid;default:gen_random_uuid();primaryKey" json:"answer_id"`
	AnswerSubmissionID uuid.UUID `gorm:"column:answer_submission_id;type:uuid;not null;uniqueIndex:idx_answer_submission_question,priority:1" json:"answer_submission_id"`
	AnswerQuestionID   uuid.UUID `gorm:"column:answer_question_id;type:uuid;not null;uniqueIndex:idx_answer_submission_question,priority:2" json:"answer_question_id"`

	// Valor serializado: escalar cru ou array JSON (checkbox).
	// A (de)serialização acontece só na borda do store — ver AnswerValue.
	AnswerText string `gorm:"column:answer_text;type:text;not null" json:"answer_text"`

	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (AnswerModel) TableName() string {
	return "quiz_answers"
}
