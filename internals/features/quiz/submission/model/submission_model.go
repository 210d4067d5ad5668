package model

import (
	"time"

	"github.com/google/uuid"
)

// Status do diagnóstico. O estágio de revisão é um status explícito —
// não reutilizamos o contador de módulo como sentinela.
const (
	SubmissionStatusInProgress = "in_progress"
	SubmissionStatusReview     = "review"
	SubmissionStatusCompleted  = "completed"
)

// SubmissionModel representa o diagnóstico de um usuário
// (tabela quiz_submissions). No máximo uma submissão por usuário,
// garantida pelo índice único em submission_user_id.
type SubmissionModel struct {
	SubmissionID            uuid.UUID  `gorm:"column:submission_id;type:uuid;default:gen_random_uuid();primaryKey" json:"submission_id"`
	SubmissionUserID        uuid.UUID  `gorm:"column:submission_user_id;type:uuid;not null;uniqueIndex" json:"submission_user_id"`
	SubmissionUserEmail     string     `gorm:"column:submission_user_email;size:255;not null" json:"submission_user_email"`
	SubmissionCurrentModule int        `gorm:"column:submission_current_module;not null;default:1" json:"submission_current_module"`
	SubmissionStatus        string     `gorm:"column:submission_status;type:varchar(20);not null;default:'in_progress'" json:"submission_status"`
	SubmissionCompleted     bool       `gorm:"column:submission_completed;not null;default:false" json:"submission_completed"`
	SubmissionStartedAt     time.Time  `gorm:"column:submission_started_at;autoCreateTime" json:"submission_started_at"`
	SubmissionCompletedAt   *time.Time `gorm:"column:submission_completed_at" json:"submission_completed_at,omitempty"`
}

func (SubmissionModel) TableName() string {
	return "quiz_submissions"
}
