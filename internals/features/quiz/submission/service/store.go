package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

/* ===============================
   Erro estruturado do store
=================================*/

// StoreError é o formato {message, code, details} devolvido por toda
// falha de banco — nenhum erro de store escapa cru para a camada HTTP.
type StoreError struct {
	Message string `json:"message"`
	Code    string `json:"code"`
	Details string `json:"details,omitempty"`
}

func (e *StoreError) Error() string {
	if e.Code == "" {
		return e.Message
	}
	return fmt.Sprintf("%s (code=%s)", e.Message, e.Code)
}

// WrapStoreError converte um erro do GORM/Postgres no formato padrão.
func WrapStoreError(op string, err error) *StoreError {
	if err == nil {
		return nil
	}
	var se *StoreError
	if errors.As(err, &se) {
		return se
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return &StoreError{
			Message: op + ": " + pgErr.Message,
			Code:    pgErr.Code,
			Details: pgErr.Detail,
		}
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return &StoreError{Message: op + ": registro não encontrado", Code: "not_found"}
	}
	return &StoreError{Message: op + ": " + err.Error(), Code: "store_error"}
}

/* ===============================
   Interfaces do store
=================================*/

// AnswerRow é uma resposta já juntada ao texto da pergunta, na ordem
// global do diagnóstico (módulo, depois pergunta).
type AnswerRow struct {
	QuestionID   uuid.UUID `json:"question_id"`
	QuestionText string    `json:"question_text"`
	OrderNumber  int       `json:"order_number"`
	AnswerText   string    `json:"answer_text"`
}

// SubmissionStore é o contrato mínimo que o fluxo de finalização usa.
// Os serviços recebem a interface (e não o *gorm.DB) para que os testes
// rodem contra um store fake.
type SubmissionStore interface {
	// FindByUserID devolve (nil, nil) quando não existe submissão.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*model.SubmissionModel, error)
	// EnsureForUser devolve a submissão existente ou cria uma nova
	// (current_module=1, status=in_progress) de forma idempotente.
	EnsureForUser(ctx context.Context, userID uuid.UUID, email string) (*model.SubmissionModel, error)
	MarkCompleted(ctx context.Context, submissionID uuid.UUID, at time.Time) error
	CreateCompleted(ctx context.Context, userID uuid.UUID, email string, at time.Time) error
	UpdateCurrentModule(ctx context.Context, submissionID uuid.UUID, module int) error
	UpdateStatus(ctx context.Context, submissionID uuid.UUID, status string) error
	// CallCompleteQuiz invoca a procedure complete_quiz(user_id) no banco.
	CallCompleteQuiz(ctx context.Context, userID uuid.UUID) (bool, error)
	// UserInfo devolve e-mail e nome completo do usuário.
	UserInfo(ctx context.Context, userID uuid.UUID) (email, fullName string, err error)
}

type AnswerStore interface {
	Upsert(ctx context.Context, answer *model.AnswerModel) error
	ListBySubmission(ctx context.Context, submissionID uuid.UUID) ([]AnswerRow, error)
}

type ConsolidatedStore interface {
	UpsertConsolidated(ctx context.Context, row *model.ConsolidatedResponseModel) error
	FindBySubmission(ctx context.Context, submissionID uuid.UUID) (*model.ConsolidatedResponseModel, error)
	ListAll(ctx context.Context) ([]model.ConsolidatedResponseModel, error)
}

// Store agrega os contratos; a implementação GORM satisfaz todos.
type Store interface {
	SubmissionStore
	AnswerStore
	ConsolidatedStore
}
