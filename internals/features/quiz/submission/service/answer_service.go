package service

import (
	"context"
	"log"

	"github.com/google/uuid"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

// AnswerService grava respostas individuais: busca-ou-cria a submissão
// do usuário e faz o upsert da resposta por (submissão, pergunta).
type AnswerService struct {
	subs    SubmissionStore
	answers AnswerStore
}

func NewAnswerService(subs SubmissionStore, answers AnswerStore) *AnswerService {
	return &AnswerService{subs: subs, answers: answers}
}

type SaveAnswerResult struct {
	Success      bool      `json:"success"`
	SubmissionID uuid.UUID `json:"submission_id"`
}

// SaveAnswer persiste uma resposta. Salvar a mesma pergunta de novo
// sobrescreve a anterior (last-write-wins), nunca duplica. Falhas
// voltam como StoreError tipado — nada estoura como panic/exceção.
func (s *AnswerService) SaveAnswer(ctx context.Context, userID uuid.UUID, userEmail string, questionID uuid.UUID, value AnswerValue) (*SaveAnswerResult, *StoreError) {
	sub, err := s.subs.EnsureForUser(ctx, userID, userEmail)
	if err != nil {
		log.Printf("[ERROR] [saveAnswer] submissão do usuário %s: %v", userID, err)
		return nil, WrapStoreError("buscar/criar submissão", err)
	}

	encoded, err := value.Encode()
	if err != nil {
		return nil, WrapStoreError("serializar resposta", err)
	}

	answer := model.AnswerModel{
		AnswerSubmissionID: sub.SubmissionID,
		AnswerQuestionID:   questionID,
		AnswerText:         encoded,
	}
	if err := s.answers.Upsert(ctx, &answer); err != nil {
		log.Printf("[ERROR] [saveAnswer] upsert pergunta %s: %v", questionID, err)
		return nil, WrapStoreError("gravar resposta", err)
	}

	return &SaveAnswerResult{Success: true, SubmissionID: sub.SubmissionID}, nil
}
