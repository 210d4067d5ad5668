package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

// ConsolidationService achata as respostas de uma submissão num único
// documento JSON em quiz_respostas_completas. A reconstrução substitui
// o documento inteiro (upsert por submissão) — é idempotente.
type ConsolidationService struct {
	answers      AnswerStore
	consolidated ConsolidatedStore
}

func NewConsolidationService(answers AnswerStore, consolidated ConsolidatedStore) *ConsolidationService {
	return &ConsolidationService{answers: answers, consolidated: consolidated}
}

// BuildPayload monta o mapa achatado. Cada resposta na posição i
// (1-based) entra três vezes: Pergunta_i, Resposta_i e o texto literal
// da pergunta como chave — redundância deliberada para consumidores
// que indexam por qualquer uma das convenções.
func BuildPayload(rows []AnswerRow) map[string]any {
	payload := make(map[string]any, len(rows)*3)
	for i, row := range rows {
		value := DecodeAnswerValue(row.AnswerText).Raw()
		n := i + 1
		payload[fmt.Sprintf("Pergunta_%d", n)] = row.QuestionText
		payload[fmt.Sprintf("Resposta_%d", n)] = value
		payload[row.QuestionText] = value
	}
	return payload
}

// Rebuild refaz a linha consolidada da submissão.
func (s *ConsolidationService) Rebuild(ctx context.Context, sub *model.SubmissionModel, fullName string) (*model.ConsolidatedResponseModel, *StoreError) {
	rows, err := s.answers.ListBySubmission(ctx, sub.SubmissionID)
	if err != nil {
		return nil, WrapStoreError("listar respostas", err)
	}

	// Sem respostas o payload é {} — a coluna é NOT NULL.
	payload := BuildPayload(rows)
	raw, err := json.Marshal(payload)
	if err != nil {
		return nil, WrapStoreError("serializar respostas consolidadas", err)
	}

	dataSubmissao := time.Now().UTC()
	if sub.SubmissionCompletedAt != nil {
		dataSubmissao = *sub.SubmissionCompletedAt
	}

	row := model.ConsolidatedResponseModel{
		RespostaSubmissionID: sub.SubmissionID,
		RespostaUserID:       sub.SubmissionUserID,
		RespostaUserEmail:    sub.SubmissionUserEmail,
		RespostaFullName:     fullName,
		DataSubmissao:        dataSubmissao,
		Respostas:            raw,
	}
	if err := s.consolidated.UpsertConsolidated(ctx, &row); err != nil {
		return nil, WrapStoreError("gravar respostas consolidadas", err)
	}
	return &row, nil
}
