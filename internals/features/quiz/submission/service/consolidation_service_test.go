package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPayloadDualKeyConventions(t *testing.T) {
	rows := []AnswerRow{
		{QuestionID: uuid.New(), QuestionText: "Qual é o nome da sua empresa?", OrderNumber: 1, AnswerText: "Padaria da Ana"},
		{QuestionID: uuid.New(), QuestionText: "Quais canais seu público mais usa?", OrderNumber: 2, AnswerText: `["Instagram","WhatsApp"]`},
	}

	payload := BuildPayload(rows)

	assert.Equal(t, "Qual é o nome da sua empresa?", payload["Pergunta_1"])
	assert.Equal(t, "Padaria da Ana", payload["Resposta_1"])
	assert.Equal(t, "Padaria da Ana", payload["Qual é o nome da sua empresa?"])

	assert.Equal(t, "Quais canais seu público mais usa?", payload["Pergunta_2"])
	assert.Equal(t, []string{"Instagram", "WhatsApp"}, payload["Resposta_2"], "checkbox volta como lista, não como texto JSON")
	assert.Len(t, payload, 6)
}

func TestBuildPayloadIndexFollowsRowOrder(t *testing.T) {
	rows := []AnswerRow{
		{QuestionText: "Primeira", OrderNumber: 3, AnswerText: "a"},
		{QuestionText: "Segunda", OrderNumber: 7, AnswerText: "b"},
	}
	payload := BuildPayload(rows)
	// o índice do payload é a posição na lista ordenada, não o order_number
	assert.Equal(t, "Primeira", payload["Pergunta_1"])
	assert.Equal(t, "Segunda", payload["Pergunta_2"])
}

func TestBuildPayloadEmpty(t *testing.T) {
	payload := BuildPayload(nil)
	require.NotNil(t, payload)
	assert.Empty(t, payload)
}

func TestRebuildEmptyAnswersWritesEmptyObject(t *testing.T) {
	store := newFakeStore()
	sub := existingSubmission(uuid.New())

	row, serr := NewConsolidationService(store, store).Rebuild(context.Background(), sub, "Ana")

	require.Nil(t, serr)
	assert.JSONEq(t, `{}`, string(row.Respostas), "sem respostas o documento é {} — a coluna é NOT NULL")
	assert.Equal(t, sub.SubmissionID, row.RespostaSubmissionID)
	assert.Equal(t, sub.SubmissionUserEmail, row.RespostaUserEmail)
	assert.Equal(t, "Ana", row.RespostaFullName)
}

func TestRebuildUsesCompletedAtAsDataSubmissao(t *testing.T) {
	store := newFakeStore()
	sub := existingSubmission(uuid.New())
	at := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)
	sub.SubmissionCompletedAt = &at

	row, serr := NewConsolidationService(store, store).Rebuild(context.Background(), sub, "")
	require.Nil(t, serr)
	assert.Equal(t, at, row.DataSubmissao)
}

func TestRebuildIsIdempotent(t *testing.T) {
	store := newFakeStore()
	sub := existingSubmission(uuid.New())
	at := time.Date(2026, 8, 20, 15, 4, 5, 0, time.UTC)
	sub.SubmissionCompletedAt = &at
	store.rows = []AnswerRow{
		{QuestionText: "Segmento?", OrderNumber: 2, AnswerText: "Alimentação"},
		{QuestionText: "Nome?", OrderNumber: 1, AnswerText: "Padaria da Ana"},
	}

	svc := NewConsolidationService(store, store)
	first, serr := svc.Rebuild(context.Background(), sub, "Ana")
	require.Nil(t, serr)
	second, serr := svc.Rebuild(context.Background(), sub, "Ana")
	require.Nil(t, serr)

	assert.Equal(t, string(first.Respostas), string(second.Respostas))
	assert.Equal(t, first.RespostaSubmissionID, second.RespostaSubmissionID)
}

func TestRebuildOrdersByGlobalOrderNumber(t *testing.T) {
	store := newFakeStore()
	sub := existingSubmission(uuid.New())
	store.rows = []AnswerRow{
		{QuestionText: "Terceira", OrderNumber: 3, AnswerText: "c"},
		{QuestionText: "Primeira", OrderNumber: 1, AnswerText: "a"},
		{QuestionText: "Segunda", OrderNumber: 2, AnswerText: "b"},
	}

	row, serr := NewConsolidationService(store, store).Rebuild(context.Background(), sub, "")
	require.Nil(t, serr)
	assert.Contains(t, string(row.Respostas), `"Pergunta_1":"Primeira"`)
	assert.Contains(t, string(row.Respostas), `"Pergunta_3":"Terceira"`)
}
