package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sistema_mar_backend/internals/features/quiz/submission/model"
)

func existingSubmission(userID uuid.UUID) *model.SubmissionModel {
	return &model.SubmissionModel{
		SubmissionID:            uuid.New(),
		SubmissionUserID:        userID,
		SubmissionUserEmail:     "dona@empresa.com.br",
		SubmissionCurrentModule: 7,
		SubmissionStatus:        model.SubmissionStatusReview,
		SubmissionStartedAt:     time.Now().UTC().Add(-time.Hour),
	}
}

func newCompletionService(store *fakeStore, webhook WebhookDispatcher) *CompletionService {
	return NewCompletionService(store, NewConsolidationService(store, store), webhook)
}

func TestCompleteQuizRPCConfirms(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcOK = true
	store.fullName = "Dona da Empresa"
	webhook := &fakeWebhook{ok: true}

	res, serr := newCompletionService(store, webhook).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.True(t, res.Success)
	assert.Equal(t, MethodRPC, res.Method)
	assert.True(t, res.WebhookSent)
	assert.Equal(t, 1, webhook.calls)
	require.NotNil(t, store.consolidated, "a confirmação deve reconstruir o documento consolidado")
	assert.Equal(t, "Dona da Empresa", store.consolidated.RespostaFullName)
}

func TestCompleteQuizRPCErrorFallsToDirectUpdate(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcErr = assert.AnError // erro na RPC não aborta nem re-tenta

	res, serr := newCompletionService(store, &fakeWebhook{ok: true}).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.Equal(t, MethodDirectUpdate, res.Method)
	assert.True(t, store.sub.SubmissionCompleted)
	require.NotNil(t, store.sub.SubmissionCompletedAt)
}

func TestCompleteQuizRPCFalseFallsThrough(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcOK = false

	res, serr := newCompletionService(store, &fakeWebhook{ok: true}).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.Equal(t, MethodDirectUpdate, res.Method)
}

func TestCompleteQuizCreatesRowWhenNoneExists(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.email = "novo@empresa.com.br"

	res, serr := newCompletionService(store, &fakeWebhook{ok: true}).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.Equal(t, MethodCreate, res.Method)
	require.NotNil(t, store.sub)
	assert.Equal(t, "novo@empresa.com.br", store.sub.SubmissionUserEmail)
	assert.True(t, store.sub.SubmissionCompleted)
}

func TestCompleteQuizUnverifiedWriteIsHardFailure(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.writesStick = false // o update "passa" mas a releitura não confirma

	res, serr := newCompletionService(store, &fakeWebhook{ok: true}).CompleteQuiz(context.Background(), userID)

	assert.Nil(t, res)
	require.NotNil(t, serr)
	assert.Contains(t, serr.Message, "não confirmada na releitura")
}

func TestCompleteQuizExhaustionSurfacesLastError(t *testing.T) {
	// RPC falsa, nenhuma submissão e criação que não persiste:
	// as três estratégias se esgotam e o último erro sobe.
	userID := uuid.New()
	store := newFakeStore()
	store.writesStick = false

	res, serr := newCompletionService(store, &fakeWebhook{ok: true}).CompleteQuiz(context.Background(), userID)

	assert.Nil(t, res)
	require.NotNil(t, serr)
	assert.Contains(t, serr.Message, "não confirmada na releitura")
}

func TestCompleteQuizWebhookFailureIsNotFatal(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcOK = true
	webhook := &fakeWebhook{ok: false}

	res, serr := newCompletionService(store, webhook).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.True(t, res.Success, "falha do webhook nunca derruba a finalização")
	assert.False(t, res.WebhookSent)
	assert.Equal(t, 1, webhook.calls)
}

func TestCompleteQuizNilWebhookStillSucceeds(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcOK = true

	res, serr := newCompletionService(store, nil).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.True(t, res.Success)
	assert.False(t, res.WebhookSent)
}

func TestCompleteQuizConsolidationFailureReportsSentFalse(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.sub = existingSubmission(userID)
	store.rpcOK = true
	store.consUpsertErr = assert.AnError
	webhook := &fakeWebhook{ok: true}

	res, serr := newCompletionService(store, webhook).CompleteQuiz(context.Background(), userID)

	require.Nil(t, serr)
	assert.True(t, res.Success)
	assert.False(t, res.WebhookSent)
	assert.Zero(t, webhook.calls, "sem documento consolidado não há o que enviar")
}

func TestCompleteQuizStoreErrorIsWrapped(t *testing.T) {
	userID := uuid.New()
	store := newFakeStore()
	store.rpcErr = assert.AnError
	store.findErr = assert.AnError

	res, serr := newCompletionService(store, &fakeWebhook{}).CompleteQuiz(context.Background(), userID)

	assert.Nil(t, res)
	require.NotNil(t, serr)
	assert.Equal(t, "store_error", serr.Code)
}
