package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSaveAnswerCreatesSubmissionOnFirstAnswer(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	questionID := uuid.New()

	res, serr := NewAnswerService(store, store).
		SaveAnswer(context.Background(), userID, "ana@padaria.com.br", questionID, ScalarValue("Padaria da Ana"))

	require.Nil(t, serr)
	assert.True(t, res.Success)
	require.NotNil(t, store.sub)
	assert.Equal(t, store.sub.SubmissionID, res.SubmissionID)
	assert.Equal(t, 1, store.sub.SubmissionCurrentModule)
	assert.Equal(t, "Padaria da Ana", store.answers[questionID])
}

func TestSaveAnswerOverwritesSameQuestion(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	questionID := uuid.New()
	svc := NewAnswerService(store, store)

	_, serr := svc.SaveAnswer(context.Background(), userID, "ana@padaria.com.br", questionID, ScalarValue("primeira"))
	require.Nil(t, serr)
	res, serr := svc.SaveAnswer(context.Background(), userID, "ana@padaria.com.br", questionID, ScalarValue("segunda"))
	require.Nil(t, serr)

	assert.True(t, res.Success)
	assert.Len(t, store.answers, 1, "reenvio sobrescreve, nunca duplica")
	assert.Equal(t, "segunda", store.answers[questionID])
}

func TestSaveAnswerReusesExistingSubmission(t *testing.T) {
	store := newFakeStore()
	userID := uuid.New()
	svc := NewAnswerService(store, store)

	first, serr := svc.SaveAnswer(context.Background(), userID, "ana@padaria.com.br", uuid.New(), ScalarValue("a"))
	require.Nil(t, serr)
	second, serr := svc.SaveAnswer(context.Background(), userID, "ana@padaria.com.br", uuid.New(), ScalarValue("b"))
	require.Nil(t, serr)

	assert.Equal(t, first.SubmissionID, second.SubmissionID)
	assert.Len(t, store.answers, 2)
}

func TestSaveAnswerEncodesMultiValue(t *testing.T) {
	store := newFakeStore()
	questionID := uuid.New()

	_, serr := NewAnswerService(store, store).
		SaveAnswer(context.Background(), uuid.New(), "ana@padaria.com.br", questionID, MultiValueOf([]string{"Instagram", "WhatsApp"}))

	require.Nil(t, serr)
	assert.JSONEq(t, `["Instagram","WhatsApp"]`, store.answers[questionID])
}

func TestSaveAnswerStoreFailureReturnsTypedError(t *testing.T) {
	store := newFakeStore()
	store.ensureErr = assert.AnError

	res, serr := NewAnswerService(store, store).
		SaveAnswer(context.Background(), uuid.New(), "ana@padaria.com.br", uuid.New(), ScalarValue("x"))

	assert.Nil(t, res)
	require.NotNil(t, serr)
	assert.Equal(t, "store_error", serr.Code)
	assert.Contains(t, serr.Message, "buscar/criar submissão")
}
