package service

import (
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestWrapStoreErrorNil(t *testing.T) {
	assert.Nil(t, WrapStoreError("op", nil))
}

func TestWrapStoreErrorPassesThroughTyped(t *testing.T) {
	orig := &StoreError{Message: "já embrulhado", Code: "x"}
	assert.Same(t, orig, WrapStoreError("op", orig))
}

func TestWrapStoreErrorPostgres(t *testing.T) {
	pgErr := &pgconn.PgError{
		Code:    "23505",
		Message: "duplicate key value violates unique constraint",
		Detail:  "Key (submission_user_id)=(...) already exists.",
	}
	serr := WrapStoreError("criar submissão", pgErr)
	require.NotNil(t, serr)
	assert.Equal(t, "23505", serr.Code)
	assert.Contains(t, serr.Message, "criar submissão")
	assert.Contains(t, serr.Details, "submission_user_id")
}

func TestWrapStoreErrorNotFound(t *testing.T) {
	serr := WrapStoreError("buscar submissão", gorm.ErrRecordNotFound)
	require.NotNil(t, serr)
	assert.Equal(t, "not_found", serr.Code)
}

func TestWrapStoreErrorGeneric(t *testing.T) {
	serr := WrapStoreError("op", assert.AnError)
	require.NotNil(t, serr)
	assert.Equal(t, "store_error", serr.Code)
	assert.Contains(t, serr.Error(), "store_error")
}
