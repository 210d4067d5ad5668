package dto

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAnswerScalar(t *testing.T) {
	req := SaveAnswerRequest{Answer: json.RawMessage(`"Padaria da Ana"`)}
	scalar, multi, isMulti, err := req.DecodeAnswer()
	require.NoError(t, err)
	assert.False(t, isMulti)
	assert.Equal(t, "Padaria da Ana", scalar)
	assert.Nil(t, multi)
}

func TestDecodeAnswerMulti(t *testing.T) {
	req := SaveAnswerRequest{Answer: json.RawMessage(`["Instagram","WhatsApp"]`)}
	_, multi, isMulti, err := req.DecodeAnswer()
	require.NoError(t, err)
	assert.True(t, isMulti)
	assert.Equal(t, []string{"Instagram", "WhatsApp"}, multi)
}

func TestDecodeAnswerNumber(t *testing.T) {
	req := SaveAnswerRequest{Answer: json.RawMessage(`12000`)}
	scalar, _, isMulti, err := req.DecodeAnswer()
	require.NoError(t, err)
	assert.False(t, isMulti)
	assert.Equal(t, "12000", scalar)
}

func TestDecodeAnswerRejectsObjects(t *testing.T) {
	req := SaveAnswerRequest{Answer: json.RawMessage(`{"x":1}`)}
	_, _, _, err := req.DecodeAnswer()
	assert.Error(t, err)
}
