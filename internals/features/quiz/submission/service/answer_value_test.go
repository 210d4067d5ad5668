package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScalarValueEncodePassesThrough(t *testing.T) {
	v := ScalarValue("Padaria da Ana")
	encoded, err := v.Encode()
	require.NoError(t, err)
	assert.Equal(t, "Padaria da Ana", encoded)
	assert.False(t, v.IsMulti())
	assert.Equal(t, "Padaria da Ana", v.Raw())
}

func TestMultiValueEncodesAsJSONArray(t *testing.T) {
	v := MultiValueOf([]string{"Instagram", "WhatsApp"})
	encoded, err := v.Encode()
	require.NoError(t, err)
	assert.JSONEq(t, `["Instagram","WhatsApp"]`, encoded)
	assert.True(t, v.IsMulti())
	assert.Equal(t, []string{"Instagram", "WhatsApp"}, v.Raw())
}

func TestMultiValueCopiesInput(t *testing.T) {
	in := []string{"a", "b"}
	v := MultiValueOf(in)
	in[0] = "mutado"
	assert.Equal(t, []string{"a", "b"}, v.Raw())
}

func TestDecodeRoundTrip(t *testing.T) {
	original := MultiValueOf([]string{"Financeiro", "Comercial"})
	encoded, err := original.Encode()
	require.NoError(t, err)

	decoded := DecodeAnswerValue(encoded)
	assert.True(t, decoded.IsMulti())
	assert.Equal(t, original.Raw(), decoded.Raw())
}

func TestDecodeScalarStaysScalar(t *testing.T) {
	decoded := DecodeAnswerValue("R$ 12.000")
	assert.False(t, decoded.IsMulti())
	assert.Equal(t, "R$ 12.000", decoded.Raw())
}

func TestDecodeInvalidArrayFallsBackToScalar(t *testing.T) {
	// linha legada que por acaso começa com colchete mas não é JSON
	raw := "[rascunho] resposta antiga"
	decoded := DecodeAnswerValue(raw)
	assert.False(t, decoded.IsMulti())
	assert.Equal(t, raw, decoded.Raw())
}

func TestDecodeEmptyString(t *testing.T) {
	decoded := DecodeAnswerValue("")
	assert.False(t, decoded.IsMulti())
	assert.Equal(t, "", decoded.Raw())
}
