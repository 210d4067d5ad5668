package service

import (
	"encoding/json"
	"strings"
)

// AnswerValue é a união etiquetada Scalar | MultiValue.
// A lógica interna nunca inspeciona strings para detectar arrays:
// respostas de checkbox nascem como MultiValue e só viram JSON na
// borda do store (Encode) — e voltam no Decode.
type AnswerValue struct {
	scalar string
	multi  []string
	multiV bool
}

func ScalarValue(s string) AnswerValue {
	return AnswerValue{scalar: s}
}

func MultiValueOf(values []string) AnswerValue {
	cp := make([]string, len(values))
	copy(cp, values)
	return AnswerValue{multi: cp, multiV: true}
}

func (v AnswerValue) IsMulti() bool { return v.multiV }

// Raw devolve o valor para consumo (string ou []string) —
// é o que entra no payload consolidado e no webhook.
func (v AnswerValue) Raw() any {
	if v.multiV {
		return v.multi
	}
	return v.scalar
}

// Encode serializa para a coluna de texto: MultiValue vira array JSON,
// escalar passa intocado.
func (v AnswerValue) Encode() (string, error) {
	if !v.multiV {
		return v.scalar, nil
	}
	raw, err := json.Marshal(v.multi)
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// DecodeAnswerValue reconstrói o valor a partir da coluna. Linhas
// legadas ou inválidas caem para exibição como escalar cru.
func DecodeAnswerValue(raw string) AnswerValue {
	trimmed := strings.TrimSpace(raw)
	if strings.HasPrefix(trimmed, "[") {
		var values []string
		if err := json.Unmarshal([]byte(trimmed), &values); err == nil {
			return MultiValueOf(values)
		}
	}
	return ScalarValue(raw)
}
