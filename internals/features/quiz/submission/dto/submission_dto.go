package dto

import (
	"encoding/json"
	"errors"
)

// SaveAnswerRequest aceita resposta escalar ("texto") ou múltipla
// (["a","b"]) — o formato do JSON decide a variante, nunca inspeção
// de string depois de gravado.
type SaveAnswerRequest struct {
	QuestionID string          `json:"question_id" validate:"required,uuid"`
	Answer     json.RawMessage `json:"answer" validate:"required"`
}

// DecodeAnswer devolve (scalar, multi, isMulti).
func (r *SaveAnswerRequest) DecodeAnswer() (string, []string, bool, error) {
	var scalar string
	if err := json.Unmarshal(r.Answer, &scalar); err == nil {
		return scalar, nil, false, nil
	}
	var multi []string
	if err := json.Unmarshal(r.Answer, &multi); err == nil {
		return "", multi, true, nil
	}
	var number float64
	if err := json.Unmarshal(r.Answer, &number); err == nil {
		// campos numéricos chegam como número JSON; gravamos o texto cru
		return string(r.Answer), nil, false, nil
	}
	return "", nil, false, errors.New("answer deve ser string, número ou array de strings")
}

// MoveRequest carrega a posição corrente do cliente.
type MoveRequest struct {
	ModuleIndex   int `json:"module_index" validate:"min=0"`
	QuestionIndex int `json:"question_index" validate:"min=0"`
}

// QuizStateResponse é o snapshot devolvido no carregamento do quiz.
type QuizStateResponse struct {
	SubmissionID  string `json:"submission_id"`
	Status        string `json:"status"`
	Completed     bool   `json:"completed"`
	CurrentModule int    `json:"current_module"`
	ModuleIndex   int    `json:"module_index"`
	QuestionIndex int    `json:"question_index"`
	TotalModules  int    `json:"total_modules"`
	ViewAnswers   bool   `json:"view_answers"`
}
