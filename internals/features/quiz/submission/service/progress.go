package service

// Position é a posição corrente no diagnóstico, em índices zero-based.
type Position struct {
	ModuleIndex   int `json:"module_index"`
	QuestionIndex int `json:"question_index"`
}

// Advance avança uma pergunta, transbordando para o próximo módulo
// quando a atual é a última. Devolve review=true ao passar da última
// pergunta do último módulo — o chamador troca o status para review,
// sem sentinela numérica.
func Advance(pos Position, questionsPerModule []int) (next Position, review bool) {
	if len(questionsPerModule) == 0 {
		return pos, false
	}
	pos = clamp(pos, questionsPerModule)

	if pos.QuestionIndex+1 < questionsPerModule[pos.ModuleIndex] {
		return Position{ModuleIndex: pos.ModuleIndex, QuestionIndex: pos.QuestionIndex + 1}, false
	}
	if pos.ModuleIndex+1 < len(questionsPerModule) {
		return Position{ModuleIndex: pos.ModuleIndex + 1, QuestionIndex: 0}, false
	}
	return pos, true
}

// Previous é o espelho: recua uma pergunta, voltando para a última
// pergunta do módulo anterior na borda. No início, não se move.
func Previous(pos Position, questionsPerModule []int) Position {
	if len(questionsPerModule) == 0 {
		return pos
	}
	pos = clamp(pos, questionsPerModule)

	if pos.QuestionIndex > 0 {
		return Position{ModuleIndex: pos.ModuleIndex, QuestionIndex: pos.QuestionIndex - 1}
	}
	if pos.ModuleIndex > 0 {
		prev := pos.ModuleIndex - 1
		return Position{ModuleIndex: prev, QuestionIndex: questionsPerModule[prev] - 1}
	}
	return Position{}
}

func clamp(pos Position, questionsPerModule []int) Position {
	if pos.ModuleIndex < 0 {
		pos.ModuleIndex = 0
	}
	if pos.ModuleIndex >= len(questionsPerModule) {
		pos.ModuleIndex = len(questionsPerModule) - 1
	}
	if pos.QuestionIndex < 0 {
		pos.QuestionIndex = 0
	}
	if max := questionsPerModule[pos.ModuleIndex]; pos.QuestionIndex >= max {
		pos.QuestionIndex = max - 1
	}
	return pos
}
