package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// catálogo de exemplo: 3 módulos com 2, 3 e 1 perguntas
var qpm = []int{2, 3, 1}

func TestAdvanceWithinModule(t *testing.T) {
	next, review := Advance(Position{ModuleIndex: 1, QuestionIndex: 0}, qpm)
	assert.False(t, review)
	assert.Equal(t, Position{ModuleIndex: 1, QuestionIndex: 1}, next)
}

func TestAdvanceRollsOverToNextModule(t *testing.T) {
	next, review := Advance(Position{ModuleIndex: 0, QuestionIndex: 1}, qpm)
	assert.False(t, review)
	assert.Equal(t, Position{ModuleIndex: 1, QuestionIndex: 0}, next)
}

func TestAdvancePastLastQuestionEntersReview(t *testing.T) {
	next, review := Advance(Position{ModuleIndex: 2, QuestionIndex: 0}, qpm)
	assert.True(t, review)
	assert.Equal(t, Position{ModuleIndex: 2, QuestionIndex: 0}, next, "a posição não passa do fim")
}

func TestPreviousWithinModule(t *testing.T) {
	prev := Previous(Position{ModuleIndex: 1, QuestionIndex: 2}, qpm)
	assert.Equal(t, Position{ModuleIndex: 1, QuestionIndex: 1}, prev)
}

func TestPreviousRollsBackToLastQuestionOfPriorModule(t *testing.T) {
	prev := Previous(Position{ModuleIndex: 1, QuestionIndex: 0}, qpm)
	assert.Equal(t, Position{ModuleIndex: 0, QuestionIndex: 1}, prev)
}

func TestPreviousAtStartStaysAtStart(t *testing.T) {
	prev := Previous(Position{}, qpm)
	assert.Equal(t, Position{}, prev)
}

func TestAdvanceClampsOutOfRangePosition(t *testing.T) {
	next, review := Advance(Position{ModuleIndex: 99, QuestionIndex: 99}, qpm)
	assert.True(t, review, "posição além do catálogo é tratada como fim")
	assert.Equal(t, Position{ModuleIndex: 2, QuestionIndex: 0}, next)
}

func TestAdvanceEmptyCatalog(t *testing.T) {
	next, review := Advance(Position{ModuleIndex: 1, QuestionIndex: 1}, nil)
	assert.False(t, review)
	assert.Equal(t, Position{ModuleIndex: 1, QuestionIndex: 1}, next)
}
