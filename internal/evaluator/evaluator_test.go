package evaluator

import (
	"testing"

	"examprep-service/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestEvaluateSingleChoice(t *testing.T) {
	testCases := []struct {
		name      string
		submitted models.AnswerValue
		key       []int
		expected  Verdict
	}{
		{"matches first key token", models.SingleAnswer(2), []int{2}, Correct},
		{"does not match", models.SingleAnswer(1), []int{2}, Wrong},
		{"only first key token counts", models.SingleAnswer(3), []int{2, 3}, Wrong},
		{"nil choice is wrong", models.AnswerValue{}, []int{0}, Wrong},
		{"empty key is wrong", models.SingleAnswer(0), nil, Wrong},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Evaluate(models.SingleChoice, tc.submitted, tc.key))
		})
	}
}

func TestEvaluateMultiChoice(t *testing.T) {
	testCases := []struct {
		name      string
		submitted models.AnswerValue
		key       []int
		expected  Verdict
	}{
		{"exact match", models.MultiAnswer(0, 2), []int{0, 2}, Correct},
		{"order independent submission", models.MultiAnswer(2, 0), []int{0, 2}, Correct},
		{"order independent key", models.MultiAnswer(0, 2), []int{2, 0}, Correct},
		{"subset is wrong", models.MultiAnswer(0), []int{0, 2}, Wrong},
		{"superset is wrong", models.MultiAnswer(0, 1, 2), []int{0, 2}, Wrong},
		{"different member", models.MultiAnswer(0, 1), []int{0, 2}, Wrong},
		{"nil selection is wrong", models.AnswerValue{}, []int{0}, Wrong},
		{"empty selection vs empty key", models.MultiAnswer(), nil, Correct},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Evaluate(models.MultiChoice, tc.submitted, tc.key))
		})
	}
}

func TestEvaluateUnscoredTypes(t *testing.T) {
	for _, qt := range []models.QuestionType{
		models.Numeric,
		models.FillBlanks,
		models.AssertionReason,
		models.TrueFalse,
		models.Subjective,
	} {
		t.Run(qt.Label(), func(t *testing.T) {
			verdict := Evaluate(qt, models.TextAnswer("42"), []int{1})
			assert.Equal(t, Unscored, verdict)
		})
	}
}

func TestVerdictString(t *testing.T) {
	assert.Equal(t, "correct", Correct.String())
	assert.Equal(t, "wrong", Wrong.String())
	assert.Equal(t, "unscored", Unscored.String())
}
