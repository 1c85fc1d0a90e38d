// Package evaluator decides answer correctness against a stored answer key.
package evaluator

import (
	"sort"

	"examprep-service/internal/models"
)

// Verdict is the outcome of evaluating one submitted answer.
type Verdict int

const (
	// Wrong: the submission does not match the key.
	Wrong Verdict = iota
	// Correct: the submission matches the key.
	Correct
	// Unscored: the question type has no auto-grading rule. Numeric,
	// fill-blank, assertion-reason, true/false and subjective answers are
	// deferred to review rather than silently marked wrong or right.
	Unscored
)

func (v Verdict) String() string {
	switch v {
	case Correct:
		return "correct"
	case Wrong:
		return "wrong"
	default:
		return "unscored"
	}
}

// Evaluate checks a submitted answer against the key's value tokens.
// Single choice matches the first key token; multi choice compares the
// submitted tokens and key as order-independent sets. Missing or
// malformed submissions are wrong, never an error.
func Evaluate(t models.QuestionType, submitted models.AnswerValue, key []int) Verdict {
	switch t {
	case models.SingleChoice:
		if submitted.Choice == nil || len(key) == 0 {
			return Wrong
		}
		if *submitted.Choice == key[0] {
			return Correct
		}
		return Wrong

	case models.MultiChoice:
		if submitted.Choices == nil {
			return Wrong
		}
		if sameTokenSet(submitted.Choices, key) {
			return Correct
		}
		return Wrong

	default:
		return Unscored
	}
}

func sameTokenSet(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	as := append([]int(nil), a...)
	bs := append([]int(nil), b...)
	sort.Ints(as)
	sort.Ints(bs)
	for i := range as {
		if as[i] != bs[i] {
			return false
		}
	}
	return true
}
