package models

// AnswerKey is the stored correct answer for one question. For choice types
// Tokens holds the correct option value tokens: first element for single
// choice, the full set (order-independent) for multi choice. Other types
// are not auto-scored and leave Tokens empty.
type AnswerKey struct {
	Tokens      []int        `bson:"answer" json:"answer"`
	Explanation *RichContent `bson:"explanation,omitempty" json:"explanation,omitempty"`
}

// AnswerValue is a submitted answer for one question. Exactly one field is
// populated depending on the question type; the zero value is not a valid
// submission (absence of a map entry means skipped).
type AnswerValue struct {
	Choice  *int   `json:"choice,omitempty"`
	Choices []int  `json:"choices,omitempty"`
	Text    string `json:"text,omitempty"`
}

// SingleAnswer builds a single-choice submission.
func SingleAnswer(token int) AnswerValue {
	return AnswerValue{Choice: &token}
}

// MultiAnswer builds a multi-choice submission.
func MultiAnswer(tokens ...int) AnswerValue {
	return AnswerValue{Choices: tokens}
}

// TextAnswer builds a free-text submission (numeric, fill-blank, subjective).
func TextAnswer(text string) AnswerValue {
	return AnswerValue{Text: text}
}

// AnswerMap maps question ID to the submitted answer. A question without an
// entry was skipped.
type AnswerMap map[string]AnswerValue
