package models

// QuestionResult is the per-question scoring record in a session summary.
// Scored is false for types the evaluator does not auto-grade; their
// submissions still count as wrong so the aggregate counts stay closed.
type QuestionResult struct {
	QuestionText  string `json:"questionText"`
	Status        string `json:"status"`
	CorrectAnswer string `json:"correctAnswer"`
	UserAnswer    string `json:"userAnswer,omitempty"`
	Topic         string `json:"topic,omitempty"`
	Scored        bool   `json:"scored"`
}

const (
	StatusCorrect = "correct"
	StatusWrong   = "wrong"
	StatusSkipped = "skipped"
)

// SessionSummary is the aggregate record built once after a practice
// session and treated as read-only by everything downstream (AI review
// request, results rendering). Counts satisfy
// correct + wrong + skipped == total.
type SessionSummary struct {
	TotalQuestions   int              `json:"totalQuestions"`
	CorrectAnswers   int              `json:"correctAnswers"`
	WrongAnswers     int              `json:"wrongAnswers"`
	SkippedQuestions int              `json:"skippedQuestions"`
	Questions        []QuestionResult `json:"questions"`
}

// Accuracy is correct over attempted, in percent. Zero when nothing was
// attempted.
func (s *SessionSummary) Accuracy() float64 {
	attempted := s.CorrectAnswers + s.WrongAnswers
	if attempted == 0 {
		return 0
	}
	return float64(s.CorrectAnswers) / float64(attempted) * 100
}

// Insight is one categorized observation returned by the AI review.
type Insight struct {
	Category string `json:"category"`
	Message  string `json:"message"`
}
