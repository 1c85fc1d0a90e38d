// Package summary folds a finished practice session into the aggregate
// record consumed by the results view and the AI review request.
package summary

import (
	"strconv"
	"strings"

	"examprep-service/internal/evaluator"
	"examprep-service/internal/models"
)

// topicSentinel marks questions whose topic could not be resolved at fetch
// time; it is never surfaced in a summary.
const topicSentinel = "Unknown"

// Build produces the immutable session summary for a question list and the
// submitted-answer map. A question without a map entry is skipped; anything
// else is evaluated. Submissions to types the evaluator cannot grade count
// as wrong but carry Scored=false so the limitation stays visible.
func Build(questions []models.Question, answers models.AnswerMap) models.SessionSummary {
	s := models.SessionSummary{
		TotalQuestions: len(questions),
		Questions:      make([]models.QuestionResult, 0, len(questions)),
	}

	for i := range questions {
		q := &questions[i]

		result := models.QuestionResult{
			QuestionText:  questionText(q),
			CorrectAnswer: answerText(q, q.Answer.Tokens),
			Scored:        q.Type.IsChoice(),
		}
		if q.TopicName != "" && q.TopicName != topicSentinel {
			result.Topic = q.TopicName
		}

		submitted, answered := answers[q.ID]
		if !answered {
			result.Status = models.StatusSkipped
			s.SkippedQuestions++
			s.Questions = append(s.Questions, result)
			continue
		}

		result.UserAnswer = submittedText(q, submitted)
		switch evaluator.Evaluate(q.Type, submitted, q.Answer.Tokens) {
		case evaluator.Correct:
			result.Status = models.StatusCorrect
			s.CorrectAnswers++
		default:
			result.Status = models.StatusWrong
			s.WrongAnswers++
		}
		s.Questions = append(s.Questions, result)
	}

	return s
}

func questionText(q *models.Question) string {
	if q.Question.Body.Text != "" {
		return q.Question.Body.Text
	}
	return "Question"
}

func submittedText(q *models.Question, submitted models.AnswerValue) string {
	if q.Type.IsChoice() {
		tokens := submitted.Choices
		if submitted.Choice != nil {
			tokens = []int{*submitted.Choice}
		}
		return answerText(q, tokens)
	}
	return submitted.Text
}

// answerText maps value tokens to their option display text, joined for
// multi-choice. Missing options fall back to "Option N".
func answerText(q *models.Question, tokens []int) string {
	if len(tokens) == 0 {
		return ""
	}
	if !q.Type.IsChoice() {
		parts := make([]string, len(tokens))
		for i, token := range tokens {
			parts[i] = strconv.Itoa(token)
		}
		return strings.Join(parts, ", ")
	}
	parts := make([]string, len(tokens))
	for i, token := range tokens {
		parts[i] = q.OptionText(token)
	}
	return strings.Join(parts, ", ")
}
