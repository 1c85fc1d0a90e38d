package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"examprep-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func summaryWith(correct, wrong, skipped int, results ...models.QuestionResult) *models.SessionSummary {
	return &models.SessionSummary{
		TotalQuestions:   correct + wrong + skipped,
		CorrectAnswers:   correct,
		WrongAnswers:     wrong,
		SkippedQuestions: skipped,
		Questions:        results,
	}
}

func TestGenerateInsightsFromModel(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"{\"insights\":[{\"category\":\"Knowledge Gap\",\"message\":\"Review kinematics basics.\"},{\"category\":\"Strong Performance\",\"message\":\"Great accuracy on chemistry.\"}]}"}}]}`))
	}))
	defer server.Close()

	svc := NewReviewService(server.URL, "test-key", "test-model")
	insights := svc.GenerateInsights(context.Background(), summaryWith(3, 1, 0))

	require.Len(t, insights, 2)
	assert.Equal(t, "Knowledge Gap", insights[0].Category)
	assert.Equal(t, "Strong Performance", insights[1].Category)
}

func TestGenerateInsightsStripsCodeFence(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[{"message":{"content":"` + "```json\\n{\\\"insights\\\":[{\\\"category\\\":\\\"Practice\\\",\\\"message\\\":\\\"Keep going.\\\"},{\\\"category\\\":\\\"Practice\\\",\\\"message\\\":\\\"And going.\\\"}]}\\n```" + `"}}]}`))
	}))
	defer server.Close()

	svc := NewReviewService(server.URL, "", "test-model")
	insights := svc.GenerateInsights(context.Background(), summaryWith(1, 0, 0))

	require.Len(t, insights, 2)
	assert.Equal(t, "Keep going.", insights[0].Message)
}

func TestGenerateInsightsFallsBackWhenModelUnreachable(t *testing.T) {
	svc := NewReviewService("http://127.0.0.1:1", "", "test-model")

	insights := svc.GenerateInsights(context.Background(), summaryWith(8, 1, 0))

	require.Len(t, insights, 2)
	assert.Equal(t, "Strong Performance", insights[0].Category)
}

func TestGenerateInsightsFallsBackOnServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	svc := NewReviewService(server.URL, "", "test-model")
	insights := svc.GenerateInsights(context.Background(), summaryWith(0, 5, 0))

	require.Len(t, insights, 2)
	assert.Equal(t, "Knowledge Gap", insights[0].Category)
}

func TestHeuristicInsightsTopicWeakness(t *testing.T) {
	summary := summaryWith(1, 3, 0,
		models.QuestionResult{Status: models.StatusWrong, Topic: "Thermodynamics"},
		models.QuestionResult{Status: models.StatusWrong, Topic: "Thermodynamics"},
		models.QuestionResult{Status: models.StatusWrong, Topic: "Optics"},
		models.QuestionResult{Status: models.StatusCorrect, Topic: "Optics"},
	)

	insights := heuristicInsights(summary)

	require.NotEmpty(t, insights)
	assert.Equal(t, "Topic Weakness", insights[0].Category)
	assert.Contains(t, insights[0].Message, "Thermodynamics")
}

func TestHeuristicInsightsSkipHeavy(t *testing.T) {
	insights := heuristicInsights(summaryWith(1, 0, 5))

	categories := make([]string, len(insights))
	for i, insight := range insights {
		categories[i] = insight.Category
	}
	assert.Contains(t, categories, "Confidence Issue")
}

func TestHeuristicInsightsNothingAttempted(t *testing.T) {
	insights := heuristicInsights(summaryWith(0, 0, 4))

	require.NotEmpty(t, insights)
	assert.Equal(t, "Confidence Issue", insights[0].Category)
}

func TestBuildReviewPromptIncludesMistakes(t *testing.T) {
	summary := summaryWith(0, 1, 0, models.QuestionResult{
		Status:        models.StatusWrong,
		QuestionText:  "The SI unit of power is:",
		UserAnswer:    "Joule",
		CorrectAnswer: "Watt",
	})

	prompt := buildReviewPrompt(summary)

	assert.Contains(t, prompt, "The SI unit of power is:")
	assert.Contains(t, prompt, `"Joule"`)
	assert.Contains(t, prompt, `"Watt"`)
}

func TestBuildReviewPromptNoMistakes(t *testing.T) {
	prompt := buildReviewPrompt(summaryWith(2, 0, 0))
	assert.Contains(t, prompt, "No wrong answers available.")
}
