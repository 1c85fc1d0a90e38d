package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"sort"
	"strings"
	"time"

	"examprep-service/internal/models"
)

// ReviewService turns a session summary into short, categorized insights.
// It asks an OpenAI-compatible chat-completions endpoint first and falls
// back to deterministic heuristics when the model is unreachable or
// returns garbage, so the review endpoint always answers.
type ReviewService struct {
	Client  *http.Client
	BaseURL string
	APIKey  string
	Model   string
}

func NewReviewService(baseURL, apiKey, model string) *ReviewService {
	return &ReviewService{
		Client:  &http.Client{Timeout: 25 * time.Second},
		BaseURL: baseURL,
		APIKey:  apiKey,
		Model:   model,
	}
}

const insightCount = 2

func (s *ReviewService) GenerateInsights(ctx context.Context, summary *models.SessionSummary) []models.Insight {
	insights, err := s.askModel(ctx, summary)
	if err != nil {
		log.Printf("AI review failed, using heuristic insights: %v", err)
		insights = heuristicInsights(summary)
	}
	for len(insights) < insightCount {
		insights = append(insights, models.Insight{
			Category: "Practice",
			Message:  "Keep practicing to generate more data.",
		})
	}
	return insights[:insightCount]
}

type chatCompletionRequest struct {
	Model       string                  `json:"model"`
	Messages    []chatCompletionMessage `json:"messages"`
	Stream      bool                    `json:"stream"`
	Temperature *float64                `json:"temperature,omitempty"`
}

type chatCompletionMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatCompletionResponse struct {
	Choices []struct {
		Message chatCompletionMessage `json:"message"`
	} `json:"choices"`
}

type reviewPayload struct {
	Insights []models.Insight `json:"insights"`
}

func (s *ReviewService) askModel(ctx context.Context, summary *models.SessionSummary) ([]models.Insight, error) {
	temperature := 0.3
	request := chatCompletionRequest{
		Model: s.Model,
		Messages: []chatCompletionMessage{
			{Role: "system", Content: reviewSystemPrompt},
			{Role: "user", Content: buildReviewPrompt(summary)},
		},
		Stream:      false,
		Temperature: &temperature,
	}

	body, err := json.Marshal(request)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.BaseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.APIKey != "" {
		req.Header.Set("Authorization", "Bearer "+s.APIKey)
	}

	resp, err := s.Client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		payload, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("chat completion returned %d: %s", resp.StatusCode, payload)
	}

	var completion chatCompletionResponse
	if err := json.NewDecoder(resp.Body).Decode(&completion); err != nil {
		return nil, err
	}
	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("chat completion returned no choices")
	}

	var payload reviewPayload
	content := stripCodeFence(completion.Choices[0].Message.Content)
	if err := json.Unmarshal([]byte(content), &payload); err != nil {
		return nil, fmt.Errorf("unparseable review payload: %w", err)
	}
	if len(payload.Insights) == 0 {
		return nil, fmt.Errorf("review payload has no insights")
	}
	return payload.Insights, nil
}

const reviewSystemPrompt = `You review exam practice sessions. Respond with JSON only, shaped as {"insights":[{"category":"...","message":"..."}]}. Categories are short names like "Knowledge Gap" or "Strong Performance". Messages are actionable advice under 30 words.`

func buildReviewPrompt(summary *models.SessionSummary) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Analyze this student's practice test.\n")
	fmt.Fprintf(&b, "Performance: %.0f%% accuracy. %d skipped.\n\nMISTAKES:\n", summary.Accuracy(), summary.SkippedQuestions)

	wrong := 0
	for _, q := range summary.Questions {
		if q.Status != models.StatusWrong {
			continue
		}
		text := q.QuestionText
		if len(text) > 100 {
			text = text[:100] + "..."
		}
		fmt.Fprintf(&b, "Q: %s\n   User Chose: %q (Incorrect)\n   Correct: %q\n", text, q.UserAnswer, q.CorrectAnswer)
		wrong++
		if wrong == 3 {
			break
		}
	}
	if wrong == 0 {
		b.WriteString("No wrong answers available.\n")
	}

	b.WriteString("\nProvide exactly 2 actionable insights. If specific mistakes are listed, explain the concept the user missed. Otherwise give general strategy advice.")
	return b.String()
}

func stripCodeFence(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```json")
		content = strings.TrimPrefix(content, "```")
		content = strings.TrimSuffix(strings.TrimSpace(content), "```")
	}
	return strings.TrimSpace(content)
}

// heuristicInsights derives two insights from the summary alone. Priority:
// weakest topic, skip-heavy sessions, then an overall performance note.
func heuristicInsights(summary *models.SessionSummary) []models.Insight {
	var insights []models.Insight

	if topic, misses := weakestTopic(summary); misses >= 2 {
		insights = append(insights, models.Insight{
			Category: "Topic Weakness",
			Message:  fmt.Sprintf("You missed %d questions on %s. Revise that topic before the next session.", misses, topic),
		})
	}

	attempted := summary.CorrectAnswers + summary.WrongAnswers
	if summary.SkippedQuestions > attempted {
		insights = append(insights, models.Insight{
			Category: "Confidence Issue",
			Message:  "You skipped more questions than you attempted. Try committing to an answer before moving on.",
		})
	}

	accuracy := summary.Accuracy()
	switch {
	case attempted == 0:
		insights = append(insights, models.Insight{
			Category: "Practice",
			Message:  "Attempt at least a few questions to get a meaningful review.",
		})
	case accuracy >= 80:
		insights = append(insights, models.Insight{
			Category: "Strong Performance",
			Message:  fmt.Sprintf("%.0f%% accuracy is excellent. Raise the difficulty to keep improving.", accuracy),
		})
	case accuracy < 40:
		insights = append(insights, models.Insight{
			Category: "Knowledge Gap",
			Message:  fmt.Sprintf("%.0f%% accuracy suggests gaps in the basics. Review the explanations for the questions you missed.", accuracy),
		})
	default:
		insights = append(insights, models.Insight{
			Category: "Practice",
			Message:  fmt.Sprintf("%.0f%% accuracy is a solid base. Focus your next session on the questions you got wrong.", accuracy),
		})
	}

	return insights
}

func weakestTopic(summary *models.SessionSummary) (string, int) {
	misses := make(map[string]int)
	for _, q := range summary.Questions {
		if q.Status == models.StatusWrong && q.Topic != "" {
			misses[q.Topic]++
		}
	}

	topics := make([]string, 0, len(misses))
	for topic := range misses {
		topics = append(topics, topic)
	}
	// Deterministic pick when counts tie.
	sort.Strings(topics)

	best, bestCount := "", 0
	for _, topic := range topics {
		if misses[topic] > bestCount {
			best, bestCount = topic, misses[topic]
		}
	}
	return best, bestCount
}
