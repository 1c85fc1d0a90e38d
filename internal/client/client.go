// Package client is the Go consumer of the practice REST contract: it
// fetches the catalog and question batches and requests AI reviews,
// attaching the caller's bearer token to every request.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"examprep-service/internal/models"
)

// ErrUnauthorized is returned when the backend rejects the bearer token.
// The stored token is cleared before returning so the caller can route to
// login.
var ErrUnauthorized = errors.New("unauthorized")

// TokenStore holds the bearer token between requests.
type TokenStore interface {
	Token() string
	Clear()
}

// MemoryTokenStore is the default in-process token holder.
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryTokenStore(token string) *MemoryTokenStore {
	return &MemoryTokenStore{token: token}
}

func (s *MemoryTokenStore) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

func (s *MemoryTokenStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryTokenStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}

type Client struct {
	HTTP    *http.Client
	BaseURL string
	Tokens  TokenStore
}

func New(baseURL string, tokens TokenStore) *Client {
	if tokens == nil {
		tokens = NewMemoryTokenStore("")
	}
	return &Client{
		HTTP:    &http.Client{Timeout: 30 * time.Second},
		BaseURL: baseURL,
		Tokens:  tokens,
	}
}

// FetchQuestionsRequest mirrors the POST /questions/fetch body.
type FetchQuestionsRequest struct {
	CourseID    string   `json:"courseId"`
	SubjectID   string   `json:"subjectId,omitempty"`
	TopicIDs    []string `json:"topicIds"`
	SubtopicIDs []string `json:"subtopicIds"`
	Difficulty  int      `json:"difficulty"`
	Type        int      `json:"type"`
	Limit       int      `json:"limit,omitempty"`
}

func (c *Client) GetCourses(ctx context.Context) ([]models.Course, error) {
	var resp struct {
		Courses []models.Course `json:"courses"`
	}
	if err := c.do(ctx, http.MethodGet, "/courses", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Courses, nil
}

func (c *Client) GetSubjects(ctx context.Context, courseID string) ([]models.Subject, error) {
	var resp struct {
		Subjects []models.Subject `json:"subjects"`
	}
	if err := c.do(ctx, http.MethodGet, "/courses/"+courseID+"/subjects", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Subjects, nil
}

func (c *Client) GetTopicsWithSubtopics(ctx context.Context, subjectID string) ([]models.Topic, error) {
	var resp struct {
		Topics []models.Topic `json:"topics"`
	}
	if err := c.do(ctx, http.MethodGet, "/topics/fetch-by-subject/"+subjectID, nil, &resp); err != nil {
		return nil, err
	}
	return resp.Topics, nil
}

func (c *Client) FetchQuestions(ctx context.Context, req FetchQuestionsRequest) ([]models.Question, error) {
	var resp struct {
		Questions []models.Question `json:"questions"`
	}
	if err := c.do(ctx, http.MethodPost, "/questions/fetch", req, &resp); err != nil {
		return nil, err
	}
	return resp.Questions, nil
}

func (c *Client) GetAIReview(ctx context.Context, summary *models.SessionSummary) ([]models.Insight, error) {
	var resp struct {
		Insights []models.Insight `json:"insights"`
	}
	if err := c.do(ctx, http.MethodPost, "/practice/ai-review", summary, &resp); err != nil {
		return nil, err
	}
	return resp.Insights, nil
}

func (c *Client) do(ctx context.Context, method, path string, payload, dest interface{}) error {
	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if token := c.Tokens.Token(); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		c.Tokens.Clear()
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var errBody struct {
			Error string `json:"error"`
		}
		if decodeErr := json.NewDecoder(resp.Body).Decode(&errBody); decodeErr == nil && errBody.Error != "" {
			return fmt.Errorf("%s %s: %s", method, path, errBody.Error)
		}
		return fmt.Errorf("%s %s: status %d", method, path, resp.StatusCode)
	}

	if dest == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(dest)
}
