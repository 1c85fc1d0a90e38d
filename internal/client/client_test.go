package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"examprep-service/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientAttachesBearerToken(t *testing.T) {
	var gotAuth string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		w.Write([]byte(`{"status":"success","courses":[]}`))
	}))
	defer server.Close()

	c := New(server.URL, NewMemoryTokenStore("tok-123"))
	_, err := c.GetCourses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClientClearsTokenOn401(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	tokens := NewMemoryTokenStore("stale")
	c := New(server.URL, tokens)

	_, err := c.GetCourses(context.Background())

	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Empty(t, tokens.Token())
}

func TestClientFetchQuestions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/questions/fetch", r.URL.Path)
		w.Write([]byte(`{"status":"success","count":1,"questions":[{"_id":"q1","type":0,"question":{"body":{"text":"Body"},"options":[{"v":0,"d":{"text":"A"}}]},"answer":{"answer":[0]}}]}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	questions, err := c.FetchQuestions(context.Background(), FetchQuestionsRequest{
		CourseID: "5e12bc386ed15e08c72f429b", Difficulty: 1, Type: 0, Limit: 20,
	})

	require.NoError(t, err)
	require.Len(t, questions, 1)
	assert.Equal(t, "q1", questions[0].ID)
	assert.Equal(t, models.SingleChoice, questions[0].Type)
	assert.Equal(t, []int{0}, questions[0].Answer.Tokens)
}

func TestClientSurfacesErrorBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"AI review failed"}`))
	}))
	defer server.Close()

	c := New(server.URL, nil)
	_, err := c.GetAIReview(context.Background(), &models.SessionSummary{})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "AI review failed")
}

func TestStyleForPriorityOrder(t *testing.T) {
	testCases := []struct {
		category string
		label    string
	}{
		{"Knowledge Gap", "Knowledge Gap"},
		{"Minor gaps in calculus", "Knowledge Gap"},
		{"Topic Weakness", "Topic Weakness"},
		{"Vulnerable areas", "Topic Weakness"},
		{"Confidence issue", "Confidence Issue"},
		{"Too many skips", "Confidence Issue"},
		{"Conceptual confusion", "Conceptual Confusion"},
		{"Common pitfall", "Conceptual Confusion"},
		{"Strong performance", "Strong Performance"},
		{"Excellent recall", "Strong Performance"},
	}
	for _, tc := range testCases {
		t.Run(tc.category, func(t *testing.T) {
			assert.Equal(t, tc.label, StyleFor(tc.category).Label)
		})
	}
}

func TestStyleForUnknownCategoryKeepsOwnLabel(t *testing.T) {
	style := StyleFor("Time Management")
	assert.Equal(t, "Time Management", style.Label)
	assert.Equal(t, "info-circle", style.Icon)
}

func TestStyleForIsCaseInsensitive(t *testing.T) {
	assert.Equal(t, "Knowledge Gap", StyleFor("KNOWLEDGE GAP").Label)
}

func TestStageTickerRotatesAndStops(t *testing.T) {
	var seen []string
	done := make(chan struct{})
	ticker := NewStageTicker(5*time.Millisecond, func(label string) {
		seen = append(seen, label)
		if len(seen) == len(ReviewStages) {
			close(done)
		}
	})
	defer ticker.Stop()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("ticker did not reach the final stage")
	}

	assert.Equal(t, ReviewStages, seen)
	assert.Equal(t, ReviewStages[len(ReviewStages)-1], ticker.Stage())
}

func TestStageTickerStopIsIdempotent(t *testing.T) {
	ticker := NewStageTicker(time.Hour, nil)
	ticker.Stop()
	ticker.Stop()
	assert.Equal(t, ReviewStages[0], ticker.Stage())
}
