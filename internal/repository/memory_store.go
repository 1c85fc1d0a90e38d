package repository

import (
	"context"
	"math/rand"
	"sync"

	"examprep-service/internal/models"
)

// MemoryQuestionStore serves the static in-memory bank. It backs local
// development and tests where no MongoDB is available, behind the same
// store interface as the persistent implementation.
type MemoryQuestionStore struct {
	mu   sync.Mutex
	rand *rand.Rand
}

func NewMemoryQuestionStore(seed int64) *MemoryQuestionStore {
	return &MemoryQuestionStore{rand: rand.New(rand.NewSource(seed))}
}

func (s *MemoryQuestionStore) FetchBatch(ctx context.Context, f BatchFilters) ([]models.Question, error) {
	if f.Type != models.SingleChoice {
		// The bank only carries single-choice questions.
		return nil, nil
	}

	var pool []models.Question
	for subject, entries := range questionBank {
		for i := range entries {
			q := bankQuestion(&entries[i], subject)
			if q.Meta.Difficulty == f.Difficulty {
				pool = append(pool, q)
			}
		}
	}

	s.shuffleQuestions(pool)
	if f.Limit > 0 && len(pool) > f.Limit {
		pool = pool[:f.Limit]
	}
	return pool, nil
}

func (s *MemoryQuestionStore) SampleBySubject(ctx context.Context, subject string, count int, difficulty string) ([]models.NormalizedQuestion, error) {
	entries := questionBank[subject]

	sampled := make([]models.NormalizedQuestion, 0, count)
	indexes := s.perm(len(entries))
	for _, i := range indexes {
		entry := &entries[i]
		if difficulty != "" && entry.Difficulty != difficulty {
			continue
		}
		sampled = append(sampled, normalizeEntry(entry))
		if len(sampled) >= count {
			break
		}
	}
	return sampled, nil
}

func (s *MemoryQuestionStore) shuffleQuestions(questions []models.Question) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rand.Shuffle(len(questions), func(i, j int) {
		questions[i], questions[j] = questions[j], questions[i]
	})
}

func (s *MemoryQuestionStore) perm(n int) []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rand.Perm(n)
}

func normalizeEntry(entry *bankEntry) models.NormalizedQuestion {
	correct := entry.CorrectAnswer
	return models.NormalizedQuestion{
		ID:            entry.ID,
		Question:      entry.Question,
		Options:       entry.Options,
		CorrectAnswer: &correct,
		Marks:         4,
		Type:          "single",
	}
}

func bankQuestion(entry *bankEntry, subject string) models.Question {
	options := make([]models.Option, len(entry.Options))
	for i, text := range entry.Options {
		options[i] = models.Option{V: i, D: models.RichContent{Text: text}}
	}
	difficulty := models.Medium
	switch entry.Difficulty {
	case "easy":
		difficulty = models.Easy
	case "hard":
		difficulty = models.Hard
	}
	return models.Question{
		ID:   entry.ID,
		Type: models.SingleChoice,
		Question: models.QuestionBody{
			Body:    models.RichContent{Text: entry.Question},
			Options: options,
		},
		Answer:    models.AnswerKey{Tokens: []int{entry.CorrectAnswer}},
		Meta:      models.QuestionMeta{Difficulty: difficulty, Marks: 4},
		TopicName: subject,
	}
}
