package repository

import (
	"context"

	"examprep-service/internal/models"
)

// BatchFilters is the criteria for a filtered practice batch.
type BatchFilters struct {
	CourseID    string
	SubjectID   string
	TopicIDs    []string
	SubtopicIDs []string
	Difficulty  models.Difficulty
	Type        models.QuestionType
	Limit       int
}

// QuestionStore serves practice questions. Two implementations exist: the
// MongoDB-backed store and an in-memory fixture bank. Both are read-only;
// sampling is randomized with no determinism guarantee.
type QuestionStore interface {
	// FetchBatch returns up to Limit questions matching the filters.
	// An empty result is not an error.
	FetchBatch(ctx context.Context, f BatchFilters) ([]models.Question, error)

	// SampleBySubject returns count randomly sampled questions for one
	// subject name, normalized to the flat sampling-API shape.
	// difficulty is an optional label filter ("" means any).
	SampleBySubject(ctx context.Context, subject string, count int, difficulty string) ([]models.NormalizedQuestion, error)
}
