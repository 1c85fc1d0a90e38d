package service

import (
	"context"

	"examprep-service/internal/models"
	"examprep-service/internal/repository"
)

const maxBatchLimit = 25

type QuestionService struct {
	Store        repository.QuestionStore
	DefaultLimit int
}

func NewQuestionService(store repository.QuestionStore, defaultLimit int) *QuestionService {
	if defaultLimit <= 0 || defaultLimit > maxBatchLimit {
		defaultLimit = maxBatchLimit
	}
	return &QuestionService{Store: store, DefaultLimit: defaultLimit}
}

// FetchBatch returns a filtered batch, clamping the limit to the allowed
// window. An empty batch is a valid result, not an error.
func (s *QuestionService) FetchBatch(ctx context.Context, f repository.BatchFilters) ([]models.Question, error) {
	if f.Limit <= 0 {
		f.Limit = s.DefaultLimit
	}
	if f.Limit > maxBatchLimit {
		f.Limit = maxBatchLimit
	}
	return s.Store.FetchBatch(ctx, f)
}
