package service

import (
	"context"
	"log"

	"examprep-service/internal/models"
	"examprep-service/internal/repository"
)

const defaultSampleCount = 10

// SamplerService backs the standalone sampling API: per-subject random
// batches of normalized questions.
type SamplerService struct {
	Store repository.QuestionStore
}

func NewSamplerService(store repository.QuestionStore) *SamplerService {
	return &SamplerService{Store: store}
}

// SampleSubjects samples count questions for each requested subject.
// A failing subject degrades to an empty slice rather than failing the
// whole response; each request is independently retryable by the caller.
func (s *SamplerService) SampleSubjects(ctx context.Context, subjects []string, count int, difficulty string) map[string][]models.NormalizedQuestion {
	if count <= 0 {
		count = defaultSampleCount
	}

	response := make(map[string][]models.NormalizedQuestion, len(subjects))
	for _, subject := range subjects {
		sampled, err := s.Store.SampleBySubject(ctx, subject, count, difficulty)
		if err != nil {
			log.Printf("sampling %q failed: %v", subject, err)
			sampled = nil
		}
		if sampled == nil {
			sampled = []models.NormalizedQuestion{}
		}
		response[subject] = sampled
	}
	return response
}
