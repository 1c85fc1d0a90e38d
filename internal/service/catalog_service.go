package service

import (
	"context"
	"time"

	"examprep-service/internal/cache"
	"examprep-service/internal/models"
	"examprep-service/internal/repository"
)

// CatalogService serves the course/subject/topic hierarchy with an
// optional Redis cache in front; the catalog changes rarely relative to
// question traffic.
type CatalogService struct {
	Repo  *repository.CatalogRepository
	Cache cache.Cache
	TTL   time.Duration
}

func NewCatalogService(repo *repository.CatalogRepository, c cache.Cache, ttl time.Duration) *CatalogService {
	return &CatalogService{Repo: repo, Cache: c, TTL: ttl}
}

func (s *CatalogService) Courses(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	if s.cached(ctx, "catalog:courses", &courses) {
		return courses, nil
	}
	courses, err := s.Repo.FindCourses(ctx)
	if err != nil {
		return nil, err
	}
	s.store(ctx, "catalog:courses", courses)
	return courses, nil
}

func (s *CatalogService) SubjectsByCourse(ctx context.Context, courseID string) ([]models.Subject, error) {
	key := "catalog:subjects:" + courseID
	var subjects []models.Subject
	if s.cached(ctx, key, &subjects) {
		return subjects, nil
	}
	subjects, err := s.Repo.FindSubjectsByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, subjects)
	return subjects, nil
}

func (s *CatalogService) TopicsWithSubtopics(ctx context.Context, subjectID string) ([]models.Topic, error) {
	key := "catalog:topics:" + subjectID
	var topics []models.Topic
	if s.cached(ctx, key, &topics) {
		return topics, nil
	}
	topics, err := s.Repo.FindTopicsWithSubtopics(ctx, subjectID)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, topics)
	return topics, nil
}

func (s *CatalogService) cached(ctx context.Context, key string, dest interface{}) bool {
	return s.Cache != nil && s.Cache.Get(ctx, key, dest)
}

func (s *CatalogService) store(ctx context.Context, key string, value interface{}) {
	if s.Cache != nil {
		s.Cache.Set(ctx, key, value, s.TTL)
	}
}
