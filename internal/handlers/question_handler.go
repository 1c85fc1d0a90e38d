package handlers

import (
	"context"
	"net/http"

	"examprep-service/internal/models"
	"examprep-service/internal/repository"
	"examprep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type QuestionHandler struct {
	Service *service.QuestionService
}

func NewQuestionHandler(s *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{Service: s}
}

// FetchQuestionsRequest is the filter body for POST /questions/fetch.
// Difficulty and Type are pointers so the zero values (Easy, single
// choice) survive the required check.
type FetchQuestionsRequest struct {
	CourseID    string   `json:"courseId" binding:"required,objectid"`
	SubjectID   string   `json:"subjectId" binding:"omitempty,objectid"`
	TopicIDs    []string `json:"topicIds" binding:"omitempty,dive,objectid"`
	SubtopicIDs []string `json:"subtopicIds" binding:"omitempty,dive,objectid"`
	Difficulty  *int     `json:"difficulty" binding:"required,min=0,max=2"`
	Type        *int     `json:"type" binding:"required,min=0,max=6"`
	Limit       int      `json:"limit" binding:"omitempty,min=1,max=25"`
}

func (h *QuestionHandler) FetchQuestions(c *gin.Context) {
	var req FetchQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request format",
			"details": err.Error(),
		})
		return
	}

	filters := repository.BatchFilters{
		CourseID:    req.CourseID,
		SubjectID:   req.SubjectID,
		TopicIDs:    req.TopicIDs,
		SubtopicIDs: req.SubtopicIDs,
		Difficulty:  models.Difficulty(*req.Difficulty),
		Type:        models.QuestionType(*req.Type),
		Limit:       req.Limit,
	}

	questions, err := h.Service.FetchBatch(context.Background(), filters)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if questions == nil {
		questions = []models.Question{}
	}

	requested := filters.Limit
	if requested == 0 {
		requested = h.Service.DefaultLimit
	}

	c.JSON(http.StatusOK, gin.H{
		"status":    "success",
		"count":     len(questions),
		"requested": requested,
		"filters": gin.H{
			"difficulty": filters.Difficulty.Label(),
			"type":       filters.Type.Label(),
		},
		"questions": questions,
	})
}
