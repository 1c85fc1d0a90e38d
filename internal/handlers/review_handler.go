package handlers

import (
	"context"
	"net/http"

	"examprep-service/internal/models"
	"examprep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type ReviewHandler struct {
	Service *service.ReviewService
}

func NewReviewHandler(s *service.ReviewService) *ReviewHandler {
	return &ReviewHandler{Service: s}
}

// AIReview accepts a completed session summary and returns categorized
// insights. The summary is treated as a read-only value; nothing is
// persisted here.
func (h *ReviewHandler) AIReview(c *gin.Context) {
	var summary models.SessionSummary
	if err := c.ShouldBindJSON(&summary); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid session summary",
			"details": err.Error(),
		})
		return
	}

	if summary.CorrectAnswers+summary.WrongAnswers+summary.SkippedQuestions != summary.TotalQuestions {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Summary counts do not add up to the question total",
		})
		return
	}

	insights := h.Service.GenerateInsights(context.Background(), &summary)
	c.JSON(http.StatusOK, gin.H{"status": "success", "insights": insights})
}
