package handlers

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"examprep-service/internal/service"

	"github.com/gin-gonic/gin"
)

// SamplerHandler exposes the standalone sampling API: a health probe and
// per-subject random question batches.
type SamplerHandler struct {
	Service *service.SamplerService
}

func NewSamplerHandler(s *service.SamplerService) *SamplerHandler {
	return &SamplerHandler{Service: s}
}

func (h *SamplerHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}

// GetQuestions handles GET /api/questions?subjects=a,b,c&count=N&difficulty=D.
// The subjects parameter is mandatory; count falls back to its default on
// any parse failure.
func (h *SamplerHandler) GetQuestions(c *gin.Context) {
	var subjects []string
	for _, s := range strings.Split(c.Query("subjects"), ",") {
		if s = strings.TrimSpace(s); s != "" {
			subjects = append(subjects, s)
		}
	}
	if len(subjects) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "subjects query param is required"})
		return
	}

	count, err := strconv.Atoi(c.DefaultQuery("count", "10"))
	if err != nil || count <= 0 {
		count = 10
	}
	difficulty := c.Query("difficulty")

	questions := h.Service.SampleSubjects(context.Background(), subjects, count, difficulty)
	c.JSON(http.StatusOK, gin.H{"questions": questions})
}
