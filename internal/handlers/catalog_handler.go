package handlers

import (
	"context"
	"net/http"

	"examprep-service/internal/service"

	"github.com/gin-gonic/gin"
)

type CatalogHandler struct {
	Service *service.CatalogService
}

func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{Service: s}
}

func (h *CatalogHandler) GetCourses(c *gin.Context) {
	courses, err := h.Service.Courses(context.Background())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "courses": courses})
}

func (h *CatalogHandler) GetSubjects(c *gin.Context) {
	courseID := c.Param("id")
	if !isObjectID(courseID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid course id, expected a 24-character hex string"})
		return
	}
	subjects, err := h.Service.SubjectsByCourse(context.Background(), courseID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "subjects": subjects})
}

func (h *CatalogHandler) GetTopicsWithSubtopics(c *gin.Context) {
	subjectID := c.Param("subjectId")
	if !isObjectID(subjectID) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid subject id, expected a 24-character hex string"})
		return
	}
	topics, err := h.Service.TopicsWithSubtopics(context.Background(), subjectID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "success", "topics": topics})
}
