package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// createInsightHandler handles POST /api/v1/insights.
func (s *Server) createInsightHandler(c *gin.Context) {
	var req models.CreateInsightRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.insights.CreateInsight(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// searchInsightsHandler handles GET /api/v1/insights.
func (s *Server) searchInsightsHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	var tags []string
	if v := c.Query("tags"); v != "" {
		tags = strings.Split(v, ",")
	}

	matched, err := s.insights.SearchInsights(c.Request.Context(), c.Query("q"), tags, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"insights": matched, "count": len(matched)})
}

// insightFeedbackHandler handles POST /api/v1/insights/feedback.
func (s *Server) insightFeedbackHandler(c *gin.Context) {
	var req models.InsightFeedbackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.insights.RecordFeedback(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
