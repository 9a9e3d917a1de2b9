package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// patternsHandler handles GET /api/v1/analytics/patterns.
func (s *Server) patternsHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	patterns, err := s.analytics.Patterns(c.Request.Context(), proj.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, patterns)
}

// velocityHandler handles GET /api/v1/analytics/velocity.
func (s *Server) velocityHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	windowDays := 0
	if v := c.Query("window_days"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window_days must be a positive integer"})
			return
		}
		windowDays = n
	}

	velocity, err := s.analytics.Velocity(c.Request.Context(), proj.ID, windowDays)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, velocity)
}

// profileHandler handles GET /api/v1/analytics/profile.
func (s *Server) profileHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	agent := c.Query("agent")
	if agent == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "agent query parameter is required"})
		return
	}

	profile, err := s.analytics.Profile(c.Request.Context(), proj.ID, agent)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// digestHandler handles GET /api/v1/analytics/digest.
func (s *Server) digestHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	digest, err := s.analytics.Digest(c.Request.Context(), proj.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, digest)
}

// queryHandler handles POST /api/v1/query.
func (s *Server) queryHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	var req models.QueryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if req.Question == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "question is required"})
		return
	}

	resp, err := s.analytics.Query(c.Request.Context(), proj.ID, req.Question)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
