package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// startFeatureHandler handles POST /api/v1/features/:id/start.
func (s *Server) startFeatureHandler(c *gin.Context) {
	var req models.StartFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started, err := s.claims.StartFeature(c.Request.Context(), c.Param("id"), req.Agent, req.SessionID, req.ForceOverride)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, started)
}

// startNextFeatureHandler handles POST /api/v1/features/start-next.
func (s *Server) startNextFeatureHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	var req models.StartFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	started, err := s.claims.StartNextFeature(c.Request.Context(), proj.ID, req.Agent, req.SessionID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, started)
}

// CompleteFeatureRequest is the body of POST /api/v1/features/:id/complete.
type CompleteFeatureRequest struct {
	Agent     string `json:"agent,omitempty"`
	SessionID string `json:"session_id,omitempty"`
	Summary   string `json:"summary,omitempty"`
}

// completeFeatureHandler handles POST /api/v1/features/:id/complete.
func (s *Server) completeFeatureHandler(c *gin.Context) {
	var req CompleteFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	completed, err := s.claims.CompleteFeature(c.Request.Context(), c.Param("id"), req.Agent, req.SessionID, req.Summary)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, completed)
}

// discoverFeatureHandler handles POST /api/v1/features/discover.
func (s *Server) discoverFeatureHandler(c *gin.Context) {
	proj, ok := s.ensureProjectParam(c)
	if !ok {
		return
	}

	var req models.DiscoverFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := s.ingest.DiscoverFeature(c.Request.Context(), proj.ID, c.Query("session_id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
