package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
	"github.com/ijoka-ai/ijoka/pkg/services"
)

// StartSessionRequest is the body of POST /api/v1/sessions/start.
type StartSessionRequest struct {
	SessionID   string `json:"session_id" binding:"required"`
	Agent       string `json:"agent" binding:"required"`
	ProjectPath string `json:"project_path" binding:"required"`
	IsSubagent  bool   `json:"is_subagent,omitempty"`
	StartCommit string `json:"start_commit,omitempty"`
}

// startSessionHandler handles POST /api/v1/sessions/start.
func (s *Server) startSessionHandler(c *gin.Context) {
	var req StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	proj, err := s.projects.EnsureProject(c.Request.Context(), req.ProjectPath)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	session, err := s.sessions.StartSession(c.Request.Context(), services.StartSessionRequest{
		SessionID:   req.SessionID,
		Agent:       req.Agent,
		ProjectID:   proj.ID,
		IsSubagent:  req.IsSubagent,
		StartCommit: req.StartCommit,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, session)
}

// endSessionHandler handles POST /api/v1/sessions/end.
func (s *Server) endSessionHandler(c *gin.Context) {
	var req models.SessionEndRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.sessions.EndSession(c.Request.Context(), req); err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"session_id": req.SessionID, "status": "ended"})
}

// getSessionHandler handles GET /api/v1/sessions/:id.
func (s *Server) getSessionHandler(c *gin.Context) {
	session, err := s.sessions.GetSession(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, session)
}
