package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/ent"
	"github.com/ijoka-ai/ijoka/pkg/models"
)

// projectParam resolves the ?project=<path> query parameter to a project
// node. Lookups never create; ingestion is the only path that creates
// projects implicitly.
func (s *Server) projectParam(c *gin.Context) (*ent.Project, bool) {
	path := c.Query("project")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project query parameter is required"})
		return nil, false
	}
	proj, err := s.projects.GetProjectByPath(c.Request.Context(), path)
	if err != nil {
		mapServiceError(c, err)
		return nil, false
	}
	return proj, true
}

// ensureProjectParam resolves ?project=<path>, creating the project on
// first reference. Used by write endpoints.
func (s *Server) ensureProjectParam(c *gin.Context) (*ent.Project, bool) {
	path := c.Query("project")
	if path == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "project query parameter is required"})
		return nil, false
	}
	proj, err := s.projects.EnsureProject(c.Request.Context(), path)
	if err != nil {
		mapServiceError(c, err)
		return nil, false
	}
	return proj, true
}

// statusHandler handles GET /api/v1/status.
func (s *Server) statusHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	stats, err := s.features.FeatureStats(c.Request.Context(), proj.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	resp := models.StatusResponse{
		Project: proj.Path,
		Stats:   stats,
	}

	inProgress, err := s.features.ListFeatures(c.Request.Context(), proj.ID, "in_progress", "")
	if err != nil {
		mapServiceError(c, err)
		return
	}
	for _, f := range inProgress {
		if f.IsSessionWork {
			continue
		}
		resp.CurrentFeature = f
		break
	}

	c.JSON(http.StatusOK, resp)
}
