package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// createFeatureHandler handles POST /api/v1/features.
func (s *Server) createFeatureHandler(c *gin.Context) {
	proj, ok := s.ensureProjectParam(c)
	if !ok {
		return
	}

	var req models.CreateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	created, err := s.features.CreateFeature(c.Request.Context(), proj.ID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// listFeaturesHandler handles GET /api/v1/features.
func (s *Server) listFeaturesHandler(c *gin.Context) {
	proj, ok := s.projectParam(c)
	if !ok {
		return
	}

	features, err := s.features.ListFeatures(c.Request.Context(), proj.ID, c.Query("status"), c.Query("category"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"features": features, "count": len(features)})
}

// getFeatureHandler handles GET /api/v1/features/:id.
func (s *Server) getFeatureHandler(c *gin.Context) {
	f, err := s.features.GetFeature(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, f)
}

// updateFeatureHandler handles PATCH /api/v1/features/:id.
func (s *Server) updateFeatureHandler(c *gin.Context) {
	var req models.UpdateFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.features.UpdateFeature(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// archiveFeatureHandler handles DELETE /api/v1/features/:id.
func (s *Server) archiveFeatureHandler(c *gin.Context) {
	if err := s.features.ArchiveFeature(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feature_id": c.Param("id"), "status": "archived"})
}

// blockFeatureHandler handles POST /api/v1/features/:id/block.
func (s *Server) blockFeatureHandler(c *gin.Context) {
	var req models.BlockFeatureRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	blocked, err := s.features.BlockFeature(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, blocked)
}

// LinkParentRequest is the body of PUT /api/v1/features/:id/parent.
type LinkParentRequest struct {
	ParentID string `json:"parent_id" binding:"required"`
}

// linkParentHandler handles PUT /api/v1/features/:id/parent.
func (s *Server) linkParentHandler(c *gin.Context) {
	var req LinkParentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if err := s.features.LinkToParent(c.Request.Context(), c.Param("id"), req.ParentID); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feature_id": c.Param("id"), "parent_id": req.ParentID})
}

// unlinkParentHandler handles DELETE /api/v1/features/:id/parent.
func (s *Server) unlinkParentHandler(c *gin.Context) {
	if err := s.features.UnlinkFromParent(c.Request.Context(), c.Param("id")); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"feature_id": c.Param("id"), "parent_id": nil})
}

// childrenHandler handles GET /api/v1/features/:id/children.
func (s *Server) childrenHandler(c *gin.Context) {
	children, err := s.features.GetChildren(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"children": children, "count": len(children)})
}

// featureEventsHandler handles GET /api/v1/features/:id/events. Includes
// events of descendant features so epics show rolled-up activity.
func (s *Server) featureEventsHandler(c *gin.Context) {
	limit := 0
	if v := c.Query("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = n
	}

	events, err := s.features.GetDescendantEvents(c.Request.Context(), c.Param("id"), limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "count": len(events)})
}
