package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// resolveActiveFeature resolves ?project= plus the optional ?session_id=
// to the feature the caller is working on. Mid-session agents rarely know
// feature ids; the plan and checkpoint routes exist in both feature-scoped
// and active-feature forms.
func (s *Server) resolveActiveFeature(c *gin.Context) (string, bool) {
	proj, ok := s.projectParam(c)
	if !ok {
		return "", false
	}
	f, err := s.features.ActiveFeature(c.Request.Context(), proj.ID, c.Query("session_id"))
	if err != nil {
		mapServiceError(c, err)
		return "", false
	}
	return f.ID, true
}

// getActivePlanHandler handles GET /api/v1/plan.
func (s *Server) getActivePlanHandler(c *gin.Context) {
	featureID, ok := s.resolveActiveFeature(c)
	if !ok {
		return
	}

	plan, err := s.plans.GetPlan(c.Request.Context(), featureID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// setActivePlanHandler handles POST /api/v1/plan.
func (s *Server) setActivePlanHandler(c *gin.Context) {
	featureID, ok := s.resolveActiveFeature(c)
	if !ok {
		return
	}

	var req models.SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := s.plans.SetPlan(c.Request.Context(), featureID, req.Steps)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// activeCheckpointHandler handles POST /api/v1/checkpoint.
func (s *Server) activeCheckpointHandler(c *gin.Context) {
	featureID, ok := s.resolveActiveFeature(c)
	if !ok {
		return
	}

	var req models.CheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.plans.Checkpoint(c.Request.Context(), featureID, req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// setPlanHandler handles PUT /api/v1/features/:id/plan.
func (s *Server) setPlanHandler(c *gin.Context) {
	var req models.SetPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	plan, err := s.plans.SetPlan(c.Request.Context(), c.Param("id"), req.Steps)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// getPlanHandler handles GET /api/v1/features/:id/plan.
func (s *Server) getPlanHandler(c *gin.Context) {
	plan, err := s.plans.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, plan)
}

// checkpointHandler handles POST /api/v1/features/:id/checkpoint.
func (s *Server) checkpointHandler(c *gin.Context) {
	var req models.CheckpointRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.plans.Checkpoint(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// UpdateStepRequest is the body of PATCH /api/v1/steps/:id.
type UpdateStepRequest struct {
	Status string `json:"status" binding:"required"`
}

// updateStepHandler handles PATCH /api/v1/steps/:id.
func (s *Server) updateStepHandler(c *gin.Context) {
	var req UpdateStepRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := s.plans.UpdateStepStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}
