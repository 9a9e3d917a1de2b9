// Package api exposes the HTTP surface over gin: event ingestion,
// feature and plan management, the claim protocol, insights, and
// analytics. Handlers stay thin; all semantics live in pkg/services and
// pkg/analytics.
package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/analytics"
	"github.com/ijoka-ai/ijoka/pkg/config"
	"github.com/ijoka-ai/ijoka/pkg/database"
	"github.com/ijoka-ai/ijoka/pkg/services"
	"github.com/ijoka-ai/ijoka/pkg/version"
)

// Server wires the HTTP handlers to the service layer.
type Server struct {
	db        *database.Client
	cfg       *config.Config
	projects  *services.ProjectService
	features  *services.FeatureService
	sessions  *services.SessionService
	plans     *services.PlanService
	claims    *services.ClaimService
	insights  *services.InsightService
	ingest    *services.IngestService
	analytics *analytics.Service
}

// NewServer creates a new API server
func NewServer(db *database.Client, cfg *config.Config) *Server {
	return &Server{
		db:        db,
		cfg:       cfg,
		projects:  services.NewProjectService(db.Client),
		features:  services.NewFeatureService(db.Client),
		sessions:  services.NewSessionService(db.Client),
		plans:     services.NewPlanService(db.Client),
		claims:    services.NewClaimService(db.Client, cfg.StaleThreshold),
		insights:  services.NewInsightService(db.Client),
		ingest:    services.NewIngestService(db.Client, cfg),
		analytics: analytics.NewService(db.Client),
	}
}

// RegisterRoutes attaches all routes to the engine.
func (s *Server) RegisterRoutes(r *gin.Engine) {
	r.Use(securityHeaders())

	r.GET("/health", s.healthHandler)

	v1 := r.Group("/api/v1")
	{
		v1.GET("/status", s.statusHandler)
		v1.POST("/events", s.ingestEventHandler)

		v1.POST("/sessions/start", s.startSessionHandler)
		v1.POST("/sessions/end", s.endSessionHandler)
		v1.GET("/sessions/:id", s.getSessionHandler)

		v1.POST("/features", s.createFeatureHandler)
		v1.GET("/features", s.listFeaturesHandler)
		v1.POST("/features/discover", s.discoverFeatureHandler)
		v1.POST("/features/start-next", s.startNextFeatureHandler)
		v1.GET("/features/:id", s.getFeatureHandler)
		v1.PATCH("/features/:id", s.updateFeatureHandler)
		v1.DELETE("/features/:id", s.archiveFeatureHandler)
		v1.POST("/features/:id/start", s.startFeatureHandler)
		v1.POST("/features/:id/complete", s.completeFeatureHandler)
		v1.POST("/features/:id/block", s.blockFeatureHandler)
		v1.PUT("/features/:id/parent", s.linkParentHandler)
		v1.DELETE("/features/:id/parent", s.unlinkParentHandler)
		v1.GET("/features/:id/children", s.childrenHandler)
		v1.GET("/features/:id/events", s.featureEventsHandler)
		v1.PUT("/features/:id/plan", s.setPlanHandler)
		v1.GET("/features/:id/plan", s.getPlanHandler)
		v1.POST("/features/:id/checkpoint", s.checkpointHandler)

		// Active-feature forms for agents that don't know feature ids
		v1.GET("/plan", s.getActivePlanHandler)
		v1.POST("/plan", s.setActivePlanHandler)
		v1.POST("/checkpoint", s.activeCheckpointHandler)

		v1.PATCH("/steps/:id", s.updateStepHandler)

		v1.POST("/insights", s.createInsightHandler)
		v1.GET("/insights", s.searchInsightsHandler)
		v1.POST("/insights/feedback", s.insightFeedbackHandler)

		v1.GET("/analytics/patterns", s.patternsHandler)
		v1.GET("/analytics/velocity", s.velocityHandler)
		v1.GET("/analytics/profile", s.profileHandler)
		v1.GET("/analytics/digest", s.digestHandler)
		v1.POST("/analytics/query", s.queryHandler)
	}
}

// healthHandler handles GET /health.
func (s *Server) healthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, err := database.Health(ctx, s.db.DB())
	if err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status":   "unhealthy",
			"version":  version.Full(),
			"database": dbHealth,
			"error":    err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":   "healthy",
		"version":  version.Full(),
		"database": dbHealth,
	})
}
