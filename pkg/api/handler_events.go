package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/models"
)

// ingestEventHandler handles POST /api/v1/events.
func (s *Server) ingestEventHandler(c *gin.Context) {
	var req models.IngestEventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	resp, err := s.ingest.IngestEvent(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
