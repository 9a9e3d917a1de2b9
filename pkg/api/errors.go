package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/ijoka-ai/ijoka/pkg/database"
	"github.com/ijoka-ai/ijoka/pkg/services"
)

// mapServiceError writes the HTTP error response for a service-layer
// error.
func mapServiceError(c *gin.Context, err error) {
	var validErr *services.ValidationError
	if errors.As(err, &validErr) {
		c.JSON(http.StatusBadRequest, gin.H{"error": validErr.Error()})
		return
	}

	var claimErr *services.ClaimConflictError
	if errors.As(err, &claimErr) {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      claimErr.Error(),
			"held_by":    claimErr.HeldBy,
			"session_id": claimErr.SessionID,
		})
		return
	}

	if services.IsCycleError(err) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if errors.Is(err, services.ErrNoPendingFeature) {
		c.JSON(http.StatusNotFound, gin.H{"error": "no startable pending feature"})
		return
	}
	if errors.Is(err, services.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "resource not found"})
		return
	}
	if errors.Is(err, services.ErrAlreadyExists) {
		c.JSON(http.StatusConflict, gin.H{"error": "resource already exists"})
		return
	}
	if database.IsUnavailable(err) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "database unavailable"})
		return
	}

	// Unexpected error
	slog.Error("Unexpected service error", "error", err, "path", c.FullPath())
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
