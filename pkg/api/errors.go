package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/orchestrator"
	"github.com/coderelay-ai/coderelay/pkg/services"
)

// mapServiceError translates service-layer errors into HTTP responses.
// Caller mistakes map to 4xx with the validation detail; anything
// unexpected becomes a 500 with the detail kept server-side.
func mapServiceError(c *gin.Context, err error) {
	var ve *services.ValidationError
	switch {
	case errors.As(err, &ve):
		c.JSON(http.StatusBadRequest, gin.H{"error": ve.Error(), "field": ve.Field})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, services.ErrAlreadyExists):
		c.JSON(http.StatusConflict, gin.H{"error": "already exists"})
	case errors.Is(err, services.ErrNotCancellable):
		c.JSON(http.StatusConflict, gin.H{"error": "not in a cancellable state"})
	case errors.Is(err, services.ErrConcurrentModification):
		c.JSON(http.StatusConflict, gin.H{"error": "concurrent modification, retry the request"})
	case errors.Is(err, engine.ErrUnexpectedSignal):
		c.JSON(http.StatusConflict, gin.H{"error": "task is not waiting for this signal"})
	case errors.Is(err, orchestrator.ErrNotResolvable):
		c.JSON(http.StatusConflict, gin.H{"error": "parent is not awaiting conflict resolution"})
	default:
		slog.Error("Unhandled service error", "path", c.FullPath(), "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}
