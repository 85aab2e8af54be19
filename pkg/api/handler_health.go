package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/pkg/database"
	"github.com/coderelay-ai/coderelay/pkg/version"
)

// handleHealth reports database connectivity and, when this pod runs
// workers, the pool's view of the queue.
func (s *Server) handleHealth(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	dbHealth, dbErr := database.Health(ctx, s.db.DB())

	resp := gin.H{
		"version":  version.Full(),
		"database": dbHealth,
	}
	if s.pool != nil {
		resp["queue"] = s.pool.Health()
	}

	status := http.StatusOK
	resp["status"] = "healthy"
	if dbErr != nil {
		status = http.StatusServiceUnavailable
		resp["status"] = "unhealthy"
	}
	c.JSON(status, resp)
}
