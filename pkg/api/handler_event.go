package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	defaultEventPageSize = 100
	maxEventPageSize     = 500
)

// handleListEvents pages the global durable event log by cursor. The
// returned next_cursor feeds the next request's since parameter.
func (s *Server) handleListEvents(c *gin.Context) {
	var since int64
	if raw := c.Query("since"); raw != "" {
		parsed, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || parsed < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "since must be a non-negative integer"})
			return
		}
		since = parsed
	}

	limit := defaultEventPageSize
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a positive integer"})
			return
		}
		limit = min(parsed, maxEventPageSize)
	}

	events, err := s.events.ListSince(c.Request.Context(), since, limit)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	nextCursor := since
	if len(events) > 0 {
		nextCursor = int64(events[len(events)-1].ID)
	}
	c.JSON(http.StatusOK, gin.H{"events": events, "next_cursor": nextCursor})
}
