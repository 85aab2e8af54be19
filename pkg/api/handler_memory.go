package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/pkg/models"
)

func (s *Server) handleGetStaticMemory(c *gin.Context) {
	repo := c.Query("repo")
	if repo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "repo query parameter is required"})
		return
	}

	memory, err := s.memories.GetStaticMemory(c.Request.Context(), repo)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"memory": memory})
}

// handleUpsertStaticMemory creates or replaces a repo's static memory.
// The service invalidates its cache so running tasks pick up the new
// constraints at their next compile.
func (s *Server) handleUpsertStaticMemory(c *gin.Context) {
	var req models.UpsertStaticMemoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	memory, err := s.memories.UpsertStaticMemory(c.Request.Context(), req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"memory": memory})
}
