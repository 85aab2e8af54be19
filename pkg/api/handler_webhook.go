package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/pkg/engine"
)

// handleCodeHostWebhook routes code-host deliveries to the engine's
// signal handlers. CI results resume tasks suspended on checks; merge
// events complete tasks waiting on a human.
func (s *Server) handleCodeHostWebhook(c *gin.Context) {
	var payload CodeHostWebhook
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if payload.Repo == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "repo is required"})
		return
	}

	ctx := c.Request.Context()
	var (
		t   *ent.Task
		err error
	)
	switch payload.Event {
	case "ci_result":
		if payload.Branch == "" || payload.Success == nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "ci_result requires branch and success"})
			return
		}
		t, err = s.engine.FindTaskByBranch(ctx, payload.Repo, payload.Branch)
		if err == nil {
			err = s.engine.OnCIResult(ctx, t.ID, *payload.Success, payload.ErrorSummary)
		}
	case "pr_merged":
		if payload.PRNumber <= 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "pr_merged requires pr_number"})
			return
		}
		t, err = s.engine.FindTaskByPR(ctx, payload.Repo, payload.PRNumber)
		if err == nil {
			err = s.engine.OnMergeSignal(ctx, t.ID)
		}
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown event: " + payload.Event})
		return
	}

	// Code hosts retry non-2xx deliveries. A signal the task is no
	// longer waiting for is a duplicate; acknowledge it so retries stop.
	if errors.Is(err, engine.ErrUnexpectedSignal) {
		s.logger.Info("Ignoring duplicate webhook delivery",
			"event", payload.Event, "task_id", t.ID)
		c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "applied": false})
		return
	}
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "applied": true})
}
