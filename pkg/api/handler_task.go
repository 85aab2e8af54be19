package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/models"
)

func (s *Server) handleCreateTask(c *gin.Context) {
	var req CreateTaskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	maxAttempts := req.MaxAttempts
	if maxAttempts <= 0 {
		maxAttempts = s.cfg.Defaults.MaxAttemptsPerTask
	}

	t, err := s.tasks.CreateTask(c.Request.Context(), models.CreateTaskRequest{
		TaskID:      req.TaskID,
		Repo:        req.Repo,
		IssueNumber: req.IssueNumber,
		IssueTitle:  req.IssueTitle,
		IssueBody:   req.IssueBody,
		MaxAttempts: maxAttempts,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"task": t})
}

// handleListTasks filters by job_id and repeatable status params.
func (s *Server) handleListTasks(c *gin.Context) {
	var statuses []task.Status
	for _, raw := range c.QueryArray("status") {
		st := task.Status(raw)
		if err := task.StatusValidator(st); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid status: " + raw})
			return
		}
		statuses = append(statuses, st)
	}

	tasks, err := s.tasks.ListTasks(c.Request.Context(), c.Query("job_id"), statuses)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tasks": tasks})
}

func (s *Server) handleGetTask(c *gin.Context) {
	t, err := s.tasks.GetTask(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task": t})
}

// handleCancelTask flags the task for cooperative cancellation and
// interrupts it locally if this pod holds the claim. The engine records
// the terminal transition at the next step boundary.
func (s *Server) handleCancelTask(c *gin.Context) {
	taskID := c.Param("id")
	if err := s.tasks.RequestCancel(c.Request.Context(), taskID); err != nil {
		mapServiceError(c, err)
		return
	}

	interrupted := false
	if s.pool != nil {
		interrupted = s.pool.CancelTask(taskID)
	}
	c.JSON(http.StatusAccepted, gin.H{
		"status":      "cancel_requested",
		"interrupted": interrupted,
	})
}

// handleResolveConflict accepts a human-resolved diff for a parent task
// parked on aggregation conflicts and resumes the parent.
func (s *Server) handleResolveConflict(c *gin.Context) {
	var req ResolveConflictRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}
	if req.ResolvedDiff == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "resolved_diff is required"})
		return
	}

	if err := s.orch.ResolveConflict(c.Request.Context(), c.Param("id"), req.ResolvedDiff); err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "resolved"})
}

// handleListTaskEvents returns the task's durable audit trail in append
// order.
func (s *Server) handleListTaskEvents(c *gin.Context) {
	ctx := c.Request.Context()
	t, err := s.tasks.GetTask(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	events, err := s.events.List(ctx, t.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"task_id": t.ID, "events": events})
}
