package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/slack"
)

// handleCreateJob creates a job and one task per issue. The job starts
// pending; nothing runs until the run endpoint admits it.
func (s *Server) handleCreateJob(c *gin.Context) {
	var req models.CreateJobRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body: " + err.Error()})
		return
	}

	j, err := s.jobs.CreateJob(c.Request.Context(), req, s.cfg.Defaults.MaxAttemptsPerTask)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"job": j})
}

func (s *Server) handleListJobs(c *gin.Context) {
	jobs, err := s.jobs.ListJobs(c.Request.Context())
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"jobs": jobs})
}

// handleGetJob returns the job with its derived member roll-up.
func (s *Server) handleGetJob(c *gin.Context) {
	ctx := c.Request.Context()
	j, err := s.jobs.GetJob(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	summary, err := s.jobs.Summary(ctx, j.ID)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"job": j, "summary": summary})
}

func (s *Server) handleRunJob(c *gin.Context) {
	ctx := c.Request.Context()
	j, err := s.jobs.RunJob(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	// The announcement anchors the Slack thread that member task
	// notifications reply to.
	if s.slack != nil {
		if summary, err := s.jobs.Summary(ctx, j.ID); err == nil {
			s.slack.NotifyJobStarted(ctx, slack.JobStartedInput{
				JobID:     j.ID,
				Repo:      j.Repo,
				TaskCount: summary.Total,
			})
		}
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}

// handleCancelJob flags every non-terminal member for cooperative
// cancel. In-flight members are also interrupted locally when this pod
// holds their claim.
func (s *Server) handleCancelJob(c *gin.Context) {
	ctx := c.Request.Context()
	j, err := s.jobs.CancelJob(ctx, c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}

	if s.pool != nil {
		members, err := s.tasks.ListTasks(ctx, j.ID, nil)
		if err == nil {
			for _, t := range members {
				s.pool.CancelTask(t.ID)
			}
		}
	}
	c.JSON(http.StatusOK, gin.H{"job": j})
}
