package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent/task"
	"github.com/coderelay-ai/coderelay/pkg/config"
	"github.com/coderelay-ai/coderelay/pkg/engine"
	"github.com/coderelay-ai/coderelay/pkg/githost"
	"github.com/coderelay-ai/coderelay/pkg/models"
	"github.com/coderelay-ai/coderelay/pkg/orchestrator"
	"github.com/coderelay-ai/coderelay/pkg/services"
	testdb "github.com/coderelay-ai/coderelay/test/database"
)

// setupTestServer builds the API over a real database with the worker
// pool and WebSocket manager disabled.
func setupTestServer(t *testing.T) *Server {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dbClient := testdb.NewTestClient(t)

	cfg := &config.Config{
		Defaults:      config.DefaultDefaults(),
		Queue:         config.DefaultQueueConfig(),
		Orchestration: config.DefaultOrchestrationConfig(),
	}

	tasks := services.NewTaskService(dbClient.Client)
	jobs := services.NewJobService(dbClient.Client, tasks)
	events := services.NewEventService(dbClient.Client)
	memories, err := services.NewMemoryService(dbClient.Client)
	require.NoError(t, err)

	eng := engine.NewEngine(
		dbClient.Client, tasks, jobs, events, memories,
		nil, nil, githost.NewInMemory(), cfg, slog.Default())
	orch := orchestrator.New(
		dbClient.Client, tasks, events, memories,
		nil, nil, cfg.Orchestration, slog.Default())

	return NewServer(Dependencies{
		Config:       cfg,
		DB:           dbClient,
		Jobs:         jobs,
		Tasks:        tasks,
		Events:       events,
		Memories:     memories,
		Engine:       eng,
		Orchestrator: orch,
		Logger:       slog.Default(),
	})
}

func doJSON(t *testing.T, s *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	s.Handler().ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestJobLifecycle(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/jobs", models.CreateJobRequest{
		Repo:         "acme/widgets",
		IssueNumbers: []int{101, 102},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	jobID := decodeBody(t, w)["job"].(map[string]any)["id"].(string)

	// Pending until run; members are not yet admitted.
	w = doJSON(t, s, http.MethodGet, "/api/jobs/"+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "pending", body["job"].(map[string]any)["status"])
	assert.Equal(t, float64(2), body["summary"].(map[string]any)["total"])

	w = doJSON(t, s, http.MethodPost, "/api/jobs/"+jobID+"/run", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "running", decodeBody(t, w)["job"].(map[string]any)["status"])

	// Running jobs cannot be run again.
	w = doJSON(t, s, http.MethodPost, "/api/jobs/"+jobID+"/run", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/jobs/"+jobID+"/cancel", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "cancelled", decodeBody(t, w)["job"].(map[string]any)["status"])

	// Cancel flags every member.
	w = doJSON(t, s, http.MethodGet, "/api/tasks?job_id="+jobID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	members := decodeBody(t, w)["tasks"].([]any)
	require.Len(t, members, 2)
	for _, m := range members {
		assert.Equal(t, true, m.(map[string]any)["cancel_requested"])
	}

	// Terminal jobs cannot be cancelled again.
	w = doJSON(t, s, http.MethodPost, "/api/jobs/"+jobID+"/cancel", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCreateJobValidation(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/jobs", models.CreateJobRequest{Repo: "acme/widgets"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/jobs/nonexistent", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestStandaloneTaskLifecycle(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 7,
		IssueTitle:  "Fix the frobnicator",
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	created := decodeBody(t, w)["task"].(map[string]any)
	taskID := created["id"].(string)
	assert.Equal(t, "new", created["status"])
	assert.Nil(t, created["job_id"])

	w = doJSON(t, s, http.MethodGet, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/tasks/"+taskID+"/cancel", nil)
	require.Equal(t, http.StatusAccepted, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "cancel_requested", body["status"])
	assert.Equal(t, false, body["interrupted"], "no pool configured, nothing to interrupt")

	w = doJSON(t, s, http.MethodGet, "/api/tasks/"+taskID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, decodeBody(t, w)["task"].(map[string]any)["cancel_requested"])
}

func TestListTasksStatusFilter(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/filter",
		IssueNumber: 1,
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/tasks?status=%s", task.StatusNew), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, decodeBody(t, w)["tasks"])

	w = doJSON(t, s, http.MethodGet, "/api/tasks?status=bogus", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestTaskEventsEndpoint(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 9,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decodeBody(t, w)["task"].(map[string]any)["id"].(string)

	_, err := s.events.Append(context.Background(), models.AppendEventRequest{
		TaskID:    taskID,
		EventType: models.EventTaskStarted,
	})
	require.NoError(t, err)

	// TASK_CREATED from creation plus the appended event, in order.
	w = doJSON(t, s, http.MethodGet, "/api/tasks/"+taskID+"/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	events := decodeBody(t, w)["events"].([]any)
	require.Len(t, events, 2)
	assert.Equal(t, models.EventTaskCreated, events[0].(map[string]any)["event_type"])

	w = doJSON(t, s, http.MethodGet, "/api/tasks/nonexistent/events", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGlobalEventsCursor(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 11,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decodeBody(t, w)["task"].(map[string]any)["id"].(string)

	for i := 0; i < 3; i++ {
		_, err := s.events.Append(context.Background(), models.AppendEventRequest{
			TaskID:    taskID,
			EventType: models.EventTaskStarted,
		})
		require.NoError(t, err)
	}

	w = doJSON(t, s, http.MethodGet, "/api/events", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	events := body["events"].([]any)
	require.NotEmpty(t, events)
	cursor := int64(body["next_cursor"].(float64))
	assert.Positive(t, cursor)

	// The cursor points past everything returned so far.
	w = doJSON(t, s, http.MethodGet, fmt.Sprintf("/api/events?since=%d", cursor), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, decodeBody(t, w)["events"])

	w = doJSON(t, s, http.MethodGet, "/api/events?since=notanumber", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestStaticMemoryEndpoints(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPut, "/api/memory", models.UpsertStaticMemoryRequest{
		Repo: "acme/widgets",
		Config: models.RepoConfig{
			Language:      "go",
			DefaultBranch: "main",
		},
		Constraints: models.RepoConstraints{
			MaxDiffLines:    300,
			MaxFilesPerTask: 5,
		},
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(t, s, http.MethodGet, "/api/memory?repo=acme/widgets", nil)
	require.Equal(t, http.StatusOK, w.Code)
	memory := decodeBody(t, w)["memory"].(map[string]any)
	assert.Equal(t, "acme/widgets", memory["id"])

	w = doJSON(t, s, http.MethodGet, "/api/memory", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, s, http.MethodGet, "/api/memory?repo=acme/unknown", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHealthEndpoint(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodGet, "/api/health", nil)
	require.Equal(t, http.StatusOK, w.Code)
	body := decodeBody(t, w)
	assert.Equal(t, "healthy", body["status"])
	assert.NotEmpty(t, body["version"])
	assert.NotContains(t, body, "queue", "no pool on an API-only server")
}

func TestWebhookValidation(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/webhooks/code-host", CodeHostWebhook{
		Event: "solar_flare",
		Repo:  "acme/widgets",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	success := true
	w = doJSON(t, s, http.MethodPost, "/webhooks/code-host", CodeHostWebhook{
		Event:   "ci_result",
		Repo:    "acme/widgets",
		Branch:  "coderelay/no-such-branch",
		Success: &success,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, s, http.MethodPost, "/webhooks/code-host", CodeHostWebhook{
		Event: "pr_merged",
		Repo:  "acme/widgets",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code, "pr_merged requires pr_number")
}

func TestWebhookDuplicateDeliveryAcknowledged(t *testing.T) {
	s := setupTestServer(t)

	// A task that exists but is not waiting on a merge: the signal is a
	// duplicate or misdirected delivery and must be acknowledged.
	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 21,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decodeBody(t, w)["task"].(map[string]any)["id"].(string)

	prNumber := 555
	err := s.db.Task.UpdateOneID(taskID).
		SetPrNumber(prNumber).
		Exec(context.Background())
	require.NoError(t, err)

	w = doJSON(t, s, http.MethodPost, "/webhooks/code-host", CodeHostWebhook{
		Event:    "pr_merged",
		Repo:     "acme/widgets",
		PRNumber: prNumber,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, false, body["applied"])
	assert.Equal(t, taskID, body["task_id"])
}

func TestResolveConflictRequiresParkedParent(t *testing.T) {
	s := setupTestServer(t)

	w := doJSON(t, s, http.MethodPost, "/api/tasks", CreateTaskRequest{
		Repo:        "acme/widgets",
		IssueNumber: 31,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	taskID := decodeBody(t, w)["task"].(map[string]any)["id"].(string)

	resolvedDiff := "diff --git a/a.txt b/a.txt\n" +
		"--- a/a.txt\n" +
		"+++ b/a.txt\n" +
		"@@ -1 +1 @@\n" +
		"-old\n" +
		"+new\n"

	w = doJSON(t, s, http.MethodPost, "/api/tasks/"+taskID+"/resolve-conflict",
		ResolveConflictRequest{ResolvedDiff: resolvedDiff})
	assert.Equal(t, http.StatusConflict, w.Code)

	w = doJSON(t, s, http.MethodPost, "/api/tasks/"+taskID+"/resolve-conflict",
		ResolveConflictRequest{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
