package slack

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestService_NilReceiver(t *testing.T) {
	var s *Service

	t.Run("NotifyJobStarted is no-op", func(_ *testing.T) {
		s.NotifyJobStarted(context.Background(), JobStartedInput{JobID: "job-1"})
	})

	t.Run("NotifyTaskFinished is no-op", func(_ *testing.T) {
		s.NotifyTaskFinished(context.Background(), TaskFinishedInput{
			TaskID: "task-1",
			Status: "completed",
		})
	})

	t.Run("NotifyJobFinished is no-op", func(_ *testing.T) {
		s.NotifyJobFinished(context.Background(), JobFinishedInput{
			JobID:  "job-1",
			Status: "completed",
		})
	})
}

func TestNewService(t *testing.T) {
	t.Run("returns nil when token empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "", Channel: "C123"})
		assert.Nil(t, svc)
	})

	t.Run("returns nil when channel empty", func(t *testing.T) {
		svc := NewService(ServiceConfig{Token: "xoxb-test", Channel: ""})
		assert.Nil(t, svc)
	})

	t.Run("returns service when configured", func(t *testing.T) {
		svc := NewService(ServiceConfig{
			Token:        "xoxb-test",
			Channel:      "C123",
			DashboardURL: "https://example.com",
		})
		assert.NotNil(t, svc)
	})
}

// mockSlackAPI is a minimal Slack Web API stand-in. It records posted
// messages and serves a fixed channel history.
type mockSlackAPI struct {
	history      string // message text returned by conversations.history
	historyTS    string
	postedThread []string // thread_ts of each chat.postMessage call
}

func (m *mockSlackAPI) handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/chat.postMessage", func(w http.ResponseWriter, r *http.Request) {
		_ = r.ParseForm()
		m.postedThread = append(m.postedThread, r.FormValue("thread_ts"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"ok": true, "channel": "C123", "ts": "111.222"}`))
	})
	mux.HandleFunc("/conversations.history", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if m.history == "" {
			_, _ = w.Write([]byte(`{"ok": true, "messages": []}`))
			return
		}
		_, _ = w.Write([]byte(`{"ok": true, "messages": [{"type": "message", "ts": "` +
			m.historyTS + `", "text": "` + m.history + `"}]}`))
	})
	return mux
}

func newMockService(t *testing.T, mock *mockSlackAPI) *Service {
	t.Helper()
	srv := httptest.NewServer(mock.handler())
	t.Cleanup(srv.Close)
	client := NewClientWithAPIURL("xoxb-test", "C123", srv.URL+"/")
	return NewServiceWithClient(client, "https://dash.example.com")
}

func TestService_TaskNotificationThreadsUnderJob(t *testing.T) {
	mock := &mockSlackAPI{
		history:   "Job started job:job-42 3 task(s)",
		historyTS: "1700000000.000100",
	}
	svc := newMockService(t, mock)

	svc.NotifyTaskFinished(context.Background(), TaskFinishedInput{
		TaskID: "task-1",
		JobID:  "job-42",
		Repo:   "acme/widgets",
		Status: "completed",
	})

	require.Len(t, mock.postedThread, 1)
	assert.Equal(t, "1700000000.000100", mock.postedThread[0])
}

func TestService_StandaloneTaskPostsTopLevel(t *testing.T) {
	mock := &mockSlackAPI{}
	svc := newMockService(t, mock)

	svc.NotifyTaskFinished(context.Background(), TaskFinishedInput{
		TaskID: "task-1",
		Repo:   "acme/widgets",
		Status: "failed",
	})

	require.Len(t, mock.postedThread, 1)
	assert.Empty(t, mock.postedThread[0])
}

func TestService_MissingJobThreadDegradesToTopLevel(t *testing.T) {
	// History exists but does not contain this job's fingerprint.
	mock := &mockSlackAPI{
		history:   "unrelated chatter",
		historyTS: "1700000000.000200",
	}
	svc := newMockService(t, mock)

	svc.NotifyJobFinished(context.Background(), JobFinishedInput{
		JobID:     "job-7",
		Repo:      "acme/widgets",
		Status:    "partial",
		Completed: 1,
		Failed:    1,
		Total:     2,
	})

	require.Len(t, mock.postedThread, 1)
	assert.Empty(t, mock.postedThread[0])
}
