package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaskChannel(t *testing.T) {
	assert.Equal(t, "task:abc-123", TaskChannel("abc-123"))
}

func TestTruncateIfNeeded_SmallPayloadUnchanged(t *testing.T) {
	payload := `{"type":"task.status","task_id":"t1","status":"coding"}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeeded_LargePayloadGetsEnvelope(t *testing.T) {
	big := map[string]any{
		"type":    EventTypeTaskEvent,
		"task_id": "t1",
		"detail":  strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900, "envelope must fit the NOTIFY limit")

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, EventTypeTaskEvent, envelope["type"])
	assert.Equal(t, "t1", envelope["task_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "detail")
}

func TestInjectDBEventID(t *testing.T) {
	payload := []byte(`{"type":"task.status","task_id":"t1","status":"planning"}`)
	out, err := injectDBEventIDAndTruncate(payload, 42)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(42), m["db_event_id"])
	assert.Equal(t, "planning", m["status"])
}

func TestInjectDBEventID_TruncationKeepsCursor(t *testing.T) {
	big := map[string]any{
		"type":    EventTypeTaskEvent,
		"task_id": "t1",
		"detail":  strings.Repeat("y", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(bigJSON, 7)
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, true, envelope["truncated"])
	assert.Equal(t, float64(7), envelope["db_event_id"], "catchup cursor must survive truncation")
}
