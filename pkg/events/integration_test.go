package events

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/coderelay-ai/coderelay/ent/task"
	testdb "github.com/coderelay-ai/coderelay/test/database"
	"github.com/coderelay-ai/coderelay/test/util"
)

// captureSink records broadcast payloads for assertions.
type captureSink struct {
	mu       sync.Mutex
	received []capturedEvent
}

type capturedEvent struct {
	channel string
	payload []byte
}

func (s *captureSink) Broadcast(channel string, event []byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.received = append(s.received, capturedEvent{channel: channel, payload: event})
}

func (s *captureSink) find(channel string) [][]byte {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out [][]byte
	for _, evt := range s.received {
		if evt.channel == channel {
			out = append(out, evt.payload)
		}
	}
	return out
}

// TestPublishAndListenRoundtrip exercises the full NOTIFY path: publish
// on one connection pool, receive on a dedicated LISTEN connection.
func TestPublishAndListenRoundtrip(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)
	ctx := context.Background()

	// Task row for the event's foreign key.
	created, err := dbClient.Client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(1).
		SetStatus(task.StatusPlanning).
		Save(ctx)
	require.NoError(t, err)

	sink := &captureSink{}
	listener := NewNotifyListener(
		util.AddSearchPathToConnString(shared.BaseConnStr(), shared.SchemaName()), sink)
	require.NoError(t, listener.Start(ctx))
	defer listener.Stop(context.Background())

	channel := TaskChannel(created.ID)
	require.NoError(t, listener.Subscribe(ctx, channel))

	publisher := NewEventPublisher(dbClient.DB())
	err = publisher.PublishTaskStatus(ctx, created.ID, TaskStatusPayload{
		BasePayload: BasePayload{
			Type:      EventTypeTaskStatus,
			TaskID:    created.ID,
			Timestamp: time.Now().Format(time.RFC3339Nano),
		},
		Status: string(task.StatusPlanning),
		From:   string(task.StatusNew),
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return len(sink.find(channel)) > 0
	}, 10*time.Second, 50*time.Millisecond, "NOTIFY payload should arrive on the task channel")

	var got map[string]any
	require.NoError(t, json.Unmarshal(sink.find(channel)[0], &got))
	assert.Equal(t, EventTypeTaskStatus, got["type"])
	assert.Equal(t, created.ID, got["task_id"])
	assert.Equal(t, "planning", got["status"])
	assert.NotNil(t, got["db_event_id"], "persistent publishes carry the catchup cursor")
}

// TestCatchupQuerier verifies reconnecting clients can replay persisted
// events by channel and cursor.
func TestCatchupQuerier(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	dbClient := shared.NewClient(t)
	ctx := context.Background()

	created, err := dbClient.Client.Task.Create().
		SetID(uuid.New().String()).
		SetRepo("acme/widgets").
		SetIssueNumber(2).
		SetStatus(task.StatusPlanning).
		Save(ctx)
	require.NoError(t, err)

	publisher := NewEventPublisher(dbClient.DB())
	channel := TaskChannel(created.ID)
	for i, status := range []task.Status{task.StatusPlanning, task.StatusPlanningDone, task.StatusCoding} {
		err := publisher.PublishTaskEvent(ctx, created.ID, TaskEventPayload{
			BasePayload: BasePayload{
				Type:      EventTypeTaskEvent,
				TaskID:    created.ID,
				Timestamp: time.Now().Format(time.RFC3339Nano),
			},
			EventID:   int64(i),
			EventType: "TASK_" + string(status),
		})
		require.NoError(t, err)
	}

	querier := NewEntCatchupQuerier(dbClient.Client)
	events, err := querier.GetCatchupEvents(ctx, channel, 0, 10)
	require.NoError(t, err)
	require.Len(t, events, 3)

	// Events come back in id order; a cursor past the first skips it.
	later, err := querier.GetCatchupEvents(ctx, channel, events[0].ID, 10)
	require.NoError(t, err)
	require.Len(t, later, 2)
	assert.Greater(t, later[0].ID, events[0].ID)
}
