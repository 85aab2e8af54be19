package slack

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/task"
)

func TestNotifier_OnlyNotifiableStatuses(t *testing.T) {
	mock := &mockSlackAPI{}
	n := NewNotifier(newMockService(t, mock))

	ctx := context.Background()

	n.TaskTransitioned(ctx, &ent.Task{ID: "t1", Status: task.StatusCoding}, task.StatusPlanningDone)
	n.TaskTransitioned(ctx, &ent.Task{ID: "t1", Status: task.StatusTesting}, task.StatusCodingDone)
	assert.Empty(t, mock.postedThread, "intermediate statuses must not notify")

	n.TaskTransitioned(ctx, &ent.Task{ID: "t1", Status: task.StatusCompleted}, task.StatusPrCreated)
	assert.Len(t, mock.postedThread, 1)

	// Same-status updates (heartbeats, field writes) stay silent.
	n.TaskTransitioned(ctx, &ent.Task{ID: "t1", Status: task.StatusCompleted}, task.StatusCompleted)
	assert.Len(t, mock.postedThread, 1)
}

func TestNotifier_NilServiceIsNoOp(t *testing.T) {
	n := NewNotifier(nil)

	// Must not panic.
	n.TaskTransitioned(context.Background(),
		&ent.Task{ID: "t1", Status: task.StatusFailed}, task.StatusFixing)
	n.EventAppended(context.Background(), &ent.TaskEvent{})
}
