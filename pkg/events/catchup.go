package events

import (
	"context"
	"fmt"

	"github.com/coderelay-ai/coderelay/ent"
	"github.com/coderelay-ai/coderelay/ent/event"
)

// EntCatchupQuerier implements CatchupQuerier over the events mirror.
type EntCatchupQuerier struct {
	client *ent.Client
}

// NewEntCatchupQuerier creates a CatchupQuerier backed by the ent client.
func NewEntCatchupQuerier(client *ent.Client) *EntCatchupQuerier {
	return &EntCatchupQuerier{client: client}
}

// GetCatchupEvents returns up to limit events on a channel with id
// greater than sinceID, in id order.
func (q *EntCatchupQuerier) GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error) {
	rows, err := q.client.Event.Query().
		Where(
			event.ChannelEQ(channel),
			event.IDGT(sinceID),
		).
		Order(ent.Asc(event.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query catchup events: %w", err)
	}

	result := make([]CatchupEvent, len(rows))
	for i, row := range rows {
		result[i] = CatchupEvent{
			ID:      row.ID,
			Payload: row.Payload,
		}
	}
	return result, nil
}
