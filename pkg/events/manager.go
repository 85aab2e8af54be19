package events

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/coder/websocket"
	"github.com/google/uuid"
)

// catchupLimit caps a single catchup response. Clients further behind
// get a catchup.overflow message and must reload over REST.
const catchupLimit = 200

// listenTimeout bounds the LISTEN command issued when a channel gains
// its first subscriber. A stalled connection must not wedge the
// subscribing client's read loop.
const listenTimeout = 10 * time.Second

// CatchupEvent is one row from the events mirror, replayed to a
// reconnecting client.
type CatchupEvent struct {
	ID      int
	Payload map[string]interface{}
}

// CatchupQuerier queries the events mirror for catchup after reconnect.
type CatchupQuerier interface {
	GetCatchupEvents(ctx context.Context, channel string, sinceID, limit int) ([]CatchupEvent, error)
}

// socket is the server-side state for one WebSocket client.
//
// subscriptions is owned by the connection's read-loop goroutine and is
// never touched from elsewhere, so it needs no lock. Broadcast routing
// uses the hub's channel index instead.
type socket struct {
	id     string
	conn   *websocket.Conn
	ctx    context.Context
	cancel context.CancelFunc

	subscriptions map[string]bool
}

// serverMessage is the control-frame shape sent to clients. Event
// payloads bypass it and go out as raw bytes from the publisher.
type serverMessage struct {
	Type    string `json:"type"`
	Channel string `json:"channel,omitempty"`
	ConnID  string `json:"connection_id,omitempty"`
	Message string `json:"message,omitempty"`
	HasMore bool   `json:"has_more,omitempty"`
}

// ConnectionManager fans NOTIFY payloads out to WebSocket subscribers
// and drives the subscribe/unsubscribe/catchup protocol. One instance
// per pod.
type ConnectionManager struct {
	mu      sync.RWMutex
	sockets map[string]*socket

	// chanMu guards the channel index: channel name to subscriber IDs.
	chanMu   sync.RWMutex
	channels map[string]map[string]bool

	catchup CatchupQuerier

	// The listener is wired after construction since it needs the
	// manager as its broadcast sink.
	listenerMu sync.RWMutex
	listener   *NotifyListener

	writeTimeout time.Duration
}

// NewConnectionManager creates a manager with the given catchup source
// and per-send write timeout.
func NewConnectionManager(catchup CatchupQuerier, writeTimeout time.Duration) *ConnectionManager {
	return &ConnectionManager{
		sockets:      make(map[string]*socket),
		channels:     make(map[string]map[string]bool),
		catchup:      catchup,
		writeTimeout: writeTimeout,
	}
}

// SetListener wires the NotifyListener used for dynamic LISTEN and
// UNLISTEN. Called once at startup.
func (m *ConnectionManager) SetListener(l *NotifyListener) {
	m.listenerMu.Lock()
	defer m.listenerMu.Unlock()
	m.listener = l
}

// HandleConnection owns one upgraded WebSocket until it closes. The
// HTTP handler calls this after the upgrade and blocks here.
func (m *ConnectionManager) HandleConnection(parentCtx context.Context, conn *websocket.Conn) {
	ctx, cancel := context.WithCancel(parentCtx)
	s := &socket{
		id:            uuid.New().String(),
		conn:          conn,
		ctx:           ctx,
		cancel:        cancel,
		subscriptions: make(map[string]bool),
	}

	m.mu.Lock()
	m.sockets[s.id] = s
	m.mu.Unlock()
	defer m.drop(s)

	m.send(s, serverMessage{Type: "connection.established", ConnID: s.id})

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			return
		}
		var msg ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			slog.Warn("Invalid WebSocket message", "connection_id", s.id, "error", err)
			continue
		}
		m.dispatch(ctx, s, &msg)
	}
}

// Broadcast delivers one event payload to every subscriber of channel.
// Implements the listener's Broadcaster sink.
func (m *ConnectionManager) Broadcast(channel string, event []byte) {
	m.chanMu.RLock()
	ids := make([]string, 0, len(m.channels[channel]))
	for id := range m.channels[channel] {
		ids = append(ids, id)
	}
	m.chanMu.RUnlock()
	if len(ids) == 0 {
		return
	}

	// Resolve sockets under the lock, send outside it. A slow client
	// can burn up to writeTimeout and must not stall registration.
	m.mu.RLock()
	targets := make([]*socket, 0, len(ids))
	for _, id := range ids {
		if s, ok := m.sockets[id]; ok {
			targets = append(targets, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range targets {
		if err := m.write(s, event); err != nil {
			slog.Warn("Failed to send to WebSocket client", "connection_id", s.id, "error", err)
		}
	}
}

// ActiveConnections reports the number of open sockets, for health.
func (m *ConnectionManager) ActiveConnections() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.sockets)
}

// subscriberCount lets tests poll for subscription effects.
func (m *ConnectionManager) subscriberCount(channel string) int {
	m.chanMu.RLock()
	defer m.chanMu.RUnlock()
	return len(m.channels[channel])
}

func (m *ConnectionManager) dispatch(ctx context.Context, s *socket, msg *ClientMessage) {
	switch msg.Action {
	case "subscribe":
		if msg.Channel == "" {
			m.send(s, serverMessage{Type: "error", Message: "channel is required for subscribe"})
			return
		}
		if err := m.subscribe(s, msg.Channel); err != nil {
			m.send(s, serverMessage{
				Type:    "subscription.error",
				Channel: msg.Channel,
				Message: "failed to subscribe to channel",
			})
			return
		}
		m.send(s, serverMessage{Type: "subscription.confirmed", Channel: msg.Channel})
		// Replay everything in the mirror so a late subscriber sees
		// the events published before it attached.
		m.replay(ctx, s, msg.Channel, 0)

	case "unsubscribe":
		if msg.Channel == "" {
			m.send(s, serverMessage{Type: "error", Message: "channel is required for unsubscribe"})
			return
		}
		m.unsubscribe(s, msg.Channel)

	case "catchup":
		if msg.Channel == "" {
			m.send(s, serverMessage{Type: "error", Message: "channel is required for catchup"})
			return
		}
		if msg.LastEventID != nil {
			m.replay(ctx, s, msg.Channel, *msg.LastEventID)
		}

	case "ping":
		m.send(s, serverMessage{Type: "pong"})
	}
}

// subscribe adds the socket to the channel index and, for the channel's
// first subscriber, issues LISTEN synchronously. LISTEN completing
// before the caller's replay starts closes the window where an event
// published between replay and LISTEN would be lost. A LISTEN failure
// is returned so the caller reports subscription.error instead of a
// false confirmation.
func (m *ConnectionManager) subscribe(s *socket, channel string) error {
	m.chanMu.Lock()
	first := false
	if _, ok := m.channels[channel]; !ok {
		m.channels[channel] = make(map[string]bool)
		first = true
	}
	m.channels[channel][s.id] = true
	m.chanMu.Unlock()

	if first {
		m.listenerMu.RLock()
		l := m.listener
		m.listenerMu.RUnlock()
		if l != nil {
			lctx, cancel := context.WithTimeout(context.Background(), listenTimeout)
			defer cancel()
			if err := l.Subscribe(lctx, channel); err != nil {
				slog.Error("Failed to LISTEN on channel", "channel", channel, "error", err)
				m.evictChannel(s, channel)
				return fmt.Errorf("LISTEN on channel %s: %w", channel, err)
			}
		}
	}

	s.subscriptions[channel] = true
	return nil
}

// evictChannel tears a channel down after a LISTEN failure.
//
// Between the index insert and Subscribe returning, other sockets may
// have joined the channel; they skipped LISTEN because the entry
// already existed and were confirmed. Those subscriptions are dead
// without the underlying LISTEN, so each affected socket gets a
// subscription.error, which the client must treat as authoritative:
// drop any events received for the channel and re-subscribe or fall
// back to REST polling. A stale s.subscriptions entry left behind is
// harmless since routing goes through the channel index.
func (m *ConnectionManager) evictChannel(triggering *socket, channel string) {
	m.chanMu.Lock()
	var affected []string
	for id := range m.channels[channel] {
		if id != triggering.id {
			affected = append(affected, id)
		}
	}
	delete(m.channels, channel)
	m.chanMu.Unlock()

	m.mu.RLock()
	targets := make([]*socket, 0, len(affected))
	for _, id := range affected {
		if s, ok := m.sockets[id]; ok {
			targets = append(targets, s)
		}
	}
	m.mu.RUnlock()

	for _, s := range targets {
		slog.Warn("Removing orphaned subscriber after LISTEN failure",
			"connection_id", s.id, "channel", channel)
		m.send(s, serverMessage{
			Type:    "subscription.error",
			Channel: channel,
			Message: "channel listen failed; subscription removed",
		})
	}
}

// unsubscribe removes the socket from the channel and, when the last
// subscriber leaves, schedules UNLISTEN. The UNLISTEN goroutine
// re-checks the index first so a rapid unsubscribe/resubscribe cycle
// does not drop an active LISTEN out from under the new subscriber.
func (m *ConnectionManager) unsubscribe(s *socket, channel string) {
	m.chanMu.Lock()
	if subs, ok := m.channels[channel]; ok {
		delete(subs, s.id)
		if len(subs) == 0 {
			delete(m.channels, channel)
			m.listenerMu.RLock()
			l := m.listener
			m.listenerMu.RUnlock()
			if l != nil {
				go func() {
					m.chanMu.RLock()
					_, resubscribed := m.channels[channel]
					m.chanMu.RUnlock()
					if resubscribed {
						return
					}
					if err := l.Unsubscribe(context.Background(), channel); err != nil {
						slog.Error("Failed to UNLISTEN channel", "channel", channel, "error", err)
					}
				}()
			}
		}
	}
	m.chanMu.Unlock()

	delete(s.subscriptions, channel)
}

// replay streams mirror rows after sinceID to the client in order.
func (m *ConnectionManager) replay(ctx context.Context, s *socket, channel string, sinceID int) {
	if m.catchup == nil {
		return
	}

	// Fetch one past the limit to learn whether the client is further
	// behind than a single response can cover.
	rows, err := m.catchup.GetCatchupEvents(ctx, channel, sinceID, catchupLimit+1)
	if err != nil {
		slog.Error("Catchup query failed", "channel", channel, "error", err)
		return
	}
	overflow := len(rows) > catchupLimit
	if overflow {
		rows = rows[:catchupLimit]
	}

	for _, row := range rows {
		// The stored payload lacks the cursor; the publisher only adds
		// db_event_id to the NOTIFY copy. Re-add it from the row ID.
		row.Payload["db_event_id"] = row.ID
		data, err := json.Marshal(row.Payload)
		if err != nil {
			continue
		}
		if err := m.write(s, data); err != nil {
			slog.Warn("Failed to send catchup event", "connection_id", s.id, "error", err)
			return
		}
	}

	if overflow {
		m.send(s, serverMessage{Type: "catchup.overflow", Channel: channel, HasMore: true})
	}
}

// drop unwinds a closed socket: channel index, socket map, context,
// and the underlying conn.
func (m *ConnectionManager) drop(s *socket) {
	for ch := range s.subscriptions {
		m.unsubscribe(s, ch)
	}

	m.mu.Lock()
	delete(m.sockets, s.id)
	m.mu.Unlock()

	s.cancel()
	_ = s.conn.Close(websocket.StatusNormalClosure, "")
}

func (m *ConnectionManager) send(s *socket, msg serverMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		slog.Warn("Failed to marshal WebSocket message", "connection_id", s.id, "error", err)
		return
	}
	if err := m.write(s, data); err != nil {
		slog.Warn("Failed to send WebSocket message", "connection_id", s.id, "error", err)
	}
}

func (m *ConnectionManager) write(s *socket, data []byte) error {
	wctx, cancel := context.WithTimeout(s.ctx, m.writeTimeout)
	defer cancel()
	return s.conn.Write(wctx, websocket.MessageText, data)
}
