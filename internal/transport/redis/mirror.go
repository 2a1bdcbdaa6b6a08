// Package redis mirrors the broadcast stream onto redis pub/sub channels so
// out-of-process consumers (dashboards, overlays) can follow a match without
// holding a websocket. The mirror carries no state and persists nothing.
package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/engine"
)

const (
	// EventsChannel receives every broadcast event; targeted events go to
	// EventsChannel + ":" + connection id.
	EventsChannel = "quiz:events"

	mirrorBufferSize = 256
	publishTimeout   = time.Second
)

type envelope struct {
	Event   string          `json:"event"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

type outbound struct {
	channel string
	data    []byte
}

// Mirror decorates an engine.Publisher: events pass straight through to the
// wrapped publisher and are copied, in order, onto redis channels by a
// single forwarding goroutine. Marshaling happens synchronously, while the
// engine still holds its mutex, but redis I/O never blocks the caller; when
// the buffer is full the copy is dropped.
type Mirror struct {
	logger *slog.Logger
	client *redis.Client
	next   engine.Publisher

	events chan outbound
	done   chan struct{}
}

func NewMirror(ctx context.Context, logger *slog.Logger, addr string, next engine.Publisher) (*Mirror, error) {
	client := redis.NewClient(&redis.Options{
		Addr: addr,
	})

	if _, err := client.Ping(ctx).Result(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	mirror := &Mirror{
		logger: logger.With("component", "redis-mirror"),
		client: client,
		next:   next,
		events: make(chan outbound, mirrorBufferSize),
		done:   make(chan struct{}),
	}

	go mirror.forward()

	return mirror, nil
}

func (that *Mirror) Publish(event string, payload any) {
	that.next.Publish(event, payload)
	that.mirror(EventsChannel, event, payload)
}

func (that *Mirror) PublishTo(id, event string, payload any) {
	that.next.PublishTo(id, event, payload)
	that.mirror(EventsChannel+":"+id, event, payload)
}

// Close stops the forwarding goroutine and closes the redis connection.
func (that *Mirror) Close() error {
	close(that.done)
	return that.client.Close()
}

func (that *Mirror) mirror(channel, event string, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		that.logger.Error("failed to marshal payload", "event", event, "error", err)
		return
	}

	data, err := json.Marshal(envelope{Event: event, Payload: raw})
	if err != nil {
		that.logger.Error("failed to marshal envelope", "event", event, "error", err)
		return
	}

	select {
	case that.events <- outbound{channel: channel, data: data}:
	default:
		that.logger.Warn("mirror buffer full, event dropped", "event", event)
	}
}

func (that *Mirror) forward() {
	for {
		select {
		case <-that.done:
			return
		case out := <-that.events:
			ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
			if err := that.client.Publish(ctx, out.channel, out.data).Err(); err != nil {
				that.logger.Warn("failed to publish event", "channel", out.channel, "error", err)
			}
			cancel()
		}
	}
}
