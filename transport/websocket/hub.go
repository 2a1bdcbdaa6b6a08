package websocket

import (
	"log/slog"
	"sync"
)

// Hub fans broadcasts out to every connected client. It implements
// engine.Publisher: payloads are marshaled once, synchronously, while the
// engine still holds its mutex and the snapshot cannot move; the resulting
// bytes go to per-client buffered channels, so delivery never blocks the
// serialized event path.
type Hub struct {
	logger *slog.Logger

	mu      sync.RWMutex
	clients map[string]*Client
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:  logger.With("component", "hub"),
		clients: make(map[string]*Client),
	}
}

func (that *Hub) register(client *Client) {
	that.mu.Lock()
	defer that.mu.Unlock()
	that.clients[client.id] = client
}

func (that *Hub) unregister(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()
	delete(that.clients, id)
}

// Publish sends an event to all connected clients.
func (that *Hub) Publish(event string, payload any) {
	data, err := encodeMessage(event, payload)
	if err != nil {
		that.logger.Error("failed to encode event", "event", event, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, client := range that.clients {
		client.send(data)
	}
}

// PublishTo sends an event to a single connection.
func (that *Hub) PublishTo(id, event string, payload any) {
	data, err := encodeMessage(event, payload)
	if err != nil {
		that.logger.Error("failed to encode event", "event", event, "error", err)
		return
	}

	that.mu.RLock()
	defer that.mu.RUnlock()

	if client, ok := that.clients[id]; ok {
		client.send(data)
	}
}
