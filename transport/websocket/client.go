package websocket

import (
	"log/slog"
	"sync"
	"time"

	"github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 4096
	sendBufferSize = 256
)

// Client is one websocket connection with the usual read/write pumps.
// Outbound delivery is fire-and-forget: a slow consumer's buffer fills up
// and messages are dropped, never blocking the sender.
type Client struct {
	id     string
	conn   *websocket.Conn
	server *Server
	logger *slog.Logger

	sendCh chan []byte
	done   chan struct{}

	mu     sync.Mutex
	closed bool
}

func newClient(id string, conn *websocket.Conn, server *Server, logger *slog.Logger) *Client {
	return &Client{
		id:     id,
		conn:   conn,
		server: server,
		logger: logger.With("connection", id),
		sendCh: make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
}

func (that *Client) send(data []byte) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	select {
	case that.sendCh <- data:
	default:
		that.logger.Warn("send buffer full, message dropped")
	}
}

func (that *Client) close() {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.closed {
		return
	}

	that.closed = true
	close(that.done)
	_ = that.conn.Close()
}

// run blocks in the read pump until the connection drops.
func (that *Client) run() {
	go that.writePump()
	that.readPump()
}

func (that *Client) readPump() {
	defer func() {
		that.server.disconnected(that.id)
		that.close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, data, err := that.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				that.logger.Debug("read failed", "error", err)
			}
			return
		}

		if err := that.server.dispatch(that.id, data); err != nil {
			that.logger.Warn("failed to process message", "error", err)
		}
	}
}

func (that *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case <-that.done:
			return
		case data := <-that.sendCh:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.TextMessage, data); err != nil {
				return
			}
		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
