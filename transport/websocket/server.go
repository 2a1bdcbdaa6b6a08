package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/apperror"
)

// gameEngine is the serialized event path every inbound message lands on.
type gameEngine interface {
	Join(id, name string, isAdmin bool)
	Leave(id string)
	SubmitAnswer(id, answer string)
	StartGame()
	StartNextGame()
	ResetGame()
}

type Server struct {
	logger   *slog.Logger
	engine   gameEngine
	hub      *Hub
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, engine gameEngine, hub *Hub) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		engine: engine,
		hub:    hub,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// Start - starts the WebSocket server and blocks until ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.handleUpgrade)

	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()
		_ = srv.Shutdown(context.Background())
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// handleUpgrade upgrades the connection and runs the client until it drops.
// Every connection gets a fresh id: a reconnect is a new participant.
func (that *Server) handleUpgrade(w http.ResponseWriter, r *http.Request) {
	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	id := uuid.New().String()
	client := newClient(id, conn, that, that.logger)
	that.hub.register(client)

	that.logger.Info("connection established", "id", id)

	client.run()
}

// disconnected is called by the read pump when a connection drops. The
// engine treats it as an implicit leave.
func (that *Server) disconnected(id string) {
	that.hub.unregister(id)
	that.engine.Leave(id)

	that.logger.Info("connection closed", "id", id)
}

// dispatch routes one inbound message into the engine.
func (that *Server) dispatch(id string, data []byte) error {
	var message Message
	if err := json.Unmarshal(data, &message); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidMessage, err)
	}

	switch message.Action {
	case ActionJoin:
		var payload JoinPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("%w: join payload: %w", apperror.ErrInvalidMessage, err)
		}
		that.engine.Join(id, payload.Name, payload.IsAdmin)
	case ActionSubmitAnswer:
		var payload AnswerPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			return fmt.Errorf("%w: answer payload: %w", apperror.ErrInvalidMessage, err)
		}
		that.engine.SubmitAnswer(id, payload.Answer)
	case ActionStartGame:
		that.engine.StartGame()
	case ActionStartNextGame:
		that.engine.StartNextGame()
	case ActionResetGame:
		that.engine.ResetGame()
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownAction, message.Action)
	}

	return nil
}
