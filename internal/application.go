package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/jonboulle/clockwork"

	"github.com/rocketscienceinc/quiz-royale-backend/internal/apperror"
	"github.com/rocketscienceinc/quiz-royale-backend/internal/config"
	"github.com/rocketscienceinc/quiz-royale-backend/internal/engine"
	redistransport "github.com/rocketscienceinc/quiz-royale-backend/internal/transport/redis"
	"github.com/rocketscienceinc/quiz-royale-backend/transport/rest"
	"github.com/rocketscienceinc/quiz-royale-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	rules, err := gameRules(conf.Game)
	if err != nil {
		return err
	}

	hub := websocket.NewHub(logger)

	var pub engine.Publisher = hub
	if addr := conf.Redis.GetRedisAddr(); addr != "" {
		mirror, err := redistransport.NewMirror(ctx, logger, addr, hub)
		if err != nil {
			return fmt.Errorf("could not start redis event mirror: %w", err)
		}
		defer func() {
			if err := mirror.Close(); err != nil {
				log.Error("could not close redis event mirror", "error", err)
			}
		}()
		pub = mirror

		log.Info("redis event mirror enabled", "addr", addr)
	}

	game := engine.New(logger, rules, clockwork.NewRealClock(), pub)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, game); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, game, hub)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}

func gameRules(conf config.Game) (engine.Rules, error) {
	var rules engine.Rules

	switch conf.Preset {
	case "classic":
		rules = engine.ClassicRules()
	case "hosted":
		rules = engine.HostedRules()
	default:
		return engine.Rules{}, fmt.Errorf("%w: %q", apperror.ErrUnknownPreset, conf.Preset)
	}

	if conf.Rounds > 0 {
		rules.RoundCap = conf.Rounds
	}

	return rules, nil
}
