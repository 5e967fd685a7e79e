package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/auth"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/bot"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/config"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/console"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/db"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/hub"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/logger"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/player"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/repository"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/room"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/server"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/telemetry"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(os.Args[1:], os.Getenv)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Initialize telemetry before the logger so the otel log bridge has a provider.
	shutdown, err := telemetry.InitOtel(ctx, cfg.OTLPEndpoint, version)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			slog.Error("error shutting down telemetry", "error", err)
		}
	}()

	logger.Init(os.Stderr, cfg.SlogLevel())
	if cfg.GeneratedSecret {
		slog.Warn("no session token secret configured, using a random one; tokens will not survive a restart")
	}

	sessions, closeSessions, err := newSessionRepository(ctx, cfg)
	if err != nil {
		return err
	}
	defer closeSessions()

	calculator := bot.NewBotMoveCalculator()

	if cfg.Mode == config.ModeConsole {
		return playConsole(ctx, cfg, calculator, sessions)
	}
	return serve(ctx, cfg, calculator, sessions)
}

func newSessionRepository(ctx context.Context, cfg *config.Config) (repository.SessionRepository, func(), error) {
	if cfg.RedisAddr == "" {
		slog.Info("storing sessions in memory")
		return repository.NewMemorySessionRepository(cfg.SessionTTL), func() {}, nil
	}

	rdb, err := db.NewRedisClient(ctx, cfg.RedisAddr)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize redis: %w", err)
	}
	slog.Info("storing sessions in redis", "redis.addr", cfg.RedisAddr)
	closeFn := func() {
		if err := rdb.Close(); err != nil {
			slog.Warn("failed to close redis client", "error", err)
		}
	}
	return repository.NewSessionRepository(rdb, cfg.SessionTTL), closeFn, nil
}

func playConsole(ctx context.Context, cfg *config.Config, calculator room.MoveCalculator, sessions repository.SessionRepository) error {
	conn := console.NewConnection(os.Stdin, os.Stdout)
	if err := conn.Welcome(); err != nil {
		return err
	}
	human := player.NewPlayer(uuid.NewString(), conn)
	r := room.NewRoom(uuid.NewString(), human, game.NewGame(cfg.First()), calculator, sessions)
	defer r.Close()

	// Reading stdin cannot be interrupted, so an interrupt abandons the game.
	done := make(chan error, 1)
	go func() {
		_, err := r.Run(ctx)
		done <- err
	}()

	select {
	case err := <-done:
		if errors.Is(err, io.EOF) {
			return nil
		}
		return err
	case <-ctx.Done():
		slog.Info("game interrupted", "room.id", r.ID)
		return nil
	}
}

func serve(ctx context.Context, cfg *config.Config, calculator room.MoveCalculator, sessions repository.SessionRepository) error {
	gin.SetMode(gin.ReleaseMode)

	hubCtx, stopHub := context.WithCancel(context.Background())
	h := hub.NewHub()
	go h.Run(hubCtx)

	srv := server.NewServer(h, server.Options{
		MoveController: controller.NewMoveController(calculator),
		Calculator:     calculator,
		Sessions:       sessions,
		Tokens:         auth.NewTokenIssuer([]byte(cfg.JWTSecret), cfg.SessionTTL),
		FirstTurn:      cfg.First(),
	})

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: srv.Engine(),
	}

	errCh := make(chan error, 1)
	go func() {
		slog.Info("http server started", "addr", cfg.Addr, "version", version)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		stopHub()
		<-h.Done()
		return fmt.Errorf("http server failed: %w", err)
	}

	slog.Info("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Websocket games are hijacked connections that Shutdown does not wait
	// for; stopping the hub closes them.
	stopHub()
	<-h.Done()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	slog.Info("server exiting")
	return nil
}
