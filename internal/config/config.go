package config

import (
	"flag"
	"fmt"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/validator"

	"github.com/google/uuid"
)

const (
	ModeConsole = "console"
	ModeServe   = "serve"
)

// Config holds every runtime option. Flags take precedence over environment variables.
type Config struct {
	Mode         string        `validate:"oneof=console serve"`
	Addr         string        `validate:"required"`
	FirstTurn    string        `validate:"oneof=X O random"`
	RedisAddr    string        `validate:"omitempty,hostname_port"`
	SessionTTL   time.Duration `validate:"gt=0"`
	JWTSecret    string        `validate:"min=16"`
	LogLevel     string        `validate:"oneof=debug info warn error"`
	OTLPEndpoint string        `validate:"omitempty,hostname_port"`

	// GeneratedSecret is set when no secret was configured and a random one is in use.
	GeneratedSecret bool `validate:"-"`
}

// Load parses args (without the program name) on top of environment defaults
// read through getenv, then validates the result.
func Load(args []string, getenv func(string) string) (*Config, error) {
	envOr := func(key, fallback string) string {
		if v := getenv(key); v != "" {
			return v
		}
		return fallback
	}

	ttl, err := time.ParseDuration(envOr("TTT_SESSION_TTL", "30m"))
	if err != nil {
		return nil, fmt.Errorf("invalid TTT_SESSION_TTL: %w", err)
	}

	cfg := &Config{}
	fs := flag.NewFlagSet("tictactoe", flag.ContinueOnError)
	fs.StringVar(&cfg.Mode, "mode", envOr("TTT_MODE", ModeConsole), "console: play in the terminal; serve: HTTP and websocket server")
	fs.StringVar(&cfg.Addr, "addr", envOr("TTT_ADDR", ":8080"), "listen address in serve mode")
	fs.StringVar(&cfg.FirstTurn, "first", envOr("TTT_FIRST", string(game.FirstTurnX)), "who moves first: X (human), O (computer) or random")
	fs.StringVar(&cfg.RedisAddr, "redis", getenv("REDIS_CONNSTRING"), "redis host:port for sessions; empty keeps them in memory")
	fs.DurationVar(&cfg.SessionTTL, "session-ttl", ttl, "how long an idle game can be resumed")
	fs.StringVar(&cfg.JWTSecret, "jwt-secret", getenv("TTT_JWT_SECRET"), "secret signing session tokens; generated when empty")
	fs.StringVar(&cfg.LogLevel, "log-level", envOr("TTT_LOG_LEVEL", "info"), "debug, info, warn or error")
	fs.StringVar(&cfg.OTLPEndpoint, "otlp-endpoint", getenv("OTEL_EXPORTER_OTLP_ENDPOINT"), "OTLP gRPC collector host:port; empty disables telemetry export")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if cfg.JWTSecret == "" {
		cfg.JWTSecret = uuid.NewString()
		cfg.GeneratedSecret = true
	}

	if err := validator.GetValidator().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

// SlogLevel converts LogLevel for slog handlers.
func (c *Config) SlogLevel() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// First returns who opens each game.
func (c *Config) First() game.FirstTurn {
	return game.FirstTurn(c.FirstTurn)
}
