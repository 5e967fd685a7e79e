package config

import (
	"log/slog"
	"testing"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFrom(m map[string]string) func(string) string {
	return func(key string) string { return m[key] }
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(nil, envFrom(nil))
	require.NoError(t, err)

	assert.Equal(t, ModeConsole, cfg.Mode)
	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, game.FirstTurnX, cfg.First())
	assert.Empty(t, cfg.RedisAddr)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
	assert.True(t, cfg.GeneratedSecret)
	assert.GreaterOrEqual(t, len(cfg.JWTSecret), 16)
	assert.Equal(t, slog.LevelInfo, cfg.SlogLevel())
}

func TestLoadEnvAndFlags(t *testing.T) {
	env := envFrom(map[string]string{
		"TTT_MODE":         "serve",
		"TTT_FIRST":        "O",
		"REDIS_CONNSTRING": "localhost:6379",
		"TTT_SESSION_TTL":  "5m",
		"TTT_JWT_SECRET":   "a-very-long-test-secret",
		"TTT_LOG_LEVEL":    "warn",
	})

	cfg, err := Load([]string{"-addr", ":9090", "-log-level", "debug"}, env)
	require.NoError(t, err)

	assert.Equal(t, ModeServe, cfg.Mode)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, game.FirstTurnO, cfg.First())
	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 5*time.Minute, cfg.SessionTTL)
	assert.False(t, cfg.GeneratedSecret)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
}

func TestLoadInvalid(t *testing.T) {
	tests := []struct {
		name string
		args []string
		env  map[string]string
	}{
		{name: "Unknown mode", args: []string{"-mode", "tournament"}},
		{name: "Unknown first turn", args: []string{"-first", "Z"}},
		{name: "Short secret", args: []string{"-jwt-secret", "short"}},
		{name: "Bad redis address", args: []string{"-redis", "not an address"}},
		{name: "Zero session ttl", args: []string{"-session-ttl", "0s"}},
		{name: "Bad ttl env", env: map[string]string{"TTT_SESSION_TTL": "soon"}},
		{name: "Unknown flag", args: []string{"-difficulty", "hard"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(tt.args, envFrom(tt.env))
			assert.Error(t, err)
		})
	}
}
