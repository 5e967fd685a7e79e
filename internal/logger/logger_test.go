package logger

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMultiHandler(t *testing.T) {
	var debugBuf, warnBuf bytes.Buffer
	debugHandler := slog.NewTextHandler(&debugBuf, &slog.HandlerOptions{Level: slog.LevelDebug})
	warnHandler := slog.NewTextHandler(&warnBuf, &slog.HandlerOptions{Level: slog.LevelWarn})

	log := slog.New(NewMultiHandler(debugHandler, warnHandler)).With("room.id", "r1").WithGroup("move")

	log.Info("computer moved", "cell", 4)
	log.Warn("illegal move", "cell", 9)

	assert.Contains(t, debugBuf.String(), "computer moved")
	assert.Contains(t, debugBuf.String(), "room.id=r1")
	assert.Contains(t, debugBuf.String(), "move.cell=4")
	assert.NotContains(t, warnBuf.String(), "computer moved")
	assert.Contains(t, warnBuf.String(), "illegal move")
}

func TestMultiHandlerEnabled(t *testing.T) {
	warnOnly := slog.NewTextHandler(&bytes.Buffer{}, &slog.HandlerOptions{Level: slog.LevelWarn})
	h := NewMultiHandler(warnOnly)

	assert.False(t, h.Enabled(context.Background(), slog.LevelInfo))
	assert.True(t, h.Enabled(context.Background(), slog.LevelError))
}
