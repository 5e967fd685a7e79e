package bot

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

// ErrNoMoves is returned when the computer is asked to move on a finished board.
var ErrNoMoves = errors.New("no moves available")

var (
	tracer = otel.Tracer("bot")
	meter  = otel.Meter("bot")
)

// BotMoveCalculator implements the room.MoveCalculator interface with a full minimax search.
type BotMoveCalculator struct {
	nodes    metric.Int64Histogram
	duration metric.Float64Histogram
}

// NewBotMoveCalculator creates a calculator recording search metrics on the global meter provider.
func NewBotMoveCalculator() *BotMoveCalculator {
	c := &BotMoveCalculator{}
	var err error
	c.nodes, err = meter.Int64Histogram("bot.search.nodes",
		metric.WithDescription("Positions visited per computer move"))
	if err != nil {
		otel.Handle(err)
	}
	c.duration, err = meter.Float64Histogram("bot.search.duration",
		metric.WithDescription("Time spent searching per computer move"),
		metric.WithUnit("ms"))
	if err != nil {
		otel.Handle(err)
	}
	return c
}

// CalculateNextMove searches the board and returns the computer's cell.
func (c *BotMoveCalculator) CalculateNextMove(ctx context.Context, board game.Board) (int, error) {
	ctx, span := tracer.Start(ctx, "bot.CalculateNextMove", trace.WithAttributes(
		attribute.String("board", board.String()),
	))
	defer span.End()

	if game.Evaluate(board).Finished() {
		span.RecordError(ErrNoMoves)
		span.SetStatus(codes.Error, "Board already finished")
		return -1, ErrNoMoves
	}

	start := time.Now()
	var s searcher
	move, score := s.bestMove(board)
	elapsed := float64(time.Since(start).Microseconds()) / 1000

	if c.nodes != nil {
		c.nodes.Record(ctx, int64(s.nodes))
	}
	if c.duration != nil {
		c.duration.Record(ctx, elapsed)
	}

	span.SetAttributes(
		attribute.Int("move.cell", move),
		attribute.Int("move.score", score),
		attribute.Int("search.nodes", s.nodes),
	)
	slog.DebugContext(ctx, "computer move calculated", "board", board.String(), "move.cell", move, "move.score", score, "search.nodes", s.nodes)
	return move, nil
}
