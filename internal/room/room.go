package room

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/player"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/repository"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

var (
	tracer = otel.Tracer("room")
	meter  = otel.Meter("room")
)

// MoveCalculator defines an interface for an agent that can calculate the computer's move.
type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board) (int, error)
}

// Room runs one game between a human and the computer.
type Room struct {
	ID             string
	Human          *player.Player
	game           *game.Game
	moveCalculator MoveCalculator
	sessions       repository.SessionRepository
	finished       metric.Int64Counter
}

// NewRoom creates a room around g. The session is saved after every half-move
// and removed when the game ends.
func NewRoom(id string, human *player.Player, g *game.Game, calculator MoveCalculator, sessions repository.SessionRepository) *Room {
	finished, err := meter.Int64Counter("room.games.finished",
		metric.WithDescription("Games played to the end, by outcome"))
	if err != nil {
		otel.Handle(err)
	}
	return &Room{
		ID:             id,
		Human:          human,
		game:           g,
		moveCalculator: calculator,
		sessions:       sessions,
		finished:       finished,
	}
}

// Board returns the current board.
func (r *Room) Board() game.Board {
	return r.game.Board
}

// Run plays until the game ends, the human's connection fails or ctx is done.
// An interrupted game keeps its session so it can be resumed.
func (r *Room) Run(ctx context.Context) (game.Outcome, error) {
	ctx, span := tracer.Start(ctx, "room.Run", trace.WithAttributes(
		attribute.String("room.id", r.ID),
		attribute.String("player.id", r.Human.ID),
	))
	defer span.End()

	if err := r.save(ctx); err != nil {
		slog.WarnContext(ctx, "failed to save initial session", "room.id", r.ID, "error", err)
	}

	for {
		if err := ctx.Err(); err != nil {
			return game.NoWinner, err
		}

		outcome := r.game.Outcome()
		next := r.game.CurrentTurn
		if outcome.Finished() {
			next = game.None
		}
		if err := r.Human.Conn.ShowBoard(ctx, r.game.Board, next); err != nil {
			return r.fail(span, fmt.Errorf("failed to show board: %w", err))
		}

		if outcome.Finished() {
			return outcome, r.finish(ctx, span, outcome)
		}

		var (
			moved bool
			err   error
		)
		if r.game.CurrentTurn == r.Human.Mark {
			moved, err = r.humanTurn(ctx)
		} else {
			moved, err = true, r.computerTurn(ctx)
		}
		if err != nil {
			return r.fail(span, err)
		}
		if moved {
			if err := r.save(ctx); err != nil {
				slog.WarnContext(ctx, "failed to save session", "room.id", r.ID, "error", err)
			}
		}
	}
}

// humanTurn reads one move. Illegal moves are reported back and leave the game
// untouched; moved is false in that case.
func (r *Room) humanTurn(ctx context.Context) (moved bool, err error) {
	cell, err := r.Human.Conn.ReadMove(ctx, r.game.Board)
	if err != nil {
		return false, fmt.Errorf("failed to read move: %w", err)
	}

	if err := r.game.Move(cell); err != nil {
		if !errors.Is(err, game.ErrIllegalMove) {
			return false, err
		}
		slog.InfoContext(ctx, "illegal move from player", "room.id", r.ID, "player.id", r.Human.ID, "move.cell", cell, "error", err)
		if err := r.Human.Conn.Reject(ctx, cell, err); err != nil {
			return false, fmt.Errorf("failed to reject move: %w", err)
		}
		return false, nil
	}

	slog.DebugContext(ctx, "player moved", "room.id", r.ID, "player.id", r.Human.ID, "move.cell", cell)
	return true, nil
}

func (r *Room) computerTurn(ctx context.Context) error {
	ctx, span := tracer.Start(ctx, "room.computerTurn", trace.WithAttributes(
		attribute.String("room.id", r.ID),
	))
	defer span.End()

	cell, err := r.moveCalculator.CalculateNextMove(ctx, r.game.Board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move calculation failed")
		return fmt.Errorf("failed to calculate computer move: %w", err)
	}
	if err := r.game.Move(cell); err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Computer produced an illegal move")
		return fmt.Errorf("computer move %d rejected: %w", cell, err)
	}

	span.SetAttributes(attribute.Int("move.cell", cell))
	return r.Human.Conn.ComputerMoved(ctx, cell)
}

func (r *Room) save(ctx context.Context) error {
	return r.sessions.Save(ctx, &repository.Session{
		ID:       r.ID,
		PlayerID: r.Human.ID,
		Board:    r.game.Board,
		NextTurn: r.game.CurrentTurn,
	})
}

func (r *Room) finish(ctx context.Context, span trace.Span, outcome game.Outcome) error {
	span.SetAttributes(attribute.String("game.outcome", outcome.String()))
	slog.InfoContext(ctx, "game finished", "room.id", r.ID, "player.id", r.Human.ID, "game.outcome", outcome.String(), "board", r.game.Board.String())

	if r.finished != nil {
		r.finished.Add(ctx, 1, metric.WithAttributes(attribute.String("game.outcome", outcome.String())))
	}
	if err := r.sessions.Delete(ctx, r.ID); err != nil {
		slog.WarnContext(ctx, "failed to delete finished session", "room.id", r.ID, "error", err)
	}
	if err := r.Human.Conn.Announce(ctx, outcome, r.game.Board); err != nil {
		return fmt.Errorf("failed to announce outcome: %w", err)
	}
	return nil
}

func (r *Room) fail(span trace.Span, err error) (game.Outcome, error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, "Room stopped before the game ended")
	return game.NoWinner, err
}

// Close closes the human's connection, unblocking any pending read.
func (r *Room) Close() error {
	return r.Human.Conn.Close()
}
