package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("repository.session")

// ErrSessionNotFound is returned when a session has expired, finished or never existed.
var ErrSessionNotFound = errors.New("session not found")

// ErrCorruptSession is returned when a stored session cannot be decoded into a playable game.
var ErrCorruptSession = errors.New("stored session is corrupt")

// Redis hash fields
const (
	FieldBoard    = "board"
	FieldNextTurn = "next_turn"
	FieldPlayerID = "player_id"
)

// Session is the state of one in-progress game. It lives only until the game ends.
type Session struct {
	ID       string
	PlayerID string
	Board    game.Board
	NextTurn game.PlayerMark
}

// SessionRepository defines the interface for in-progress game storage.
type SessionRepository interface {
	Save(ctx context.Context, s *Session) error
	FindByID(ctx context.Context, id string) (*Session, error)
	Delete(ctx context.Context, id string) error
}

type redisSessionRepository struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewSessionRepository creates a new Redis-based SessionRepository. Sessions
// expire ttl after their last save.
func NewSessionRepository(rdb *redis.Client, ttl time.Duration) SessionRepository {
	return &redisSessionRepository{rdb: rdb, ttl: ttl}
}

func sessionKey(id string) string {
	return fmt.Sprintf("session:%s", id)
}

// Save writes the session hash and refreshes its expiry.
func (r *redisSessionRepository) Save(ctx context.Context, s *Session) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Save", trace.WithAttributes(
		attribute.String("session.id", s.ID),
	))
	defer span.End()

	boardJSON, err := json.Marshal(s.Board.Cells())
	if err != nil {
		return fmt.Errorf("failed to marshal board: %w", err)
	}

	key := sessionKey(s.ID)
	pipe := r.rdb.TxPipeline()
	pipe.HSet(ctx, key,
		FieldBoard, boardJSON,
		FieldNextTurn, string(s.NextTurn),
		FieldPlayerID, s.PlayerID,
	)
	pipe.Expire(ctx, key, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to save session in redis: %w", err)
	}
	return nil
}

// FindByID retrieves a session from Redis.
func (r *redisSessionRepository) FindByID(ctx context.Context, id string) (*Session, error) {
	ctx, span := tracer.Start(ctx, "SessionRepository.FindByID", trace.WithAttributes(
		attribute.String("session.id", id),
	))
	defer span.End()

	data, err := r.rdb.HGetAll(ctx, sessionKey(id)).Result()
	if err != nil {
		span.RecordError(err)
		return nil, fmt.Errorf("failed to get session from redis: %w", err)
	}
	if len(data) == 0 {
		return nil, ErrSessionNotFound
	}

	s, err := sessionFromHash(id, data)
	if err != nil {
		span.RecordError(err)
		return nil, err
	}
	return s, nil
}

// sessionFromHash decodes the hash written by Save.
func sessionFromHash(id string, data map[string]string) (*Session, error) {
	var cells []game.PlayerMark
	if err := json.Unmarshal([]byte(data[FieldBoard]), &cells); err != nil {
		return nil, fmt.Errorf("%w: board: %v", ErrCorruptSession, err)
	}
	board, err := game.BoardFromCells(cells)
	if err != nil {
		return nil, fmt.Errorf("%w: board: %v", ErrCorruptSession, err)
	}

	next := game.PlayerMark(data[FieldNextTurn])
	if next != game.PlayerX && next != game.PlayerO {
		return nil, fmt.Errorf("%w: next turn %q", ErrCorruptSession, next)
	}

	return &Session{
		ID:       id,
		PlayerID: data[FieldPlayerID],
		Board:    board,
		NextTurn: next,
	}, nil
}

// Delete removes a session from Redis.
func (r *redisSessionRepository) Delete(ctx context.Context, id string) error {
	ctx, span := tracer.Start(ctx, "SessionRepository.Delete", trace.WithAttributes(
		attribute.String("session.id", id),
	))
	defer span.End()

	if err := r.rdb.Del(ctx, sessionKey(id)).Err(); err != nil {
		span.RecordError(err)
		return fmt.Errorf("failed to delete session from redis: %w", err)
	}
	return nil
}
