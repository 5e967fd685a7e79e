package hub

import (
	"context"
	"log/slog"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/room"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

var meter = otel.Meter("hub")

// Hub tracks the rooms currently being played. All bookkeeping happens on the
// Run goroutine; other goroutines talk to it over channels.
type Hub struct {
	rooms      map[string]*room.Room
	register   chan *room.Room
	unregister chan *room.Room
	count      chan chan int
	done       chan struct{}
	active     metric.Int64UpDownCounter
}

// NewHub creates a new hub.
func NewHub() *Hub {
	active, err := meter.Int64UpDownCounter("hub.rooms.active",
		metric.WithDescription("Rooms with a game in progress"))
	if err != nil {
		otel.Handle(err)
	}
	return &Hub{
		rooms:      make(map[string]*room.Room),
		register:   make(chan *room.Room),
		unregister: make(chan *room.Room),
		count:      make(chan chan int),
		done:       make(chan struct{}),
		active:     active,
	}
}

// Run starts the hub. When ctx is done every remaining room's connection is
// closed, which ends its game loop.
func (h *Hub) Run(ctx context.Context) {
	defer close(h.done)

	for {
		select {
		case r := <-h.register:
			// A resumed session takes over its ID; the stale room's connection is closed.
			if old, ok := h.rooms[r.ID]; ok && old != r {
				if err := old.Close(); err != nil {
					slog.WarnContext(ctx, "failed to close replaced room", "room.id", r.ID, "error", err)
				}
				h.rooms[r.ID] = r
				slog.InfoContext(ctx, "room replaced by resumed session", "room.id", r.ID, "player.id", r.Human.ID, "rooms.active", len(h.rooms))
				continue
			}
			h.rooms[r.ID] = r
			h.addActive(ctx, 1)
			slog.InfoContext(ctx, "room opened", "room.id", r.ID, "player.id", r.Human.ID, "rooms.active", len(h.rooms))

		case r := <-h.unregister:
			// Only the registered instance leaves; a replaced room is already gone.
			if cur, ok := h.rooms[r.ID]; ok && cur == r {
				delete(h.rooms, r.ID)
				h.addActive(ctx, -1)
				slog.InfoContext(ctx, "room closed", "room.id", r.ID, "rooms.active", len(h.rooms))
			}

		case reply := <-h.count:
			reply <- len(h.rooms)

		case <-ctx.Done():
			for id, r := range h.rooms {
				if err := r.Close(); err != nil {
					slog.WarnContext(ctx, "failed to close room on shutdown", "room.id", id, "error", err)
				}
				delete(h.rooms, id)
				h.addActive(context.Background(), -1)
			}
			slog.InfoContext(ctx, "hub stopped")
			return
		}
	}
}

func (h *Hub) addActive(ctx context.Context, n int64) {
	if h.active != nil {
		h.active.Add(ctx, n)
	}
}

// Play registers r, runs its game and unregisters it when the game stops.
func (h *Hub) Play(ctx context.Context, r *room.Room) (game.Outcome, error) {
	select {
	case h.register <- r:
	case <-h.done:
		return game.NoWinner, context.Canceled
	}
	defer func() {
		select {
		case h.unregister <- r:
		case <-h.done:
		}
	}()
	return r.Run(ctx)
}

// Count returns the number of rooms in progress.
func (h *Hub) Count() int {
	reply := make(chan int, 1)
	select {
	case h.count <- reply:
		return <-reply
	case <-h.done:
		return 0
	}
}

// Done is closed once Run has returned.
func (h *Hub) Done() <-chan struct{} {
	return h.done
}
