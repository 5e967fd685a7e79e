package player

//go:generate mockgen -source=player.go -destination=mocks/mock_connection.go -package=mocks

import (
	"context"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
)

// Connection abstracts how the human sees the game and enters moves:
// a terminal or a websocket.
type Connection interface {
	// ShowBoard presents the board and whose turn is next.
	ShowBoard(ctx context.Context, board game.Board, next game.PlayerMark) error
	// ReadMove blocks until the human picks a cell.
	ReadMove(ctx context.Context, board game.Board) (int, error)
	// Reject tells the human the last move was illegal and will be asked again.
	Reject(ctx context.Context, cell int, reason error) error
	// ComputerMoved reports the computer's choice.
	ComputerMoved(ctx context.Context, cell int) error
	// Announce reports the final outcome.
	Announce(ctx context.Context, outcome game.Outcome, board game.Board) error
	Close() error
}

// Player represents the human side of a room.
type Player struct {
	ID   string
	Mark game.PlayerMark
	Conn Connection
}

// NewPlayer creates a human player; humans always play X.
func NewPlayer(id string, conn Connection) *Player {
	return &Player{ID: id, Mark: game.PlayerX, Conn: conn}
}
