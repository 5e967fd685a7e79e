package proto

import "ctchen222/Tic-Tac-Toe-Minimax/internal/game"

// Message types
const (
	TypeMove         = "move"
	TypeAssignment   = "assignment"
	TypeUpdate       = "update"
	TypeComputerMove = "computer_move"
	TypeInvalidMove  = "invalid_move"
	TypeGameOver     = "game_over"
	TypeError        = "error"
)

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type     string `json:"type" validate:"required,eq=move"`
	Position *int   `json:"position" validate:"required"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type     string            `json:"type"`
	Reason   string            `json:"reason,omitempty"`
	Board    []game.PlayerMark `json:"board,omitempty"`
	Next     game.PlayerMark   `json:"next,omitempty"`
	Winner   game.PlayerMark   `json:"winner,omitempty"`
	Outcome  string            `json:"outcome,omitempty"`
	Position *int              `json:"position,omitempty"`
}

// PlayerAssignmentMessage informs a player of their mark and how to resume the game.
type PlayerAssignmentMessage struct {
	Type      string          `json:"type"`
	PlayerID  string          `json:"playerId,omitempty"`
	Mark      game.PlayerMark `json:"mark"`
	SessionID string          `json:"sessionId"`
	Token     string          `json:"token"`
}
