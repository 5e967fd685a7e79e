package models

import "ctchen222/Tic-Tac-Toe-Minimax/internal/game"

// MoveRequest asks for the computer's reply on a board, row-major.
type MoveRequest struct {
	Board []game.PlayerMark `json:"board" validate:"len=9,dive,mark"`
}

// MoveResponse carries the chosen cell and the board after it is played.
type MoveResponse struct {
	Cell    int               `json:"cell"`
	Board   []game.PlayerMark `json:"board"`
	Outcome string            `json:"outcome"`
}
