package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
)

// ErrIllegalMove is the parent of every move rejection. Callers recover by
// asking the player again; the game is left untouched.
var ErrIllegalMove = errors.New("illegal move")

var (
	ErrOutOfRange = fmt.Errorf("%w: cell out of range", ErrIllegalMove)
	ErrOccupied   = fmt.Errorf("%w: cell already occupied", ErrIllegalMove)
	ErrGameOver   = fmt.Errorf("%w: game already finished", ErrIllegalMove)
)

// FirstTurn selects who opens the game.
type FirstTurn string

const (
	FirstTurnX      FirstTurn = "X"
	FirstTurnO      FirstTurn = "O"
	FirstTurnRandom FirstTurn = "random"
)

type Game struct {
	Board       Board
	CurrentTurn PlayerMark
	Winner      PlayerMark
}

func NewGame(first FirstTurn) *Game {
	turn := PlayerX
	switch first {
	case FirstTurnO:
		turn = PlayerO
	case FirstTurnRandom:
		turn = randomlyChooseFirstPlayer()
	}
	return &Game{CurrentTurn: turn}
}

// Resume rebuilds a game from a stored board and turn.
func Resume(b Board, next PlayerMark) *Game {
	g := &Game{Board: b, CurrentTurn: next}
	g.Winner = CheckWin(b).Winner()
	return g
}

// Move claims cell for the player whose turn it is and passes the turn.
func (g *Game) Move(cell int) error {
	if g.Outcome().Finished() {
		return ErrGameOver
	}
	if !ValidCell(cell) {
		return fmt.Errorf("%w: %d", ErrOutOfRange, cell)
	}
	if !g.Board.IsEmpty(cell) {
		return fmt.Errorf("%w: %d", ErrOccupied, cell)
	}

	g.Board = g.Board.With(cell, g.CurrentTurn)
	g.CurrentTurn = g.CurrentTurn.Opponent()
	g.Winner = CheckWin(g.Board).Winner()
	return nil
}

// Outcome evaluates the current board.
func (g *Game) Outcome() Outcome {
	return Evaluate(g.Board)
}

func randomlyChooseFirstPlayer() PlayerMark {
	if rand.IntN(2) == 0 {
		return PlayerX
	}
	return PlayerO
}
