package bot

import (
	"math"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
)

// Scores are always from the computer's point of view.
const (
	scoreComputerWin = 1
	scoreHumanWin    = -1
	scoreDraw        = 0
)

// terminalScore maps a finished outcome to its score. ok is false while play continues.
func terminalScore(b game.Board) (score int, ok bool) {
	switch game.CheckWin(b) {
	case game.OWins:
		return scoreComputerWin, true
	case game.XWins:
		return scoreHumanWin, true
	}
	if game.CheckDraw(b) {
		return scoreDraw, true
	}
	return 0, false
}

// searcher counts visited positions for one search.
type searcher struct {
	nodes int
}

// Minimax scores b by exploring every continuation. maximizing is true when the
// computer (O) is to move.
func Minimax(b game.Board, maximizing bool) int {
	var s searcher
	return s.minimax(b, maximizing)
}

// ComputerMove returns the best cell for the computer. Ties keep the lowest
// cell index. b must have an empty cell.
func ComputerMove(b game.Board) int {
	var s searcher
	move, _ := s.bestMove(b)
	return move
}

func (s *searcher) bestMove(b game.Board) (move, score int) {
	cells := b.EmptyCells()
	if len(cells) == 0 {
		panic("bot: ComputerMove called on a full board")
	}

	move, score = -1, math.MinInt
	for _, cell := range cells {
		got := s.minimax(b.With(cell, game.PlayerO), false)
		if got > score {
			move, score = cell, got
		}
	}
	return move, score
}

func (s *searcher) minimax(b game.Board, maximizing bool) int {
	s.nodes++
	if score, ok := terminalScore(b); ok {
		return score
	}

	if maximizing {
		best := math.MinInt
		for _, cell := range b.EmptyCells() {
			best = max(best, s.minimax(b.With(cell, game.PlayerO), false))
		}
		return best
	}

	best := math.MaxInt
	for _, cell := range b.EmptyCells() {
		best = min(best, s.minimax(b.With(cell, game.PlayerX), true))
	}
	return best
}
