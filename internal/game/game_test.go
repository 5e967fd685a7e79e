package game

import (
	"errors"
	"testing"
)

// boardOf builds a board from the cells each player holds.
func boardOf(x, o []int) Board {
	var b Board
	for _, c := range x {
		b = b.With(c, PlayerX)
	}
	for _, c := range o {
		b = b.With(c, PlayerO)
	}
	return b
}

func TestCheckWin(t *testing.T) {
	tests := []struct {
		name string
		x, o []int
		want Outcome
	}{
		{name: "No winner - empty board", want: NoWinner},
		{name: "No winner - partial board", x: []int{0}, o: []int{4}, want: NoWinner},
		{name: "X wins - first row", x: []int{0, 1, 2}, o: []int{4, 8}, want: XWins},
		{name: "O wins - second column", x: []int{0, 3}, o: []int{1, 4, 7}, want: OWins},
		{name: "X wins - main diagonal", x: []int{0, 4, 8}, o: []int{1, 2}, want: XWins},
		{name: "O wins - anti-diagonal", x: []int{0, 1}, o: []int{2, 4, 6}, want: OWins},
		{name: "No winner - full board (draw)", x: []int{0, 2, 3, 7, 8}, o: []int{1, 4, 5, 6}, want: NoWinner},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CheckWin(boardOf(tt.x, tt.o)); got != tt.want {
				t.Errorf("CheckWin() got = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCheckWinEveryLine(t *testing.T) {
	for _, line := range Lines {
		b := boardOf(line[:], nil)
		if got := CheckWin(b); got != XWins {
			t.Errorf("CheckWin(%v) for X line %v = %v", b, line, got)
		}
		b = boardOf(nil, line[:])
		if got := CheckWin(b); got != OWins {
			t.Errorf("CheckWin(%v) for O line %v = %v", b, line, got)
		}
	}
}

func TestCheckDraw(t *testing.T) {
	tests := []struct {
		name string
		x, o []int
		want bool
	}{
		{name: "Empty board is not a draw", want: false},
		{name: "Partial board is not a draw", x: []int{0}, o: []int{4}, want: false},
		{name: "Full board with no line is a draw", x: []int{0, 2, 3, 7, 8}, o: []int{1, 4, 5, 6}, want: true},
		{name: "Full board with winner is not a draw", x: []int{0, 1, 2, 5, 7}, o: []int{3, 4, 6, 8}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := boardOf(tt.x, tt.o)
			if got := CheckDraw(b); got != tt.want {
				t.Errorf("CheckDraw() got = %v, want %v", got, tt.want)
			}
			if CheckDraw(b) && CheckWin(b) != NoWinner {
				t.Errorf("board %v reports both a draw and a win", b)
			}
		})
	}
}

func TestEvaluate(t *testing.T) {
	if got := Evaluate(boardOf([]int{0, 4, 8}, []int{1, 2})); got != XWins {
		t.Errorf("Evaluate() = %v, want %v", got, XWins)
	}
	if got := Evaluate(boardOf([]int{0, 2, 3, 7, 8}, []int{1, 4, 5, 6})); got != Draw {
		t.Errorf("Evaluate() = %v, want %v", got, Draw)
	}
	if got := Evaluate(Board{}); got != NoWinner {
		t.Errorf("Evaluate() = %v, want %v", got, NoWinner)
	}
}

func TestNewGameFirstTurn(t *testing.T) {
	if g := NewGame(FirstTurnX); g.CurrentTurn != PlayerX {
		t.Errorf("NewGame(X).CurrentTurn = %v", g.CurrentTurn)
	}
	if g := NewGame(FirstTurnO); g.CurrentTurn != PlayerO {
		t.Errorf("NewGame(O).CurrentTurn = %v", g.CurrentTurn)
	}
}

func TestMove(t *testing.T) {
	g := NewGame(FirstTurnX)

	if err := g.Move(4); err != nil {
		t.Fatalf("Move(4) failed: %v", err)
	}
	if g.Board.At(4) != PlayerX {
		t.Errorf("cell 4 = %q, want X", g.Board.At(4))
	}
	if g.CurrentTurn != PlayerO {
		t.Errorf("CurrentTurn = %q, want O", g.CurrentTurn)
	}

	before := g.Board
	for _, cell := range []int{-1, 9, 42} {
		if err := g.Move(cell); !errors.Is(err, ErrOutOfRange) {
			t.Errorf("Move(%d) error = %v, want ErrOutOfRange", cell, err)
		}
	}
	if err := g.Move(4); !errors.Is(err, ErrOccupied) || !errors.Is(err, ErrIllegalMove) {
		t.Errorf("Move(4) on occupied cell error = %v, want ErrOccupied", err)
	}
	if g.Board != before || g.CurrentTurn != PlayerO {
		t.Errorf("illegal moves changed the game: board %v turn %v", g.Board, g.CurrentTurn)
	}
}

func TestMoveAfterWin(t *testing.T) {
	g := NewGame(FirstTurnX)
	for _, cell := range []int{0, 3, 1, 4, 2} {
		if err := g.Move(cell); err != nil {
			t.Fatalf("Move(%d) failed: %v", cell, err)
		}
	}
	if g.Winner != PlayerX {
		t.Fatalf("Winner = %q, want X", g.Winner)
	}
	if err := g.Move(8); !errors.Is(err, ErrGameOver) {
		t.Errorf("Move after win error = %v, want ErrGameOver", err)
	}
}

func TestResume(t *testing.T) {
	b := boardOf([]int{0, 1}, []int{4})
	g := Resume(b, PlayerO)
	if g.Board != b || g.CurrentTurn != PlayerO || g.Winner != None {
		t.Errorf("Resume() = %+v", g)
	}
}

func TestRandomlyChooseFirstPlayer(t *testing.T) {
	// Not a statistical test, only checks both marks show up.
	seenX := false
	seenO := false
	for i := 0; i < 100; i++ {
		player := randomlyChooseFirstPlayer()
		if player != PlayerX && player != PlayerO {
			t.Errorf("randomlyChooseFirstPlayer() returned invalid player: %v", player)
		}
		if player == PlayerX {
			seenX = true
		}
		if player == PlayerO {
			seenO = true
		}
	}

	if !seenX || !seenO {
		t.Errorf("randomlyChooseFirstPlayer() did not return both PlayerX and PlayerO over 100 runs. Seen X: %v, Seen O: %v", seenX, seenO)
	}
}
