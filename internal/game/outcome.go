package game

// Outcome describes the state of play on a board.
type Outcome int

const (
	NoWinner Outcome = iota // play continues
	XWins
	OWins
	Draw
)

// Lines holds the winning triples in evaluation order: rows, columns, diagonals.
var Lines = [8][3]int{
	{0, 1, 2}, {3, 4, 5}, {6, 7, 8},
	{0, 3, 6}, {1, 4, 7}, {2, 5, 8},
	{0, 4, 8}, {2, 4, 6},
}

var lineMasks = func() [8]uint16 {
	var masks [8]uint16
	for i, line := range Lines {
		for _, cell := range line {
			masks[i] |= 1 << cell
		}
	}
	return masks
}()

func (o Outcome) String() string {
	switch o {
	case XWins:
		return "X won"
	case OWins:
		return "O won"
	case Draw:
		return "draw"
	}
	return "in progress"
}

// Winner returns the mark that completed a line, or None.
func (o Outcome) Winner() PlayerMark {
	switch o {
	case XWins:
		return PlayerX
	case OWins:
		return PlayerO
	}
	return None
}

// Finished reports whether the outcome ends the game.
func (o Outcome) Finished() bool {
	return o != NoWinner
}

// CheckWin scans the lines in order and reports the first one a player has
// completed. It never returns Draw.
func CheckWin(b Board) Outcome {
	for _, mask := range lineMasks {
		if b.x&mask == mask {
			return XWins
		}
		if b.o&mask == mask {
			return OWins
		}
	}
	return NoWinner
}

// CheckDraw reports whether the board is full with no completed line.
func CheckDraw(b Board) bool {
	return CheckWin(b) == NoWinner && b.IsFull()
}

// Evaluate combines CheckWin and CheckDraw.
func Evaluate(b Board) Outcome {
	if o := CheckWin(b); o != NoWinner {
		return o
	}
	if CheckDraw(b) {
		return Draw
	}
	return NoWinner
}
