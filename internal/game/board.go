package game

import (
	"fmt"
	"math/bits"
	"strings"
)

// PlayerMark represents the mark of a player (X, O) or an empty cell.
type PlayerMark string

const (
	None    PlayerMark = ""
	PlayerX PlayerMark = "X" // human
	PlayerO PlayerMark = "O" // computer

	// Board boundaries
	CellMin   = 0
	CellMax   = 8
	CellCount = 9
)

const fullMask uint16 = 0b111111111

// Board holds one ownership set per player, bit i standing for cell i.
// The sets are always disjoint. Board is a value: copies never share state.
type Board struct {
	x uint16
	o uint16
}

// Opponent returns the other player's mark.
func (m PlayerMark) Opponent() PlayerMark {
	switch m {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	}
	return None
}

// ValidCell reports whether cell is a board index.
func ValidCell(cell int) bool {
	return cell >= CellMin && cell <= CellMax
}

// At returns the mark occupying cell.
func (b Board) At(cell int) PlayerMark {
	bit := uint16(1) << cell
	switch {
	case b.x&bit != 0:
		return PlayerX
	case b.o&bit != 0:
		return PlayerO
	}
	return None
}

// IsEmpty reports whether cell is unclaimed.
func (b Board) IsEmpty(cell int) bool {
	return (b.x|b.o)&(1<<cell) == 0
}

// With returns a copy of b with cell claimed for mark.
// Claiming an occupied or out-of-range cell breaks the board invariant and panics.
func (b Board) With(cell int, mark PlayerMark) Board {
	if !ValidCell(cell) {
		panic(fmt.Sprintf("game: cell %d out of range", cell))
	}
	if !b.IsEmpty(cell) {
		panic(fmt.Sprintf("game: cell %d already claimed by %s", cell, b.At(cell)))
	}
	bit := uint16(1) << cell
	switch mark {
	case PlayerX:
		b.x |= bit
	case PlayerO:
		b.o |= bit
	default:
		panic(fmt.Sprintf("game: cannot claim cell %d for mark %q", cell, mark))
	}
	return b
}

// Without returns a copy of b with cell released from whichever set holds it.
func (b Board) Without(cell int) Board {
	mask := ^(uint16(1) << cell)
	b.x &= mask
	b.o &= mask
	return b
}

// EmptyCells lists the unclaimed cells in ascending order.
func (b Board) EmptyCells() []int {
	free := fullMask &^ (b.x | b.o)
	cells := make([]int, 0, bits.OnesCount16(free))
	for free != 0 {
		cells = append(cells, bits.TrailingZeros16(free))
		free &= free - 1
	}
	return cells
}

// IsFull reports whether every cell belongs to a player.
func (b Board) IsFull() bool {
	return b.x|b.o == fullMask
}

// Count returns the number of cells claimed by mark.
func (b Board) Count(mark PlayerMark) int {
	switch mark {
	case PlayerX:
		return bits.OnesCount16(b.x)
	case PlayerO:
		return bits.OnesCount16(b.o)
	}
	return bits.OnesCount16(fullMask &^ (b.x | b.o))
}

// Cells converts the board into one mark per cell, row-major.
func (b Board) Cells() []PlayerMark {
	cells := make([]PlayerMark, CellCount)
	for i := range cells {
		cells[i] = b.At(i)
	}
	return cells
}

// BoardFromCells builds a board from row-major marks as produced by Cells.
func BoardFromCells(cells []PlayerMark) (Board, error) {
	if len(cells) != CellCount {
		return Board{}, fmt.Errorf("board needs %d cells, got %d", CellCount, len(cells))
	}
	var b Board
	for i, mark := range cells {
		switch mark {
		case None:
		case PlayerX, PlayerO:
			b = b.With(i, mark)
		default:
			return Board{}, fmt.Errorf("cell %d: unknown mark %q", i, mark)
		}
	}
	return b, nil
}

// String renders the board compactly, e.g. "XO.|.X.|..O", for logs.
func (b Board) String() string {
	var sb strings.Builder
	for i := range CellCount {
		if i > 0 && i%3 == 0 {
			sb.WriteByte('|')
		}
		switch b.At(i) {
		case PlayerX:
			sb.WriteByte('X')
		case PlayerO:
			sb.WriteByte('O')
		default:
			sb.WriteByte('.')
		}
	}
	return sb.String()
}
