// Package console plays a game on a text terminal: it renders the board and
// reads the human's moves line by line.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"

	"github.com/muesli/termenv"
)

const (
	welcome      = "Welcome to Tic Tac Toe"
	promptMove   = "Please enter a value: "
	invalidMove  = "Invalid move. Try again."
	rowSeparator = "--|---|---"
)

// Connection implements player.Connection over a reader and a terminal output.
type Connection struct {
	in  *bufio.Scanner
	out *termenv.Output
}

// NewConnection reads moves from r and writes to w. The color profile is
// detected from w unless opts override it.
func NewConnection(r io.Reader, w io.Writer, opts ...termenv.OutputOption) *Connection {
	return &Connection{
		in:  bufio.NewScanner(r),
		out: termenv.NewOutput(w, opts...),
	}
}

// Render draws the board as a 3x3 grid, empty cells showing their index.
func Render(out *termenv.Output, b game.Board) string {
	var sb strings.Builder
	for row := range 3 {
		if row > 0 {
			sb.WriteString(rowSeparator + "\n")
		}
		cells := make([]string, 3)
		for col := range 3 {
			cells[col] = renderCell(out, b, row*3+col)
		}
		sb.WriteString(strings.Join(cells, " | ") + "\n")
	}
	return sb.String()
}

func renderCell(out *termenv.Output, b game.Board, cell int) string {
	switch b.At(cell) {
	case game.PlayerX:
		return out.String("X").Foreground(out.Color("1")).Bold().String()
	case game.PlayerO:
		return out.String("O").Foreground(out.Color("4")).Bold().String()
	}
	return strconv.Itoa(cell)
}

func (c *Connection) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(c.out, format, args...)
	return err
}

// Welcome greets the player once, before the first board.
func (c *Connection) Welcome() error {
	return c.printf("%s\n", welcome)
}

func (c *Connection) ShowBoard(_ context.Context, board game.Board, next game.PlayerMark) error {
	if err := c.printf("%s", Render(c.out, board)); err != nil {
		return err
	}
	if next == game.None {
		return nil
	}
	return c.printf("%s's Chance\n", next)
}

// ReadMove prompts until a line holds a number. Range and occupancy are checked
// by the game; the caller reports those through Reject.
func (c *Connection) ReadMove(ctx context.Context, _ game.Board) (int, error) {
	for {
		if err := ctx.Err(); err != nil {
			return -1, err
		}
		if err := c.printf(promptMove); err != nil {
			return -1, err
		}
		if !c.in.Scan() {
			if err := c.in.Err(); err != nil {
				return -1, fmt.Errorf("failed to read move: %w", err)
			}
			return -1, io.EOF
		}
		cell, err := strconv.Atoi(strings.TrimSpace(c.in.Text()))
		if err != nil {
			if err := c.printf("%s\n", invalidMove); err != nil {
				return -1, err
			}
			continue
		}
		return cell, nil
	}
}

func (c *Connection) Reject(_ context.Context, _ int, _ error) error {
	return c.printf("%s\n", invalidMove)
}

func (c *Connection) ComputerMoved(_ context.Context, cell int) error {
	return c.printf("Computer selected position: %d\n", cell)
}

func (c *Connection) Announce(_ context.Context, outcome game.Outcome, _ game.Board) error {
	switch outcome {
	case game.XWins:
		return c.printf("X Won the match\n")
	case game.OWins:
		return c.printf("O Won the match\n")
	case game.Draw:
		return c.printf("It's a draw\n")
	}
	return nil
}

// Close is a no-op; the terminal belongs to the process.
func (c *Connection) Close() error {
	return nil
}
