package room

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/bot"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/player"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/player/mocks"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

// scriptedMoves returns each move in turn from ReadMove.
func scriptedMoves(moves ...int) func(context.Context, game.Board) (int, error) {
	return func(context.Context, game.Board) (int, error) {
		if len(moves) == 0 {
			return -1, io.EOF
		}
		m := moves[0]
		moves = moves[1:]
		return m, nil
	}
}

func TestRoom_PlaysToDraw(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	sessions := repository.NewMemorySessionRepository(time.Minute)

	conn.EXPECT().ShowBoard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	conn.EXPECT().ReadMove(gomock.Any(), gomock.Any()).DoAndReturn(scriptedMoves(0, 1, 4, 6, 5, 8)).Times(6)
	conn.EXPECT().Reject(gomock.Any(), 4, gomock.Any()).DoAndReturn(func(_ context.Context, _ int, reason error) error {
		assert.ErrorIs(t, reason, game.ErrOccupied)
		return nil
	})
	gomock.InOrder(
		conn.EXPECT().ComputerMoved(gomock.Any(), 4).Return(nil),
		conn.EXPECT().ComputerMoved(gomock.Any(), 2).Return(nil),
		conn.EXPECT().ComputerMoved(gomock.Any(), 3).Return(nil),
		conn.EXPECT().ComputerMoved(gomock.Any(), 7).Return(nil),
	)
	conn.EXPECT().Announce(gomock.Any(), game.Draw, gomock.Any()).Return(nil)

	r := NewRoom("room-1", player.NewPlayer("p1", conn), game.NewGame(game.FirstTurnX), bot.NewBotMoveCalculator(), sessions)
	outcome, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.Draw, outcome)
	assert.True(t, r.Board().IsFull())

	_, err = sessions.FindByID(context.Background(), "room-1")
	assert.ErrorIs(t, err, repository.ErrSessionNotFound, "finished games are not kept")
}

func TestRoom_ComputerWins(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)

	// X{1,2,3} O{4,8}, computer to move: 0 completes the diagonal and blocks the top row.
	b := game.Board{}.With(1, game.PlayerX).With(2, game.PlayerX).With(3, game.PlayerX).With(4, game.PlayerO).With(8, game.PlayerO)
	conn.EXPECT().ShowBoard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).Times(2)
	conn.EXPECT().ComputerMoved(gomock.Any(), 0).Return(nil)
	conn.EXPECT().Announce(gomock.Any(), game.OWins, gomock.Any()).Return(nil)

	r := NewRoom("room-2", player.NewPlayer("p1", conn), game.Resume(b, game.PlayerO), bot.NewBotMoveCalculator(), repository.NewMemorySessionRepository(time.Minute))
	outcome, err := r.Run(context.Background())
	require.NoError(t, err)
	assert.Equal(t, game.OWins, outcome)
}

func TestRoom_ConnectionLostKeepsSession(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	sessions := repository.NewMemorySessionRepository(time.Minute)

	conn.EXPECT().ShowBoard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	conn.EXPECT().ReadMove(gomock.Any(), gomock.Any()).DoAndReturn(scriptedMoves(0)).Times(2)
	conn.EXPECT().ComputerMoved(gomock.Any(), 4).Return(nil)

	r := NewRoom("room-3", player.NewPlayer("p1", conn), game.NewGame(game.FirstTurnX), bot.NewBotMoveCalculator(), sessions)
	_, err := r.Run(context.Background())
	assert.ErrorIs(t, err, io.EOF)

	s, err := sessions.FindByID(context.Background(), "room-3")
	require.NoError(t, err)
	assert.Equal(t, game.PlayerX, s.NextTurn)
	assert.Equal(t, game.PlayerX, s.Board.At(0))
	assert.Equal(t, game.PlayerO, s.Board.At(4))
}

type failingCalculator struct{}

func (failingCalculator) CalculateNextMove(context.Context, game.Board) (int, error) {
	return -1, errors.New("boom")
}

func TestRoom_CalculatorError(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)
	conn.EXPECT().ShowBoard(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	r := NewRoom("room-4", player.NewPlayer("p1", conn), game.NewGame(game.FirstTurnO), failingCalculator{}, repository.NewMemorySessionRepository(time.Minute))
	_, err := r.Run(context.Background())
	assert.ErrorContains(t, err, "boom")
}

func TestRoom_ContextCancelled(t *testing.T) {
	ctrl := gomock.NewController(t)
	conn := mocks.NewMockConnection(ctrl)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	r := NewRoom("room-5", player.NewPlayer("p1", conn), game.NewGame(game.FirstTurnX), bot.NewBotMoveCalculator(), repository.NewMemorySessionRepository(time.Minute))
	_, err := r.Run(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}
