package server

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/validator"
	"ctchen222/Tic-Tac-Toe-Minimax/pkg/proto"

	"github.com/gorilla/websocket"
)

const writeWait = 10 * time.Second

// wsConnection plays a game over a websocket using the proto messages.
type wsConnection struct {
	conn    *websocket.Conn
	writeMu sync.Mutex
	once    sync.Once
}

func newWSConnection(conn *websocket.Conn) *wsConnection {
	return &wsConnection{conn: conn}
}

func (c *wsConnection) writeJSON(v any) error {
	c.writeMu.Lock()
	defer c.writeMu.Unlock()
	if err := c.conn.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	return c.conn.WriteJSON(v)
}

func (c *wsConnection) ShowBoard(_ context.Context, board game.Board, next game.PlayerMark) error {
	return c.writeJSON(proto.ServerToClientMessage{
		Type:  proto.TypeUpdate,
		Board: board.Cells(),
		Next:  next,
	})
}

// ReadMove waits for the next move message. Malformed messages are answered
// with an error message and skipped.
func (c *wsConnection) ReadMove(ctx context.Context, _ game.Board) (int, error) {
	stop := context.AfterFunc(ctx, func() { c.Close() })
	defer stop()

	for {
		_, data, err := c.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return -1, ctx.Err()
			}
			return -1, err
		}

		var msg proto.ClientToServerMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			if err := c.sendError(fmt.Sprintf("malformed message: %v", err)); err != nil {
				return -1, err
			}
			continue
		}
		if err := validator.GetValidator().Struct(msg); err != nil {
			if err := c.sendError(fmt.Sprintf("invalid message: %v", err)); err != nil {
				return -1, err
			}
			continue
		}
		return *msg.Position, nil
	}
}

func (c *wsConnection) sendError(reason string) error {
	return c.writeJSON(proto.ServerToClientMessage{Type: proto.TypeError, Reason: reason})
}

func (c *wsConnection) Reject(_ context.Context, cell int, reason error) error {
	return c.writeJSON(proto.ServerToClientMessage{
		Type:     proto.TypeInvalidMove,
		Reason:   reason.Error(),
		Position: &cell,
	})
}

func (c *wsConnection) ComputerMoved(_ context.Context, cell int) error {
	return c.writeJSON(proto.ServerToClientMessage{
		Type:     proto.TypeComputerMove,
		Position: &cell,
	})
}

func (c *wsConnection) Announce(_ context.Context, outcome game.Outcome, board game.Board) error {
	return c.writeJSON(proto.ServerToClientMessage{
		Type:    proto.TypeGameOver,
		Board:   board.Cells(),
		Winner:  outcome.Winner(),
		Outcome: outcome.String(),
	})
}

// Close sends a close frame on a best-effort basis and closes the socket.
func (c *wsConnection) Close() error {
	var err error
	c.once.Do(func() {
		c.writeMu.Lock()
		_ = c.conn.WriteControl(websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(time.Second))
		c.writeMu.Unlock()
		err = c.conn.Close()
	})
	return err
}
