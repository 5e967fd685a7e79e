package controller

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/api/models"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/bot"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/validator"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

var tracer = otel.Tracer("controller")

var errMarkCounts = errors.New("board has impossible mark counts")

type MoveCalculator interface {
	CalculateNextMove(ctx context.Context, board game.Board) (int, error)
}

type MoveController struct {
	calculator MoveCalculator
}

func NewMoveController(calculator MoveCalculator) *MoveController {
	return &MoveController{calculator: calculator}
}

// NextMove answers with the computer's reply for the posted board. The
// computer plays O, so O must be the side to move.
func (mc *MoveController) NextMove(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "controller.NextMove")
	defer span.End()

	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	if err := validator.GetValidator().Struct(req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	board, err := game.BoardFromCells(req.Board)
	if err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}
	span.SetAttributes(attribute.String("game.board", board.String()))

	x, o := board.Count(game.PlayerX), board.Count(game.PlayerO)
	if x != o && x != o+1 {
		response.ErrorResponse(c, http.StatusBadRequest, errMarkCounts.Error())
		return
	}
	if outcome := game.Evaluate(board); outcome.Finished() {
		response.ErrorResponse(c, http.StatusUnprocessableEntity, "game is over: "+outcome.String())
		return
	}

	cell, err := mc.calculator.CalculateNextMove(ctx, board)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Move calculation failed")
		if errors.Is(err, bot.ErrNoMoves) {
			response.ErrorResponse(c, http.StatusUnprocessableEntity, err.Error())
			return
		}
		slog.ErrorContext(ctx, "failed to calculate move", "board", board.String(), "error", err)
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to calculate move")
		return
	}

	after := board.With(cell, game.PlayerO)
	span.SetAttributes(attribute.Int("move.cell", cell))
	response.SuccessResponse(c, models.MoveResponse{
		Cell:    cell,
		Board:   after.Cells(),
		Outcome: game.Evaluate(after).String(),
	})
}
