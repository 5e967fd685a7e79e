package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"ctchen222/Tic-Tac-Toe-Minimax/internal/api/controller"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/api/response"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/auth"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/game"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/hub"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/player"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/repository"
	"ctchen222/Tic-Tac-Toe-Minimax/internal/room"
	"ctchen222/Tic-Tac-Toe-Minimax/pkg/proto"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

var tracer = otel.Tracer("server")

// Options holds what the server needs besides the hub.
type Options struct {
	MoveController *controller.MoveController
	Calculator     room.MoveCalculator
	Sessions       repository.SessionRepository
	Tokens         *auth.TokenIssuer
	FirstTurn      game.FirstTurn
}

type Server struct {
	hub      *hub.Hub
	opts     Options
	engine   *gin.Engine
	upgrader websocket.Upgrader
}

func NewServer(h *hub.Hub, opts Options) *Server {
	s := &Server{
		hub:  h,
		opts: opts,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.GET("/healthz", s.handleHealth)
	engine.GET("/ws", s.handleWebSocket)

	v1 := engine.Group("/api/v1")
	v1.POST("/move", opts.MoveController.NextMove)

	s.engine = engine
	return s
}

// Engine returns the http handler.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) handleHealth(c *gin.Context) {
	response.SuccessResponse(c, gin.H{
		"status": "ok",
		"rooms":  s.hub.Count(),
	})
}

// handleWebSocket starts a new game, or resumes one when the request carries a
// session token, and plays it over the upgraded connection until it ends.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	roomID, playerID, g, status, err := s.openGame(ctx, c.Query("session"), c.Query("playerId"))
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to open game")
		response.ErrorResponse(c, status, err.Error())
		return
	}
	span.SetAttributes(attribute.String("room.id", roomID), attribute.String("player.id", playerID))

	token, err := s.opts.Tokens.Issue(roomID)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to issue session token")
		response.ErrorResponse(c, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	ws, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}
	conn := newWSConnection(ws)

	if err := conn.writeJSON(proto.PlayerAssignmentMessage{
		Type:      proto.TypeAssignment,
		PlayerID:  playerID,
		Mark:      game.PlayerX,
		SessionID: roomID,
		Token:     token,
	}); err != nil {
		slog.WarnContext(ctx, "failed to send assignment", "room.id", roomID, "error", err)
		conn.Close()
		return
	}

	r := room.NewRoom(roomID, player.NewPlayer(playerID, conn), g, s.opts.Calculator, s.opts.Sessions)
	// The game outlives the handshake; the hub and the socket end it.
	outcome, err := s.hub.Play(context.WithoutCancel(ctx), r)
	if err != nil {
		slog.InfoContext(ctx, "game interrupted", "room.id", roomID, "player.id", playerID, "error", err)
	} else {
		slog.InfoContext(ctx, "game over", "room.id", roomID, "player.id", playerID, "game.outcome", outcome.String())
	}
	conn.Close()
}

// openGame resolves the room to play. status is the HTTP status to answer
// with when err is not nil.
func (s *Server) openGame(ctx context.Context, token, playerID string) (roomID, pid string, g *game.Game, status int, err error) {
	if token == "" {
		if playerID == "" {
			playerID = uuid.NewString()
		}
		return uuid.NewString(), playerID, game.NewGame(s.opts.FirstTurn), http.StatusOK, nil
	}

	sessionID, err := s.opts.Tokens.Parse(token)
	if err != nil {
		return "", "", nil, http.StatusUnauthorized, err
	}
	sess, err := s.opts.Sessions.FindByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, repository.ErrSessionNotFound) {
			return "", "", nil, http.StatusNotFound, err
		}
		return "", "", nil, http.StatusInternalServerError, err
	}
	slog.InfoContext(ctx, "resuming session", "room.id", sess.ID, "player.id", sess.PlayerID, "board", sess.Board.String())
	return sess.ID, sess.PlayerID, game.Resume(sess.Board, sess.NextTurn), http.StatusOK, nil
}
