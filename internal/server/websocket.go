package server

import (
	"context"
	"ctchen222/tictactoe-engine/internal/engine"
	"ctchen222/tictactoe-engine/internal/validator"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const messageTypeError = "error"

// handleWebSocket upgrades the connection and answers one command per message
// until the client goes away.
func (s *Server) handleWebSocket(c *gin.Context) {
	ctx, span := tracer.Start(c.Request.Context(), "server.handleWebSocket", trace.WithAttributes(
		attribute.String("http.url", c.Request.URL.String()),
		attribute.String("http.method", c.Request.Method),
	))
	defer span.End()

	conn, err := s.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		slog.ErrorContext(ctx, "failed to upgrade connection", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Failed to upgrade connection")
		return
	}
	defer conn.Close()

	slog.InfoContext(ctx, "websocket client connected", "remote.addr", conn.RemoteAddr().String())

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.WarnContext(ctx, "websocket read failed", "error", err)
			}
			return
		}

		reply := s.handleMessage(ctx, raw)
		if err := conn.WriteJSON(reply); err != nil {
			slog.ErrorContext(ctx, "websocket write failed", "error", err)
			span.RecordError(err)
			return
		}
	}
}

// handleMessage decodes one client message and runs it through the engine.
func (s *Server) handleMessage(ctx context.Context, raw []byte) proto.ServerToClientMessage {
	ctx, span := tracer.Start(ctx, "server.handleMessage")
	defer span.End()

	var message proto.ClientToServerMessage
	if err := json.Unmarshal(raw, &message); err != nil {
		slog.WarnContext(ctx, "error unmarshalling message", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Error unmarshalling message")
		return errorMessage(fmt.Errorf("%w: %v", engine.ErrInvalidArguments, err))
	}

	if err := validator.GetValidator().Struct(message); err != nil {
		slog.WarnContext(ctx, "invalid message from client", "error", err)
		span.RecordError(err)
		span.SetStatus(codes.Error, "Invalid message format")
		return errorMessage(fmt.Errorf("%w: %v", engine.ErrInvalidArguments, err))
	}

	span.SetAttributes(attribute.String("message.type", message.Type))

	result, err := s.service.Execute(ctx, engine.Request{
		Command:  message.Type,
		Board:    message.Board,
		Position: message.Position,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "Command failed")
		return errorMessage(err)
	}

	return proto.ServerToClientMessage{
		Type:   message.Type,
		Result: result,
	}
}

func errorMessage(err error) proto.ServerToClientMessage {
	return proto.ServerToClientMessage{
		Type:  messageTypeError,
		Error: err.Error(),
	}
}
