package engine

import (
	"context"
	"ctchen222/tictactoe-engine/internal/bot"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "ctchen222/tictactoe-engine/internal/engine"

var tracer = otel.Tracer("engine")

const (
	msgNewGame        = "New game started! You are X, make your move."
	msgMoveMade       = "Move made at position %d"
	msgPositionTaken  = "Position already taken"
	msgComputerMoved  = "Computer moved to position %d"
	msgNoMoves        = "No moves available"
	msgHumanWins      = "Game Over! You win!"
	msgComputerWins   = "Game Over! Computer wins!"
	msgTie            = "Game Over! It's a tie!"
	msgGameInProgress = "Game in progress"
)

// MoveCalculator picks the computer's next move.
type MoveCalculator interface {
	CalculateNextMove(board game.Board) (game.Board, bot.Move, error)
	Policy() bot.Policy
}

// Engine runs the four game operations. It keeps no board between calls,
// so one Engine can serve any number of concurrent callers.
type Engine struct {
	calculator MoveCalculator

	computerMoves metric.Int64Counter
	searchNodes   metric.Int64Histogram
}

// NewEngine creates an Engine backed by calculator.
func NewEngine(calculator MoveCalculator) (*Engine, error) {
	meter := otel.Meter(instrumentationName)

	computerMoves, err := meter.Int64Counter(
		"tictactoe.computer_moves",
		metric.WithDescription("Number of computer moves, by strategy"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create computer_moves counter: %w", err)
	}

	searchNodes, err := meter.Int64Histogram(
		"tictactoe.search_nodes",
		metric.WithDescription("Positions visited by one minimax search"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create search_nodes histogram: %w", err)
	}

	return &Engine{
		calculator:    calculator,
		computerMoves: computerMoves,
		searchNodes:   searchNodes,
	}, nil
}

// NewGame returns an empty board with X to move.
func (e *Engine) NewGame(ctx context.Context) proto.NewGameResult {
	ctx, span := tracer.Start(ctx, "engine.NewGame")
	defer span.End()

	slog.InfoContext(ctx, "new game started")

	return proto.NewGameResult{
		Board:         proto.Cells(game.NewBoard()),
		CurrentPlayer: game.PlayerX,
		GameOver:      false,
		Winner:        nil,
		Message:       msgNewGame,
	}
}

// MakeMove places X at position. A taken cell is reported through
// Success=false with the board unchanged, not as an error.
func (e *Engine) MakeMove(ctx context.Context, cells []game.PlayerMark, position int) (proto.MoveResult, error) {
	ctx, span := tracer.Start(ctx, "engine.MakeMove", trace.WithAttributes(
		attribute.Int("board.position", position),
	))
	defer span.End()

	board, err := game.ParseBoard(cells)
	if err != nil {
		return proto.MoveResult{}, fail(ctx, span, err, "Invalid board")
	}
	if err := game.ValidatePosition(position); err != nil {
		return proto.MoveResult{}, fail(ctx, span, err, "Invalid position")
	}

	next, ok := game.ApplyMove(board, position)
	span.SetAttributes(attribute.Bool("move.valid", ok))
	if !ok {
		slog.InfoContext(ctx, "human move rejected", "board.position", position, "error", game.ErrPositionOccupied)
		return proto.MoveResult{
			Board:   proto.Cells(board),
			Success: false,
			Message: msgPositionTaken,
		}, nil
	}

	slog.InfoContext(ctx, "human move applied", "board.position", position)
	return proto.MoveResult{
		Board:   proto.Cells(next),
		Success: true,
		Message: fmt.Sprintf(msgMoveMade, position),
	}, nil
}

// ComputerMove lets the configured policy place O.
func (e *Engine) ComputerMove(ctx context.Context, cells []game.PlayerMark) (proto.ComputerMoveResult, error) {
	ctx, span := tracer.Start(ctx, "engine.ComputerMove", trace.WithAttributes(
		attribute.String("ai.policy", string(e.calculator.Policy())),
	))
	defer span.End()

	board, err := game.ParseBoard(cells)
	if err != nil {
		return proto.ComputerMoveResult{}, fail(ctx, span, err, "Invalid board")
	}

	next, move, err := e.calculator.CalculateNextMove(board)
	if errors.Is(err, bot.ErrNoMovesAvailable) {
		slog.InfoContext(ctx, "computer has no move", "ai.policy", e.calculator.Policy())
		return proto.ComputerMoveResult{
			Board:   proto.Cells(board),
			Success: false,
			Message: msgNoMoves,
		}, nil
	}
	if err != nil {
		return proto.ComputerMoveResult{}, fail(ctx, span, err, "Failed to calculate move")
	}

	strategy := attribute.String("ai.strategy", string(move.Strategy))
	e.computerMoves.Add(ctx, 1, metric.WithAttributes(strategy))
	if move.Strategy == bot.StrategyMinimax {
		e.searchNodes.Record(ctx, int64(move.Nodes))
	}
	span.SetAttributes(strategy, attribute.Int("board.position", move.Position), attribute.Int("search.nodes", move.Nodes))

	slog.InfoContext(ctx, "computer move applied",
		"board.position", move.Position,
		"ai.strategy", move.Strategy,
		"search.nodes", move.Nodes,
	)

	position := move.Position
	return proto.ComputerMoveResult{
		Board:    proto.Cells(next),
		Success:  true,
		Position: &position,
		Message:  fmt.Sprintf(msgComputerMoved, position),
	}, nil
}

// CheckStatus reports whether the game on board is over and who won.
func (e *Engine) CheckStatus(ctx context.Context, cells []game.PlayerMark) (proto.StatusResult, error) {
	ctx, span := tracer.Start(ctx, "engine.CheckStatus")
	defer span.End()

	board, err := game.ParseBoard(cells)
	if err != nil {
		return proto.StatusResult{}, fail(ctx, span, err, "Invalid board")
	}

	status := board.Status()
	span.SetAttributes(attribute.String("game.status", status.String()))

	result := proto.StatusResult{
		Board:    proto.Cells(board),
		GameOver: status != game.InProgress,
	}
	if winner, ok := board.Winner(); ok {
		result.Winner = &winner
	}

	switch status {
	case game.XWins:
		result.Message = msgHumanWins
	case game.OWins:
		result.Message = msgComputerWins
	case game.Tie:
		result.Message = msgTie
	default:
		result.Message = msgGameInProgress
	}

	slog.DebugContext(ctx, "game status checked", "game.status", status)
	return result, nil
}

// fail records err on the span and logs it as a rejected call.
func fail(ctx context.Context, span trace.Span, err error, status string) error {
	slog.WarnContext(ctx, "request rejected", "error", err)
	span.RecordError(err)
	span.SetStatus(codes.Error, status)
	return err
}
