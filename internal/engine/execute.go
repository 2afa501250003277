package engine

import (
	"context"
	"ctchen222/tictactoe-engine/internal/game"
	"errors"
	"fmt"
)

// Command names accepted by Execute.
const (
	CommandNewGame      = "new_game"
	CommandMakeMove     = "make_move"
	CommandComputerMove = "computer_move"
	CommandCheckGame    = "check_game"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")
)

// Request is one named command with its arguments.
type Request struct {
	Command  string
	Board    []game.PlayerMark
	Position *int
}

// Execute dispatches req to the matching operation and returns its result.
func (e *Engine) Execute(ctx context.Context, req Request) (any, error) {
	if !knownCommand(req.Command) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, req.Command)
	}
	if req.Command == CommandNewGame {
		return e.NewGame(ctx), nil
	}
	if req.Board == nil {
		return nil, fmt.Errorf("%w: board required for %s", ErrInvalidArguments, req.Command)
	}

	switch req.Command {
	case CommandMakeMove:
		if req.Position == nil {
			return nil, fmt.Errorf("%w: position required for make_move", ErrInvalidArguments)
		}
		return e.MakeMove(ctx, req.Board, *req.Position)
	case CommandComputerMove:
		return e.ComputerMove(ctx, req.Board)
	default:
		return e.CheckStatus(ctx, req.Board)
	}
}

func knownCommand(name string) bool {
	switch name {
	case CommandNewGame, CommandMakeMove, CommandComputerMove, CommandCheckGame:
		return true
	}
	return false
}

// IsClientError reports whether err was caused by the caller's input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidArguments) ||
		errors.Is(err, ErrUnknownCommand) ||
		errors.Is(err, game.ErrInvalidBoard) ||
		errors.Is(err, game.ErrInvalidPosition)
}
