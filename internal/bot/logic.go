package bot

import (
	"errors"
	"fmt"

	"ctchen222/tictactoe-engine/internal/game"
)

// Policy controls how often the computer plays the optimal move.
type Policy string

const (
	AlwaysWin        Policy = "always_win"
	EqualCompetition Policy = "equal_competition"
)

// Strategy names the way a computer move was chosen.
type Strategy string

const (
	StrategyMinimax Strategy = "minimax"
	StrategyRandom  Strategy = "random"
)

// randomMoveThreshold is the share of EqualCompetition turns played at random.
const randomMoveThreshold = 0.3

var (
	ErrNoMovesAvailable = errors.New("no moves available")
	ErrUnknownPolicy    = errors.New("unknown ai policy")
)

// ParsePolicy converts a configured mode name into a Policy.
func ParsePolicy(mode string) (Policy, error) {
	switch p := Policy(mode); p {
	case AlwaysWin, EqualCompetition:
		return p, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownPolicy, mode)
	}
}

// Move is a computer move together with how it was found.
type Move struct {
	Position int
	Strategy Strategy
	Nodes    int
}

// ComputerMove picks O's move under policy and returns the board with the move applied.
func ComputerMove(board game.Board, policy Policy, rng RandomSource) (game.Board, Move, error) {
	empty := board.EmptyPositions()
	if len(empty) == 0 {
		return board, Move{Position: -1}, ErrNoMovesAvailable
	}

	var nodes int
	if policy == AlwaysWin || (policy == EqualCompetition && rng.Float64() > randomMoveThreshold) {
		result := Search(board)
		nodes = result.Nodes
		if result.Found {
			board[result.Position] = game.PlayerO
			return board, Move{Position: result.Position, Strategy: StrategyMinimax, Nodes: nodes}, nil
		}
	}

	position := empty[rng.IntN(len(empty))]
	board[position] = game.PlayerO
	return board, Move{Position: position, Strategy: StrategyRandom, Nodes: nodes}, nil
}

// MoveCalculator chooses computer moves for a fixed policy.
type MoveCalculator struct {
	policy Policy
	rng    RandomSource
}

// NewMoveCalculator creates a calculator. rng is used as-is; wrap it with
// NewLockedSource when the calculator is shared between goroutines.
func NewMoveCalculator(policy Policy, rng RandomSource) *MoveCalculator {
	return &MoveCalculator{policy: policy, rng: rng}
}

// Policy returns the calculator's policy.
func (c *MoveCalculator) Policy() Policy {
	return c.policy
}

// CalculateNextMove applies the computer's next move to board.
func (c *MoveCalculator) CalculateNextMove(board game.Board) (game.Board, Move, error) {
	return ComputerMove(board, c.policy, c.rng)
}
