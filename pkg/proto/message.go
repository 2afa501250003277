package proto

import "ctchen222/tictactoe-engine/internal/game"

// NewGameResult is returned when a new game is started.
type NewGameResult struct {
	Board         []game.PlayerMark `json:"board"`
	CurrentPlayer game.PlayerMark   `json:"current_player"`
	GameOver      bool              `json:"game_over"`
	Winner        *game.PlayerMark  `json:"winner"`
	Message       string            `json:"message"`
}

// MoveResult is returned after a human move.
type MoveResult struct {
	Board   []game.PlayerMark `json:"board"`
	Success bool              `json:"success"`
	Message string            `json:"message"`
}

// ComputerMoveResult is returned after the computer moves. Position is set only on success.
type ComputerMoveResult struct {
	Board    []game.PlayerMark `json:"board"`
	Success  bool              `json:"success"`
	Position *int              `json:"position,omitempty"`
	Message  string            `json:"message"`
}

// StatusResult reports whether the game is over and who won.
type StatusResult struct {
	Board    []game.PlayerMark `json:"board"`
	GameOver bool              `json:"game_over"`
	Winner   *game.PlayerMark  `json:"winner"`
	Message  string            `json:"message"`
}

// ErrorResult is the body of every failed call.
type ErrorResult struct {
	Error string `json:"error"`
}

// ClientToServerMessage represents a message from the client to the server.
type ClientToServerMessage struct {
	Type     string            `json:"type" validate:"required"`
	Board    []game.PlayerMark `json:"board,omitempty" validate:"omitempty,len=9,dive,mark"`
	Position *int              `json:"position,omitempty"`
}

// ServerToClientMessage represents a message from the server to the client.
type ServerToClientMessage struct {
	Type   string `json:"type" validate:"required"`
	Result any    `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// Cells converts a board into its wire form.
func Cells(b game.Board) []game.PlayerMark {
	cells := make([]game.PlayerMark, len(b))
	copy(cells, b[:])
	return cells
}
