package models

import "ctchen222/tictactoe-engine/internal/game"

// BoardRequest carries the board for computer-move and check-game.
type BoardRequest struct {
	Board []game.PlayerMark `json:"board" binding:"required,len=9,dive,mark"`
}

// MoveRequest defines the structure for a human move request.
type MoveRequest struct {
	Board    []game.PlayerMark `json:"board" binding:"required,len=9,dive,mark"`
	Position *int              `json:"position" binding:"required"`
}
