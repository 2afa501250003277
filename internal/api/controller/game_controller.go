package controller

//go:generate mockgen -destination=mocks/mock_game_service.go -package=mocks . GameService

import (
	"context"
	"ctchen222/tictactoe-engine/internal/api/models"
	"ctchen222/tictactoe-engine/internal/api/response"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// GameService runs the game operations behind the HTTP endpoints.
type GameService interface {
	NewGame(ctx context.Context) proto.NewGameResult
	MakeMove(ctx context.Context, board []game.PlayerMark, position int) (proto.MoveResult, error)
	ComputerMove(ctx context.Context, board []game.PlayerMark) (proto.ComputerMoveResult, error)
	CheckStatus(ctx context.Context, board []game.PlayerMark) (proto.StatusResult, error)
}

// GameController handles game-related HTTP requests.
type GameController struct {
	gameService GameService
}

// NewGameController creates a new GameController.
func NewGameController(gameService GameService) *GameController {
	return &GameController{
		gameService: gameService,
	}
}

// NewGame handles the new game endpoint.
func (gc *GameController) NewGame(c *gin.Context) {
	response.SuccessResponse(c, gc.gameService.NewGame(c.Request.Context()))
}

// MakeMove handles the human move endpoint.
func (gc *GameController) MakeMove(c *gin.Context) {
	var req models.MoveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := gc.gameService.MakeMove(c.Request.Context(), req.Board, *req.Position)
	if err != nil {
		response.FailResponse(c, err)
		return
	}

	response.SuccessResponse(c, result)
}

// ComputerMove handles the computer move endpoint.
func (gc *GameController) ComputerMove(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := gc.gameService.ComputerMove(c.Request.Context(), req.Board)
	if err != nil {
		response.FailResponse(c, err)
		return
	}

	response.SuccessResponse(c, result)
}

// CheckGame handles the game status endpoint.
func (gc *GameController) CheckGame(c *gin.Context) {
	var req models.BoardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	result, err := gc.gameService.CheckStatus(c.Request.Context(), req.Board)
	if err != nil {
		response.FailResponse(c, err)
		return
	}

	response.SuccessResponse(c, result)
}
