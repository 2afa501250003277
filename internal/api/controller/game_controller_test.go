package controller_test

import (
	"bytes"
	"ctchen222/tictactoe-engine/internal/api/controller"
	"ctchen222/tictactoe-engine/internal/api/controller/mocks"
	"ctchen222/tictactoe-engine/internal/engine"
	"ctchen222/tictactoe-engine/internal/game"
	"ctchen222/tictactoe-engine/internal/validator"
	"ctchen222/tictactoe-engine/pkg/proto"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := validator.RegisterGin(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func setupRouter(svc controller.GameService) *gin.Engine {
	gc := controller.NewGameController(svc)
	r := gin.New()
	r.POST("/api/new-game", gc.NewGame)
	r.POST("/api/make-move", gc.MakeMove)
	r.POST("/api/computer-move", gc.ComputerMove)
	r.POST("/api/check-game", gc.CheckGame)
	return r
}

func doPost(t *testing.T, r http.Handler, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) proto.ErrorResult {
	t.Helper()
	var body proto.ErrorResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

var emptyBoard = []game.PlayerMark{"", "", "", "", "", "", "", "", ""}

func TestGameController_NewGame(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc := mocks.NewMockGameService(ctrl)

	svc.EXPECT().NewGame(gomock.Any()).Return(proto.NewGameResult{
		Board:         emptyBoard,
		CurrentPlayer: game.PlayerX,
		Message:       "New game started! You are X, make your move.",
	})

	rec := doPost(t, setupRouter(svc), "/api/new-game", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t,
		`{"board":["","","","","","","","",""],"current_player":"X","game_over":false,"winner":null,"message":"New game started! You are X, make your move."}`,
		rec.Body.String(),
	)
}

func TestGameController_MakeMove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)

		// Given: the service accepts a move at 4
		want := proto.MoveResult{Board: emptyBoard, Success: true, Message: "Move made at position 4"}
		svc.EXPECT().MakeMove(gomock.Any(), emptyBoard, 4).Return(want, nil)

		// When: the client posts the move
		rec := doPost(t, setupRouter(svc), "/api/make-move", `{"board":["","","","","","","","",""],"position":4}`)

		// Then: the result is the whole body
		require.Equal(t, http.StatusOK, rec.Code)
		var got proto.MoveResult
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, want, got)
	})

	t.Run("Position zero is accepted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)
		svc.EXPECT().MakeMove(gomock.Any(), emptyBoard, 0).Return(proto.MoveResult{Success: true}, nil)

		rec := doPost(t, setupRouter(svc), "/api/make-move", `{"board":["","","","","","","","",""],"position":0}`)

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	bad := []struct {
		name string
		body string
	}{
		{name: "Missing position", body: `{"board":["","","","","","","","",""]}`},
		{name: "Missing board", body: `{"position":1}`},
		{name: "Short board", body: `{"board":["","X"],"position":1}`},
		{name: "Unknown mark", body: `{"board":["Z","","","","","","","",""],"position":1}`},
		{name: "Malformed JSON", body: `{"board":`},
	}
	for _, tt := range bad {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc := mocks.NewMockGameService(ctrl)

			rec := doPost(t, setupRouter(svc), "/api/make-move", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.NotEmpty(t, decodeError(t, rec).Error)
		})
	}

	t.Run("Service rejects the position", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)
		svc.EXPECT().MakeMove(gomock.Any(), emptyBoard, 12).
			Return(proto.MoveResult{}, fmt.Errorf("%w: 12 is outside 0..8", game.ErrInvalidPosition))

		rec := doPost(t, setupRouter(svc), "/api/make-move", `{"board":["","","","","","","","",""],"position":12}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, decodeError(t, rec).Error, "invalid position")
	})
}

func TestGameController_ComputerMove(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)

		pos := 2
		svc.EXPECT().ComputerMove(gomock.Any(), gomock.Len(9)).Return(proto.ComputerMoveResult{
			Board:    []game.PlayerMark{"X", "X", "O", "", "O", "", "", "", ""},
			Success:  true,
			Position: &pos,
			Message:  "Computer moved to position 2",
		}, nil)

		rec := doPost(t, setupRouter(svc), "/api/computer-move", `{"board":["X","X","","","O","","","",""]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"board":["X","X","O","","O","","","",""],"success":true,"position":2,"message":"Computer moved to position 2"}`,
			rec.Body.String(),
		)
	})

	t.Run("Internal failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)
		svc.EXPECT().ComputerMove(gomock.Any(), gomock.Any()).Return(proto.ComputerMoveResult{}, errors.New("boom"))

		rec := doPost(t, setupRouter(svc), "/api/computer-move", `{"board":["","","","","","","","",""]}`)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.Equal(t, "boom", decodeError(t, rec).Error)
	})
}

func TestGameController_CheckGame(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)

		winner := game.PlayerX
		svc.EXPECT().CheckStatus(gomock.Any(), gomock.Any()).Return(proto.StatusResult{
			Board:    []game.PlayerMark{"X", "X", "X", "O", "O", "", "", "", ""},
			GameOver: true,
			Winner:   &winner,
			Message:  "Game Over! You win!",
		}, nil)

		rec := doPost(t, setupRouter(svc), "/api/check-game", `{"board":["X","X","X","O","O","","","",""]}`)

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t,
			`{"board":["X","X","X","O","O","","","",""],"game_over":true,"winner":"X","message":"Game Over! You win!"}`,
			rec.Body.String(),
		)
	})

	t.Run("Unbalanced board", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)
		svc.EXPECT().CheckStatus(gomock.Any(), gomock.Any()).
			Return(proto.StatusResult{}, fmt.Errorf("%w: 0 X marks against 2 O marks", game.ErrInvalidBoard))

		rec := doPost(t, setupRouter(svc), "/api/check-game", `{"board":["O","O","","","","","","",""]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("Invalid arguments map to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		svc := mocks.NewMockGameService(ctrl)
		svc.EXPECT().CheckStatus(gomock.Any(), gomock.Any()).Return(proto.StatusResult{}, engine.ErrInvalidArguments)

		rec := doPost(t, setupRouter(svc), "/api/check-game", `{"board":["","","","","","","","",""]}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}
