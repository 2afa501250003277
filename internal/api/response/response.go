package response

import (
	"ctchen222/tictactoe-engine/pkg/proto"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SuccessResponse writes an operation result as the whole body.
func SuccessResponse(c *gin.Context, result any) {
	c.JSON(http.StatusOK, result)
}

// ErrorResponse writes {"error": message} with the given status.
func ErrorResponse(c *gin.Context, code int, message string) {
	c.JSON(code, proto.ErrorResult{Error: message})
}

// FailResponse writes err with the status NewError assigns to it.
func FailResponse(c *gin.Context, err error) {
	e := NewError(err)
	ErrorResponse(c, e.Code, e.Message)
}
