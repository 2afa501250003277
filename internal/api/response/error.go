package response

import (
	"ctchen222/tictactoe-engine/internal/engine"
	"net/http"
)

// Error pairs an HTTP status with the message sent to the client.
type Error struct {
	Code    int
	Message string
}

func (e Error) Error() string {
	return e.Message
}

// NewError maps err to a status: caller mistakes are 400, anything else 500.
func NewError(err error) Error {
	code := http.StatusInternalServerError
	if engine.IsClientError(err) {
		code = http.StatusBadRequest
	}
	return Error{
		Code:    code,
		Message: err.Error(),
	}
}
