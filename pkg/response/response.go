package response

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/loopers/member-api/pkg/apperr"
)

type APIResponse[T any] struct {
	Status    int         `json:"status"`
	Timestamp time.Time   `json:"timestamp"`
	RequestID string      `json:"request_id"`
	Success   bool        `json:"success"`
	Message   string      `json:"message"`
	Data      T           `json:"data,omitempty"`
	Error     interface{} `json:"error,omitempty"`
}

func Success[T any](ctx *gin.Context, status int, data T, message string) APIResponse[T] {
	if status == 0 {
		status = http.StatusOK
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   true,
		Message:   message,
		Data:      data,
	}
}

func Error[T any](ctx *gin.Context, status int, message string, err interface{}) APIResponse[T] {
	if status == 0 {
		status = http.StatusBadRequest
	}
	return APIResponse[T]{
		Status:    status,
		Timestamp: time.Now(),
		RequestID: ctx.GetString("request_id"),
		Success:   false,
		Message:   message,
		Error:     err,
	}
}

// OK writes a success envelope.
func OK[T any](ctx *gin.Context, data T, message string) {
	resp := Success(ctx, http.StatusOK, data, message)
	ctx.JSON(resp.Status, resp)
}

// Fail writes an error envelope with an explicit status.
func Fail(ctx *gin.Context, status int, message string, details interface{}) {
	resp := Error[any](ctx, status, message, details)
	ctx.JSON(resp.Status, resp)
}

// FromError writes an error envelope with the status derived from the
// application error kind.
func FromError(ctx *gin.Context, err error) {
	Fail(ctx, statusOf(err), err.Error(), nil)
}

func statusOf(err error) int {
	switch apperr.KindOf(err) {
	case apperr.KindBadRequest:
		return http.StatusBadRequest
	case apperr.KindUnauthorized:
		return http.StatusUnauthorized
	case apperr.KindNotFound:
		return http.StatusNotFound
	case apperr.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
