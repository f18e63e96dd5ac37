package response

import (
	"fmt"
	"net/http"

	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var messages = map[int]string{
	http.StatusBadRequest:          "bad request",
	http.StatusUnauthorized:        "unauthorized",
	http.StatusForbidden:           "forbidden",
	http.StatusNotFound:            "resource not found",
	http.StatusMethodNotAllowed:    "method not allowed",
	http.StatusUnprocessableEntity: "unprocessable",
	http.StatusInternalServerError: "internal server error",
}

// Err is the error envelope every failing route renders.
type Err struct {
	Success        bool   `json:"success"`
	HTTPStatusCode int    `json:"error"`
	Message        string `json:"message"`
	Detail         string `json:"detail,omitempty"`

	Cause error `json:"-"`
}

func (e *Err) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%d %s: %v", e.HTTPStatusCode, e.Message, e.Cause)
	}

	return fmt.Sprintf("%d %s", e.HTTPStatusCode, e.Message)
}

func newErr(status int, cause error, detail string) *Err {
	return &Err{
		Success:        false,
		HTTPStatusCode: status,
		Message:        messages[status],
		Detail:         detail,
		Cause:          cause,
	}
}

func detailOf(err error) string {
	if err == nil {
		return ""
	}

	return err.Error()
}

// RenderErr logs e with the request id and aborts the request with the
// envelope. 5xx causes are logged but never sent to the client.
func RenderErr(ctx *gin.Context, e *Err) {
	fields := []zap.Field{
		zap.String("request_id", requestid.Get(ctx)),
		zap.String("method", ctx.Request.Method),
		zap.String("path", ctx.Request.URL.Path),
		zap.Int("status", e.HTTPStatusCode),
	}
	if e.Cause != nil {
		fields = append(fields, zap.Error(e.Cause))
	}

	if e.HTTPStatusCode >= http.StatusInternalServerError {
		zap.L().Error("request failed", fields...)
	} else {
		zap.L().Info("request rejected", fields...)
	}

	ctx.AbortWithStatusJSON(e.HTTPStatusCode, e)
}

func ErrBadRequest(err error) *Err {
	return newErr(http.StatusBadRequest, err, detailOf(err))
}

func ErrWrongCredentials(err error) *Err {
	return newErr(http.StatusUnauthorized, err, "wrong email or password")
}

func ErrPermissionDenied(err error) *Err {
	return newErr(http.StatusForbidden, err, detailOf(err))
}

func ErrNotFound(resource, key string, value any) *Err {
	return newErr(http.StatusNotFound, nil, fmt.Sprintf("%s with %s = %v not found", resource, key, value))
}

func ErrMethodNotAllowed() *Err {
	return newErr(http.StatusMethodNotAllowed, nil, "")
}

func ErrUnprocessable(err error) *Err {
	return newErr(http.StatusUnprocessableEntity, err, detailOf(err))
}

func ErrInternalServerError(err error) *Err {
	return newErr(http.StatusInternalServerError, err, "")
}

// ErrAuth renders an authorization failure. The message carries the
// machine-readable code instead of the status text.
func ErrAuth(status int, code, description string) *Err {
	e := newErr(status, nil, description)
	e.Message = code

	return e
}
