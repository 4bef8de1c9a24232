package http

import (
	"errors"
	"net/http"

	"laundry/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// ErrorResponse is the error body returned by every endpoint.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain error classes onto HTTP status codes. Unclassified
// errors become 500 with a generic message so internals do not leak.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	message := "internal error"

	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
		message = err.Error()
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
		message = err.Error()
	case errors.Is(err, errs.ErrObjectAlreadyExists),
		errors.Is(err, errs.ErrInvalidTransition),
		errors.Is(err, errs.ErrInvalidState):
		status = http.StatusConflict
		message = err.Error()
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
		message = err.Error()
	}

	return ctx.JSON(status, ErrorResponse{Code: status, Message: message})
}
