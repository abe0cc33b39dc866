package http

import (
	"errors"
	"net/http"

	"trading/internal/core/domain/domainerr"
	"trading/internal/generated/servers"
	"trading/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

const (
	validationErrorTag = "VALIDATION_ERROR"
	internalErrorTag   = "INTERNAL_ERROR"
)

// statusFor maps an error returned by a use case to an HTTP status code.
// Authorization is checked first so a joined error containing it is never reported as 400.
func statusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrAuthorization):
		return http.StatusForbidden
	case errors.Is(err, domainerr.ErrOrderNotFound),
		errors.Is(err, domainerr.ErrTradeNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInvalidOrderOperation),
		errors.Is(err, domainerr.ErrOrderValidation),
		errors.Is(err, domainerr.ErrPrice),
		errors.Is(err, domainerr.ErrQuantity),
		errors.Is(err, domainerr.ErrTradingPair),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// errorTag names the failure kind in the response body.
func errorTag(err error, status int) string {
	if kind := domainerr.KindOf(err); kind != domainerr.KindUnknown {
		return kind.String()
	}
	if status == http.StatusBadRequest {
		return validationErrorTag
	}
	return internalErrorTag
}

// writeError renders err as a servers.Error. Internal failures are logged
// and their message is not exposed.
func (s *Server) writeError(ctx echo.Context, err error) error {
	status := statusFor(err)
	body := servers.Error{
		Code:    status,
		Error:   errorTag(err, status),
		Message: err.Error(),
	}

	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), "request failed",
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err,
		)
		body.Message = "Internal server error"
	}

	return ctx.JSON(status, body)
}
