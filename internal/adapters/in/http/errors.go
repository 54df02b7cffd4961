package http

import (
	"errors"
	"net/http"

	"smartlogi/internal/pkg/errs"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

// StatusCode maps an application error to its HTTP status.
func StatusCode(err error) int {
	var httpErr *echo.HTTPError
	var validationErrs validator.ValidationErrors

	switch {
	case errors.As(err, &httpErr):
		return httpErr.Code
	case errors.As(err, &validationErrs):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrVersionIsInvalid):
		return http.StatusConflict
	case errors.Is(err, errs.ErrUnsupportedOperation):
		return http.StatusNotImplemented
	case errors.Is(err, errs.ErrAccessDenied):
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}

// message is what the client sees. Rule violations carry a display reason; internal
// errors are never echoed back.
func message(err error, code int) string {
	var rule *errs.RuleViolationError
	var httpErr *echo.HTTPError

	switch {
	case code == http.StatusInternalServerError:
		return http.StatusText(code)
	case errors.As(err, &rule):
		return rule.Reason
	case errors.As(err, &httpErr):
		if msg, ok := httpErr.Message.(string); ok {
			return msg
		}
		return http.StatusText(httpErr.Code)
	default:
		return err.Error()
	}
}

// ErrorHandler replaces echo's default so that every failure, including routing
// and binding errors, has the Error body.
func ErrorHandler(log *zap.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}
		writeError(c, log, err, StatusCode(err))
	}
}

func writeError(c echo.Context, log *zap.Logger, err error, code int) {
	if code >= http.StatusInternalServerError && code != http.StatusNotImplemented {
		log.Error("request failed",
			zap.String("method", c.Request().Method),
			zap.String("path", c.Request().URL.Path),
			zap.Error(err),
		)
	}

	body := Error{Code: code, Message: message(err, code)}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	if jsonErr := c.JSON(code, body); jsonErr != nil {
		log.Error("write error response", zap.Error(jsonErr))
	}
}
