package httpserver

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pscheid92/scopedemo/internal/platform/correlation"
	apperrors "github.com/pscheid92/scopedemo/internal/platform/errors"
	"github.com/pscheid92/scopedemo/internal/routing"
)

func correlationMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		id := correlation.FromInbound(c.Request().Header.Get(correlation.HeaderName))
		ctx := correlation.WithID(c.Request().Context(), id)
		c.SetRequest(c.Request().WithContext(ctx))
		c.Response().Header().Set(correlation.HeaderName, id)
		return next(c)
	}
}

// ErrorHandlingMiddleware renders handler errors in place so that outer
// middleware (access log, metrics) observe the final status code.
func ErrorHandlingMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			err := next(c)
			if err == nil {
				return nil
			}
			c.Error(err)
			return nil
		}
	}
}

// handleHTTPError is installed as echo's HTTPErrorHandler. Every error
// response leaves as an apperrors.ErrorResponse.
func (s *Server) handleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	structuredErr, status := toStructured(err)
	s.httpMetrics.ErrorsTotal.WithLabelValues(string(structuredErr.Type)).Inc()
	logError(c, structuredErr, status)

	var writeErr error
	if c.Request().Method == http.MethodHead {
		writeErr = c.NoContent(status)
	} else {
		writeErr = c.JSON(status, structuredErr.ToResponse())
	}
	if writeErr != nil {
		slog.ErrorContext(c.Request().Context(), "Failed to write error response", "error", writeErr)
	}
}

func toStructured(err error) (*apperrors.Error, int) {
	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		structuredErr := WrapHTTPError(httpErr)
		status := httpErr.Code
		if status == http.StatusMethodNotAllowed {
			status = http.StatusNotFound
			structuredErr.Message = http.StatusText(status)
		}
		return structuredErr, status
	}

	structuredErr := apperrors.AsStructuredError(err)
	return structuredErr, structuredErr.HTTPStatus()
}

func logError(c echo.Context, err *apperrors.Error, status int) {
	attrs := []any{
		"error_type", err.Type,
		"message", err.Message,
		"path", c.Request().URL.Path,
		"method", c.Request().Method,
		"host", c.Request().Host,
		"status", status,
	}

	if len(err.Context) > 0 {
		fields := make([]any, 0, 2*len(err.Context))
		for k, v := range err.Context {
			fields = append(fields, k, v)
		}
		attrs = append(attrs, slog.Group("context", fields...))
	}

	if route, ok := c.Get(routing.ContextKeyRoute).(string); ok {
		attrs = append(attrs, "route", route)
	}

	ctx := c.Request().Context()
	switch err.Type {
	case apperrors.TypeValidation, apperrors.TypeNotFound:
		slog.InfoContext(ctx, "Request rejected", attrs...)
	case apperrors.TypeConflict:
		slog.WarnContext(ctx, "Conflict", attrs...)
	default:
		if err.Cause != nil {
			attrs = append(attrs, "cause", err.Cause)
		}
		slog.ErrorContext(ctx, "Request failed", attrs...)
	}
}

// WrapHTTPError converts an echo error into a structured error, keeping the
// echo message when it is a string.
func WrapHTTPError(httpErr *echo.HTTPError) *apperrors.Error {
	message := http.StatusText(httpErr.Code)
	if msg, ok := httpErr.Message.(string); ok && msg != "" {
		message = msg
	}
	if message == "" {
		message = "internal server error"
	}

	err := &apperrors.Error{
		Type:    apperrors.FromStatus(httpErr.Code),
		Message: message,
		Context: make(map[string]any),
	}

	if httpErr.Internal != nil {
		err.Cause = httpErr.Internal
	}

	return err
}
