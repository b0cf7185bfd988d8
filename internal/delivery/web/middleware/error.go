package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/view"
	domainerrors "portal/internal/domain/errors"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

const errorTitle = "エラー"

// ErrorPage is the view model of the error page.
type ErrorPage struct {
	Status  int
	Code    string
	Message string
}

// ErrorMiddleware renders pipeline errors as the HTML error page.
type ErrorMiddleware struct {
	logger *slog.Logger
}

// NewErrorMiddleware creates a new error handling middleware
func NewErrorMiddleware(logger *slog.Logger) *ErrorMiddleware {
	return &ErrorMiddleware{
		logger: logger,
	}
}

// HandleHTTPError handles errors as Echo's HTTPErrorHandler
func (m *ErrorMiddleware) HandleHTTPError(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}

	logger := deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger)

	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.HTTPCode() >= http.StatusInternalServerError {
			logger.Error("Request failed", slog.String("code", appErr.ErrorCode()), slog.Any("error", err))
		}
		m.render(c, logger, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message())

		return
	}

	var httpErr *echo.HTTPError
	if errors.As(err, &httpErr) {
		message := http.StatusText(httpErr.Code)
		if msg, ok := httpErr.Message.(string); ok && httpErr.Code < http.StatusInternalServerError {
			message = msg
		}
		m.render(c, logger, httpErr.Code, "", message)

		return
	}

	logger.Error("Unhandled error",
		slog.Any("error", err),
		slog.String("path", c.Request().URL.Path),
		slog.String("method", c.Request().Method),
	)

	m.render(c, logger, http.StatusInternalServerError, string(domainerrors.CodeUnexpected), domainerrors.CodeUnexpected.Message())
}

func (m *ErrorMiddleware) render(c echo.Context, logger *slog.Logger, status int, code, message string) {
	if c.Request().Method == http.MethodHead {
		if err := c.NoContent(status); err != nil {
			logger.Error("Failed to write error response", slog.Any("error", err))
		}

		return
	}

	page := &ErrorPage{Status: status, Code: code, Message: message}
	if err := response.Page(c, status, view.PageError, errorTitle, page); err != nil {
		logger.Error("Failed to render error page", slog.Any("error", err))
		_ = c.String(status, message)
	}
}
