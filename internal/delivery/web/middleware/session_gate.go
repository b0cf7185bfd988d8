// Package middleware holds the web-only middlewares: the session gate and the HTML error handler.
package middleware

import (
	"log/slog"
	"net/http"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/cookie"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SessionGateParams holds dependencies for SessionGate, injected by Fx.
type SessionGateParams struct {
	fx.In

	Sessions usecase.SessionUsecase
	Cookies  *cookie.Jar
	Logger   *slog.Logger
}

// SessionGate keeps anonymous visitors out of member pages.
type SessionGate struct {
	sessions usecase.SessionUsecase
	cookies  *cookie.Jar
	logger   *slog.Logger
}

// NewSessionGate is the constructor for SessionGate.
func NewSessionGate(params SessionGateParams) *SessionGate {
	return &SessionGate{
		sessions: params.Sessions,
		cookies:  params.Cookies,
		logger:   params.Logger,
	}
}

// Require lets the request through only with a valid session JWT. Otherwise the cookie is
// cleared and the browser goes to sign-in with the original path and query as redirect target.
func (m *SessionGate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.Value(c, cookie.SessionJWT)
		if !m.sessions.IsValidSessionJWT(c.Request().Context(), token) {
			return m.reject(c, token)
		}

		return next(c)
	}
}

// Load resolves the session record into the echo context. A verified token whose session
// is gone is treated like an invalid one.
func (m *SessionGate) Load(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		token := cookie.Value(c, cookie.SessionJWT)

		session, err := m.sessions.GetCurrent(c.Request().Context(), token)
		if err != nil || session == nil {
			return m.reject(c, token)
		}

		deliverycontext.SetSession(c, session)

		return next(c)
	}
}

func (m *SessionGate) reject(c echo.Context, token string) error {
	if token != "" {
		m.cookies.ClearSession(c)
		deliverycontext.GetLoggerOrDefault(c.Request().Context(), m.logger).
			Debug("Session gate rejected token", slog.String("path", c.Request().URL.Path))
	}

	return c.Redirect(http.StatusFound, usecase.SignInLocation(c.Request().URL.RequestURI()))
}
