package context

import (
	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
)

// SetSession stores the resolved session on echo.Context.
func SetSession(c echo.Context, session *entity.Session) {
	c.Set(string(KeySession), session)
}

// GetSession returns the session stored by the session gate, or nil.
func GetSession(c echo.Context) *entity.Session {
	if session, ok := c.Get(string(KeySession)).(*entity.Session); ok {
		return session
	}

	return nil
}
