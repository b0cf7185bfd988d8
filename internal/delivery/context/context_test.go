package context

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGetRequestID_StableWithoutMiddleware(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

	first := GetRequestID(c)

	assert.NotEmpty(t, first)
	assert.Equal(t, first, GetRequestID(c))
}

func TestGetRequestID_FromRequestContext(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req = req.WithContext(WithRequestID(req.Context(), "req-9"))
	c := echo.New().NewContext(req, httptest.NewRecorder())

	assert.Equal(t, "req-9", GetRequestID(c))
}

func TestSession_RoundTrip(t *testing.T) {
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	assert.Nil(t, GetSession(c))

	session := &entity.Session{ID: "s1", UserID: "u1"}
	SetSession(c, session)

	assert.Same(t, session, GetSession(c))
}

func TestGetLoggerOrDefault(t *testing.T) {
	assert.Nil(t, GetLoggerOrDefault(context.Background(), nil))
}
