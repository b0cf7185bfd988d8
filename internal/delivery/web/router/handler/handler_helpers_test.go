package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"portal/config"
	"portal/internal/delivery/web/validator"
	"portal/internal/delivery/web/view"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Discord = &config.DiscordConfig{ClientID: "discord-client"}

	return cfg
}

func newTestEcho(t *testing.T) *echo.Echo {
	t.Helper()

	e := echo.New()
	renderer, err := view.New()
	require.NoError(t, err)
	e.Renderer = renderer
	e.Validator = validator.New()

	return e
}

func newGetContext(e *echo.Echo, target string, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func newFormContext(e *echo.Echo, target string, form url.Values, cookies ...*http.Cookie) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, target, strings.NewReader(form.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	for _, ck := range cookies {
		req.AddCookie(ck)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func findSetCookie(rec *httptest.ResponseRecorder, name string) *http.Cookie {
	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}

	return nil
}

func parseLocation(t *testing.T, rec *httptest.ResponseRecorder) *url.URL {
	t.Helper()

	location, err := url.Parse(rec.Header().Get(echo.HeaderLocation))
	require.NoError(t, err)

	return location
}
