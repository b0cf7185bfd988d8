package cookie

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"portal/config"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newContext(req *http.Request) (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()

	return echo.New().NewContext(req, rec), rec
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, ck := range rec.Result().Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	require.Failf(t, "cookie not set", "name=%s", name)

	return nil
}

func TestJar_SetSession(t *testing.T) {
	tests := []struct {
		name       string
		env        string
		wantSecure bool
	}{
		{name: "development", env: "development", wantSecure: false},
		{name: "production", env: "production", wantSecure: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &config.Config{}
			cfg.Env.Env = tt.env

			c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
			NewJar(cfg).SetSession(c, "jwt")

			ck := findCookie(t, rec, SessionJWT)
			assert.Equal(t, "jwt", ck.Value)
			assert.True(t, ck.HttpOnly)
			assert.Equal(t, tt.wantSecure, ck.Secure)
			assert.Equal(t, http.SameSiteLaxMode, ck.SameSite)
			assert.Equal(t, 30*24*60*60, ck.MaxAge)
		})
	}
}

func TestJar_PendingMfa(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	NewJar(&config.Config{}).SetPendingMfa(c, "alice", true)

	user := findCookie(t, rec, PendingMfaUser)
	remember := findCookie(t, rec, PendingMfaRemember)
	assert.Equal(t, "alice", user.Value)
	assert.Equal(t, "true", remember.Value)
	assert.Equal(t, 300, user.MaxAge)
	assert.True(t, remember.HttpOnly)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: PendingMfaUser, Value: "alice"})
	req.AddCookie(&http.Cookie{Name: PendingMfaRemember, Value: "true"})
	c, _ = newContext(req)

	username, rememberMe := PendingMfa(c)
	assert.Equal(t, "alice", username)
	assert.True(t, rememberMe)
}

func TestJar_ClearSession(t *testing.T) {
	c, rec := newContext(httptest.NewRequest(http.MethodGet, "/", nil))
	NewJar(&config.Config{}).ClearSession(c)

	ck := findCookie(t, rec, SessionJWT)
	assert.Empty(t, ck.Value)
	assert.Equal(t, -1, ck.MaxAge)
}

func TestValue_Missing(t *testing.T) {
	c, _ := newContext(httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Empty(t, Value(c, SessionJWT))
	username, remember := PendingMfa(c)
	assert.Empty(t, username)
	assert.False(t, remember)
}
