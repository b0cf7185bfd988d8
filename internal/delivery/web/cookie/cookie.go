// Package cookie owns the portal's session and pending sign-in cookies.
package cookie

import (
	"net/http"
	"strconv"
	"time"

	"portal/config"

	"github.com/labstack/echo/v4"
)

// Cookie names.
const (
	SessionJWT         = "session_jwt"
	PendingMfaUser     = "pending_mfa_user"
	PendingMfaRemember = "pending_mfa_remember"
)

const (
	sessionMaxAge = 30 * 24 * time.Hour
	pendingMaxAge = 5 * time.Minute
)

// Jar writes cookies with the attributes of the running environment.
type Jar struct {
	secure bool
}

// NewJar sets Secure on every cookie in production.
func NewJar(cfg *config.Config) *Jar {
	return &Jar{secure: cfg.IsProduction()}
}

// SetSession stores the session JWT for 30 days.
func (j *Jar) SetSession(c echo.Context, token string) {
	c.SetCookie(j.build(SessionJWT, token, sessionMaxAge))
}

// ClearSession removes the session JWT.
func (j *Jar) ClearSession(c echo.Context) {
	c.SetCookie(j.build(SessionJWT, "", -1))
}

// SetPendingMfa records a sign-in awaiting its second factor. The values expire after five minutes.
func (j *Jar) SetPendingMfa(c echo.Context, username string, remember bool) {
	c.SetCookie(j.build(PendingMfaUser, username, pendingMaxAge))
	c.SetCookie(j.build(PendingMfaRemember, strconv.FormatBool(remember), pendingMaxAge))
}

// ClearPendingMfa removes both pending sign-in cookies.
func (j *Jar) ClearPendingMfa(c echo.Context) {
	c.SetCookie(j.build(PendingMfaUser, "", -1))
	c.SetCookie(j.build(PendingMfaRemember, "", -1))
}

// PendingMfa reads the pending sign-in. An empty username means there is none.
func PendingMfa(c echo.Context) (username string, remember bool) {
	username = Value(c, PendingMfaUser)
	remember, _ = strconv.ParseBool(Value(c, PendingMfaRemember))

	return username, remember
}

// Value returns the named cookie value or "" when absent.
func Value(c echo.Context, name string) string {
	ck, err := c.Cookie(name)
	if err != nil {
		return ""
	}

	return ck.Value
}

func (j *Jar) build(name, value string, maxAge time.Duration) *http.Cookie {
	ck := &http.Cookie{
		Name:     name,
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   j.secure,
		SameSite: http.SameSiteLaxMode,
	}

	if maxAge < 0 {
		ck.MaxAge = -1
		ck.Expires = time.Unix(0, 0)
	} else {
		ck.MaxAge = int(maxAge.Seconds())
		ck.Expires = time.Now().Add(maxAge)
	}

	return ck
}
