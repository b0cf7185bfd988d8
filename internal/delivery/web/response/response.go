// Package response writes the portal's HTML pages and redirects.
package response

import (
	"net/http"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/view"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CSRFContextKey is where the CSRF middleware leaves the form token.
const CSRFContextKey = "csrf"

// Redirect moves the browser on. Push uses 302 Found, Replace uses 303 See Other so the
// form resubmission entry does not stay in history.
func Redirect(c echo.Context, mode usecase.RedirectMode, location string) error {
	status := http.StatusFound
	if mode == usecase.RedirectReplace {
		status = http.StatusSeeOther
	}

	return errors.WithStack(c.Redirect(status, location))
}

// Page renders a full page with the request's CSRF token and request id.
func Page(c echo.Context, status int, name, title string, data any) error {
	return PageWithNotice(c, status, name, title, data, nil)
}

// PageWithNotice renders a full page with a notice above its content.
func PageWithNotice(c echo.Context, status int, name, title string, data any, notice *view.Notice) error {
	return errors.WithStack(c.Render(status, name, &view.Page{
		Title:     title,
		CSRFToken: CSRFToken(c),
		RequestID: deliverycontext.GetRequestID(c),
		Notice:    notice,
		Data:      data,
	}))
}

// CSRFToken returns the token of the current request, if any.
func CSRFToken(c echo.Context) string {
	token, _ := c.Get(CSRFContextKey).(string)

	return token
}
