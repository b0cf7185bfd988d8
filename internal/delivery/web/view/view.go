// Package view renders the portal's server-side HTML pages.
package view

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

//go:embed templates
var templateFS embed.FS

// Page names.
const (
	PageSignIn             = "signin"
	PageMfa                = "mfa"
	PageAuthorizationError = "authorization_error"
	PageBadRequest         = "bad_request"
	PageConsent            = "consent"
	PageEmailVerify        = "email_verify"
	PageDashboard          = "dashboard"
	PageSettings           = "settings"
	PageError              = "error"
)

// Notice levels.
const (
	NoticeSuccess = "success"
	NoticeWarning = "warning"
	NoticeError   = "error"
)

// Notice is a dismissible message shown above the page content.
type Notice struct {
	Level string
	Text  string
}

// Page is the data every template receives. Data holds the page-specific view model.
type Page struct {
	Title     string
	CSRFToken string
	RequestID string
	Notice    *Notice
	Data      any
}

var funcs = template.FuncMap{
	"formatTime": func(t time.Time) string {
		if t.IsZero() {
			return "-"
		}

		return t.Local().Format("2006/01/02 15:04")
	},
	"join": strings.Join,
}

// Renderer implements echo.Renderer over the embedded templates.
type Renderer struct {
	pages map[string]*template.Template
}

// New parses every page together with the shared layout.
func New() (*Renderer, error) {
	files, err := fs.Glob(templateFS, "templates/pages/*.html")
	if err != nil {
		return nil, errors.Wrap(err, "failed to list page templates")
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		name := strings.TrimSuffix(path.Base(file), ".html")

		tmpl, err := template.New("layout.html").Funcs(funcs).ParseFS(templateFS, "templates/layout.html", file)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse page %s", name)
		}
		pages[name] = tmpl
	}

	return &Renderer{pages: pages}, nil
}

// Render executes the layout of the named page.
func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tmpl, ok := r.pages[name]
	if !ok {
		return errors.Errorf("unknown page %q", name)
	}

	return errors.WithStack(tmpl.ExecuteTemplate(w, "layout", data))
}
