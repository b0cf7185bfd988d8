package handler

import (
	"log/slog"
	"net/http"

	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/view"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AuthorizationHandlerParams holds dependencies for AuthorizationHandler, injected by Fx.
type AuthorizationHandlerParams struct {
	fx.In

	AuthorizationUC usecase.AuthorizationUsecase
	SessionUC       usecase.SessionUsecase
	Logger          *slog.Logger
}

// AuthorizationHandler serves the OAuth consent page.
type AuthorizationHandler struct {
	authorizationUC usecase.AuthorizationUsecase
	sessionUC       usecase.SessionUsecase
	logger          *slog.Logger
}

// NewAuthorizationHandler is the constructor for AuthorizationHandler
func NewAuthorizationHandler(params AuthorizationHandlerParams) *AuthorizationHandler {
	return &AuthorizationHandler{
		authorizationUC: params.AuthorizationUC,
		sessionUC:       params.SessionUC,
		logger:          params.Logger,
	}
}

// MessagePage is the view model of single message pages.
type MessagePage struct {
	Message string
}

// Authorize resolves the authorization request into an error page, a redirect or the consent card.
func (h *AuthorizationHandler) Authorize(c echo.Context) error {
	ctx := c.Request().Context()

	input := &usecase.AuthorizeInput{
		AuthRequestID: c.QueryParam("auth_request_id"),
		Error:         c.QueryParam("error"),
		RawQuery:      c.Request().URL.RawQuery,
		SessionJWT:    cookie.Value(c, cookie.SessionJWT),
	}

	// error and missing id pages render for anyone
	if input.Error == "" && input.AuthRequestID != "" {
		session, err := h.sessionUC.GetCurrent(ctx, input.SessionJWT)
		if err != nil {
			return errors.Wrap(err, "failed to resolve session")
		}
		input.Session = session
	}

	outcome, err := h.authorizationUC.Resolve(ctx, input)
	if err != nil {
		return err
	}

	switch outcome.Kind {
	case usecase.AuthorizeRenderError:
		return response.Page(c, http.StatusBadRequest, view.PageAuthorizationError, "認可エラー", &MessagePage{Message: outcome.Message})
	case usecase.AuthorizeRenderBadRequest:
		var notice *view.Notice
		if outcome.Toast != "" {
			notice = &view.Notice{Level: view.NoticeError, Text: outcome.Toast}
		}

		return response.PageWithNotice(c, http.StatusBadRequest, view.PageBadRequest, "Bad Request", &MessagePage{Message: outcome.Message}, notice)
	case usecase.AuthorizeRedirectSignIn, usecase.AuthorizeRedirect:
		return response.Redirect(c, outcome.RedirectMode, outcome.Location)
	case usecase.AuthorizeRenderConsent:
		return response.Page(c, http.StatusOK, view.PageConsent, consentTitle(outcome.Consent), outcome.Consent)
	default:
		return errors.Errorf("unknown authorization outcome %d", outcome.Kind)
	}
}

func consentTitle(consent *usecase.ConsentView) string {
	if consent != nil && consent.Application != nil && consent.Application.Name != "" {
		return consent.Application.Name + " へのアクセス許可"
	}

	return "アクセス許可"
}

