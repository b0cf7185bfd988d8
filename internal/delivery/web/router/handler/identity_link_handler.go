package handler

import (
	"log/slog"
	"net/http"

	"portal/config"
	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// IdentityLinkHandlerParams holds dependencies for IdentityLinkHandler, injected by Fx.
type IdentityLinkHandlerParams struct {
	fx.In

	IdentityLinkUC usecase.IdentityLinkUsecase
	Config         *config.Config
	Logger         *slog.Logger
}

// IdentityLinkHandler serves the Discord link endpoints and the email verification page.
type IdentityLinkHandler struct {
	identityLinkUC usecase.IdentityLinkUsecase
	linkEnabled    bool
	logger         *slog.Logger
}

// NewIdentityLinkHandler is the constructor for IdentityLinkHandler
func NewIdentityLinkHandler(params IdentityLinkHandlerParams) *IdentityLinkHandler {
	return &IdentityLinkHandler{
		identityLinkUC: params.IdentityLinkUC,
		linkEnabled:    params.Config.DiscordEnabled(),
		logger:         params.Logger,
	}
}

// EmailVerifyPage is the view model of the email verification page.
type EmailVerifyPage struct {
	Code        string
	Linked      bool
	LinkEnabled bool
	LinkURL     string
}

// StartDiscord sends the browser to Discord. from names the page to return to.
func (h *IdentityLinkHandler) StartDiscord(c echo.Context) error {
	state := entity.LinkState{
		From: entity.LinkOrigin(c.QueryParam("from")),
		Code: c.QueryParam("code"),
	}
	if !state.From.IsValid() {
		state.From = entity.LinkFromSettings
	}

	location, err := h.identityLinkUC.StartLink(c.Request().Context(), state)
	if err != nil {
		if errors.Is(err, usecase.ErrLinkingDisabled) {
			return echo.ErrNotFound
		}

		return err
	}

	return response.Redirect(c, usecase.RedirectPush, location)
}

// DiscordCallback finishes the link. Every outcome is a redirect.
func (h *IdentityLinkHandler) DiscordCallback(c echo.Context) error {
	outcome := h.identityLinkUC.HandleCallback(c.Request().Context(), &usecase.CallbackInput{
		Code:       c.QueryParam("code"),
		State:      c.QueryParam("state"),
		Error:      c.QueryParam("error"),
		SessionJWT: cookie.Value(c, cookie.SessionJWT),
	})

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).
		Debug("Identity link finished", slog.String("status", outcome.Status))

	return response.Redirect(c, usecase.RedirectPush, outcome.Location)
}

// EmailVerify renders the verification status page with the Discord link result.
func (h *IdentityLinkHandler) EmailVerify(c echo.Context) error {
	code := c.QueryParam("code")
	page := &EmailVerifyPage{
		Code:        code,
		Linked:      isChecked(c.QueryParam("discord_linked")),
		LinkEnabled: h.linkEnabled && code != "",
		LinkURL:     withQuery("/api/oauth/discord", "from", string(entity.LinkFromEmailVerify), "code", code),
	}

	var notice *view.Notice
	switch {
	case page.Linked:
		notice = &view.Notice{Level: view.NoticeSuccess, Text: "Discord アカウントを連携しました。"}
	case isChecked(c.QueryParam("discord_error")):
		notice = &view.Notice{Level: view.NoticeError, Text: "Discord アカウントの連携に失敗しました。もう一度お試しください。"}
	}

	return response.PageWithNotice(c, http.StatusOK, view.PageEmailVerify, "メールアドレスの確認", page, notice)
}
