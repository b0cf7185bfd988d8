package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "portal/internal/delivery/context"
	"portal/internal/delivery/web/cookie"
	"portal/internal/delivery/web/response"
	"portal/internal/delivery/web/view"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// SignInHandlerParams holds dependencies for SignInHandler, injected by Fx.
type SignInHandlerParams struct {
	fx.In

	AuthUC  usecase.AuthenticationUsecase
	Cookies *cookie.Jar
	Logger  *slog.Logger
}

// SignInHandler serves the sign-in, MFA and sign-out endpoints.
type SignInHandler struct {
	authUC  usecase.AuthenticationUsecase
	cookies *cookie.Jar
	logger  *slog.Logger
}

// NewSignInHandler is the constructor for SignInHandler
func NewSignInHandler(params SignInHandlerParams) *SignInHandler {
	return &SignInHandler{
		authUC:  params.AuthUC,
		cookies: params.Cookies,
		logger:  params.Logger,
	}
}

// SignInForm is the sign-in form submission.
type SignInForm struct {
	Username string `form:"username" validate:"required"`
	Password string `form:"password"`
	Code     string `form:"code"`
	Remember string `form:"remember"`
	Redirect string `form:"redirect"`
}

// MfaForm is the second factor submission.
type MfaForm struct {
	Code     string `form:"code" validate:"required,numeric,len=6"`
	Redirect string `form:"redirect"`
}

// SignInPage is the view model of the sign-in form.
type SignInPage struct {
	Username string
	Remember bool
	Redirect string
}

// MfaPage is the view model of the MFA form.
type MfaPage struct {
	Username string
	Redirect string
}

// ShowSignIn renders the sign-in form prefilled from the query string.
func (h *SignInHandler) ShowSignIn(c echo.Context) error {
	page := &SignInPage{
		Username: c.QueryParam("username"),
		Remember: isChecked(c.QueryParam("remember")),
		Redirect: c.QueryParam("redirect"),
	}

	return response.PageWithNotice(c, http.StatusOK, view.PageSignIn, "サインイン", page, errorNotice(c.QueryParam("error")))
}

// SignIn checks the submitted credentials.
func (h *SignInHandler) SignIn(c echo.Context) error {
	var form SignInForm
	if err := c.Bind(&form); err != nil {
		return h.backToSignIn(c, &form, domainerrors.CodeInvalidInput)
	}
	if err := c.Validate(&form); err != nil {
		return h.backToSignIn(c, &form, domainerrors.CodeInvalidInput)
	}

	result, err := h.authUC.Authenticate(c.Request().Context(), &usecase.AuthenticateInput{
		Username:  form.Username,
		Password:  form.Password,
		Code:      form.Code,
		Remember:  isChecked(form.Remember),
		IPAddress: c.RealIP(),
		UserAgent: c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	switch result.State {
	case entity.SignInAuthenticated:
		return h.completeSignIn(c, result, form.Redirect)
	case entity.SignInMfaPending:
		h.cookies.SetPendingMfa(c, result.Username, result.Remember)

		return response.Redirect(c, usecase.RedirectPush, withQuery(mfaPath, "redirect", form.Redirect))
	default:
		return h.backToSignIn(c, &form, domainerrors.Code(result.ErrorCode))
	}
}

// ShowMfa renders the MFA form while a pending sign-in exists.
func (h *SignInHandler) ShowMfa(c echo.Context) error {
	username, _ := cookie.PendingMfa(c)
	if username == "" {
		return response.Redirect(c, usecase.RedirectReplace,
			withQuery(usecase.SignInPath, "redirect", c.QueryParam("redirect"), "error", string(domainerrors.CodeMfaExpired)))
	}

	page := &MfaPage{Username: username, Redirect: c.QueryParam("redirect")}

	return response.PageWithNotice(c, http.StatusOK, view.PageMfa, "二段階認証", page, errorNotice(c.QueryParam("error")))
}

// SubmitMfa completes a pending sign-in with the second factor.
func (h *SignInHandler) SubmitMfa(c echo.Context) error {
	var form MfaForm
	if err := c.Bind(&form); err != nil {
		return h.backToMfa(c, form.Redirect, domainerrors.CodeInvalidInput)
	}

	username, remember := cookie.PendingMfa(c)
	if username == "" {
		return response.Redirect(c, usecase.RedirectReplace,
			withQuery(usecase.SignInPath, "redirect", form.Redirect, "error", string(domainerrors.CodeMfaExpired)))
	}
	if err := c.Validate(&form); err != nil {
		return h.backToMfa(c, form.Redirect, domainerrors.CodeInvalidInput)
	}

	result, err := h.authUC.CompleteMfa(c.Request().Context(), &usecase.MfaInput{
		PendingUsername: username,
		PendingRemember: remember,
		Code:            form.Code,
		IPAddress:       c.RealIP(),
		UserAgent:       c.Request().UserAgent(),
	})
	if err != nil {
		return err
	}

	switch result.State {
	case entity.SignInAuthenticated:
		return h.completeSignIn(c, result, form.Redirect)
	default:
		if result.ErrorCode == string(domainerrors.CodeMfaExpired) {
			h.cookies.ClearPendingMfa(c)

			return response.Redirect(c, usecase.RedirectReplace,
				withQuery(usecase.SignInPath, "redirect", form.Redirect, "error", result.ErrorCode))
		}

		return h.backToMfa(c, form.Redirect, domainerrors.Code(result.ErrorCode))
	}
}

// SignOut revokes the current session and clears the cookie.
func (h *SignInHandler) SignOut(c echo.Context) error {
	if err := h.authUC.SignOut(c.Request().Context(), cookie.Value(c, cookie.SessionJWT)); err != nil {
		return err
	}

	h.cookies.ClearSession(c)

	return response.Redirect(c, usecase.RedirectPush, usecase.SignInPath)
}

func (h *SignInHandler) completeSignIn(c echo.Context, result *entity.AuthenticationResult, redirect string) error {
	h.cookies.SetSession(c, result.SessionJWT)
	h.cookies.ClearPendingMfa(c)

	deliverycontext.GetLoggerOrDefault(c.Request().Context(), h.logger).Info("Signed in", slog.String("username", result.Username))

	return response.Redirect(c, usecase.RedirectPush, safeRedirect(redirect))
}

// backToSignIn returns to the form with its values preserved. The password is never echoed.
func (h *SignInHandler) backToSignIn(c echo.Context, form *SignInForm, code domainerrors.Code) error {
	return response.Redirect(c, usecase.RedirectReplace, withQuery(usecase.SignInPath,
		"username", form.Username,
		"remember", strconv.FormatBool(isChecked(form.Remember)),
		"redirect", form.Redirect,
		"error", string(code),
	))
}

func (h *SignInHandler) backToMfa(c echo.Context, redirect string, code domainerrors.Code) error {
	return response.Redirect(c, usecase.RedirectReplace, withQuery(mfaPath, "redirect", redirect, "error", string(code)))
}

// errorNotice maps a wire error code to its message. Unknown codes show nothing.
func errorNotice(code string) *view.Notice {
	message := domainerrors.DisplayMessage(code)
	if message == "" {
		return nil
	}

	return &view.Notice{Level: view.NoticeError, Text: message}
}
