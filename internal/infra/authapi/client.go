// Package authapi is the REST client of the Auth API internal endpoints.
package authapi

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"

	"portal/config"
	"portal/internal/domain/entity"
	domainerrors "portal/internal/domain/errors"
	"portal/internal/domain/service"
	"portal/internal/infra/httpclient"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Rejection reasons sent by the authentication endpoint with a 401.
const (
	reasonInvalidCredentials = "invalid_credentials"
	reasonUserInactive       = "user_inactive"
)

type client struct {
	api     *httpclient.Client
	verify  *httpclient.Client
	jwks    *httpclient.Client
	jwksURL string
}

// ClientParams holds dependencies for the Auth API client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
}

// NewClient creates the Auth API client. Session verification and JWKS fetches use the shorter verify timeout.
func NewClient(params ClientParams) service.AuthAPI {
	cfg := params.Config.AuthAPI

	return &client{
		api:     httpclient.New(cfg.URL, cfg.Timeout),
		verify:  httpclient.New(cfg.URL, cfg.VerifyTimeout),
		jwks:    httpclient.New("", cfg.VerifyTimeout),
		jwksURL: params.Config.JWKSURL(),
	}
}

func (c *client) Authenticate(ctx context.Context, credentials *entity.Credentials) (*entity.AuthenticationResponse, error) {
	var resp entity.AuthenticationResponse
	if err := c.api.Post(ctx, "/internal/authentication", nil, credentials, &resp); err != nil {
		return nil, mapAuthenticationError(err)
	}

	return &resp, nil
}

func (c *client) VerifySession(ctx context.Context, jti string) (bool, error) {
	var resp struct {
		Valid bool `json:"valid"`
	}
	if err := c.verify.Get(ctx, "/internal/session_verify", url.Values{"jti": {jti}}, &resp); err != nil {
		return false, errors.Wrap(err, "failed to verify session")
	}

	return resp.Valid, nil
}

func (c *client) GetSession(ctx context.Context, id string) (*entity.Session, error) {
	var session entity.Session
	if err := c.api.Get(ctx, "/internal/sessions/"+url.PathEscape(id), nil, &session); err != nil {
		return nil, mapError(err, "failed to get session")
	}

	return &session, nil
}

func (c *client) ListSessions(ctx context.Context, userID string) ([]*entity.Session, error) {
	var sessions []*entity.Session
	if err := c.api.Get(ctx, "/internal/sessions", url.Values{"user_id": {userID}}, &sessions); err != nil {
		return nil, mapError(err, "failed to list sessions")
	}

	return sessions, nil
}

func (c *client) DeleteSession(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/internal/sessions/"+url.PathEscape(id)); err != nil {
		return mapError(err, "failed to delete session")
	}

	return nil
}

func (c *client) GetAuthRequest(ctx context.Context, id string) (*entity.AuthorizationRequest, error) {
	var request entity.AuthorizationRequest
	if err := c.api.Get(ctx, "/internal/auth-requests/"+url.PathEscape(id), nil, &request); err != nil {
		return nil, mapError(err, "failed to get authorization request")
	}

	return &request, nil
}

func (c *client) ConfirmConsent(ctx context.Context, confirmation *service.ConsentConfirmation) error {
	query := url.Values{
		"user_id":        {confirmation.UserID},
		"application_id": {confirmation.ApplicationID},
		"scope":          {confirmation.Scope},
	}
	path := "/internal/auth-requests/" + url.PathEscape(confirmation.AuthRequestID) + "/consented"
	if err := c.api.Post(ctx, path, query, nil, nil); err != nil {
		return mapError(err, "failed to confirm consent")
	}

	return nil
}

func (c *client) ListConsents(ctx context.Context, query *service.ConsentQuery) ([]*entity.Consent, error) {
	values := url.Values{}
	if query.UserID != "" {
		values.Set("user_id", query.UserID)
	}
	if query.ApplicationID != "" {
		values.Set("application_id", query.ApplicationID)
	}
	if query.Scope != "" {
		values.Set("scope", query.Scope)
	}

	var consents []*entity.Consent
	if err := c.api.Get(ctx, "/internal/consents", values, &consents); err != nil {
		return nil, mapError(err, "failed to list consents")
	}

	return consents, nil
}

func (c *client) DeleteConsent(ctx context.Context, id string) error {
	if err := c.api.Delete(ctx, "/internal/consents/"+url.PathEscape(id)); err != nil {
		return mapError(err, "failed to delete consent")
	}

	return nil
}

func (c *client) JWKS(ctx context.Context) ([]byte, error) {
	raw, err := c.jwks.DoRaw(ctx, http.MethodGet, c.jwksURL, nil, nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to fetch jwks")
	}

	return raw, nil
}

// mapAuthenticationError turns authentication rejections into the closed taxonomy.
func mapAuthenticationError(err error) error {
	statusErr, ok := httpclient.AsStatusError(err)
	if !ok {
		return domainerrors.ErrAuthServer.WrapMessage(err.Error())
	}

	switch {
	case statusErr.StatusCode == http.StatusUnauthorized && rejectionReason(statusErr.Body) == reasonUserInactive:
		return domainerrors.ErrAccountLocked
	case statusErr.StatusCode == http.StatusUnauthorized && rejectionReason(statusErr.Body) == reasonInvalidCredentials:
		return domainerrors.ErrInvalidCredentials
	case statusErr.StatusCode == http.StatusBadRequest:
		return domainerrors.ErrInvalidInput
	default:
		return domainerrors.ErrAuthServer.WithDetails(statusErr.Error())
	}
}

func rejectionReason(body []byte) string {
	var payload struct {
		Reason string `json:"reason"`
		Error  string `json:"error"`
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		return ""
	}
	if payload.Reason != "" {
		return payload.Reason
	}

	return payload.Error
}

func mapError(err error, message string) error {
	statusErr, ok := httpclient.AsStatusError(err)
	if ok && statusErr.StatusCode == http.StatusNotFound {
		return errors.Wrap(domainerrors.ErrResourceNotFound.WithDetails(statusErr.Path), message)
	}

	return errors.Wrap(domainerrors.ErrAuthServer.WithDetails(err.Error()), message)
}
