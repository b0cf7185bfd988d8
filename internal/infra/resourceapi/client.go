// Package resourceapi is the REST client of the Resource API.
package resourceapi

import (
	"bytes"
	"context"
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

// conflictMarker is the error name the Resource API uses for uniqueness violations.
const conflictMarker = "ResourceAlreadyExists"

type client struct {
	api *httpclient.Client
}

// ClientParams holds dependencies for the Resource API client, injected by Fx.
type ClientParams struct {
	fx.In

	Config *config.Config
}

// NewClient creates the Resource API client.
func NewClient(params ClientParams) service.ResourceAPI {
	return &client{
		api: httpclient.New(params.Config.ResourceAPI.URL, params.Config.ResourceAPI.Timeout),
	}
}

func (c *client) GetApplication(ctx context.Context, id string) (*entity.Application, error) {
	var application entity.Application
	if err := c.api.Get(ctx, "/applications/"+url.PathEscape(id), nil, &application); err != nil {
		return nil, mapError(err, "failed to get application")
	}

	return &application, nil
}

func (c *client) GetUser(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	if err := c.api.Get(ctx, "/users/"+url.PathEscape(id), nil, &user); err != nil {
		return nil, mapError(err, "failed to get user")
	}

	return &user, nil
}

func (c *client) AddExternalIdentity(ctx context.Context, userID string, identity *entity.ExternalIdentity) error {
	path := "/users/" + url.PathEscape(userID) + "/external_identities"
	if err := c.api.Post(ctx, path, nil, identity, nil); err != nil {
		return mapError(err, "failed to add external identity")
	}

	return nil
}

func (c *client) CreateExternalIdentityByEmailVerificationCode(ctx context.Context, code string, identity *entity.ExternalIdentity) error {
	path := "/email_verifications/" + url.PathEscape(code) + "/external_identities"
	if err := c.api.Post(ctx, path, nil, identity, nil); err != nil {
		return mapError(err, "failed to create external identity by email verification code")
	}

	return nil
}

func mapError(err error, message string) error {
	statusErr, ok := httpclient.AsStatusError(err)
	if !ok {
		return errors.Wrap(domainerrors.ErrResourceAPI.WithDetails(err.Error()), message)
	}

	switch {
	case statusErr.StatusCode == http.StatusConflict || bytes.Contains(statusErr.Body, []byte(conflictMarker)):
		return errors.Wrap(domainerrors.ErrResourceAlreadyExists.WithDetails(statusErr.Path), message)
	case statusErr.StatusCode == http.StatusNotFound:
		return errors.Wrap(domainerrors.ErrResourceNotFound.WithDetails(statusErr.Path), message)
	default:
		return errors.Wrap(domainerrors.ErrResourceAPI.WithDetails(statusErr.Error()), message)
	}
}
