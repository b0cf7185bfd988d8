package service

import (
	"context"

	"portal/internal/domain/entity"
)

// IdentityProvider is an external OAuth2 provider whose identities can be linked to portal accounts.
type IdentityProvider interface {
	// Name returns the provider key stored on linked identities, e.g. "discord".
	Name() string

	// AuthCodeURL builds the provider consent URL carrying the opaque state.
	AuthCodeURL(state string) string

	// Exchange trades an authorization code for tokens.
	Exchange(ctx context.Context, code string) (*entity.ProviderTokens, error)

	// FetchUser reads the provider profile of the token owner.
	FetchUser(ctx context.Context, tokens *entity.ProviderTokens) (*entity.ProviderUser, error)
}
