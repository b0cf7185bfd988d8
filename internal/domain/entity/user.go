package entity

import "time"

// User is a portal member as served by the Resource API.
type User struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	AvatarURL string    `json:"avatarUrl,omitempty"`
	Roles     []string  `json:"roles,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ProviderDiscord identifies Discord external identities.
const ProviderDiscord = "discord"

// ExternalIdentity links a user to an account at an external provider.
type ExternalIdentity struct {
	ID             string         `json:"id,omitempty"`
	Provider       string         `json:"provider"`
	ExternalUserID string         `json:"externalUserId"`
	AccessToken    string         `json:"accessToken,omitempty"`
	RefreshToken   string         `json:"refreshToken,omitempty"`
	IDTokenClaims  map[string]any `json:"idTokenClaims,omitempty"`
	UserID         string         `json:"userId,omitempty"`
	CreatedAt      *time.Time     `json:"createdAt,omitempty"`
	UpdatedAt      *time.Time     `json:"updatedAt,omitempty"`
}

// ProviderUser is the account information returned by an external provider.
type ProviderUser struct {
	ID        string
	Username  string
	Email     string
	AvatarURL string
	Raw       map[string]any
}

// ProviderTokens are the OAuth tokens issued by an external provider.
type ProviderTokens struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	Expiry       time.Time
}
