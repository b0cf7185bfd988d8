package entity

import (
	"slices"
	"strings"
	"time"
)

// OAuth prompt values understood by the consent engine.
const (
	PromptNone          = "none"
	PromptConsent       = "consent"
	PromptSelectAccount = "select_account"
	PromptLogin         = "login"
)

// AuthorizationRequest is a pending OAuth authorization held by the Auth API.
type AuthorizationRequest struct {
	ID                  string `json:"id"`
	ClientID            string `json:"client_id"`
	CodeChallenge       string `json:"code_challenge"`
	CodeChallengeMethod string `json:"code_challenge_method"`
	Nonce               string `json:"nonce"`
	Prompt              string `json:"prompt"`
	RedirectURI         string `json:"redirect_uri"`
	ResponseType        string `json:"response_type"`
	Scope               string `json:"scope"`
	State               string `json:"state"`
}

// AllowsSilentConsent reports whether the request may complete without showing the consent screen.
// Only an exact "none" qualifies.
func (r *AuthorizationRequest) AllowsSilentConsent() bool {
	return r != nil && r.Prompt == PromptNone
}

// Consent is a user's standing grant of scope to an application.
type Consent struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	ApplicationID string    `json:"application_id"`
	Scope         string    `json:"scope"`
	CreatedAt     time.Time `json:"created_at"`
}

// Covers reports whether the consent grants every scope in requested.
func (c *Consent) Covers(requested string) bool {
	granted := Scopes(c.Scope)
	for _, scope := range Scopes(requested) {
		if !slices.Contains(granted, scope) {
			return false
		}
	}

	return true
}

// Scopes splits a space separated OAuth scope string.
func Scopes(scope string) []string {
	return strings.Fields(scope)
}

// Application is an OAuth client registered in the Resource API.
type Application struct {
	ID               string     `json:"id"`
	Name             string     `json:"name"`
	Description      string     `json:"description"`
	WebsiteURL       string     `json:"websiteUrl"`
	PrivacyPolicyURL string     `json:"privacyPolicyUrl"`
	OwnerID          string     `json:"ownerId"`
	CreatedAt        time.Time  `json:"createdAt"`
	UpdatedAt        time.Time  `json:"updatedAt"`
	DeletedAt        *time.Time `json:"deletedAt,omitempty"`
}
