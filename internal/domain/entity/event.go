package entity

import "time"

// AuthEventType classifies audit events.
type AuthEventType string

const (
	EventSignedIn             AuthEventType = "signed_in"
	EventMfaPending           AuthEventType = "mfa_pending"
	EventConsentAutoCompleted AuthEventType = "consent_auto_completed"
	EventIdentityLinked       AuthEventType = "identity_linked"
	EventSessionRevoked       AuthEventType = "session_revoked"
	EventConsentRevoked       AuthEventType = "consent_revoked"
)

// AuthEvent is an audit record of a security relevant portal action.
type AuthEvent struct {
	ID         string            `json:"id"`
	RequestID  string            `json:"request_id,omitempty"`
	Type       AuthEventType     `json:"type"`
	UserID     string            `json:"user_id,omitempty"`
	Subject    string            `json:"subject,omitempty"`
	Attributes map[string]string `json:"attributes,omitempty"`
	OccurredAt time.Time         `json:"occurred_at"`
}
