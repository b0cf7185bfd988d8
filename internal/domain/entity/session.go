// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"
)

// SessionSubjectPrefix marks JWT subjects that refer to a portal session.
const SessionSubjectPrefix = "SID_"

// Session is a sign-in session owned by the Auth API.
type Session struct {
	ID          string     `json:"id"`
	UserID      string     `json:"userId"`
	IPAddress   string     `json:"ipAddress"`
	UserAgent   string     `json:"userAgent"`
	ExpiresAt   time.Time  `json:"expiresAt"`
	LastLoginAt *time.Time `json:"lastLoginAt,omitempty"`
	CreatedAt   time.Time  `json:"createdAt"`
	UpdatedAt   time.Time  `json:"updatedAt"`
	DeletedAt   *time.Time `json:"deletedAt,omitempty"`
}

// IsActive reports whether the session is neither revoked nor expired at now.
func (s *Session) IsActive(now time.Time) bool {
	if s == nil || s.DeletedAt != nil {
		return false
	}

	return s.ExpiresAt.IsZero() || s.ExpiresAt.After(now)
}

// SessionClaims are the verified claims of a session JWT.
type SessionClaims struct {
	Subject   string
	JTI       string
	Issuer    string
	ExpiresAt time.Time
	IssuedAt  time.Time
	Raw       map[string]any
}

// SessionID returns the session id encoded in the subject and whether the subject carried the SID_ prefix.
func (c *SessionClaims) SessionID() (string, bool) {
	if c == nil {
		return "", false
	}

	id, ok := strings.CutPrefix(c.Subject, SessionSubjectPrefix)
	if !ok || id == "" {
		return "", false
	}

	return id, true
}

// VerifyResult is the fail-closed outcome of a session JWT verification.
type VerifyResult struct {
	Valid  bool
	Claims *SessionClaims
}

// Invalid is the zero-information verification result.
func Invalid() VerifyResult {
	return VerifyResult{}
}
