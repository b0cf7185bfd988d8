package entity

import (
	"encoding/base64"
	"encoding/json"
	"strings"

	"github.com/pkg/errors"
)

// LinkOrigin names the flow that started an identity link.
type LinkOrigin string

const (
	LinkFromSettings    LinkOrigin = "settings"
	LinkFromSignup      LinkOrigin = "signup"
	LinkFromEmailVerify LinkOrigin = "email_verify"
)

// IsValid checks if the origin is one the callback knows how to finish.
func (o LinkOrigin) IsValid() bool {
	switch o {
	case LinkFromSettings, LinkFromSignup, LinkFromEmailVerify:
		return true
	default:
		return false
	}
}

// LinkState travels through the provider as the OAuth state parameter.
type LinkState struct {
	From LinkOrigin `json:"from"`
	Code string     `json:"code,omitempty"`
}

// Encode returns the base64 JSON wire form.
func (s LinkState) Encode() (string, error) {
	raw, err := json.Marshal(s)
	if err != nil {
		return "", errors.Wrap(err, "failed to marshal link state")
	}

	return base64.StdEncoding.EncodeToString(raw), nil
}

// DecodeLinkState parses the wire form. Both standard and URL-safe alphabets are accepted.
func DecodeLinkState(encoded string) (*LinkState, error) {
	encoded = strings.TrimSpace(encoded)
	if encoded == "" {
		return nil, errors.New("empty state")
	}

	raw, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		raw, err = base64.RawURLEncoding.DecodeString(strings.TrimRight(encoded, "="))
		if err != nil {
			return nil, errors.Wrap(err, "state is not base64")
		}
	}

	var state LinkState
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, errors.Wrap(err, "state is not JSON")
	}

	return &state, nil
}
