package entity

// Credential types accepted by the Auth API authentication endpoint.
const (
	CredentialPassword = "password"
	CredentialTOTP     = "totp"
)

// Credentials is the payload sent to the Auth API to start or finish a sign-in.
type Credentials struct {
	Type      string `json:"type"`
	Username  string `json:"username"`
	Password  string `json:"password,omitempty"`
	Code      string `json:"code,omitempty"`
	IPAddress string `json:"ipAddress"`
	UserAgent string `json:"userAgent"`
	Remember  bool   `json:"remember"`
}

// AuthenticationResponse is the Auth API answer to a successful credential check.
type AuthenticationResponse struct {
	RequireMfa bool   `json:"requireMfa,omitempty"`
	MfaType    string `json:"mfaType,omitempty"`
	SessionJWT string `json:"sessionJwt,omitempty"`
}

// SignInState is a node of the sign-in state machine.
type SignInState int

const (
	SignInAnonymous SignInState = iota
	SignInAuthenticating
	SignInAuthenticated
	SignInMfaPending
	SignInFailed
)

// String returns the state name.
func (s SignInState) String() string {
	switch s {
	case SignInAnonymous:
		return "anonymous"
	case SignInAuthenticating:
		return "authenticating"
	case SignInAuthenticated:
		return "authenticated"
	case SignInMfaPending:
		return "mfa_pending"
	case SignInFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// AuthenticationResult is the terminal state reached by one sign-in step.
// Failed results carry the wire error code shown on the sign-in form.
type AuthenticationResult struct {
	State      SignInState
	SessionJWT string
	MfaType    string
	Username   string
	Remember   bool
	ErrorCode  string
}
