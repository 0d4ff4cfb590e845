package domain

import "errors"

var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrNotAuthenticated = errors.New("not authenticated")

// Session is the in-memory record of whether, and as whom, the user is
// currently signed in. Token is an opaque bearer credential issued by the
// remote authentication API; it is presented on outgoing requests and never
// parsed locally.
type Session struct {
	Token    string    `json:"token,omitempty"`
	Identity *Identity `json:"identity,omitempty"`
}

// Authenticated reports whether the session holds a credential. It is derived
// purely from token presence; a session carrying an identity without a token
// is invalid and must never be constructed.
func (s Session) Authenticated() bool {
	return s.Token != ""
}

// Role returns the session's role, or the empty Role when no identity is
// present.
func (s Session) Role() Role {
	if s.Identity == nil {
		return ""
	}
	return s.Identity.Role
}
