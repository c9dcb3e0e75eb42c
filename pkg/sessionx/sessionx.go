// Package sessionx is the session oracle boundary. Session issuance and its
// cryptography live with an external identity service; this package only
// answers "does this request carry a valid session, and for whom".
//
// The presence of a session cookie is never treated as proof of validity:
// every check re-verifies the token, and any failure degrades to an
// unauthenticated session rather than an error.
package sessionx

import "net/http"

// Session is the per-request authentication state. It is derived fresh for
// every request and never persisted or cached.
type Session struct {
	Authenticated bool
	UserID        string
	Email         string
	EmailVerified bool
}

// Anonymous is the session returned for requests with no valid credentials.
var Anonymous = Session{}

// Oracle answers the session question for an inbound request. Implementations
// must be safe for concurrent use and must treat every verification failure
// as Anonymous so routing decisions fail safe, not open.
type Oracle interface {
	Check(r *http.Request) Session
}

// OracleFunc adapts a function to the Oracle interface.
type OracleFunc func(r *http.Request) Session

func (f OracleFunc) Check(r *http.Request) Session { return f(r) }
