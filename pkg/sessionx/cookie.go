package sessionx

import (
	"net/http"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultCookieName is the session cookie the external identity service sets.
const DefaultCookieName = "desk_session"

// sessionClaims is the payload the identity service signs into the session
// cookie. Subject carries the user id.
type sessionClaims struct {
	jwt.RegisteredClaims

	Email         string `json:"email,omitempty"`
	EmailVerified bool   `json:"email_verified,omitempty"`
}

// CookieOracle verifies an HMAC-signed JWT session cookie. Verification only;
// the signing side belongs to the identity service that shares the secret.
type CookieOracle struct {
	CookieName string
	Secret     []byte
	Issuer     string // optional; enforced when non-empty
}

// NewCookieOracle returns a CookieOracle with the default cookie name.
func NewCookieOracle(secret []byte, issuer string) *CookieOracle {
	return &CookieOracle{
		CookieName: DefaultCookieName,
		Secret:     secret,
		Issuer:     issuer,
	}
}

// Check implements Oracle. Missing cookie, malformed token, bad signature,
// wrong algorithm, expiry, and issuer mismatch all return Anonymous.
func (o *CookieOracle) Check(r *http.Request) Session {
	cookie, err := r.Cookie(o.cookieName())
	if err != nil || cookie.Value == "" {
		return Anonymous
	}

	var claims sessionClaims
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if o.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(o.Issuer))
	}

	token, err := jwt.ParseWithClaims(cookie.Value, &claims, func(t *jwt.Token) (any, error) {
		return o.Secret, nil
	}, opts...)
	if err != nil || !token.Valid || claims.Subject == "" {
		return Anonymous
	}

	return Session{
		Authenticated: true,
		UserID:        claims.Subject,
		Email:         claims.Email,
		EmailVerified: claims.EmailVerified,
	}
}

func (o *CookieOracle) cookieName() string {
	if o.CookieName != "" {
		return o.CookieName
	}
	return DefaultCookieName
}
