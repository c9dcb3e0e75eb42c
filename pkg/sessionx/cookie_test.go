package sessionx

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func signSession(t *testing.T, secret []byte, method jwt.SigningMethod, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(method, claims)
	signed, err := token.SignedString(secret)
	require.NoError(t, err)
	return signed
}

func requestWithCookie(name, value string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/acme/dashboard", nil)
	r.AddCookie(&http.Cookie{Name: name, Value: value})
	return r
}

func validClaims() jwt.MapClaims {
	return jwt.MapClaims{
		"sub":            "user-1",
		"email":          "user@example.com",
		"email_verified": true,
		"exp":            time.Now().Add(time.Hour).Unix(),
		"iat":            time.Now().Unix(),
	}
}

func TestCookieOracleValidSession(t *testing.T) {
	t.Parallel()

	oracle := NewCookieOracle(testSecret, "")
	value := signSession(t, testSecret, jwt.SigningMethodHS256, validClaims())

	sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
	require.True(t, sess.Authenticated)
	require.Equal(t, "user-1", sess.UserID)
	require.Equal(t, "user@example.com", sess.Email)
	require.True(t, sess.EmailVerified)
}

func TestCookieOracleFailsClosed(t *testing.T) {
	t.Parallel()

	oracle := NewCookieOracle(testSecret, "")

	t.Run("no cookie", func(t *testing.T) {
		sess := oracle.Check(httptest.NewRequest(http.MethodGet, "/", nil))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("garbage cookie", func(t *testing.T) {
		sess := oracle.Check(requestWithCookie(DefaultCookieName, "not-a-jwt"))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("wrong secret", func(t *testing.T) {
		value := signSession(t, []byte("other-secret-other-secret-other!"), jwt.SigningMethodHS256, validClaims())
		sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("wrong algorithm", func(t *testing.T) {
		value := signSession(t, testSecret, jwt.SigningMethodHS512, validClaims())
		sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("expired", func(t *testing.T) {
		claims := validClaims()
		claims["exp"] = time.Now().Add(-time.Minute).Unix()
		value := signSession(t, testSecret, jwt.SigningMethodHS256, claims)
		sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("missing expiry", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "exp")
		value := signSession(t, testSecret, jwt.SigningMethodHS256, claims)
		sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("missing subject", func(t *testing.T) {
		claims := validClaims()
		delete(claims, "sub")
		value := signSession(t, testSecret, jwt.SigningMethodHS256, claims)
		sess := oracle.Check(requestWithCookie(DefaultCookieName, value))
		require.Equal(t, Anonymous, sess)
	})

	t.Run("wrong cookie name", func(t *testing.T) {
		value := signSession(t, testSecret, jwt.SigningMethodHS256, validClaims())
		sess := oracle.Check(requestWithCookie("other_cookie", value))
		require.Equal(t, Anonymous, sess)
	})
}

func TestCookieOracleIssuerCheck(t *testing.T) {
	t.Parallel()

	oracle := NewCookieOracle(testSecret, "stackdesk-id")

	claims := validClaims()
	claims["iss"] = "stackdesk-id"
	value := signSession(t, testSecret, jwt.SigningMethodHS256, claims)
	require.True(t, oracle.Check(requestWithCookie(DefaultCookieName, value)).Authenticated)

	claims["iss"] = "someone-else"
	value = signSession(t, testSecret, jwt.SigningMethodHS256, claims)
	require.Equal(t, Anonymous, oracle.Check(requestWithCookie(DefaultCookieName, value)))
}
