package httpx

import "net/http"

// RequireVerifiedEmail rejects authenticated sessions whose email address has
// not been verified. Use it on actions that fan out email on the user's
// behalf, like creating organizations or minting invitations.
func RequireVerifiedEmail() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := SessionFromCtx(r.Context())
			if !sess.EmailVerified {
				WriteJSON(w, http.StatusForbidden, map[string]string{
					"error":             "email_unverified",
					"error_description": "Verify your email address to perform this action",
				})
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
