package httpx

import (
	"context"
	"net/http"

	"github.com/stackdesk/stackdesk/pkg/sessionx"
)

// SessionMiddleware consults the session oracle and rejects unauthenticated
// requests with 401. The oracle is called fresh per request; cookie presence
// is never shortcut into "authenticated".
func SessionMiddleware(oracle sessionx.Oracle) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess := oracle.Check(r)
			if !sess.Authenticated {
				WriteJSON(w, http.StatusUnauthorized, map[string]string{
					"error":             "unauthorized",
					"error_description": "Authentication required",
				})
				return
			}

			ctx := contextWithSession(r.Context(), sess)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func contextWithSession(ctx context.Context, s sessionx.Session) context.Context {
	ctx = context.WithValue(ctx, CtxKeyUserID, s.UserID)
	ctx = context.WithValue(ctx, CtxKeyEmail, s.Email)
	ctx = context.WithValue(ctx, CtxKeySession, s)
	return ctx
}
