package httpx

import (
	"context"

	"github.com/stackdesk/stackdesk/pkg/sessionx"
)

type ctxKey string

const (
	CtxKeyUserID  ctxKey = "user_id"
	CtxKeyEmail   ctxKey = "email"
	CtxKeySession ctxKey = "session" // full sessionx.Session
)

// SessionFromCtx returns the verified session attached by SessionMiddleware.
func SessionFromCtx(ctx context.Context) sessionx.Session {
	if s, ok := ctx.Value(CtxKeySession).(sessionx.Session); ok {
		return s
	}
	return sessionx.Anonymous
}

// UserIDFromCtx returns the authenticated user id, or "".
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}
