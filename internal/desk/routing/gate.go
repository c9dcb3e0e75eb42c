package routing

import (
	"context"
	"net/http"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/pkg/sessionx"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

// Gate is the routing surface: one entry point invoked per request that
// either lets the request through or answers with a redirect. Routing-layer
// failures never surface as errors; they degrade to a redirect decision.
type Gate struct {
	Oracle   sessionx.Oracle
	Resolver *Resolver
}

// Wrap applies the gate in front of next. The session oracle and tenant
// resolver are consulted fresh on every request; nothing is cached between
// requests.
func (g *Gate) Wrap(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		class, slug := Classify(r.URL.Path)
		if class == ClassBypass {
			next.ServeHTTP(w, r)
			return
		}

		sess := g.Oracle.Check(r)

		var org *domain.Organization
		if slug != "" {
			if resolved, ok := g.Resolver.Resolve(ctx, slug); ok {
				org = &resolved
			}
		}

		verdict := Decide(Input{
			Class:   class,
			Slug:    slug,
			Session: sess,
			Org:     org,
		})

		if verdict.Action == ActionRedirect {
			slogx.FromContext(ctx).Debug("routing redirect",
				"class", class.String(),
				"slug", slug,
				"authenticated", sess.Authenticated,
				"target", verdict.Target,
			)
			http.Redirect(w, r, verdict.Target, http.StatusFound)
			return
		}

		// Hand the session and resolved tenant to the page layer, which owns
		// the fine-grained membership and role checks.
		ctx = WithSession(ctx, sess)
		if org != nil {
			ctx = WithOrganization(ctx, *org)
		}
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

type sessionCtxKey struct{}
type orgCtxKey struct{}

// WithSession attaches the per-request session to the context.
func WithSession(ctx context.Context, s sessionx.Session) context.Context {
	return context.WithValue(ctx, sessionCtxKey{}, s)
}

// SessionFrom returns the session the gate attached, or Anonymous.
func SessionFrom(ctx context.Context) sessionx.Session {
	if s, ok := ctx.Value(sessionCtxKey{}).(sessionx.Session); ok {
		return s
	}
	return sessionx.Anonymous
}

// WithOrganization attaches the resolved tenant to the context.
func WithOrganization(ctx context.Context, org domain.Organization) context.Context {
	return context.WithValue(ctx, orgCtxKey{}, org)
}

// OrganizationFrom returns the tenant the gate resolved, if any.
func OrganizationFrom(ctx context.Context) (domain.Organization, bool) {
	org, ok := ctx.Value(orgCtxKey{}).(domain.Organization)
	return org, ok
}
