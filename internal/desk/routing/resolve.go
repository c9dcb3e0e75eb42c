package routing

import (
	"context"
	"errors"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

// Resolver looks up tenants by slug. It is read-only, idempotent, and safe to
// call any number of times per request; results are never cached across
// requests.
type Resolver struct {
	Store store.Store
}

// Resolve returns the organization for a slug. It fails closed: a store
// error is reported as "does not exist" rather than leaking internals into a
// routing decision.
func (r *Resolver) Resolve(ctx context.Context, slug string) (domain.Organization, bool) {
	if !domain.ValidSlug(slug) {
		return domain.Organization{}, false
	}

	org, err := r.Store.Organizations().GetOrganizationBySlug(ctx, slug)
	if err != nil {
		if !errors.Is(err, store.ErrNotFound) {
			slogx.FromContext(ctx).Warn("tenant resolve failed closed",
				"slug", slug,
				"error", err,
			)
		}
		return domain.Organization{}, false
	}
	return org, true
}
