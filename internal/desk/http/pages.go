package http

import (
	"errors"
	"net/http"

	"github.com/stackdesk/stackdesk/internal/desk/routing"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/httpx"
)

// PagesHandler renders the page tree behind the routing gate. The gate has
// already classified the path, checked the session, resolved the tenant, and
// redirected anything that should not reach a page. Membership inside a
// tenant is checked here: the gate only guarantees an authenticated session,
// not that the session belongs to the organization.
//
// Pages render as JSON page descriptors; the web frontend consumes these and
// owns the actual markup.
type PagesHandler struct {
	OrganizationService *service.OrganizationService
	Store               store.Store
}

func (h *PagesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	class, slug := routing.Classify(r.URL.Path)
	sess := routing.SessionFrom(ctx)

	switch class {
	case routing.ClassPublicRoot:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"page": "home",
		})

	case routing.ClassAuthEntry:
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"page": pageName(r.URL.Path),
		})

	case routing.ClassGeneralProtected:
		orgs, err := h.OrganizationService.ListForUser(ctx, sess.UserID)
		if err != nil {
			writeServiceError(w, r, err)
			return
		}
		slugs := make([]string, 0, len(orgs))
		for _, org := range orgs {
			slugs = append(slugs, org.Slug)
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"page":          "organizations",
			"organizations": slugs,
		})

	case routing.ClassTenantProtected:
		org, ok := routing.OrganizationFrom(ctx)
		if !ok {
			h.renderNotFound(w)
			return
		}
		// The gate vouches for the session, not for membership. A resolved
		// tenant page renders only for members; everyone else gets a
		// forbidden page, distinct from the not-found an unresolved slug gets.
		member, err := h.Store.Memberships().GetMembershipByUserAndOrg(ctx, sess.UserID, org.ID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				httpx.WriteJSON(w, http.StatusForbidden, map[string]any{
					"page":         "forbidden",
					"organization": org.Slug,
				})
				return
			}
			writeServiceError(w, r, err)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, map[string]any{
			"page":         pageName(r.URL.Path),
			"organization": org.Slug,
			"role":         string(member.Role),
		})

	case routing.ClassTenantAuthEntry, routing.ClassPublic:
		org, ok := routing.OrganizationFrom(ctx)
		if !ok && slug != "" {
			h.renderNotFound(w)
			return
		}
		payload := map[string]any{
			"page": pageName(r.URL.Path),
		}
		if ok {
			payload["organization"] = org.Slug
		}
		httpx.WriteJSON(w, http.StatusOK, payload)

	default:
		http.NotFound(w, r)
	}
}

// renderNotFound is the generic not-found page; a slug that resolves to
// nothing renders the same descriptor as a typo.
func (h *PagesHandler) renderNotFound(w http.ResponseWriter) {
	httpx.WriteJSON(w, http.StatusNotFound, map[string]any{
		"page": "not-found",
	})
}

func pageName(path string) string {
	if path == "" || path == "/" {
		return "home"
	}
	return path[1:]
}
