package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/routing"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/internal/desk/store/drivers/sqlite"
	"github.com/stackdesk/stackdesk/pkg/idx"
	"github.com/stackdesk/stackdesk/pkg/sessionx"

	"github.com/stretchr/testify/require"
)

// newPagesFixture seeds an "acme" organization with one member and returns
// the page tree wrapped in the routing gate, exactly as registerPages mounts
// it, with the oracle pinned to the given session.
func newPagesFixture(t *testing.T, sess sessionx.Session) http.Handler {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	ctx := context.Background()
	org := domain.Organization{ID: idx.New().String(), Slug: "acme", Name: "Acme Corp"}
	require.NoError(t, st.Organizations().CreateOrganization(ctx, org))
	require.NoError(t, st.Memberships().CreateMembership(ctx, domain.Membership{
		ID:             idx.New().String(),
		UserID:         "user-member",
		Email:          "member@example.com",
		OrganizationID: org.ID,
		Role:           domain.RoleMember,
	}))

	pages := &PagesHandler{
		OrganizationService: &service.OrganizationService{Store: st},
		Store:               st,
	}
	gate := &routing.Gate{
		Oracle: sessionx.OracleFunc(func(r *http.Request) sessionx.Session {
			return sess
		}),
		Resolver: &routing.Resolver{Store: st},
	}
	return gate.Wrap(pages)
}

func getPage(t *testing.T, handler http.Handler, path string) (int, map[string]any) {
	t.Helper()

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return rec.Code, body
}

func TestTenantPageRequiresMembership(t *testing.T) {
	t.Run("member renders the page with their role", func(t *testing.T) {
		sess := sessionx.Session{Authenticated: true, UserID: "user-member", Email: "member@example.com"}
		handler := newPagesFixture(t, sess)

		code, body := getPage(t, handler, "/acme/dashboard")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "acme/dashboard", body["page"])
		require.Equal(t, "acme", body["organization"])
		require.Equal(t, "member", body["role"])
	})

	t.Run("authenticated non-member is forbidden", func(t *testing.T) {
		sess := sessionx.Session{Authenticated: true, UserID: "user-stranger", Email: "stranger@example.com"}
		handler := newPagesFixture(t, sess)

		code, body := getPage(t, handler, "/acme/dashboard")
		require.Equal(t, http.StatusForbidden, code)
		require.Equal(t, "forbidden", body["page"])
		require.NotContains(t, body, "role")
	})

	t.Run("unresolved slug renders not found", func(t *testing.T) {
		sess := sessionx.Session{Authenticated: true, UserID: "user-member"}
		handler := newPagesFixture(t, sess)

		code, body := getPage(t, handler, "/ghost/dashboard")
		require.Equal(t, http.StatusNotFound, code)
		require.Equal(t, "not-found", body["page"])
	})

	t.Run("tenant landing stays public for non-members", func(t *testing.T) {
		handler := newPagesFixture(t, sessionx.Anonymous)

		code, body := getPage(t, handler, "/acme")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "acme", body["organization"])
	})

	t.Run("tenant login needs no membership", func(t *testing.T) {
		sess := sessionx.Session{Authenticated: true, UserID: "user-stranger"}
		handler := newPagesFixture(t, sess)

		code, body := getPage(t, handler, "/acme/login")
		require.Equal(t, http.StatusOK, code)
		require.Equal(t, "acme/login", body["page"])
	})
}
