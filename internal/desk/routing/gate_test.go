package routing

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store/drivers/sqlite"
	"github.com/stackdesk/stackdesk/pkg/idx"
	"github.com/stackdesk/stackdesk/pkg/sessionx"
	"github.com/stretchr/testify/require"
)

func newGateFixture(t *testing.T, sess sessionx.Session) (*Gate, *int) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	org := domain.Organization{ID: idx.New().String(), Slug: "acme", Name: "Acme Corp"}
	require.NoError(t, st.Organizations().CreateOrganization(context.Background(), org))

	oracleCalls := 0
	gate := &Gate{
		Oracle: sessionx.OracleFunc(func(r *http.Request) sessionx.Session {
			oracleCalls++
			return sess
		}),
		Resolver: &Resolver{Store: st},
	}
	return gate, &oracleCalls
}

func TestGateRedirectsAnonymous(t *testing.T) {
	gate, _ := newGateFixture(t, sessionx.Anonymous)

	handler := gate.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run for a redirected request")
	}))

	cases := []struct {
		path   string
		target string
	}{
		{"/acme/dashboard", "/acme/login"},
		{"/organizations", "/login"},
		{"/", "/login"},
	}

	for _, tc := range cases {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tc.path, nil))
		require.Equal(t, http.StatusFound, rec.Code, "path %q", tc.path)
		require.Equal(t, tc.target, rec.Header().Get("Location"), "path %q", tc.path)
	}
}

func TestGateAllowsAuthenticated(t *testing.T) {
	sess := sessionx.Session{Authenticated: true, UserID: "user-1", Email: "user@example.com"}
	gate, _ := newGateFixture(t, sess)

	var gotSess sessionx.Session
	var gotOrg domain.Organization
	var orgOK bool
	handler := gate.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSess = SessionFrom(r.Context())
		gotOrg, orgOK = OrganizationFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/acme/dashboard", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	require.Equal(t, sess, gotSess)
	require.True(t, orgOK)
	require.Equal(t, "acme", gotOrg.Slug)
}

func TestGateBouncesAuthenticatedOffAuthPages(t *testing.T) {
	sess := sessionx.Session{Authenticated: true, UserID: "user-1"}
	gate, _ := newGateFixture(t, sess)

	handler := gate.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run")
	}))

	for _, path := range []string{"/login", "/signup", "/"} {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.Equal(t, http.StatusFound, rec.Code, "path %q", path)
		require.Equal(t, "/select-organization", rec.Header().Get("Location"), "path %q", path)
	}
}

func TestGateBypassSkipsOracle(t *testing.T) {
	gate, calls := newGateFixture(t, sessionx.Anonymous)

	handled := false
	handler := gate.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		handled = true
	}))

	for _, path := range []string{"/assets/app.css", "/livez", "/v1/organizations", "/favicon.ico"} {
		handled = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
		require.True(t, handled, "path %q should pass straight through", path)
	}
	require.Zero(t, *calls, "bypass traffic must not consult the session oracle")
}

// Tenant landing pages stay reachable for everyone even when the slug
// resolves to nothing; the page layer owns the not-found rendering.
func TestGateTenantLanding(t *testing.T) {
	gate, _ := newGateFixture(t, sessionx.Anonymous)

	var orgOK bool
	handler := gate.Wrap(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, orgOK = OrganizationFrom(r.Context())
		w.WriteHeader(http.StatusOK)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/acme", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.True(t, orgOK)

	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ghost", nil))
	require.Equal(t, http.StatusOK, rec.Code)
	require.False(t, orgOK)
}
