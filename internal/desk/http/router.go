package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/stackdesk/stackdesk/internal/desk/routing"
	"github.com/stackdesk/stackdesk/internal/desk/service"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/httpx"
	"github.com/stackdesk/stackdesk/pkg/sessionx"
	"github.com/stackdesk/stackdesk/pkg/slogx"

	_ "github.com/stackdesk/stackdesk/api/desk" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	oracle       sessionx.Oracle
	gate         *routing.Gate
	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store               store.Store
	OrganizationService *service.OrganizationService
	MembershipService   *service.MembershipService
	InvitationService   *service.InvitationService
}

func NewRouter(
	oracle sessionx.Oracle,
	buildVersion string,
	st store.Store,
	logger *slog.Logger,
) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		oracle:       oracle,
		gate:         &routing.Gate{Oracle: oracle, Resolver: &routing.Resolver{Store: st}},
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerOrganizations()
	r.registerMembers()
	r.registerInvitations()
	r.registerPages()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			StackDesk Access Control API
//	@version		0.1.0
//	@description	Multi-tenant access control for the StackDesk support platform: organizations,
//	@description	memberships with a fixed role hierarchy, and email-bound invitations.
//	@description
//	@description				Sessions are established by the upstream identity service and carried in a signed cookie.
//
//	@contact.name				StackDesk Team
//	@contact.url				https://github.com/stackdesk/stackdesk
//
//	@license.name				MIT
//	@license.url				https://opensource.org/licenses/MIT
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerOrganizations() {
	h := &OrganizationsHandler{OrganizationService: r.OrganizationService}

	// POST /v1/organizations - create a tenant. Verified email only; the
	// creator becomes the first owner.
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.SessionMiddleware(r.oracle),
		httpx.RequireVerifiedEmail(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// GET /v1/organizations - list the caller's organizations
	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// GET /v1/organizations/{id} - fetch one (members only)
	securedGet := httpx.Chain(http.HandlerFunc(h.HandleGet),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// PATCH /v1/organizations/{id} - rename (settings capability)
	securedRename := httpx.Chain(http.HandlerFunc(h.HandleRename),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// DELETE /v1/organizations/{id} - delete (owners only)
	securedDelete := httpx.Chain(http.HandlerFunc(h.HandleDelete),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/organizations", securedCreate)
	r.Mux.Handle("GET /v1/organizations", securedList)
	r.Mux.Handle("GET /v1/organizations/{id}", securedGet)
	r.Mux.Handle("PATCH /v1/organizations/{id}", securedRename)
	r.Mux.Handle("DELETE /v1/organizations/{id}", securedDelete)
}

func (r *Router) registerMembers() {
	h := &MembersHandler{MembershipService: r.MembershipService}

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	securedUpdateRole := httpx.Chain(http.HandlerFunc(h.HandleUpdateRole),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	securedRemove := httpx.Chain(http.HandlerFunc(h.HandleRemove),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("GET /v1/organizations/{id}/members", securedList)
	r.Mux.Handle("PATCH /v1/organizations/{id}/members/{memberID}", securedUpdateRole)
	r.Mux.Handle("DELETE /v1/organizations/{id}/members/{memberID}", securedRemove)
}

func (r *Router) registerInvitations() {
	h := &InvitationsHandler{InvitationService: r.InvitationService}

	// POST .../invitations - mint an invitation (invite capability + verified email)
	securedCreate := httpx.Chain(http.HandlerFunc(h.HandleCreate),
		httpx.SessionMiddleware(r.oracle),
		httpx.RequireVerifiedEmail(),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	securedList := httpx.Chain(http.HandlerFunc(h.HandleList),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.LenientLimit),
	)

	// DELETE .../invitations/{invitationID} - cancel from the org side
	securedCancel := httpx.Chain(http.HandlerFunc(h.HandleCancel),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// POST /v1/invitations/{invitationID}/accept - invitee accepts by id
	securedAccept := httpx.Chain(http.HandlerFunc(h.HandleAccept),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	// POST /v1/invitations/accept - invitee redeems the emailed token.
	// Strict limit: the token is guessable input.
	securedAcceptToken := httpx.Chain(http.HandlerFunc(h.HandleAcceptByToken),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByIP(httpx.StrictLimit),
	)

	securedReject := httpx.Chain(http.HandlerFunc(h.HandleReject),
		httpx.SessionMiddleware(r.oracle),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /v1/organizations/{id}/invitations", securedCreate)
	r.Mux.Handle("GET /v1/organizations/{id}/invitations", securedList)
	r.Mux.Handle("DELETE /v1/organizations/{id}/invitations/{invitationID}", securedCancel)
	r.Mux.Handle("POST /v1/invitations/{invitationID}/accept", securedAccept)
	r.Mux.Handle("POST /v1/invitations/{invitationID}/reject", securedReject)
	r.Mux.Handle("POST /v1/invitations/accept", securedAcceptToken)
}

// registerPages mounts the page tree behind the routing gate. The catch-all
// pattern hands every non-API path to the gate, which classifies it, decides,
// and either redirects or lets the page handler render.
func (r *Router) registerPages() {
	pages := &PagesHandler{OrganizationService: r.OrganizationService, Store: r.store}
	r.Mux.Handle("/", r.gate.Wrap(pages))
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
