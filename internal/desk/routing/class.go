package routing

import (
	"strings"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
)

// RouteClass is the coarse classification every inbound path falls into.
// Classes are listed in decision precedence order; Classify applies them in
// this order because the raw path patterns are not mutually exclusive.
type RouteClass int

const (
	// ClassBypass covers assets, API, and framework-internal paths. These
	// never reach the decision engine; the verdict is always allow.
	ClassBypass RouteClass = iota

	// ClassAuthEntry covers the generic login/signup/org-creation/org-picker
	// pages.
	ClassAuthEntry

	// ClassTenantAuthEntry covers the two tenant-scoped exception pages,
	// /<slug>/login and /<slug>/forgot-password. These win over
	// ClassTenantProtected; this is the one deliberate precedence override.
	ClassTenantAuthEntry

	// ClassTenantProtected covers tenant-scoped pages requiring a login
	// (dashboard, members, settings, tickets under a slug).
	ClassTenantProtected

	// ClassGeneralProtected covers non-tenant authenticated-only pages
	// (the organizations listing).
	ClassGeneralProtected

	// ClassPublicRoot is the root path, which gets its own verdicts.
	ClassPublicRoot

	// ClassPublic is the tenant landing page and anything not otherwise
	// classified.
	ClassPublic
)

func (c RouteClass) String() string {
	switch c {
	case ClassBypass:
		return "bypass"
	case ClassAuthEntry:
		return "auth-entry"
	case ClassTenantAuthEntry:
		return "tenant-auth-entry"
	case ClassTenantProtected:
		return "tenant-protected"
	case ClassGeneralProtected:
		return "general-protected"
	case ClassPublicRoot:
		return "public-root"
	default:
		return "public"
	}
}

// bypassPrefixes are the static path prefixes excluded from routing entirely.
var bypassPrefixes = []string{
	"/assets/",
	"/static/",
	"/api/",
	"/v1/",
	"/swagger/",
	"/_desk/",
	"/.well-known/",
}

// bypassExact are standalone paths excluded from routing.
var bypassExact = map[string]struct{}{
	"/livez":  {},
	"/readyz": {},
}

// genericAuthPages are the top-level auth-entry pages.
var genericAuthPages = map[string]struct{}{
	"login":               {},
	"signup":              {},
	"forgot-password":     {},
	"select-organization": {},
}

// tenantAuthPages are the sub-paths under a slug that stay reachable without
// membership, so users locked out of a tenant can still sign in or recover.
var tenantAuthPages = map[string]struct{}{
	"login":           {},
	"forgot-password": {},
}

// Classify maps a request path to its route class and, when the path is
// tenant-scoped, extracts the slug. It is a pure, total function: every path
// gets exactly one class and no I/O happens here.
func Classify(path string) (RouteClass, string) {
	if path == "" || path == "/" {
		return ClassPublicRoot, ""
	}
	if !strings.HasPrefix(path, "/") {
		path = "/" + path
	}

	if _, ok := bypassExact[path]; ok {
		return ClassBypass, ""
	}
	for _, prefix := range bypassPrefixes {
		if strings.HasPrefix(path, prefix) {
			return ClassBypass, ""
		}
	}

	segments := strings.Split(strings.Trim(path, "/"), "/")

	// Paths ending in a file extension are asset requests regardless of
	// where they sit in the tree.
	if last := segments[len(segments)-1]; strings.Contains(last, ".") {
		return ClassBypass, ""
	}

	head := segments[0]

	if len(segments) == 1 {
		if _, ok := genericAuthPages[head]; ok {
			return ClassAuthEntry, ""
		}
		if head == "organizations" {
			return ClassGeneralProtected, ""
		}
		if isSlug(head) {
			// Tenant landing page: public, existence is checked downstream.
			return ClassPublic, head
		}
		return ClassPublic, ""
	}

	if head == "organizations" && segments[1] == "new" {
		return ClassAuthEntry, ""
	}

	if isSlug(head) {
		if _, ok := tenantAuthPages[segments[1]]; ok && len(segments) == 2 {
			return ClassTenantAuthEntry, head
		}
		return ClassTenantProtected, head
	}

	return ClassPublic, ""
}

func isSlug(segment string) bool {
	return domain.ValidSlug(segment) && !domain.ReservedSlug(segment)
}
