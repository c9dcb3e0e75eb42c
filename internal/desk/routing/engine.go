package routing

import (
	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/pkg/sessionx"
)

// Canonical redirect targets.
const (
	PathLogin              = "/login"
	PathSelectOrganization = "/select-organization"
)

// Action is what the router tells the server to do with a request.
type Action int

const (
	ActionAllow Action = iota
	ActionRedirect
)

func (a Action) String() string {
	if a == ActionRedirect {
		return "redirect"
	}
	return "allow"
}

// Verdict is the routing decision for one request. Purely computed, never
// stored; Target is set only for redirects.
type Verdict struct {
	Action Action
	Target string
}

func allow() Verdict                 { return Verdict{Action: ActionAllow} }
func redirect(target string) Verdict { return Verdict{Action: ActionRedirect, Target: target} }

// Input is everything the engine looks at for one request. Org carries the
// resolved tenant when the slug matched one; the engine itself never uses it
// for gating (membership checks belong to the page layer, which can tell a
// missing tenant from a forbidden one without leaking existence here), but it
// rides along so the gate can hand it downstream.
type Input struct {
	Class   RouteClass
	Slug    string
	Session sessionx.Session
	Org     *domain.Organization
}

// Decide is the routing decision engine: a pure function of its input,
// re-evaluated on every request. First matching rule wins.
//
// The router only gates "logged in" per route class. Whether the user is a
// member of the tenant, and with what role, is deliberately deferred to the
// page/action layer so that nonexistent and existing-but-unauthorized tenants
// are indistinguishable to unauthenticated probing.
func Decide(in Input) Verdict {
	switch in.Class {
	case ClassBypass:
		return allow()

	case ClassAuthEntry:
		if in.Session.Authenticated {
			// Already signed in; the generic auth pages make no sense, send
			// them to pick an organization.
			return redirect(PathSelectOrganization)
		}
		return allow()

	case ClassTenantAuthEntry:
		// Allowed for everyone: the page itself re-checks tenant access for
		// authenticated visitors.
		return allow()

	case ClassTenantProtected:
		if in.Session.Authenticated {
			return allow()
		}
		if in.Slug != "" {
			return redirect("/" + in.Slug + "/login")
		}
		return redirect(PathLogin)

	case ClassGeneralProtected:
		if in.Session.Authenticated {
			return allow()
		}
		return redirect(PathLogin)

	case ClassPublicRoot:
		if in.Session.Authenticated {
			return redirect(PathSelectOrganization)
		}
		return redirect(PathLogin)

	default: // ClassPublic, tenant landing included
		return allow()
	}
}
