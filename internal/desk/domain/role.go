package domain

import (
	"errors"
	"strings"
)

// Role is the closed set of membership roles. It is the single source of
// authorization truth: the capability methods below are consulted by both the
// routing-adjacent code and the action layer, never duplicated as ad hoc
// string checks.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
	RoleGuest  Role = "guest"
)

// ErrInvalidRole reports a role string outside the closed set.
var ErrInvalidRole = errors.New("domain: invalid role")

// ParseRole validates and normalizes a role string.
func ParseRole(s string) (Role, error) {
	switch Role(strings.ToLower(strings.TrimSpace(s))) {
	case RoleOwner:
		return RoleOwner, nil
	case RoleAdmin:
		return RoleAdmin, nil
	case RoleMember:
		return RoleMember, nil
	case RoleGuest:
		return RoleGuest, nil
	default:
		return "", ErrInvalidRole
	}
}

// Valid reports whether the role is one of the closed set.
func (r Role) Valid() bool {
	switch r {
	case RoleOwner, RoleAdmin, RoleMember, RoleGuest:
		return true
	}
	return false
}

// CanInviteMembers reports whether the role may create invitations.
func (r Role) CanInviteMembers() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanCancelInvitations reports whether the role may cancel pending invitations.
func (r Role) CanCancelInvitations() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanManageSettings reports whether the role may change organization settings.
func (r Role) CanManageSettings() bool {
	return r == RoleOwner || r == RoleAdmin
}

// CanRemoveMember reports whether the role may remove a member holding target.
// Admins may not remove owners. The last-owner invariant is enforced
// separately, under the same transaction as the mutation.
func (r Role) CanRemoveMember(target Role) bool {
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin:
		return target != RoleOwner
	default:
		return false
	}
}

// CanChangeRole reports whether the role may change a member from one role to
// another. Admins may not promote to or demote from owner.
func (r Role) CanChangeRole(from, to Role) bool {
	switch r {
	case RoleOwner:
		return true
	case RoleAdmin:
		return from != RoleOwner && to != RoleOwner
	default:
		return false
	}
}
