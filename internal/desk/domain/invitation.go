package domain

import "time"

// InvitationStatus is the lifecycle state of an invitation. Pending is the
// only non-terminal state; once an invitation is accepted, rejected, or
// cancelled it never changes again.
type InvitationStatus string

const (
	InvitationPending   InvitationStatus = "pending"
	InvitationAccepted  InvitationStatus = "accepted"
	InvitationRejected  InvitationStatus = "rejected"
	InvitationCancelled InvitationStatus = "cancelled"
)

// Invitation invites an email address into an organization at a role.
// Redemption happens via an opaque token sent to the invitee; only the
// SHA-256 fingerprint of that token is stored.
//
// Expiry is not a stored status: a pending invitation past ExpiresAt simply
// blocks acceptance. Checking lazily at read/accept time avoids a race
// between a background sweep and a concurrent accept.
type Invitation struct {
	ID             string
	Email          string
	InviterID      string
	OrganizationID string
	Role           Role
	Status         InvitationStatus
	TokenHash      string
	ExpiresAt      time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Expired reports whether the invitation is past its TTL at the given time.
func (i Invitation) Expired(now time.Time) bool {
	return now.After(i.ExpiresAt)
}

// Resolved reports whether the invitation has left the pending state.
func (i Invitation) Resolved() bool {
	return i.Status != InvitationPending
}
