package store

import (
	"context"
	"errors"
	"time"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// MemberSort is the sort order for membership listings.
type MemberSort string

const (
	MemberSortJoined MemberSort = "joined" // CreatedAt ascending
	MemberSortEmail  MemberSort = "email"  // Email ascending
	MemberSortRole   MemberSort = "role"   // owner first, then admin, member, guest
)

// Page is a limit/offset pagination window. A zero Limit means "no limit".
type Page struct {
	Limit  int
	Offset int
}

// Store is the root data access interface. Concrete drivers implement this.
// It exposes sub-repositories to keep concerns tidy and testable, and a Tx
// wrapper for the check-and-mutate sequences that must be atomic per
// organization (role changes, removals, invitation acceptance).
type Store interface {
	Organizations() Organizations
	Memberships() Memberships
	Invitations() Invitations

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction. If fn returns an error the
	// transaction is rolled back, otherwise it is committed. This is the
	// recommended way to handle transactions.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Organizations interface {
	// GetOrganizationByID fetches an organization by id.
	GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error)

	// GetOrganizationBySlug resolves the tenant routing key. This is the hot
	// path behind the tenant resolver.
	GetOrganizationBySlug(ctx context.Context, slug string) (domain.Organization, error)

	// CreateOrganization inserts a new organization (id is provided by the app
	// via ULID). Returns ErrAlreadyExists when the slug is taken.
	CreateOrganization(ctx context.Context, org domain.Organization) error

	// UpdateOrganizationName mutates the display name and bumps updated_at.
	// The slug is immutable and has no update operation.
	UpdateOrganizationName(ctx context.Context, orgID, name string) error

	// DeleteOrganization removes the organization. Memberships and
	// invitations cascade per schema.
	DeleteOrganization(ctx context.Context, orgID string) error

	// ListOrganizationsForUser returns the organizations a user belongs to,
	// ordered by name. Powers the organization picker and listing.
	ListOrganizationsForUser(ctx context.Context, userID string) ([]domain.Organization, error)
}

type Memberships interface {
	// GetMembershipByID fetches a membership by id.
	GetMembershipByID(ctx context.Context, id string) (domain.Membership, error)

	// GetMembershipByUserAndOrg fetches the unique membership for a
	// (user, organization) pair.
	GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (domain.Membership, error)

	// GetMembershipByEmailAndOrg fetches a membership by denormalized email.
	GetMembershipByEmailAndOrg(ctx context.Context, email, orgID string) (domain.Membership, error)

	// ListMembershipsByOrg returns the roster for an organization.
	ListMembershipsByOrg(ctx context.Context, orgID string, sort MemberSort, page Page) ([]domain.Membership, error)

	// CreateMembership inserts a new membership. Returns ErrAlreadyExists
	// when the (user, organization) pair already has one.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// UpsertMembership creates the membership or, if the (user, organization)
	// pair already exists, updates its role and email. Used by invitation
	// acceptance.
	UpsertMembership(ctx context.Context, m domain.Membership) error

	// UpdateMembershipRole sets the role and bumps updated_at.
	UpdateMembershipRole(ctx context.Context, membershipID string, role domain.Role) error

	// DeleteMembership removes a membership.
	DeleteMembership(ctx context.Context, membershipID string) error

	// CountOwners returns the number of owner memberships in an organization.
	// Callers enforcing the last-owner invariant must run this inside the
	// same transaction as the mutation it guards.
	CountOwners(ctx context.Context, orgID string) (int, error)
}

type Invitations interface {
	// CreateInvitation writes a new invitation (token_hash is the SHA-256
	// fingerprint of the opaque token mailed to the invitee).
	CreateInvitation(ctx context.Context, inv domain.Invitation) error

	// GetInvitationByID fetches an invitation by id.
	GetInvitationByID(ctx context.Context, id string) (domain.Invitation, error)

	// GetInvitationByTokenHash fetches an invitation by token fingerprint,
	// whatever its status. Expiry and status checks belong to the caller.
	GetInvitationByTokenHash(ctx context.Context, hash string) (domain.Invitation, error)

	// GetPendingInvitationByOrgAndEmail returns the pending invitation for an
	// (organization, email) pair, used to reject duplicates.
	GetPendingInvitationByOrgAndEmail(ctx context.Context, orgID, email string) (domain.Invitation, error)

	// ListInvitationsByOrg returns invitations for an organization, newest first.
	ListInvitationsByOrg(ctx context.Context, orgID string) ([]domain.Invitation, error)

	// UpdateInvitationStatus flips a pending invitation into a terminal
	// status and bumps updated_at. Returns ErrNotFound if the invitation is
	// no longer pending, making the transition atomic.
	UpdateInvitationStatus(ctx context.Context, invitationID string, status domain.InvitationStatus) error

	// DeleteInvitationsExpiredBefore removes pending invitations whose expiry
	// passed before the cutoff. Housekeeping only; lazy expiry at accept time
	// remains authoritative.
	DeleteInvitationsExpiredBefore(ctx context.Context, cutoff time.Time) error
}
