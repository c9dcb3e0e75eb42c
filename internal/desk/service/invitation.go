package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/cryptox"
	"github.com/stackdesk/stackdesk/pkg/idx"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

var (
	// ErrCannotInviteOwner rejects invitations at the owner role. Ownership
	// is granted by promoting an existing member, never by invite.
	ErrCannotInviteOwner = errors.New("cannot invite a member as owner")

	// ErrDuplicateInvitation means the (organization, email) pair already has
	// a pending invitation.
	ErrDuplicateInvitation = errors.New("a pending invitation already exists for this email")

	// ErrInvitationExpired means the invitation's TTL passed before it was
	// acted on. Expired invitations can still be cancelled.
	ErrInvitationExpired = errors.New("invitation has expired")

	// ErrInvitationResolved means the invitation already reached a terminal
	// status and cannot transition again.
	ErrInvitationResolved = errors.New("invitation already resolved")

	ErrInvalidEmail = errors.New("invalid invitee email")
)

// DefaultInvitationTTL is how long a fresh invitation stays redeemable.
const DefaultInvitationTTL = 7 * 24 * time.Hour

type InvitationService struct {
	Store  store.Store
	Mailer Mailer

	// TTL overrides DefaultInvitationTTL when positive.
	TTL time.Duration

	// Now is swappable for tests. Nil means time.Now.
	Now func() time.Time
}

func (s *InvitationService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return DefaultInvitationTTL
}

func (s *InvitationService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// Create mints an invitation and emails the opaque redemption token to the
// invitee. Only the token's SHA-256 fingerprint is stored; a database leak
// does not leak redeemable tokens.
func (s *InvitationService) Create(
	ctx context.Context,
	orgID string,
	actorID string,
	email string,
	role domain.Role,
) (domain.Invitation, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return domain.Invitation{}, ErrInvalidEmail
	}
	if !role.Valid() {
		return domain.Invitation{}, ErrInvalidMemberRole
	}
	if role == domain.RoleOwner {
		return domain.Invitation{}, ErrCannotInviteOwner
	}

	// 2. Generate the opaque token up front; only its fingerprint persists.
	token, err := cryptox.GenerateToken(cryptox.TokenSize256)
	if err != nil {
		return domain.Invitation{}, fmt.Errorf("generate invitation token: %w", err)
	}

	now := s.now()
	inv := domain.Invitation{
		ID:             idx.New().String(),
		Email:          email,
		InviterID:      actorID,
		OrganizationID: orgID,
		Role:           role,
		Status:         domain.InvitationPending,
		TokenHash:      cryptox.FingerprintToken(token),
		ExpiresAt:      now.Add(s.ttl()),
	}

	var org domain.Organization
	err = s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 3. The actor must hold the invite capability in this organization.
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}
		if !actor.Role.CanInviteMembers() {
			return ErrForbidden
		}

		org, err = tx.Organizations().GetOrganizationByID(ctx, orgID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		// 4. Refuse a duplicate while we can still name it precisely. The
		// partial unique index on pending (org, email) stays as the
		// concurrent-writer backstop.
		if _, err := tx.Invitations().GetPendingInvitationByOrgAndEmail(ctx, orgID, email); err == nil {
			return ErrDuplicateInvitation
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		// 5. Write.
		if err := tx.Invitations().CreateInvitation(ctx, inv); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrDuplicateInvitation
			}
			return err
		}
		return nil
	})
	if err != nil {
		return domain.Invitation{}, err
	}

	// 6. Send the email outside the transaction. Delivery failure does not
	// invalidate the invitation; the sender can cancel and re-invite.
	if err := s.Mailer.SendInvitation(ctx, email, org, inv, token); err != nil {
		log.Warn("invitation email delivery failed",
			slog.String("invitation_id", inv.ID),
			slog.Any("error", err),
		)
	}

	log.Info("invitation created",
		slog.String("org_id", orgID),
		slog.String("invitation_id", inv.ID),
		slog.String("role", string(inv.Role)),
		slog.String("inviter_id", actorID),
	)
	return inv, nil
}

// List returns the organization's invitations, newest first. Visible to any
// member holding the invite capability.
func (s *InvitationService) List(ctx context.Context, orgID, actorID string) ([]domain.Invitation, error) {
	actor, err := requireMembership(ctx, s.Store, orgID, actorID)
	if err != nil {
		return nil, err
	}
	if !actor.Role.CanInviteMembers() {
		return nil, ErrForbidden
	}
	return s.Store.Invitations().ListInvitationsByOrg(ctx, orgID)
}

// Accept redeems an invitation addressed by id. The session's email must
// match the invitee address; otherwise the caller learns nothing beyond
// "forbidden".
func (s *InvitationService) Accept(
	ctx context.Context,
	invitationID string,
	userID string,
	userEmail string,
) (domain.Membership, error) {
	return s.accept(ctx, userID, userEmail, func(tx store.Tx) (domain.Invitation, error) {
		return tx.Invitations().GetInvitationByID(ctx, invitationID)
	})
}

// AcceptByToken redeems an invitation via the opaque emailed token. The
// token proves receipt of the email, but the session email must still match
// the invitee address.
func (s *InvitationService) AcceptByToken(
	ctx context.Context,
	token string,
	userID string,
	userEmail string,
) (domain.Membership, error) {
	hash := cryptox.FingerprintToken(token)
	return s.accept(ctx, userID, userEmail, func(tx store.Tx) (domain.Invitation, error) {
		return tx.Invitations().GetInvitationByTokenHash(ctx, hash)
	})
}

func (s *InvitationService) accept(
	ctx context.Context,
	userID string,
	userEmail string,
	lookup func(tx store.Tx) (domain.Invitation, error),
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	var member domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Load the invitation.
		inv, err := lookup(tx)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}

		// 2. The invitation is bound to the invitee's email.
		if inv.Email != userEmail {
			return ErrForbidden
		}

		// 3. Status and lazy expiry checks.
		if inv.Resolved() {
			return ErrInvitationResolved
		}
		if inv.Expired(s.now()) {
			return ErrInvitationExpired
		}

		// 4. Flip the status first. The pending-only guard on the update makes
		// concurrent double-accepts lose with ErrNotFound.
		if err := tx.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationAccepted); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationResolved
			}
			return err
		}

		// 5. Materialize the membership. Upsert keeps acceptance idempotent
		// when the user already joined by other means; an existing role is
		// overwritten with the invited role.
		member = domain.Membership{
			ID:             idx.New().String(),
			UserID:         userID,
			Email:          userEmail,
			OrganizationID: inv.OrganizationID,
			Role:           inv.Role,
		}
		if err := tx.Memberships().UpsertMembership(ctx, member); err != nil {
			return err
		}

		member, err = tx.Memberships().GetMembershipByUserAndOrg(ctx, userID, inv.OrganizationID)
		return err
	})
	if err != nil {
		return domain.Membership{}, err
	}

	log.Info("invitation accepted",
		slog.String("org_id", member.OrganizationID),
		slog.String("user_id", userID),
		slog.String("role", string(member.Role)),
	)
	return member, nil
}

// Reject declines a pending invitation. Only the invitee may reject.
func (s *InvitationService) Reject(
	ctx context.Context,
	invitationID string,
	userEmail string,
) error {
	log := slogx.FromContext(ctx)
	userEmail = strings.ToLower(strings.TrimSpace(userEmail))

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		inv, err := tx.Invitations().GetInvitationByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if inv.Email != userEmail {
			return ErrForbidden
		}
		if inv.Resolved() {
			return ErrInvitationResolved
		}
		if err := tx.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationRejected); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationResolved
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("invitation rejected", slog.String("invitation_id", invitationID))
	return nil
}

// Cancel withdraws a pending invitation from the organization side. Expired
// invitations can still be cancelled, which tidies the pending list.
func (s *InvitationService) Cancel(
	ctx context.Context,
	orgID string,
	actorID string,
	invitationID string,
) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}
		if !actor.Role.CanCancelInvitations() {
			return ErrForbidden
		}

		inv, err := tx.Invitations().GetInvitationByID(ctx, invitationID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if inv.OrganizationID != orgID {
			return ErrNotFound
		}
		if inv.Resolved() {
			return ErrInvitationResolved
		}
		if err := tx.Invitations().UpdateInvitationStatus(ctx, inv.ID, domain.InvitationCancelled); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrInvitationResolved
			}
			return err
		}
		return nil
	})
	if err != nil {
		return err
	}

	log.Info("invitation cancelled",
		slog.String("org_id", orgID),
		slog.String("invitation_id", invitationID),
		slog.String("actor_id", actorID),
	)
	return nil
}

// requireMembership is the shared actor resolution used by every
// organization-scoped operation. Non-members get ErrForbidden, never
// ErrNotFound, so probing cannot distinguish "no such org" from "not yours".
func requireMembership(ctx context.Context, st store.Store, orgID, actorID string) (domain.Membership, error) {
	actor, err := st.Memberships().GetMembershipByUserAndOrg(ctx, actorID, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Membership{}, ErrForbidden
		}
		return domain.Membership{}, err
	}
	return actor, nil
}
