package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

var (
	// ErrNotFound covers unknown organizations, members, and invitations.
	ErrNotFound = errors.New("not found")

	// ErrForbidden means the actor's role lacks the capability, or the actor
	// is not a member of the organization at all (deliberately
	// indistinguishable).
	ErrForbidden = errors.New("forbidden")

	// ErrLastOwner means the mutation would leave the organization with zero
	// owners. The check runs in the same transaction as the mutation, so two
	// concurrent demotions cannot both pass it.
	ErrLastOwner = errors.New("operation would remove the last owner")

	ErrInvalidMemberRole = errors.New("invalid member role")
)

type MembershipService struct {
	Store store.Store
}

// ListMembers returns the roster. Any member of the organization may read
// it; non-members are refused without learning whether the org exists.
func (s *MembershipService) ListMembers(
	ctx context.Context,
	orgID string,
	actorID string,
	sort store.MemberSort,
	page store.Page,
) ([]domain.Membership, error) {
	if _, err := requireMembership(ctx, s.Store, orgID, actorID); err != nil {
		return nil, err
	}
	return s.Store.Memberships().ListMembershipsByOrg(ctx, orgID, sort, page)
}

// UpdateRole changes a member's role. The capability check, the last-owner
// check, and the mutation all run under one transaction per organization.
func (s *MembershipService) UpdateRole(
	ctx context.Context,
	orgID string,
	actorID string,
	memberID string,
	newRole domain.Role,
) (domain.Membership, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate the requested role against the closed set.
	if !newRole.Valid() {
		return domain.Membership{}, ErrInvalidMemberRole
	}

	var updated domain.Membership
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 2. Resolve the actor's membership; non-members are forbidden.
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}

		// 3. Resolve the target member within the same organization.
		target, err := tx.Memberships().GetMembershipByID(ctx, memberID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if target.OrganizationID != orgID {
			return ErrNotFound
		}

		// 4. Capability check against the role model. This runs before the
		// same-role shortcut so an unauthorized caller gets ErrForbidden,
		// not a silent success.
		if !actor.Role.CanChangeRole(target.Role, newRole) {
			log.Warn("role change forbidden",
				slog.String("actor_role", string(actor.Role)),
				slog.String("from", string(target.Role)),
				slog.String("to", string(newRole)),
			)
			return ErrForbidden
		}

		if target.Role == newRole {
			updated = target
			return nil
		}

		// 5. Demoting an owner must not leave the organization ownerless.
		if target.Role == domain.RoleOwner && newRole != domain.RoleOwner {
			owners, err := tx.Memberships().CountOwners(ctx, orgID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		// 6. Apply.
		if err := tx.Memberships().UpdateMembershipRole(ctx, target.ID, newRole); err != nil {
			return err
		}

		target.Role = newRole
		updated = target
		return nil
	})
	if err != nil {
		return domain.Membership{}, err
	}

	log.Info("member role updated",
		slog.String("org_id", orgID),
		slog.String("member_id", updated.ID),
		slog.String("role", string(updated.Role)),
		slog.String("actor_id", actorID),
	)
	return updated, nil
}

// RemoveMember removes a member, addressed by membership id or email. Same
// transactional guards as UpdateRole.
func (s *MembershipService) RemoveMember(
	ctx context.Context,
	orgID string,
	actorID string,
	memberIDOrEmail string,
) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		// 1. Resolve the actor's membership.
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}

		// 2. Resolve the target: try membership id first, then email.
		target, err := tx.Memberships().GetMembershipByID(ctx, memberIDOrEmail)
		if err != nil && errors.Is(err, store.ErrNotFound) {
			target, err = tx.Memberships().GetMembershipByEmailAndOrg(ctx,
				strings.ToLower(memberIDOrEmail), orgID)
		}
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return ErrNotFound
			}
			return err
		}
		if target.OrganizationID != orgID {
			return ErrNotFound
		}

		// 3. Capability check: admins cannot remove owners.
		if !actor.Role.CanRemoveMember(target.Role) {
			return ErrForbidden
		}

		// 4. Never remove the last owner.
		if target.Role == domain.RoleOwner {
			owners, err := tx.Memberships().CountOwners(ctx, orgID)
			if err != nil {
				return err
			}
			if owners <= 1 {
				return ErrLastOwner
			}
		}

		// 5. Apply. Invitations the member sent stay as they are; the
		// inviter id on them is historical data.
		return tx.Memberships().DeleteMembership(ctx, target.ID)
	})
	if err != nil {
		return err
	}

	log.Info("member removed",
		slog.String("org_id", orgID),
		slog.String("member", memberIDOrEmail),
		slog.String("actor_id", actorID),
	)
	return nil
}
