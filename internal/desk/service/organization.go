package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/pkg/idx"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

var (
	ErrInvalidSlug = errors.New("invalid or reserved organization slug")
	ErrSlugTaken   = errors.New("organization slug already taken")
	ErrInvalidName = errors.New("organization name is required")
)

type OrganizationService struct {
	Store store.Store
}

// Create provisions a new organization and makes the creator its first
// owner, atomically. The slug is immutable afterwards: it is the routing key
// every tenant URL hangs off, and changing it would break every bookmark.
func (s *OrganizationService) Create(
	ctx context.Context,
	actorID string,
	actorEmail string,
	slug string,
	name string,
	metadata map[string]string,
) (domain.Organization, error) {
	log := slogx.FromContext(ctx)

	// 1. Validate inputs.
	slug = strings.ToLower(strings.TrimSpace(slug))
	if !domain.ValidSlug(slug) || domain.ReservedSlug(slug) {
		log.Warn("organization create rejected: bad slug", slog.String("slug", slug))
		return domain.Organization{}, ErrInvalidSlug
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return domain.Organization{}, ErrInvalidName
	}

	org := domain.Organization{
		ID:       idx.New().String(),
		Slug:     slug,
		Name:     name,
		Metadata: metadata,
	}

	// 2. Create the organization and the creator's owner membership in one
	// transaction, so no organization ever exists without an owner.
	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		if err := tx.Organizations().CreateOrganization(ctx, org); err != nil {
			if errors.Is(err, store.ErrAlreadyExists) {
				return ErrSlugTaken
			}
			return err
		}

		owner := domain.Membership{
			ID:             idx.New().String(),
			UserID:         actorID,
			Email:          strings.ToLower(actorEmail),
			OrganizationID: org.ID,
			Role:           domain.RoleOwner,
		}
		return tx.Memberships().CreateMembership(ctx, owner)
	})
	if err != nil {
		if !errors.Is(err, ErrSlugTaken) {
			log.Error("failed to create organization", slog.Any("error", err))
		}
		return domain.Organization{}, err
	}

	log.Info("organization created",
		slog.String("org_id", org.ID),
		slog.String("slug", org.Slug),
		slog.String("owner_id", actorID),
	)
	return org, nil
}

// Get fetches an organization by id, requiring the actor to be a member.
func (s *OrganizationService) Get(ctx context.Context, orgID, actorID string) (domain.Organization, error) {
	if _, err := requireMembership(ctx, s.Store, orgID, actorID); err != nil {
		return domain.Organization{}, err
	}
	org, err := s.Store.Organizations().GetOrganizationByID(ctx, orgID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return domain.Organization{}, ErrNotFound
		}
		return domain.Organization{}, err
	}
	return org, nil
}

// ListForUser returns the organizations the user belongs to. Powers the
// organization picker and the /organizations listing.
func (s *OrganizationService) ListForUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	return s.Store.Organizations().ListOrganizationsForUser(ctx, userID)
}

// Rename changes the display name. Requires the settings capability.
func (s *OrganizationService) Rename(ctx context.Context, orgID, actorID, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrInvalidName
	}

	return s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}
		if !actor.Role.CanManageSettings() {
			return ErrForbidden
		}
		return tx.Organizations().UpdateOrganizationName(ctx, orgID, name)
	})
}

// Delete removes the organization with its memberships and pending
// invitations (cascade per schema). Owners only.
func (s *OrganizationService) Delete(ctx context.Context, orgID, actorID string) error {
	log := slogx.FromContext(ctx)

	err := s.Store.WithTx(ctx, func(tx store.Tx) error {
		actor, err := requireMembership(ctx, tx, orgID, actorID)
		if err != nil {
			return err
		}
		if actor.Role != domain.RoleOwner {
			return ErrForbidden
		}
		return tx.Organizations().DeleteOrganization(ctx, orgID)
	})
	if err != nil {
		return err
	}

	log.Info("organization deleted",
		slog.String("org_id", orgID),
		slog.String("actor_id", actorID),
	)
	return nil
}
