package service

import (
	"context"
	"testing"
	"time"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stretchr/testify/require"
)

func TestInvitationCreate(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &InvitationService{Store: st, Mailer: mailer}

	org := seedOrg(t, st, "owner-1", "owner@example.com", "acme")
	seedMember(t, st, org.ID, "member-1", "member@example.com", domain.RoleMember)

	t.Run("owner invites at member role", func(t *testing.T) {
		inv, err := svc.Create(ctx, org.ID, "owner-1", "New@Example.com", domain.RoleMember)
		require.NoError(t, err)
		require.Equal(t, domain.InvitationPending, inv.Status)
		require.Equal(t, "new@example.com", inv.Email, "email is normalized")
		require.WithinDuration(t, time.Now().Add(DefaultInvitationTTL), inv.ExpiresAt, time.Minute)

		require.Equal(t, "new@example.com", mailer.to)
		require.NotEmpty(t, mailer.token, "the opaque token goes to the mailer")
		require.NotEqual(t, mailer.token, inv.TokenHash, "only the fingerprint is stored")
	})

	t.Run("duplicate pending invitation is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, org.ID, "owner-1", "new@example.com", domain.RoleGuest)
		require.ErrorIs(t, err, ErrDuplicateInvitation)
	})

	t.Run("owner role cannot be invited", func(t *testing.T) {
		_, err := svc.Create(ctx, org.ID, "owner-1", "boss@example.com", domain.RoleOwner)
		require.ErrorIs(t, err, ErrCannotInviteOwner)
	})

	t.Run("member lacks the invite capability", func(t *testing.T) {
		_, err := svc.Create(ctx, org.ID, "member-1", "friend@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("non-member is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, org.ID, "stranger", "friend@example.com", domain.RoleMember)
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("bad email is refused", func(t *testing.T) {
		_, err := svc.Create(ctx, org.ID, "owner-1", "not-an-email", domain.RoleMember)
		require.ErrorIs(t, err, ErrInvalidEmail)
	})
}

func TestInvitationAcceptByToken(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &InvitationService{Store: st, Mailer: mailer}

	org := seedOrg(t, st, "owner-1", "owner@example.com", "acme")
	_, err := svc.Create(ctx, org.ID, "owner-1", "new@example.com", domain.RoleMember)
	require.NoError(t, err)
	token := mailer.token

	t.Run("wrong session email is refused", func(t *testing.T) {
		_, err := svc.AcceptByToken(ctx, token, "user-9", "other@example.com")
		require.ErrorIs(t, err, ErrForbidden)
	})

	t.Run("invitee becomes a member at the invited role", func(t *testing.T) {
		member, err := svc.AcceptByToken(ctx, token, "user-9", "New@Example.com")
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, member.Role)
		require.Equal(t, org.ID, member.OrganizationID)

		got, err := st.Memberships().GetMembershipByUserAndOrg(ctx, "user-9", org.ID)
		require.NoError(t, err)
		require.Equal(t, domain.RoleMember, got.Role)
	})

	t.Run("second accept is refused", func(t *testing.T) {
		_, err := svc.AcceptByToken(ctx, token, "user-9", "new@example.com")
		require.ErrorIs(t, err, ErrInvitationResolved)
	})

	t.Run("unknown token reads as not found", func(t *testing.T) {
		_, err := svc.AcceptByToken(ctx, "bogus-token", "user-9", "new@example.com")
		require.ErrorIs(t, err, ErrNotFound)
	})
}

func TestInvitationExpiry(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := &InvitationService{
		Store:  st,
		Mailer: mailer,
		Now:    func() time.Time { return now },
	}

	org := seedOrg(t, st, "owner-1", "owner@example.com", "acme")
	inv, err := svc.Create(ctx, org.ID, "owner-1", "new@example.com", domain.RoleMember)
	require.NoError(t, err)
	require.Equal(t, now.Add(7*24*time.Hour), inv.ExpiresAt)

	t.Run("day six still works", func(t *testing.T) {
		now = now.Add(6 * 24 * time.Hour)
		_, err := svc.AcceptByToken(ctx, mailer.token, "user-9", "new@example.com")
		require.NoError(t, err)
	})

	t.Run("day eight is too late", func(t *testing.T) {
		// Fresh invitation, then jump past its TTL.
		now = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
		_, err := svc.Create(ctx, org.ID, "owner-1", "late@example.com", domain.RoleGuest)
		require.NoError(t, err)

		now = now.Add(8 * 24 * time.Hour)
		_, err = svc.AcceptByToken(ctx, mailer.token, "user-10", "late@example.com")
		require.ErrorIs(t, err, ErrInvitationExpired)
	})

	t.Run("expired invitation can still be cancelled", func(t *testing.T) {
		invs, err := svc.List(ctx, org.ID, "owner-1")
		require.NoError(t, err)

		var pendingID string
		for _, i := range invs {
			if i.Status == domain.InvitationPending {
				pendingID = i.ID
			}
		}
		require.NotEmpty(t, pendingID)
		require.NoError(t, svc.Cancel(ctx, org.ID, "owner-1", pendingID))
	})
}

func TestInvitationCancelAndReject(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &InvitationService{Store: st, Mailer: mailer}

	org := seedOrg(t, st, "owner-1", "owner@example.com", "acme")
	seedMember(t, st, org.ID, "admin-1", "admin@example.com", domain.RoleAdmin)
	seedMember(t, st, org.ID, "member-1", "member@example.com", domain.RoleMember)

	t.Run("admin cancels a pending invitation", func(t *testing.T) {
		inv, err := svc.Create(ctx, org.ID, "owner-1", "a@example.com", domain.RoleMember)
		require.NoError(t, err)

		require.NoError(t, svc.Cancel(ctx, org.ID, "admin-1", inv.ID))

		// Cancelling again is a resolved-state conflict.
		require.ErrorIs(t, svc.Cancel(ctx, org.ID, "admin-1", inv.ID), ErrInvitationResolved)
	})

	t.Run("member may not cancel", func(t *testing.T) {
		inv, err := svc.Create(ctx, org.ID, "owner-1", "b@example.com", domain.RoleMember)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Cancel(ctx, org.ID, "member-1", inv.ID), ErrForbidden)
	})

	t.Run("only the invitee may reject", func(t *testing.T) {
		inv, err := svc.Create(ctx, org.ID, "owner-1", "c@example.com", domain.RoleGuest)
		require.NoError(t, err)

		require.ErrorIs(t, svc.Reject(ctx, inv.ID, "someone-else@example.com"), ErrForbidden)
		require.NoError(t, svc.Reject(ctx, inv.ID, "c@example.com"))
		require.ErrorIs(t, svc.Reject(ctx, inv.ID, "c@example.com"), ErrInvitationResolved)
	})

	t.Run("a cancelled invitation frees the email for a new one", func(t *testing.T) {
		inv, err := svc.Create(ctx, org.ID, "owner-1", "d@example.com", domain.RoleMember)
		require.NoError(t, err)
		require.NoError(t, svc.Cancel(ctx, org.ID, "owner-1", inv.ID))

		_, err = svc.Create(ctx, org.ID, "owner-1", "d@example.com", domain.RoleMember)
		require.NoError(t, err)
	})
}

func TestInvitationAcceptByID(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	mailer := &captureMailer{}
	svc := &InvitationService{Store: st, Mailer: mailer}

	org := seedOrg(t, st, "owner-1", "owner@example.com", "acme")
	inv, err := svc.Create(ctx, org.ID, "owner-1", "new@example.com", domain.RoleAdmin)
	require.NoError(t, err)

	member, err := svc.Accept(ctx, inv.ID, "user-9", "new@example.com")
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, member.Role)

	// Accepting by token afterwards hits the resolved guard.
	_, err = svc.AcceptByToken(ctx, mailer.token, "user-9", "new@example.com")
	require.ErrorIs(t, err, ErrInvitationResolved)
}
