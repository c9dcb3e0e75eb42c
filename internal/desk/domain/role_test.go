package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseRole(t *testing.T) {
	t.Parallel()

	t.Run("accepts the closed set", func(t *testing.T) {
		for _, s := range []string{"owner", "admin", "member", "guest"} {
			role, err := ParseRole(s)
			require.NoError(t, err)
			require.Equal(t, Role(s), role)
		}
	})

	t.Run("normalizes case and whitespace", func(t *testing.T) {
		role, err := ParseRole("  Admin ")
		require.NoError(t, err)
		require.Equal(t, RoleAdmin, role)
	})

	t.Run("rejects anything else", func(t *testing.T) {
		for _, s := range []string{"", "superuser", "Owner2", "member,admin"} {
			_, err := ParseRole(s)
			require.ErrorIs(t, err, ErrInvalidRole)
		}
	})
}

func TestRoleCapabilities(t *testing.T) {
	t.Parallel()

	t.Run("invite and cancel are owner and admin only", func(t *testing.T) {
		require.True(t, RoleOwner.CanInviteMembers())
		require.True(t, RoleAdmin.CanInviteMembers())
		require.False(t, RoleMember.CanInviteMembers())
		require.False(t, RoleGuest.CanInviteMembers())

		require.True(t, RoleOwner.CanCancelInvitations())
		require.True(t, RoleAdmin.CanCancelInvitations())
		require.False(t, RoleMember.CanCancelInvitations())
		require.False(t, RoleGuest.CanCancelInvitations())
	})

	t.Run("settings are owner and admin only", func(t *testing.T) {
		require.True(t, RoleOwner.CanManageSettings())
		require.True(t, RoleAdmin.CanManageSettings())
		require.False(t, RoleMember.CanManageSettings())
		require.False(t, RoleGuest.CanManageSettings())
	})

	t.Run("owners remove anyone, admins everyone but owners", func(t *testing.T) {
		for _, target := range []Role{RoleOwner, RoleAdmin, RoleMember, RoleGuest} {
			require.True(t, RoleOwner.CanRemoveMember(target))
		}
		require.False(t, RoleAdmin.CanRemoveMember(RoleOwner))
		require.True(t, RoleAdmin.CanRemoveMember(RoleAdmin))
		require.True(t, RoleAdmin.CanRemoveMember(RoleMember))
		require.False(t, RoleMember.CanRemoveMember(RoleGuest))
		require.False(t, RoleGuest.CanRemoveMember(RoleGuest))
	})

	t.Run("ownership moves only by an owner's hand", func(t *testing.T) {
		require.True(t, RoleOwner.CanChangeRole(RoleMember, RoleOwner))
		require.True(t, RoleOwner.CanChangeRole(RoleOwner, RoleMember))
		require.False(t, RoleAdmin.CanChangeRole(RoleMember, RoleOwner))
		require.False(t, RoleAdmin.CanChangeRole(RoleOwner, RoleMember))
		require.True(t, RoleAdmin.CanChangeRole(RoleGuest, RoleAdmin))
		require.False(t, RoleMember.CanChangeRole(RoleGuest, RoleMember))
	})
}
