package service

import (
	"context"
	"testing"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
	"github.com/stackdesk/stackdesk/internal/desk/store/drivers/sqlite"
	"github.com/stackdesk/stackdesk/pkg/idx"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())
	return st
}

// seedOrg creates an organization with ownerID as its first owner and returns it.
func seedOrg(t *testing.T, st store.Store, ownerID, ownerEmail, slug string) domain.Organization {
	t.Helper()

	svc := &OrganizationService{Store: st}
	org, err := svc.Create(context.Background(), ownerID, ownerEmail, slug, "Test Org "+slug, nil)
	require.NoError(t, err)
	return org
}

// seedMember adds a membership directly, bypassing the invitation flow.
func seedMember(t *testing.T, st store.Store, orgID, userID, email string, role domain.Role) domain.Membership {
	t.Helper()

	m := domain.Membership{
		ID:             idx.New().String(),
		UserID:         userID,
		Email:          email,
		OrganizationID: orgID,
		Role:           role,
	}
	require.NoError(t, st.Memberships().CreateMembership(context.Background(), m))
	return m
}

// captureMailer records the last invitation email instead of sending it.
type captureMailer struct {
	to    string
	token string
}

func (m *captureMailer) SendInvitation(_ context.Context, to string, _ domain.Organization, _ domain.Invitation, token string) error {
	m.to = to
	m.token = token
	return nil
}
