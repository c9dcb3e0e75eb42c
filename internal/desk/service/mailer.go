package service

import (
	"context"
	"log/slog"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/pkg/slogx"
)

// Mailer delivers invitation emails. The token is the opaque redemption
// secret; implementations must not persist it.
type Mailer interface {
	SendInvitation(ctx context.Context, to string, org domain.Organization, inv domain.Invitation, token string) error
}

// LogMailer writes invitation emails to the structured log instead of
// sending them. Default for local development and tests.
type LogMailer struct{}

func (LogMailer) SendInvitation(ctx context.Context, to string, org domain.Organization, inv domain.Invitation, token string) error {
	slogx.FromContext(ctx).Info("invitation email (log delivery)",
		slog.String("to", to),
		slog.String("org", org.Slug),
		slog.String("role", string(inv.Role)),
		slog.String("accept_url", "/"+org.Slug+"/invitations/accept?token="+token),
		slog.Time("expires_at", inv.ExpiresAt),
	)
	return nil
}
