package domain

import "time"

// Membership links a user to an organization with a role. At most one
// membership exists per (UserID, OrganizationID) pair, and every organization
// keeps at least one owner membership at all times.
//
// Email is denormalized onto the row so rosters can render and email-addressed
// removal works without a user directory. Identity itself lives with the
// session oracle.
type Membership struct {
	ID             string
	UserID         string
	Email          string
	OrganizationID string
	Role           Role
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
