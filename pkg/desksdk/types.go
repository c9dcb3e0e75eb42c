package desksdk

// ============================================================================
// Error and Health Types
// ============================================================================

// ErrorResponse is the standard error envelope for every API failure.
type ErrorResponse struct {
	// Error is the machine-readable error code (e.g., "forbidden", "last_owner")
	Error string `json:"error"`

	// ErrorDescription is a human-readable description of the error
	ErrorDescription string `json:"error_description"`
}

// HealthChecks reports the status of each critical dependency.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

// ============================================================================
// Organization Types
// ============================================================================

// CreateOrganizationRequest provisions a new tenant. The slug becomes the
// first path segment of every tenant URL and cannot be changed later.
type CreateOrganizationRequest struct {
	// Slug is the URL-safe tenant identifier (lowercase alphanumerics and
	// single hyphens, 1-63 chars)
	Slug string `json:"slug"`

	// Name is the display name
	Name string `json:"name"`

	// Metadata is an optional free-form key/value bag
	Metadata map[string]string `json:"metadata,omitempty"`
}

// RenameOrganizationRequest changes the display name only.
type RenameOrganizationRequest struct {
	Name string `json:"name"`
}

// OrganizationResponse is the wire form of a tenant.
type OrganizationResponse struct {
	ID        string            `json:"id"`
	Slug      string            `json:"slug"`
	Name      string            `json:"name"`
	Metadata  map[string]string `json:"metadata,omitempty"`
	CreatedAt int64             `json:"created_at"`
}

// OrganizationListResponse wraps the caller's organizations.
type OrganizationListResponse struct {
	Organizations []OrganizationResponse `json:"organizations"`
}

// ============================================================================
// Membership Types
// ============================================================================

// MemberResponse is one roster entry.
type MemberResponse struct {
	ID       string `json:"id"`
	UserID   string `json:"user_id"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	JoinedAt int64  `json:"joined_at"`
}

// MemberListResponse wraps an organization roster page.
type MemberListResponse struct {
	Members []MemberResponse `json:"members"`
}

// UpdateMemberRoleRequest changes a member's role.
type UpdateMemberRoleRequest struct {
	// Role is one of "owner", "admin", "member", "guest"
	Role string `json:"role"`
}

// ============================================================================
// Invitation Types
// ============================================================================

// CreateInvitationRequest invites an email address into the organization.
// The "owner" role cannot be invited; promote an existing member instead.
type CreateInvitationRequest struct {
	Email string `json:"email"`
	Role  string `json:"role"`
}

// AcceptInvitationRequest redeems an invitation via the opaque token from
// the invitation email.
type AcceptInvitationRequest struct {
	Token string `json:"token"`
}

// InvitationResponse is the wire form of an invitation. The redemption token
// never appears here; it travels only in the invitation email.
type InvitationResponse struct {
	ID             string `json:"id"`
	Email          string `json:"email"`
	OrganizationID string `json:"organization_id"`
	Role           string `json:"role"`
	Status         string `json:"status"`
	ExpiresAt      int64  `json:"expires_at"`
	CreatedAt      int64  `json:"created_at"`
}

// InvitationListResponse wraps an organization's invitations.
type InvitationListResponse struct {
	Invitations []InvitationResponse `json:"invitations"`
}
