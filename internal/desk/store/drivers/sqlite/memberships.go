package sqlite

import (
	"context"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
)

type membershipsRepo struct {
	db dbtx
}

const membershipColumns = `id, user_id, email, organization_id, role, created_at, updated_at`

func scanMembership(row interface{ Scan(...any) error }) (domain.Membership, error) {
	var m domain.Membership
	err := row.Scan(&m.ID, &m.UserID, &m.Email, &m.OrganizationID, &m.Role, &m.CreatedAt, &m.UpdatedAt)
	if err != nil {
		return domain.Membership{}, err
	}
	return m, nil
}

func (r *membershipsRepo) GetMembershipByID(ctx context.Context, id string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships WHERE id = ?`, id)
	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) GetMembershipByUserAndOrg(ctx context.Context, userID, orgID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships
		 WHERE user_id = ? AND organization_id = ?`, userID, orgID)
	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) GetMembershipByEmailAndOrg(ctx context.Context, email, orgID string) (domain.Membership, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships
		 WHERE email = ? AND organization_id = ?`, email, orgID)
	m, err := scanMembership(row)
	if err != nil {
		return domain.Membership{}, mapNotFound(err)
	}
	return m, nil
}

func (r *membershipsRepo) ListMembershipsByOrg(ctx context.Context, orgID string, sort store.MemberSort, page store.Page) ([]domain.Membership, error) {
	var order string
	switch sort {
	case store.MemberSortEmail:
		order = `email`
	case store.MemberSortRole:
		// owner first, then admin, member, guest; stable by join date
		order = `CASE role
			WHEN 'owner' THEN 0
			WHEN 'admin' THEN 1
			WHEN 'member' THEN 2
			ELSE 3 END, created_at`
	default:
		order = `created_at`
	}

	limit := page.Limit
	if limit <= 0 {
		limit = -1 // sqlite: no limit
	}

	rows, err := r.db.QueryContext(ctx,
		`SELECT `+membershipColumns+` FROM memberships
		 WHERE organization_id = ?
		 ORDER BY `+order+`
		 LIMIT ? OFFSET ?`, orgID, limit, page.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var members []domain.Membership
	for rows.Next() {
		m, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		members = append(members, m)
	}
	return members, rows.Err()
}

func (r *membershipsRepo) CreateMembership(ctx context.Context, m domain.Membership) error {
	now := nowUTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (id, user_id, email, organization_id, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		m.ID, m.UserID, m.Email, m.OrganizationID, string(m.Role), m.CreatedAt, m.UpdatedAt)
	return mapConstraint(err)
}

func (r *membershipsRepo) UpsertMembership(ctx context.Context, m domain.Membership) error {
	now := nowUTC()
	if m.CreatedAt.IsZero() {
		m.CreatedAt = now
	}
	if m.UpdatedAt.IsZero() {
		m.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO memberships (id, user_id, email, organization_id, role, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT (user_id, organization_id)
		 DO UPDATE SET role = excluded.role, email = excluded.email, updated_at = excluded.updated_at`,
		m.ID, m.UserID, m.Email, m.OrganizationID, string(m.Role), m.CreatedAt, m.UpdatedAt)
	return err
}

func (r *membershipsRepo) UpdateMembershipRole(ctx context.Context, membershipID string, role domain.Role) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE memberships SET role = ?, updated_at = ? WHERE id = ?`,
		string(role), nowUTC(), membershipID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *membershipsRepo) DeleteMembership(ctx context.Context, membershipID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM memberships WHERE id = ?`, membershipID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *membershipsRepo) CountOwners(ctx context.Context, orgID string) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM memberships WHERE organization_id = ? AND role = 'owner'`,
		orgID).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
