package sqlite

import (
	"context"
	"database/sql"

	"github.com/stackdesk/stackdesk/internal/desk/domain"
	"github.com/stackdesk/stackdesk/internal/desk/store"
)

type organizationsRepo struct {
	db dbtx
}

const organizationColumns = `id, slug, name, metadata, created_at, updated_at`

func scanOrganization(row interface{ Scan(...any) error }) (domain.Organization, error) {
	var org domain.Organization
	var metadata string
	err := row.Scan(&org.ID, &org.Slug, &org.Name, &metadata, &org.CreatedAt, &org.UpdatedAt)
	if err != nil {
		return domain.Organization{}, err
	}
	org.Metadata = unmarshalMetadata(metadata)
	return org, nil
}

func (r *organizationsRepo) GetOrganizationByID(ctx context.Context, id string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE id = ?`, id)
	org, err := scanOrganization(row)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return org, nil
}

func (r *organizationsRepo) GetOrganizationBySlug(ctx context.Context, slug string) (domain.Organization, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT `+organizationColumns+` FROM organizations WHERE slug = ?`, slug)
	org, err := scanOrganization(row)
	if err != nil {
		return domain.Organization{}, mapNotFound(err)
	}
	return org, nil
}

func (r *organizationsRepo) CreateOrganization(ctx context.Context, org domain.Organization) error {
	metadata, err := marshalMetadata(org.Metadata)
	if err != nil {
		return err
	}

	now := nowUTC()
	if org.CreatedAt.IsZero() {
		org.CreatedAt = now
	}
	if org.UpdatedAt.IsZero() {
		org.UpdatedAt = now
	}

	_, err = r.db.ExecContext(ctx,
		`INSERT INTO organizations (id, slug, name, metadata, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		org.ID, org.Slug, org.Name, metadata, org.CreatedAt, org.UpdatedAt)
	return mapConstraint(err)
}

func (r *organizationsRepo) UpdateOrganizationName(ctx context.Context, orgID, name string) error {
	res, err := r.db.ExecContext(ctx,
		`UPDATE organizations SET name = ?, updated_at = ? WHERE id = ?`,
		name, nowUTC(), orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *organizationsRepo) DeleteOrganization(ctx context.Context, orgID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM organizations WHERE id = ?`, orgID)
	if err != nil {
		return err
	}
	return requireRow(res)
}

func (r *organizationsRepo) ListOrganizationsForUser(ctx context.Context, userID string) ([]domain.Organization, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT o.id, o.slug, o.name, o.metadata, o.created_at, o.updated_at
		 FROM organizations o
		 JOIN memberships m ON m.organization_id = o.id
		 WHERE m.user_id = ?
		 ORDER BY o.name`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var orgs []domain.Organization
	for rows.Next() {
		org, err := scanOrganization(rows)
		if err != nil {
			return nil, err
		}
		orgs = append(orgs, org)
	}
	return orgs, rows.Err()
}

// requireRow maps "zero rows affected" onto store.ErrNotFound for mutations
// that target a single row by id.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}
