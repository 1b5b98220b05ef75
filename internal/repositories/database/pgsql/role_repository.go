package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	"github.com/SscSPs/adminpro/internal/models"
	"github.com/SscSPs/adminpro/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const roleSelect = `
	SELECT r.role_id, r.name, r.description, r.permissions, r.is_default, r.is_active,
		(SELECT COUNT(*) FROM users u WHERE u.role_id = r.role_id) AS user_count,
		r.created_at, r.created_by, r.last_updated_at, r.last_updated_by
	FROM roles r`

type PgxRoleRepository struct {
	BaseRepository
}

func newPgxRoleRepository(pool *pgxpool.Pool) portsrepo.RoleRepositoryFacade {
	return &PgxRoleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RoleRepositoryFacade = (*PgxRoleRepository)(nil)

func scanRole(row pgx.Row) (models.Role, error) {
	var m models.Role
	err := row.Scan(
		&m.RoleID,
		&m.Name,
		&m.Description,
		&m.Permissions,
		&m.IsDefault,
		&m.IsActive,
		&m.UserCount,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxRoleRepository) findOne(ctx context.Context, where string, args ...any) (*domain.Role, error) {
	m, err := scanRole(r.Pool.QueryRow(ctx, roleSelect+" WHERE "+where, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find role: %w", err)
	}
	role := mapping.ToDomainRole(m)
	return &role, nil
}

func (r *PgxRoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	return r.findOne(ctx, "r.role_id = $1", roleID)
}

func (r *PgxRoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	return r.findOne(ctx, "LOWER(r.name) = LOWER($1)", name)
}

func (r *PgxRoleRepository) FindDefaultRole(ctx context.Context) (*domain.Role, error) {
	return r.findOne(ctx, "r.is_default")
}

func (r *PgxRoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	rows, err := r.Pool.Query(ctx, roleSelect+" ORDER BY r.name")
	if err != nil {
		return nil, fmt.Errorf("failed to query roles: %w", err)
	}
	defer rows.Close()

	roles, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Role, error) {
		return scanRole(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan roles: %w", err)
	}
	return mapping.ToDomainRoleSlice(roles), nil
}

func (r *PgxRoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	m := mapping.ToModelRole(role)
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.clearOtherDefaults(ctx, tx, m); err != nil {
			return err
		}
		query := `
			INSERT INTO roles (role_id, name, description, permissions, is_default, is_active,
				created_at, created_by, last_updated_at, last_updated_by)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10);
		`
		_, err := tx.Exec(ctx, query,
			m.RoleID,
			m.Name,
			m.Description,
			m.Permissions,
			m.IsDefault,
			m.IsActive,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "role "+m.Name)
		}
		return nil
	})
}

func (r *PgxRoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	m := mapping.ToModelRole(role)
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.clearOtherDefaults(ctx, tx, m); err != nil {
			return err
		}
		query := `
			UPDATE roles SET
				name = $2, description = $3, permissions = $4, is_default = $5, is_active = $6,
				last_updated_at = $7, last_updated_by = $8
			WHERE role_id = $1;
		`
		tag, err := tx.Exec(ctx, query,
			m.RoleID,
			m.Name,
			m.Description,
			m.Permissions,
			m.IsDefault,
			m.IsActive,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "role "+m.Name)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// DeleteRole removes a role unless users still hold it. The users.role_id
// foreign key backs the check.
func (r *PgxRoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		var userCount int
		err := tx.QueryRow(ctx, `
			SELECT (SELECT COUNT(*) FROM users u WHERE u.role_id = r.role_id)
			FROM roles r WHERE r.role_id = $1 FOR UPDATE`, roleID).Scan(&userCount)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load role %s: %w", roleID, err)
		}
		if userCount > 0 {
			return apperrors.NewPolicyError(fmt.Sprintf("role is assigned to %d user(s)", userCount))
		}
		if _, err := tx.Exec(ctx, `DELETE FROM roles WHERE role_id = $1`, roleID); err != nil {
			return fmt.Errorf("failed to delete role %s: %w", roleID, err)
		}
		return nil
	})
}

func (r *PgxRoleRepository) clearOtherDefaults(ctx context.Context, tx pgx.Tx, m models.Role) error {
	if err := lockKey(ctx, tx, defaultRoleLockKey); err != nil {
		return err
	}
	if !m.IsDefault {
		return nil
	}
	if _, err := tx.Exec(ctx, `UPDATE roles SET is_default = FALSE WHERE is_default AND role_id <> $1`, m.RoleID); err != nil {
		return fmt.Errorf("failed to clear previous default role: %w", err)
	}
	return nil
}
