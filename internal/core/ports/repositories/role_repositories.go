package repositories

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// RoleReader defines read operations for roles. Returned roles carry their derived user count.
type RoleReader interface {
	FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	FindRoleByName(ctx context.Context, name string) (*domain.Role, error)
	// FindDefaultRole returns the default role or apperrors.ErrNotFound when none is set.
	FindDefaultRole(ctx context.Context) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// RoleWriter defines write operations for roles. Saving or updating a default
// role clears the flag on every other role atomically.
type RoleWriter interface {
	SaveRole(ctx context.Context, role domain.Role) error
	UpdateRole(ctx context.Context, role domain.Role) error
	// DeleteRole removes a role unless users still hold it.
	DeleteRole(ctx context.Context, roleID string) error
}

// RoleRepositoryFacade combines all role-related repository interfaces
type RoleRepositoryFacade interface {
	RoleReader
	RoleWriter
}
