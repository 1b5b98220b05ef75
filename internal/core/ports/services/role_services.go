package services

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/dto"
)

// RoleReaderSvc defines read operations for roles
type RoleReaderSvc interface {
	GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error)
	ListRoles(ctx context.Context) ([]domain.Role, error)
}

// RoleWriterSvc defines write operations for roles
type RoleWriterSvc interface {
	CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error)
	UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, updaterUserID string) (*domain.Role, error)
	// DeleteRole removes a role. Roles still held by users cannot be deleted.
	DeleteRole(ctx context.Context, roleID string, requestingUserID string) error
}

// RoleSvcFacade combines all role-related service interfaces
type RoleSvcFacade interface {
	RoleReaderSvc
	RoleWriterSvc
}
