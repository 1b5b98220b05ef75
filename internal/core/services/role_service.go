package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/google/uuid"
)

type roleService struct {
	BaseService
	roleRepo portsrepo.RoleRepositoryFacade
}

// NewRoleService creates a new role service.
func NewRoleService(roleRepo portsrepo.RoleRepositoryFacade, clock func() time.Time) portssvc.RoleSvcFacade {
	return &roleService{
		BaseService: BaseService{Clock: clock},
		roleRepo:    roleRepo,
	}
}

var _ portssvc.RoleSvcFacade = (*roleService)(nil)

func (s *roleService) GetRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find role", slog.String("role_id", roleID))
		}
		return nil, err
	}
	return role, nil
}

func (s *roleService) ListRoles(ctx context.Context) ([]domain.Role, error) {
	roles, err := s.roleRepo.ListRoles(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list roles")
		return nil, err
	}
	if roles == nil {
		roles = []domain.Role{}
	}
	return roles, nil
}

func (s *roleService) CreateRole(ctx context.Context, req dto.CreateRoleRequest, creatorUserID string) (*domain.Role, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	now := s.Now()
	role := domain.Role{
		ID:          uuid.NewString(),
		Name:        name,
		Description: strings.TrimSpace(req.Description),
		Permissions: domain.NewPermissionSet(req.Permissions...),
		IsDefault:   req.IsDefault,
		IsActive:    isActive,
		AuditFields: domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.roleRepo.SaveRole(ctx, role); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save role", slog.String("role_name", name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Role created", slog.String("role_id", role.ID), slog.String("role_name", role.Name))
	return &role, nil
}

func (s *roleService) UpdateRole(ctx context.Context, roleID string, req dto.UpdateRoleRequest, updaterUserID string) (*domain.Role, error) {
	role, err := s.GetRoleByID(ctx, roleID)
	if err != nil {
		return nil, err
	}

	req.ToPatch().ApplyTo(role)
	role.Name = strings.TrimSpace(role.Name)
	if role.Name == "" {
		return nil, apperrors.NewValidationError("name is required")
	}
	role.Touch(updaterUserID, s.Now())

	if err := s.roleRepo.UpdateRole(ctx, *role); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update role", slog.String("role_id", roleID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Role updated", slog.String("role_id", role.ID))
	return role, nil
}

func (s *roleService) DeleteRole(ctx context.Context, roleID string, requestingUserID string) error {
	if err := s.roleRepo.DeleteRole(ctx, roleID); err != nil {
		if !errors.Is(err, apperrors.ErrPolicy) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete role", slog.String("role_id", roleID))
		}
		return err
	}
	s.LogInfo(ctx, "Role deleted", slog.String("role_id", roleID), slog.String("deleted_by", requestingUserID))
	return nil
}
