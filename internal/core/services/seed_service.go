package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
)

const (
	AdminRoleName  = "Administrator"
	ViewerRoleName = "Viewer"
	seedActorID    = "system"
)

// AdminSeed describes the first administrator account.
type AdminSeed struct {
	Username string
	Password string
	Name     string
	Email    string
}

// SeedResult reports what EnsureAdmin created.
type SeedResult struct {
	AdminRole   *domain.Role
	ViewerRole  *domain.Role
	Admin       *domain.User
	UserCreated bool
}

// EnsureAdmin creates the administrator role, a default read-only role and the
// admin user when they are missing. Running it again is a no-op.
func EnsureAdmin(ctx context.Context, repos portsrepo.RepositoryProvider, svc *portssvc.ServiceContainer, seed AdminSeed) (*SeedResult, error) {
	if seed.Username == "" || seed.Password == "" {
		return nil, apperrors.NewValidationError("admin username and password are required")
	}
	logger := (&BaseService{}).GetLogger(ctx)
	res := &SeedResult{}

	adminRole, err := ensureRole(ctx, repos.RoleRepo, svc.Role, dto.CreateRoleRequest{
		Name:        AdminRoleName,
		Description: "Full access to every dashboard section",
		Permissions: domain.AllPermissions,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure admin role: %w", err)
	}
	res.AdminRole = adminRole

	viewerRole, err := ensureRole(ctx, repos.RoleRepo, svc.Role, dto.CreateRoleRequest{
		Name:        ViewerRoleName,
		Description: "Read-only access",
		Permissions: []string{domain.PermCurrenciesRead, domain.PermRolesRead, domain.PermUsersRead},
		IsDefault:   true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure viewer role: %w", err)
	}
	res.ViewerRole = viewerRole

	existing, err := repos.UserRepo.FindUserByUsername(ctx, seed.Username)
	switch {
	case err == nil:
		logger.Info("Admin user already exists", slog.String("username", seed.Username))
		res.Admin = existing
		return res, nil
	case !errors.Is(err, apperrors.ErrNotFound):
		return nil, fmt.Errorf("failed to look up admin user: %w", err)
	}

	admin, err := svc.User.CreateUser(ctx, dto.CreateUserRequest{
		Username: seed.Username,
		Name:     seed.Name,
		Email:    seed.Email,
		Password: seed.Password,
		RoleID:   adminRole.ID,
	}, seedActorID)
	if err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}
	logger.Info("Admin user created", slog.String("username", admin.Username), slog.String("user_id", admin.ID))
	res.Admin = admin
	res.UserCreated = true
	return res, nil
}

func ensureRole(ctx context.Context, repo portsrepo.RoleReader, svc portssvc.RoleWriterSvc, req dto.CreateRoleRequest) (*domain.Role, error) {
	role, err := repo.FindRoleByName(ctx, req.Name)
	if err == nil {
		return role, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}
	return svc.CreateRole(ctx, req, seedActorID)
}
