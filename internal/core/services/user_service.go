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
	"github.com/SscSPs/adminpro/internal/utils"
	"github.com/google/uuid"
)

type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	roleRepo portsrepo.RoleReader
}

// NewUserService creates a new user service.
func NewUserService(userRepo portsrepo.UserRepositoryFacade, roleRepo portsrepo.RoleReader, clock func() time.Time) portssvc.UserSvcFacade {
	return &userService{
		BaseService: BaseService{Clock: clock},
		userRepo:    userRepo,
		roleRepo:    roleRepo,
	}
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user", slog.String("target_user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

func (s *userService) ListUsers(ctx context.Context, limit, offset int) ([]domain.User, error) {
	if limit <= 0 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}
	users, err := s.userRepo.FindUsers(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list users")
		return nil, err
	}
	if users == nil {
		users = []domain.User{}
	}
	return users, nil
}

func (s *userService) CreateUser(ctx context.Context, req dto.CreateUserRequest, creatorUserID string) (*domain.User, error) {
	username := strings.TrimSpace(req.Username)
	if username == "" {
		return nil, apperrors.NewValidationError("username is required")
	}

	role, err := s.resolveRole(ctx, req.RoleID)
	if err != nil {
		return nil, err
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, err
	}

	now := s.Now()
	user := domain.User{
		ID:           uuid.NewString(),
		Username:     username,
		Name:         strings.TrimSpace(req.Name),
		Email:        strings.TrimSpace(req.Email),
		PasswordHash: hash,
		RoleID:       role.ID,
		IsActive:     true,
		AuditFields:  domain.NewAuditFields(creatorUserID, now),
	}

	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user", slog.String("username", username))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User created", slog.String("target_user_id", user.ID), slog.String("role_id", role.ID))
	user.Role = role
	return &user, nil
}

func (s *userService) UpdateUser(ctx context.Context, userID string, req dto.UpdateUserRequest, requestingUserID string) (*domain.User, error) {
	user, err := s.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		user.Name = strings.TrimSpace(*req.Name)
	}
	if req.Email != nil {
		user.Email = strings.TrimSpace(*req.Email)
	}
	if req.IsActive != nil {
		user.IsActive = *req.IsActive
	}
	if req.RoleID != nil && *req.RoleID != user.RoleID {
		role, err := s.resolveRole(ctx, *req.RoleID)
		if err != nil {
			return nil, err
		}
		user.RoleID = role.ID
		user.Role = role
	}
	if req.Password != nil {
		hash, err := utils.HashPassword(*req.Password)
		if err != nil {
			s.LogError(ctx, err, "Failed to hash password")
			return nil, err
		}
		user.PasswordHash = hash
	}
	user.Touch(requestingUserID, s.Now())

	if err := s.userRepo.UpdateUser(ctx, *user); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update user", slog.String("target_user_id", userID))
		}
		return nil, err
	}

	s.LogInfo(ctx, "User updated", slog.String("target_user_id", userID))
	return user, nil
}

func (s *userService) AuthenticateUser(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, err
	}
	if !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Login failed: wrong password", slog.String("target_user_id", user.ID))
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		s.LogWarn(ctx, "Login failed: inactive user", slog.String("target_user_id", user.ID))
		return nil, apperrors.ErrUnauthorized
	}
	return user, nil
}

// resolveRole returns the role with roleID, or the default role when roleID is empty.
func (s *userService) resolveRole(ctx context.Context, roleID string) (*domain.Role, error) {
	if roleID == "" {
		role, err := s.roleRepo.FindDefaultRole(ctx)
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewValidationError("roleId is required when no default role exists")
		}
		return role, err
	}
	role, err := s.roleRepo.FindRoleByID(ctx, roleID)
	if errors.Is(err, apperrors.ErrNotFound) {
		return nil, apperrors.NewValidationError("role " + roleID + " does not exist")
	}
	return role, err
}
