package dto

import (
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// CreateRoleRequest defines the data needed to create a role.
type CreateRoleRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Permissions []string `json:"permissions"`
	IsDefault   bool     `json:"isDefault"`
	IsActive    *bool    `json:"isActive"` // Defaults to true
}

// UpdateRoleRequest defines the data allowed for updating a role.
type UpdateRoleRequest struct {
	Name        *string   `json:"name" binding:"omitempty,min=1"`
	Description *string   `json:"description"`
	Permissions *[]string `json:"permissions"`
	IsDefault   *bool     `json:"isDefault"`
	IsActive    *bool     `json:"isActive"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateRoleRequest) ToPatch() domain.RolePatch {
	return domain.RolePatch{
		Name:        r.Name,
		Description: r.Description,
		Permissions: r.Permissions,
		IsDefault:   r.IsDefault,
		IsActive:    r.IsActive,
	}
}

// RoleResponse defines the data returned for a role.
type RoleResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	Permissions   []string  `json:"permissions"`
	UserCount     int       `json:"userCount"`
	IsDefault     bool      `json:"isDefault"`
	IsActive      bool      `json:"isActive"`
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"`
}

// ToRoleResponse converts a domain.Role to RoleResponse DTO
func ToRoleResponse(role *domain.Role) RoleResponse {
	return RoleResponse{
		ID:            role.ID,
		Name:          role.Name,
		Description:   role.Description,
		Permissions:   role.Permissions.Sorted(),
		UserCount:     role.UserCount,
		IsDefault:     role.IsDefault,
		IsActive:      role.IsActive,
		CreatedAt:     role.CreatedAt,
		CreatedBy:     role.CreatedBy,
		LastUpdatedAt: role.LastUpdatedAt,
		LastUpdatedBy: role.LastUpdatedBy,
	}
}

// ToListRoleResponse converts a slice of domain.Role to RoleResponse DTOs
func ToListRoleResponse(roles []domain.Role) []RoleResponse {
	res := make([]RoleResponse, len(roles))
	for i := range roles {
		res[i] = ToRoleResponse(&roles[i])
	}
	return res
}
