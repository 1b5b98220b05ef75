package dto

import (
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// CreateUserRequest defines the data needed to create a user.
type CreateUserRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"omitempty,email"`
	Password string `json:"password" binding:"required,min=8"`
	RoleID   string `json:"roleId"` // Defaults to the default role
}

// UpdateUserRequest defines the data allowed for updating a user.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateUserRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=1"`
	Email    *string `json:"email" binding:"omitempty,email"`
	Password *string `json:"password" binding:"omitempty,min=8"`
	RoleID   *string `json:"roleId"`
	IsActive *bool   `json:"isActive"`
}

// ListUsersParams defines query parameters for listing users.
type ListUsersParams struct {
	Limit  int `form:"limit,default=20" binding:"min=1,max=100"`
	Offset int `form:"offset,default=0" binding:"min=0"`
}

// UserResponse defines the data returned for a user.
type UserResponse struct {
	ID            string        `json:"id"`
	Username      string        `json:"username"`
	Name          string        `json:"name"`
	Email         string        `json:"email"`
	RoleID        string        `json:"roleId"`
	Role          *RoleResponse `json:"role,omitempty"`
	Permissions   []string      `json:"permissions"`
	IsActive      bool          `json:"isActive"`
	CreatedAt     time.Time     `json:"createdAt"`
	LastUpdatedAt time.Time     `json:"lastUpdatedAt"`
}

// ToUserResponse converts a domain.User to UserResponse DTO
func ToUserResponse(user *domain.User) UserResponse {
	res := UserResponse{
		ID:            user.ID,
		Username:      user.Username,
		Name:          user.Name,
		Email:         user.Email,
		RoleID:        user.RoleID,
		Permissions:   user.Permissions().Sorted(),
		IsActive:      user.IsActive,
		CreatedAt:     user.CreatedAt,
		LastUpdatedAt: user.LastUpdatedAt,
	}
	if user.Role != nil {
		role := ToRoleResponse(user.Role)
		res.Role = &role
	}
	return res
}

// ToListUserResponse converts a slice of domain.User to UserResponse DTOs
func ToListUserResponse(users []domain.User) []UserResponse {
	res := make([]UserResponse, len(users))
	for i := range users {
		res[i] = ToUserResponse(&users[i])
	}
	return res
}
