package domain

// User is an operator of the admin dashboard.
type User struct {
	ID           string `json:"id"`
	Username     string `json:"username"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	PasswordHash string `json:"-"`
	RoleID       string `json:"roleId"`
	Role         *Role  `json:"role,omitempty"`
	IsActive     bool   `json:"isActive"`
	AuditFields
}

// Permissions returns the permissions granted through the user's role. An
// inactive user or role grants nothing.
func (u *User) Permissions() PermissionSet {
	if u == nil || !u.IsActive || u.Role == nil || !u.Role.IsActive {
		return PermissionSet{}
	}
	return u.Role.Permissions
}
