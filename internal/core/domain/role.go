package domain

// Role groups permissions that can be assigned to users.
type Role struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Permissions PermissionSet `json:"-"`
	UserCount   int           `json:"userCount"` // derived, never written
	IsDefault   bool          `json:"isDefault"` // assigned to new users without an explicit role
	IsActive    bool          `json:"isActive"`
	AuditFields
}

// RolePatch holds the optional fields of a role update.
type RolePatch struct {
	Name        *string
	Description *string
	Permissions *[]string
	IsDefault   *bool
	IsActive    *bool
}

// ApplyTo copies every set field of p onto r.
func (p RolePatch) ApplyTo(r *Role) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Description != nil {
		r.Description = *p.Description
	}
	if p.Permissions != nil {
		r.Permissions = NewPermissionSet(*p.Permissions...)
	}
	if p.IsDefault != nil {
		r.IsDefault = *p.IsDefault
	}
	if p.IsActive != nil {
		r.IsActive = *p.IsActive
	}
}
