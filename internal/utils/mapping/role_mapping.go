package mapping

import (
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/models"
)

// ToModelRole converts a domain Role to a model Role. Permissions are stored sorted.
func ToModelRole(d domain.Role) models.Role {
	return models.Role{
		RoleID:      d.ID,
		Name:        d.Name,
		Description: d.Description,
		Permissions: d.Permissions.Sorted(),
		IsDefault:   d.IsDefault,
		IsActive:    d.IsActive,
		UserCount:   d.UserCount,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRole converts a model Role to a domain Role
func ToDomainRole(m models.Role) domain.Role {
	return domain.Role{
		ID:          m.RoleID,
		Name:        m.Name,
		Description: m.Description,
		Permissions: domain.NewPermissionSet(m.Permissions...),
		IsDefault:   m.IsDefault,
		IsActive:    m.IsActive,
		UserCount:   m.UserCount,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainRoleSlice converts a slice of model Roles to a slice of domain Roles
func ToDomainRoleSlice(ms []models.Role) []domain.Role {
	ds := make([]domain.Role, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRole(m)
	}
	return ds
}
