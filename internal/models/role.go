package models

// Role is a row of the roles table. UserCount is computed on read.
type Role struct {
	RoleID      string   `db:"role_id"`
	Name        string   `db:"name"`
	Description string   `db:"description"`
	Permissions []string `db:"permissions"`
	IsDefault   bool     `db:"is_default"`
	IsActive    bool     `db:"is_active"`
	UserCount   int      `db:"user_count"`
	AuditFields
}
