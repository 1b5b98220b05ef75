package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
)

// RoleRepository implements portsrepo.RoleRepositoryFacade in memory.
type RoleRepository struct {
	store *Store
}

// NewRoleRepository creates a new role repository over s.
func NewRoleRepository(s *Store) portsrepo.RoleRepositoryFacade {
	return &RoleRepository{store: s}
}

var _ portsrepo.RoleRepositoryFacade = (*RoleRepository)(nil)

func (r *RoleRepository) FindRoleByID(ctx context.Context, roleID string) (*domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	role, ok := r.store.roles[roleID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return r.view(role), nil
}

func (r *RoleRepository) FindRoleByName(ctx context.Context, name string) (*domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, role := range r.store.roles {
		if strings.EqualFold(role.Name, name) {
			return r.view(role), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *RoleRepository) FindDefaultRole(ctx context.Context) (*domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, role := range r.store.roles {
		if role.IsDefault {
			return r.view(role), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *RoleRepository) ListRoles(ctx context.Context) ([]domain.Role, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.Role, 0, len(r.store.roles))
	for _, role := range r.store.roles {
		out = append(out, *r.view(role))
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *RoleRepository) SaveRole(ctx context.Context, role domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.roles[role.ID]; exists {
		return fmt.Errorf("%w: role id %s", apperrors.ErrDuplicate, role.ID)
	}
	if err := r.checkNameFree(role); err != nil {
		return err
	}
	r.write(role)
	return nil
}

func (r *RoleRepository) UpdateRole(ctx context.Context, role domain.Role) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.roles[role.ID]; !exists {
		return apperrors.ErrNotFound
	}
	if err := r.checkNameFree(role); err != nil {
		return err
	}
	r.write(role)
	return nil
}

func (r *RoleRepository) DeleteRole(ctx context.Context, roleID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, ok := r.store.roles[roleID]; !ok {
		return apperrors.ErrNotFound
	}
	if n := r.userCount(roleID); n > 0 {
		return apperrors.NewPolicyError(fmt.Sprintf("role is assigned to %d user(s)", n))
	}
	delete(r.store.roles, roleID)
	return nil
}

func (r *RoleRepository) checkNameFree(role domain.Role) error {
	for id, existing := range r.store.roles {
		if id != role.ID && strings.EqualFold(existing.Name, role.Name) {
			return fmt.Errorf("%w: role %s already exists", apperrors.ErrDuplicate, role.Name)
		}
	}
	return nil
}

func (r *RoleRepository) write(role domain.Role) {
	if role.IsDefault {
		for id, existing := range r.store.roles {
			if id != role.ID && existing.IsDefault {
				existing.IsDefault = false
				r.store.roles[id] = existing
			}
		}
	}
	role.Permissions = clonePermissions(role.Permissions)
	role.UserCount = 0
	r.store.roles[role.ID] = role
}

func (r *RoleRepository) userCount(roleID string) int {
	n := 0
	for _, u := range r.store.users {
		if u.RoleID == roleID {
			n++
		}
	}
	return n
}

// view returns a detached copy of role with its user count filled in.
func (r *RoleRepository) view(role domain.Role) *domain.Role {
	role.Permissions = clonePermissions(role.Permissions)
	role.UserCount = r.userCount(role.ID)
	return &role
}
