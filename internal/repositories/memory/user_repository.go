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

// UserRepository implements portsrepo.UserRepositoryFacade in memory.
type UserRepository struct {
	store *Store
	roles *RoleRepository
}

// NewUserRepository creates a new user repository over s.
func NewUserRepository(s *Store) portsrepo.UserRepositoryFacade {
	return &UserRepository{store: s, roles: &RoleRepository{store: s}}
}

var _ portsrepo.UserRepositoryFacade = (*UserRepository)(nil)

func (r *UserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	u, ok := r.store.users[userID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return r.withRole(u), nil
}

func (r *UserRepository) FindUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, u := range r.store.users {
		if strings.EqualFold(u.Username, username) {
			return r.withRole(u), nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *UserRepository) FindUsers(ctx context.Context, limit int, offset int) ([]domain.User, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	all := make([]domain.User, 0, len(r.store.users))
	for _, u := range r.store.users {
		all = append(all, *r.withRole(u))
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Username < all[j].Username })

	if offset >= len(all) {
		return []domain.User{}, nil
	}
	end := len(all)
	if limit > 0 && offset+limit < end {
		end = offset + limit
	}
	return all[offset:end], nil
}

func (r *UserRepository) SaveUser(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.ID]; exists {
		return fmt.Errorf("%w: user id %s", apperrors.ErrDuplicate, user.ID)
	}
	for _, u := range r.store.users {
		if strings.EqualFold(u.Username, user.Username) {
			return fmt.Errorf("%w: username %s already exists", apperrors.ErrDuplicate, user.Username)
		}
	}
	user.Role = nil
	r.store.users[user.ID] = user
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user domain.User) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.users[user.ID]; !exists {
		return apperrors.ErrNotFound
	}
	user.Role = nil
	r.store.users[user.ID] = user
	return nil
}

func (r *UserRepository) withRole(u domain.User) *domain.User {
	if role, ok := r.store.roles[u.RoleID]; ok {
		u.Role = r.roles.view(role)
	}
	return &u
}
