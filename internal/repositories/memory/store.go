// Package memory keeps every repository in process memory. It backs local
// development and tests when no Postgres instance is configured.
package memory

import (
	"sync"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
)

// Store holds all records behind one lock, so multi-record rules such as the
// single base currency are applied atomically.
type Store struct {
	mu         sync.RWMutex
	currencies map[string]domain.CurrencyRate
	history    []domain.ExchangeRateHistory
	roles      map[string]domain.Role
	users      map[string]domain.User
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		currencies: make(map[string]domain.CurrencyRate),
		roles:      make(map[string]domain.Role),
		users:      make(map[string]domain.User),
	}
}

// NewRepositoryProvider wires every repository to s.
func NewRepositoryProvider(s *Store) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     NewCurrencyRepository(s),
		ExchangeRateRepo: NewExchangeRateHistoryRepository(s),
		RoleRepo:         NewRoleRepository(s),
		UserRepo:         NewUserRepository(s),
	}
}

func clonePermissions(p domain.PermissionSet) domain.PermissionSet {
	out := make(domain.PermissionSet, len(p))
	for k := range p {
		out[k] = struct{}{}
	}
	return out
}
