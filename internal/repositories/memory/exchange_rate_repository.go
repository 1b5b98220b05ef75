package memory

import (
	"context"
	"sort"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
)

// ExchangeRateHistoryRepository implements the rate history repository in memory.
type ExchangeRateHistoryRepository struct {
	store *Store
}

// NewExchangeRateHistoryRepository creates a new history repository over s.
func NewExchangeRateHistoryRepository(s *Store) portsrepo.ExchangeRateHistoryRepositoryFacade {
	return &ExchangeRateHistoryRepository{store: s}
}

var _ portsrepo.ExchangeRateHistoryRepositoryFacade = (*ExchangeRateHistoryRepository)(nil)

func (r *ExchangeRateHistoryRepository) SaveHistory(ctx context.Context, entry domain.ExchangeRateHistory) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	r.store.history = append(r.store.history, entry)
	return nil
}

func (r *ExchangeRateHistoryRepository) ListHistory(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExchangeRateHistory, error) {
	r.store.mu.RLock()
	out := make([]domain.ExchangeRateHistory, 0)
	for _, h := range r.store.history {
		if filter.Matches(h) {
			out = append(out, h)
		}
	}
	r.store.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	if filter.Limit > 0 && len(out) > filter.Limit {
		out = out[:filter.Limit]
	}
	return out, nil
}
