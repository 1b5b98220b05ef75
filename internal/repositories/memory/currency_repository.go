package memory

import (
	"context"
	"fmt"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
)

// CurrencyRepository implements portsrepo.CurrencyRepositoryFacade in memory.
type CurrencyRepository struct {
	store *Store
}

// NewCurrencyRepository creates a new currency repository over s.
func NewCurrencyRepository(s *Store) portsrepo.CurrencyRepositoryFacade {
	return &CurrencyRepository{store: s}
}

var _ portsrepo.CurrencyRepositoryFacade = (*CurrencyRepository)(nil)

func (r *CurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.CurrencyRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.currencies[currencyID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &c, nil
}

func (r *CurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	code := domain.NormalizeCurrencyCode(currencyCode)
	for _, c := range r.store.currencies {
		if c.Code == code {
			return &c, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (r *CurrencyRepository) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRate, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]domain.CurrencyRate, 0, len(r.store.currencies))
	for _, c := range r.store.currencies {
		if filter.Matches(c) {
			out = append(out, c)
		}
	}
	domain.SortCurrencies(out)
	return out, nil
}

func (r *CurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()
	return len(r.store.currencies), nil
}

func (r *CurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.currencies[currency.ID]; exists {
		return fmt.Errorf("%w: currency id %s", apperrors.ErrDuplicate, currency.ID)
	}
	if err := r.checkCodeFree(currency); err != nil {
		return err
	}
	r.write(currency)
	return nil
}

func (r *CurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.currencies[currency.ID]; !exists {
		return apperrors.ErrNotFound
	}
	if err := r.checkCodeFree(currency); err != nil {
		return err
	}
	r.write(currency)
	return nil
}

func (r *CurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.currencies[currencyID]
	if !ok {
		return apperrors.ErrNotFound
	}
	if c.IsBaseCurrency {
		return apperrors.NewPolicyError("cannot delete the base currency")
	}
	delete(r.store.currencies, currencyID)
	return nil
}

// checkCodeFree must be called with the write lock held.
func (r *CurrencyRepository) checkCodeFree(currency domain.CurrencyRate) error {
	for id, c := range r.store.currencies {
		if id != currency.ID && c.Code == currency.Code {
			return fmt.Errorf("%w: currency code %s already exists", apperrors.ErrDuplicate, currency.Code)
		}
	}
	return nil
}

// write stores currency, demoting any other base first. Must be called with
// the write lock held.
func (r *CurrencyRepository) write(currency domain.CurrencyRate) {
	if currency.IsBaseCurrency {
		currency.Rate = domain.BaseCurrencyRate
		for id, c := range r.store.currencies {
			if id != currency.ID && c.IsBaseCurrency {
				c.IsBaseCurrency = false
				c.LastUpdated = currency.LastUpdated
				c.LastUpdatedAt = currency.LastUpdatedAt
				c.LastUpdatedBy = currency.LastUpdatedBy
				r.store.currencies[id] = c
			}
		}
	}
	r.store.currencies[currency.ID] = currency
}
