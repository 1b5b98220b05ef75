package repositories

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// CurrencyReader defines read operations for currency data
type CurrencyReader interface {
	// FindCurrencyByID retrieves a currency by its ID.
	FindCurrencyByID(ctx context.Context, currencyID string) (*domain.CurrencyRate, error)

	// FindCurrencyByCode retrieves a specific currency by its code.
	FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error)

	// ListCurrencies retrieves the currencies matching filter, base currency first then by code.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRate, error)

	// CountCurrencies returns the number of stored currencies, ignoring any filter.
	CountCurrencies(ctx context.Context) (int, error)
}

// CurrencyWriter defines write operations for currency data.
//
// Writers own the base currency rule: saving or updating a record flagged as
// base clears the flag on every other record in the same atomic step, and the
// base currency can never be deleted.
type CurrencyWriter interface {
	// SaveCurrency persists a new currency.
	SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error

	// UpdateCurrency replaces a stored currency.
	UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error

	// DeleteCurrency removes a currency unless it is the base currency.
	DeleteCurrency(ctx context.Context, currencyID string) error
}

// CurrencyRepositoryFacade combines all currency-related repository interfaces
type CurrencyRepositoryFacade interface {
	CurrencyReader
	CurrencyWriter
}
