package services

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for currency data
type CurrencyReaderSvc interface {
	// GetCurrencyByID retrieves a currency by its ID.
	GetCurrencyByID(ctx context.Context, currencyID string) (*domain.CurrencyRate, error)

	// ListCurrencies returns the currencies matching filter and the total number of stored currencies.
	ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRate, int, error)

	// ConvertAmount converts amount from one currency into another using their rates against the base.
	ConvertAmount(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error)
}

// CurrencyWriterSvc defines write operations for currency data
type CurrencyWriterSvc interface {
	// CreateCurrency persists a new currency.
	CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.CurrencyRate, error)

	// UpdateCurrency applies a partial update to a currency.
	UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.CurrencyRate, error)

	// DeleteCurrency removes a currency. The base currency cannot be deleted.
	DeleteCurrency(ctx context.Context, currencyID string, requestingUserID string) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// ExchangeRateHistoryReaderSvc defines read operations for rate history
type ExchangeRateHistoryReaderSvc interface {
	// ListHistory returns history entries newest first, capped at domain.MaxHistoryResults.
	ListHistory(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExchangeRateHistory, error)
}

// ExchangeRateHistoryWriterSvc defines write operations for rate history
type ExchangeRateHistoryWriterSvc interface {
	// RecordRate appends a history entry.
	RecordRate(ctx context.Context, req dto.CreateExchangeRateHistoryRequest, creatorUserID string) (*domain.ExchangeRateHistory, error)
}

// ExchangeRateHistorySvcFacade combines all rate history service interfaces
type ExchangeRateHistorySvcFacade interface {
	ExchangeRateHistoryReaderSvc
	ExchangeRateHistoryWriterSvc
}
