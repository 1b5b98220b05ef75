package repositories

import (
	"context"

	"github.com/SscSPs/adminpro/internal/core/domain"
)

// ExchangeRateHistoryReader defines read operations for rate history.
type ExchangeRateHistoryReader interface {
	// ListHistory returns entries matching filter, newest first, at most filter.Limit rows.
	ListHistory(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExchangeRateHistory, error)
}

// ExchangeRateHistoryWriter defines write operations for rate history. History is append-only.
type ExchangeRateHistoryWriter interface {
	SaveHistory(ctx context.Context, entry domain.ExchangeRateHistory) error
}

// ExchangeRateHistoryRepositoryFacade combines all rate history repository interfaces
type ExchangeRateHistoryRepositoryFacade interface {
	ExchangeRateHistoryReader
	ExchangeRateHistoryWriter
}
