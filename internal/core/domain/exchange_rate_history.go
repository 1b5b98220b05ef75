package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

const (
	// DefaultHistorySource is used when a history entry is recorded without a source.
	DefaultHistorySource = "Manual"
	// CurrencyUpdateHistorySource marks entries appended when a currency's rate is edited.
	CurrencyUpdateHistorySource = "CurrencyUpdate"
	// MaxHistoryResults caps every history query.
	MaxHistoryResults = 100
)

// ExchangeRateHistory is an append-only record of a currency's rate on a date.
type ExchangeRateHistory struct {
	ID           string          `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Date         time.Time       `json:"date"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// HistoryFilter selects history entries. Both date bounds are inclusive.
type HistoryFilter struct {
	CurrencyCode string
	StartDate    *time.Time
	EndDate      *time.Time
	Limit        int
}

// Matches reports whether h passes the filter (the limit is not considered).
func (f HistoryFilter) Matches(h ExchangeRateHistory) bool {
	if f.CurrencyCode != "" && h.CurrencyCode != f.CurrencyCode {
		return false
	}
	if f.StartDate != nil && h.Date.Before(*f.StartDate) {
		return false
	}
	if f.EndDate != nil && h.Date.After(*f.EndDate) {
		return false
	}
	return true
}
