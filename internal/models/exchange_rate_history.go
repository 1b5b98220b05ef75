package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// ExchangeRateHistory is a row of the exchange_rate_history table.
type ExchangeRateHistory struct {
	HistoryID    string          `db:"history_id"`
	CurrencyCode string          `db:"currency_code"`
	RateDate     time.Time       `db:"rate_date"`
	Rate         decimal.Decimal `db:"rate"`
	Source       string          `db:"source"`
	CreatedAt    time.Time       `db:"created_at"`
	CreatedBy    string          `db:"created_by"`
}
