package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Currency is a row of the currencies table.
type Currency struct {
	CurrencyID     string          `db:"currency_id"`
	Code           string          `db:"code"`
	Name           string          `db:"name"`
	Symbol         string          `db:"symbol"`
	Rate           decimal.Decimal `db:"rate"`
	IsBaseCurrency bool            `db:"is_base_currency"`
	IsActive       bool            `db:"is_active"`
	LastUpdated    time.Time       `db:"last_updated"`
	AuditFields
}
