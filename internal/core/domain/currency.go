package domain

import (
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// BaseCurrencyRate is the rate the base currency is pinned to.
var BaseCurrencyRate = decimal.NewFromInt(1)

// CurrencyRate is a currency known to the system together with its rate
// against the base currency.
type CurrencyRate struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`   // ISO-like 3 letter code, always uppercase
	Name           string          `json:"name"`   // e.g., "US Dollar"
	Symbol         string          `json:"symbol"` // e.g., "$"
	Rate           decimal.Decimal `json:"rate"`   // Units of this currency per one unit of the base currency
	IsBaseCurrency bool            `json:"isBaseCurrency"`
	IsActive       bool            `json:"isActive"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	AuditFields
}

// NormalizeCurrencyCode trims and uppercases a currency code.
func NormalizeCurrencyCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Normalize uppercases the code and pins the rate of a base currency to 1.
func (c *CurrencyRate) Normalize() {
	c.Code = NormalizeCurrencyCode(c.Code)
	c.Name = strings.TrimSpace(c.Name)
	c.Symbol = strings.TrimSpace(c.Symbol)
	if c.IsBaseCurrency {
		c.Rate = BaseCurrencyRate
	}
}

// CurrencyFilter narrows a currency listing.
type CurrencyFilter struct {
	Search   string // case-insensitive substring over code or name
	IsActive *bool
}

// Matches reports whether c passes the filter.
func (f CurrencyFilter) Matches(c CurrencyRate) bool {
	if f.IsActive != nil && c.IsActive != *f.IsActive {
		return false
	}
	if f.Search == "" {
		return true
	}
	needle := strings.ToLower(f.Search)
	return strings.Contains(strings.ToLower(c.Code), needle) ||
		strings.Contains(strings.ToLower(c.Name), needle)
}

// SortCurrencies orders currencies with the base currency first, then by code.
func SortCurrencies(currencies []CurrencyRate) {
	sort.SliceStable(currencies, func(i, j int) bool {
		if currencies[i].IsBaseCurrency != currencies[j].IsBaseCurrency {
			return currencies[i].IsBaseCurrency
		}
		return currencies[i].Code < currencies[j].Code
	})
}

// CurrencyPatch holds the optional fields of a currency update.
type CurrencyPatch struct {
	Code           *string
	Name           *string
	Symbol         *string
	Rate           *decimal.Decimal
	IsBaseCurrency *bool
	IsActive       *bool
}

// ApplyTo copies every set field of p onto c.
func (p CurrencyPatch) ApplyTo(c *CurrencyRate) {
	if p.Code != nil {
		c.Code = *p.Code
	}
	if p.Name != nil {
		c.Name = *p.Name
	}
	if p.Symbol != nil {
		c.Symbol = *p.Symbol
	}
	if p.Rate != nil {
		c.Rate = *p.Rate
	}
	if p.IsBaseCurrency != nil {
		c.IsBaseCurrency = *p.IsBaseCurrency
	}
	if p.IsActive != nil {
		c.IsActive = *p.IsActive
	}
}

// Conversion is the result of converting an amount between two currencies.
type Conversion struct {
	From   string          `json:"from"`
	To     string          `json:"to"`
	Amount decimal.Decimal `json:"amount"`
	Rate   decimal.Decimal `json:"rate"` // units of To per unit of From
	Result decimal.Decimal `json:"result"`
}
