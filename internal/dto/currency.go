package dto

import (
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateCurrencyRequest defines the data needed to create a new currency.
type CreateCurrencyRequest struct {
	Code           string           `json:"code" binding:"required,len=3,alpha"`
	Name           string           `json:"name" binding:"required"`
	Symbol         string           `json:"symbol" binding:"required"`
	Rate           *decimal.Decimal `json:"rate"` // Defaults to 1
	IsBaseCurrency bool             `json:"isBaseCurrency"`
	IsActive       *bool            `json:"isActive"` // Defaults to true
}

// UpdateCurrencyRequest defines the data allowed for updating a currency.
// Using pointers to differentiate between omitted fields and zero-value fields.
type UpdateCurrencyRequest struct {
	Code           *string          `json:"code" binding:"omitempty,len=3,alpha"`
	Name           *string          `json:"name" binding:"omitempty,min=1"`
	Symbol         *string          `json:"symbol" binding:"omitempty,min=1"`
	Rate           *decimal.Decimal `json:"rate"`
	IsBaseCurrency *bool            `json:"isBaseCurrency"`
	IsActive       *bool            `json:"isActive"`
}

// ToPatch converts the request into a domain patch.
func (r UpdateCurrencyRequest) ToPatch() domain.CurrencyPatch {
	return domain.CurrencyPatch{
		Code:           r.Code,
		Name:           r.Name,
		Symbol:         r.Symbol,
		Rate:           r.Rate,
		IsBaseCurrency: r.IsBaseCurrency,
		IsActive:       r.IsActive,
	}
}

// ListCurrenciesParams defines query parameters for listing currencies.
type ListCurrenciesParams struct {
	Search   string `form:"search"`
	IsActive *bool  `form:"isActive"`
}

// ToFilter converts the query parameters into a domain filter.
func (p ListCurrenciesParams) ToFilter() domain.CurrencyFilter {
	return domain.CurrencyFilter{Search: p.Search, IsActive: p.IsActive}
}

// ConvertCurrencyParams defines query parameters for converting an amount.
type ConvertCurrencyParams struct {
	From   string `form:"from" binding:"required,len=3,alpha"`
	To     string `form:"to" binding:"required,len=3,alpha"`
	Amount string `form:"amount" binding:"required,numeric"`
}

// CurrencyResponse defines the data returned for a currency.
type CurrencyResponse struct {
	ID             string          `json:"id"`
	Code           string          `json:"code"`
	Name           string          `json:"name"`
	Symbol         string          `json:"symbol"`
	Rate           decimal.Decimal `json:"rate"`
	IsBaseCurrency bool            `json:"isBaseCurrency"`
	IsActive       bool            `json:"isActive"`
	LastUpdated    time.Time       `json:"lastUpdated"`
	CreatedAt      time.Time       `json:"createdAt"`
	CreatedBy      string          `json:"createdBy"`
	LastUpdatedAt  time.Time       `json:"lastUpdatedAt"`
	LastUpdatedBy  string          `json:"lastUpdatedBy"`
}

// ToCurrencyResponse converts a domain.CurrencyRate to CurrencyResponse DTO
func ToCurrencyResponse(curr *domain.CurrencyRate) CurrencyResponse {
	return CurrencyResponse{
		ID:             curr.ID,
		Code:           curr.Code,
		Name:           curr.Name,
		Symbol:         curr.Symbol,
		Rate:           curr.Rate,
		IsBaseCurrency: curr.IsBaseCurrency,
		IsActive:       curr.IsActive,
		LastUpdated:    curr.LastUpdated,
		CreatedAt:      curr.CreatedAt,
		CreatedBy:      curr.CreatedBy,
		LastUpdatedAt:  curr.LastUpdatedAt,
		LastUpdatedBy:  curr.LastUpdatedBy,
	}
}

// ToListCurrencyResponse converts a slice of domain.CurrencyRate to a slice of CurrencyResponse DTOs
func ToListCurrencyResponse(currencies []domain.CurrencyRate) []CurrencyResponse {
	res := make([]CurrencyResponse, len(currencies))
	for i := range currencies {
		res[i] = ToCurrencyResponse(&currencies[i])
	}
	return res
}
