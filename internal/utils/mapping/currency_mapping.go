package mapping

import (
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/models"
)

// ToModelCurrency converts a domain CurrencyRate to a model Currency
func ToModelCurrency(d domain.CurrencyRate) models.Currency {
	return models.Currency{
		CurrencyID:     d.ID,
		Code:           d.Code,
		Name:           d.Name,
		Symbol:         d.Symbol,
		Rate:           d.Rate,
		IsBaseCurrency: d.IsBaseCurrency,
		IsActive:       d.IsActive,
		LastUpdated:    d.LastUpdated,
		AuditFields:    ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain CurrencyRate
func ToDomainCurrency(m models.Currency) domain.CurrencyRate {
	return domain.CurrencyRate{
		ID:             m.CurrencyID,
		Code:           m.Code,
		Name:           m.Name,
		Symbol:         m.Symbol,
		Rate:           m.Rate,
		IsBaseCurrency: m.IsBaseCurrency,
		IsActive:       m.IsActive,
		LastUpdated:    m.LastUpdated,
		AuditFields:    ToDomainAuditFields(m.AuditFields),
	}
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain currencies
func ToDomainCurrencySlice(ms []models.Currency) []domain.CurrencyRate {
	ds := make([]domain.CurrencyRate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainCurrency(m)
	}
	return ds
}
