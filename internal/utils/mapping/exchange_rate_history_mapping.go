package mapping

import (
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/models"
)

// ToModelExchangeRateHistory converts a domain history entry to its model
func ToModelExchangeRateHistory(d domain.ExchangeRateHistory) models.ExchangeRateHistory {
	return models.ExchangeRateHistory{
		HistoryID:    d.ID,
		CurrencyCode: d.CurrencyCode,
		RateDate:     d.Date,
		Rate:         d.Rate,
		Source:       d.Source,
		CreatedAt:    d.CreatedAt,
		CreatedBy:    d.CreatedBy,
	}
}

// ToDomainExchangeRateHistory converts a model history entry to its domain type
func ToDomainExchangeRateHistory(m models.ExchangeRateHistory) domain.ExchangeRateHistory {
	return domain.ExchangeRateHistory{
		ID:           m.HistoryID,
		CurrencyCode: m.CurrencyCode,
		Date:         m.RateDate,
		Rate:         m.Rate,
		Source:       m.Source,
		CreatedAt:    m.CreatedAt,
		CreatedBy:    m.CreatedBy,
	}
}

// ToDomainExchangeRateHistorySlice converts a slice of model history entries
func ToDomainExchangeRateHistorySlice(ms []models.ExchangeRateHistory) []domain.ExchangeRateHistory {
	ds := make([]domain.ExchangeRateHistory, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainExchangeRateHistory(m)
	}
	return ds
}
