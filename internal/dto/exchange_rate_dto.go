package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/shopspring/decimal"
)

const dateOnlyLayout = "2006-01-02"

// CreateExchangeRateHistoryRequest defines the structure for recording a rate.
type CreateExchangeRateHistoryRequest struct {
	CurrencyCode string           `json:"currencyCode" binding:"required,len=3,alpha"`
	Rate         *decimal.Decimal `json:"rate" binding:"required"`
	Date         *RateDate        `json:"date" swaggertype:"string" example:"2024-01-15"` // Defaults to now
	Source       string           `json:"source"`                                         // Defaults to "Manual"
}

// RateDate is a history entry date. JSON accepts YYYY-MM-DD or RFC 3339,
// the same forms as the history query.
type RateDate struct {
	time.Time
}

// NewRateDate wraps t.
func NewRateDate(t time.Time) *RateDate {
	return &RateDate{Time: t}
}

func (d *RateDate) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	t, _, err := parseQueryDate(raw)
	if err != nil {
		return err
	}
	d.Time = t
	return nil
}

func (d RateDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}

// ListExchangeRateHistoryParams defines query parameters for the history query.
// Dates accept RFC 3339 timestamps or plain YYYY-MM-DD dates.
type ListExchangeRateHistoryParams struct {
	CurrencyCode string `form:"currencyCode"`
	StartDate    string `form:"startDate"`
	EndDate      string `form:"endDate"`
}

// ToFilter parses the query parameters. A date-only endDate covers the whole day.
func (p ListExchangeRateHistoryParams) ToFilter() (domain.HistoryFilter, error) {
	filter := domain.HistoryFilter{
		CurrencyCode: domain.NormalizeCurrencyCode(p.CurrencyCode),
		Limit:        domain.MaxHistoryResults,
	}
	if p.StartDate != "" {
		start, _, err := parseQueryDate(p.StartDate)
		if err != nil {
			return filter, fmt.Errorf("invalid startDate: %w", err)
		}
		filter.StartDate = &start
	}
	if p.EndDate != "" {
		end, dateOnly, err := parseQueryDate(p.EndDate)
		if err != nil {
			return filter, fmt.Errorf("invalid endDate: %w", err)
		}
		if dateOnly {
			end = end.AddDate(0, 0, 1).Add(-time.Nanosecond)
		}
		filter.EndDate = &end
	}
	return filter, nil
}

func parseQueryDate(value string) (time.Time, bool, error) {
	if t, err := time.Parse(dateOnlyLayout, value); err == nil {
		return t, true, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("expected YYYY-MM-DD or RFC 3339, got %q: %w", value, err)
	}
	return t, false, nil
}

// ExchangeRateHistoryResponse defines the structure for API responses containing rate history.
type ExchangeRateHistoryResponse struct {
	ID           string          `json:"id"`
	CurrencyCode string          `json:"currencyCode"`
	Date         time.Time       `json:"date"`
	Rate         decimal.Decimal `json:"rate"`
	Source       string          `json:"source"`
	CreatedAt    time.Time       `json:"createdAt"`
	CreatedBy    string          `json:"createdBy"`
}

// ToExchangeRateHistoryResponse converts a domain.ExchangeRateHistory to its response DTO
func ToExchangeRateHistoryResponse(h *domain.ExchangeRateHistory) ExchangeRateHistoryResponse {
	return ExchangeRateHistoryResponse{
		ID:           h.ID,
		CurrencyCode: h.CurrencyCode,
		Date:         h.Date,
		Rate:         h.Rate,
		Source:       h.Source,
		CreatedAt:    h.CreatedAt,
		CreatedBy:    h.CreatedBy,
	}
}

// ToListExchangeRateHistoryResponse converts a slice of history entries to response DTOs.
func ToListExchangeRateHistoryResponse(entries []domain.ExchangeRateHistory) []ExchangeRateHistoryResponse {
	responses := make([]ExchangeRateHistoryResponse, len(entries))
	for i := range entries {
		responses[i] = ToExchangeRateHistoryResponse(&entries[i])
	}
	return responses
}
