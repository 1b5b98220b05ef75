package dto

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListExchangeRateHistoryParams_ToFilter(t *testing.T) {
	filter, err := ListExchangeRateHistoryParams{CurrencyCode: " usd ", StartDate: "2024-01-01", EndDate: "2024-01-31"}.ToFilter()
	require.NoError(t, err)

	assert.Equal(t, "USD", filter.CurrencyCode)
	assert.Equal(t, domain.MaxHistoryResults, filter.Limit)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	assert.Equal(t, time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), *filter.StartDate)
	assert.Equal(t, time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC), *filter.EndDate)
}

func TestListExchangeRateHistoryParams_ToFilterTimestamps(t *testing.T) {
	filter, err := ListExchangeRateHistoryParams{EndDate: "2024-01-31T12:00:00Z"}.ToFilter()
	require.NoError(t, err)

	assert.Nil(t, filter.StartDate)
	assert.Equal(t, time.Date(2024, 1, 31, 12, 0, 0, 0, time.UTC), filter.EndDate.UTC())
}

func TestListExchangeRateHistoryParams_ToFilterRejectsGarbage(t *testing.T) {
	_, err := ListExchangeRateHistoryParams{StartDate: "31/01/2024"}.ToFilter()
	assert.ErrorContains(t, err, "invalid startDate")

	_, err = ListExchangeRateHistoryParams{EndDate: "soon"}.ToFilter()
	assert.ErrorContains(t, err, "invalid endDate")
}

func TestUpdateCurrencyRequest_ToPatchKeepsOmittedFieldsNil(t *testing.T) {
	name := "Euro"
	patch := UpdateCurrencyRequest{Name: &name}.ToPatch()

	assert.Equal(t, &name, patch.Name)
	assert.Nil(t, patch.Rate)
	assert.Nil(t, patch.IsBaseCurrency)
}

func TestCreateExchangeRateHistoryRequest_DateForms(t *testing.T) {
	tests := []struct {
		name string
		body string
		want time.Time
	}{
		{"date only", `{"date":"2024-01-15"}`, time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)},
		{"rfc 3339", `{"date":"2024-01-15T10:30:00+02:00"}`, time.Date(2024, 1, 15, 8, 30, 0, 0, time.UTC)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req CreateExchangeRateHistoryRequest
			require.NoError(t, json.Unmarshal([]byte(tt.body), &req))
			require.NotNil(t, req.Date)
			assert.True(t, req.Date.Equal(tt.want), "got %s", req.Date)
		})
	}

	var req CreateExchangeRateHistoryRequest
	require.NoError(t, json.Unmarshal([]byte(`{"date":null}`), &req))
	assert.Nil(t, req.Date)

	err := json.Unmarshal([]byte(`{"date":"15/01/2024"}`), &req)
	var pe *time.ParseError
	assert.ErrorAs(t, err, &pe)
}
