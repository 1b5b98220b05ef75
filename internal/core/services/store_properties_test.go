package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/core/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/SscSPs/adminpro/internal/messaging"
	"github.com/SscSPs/adminpro/internal/platform/config"
	"github.com/SscSPs/adminpro/internal/repositories/memory"
	"github.com/SscSPs/adminpro/internal/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// These tests run the real services over the in-memory store.

func TestCurrencyServiceOverStore_ConcurrentSetAsBase(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	svc := services.NewServiceContainer(&config.Config{}, repos, messaging.NoopPublisher{})

	var ids []string
	for i, code := range []string{"USD", "EUR", "GBP", "JPY", "CHF", "AUD"} {
		c, err := svc.Currency.CreateCurrency(ctx, dto.CreateCurrencyRequest{
			Code: code, Name: code, Symbol: code[:1], Rate: decimalPtr(fmt.Sprintf("%d.5", i+1)),
		}, "seed")
		require.NoError(t, err)
		ids = append(ids, c.ID)
	}

	var wg sync.WaitGroup
	for _, id := range ids {
		wg.Add(1)
		go func(id string) {
			defer wg.Done()
			_, err := svc.Currency.UpdateCurrency(ctx, id, dto.UpdateCurrencyRequest{IsBaseCurrency: boolPtr(true)}, "u1")
			assert.NoError(t, err)
		}(id)
	}
	wg.Wait()

	list, _, err := svc.Currency.ListCurrencies(ctx, domain.CurrencyFilter{})
	require.NoError(t, err)
	bases := 0
	for _, c := range list {
		if c.IsBaseCurrency {
			bases++
			assert.True(t, c.Rate.Equal(domain.BaseCurrencyRate))
		}
	}
	assert.Equal(t, 1, bases)
	assert.True(t, list[0].IsBaseCurrency)

	history, err := svc.ExchangeRate.ListHistory(ctx, domain.HistoryFilter{})
	require.NoError(t, err)
	assert.Len(t, history, len(ids), "every rate pinned to 1 is recorded")
}

func TestCurrencyServiceOverStore_CreateBaseThenDelete(t *testing.T) {
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	svc := services.NewServiceContainer(&config.Config{}, repos, messaging.NoopPublisher{})

	usd, err := svc.Currency.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "usd", Name: "US Dollar", Symbol: "$", IsBaseCurrency: true}, "u1")
	require.NoError(t, err)
	eur, err := svc.Currency.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimalPtr("0.9"), IsBaseCurrency: true}, "u1")
	require.NoError(t, err)

	oldBase, err := svc.Currency.GetCurrencyByID(ctx, usd.ID)
	require.NoError(t, err)
	assert.False(t, oldBase.IsBaseCurrency)

	assert.ErrorIs(t, svc.Currency.DeleteCurrency(ctx, eur.ID, "u1"), apperrors.ErrPolicy)
	assert.NoError(t, svc.Currency.DeleteCurrency(ctx, usd.ID, "u1"))

	_, err = svc.Currency.CreateCurrency(ctx, dto.CreateCurrencyRequest{Code: "eur", Name: "Euro again", Symbol: "€"}, "u1")
	assert.ErrorIs(t, err, apperrors.ErrDuplicate)
}

func TestRoleServiceOverStore_DeleteWithUsers(t *testing.T) {
	utils.PasswordCost = bcrypt.MinCost
	ctx := context.Background()
	repos := memory.NewRepositoryProvider(memory.NewStore())
	svc := services.NewServiceContainer(&config.Config{}, repos, messaging.NoopPublisher{})

	role, err := svc.Role.CreateRole(ctx, dto.CreateRoleRequest{Name: "Support", Permissions: []string{domain.PermUsersRead}}, "u1")
	require.NoError(t, err)
	_, err = svc.User.CreateUser(ctx, dto.CreateUserRequest{Username: "sam", Name: "Sam", Password: "password1", RoleID: role.ID}, "u1")
	require.NoError(t, err)

	assert.ErrorIs(t, svc.Role.DeleteRole(ctx, role.ID, "u1"), apperrors.ErrPolicy)

	got, err := svc.Role.GetRoleByID(ctx, role.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.UserCount)
}

func TestCurrencyServiceOverStore_SearchMatchesCodeOrName(t *testing.T) {
	ctx := context.Background()
	svc := services.NewServiceContainer(&config.Config{}, memory.NewRepositoryProvider(memory.NewStore()), messaging.NoopPublisher{})

	for _, req := range []dto.CreateCurrencyRequest{
		{Code: "USD", Name: "US Dollar", Symbol: "$", IsBaseCurrency: true},
		{Code: "CAD", Name: "Canadian DOLLAR", Symbol: "$", Rate: decimalPtr("1.36")},
		{Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimalPtr("0.92")},
		{Code: "DOL", Name: "Test unit", Symbol: "D", Rate: decimalPtr("2")},
	} {
		_, err := svc.Currency.CreateCurrency(ctx, req, "u1")
		require.NoError(t, err)
	}

	list, total, err := svc.Currency.ListCurrencies(ctx, domain.CurrencyFilter{Search: "dol"})
	require.NoError(t, err)
	assert.Equal(t, 4, total)

	codes := make([]string, 0, len(list))
	for _, c := range list {
		codes = append(codes, c.Code)
	}
	assert.Equal(t, []string{"USD", "CAD", "DOL"}, codes)
}

func TestExchangeRateServiceOverStore_RangeQuery(t *testing.T) {
	ctx := context.Background()
	svc := services.NewServiceContainer(&config.Config{}, memory.NewRepositoryProvider(memory.NewStore()), messaging.NoopPublisher{})

	record := func(code string, at time.Time) {
		_, err := svc.ExchangeRate.RecordRate(ctx, dto.CreateExchangeRateHistoryRequest{
			CurrencyCode: code, Rate: decimalPtr("1.1"), Date: dto.NewRateDate(at),
		}, "u1")
		require.NoError(t, err)
	}
	record("USD", time.Date(2023, 12, 31, 23, 59, 0, 0, time.UTC))
	record("USD", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))
	record("USD", time.Date(2024, 1, 31, 18, 0, 0, 0, time.UTC))
	record("USD", time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC))
	record("EUR", time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC))

	filter, err := dto.ListExchangeRateHistoryParams{CurrencyCode: "usd", StartDate: "2024-01-01", EndDate: "2024-01-31"}.ToFilter()
	require.NoError(t, err)

	entries, err := svc.ExchangeRate.ListHistory(ctx, filter)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, 31, entries[0].Date.Day())
	assert.Equal(t, 1, entries[1].Date.Day())
	for _, e := range entries {
		assert.Equal(t, "USD", e.CurrencyCode)
		assert.Equal(t, domain.DefaultHistorySource, e.Source)
	}

	start := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 120; i++ {
		record("USD", start.Add(time.Duration(i)*time.Minute))
	}
	entries, err = svc.ExchangeRate.ListHistory(ctx, filter)
	require.NoError(t, err)
	require.Len(t, entries, domain.MaxHistoryResults)
	for i := 1; i < len(entries); i++ {
		assert.False(t, entries[i].Date.After(entries[i-1].Date))
	}
}
