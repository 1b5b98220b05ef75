package handlers_test

import (
	"net/http"
	"testing"
	"time"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type CurrencyHandlerTestSuite struct {
	apiSuite
}

func (s *CurrencyHandlerTestSuite) TestList_Unauthenticated() {
	w, env := s.do(http.MethodGet, "/api/v1/currencies", "", nil)

	s.assertStatus(w, http.StatusUnauthorized)
	s.Equal("error", env.Status)
	s.Equal("/login", env.RedirectTo)
	s.currency.AssertNotCalled(s.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestList_InvalidToken() {
	w, env := s.do(http.MethodGet, "/api/v1/currencies", "not-a-jwt", nil)

	s.assertStatus(w, http.StatusUnauthorized)
	s.Equal("/login", env.RedirectTo)
}

func (s *CurrencyHandlerTestSuite) TestList_Forbidden() {
	token, _ := s.actAs(domain.PermUsersRead)

	w, env := s.do(http.MethodGet, "/api/v1/currencies", token, nil)

	s.assertStatus(w, http.StatusForbidden)
	s.Equal("/dashboard", env.RedirectTo)
	s.currency.AssertNotCalled(s.T(), "ListCurrencies", mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestList_Success() {
	token, _ := s.actAs(domain.PermCurrenciesRead)
	active := true
	currencies := []domain.CurrencyRate{
		{ID: "1", Code: "USD", Rate: domain.BaseCurrencyRate, IsBaseCurrency: true, IsActive: true},
		{ID: "2", Code: "EUR", Rate: decimal.RequireFromString("0.92"), IsActive: true},
	}
	s.currency.On("ListCurrencies", mock.Anything, domain.CurrencyFilter{Search: "u", IsActive: &active}).
		Return(currencies, 7, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/currencies?search=u&isActive=true", token, nil)

	s.assertStatus(w, http.StatusOK)
	s.Equal("success", env.Status)
	s.Require().NotNil(env.Count)
	s.Require().NotNil(env.Total)
	s.Equal(2, *env.Count)
	s.Equal(7, *env.Total)

	var data []dto.CurrencyResponse
	s.decodeData(env, &data)
	s.Require().Len(data, 2)
	s.Equal("USD", data[0].Code)
	s.True(data[1].Rate.Equal(decimal.RequireFromString("0.92")))
	s.currency.AssertExpectations(s.T())
}

func (s *CurrencyHandlerTestSuite) TestCreate_MissingFields() {
	token, _ := s.actAs(domain.PermCurrenciesWrite)

	w, env := s.do(http.MethodPost, "/api/v1/currencies", token, map[string]any{"code": "EURO"})

	s.assertStatus(w, http.StatusBadRequest)
	s.Equal("error", env.Status)
	s.Contains(env.Errors, "code")
	s.Contains(env.Errors, "name")
	s.Contains(env.Errors, "symbol")
	s.currency.AssertNotCalled(s.T(), "CreateCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestCreate_Success() {
	token, user := s.actAs(domain.PermCurrenciesWrite)
	created := &domain.CurrencyRate{ID: "c1", Code: "EUR", Name: "Euro", Symbol: "€", Rate: decimal.RequireFromString("0.92"), IsActive: true}
	s.currency.On("CreateCurrency", mock.Anything, mock.MatchedBy(func(r dto.CreateCurrencyRequest) bool {
		return r.Code == "EUR" && r.Rate != nil && r.Rate.Equal(decimal.RequireFromString("0.92"))
	}), user.ID).Return(created, nil).Once()

	w, env := s.do(http.MethodPost, "/api/v1/currencies", token,
		`{"code":"EUR","name":"Euro","symbol":"€","rate":"0.92"}`)

	s.assertStatus(w, http.StatusCreated)
	var data dto.CurrencyResponse
	s.decodeData(env, &data)
	s.Equal("c1", data.ID)
	s.currency.AssertExpectations(s.T())
}

func (s *CurrencyHandlerTestSuite) TestCreate_Duplicate() {
	token, _ := s.actAs(domain.PermCurrenciesWrite)
	s.currency.On("CreateCurrency", mock.Anything, mock.Anything, mock.Anything).
		Return(nil, apperrors.ErrDuplicate).Once()

	w, env := s.do(http.MethodPost, "/api/v1/currencies", token, `{"code":"EUR","name":"Euro","symbol":"€"}`)

	s.assertStatus(w, http.StatusBadRequest)
	s.Contains(env.Message, "already exists")
}

func (s *CurrencyHandlerTestSuite) TestGet_NotFound() {
	token, _ := s.actAs(domain.PermCurrenciesRead)
	s.currency.On("GetCurrencyByID", mock.Anything, "missing").Return(nil, apperrors.ErrNotFound).Once()

	w, env := s.do(http.MethodGet, "/api/v1/currencies/missing", token, nil)

	s.assertStatus(w, http.StatusNotFound)
	s.Equal("error", env.Status)
}

func (s *CurrencyHandlerTestSuite) TestUpdate_Success() {
	token, user := s.actAs(domain.PermCurrenciesWrite)
	updated := &domain.CurrencyRate{ID: "c1", Code: "EUR", Rate: domain.BaseCurrencyRate, IsBaseCurrency: true, IsActive: true}
	s.currency.On("UpdateCurrency", mock.Anything, "c1", mock.MatchedBy(func(r dto.UpdateCurrencyRequest) bool {
		return r.IsBaseCurrency != nil && *r.IsBaseCurrency && r.Name == nil
	}), user.ID).Return(updated, nil).Once()

	w, env := s.do(http.MethodPut, "/api/v1/currencies/c1", token, `{"isBaseCurrency":true}`)

	s.assertStatus(w, http.StatusOK)
	var data dto.CurrencyResponse
	s.decodeData(env, &data)
	s.True(data.IsBaseCurrency)
}

func (s *CurrencyHandlerTestSuite) TestDelete_RequiresAllPermissions() {
	token, _ := s.actAs(domain.PermCurrenciesWrite)

	w, env := s.do(http.MethodDelete, "/api/v1/currencies/c1", token, nil)

	s.assertStatus(w, http.StatusForbidden)
	s.Equal("/dashboard", env.RedirectTo)
	s.currency.AssertNotCalled(s.T(), "DeleteCurrency", mock.Anything, mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestDelete_BaseCurrency() {
	token, _ := s.actAs(domain.PermCurrenciesWrite, domain.PermCurrenciesDelete)
	s.currency.On("DeleteCurrency", mock.Anything, "base", mock.Anything).
		Return(apperrors.NewPolicyError("cannot delete the base currency")).Once()

	w, env := s.do(http.MethodDelete, "/api/v1/currencies/base", token, nil)

	s.assertStatus(w, http.StatusBadRequest)
	s.Contains(env.Message, "base currency")
}

func (s *CurrencyHandlerTestSuite) TestDelete_Success() {
	token, _ := s.actAs(domain.PermCurrenciesWrite, domain.PermCurrenciesDelete)
	s.currency.On("DeleteCurrency", mock.Anything, "c2", mock.Anything).Return(nil).Once()

	w, env := s.do(http.MethodDelete, "/api/v1/currencies/c2", token, nil)

	s.assertStatus(w, http.StatusOK)
	s.Equal("Currency deleted successfully", env.Message)
}

func (s *CurrencyHandlerTestSuite) TestConvert() {
	token, _ := s.actAs(domain.PermCurrenciesRead)
	conv := &domain.Conversion{From: "EUR", To: "USD", Amount: decimal.NewFromInt(10), Rate: decimal.NewFromInt(2), Result: decimal.NewFromInt(20)}
	s.currency.On("ConvertAmount", mock.Anything, "EUR", "USD", mock.MatchedBy(func(d decimal.Decimal) bool {
		return d.Equal(decimal.NewFromInt(10))
	})).Return(conv, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/currencies/convert?from=EUR&to=USD&amount=10", token, nil)

	s.assertStatus(w, http.StatusOK)
	var data domain.Conversion
	s.decodeData(env, &data)
	s.True(data.Result.Equal(decimal.NewFromInt(20)))
}

func (s *CurrencyHandlerTestSuite) TestConvert_InvalidAmount() {
	token, _ := s.actAs(domain.PermCurrenciesRead)

	w, _ := s.do(http.MethodGet, "/api/v1/currencies/convert?from=EUR&to=USD&amount=ten", token, nil)

	s.assertStatus(w, http.StatusBadRequest)
	s.currency.AssertNotCalled(s.T(), "ConvertAmount", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestHistory_List() {
	token, _ := s.actAs(domain.PermCurrenciesRead)
	entries := []domain.ExchangeRateHistory{
		{ID: "h1", CurrencyCode: "EUR", Date: time.Date(2024, 1, 31, 9, 0, 0, 0, time.UTC), Rate: decimal.RequireFromString("0.9")},
	}
	s.history.On("ListHistory", mock.Anything, mock.MatchedBy(func(f domain.HistoryFilter) bool {
		return f.CurrencyCode == "EUR" && f.StartDate != nil && f.EndDate != nil &&
			f.EndDate.Equal(time.Date(2024, 1, 31, 23, 59, 59, 999999999, time.UTC))
	})).Return(entries, nil).Once()

	w, env := s.do(http.MethodGet, "/api/v1/currencies/history?currencyCode=eur&startDate=2024-01-01&endDate=2024-01-31", token, nil)

	s.assertStatus(w, http.StatusOK)
	s.Require().NotNil(env.Count)
	s.Equal(1, *env.Count)
	s.history.AssertExpectations(s.T())
}

func (s *CurrencyHandlerTestSuite) TestHistory_BadDate() {
	token, _ := s.actAs(domain.PermCurrenciesRead)

	w, env := s.do(http.MethodGet, "/api/v1/currencies/history?startDate=yesterday", token, nil)

	s.assertStatus(w, http.StatusBadRequest)
	s.Equal("error", env.Status)
	s.history.AssertNotCalled(s.T(), "ListHistory", mock.Anything, mock.Anything)
}

func (s *CurrencyHandlerTestSuite) TestHistory_Record() {
	token, user := s.actAs(domain.PermCurrenciesWrite)
	entry := &domain.ExchangeRateHistory{ID: "h1", CurrencyCode: "EUR", Rate: decimal.RequireFromString("0.9"), Source: domain.DefaultHistorySource}
	s.history.On("RecordRate", mock.Anything, mock.MatchedBy(func(r dto.CreateExchangeRateHistoryRequest) bool {
		return r.CurrencyCode == "EUR" && r.Rate != nil
	}), user.ID).Return(entry, nil).Once()

	w, _ := s.do(http.MethodPost, "/api/v1/currencies/history", token, `{"currencyCode":"EUR","rate":0.9}`)
	s.assertStatus(w, http.StatusCreated)

	w, env := s.do(http.MethodPost, "/api/v1/currencies/history", token, `{"currencyCode":"EUR"}`)
	s.assertStatus(w, http.StatusBadRequest)
	s.Contains(env.Errors, "rate")
}

func (s *CurrencyHandlerTestSuite) TestHistory_RecordDateOnly() {
	token, user := s.actAs(domain.PermCurrenciesWrite)
	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	s.history.On("RecordRate", mock.Anything, mock.MatchedBy(func(r dto.CreateExchangeRateHistoryRequest) bool {
		return r.Date != nil && r.Date.Equal(day)
	}), user.ID).Return(&domain.ExchangeRateHistory{ID: "h2", CurrencyCode: "EUR", Date: day, Rate: decimal.RequireFromString("0.9")}, nil).Once()

	w, _ := s.do(http.MethodPost, "/api/v1/currencies/history", token, `{"currencyCode":"EUR","rate":0.9,"date":"2024-01-15"}`)
	s.assertStatus(w, http.StatusCreated)
	s.history.AssertExpectations(s.T())

	w, env := s.do(http.MethodPost, "/api/v1/currencies/history", token, `{"currencyCode":"EUR","rate":0.9,"date":"15/01/2024"}`)
	s.assertStatus(w, http.StatusBadRequest)
	s.Equal("must be YYYY-MM-DD or RFC 3339", env.Errors["date"])
}

func TestCurrencyHandler(t *testing.T) {
	suite.Run(t, new(CurrencyHandlerTestSuite))
}
