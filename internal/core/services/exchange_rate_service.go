package services

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/google/uuid"
)

type exchangeRateHistoryService struct {
	BaseService
	historyRepo portsrepo.ExchangeRateHistoryRepositoryFacade
}

// NewExchangeRateHistoryService creates a service over the rate history repository.
func NewExchangeRateHistoryService(historyRepo portsrepo.ExchangeRateHistoryRepositoryFacade, clock func() time.Time) portssvc.ExchangeRateHistorySvcFacade {
	return &exchangeRateHistoryService{
		BaseService: BaseService{Clock: clock},
		historyRepo: historyRepo,
	}
}

var _ portssvc.ExchangeRateHistorySvcFacade = (*exchangeRateHistoryService)(nil)

func (s *exchangeRateHistoryService) RecordRate(ctx context.Context, req dto.CreateExchangeRateHistoryRequest, creatorUserID string) (*domain.ExchangeRateHistory, error) {
	if req.Rate == nil {
		return nil, apperrors.NewValidationError("rate is required")
	}
	if req.Rate.IsNegative() {
		return nil, apperrors.NewValidationError("rate must not be negative")
	}
	code := domain.NormalizeCurrencyCode(req.CurrencyCode)
	if len(code) != 3 {
		return nil, apperrors.NewValidationError("currencyCode must be exactly 3 letters")
	}

	now := s.Now()
	date := now
	if req.Date != nil && !req.Date.IsZero() {
		date = req.Date.UTC()
	}
	source := strings.TrimSpace(req.Source)
	if source == "" {
		source = domain.DefaultHistorySource
	}

	entry := domain.ExchangeRateHistory{
		ID:           uuid.NewString(),
		CurrencyCode: code,
		Date:         date,
		Rate:         *req.Rate,
		Source:       source,
		CreatedAt:    now,
		CreatedBy:    creatorUserID,
	}
	if err := s.historyRepo.SaveHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save exchange rate history", slog.String("currency_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate recorded", slog.String("currency_code", code), slog.String("rate", entry.Rate.String()))
	return &entry, nil
}

func (s *exchangeRateHistoryService) ListHistory(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExchangeRateHistory, error) {
	filter.CurrencyCode = domain.NormalizeCurrencyCode(filter.CurrencyCode)
	if filter.Limit <= 0 || filter.Limit > domain.MaxHistoryResults {
		filter.Limit = domain.MaxHistoryResults
	}
	if filter.StartDate != nil && filter.EndDate != nil && filter.StartDate.After(*filter.EndDate) {
		return nil, apperrors.NewValidationError("startDate must not be after endDate")
	}

	entries, err := s.historyRepo.ListHistory(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list exchange rate history")
		return nil, err
	}
	if entries == nil {
		entries = []domain.ExchangeRateHistory{}
	}
	if len(entries) > filter.Limit {
		entries = entries[:filter.Limit]
	}
	return entries, nil
}
