package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	"github.com/SscSPs/adminpro/internal/core/ports/events"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/adminpro/internal/core/ports/services"
	"github.com/SscSPs/adminpro/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type currencyService struct {
	BaseService
	currencyRepo portsrepo.CurrencyRepositoryFacade
	historyRepo  portsrepo.ExchangeRateHistoryWriter
	publisher    events.Publisher
}

// CurrencyServiceOption is a functional option for configuring the currency service
type CurrencyServiceOption func(*currencyService)

// WithRateHistory makes rate edits append to the exchange rate history.
func WithRateHistory(repo portsrepo.ExchangeRateHistoryWriter) CurrencyServiceOption {
	return func(s *currencyService) {
		s.historyRepo = repo
	}
}

// WithEventPublisher publishes currency events through p.
func WithEventPublisher(p events.Publisher) CurrencyServiceOption {
	return func(s *currencyService) {
		s.publisher = p
	}
}

// WithCurrencyClock overrides the service clock.
func WithCurrencyClock(clock func() time.Time) CurrencyServiceOption {
	return func(s *currencyService) {
		s.Clock = clock
	}
}

// NewCurrencyService creates a new currency service with the provided options
func NewCurrencyService(repo portsrepo.CurrencyRepositoryFacade, options ...CurrencyServiceOption) portssvc.CurrencySvcFacade {
	svc := &currencyService{currencyRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.CurrencySvcFacade = (*currencyService)(nil)

func (s *currencyService) CreateCurrency(ctx context.Context, req dto.CreateCurrencyRequest, creatorUserID string) (*domain.CurrencyRate, error) {
	now := s.Now()

	rate := domain.BaseCurrencyRate
	if req.Rate != nil {
		rate = *req.Rate
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	currency := domain.CurrencyRate{
		ID:             uuid.NewString(),
		Code:           req.Code,
		Name:           req.Name,
		Symbol:         req.Symbol,
		Rate:           rate,
		IsBaseCurrency: req.IsBaseCurrency,
		IsActive:       isActive,
		LastUpdated:    now,
		AuditFields:    domain.NewAuditFields(creatorUserID, now),
	}
	currency.Normalize()
	if err := validateCurrency(currency); err != nil {
		return nil, err
	}

	if err := s.currencyRepo.SaveCurrency(ctx, currency); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save currency", slog.String("currency_code", currency.Code))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Currency created", slog.String("currency_id", currency.ID), slog.String("currency_code", currency.Code))
	s.publish(ctx, events.CurrencyCreated, creatorUserID, currency)
	if currency.IsBaseCurrency {
		s.publish(ctx, events.CurrencyBaseChanged, creatorUserID, currency)
	}
	return &currency, nil
}

func (s *currencyService) GetCurrencyByID(ctx context.Context, currencyID string) (*domain.CurrencyRate, error) {
	currency, err := s.currencyRepo.FindCurrencyByID(ctx, currencyID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find currency", slog.String("currency_id", currencyID))
		}
		return nil, err
	}
	return currency, nil
}

func (s *currencyService) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRate, int, error) {
	filter.Search = strings.TrimSpace(filter.Search)

	currencies, err := s.currencyRepo.ListCurrencies(ctx, filter)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies")
		return nil, 0, err
	}
	total, err := s.currencyRepo.CountCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to count currencies")
		return nil, 0, err
	}
	if currencies == nil {
		currencies = []domain.CurrencyRate{}
	}
	return currencies, total, nil
}

func (s *currencyService) UpdateCurrency(ctx context.Context, currencyID string, req dto.UpdateCurrencyRequest, updaterUserID string) (*domain.CurrencyRate, error) {
	current, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return nil, err
	}
	previous := *current

	updated := *current
	req.ToPatch().ApplyTo(&updated)
	updated.Normalize()
	if err := validateCurrency(updated); err != nil {
		return nil, err
	}

	now := s.Now()
	updated.LastUpdated = now
	updated.Touch(updaterUserID, now)

	if err := s.currencyRepo.UpdateCurrency(ctx, updated); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update currency", slog.String("currency_id", currencyID))
		}
		return nil, err
	}

	if !previous.Rate.Equal(updated.Rate) {
		s.recordRateChange(ctx, updated, updaterUserID)
	}

	s.LogInfo(ctx, "Currency updated", slog.String("currency_id", updated.ID), slog.String("currency_code", updated.Code))
	s.publish(ctx, events.CurrencyUpdated, updaterUserID, updated)
	if updated.IsBaseCurrency && !previous.IsBaseCurrency {
		s.publish(ctx, events.CurrencyBaseChanged, updaterUserID, updated)
	}
	return &updated, nil
}

func (s *currencyService) DeleteCurrency(ctx context.Context, currencyID string, requestingUserID string) error {
	current, err := s.GetCurrencyByID(ctx, currencyID)
	if err != nil {
		return err
	}
	if current.IsBaseCurrency {
		return apperrors.NewPolicyError("cannot delete the base currency")
	}

	if err := s.currencyRepo.DeleteCurrency(ctx, currencyID); err != nil {
		if !errors.Is(err, apperrors.ErrPolicy) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete currency", slog.String("currency_id", currencyID))
		}
		return err
	}

	s.LogInfo(ctx, "Currency deleted", slog.String("currency_id", currencyID), slog.String("currency_code", current.Code))
	s.publish(ctx, events.CurrencyDeleted, requestingUserID, *current)
	return nil
}

func (s *currencyService) ConvertAmount(ctx context.Context, fromCode, toCode string, amount decimal.Decimal) (*domain.Conversion, error) {
	from, err := s.activeCurrency(ctx, fromCode)
	if err != nil {
		return nil, err
	}
	to, err := s.activeCurrency(ctx, toCode)
	if err != nil {
		return nil, err
	}
	for _, c := range []*domain.CurrencyRate{from, to} {
		if c.Rate.IsZero() {
			return nil, apperrors.NewValidationError(fmt.Sprintf("currency %s has a zero rate", c.Code))
		}
	}

	rate := to.Rate.Div(from.Rate)
	return &domain.Conversion{
		From:   from.Code,
		To:     to.Code,
		Amount: amount,
		Rate:   rate,
		Result: amount.Mul(to.Rate).Div(from.Rate),
	}, nil
}

func (s *currencyService) activeCurrency(ctx context.Context, code string) (*domain.CurrencyRate, error) {
	currency, err := s.currencyRepo.FindCurrencyByCode(ctx, code)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.NewNotFoundError(fmt.Sprintf("currency %s not found", domain.NormalizeCurrencyCode(code)))
		}
		return nil, err
	}
	if !currency.IsActive {
		return nil, apperrors.NewValidationError(fmt.Sprintf("currency %s is inactive", currency.Code))
	}
	return currency, nil
}

// recordRateChange appends a history row for an edited rate. Failures are
// logged and never fail the update.
func (s *currencyService) recordRateChange(ctx context.Context, currency domain.CurrencyRate, userID string) {
	if s.historyRepo == nil {
		return
	}
	entry := domain.ExchangeRateHistory{
		ID:           uuid.NewString(),
		CurrencyCode: currency.Code,
		Date:         currency.LastUpdated,
		Rate:         currency.Rate,
		Source:       domain.CurrencyUpdateHistorySource,
		CreatedAt:    currency.LastUpdated,
		CreatedBy:    userID,
	}
	if err := s.historyRepo.SaveHistory(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to record rate change", slog.String("currency_code", currency.Code))
	}
}

func (s *currencyService) publish(ctx context.Context, eventType, actorID string, currency domain.CurrencyRate) {
	if s.publisher == nil {
		return
	}
	event := events.Event{
		Type:       eventType,
		OccurredAt: s.Now(),
		ActorID:    actorID,
		Payload:    currency,
	}
	if err := s.publisher.Publish(ctx, event); err != nil {
		s.LogWarn(ctx, "Failed to publish currency event", slog.String("event", eventType), slog.String("error", err.Error()))
	}
}

func validateCurrency(c domain.CurrencyRate) error {
	if len(c.Code) != 3 {
		return apperrors.NewValidationError("code must be exactly 3 letters")
	}
	for _, r := range c.Code {
		if r < 'A' || r > 'Z' {
			return apperrors.NewValidationError("code must be exactly 3 letters")
		}
	}
	if c.Name == "" {
		return apperrors.NewValidationError("name is required")
	}
	if c.Symbol == "" {
		return apperrors.NewValidationError("symbol is required")
	}
	if c.Rate.IsNegative() {
		return apperrors.NewValidationError("rate must not be negative")
	}
	return nil
}
