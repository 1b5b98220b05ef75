package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	"github.com/SscSPs/adminpro/internal/models"
	"github.com/SscSPs/adminpro/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxExchangeRateHistoryRepository struct {
	BaseRepository
}

func newPgxExchangeRateHistoryRepository(pool *pgxpool.Pool) portsrepo.ExchangeRateHistoryRepositoryFacade {
	return &PgxExchangeRateHistoryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.ExchangeRateHistoryRepositoryFacade = (*PgxExchangeRateHistoryRepository)(nil)

// SaveHistory appends a history entry.
func (r *PgxExchangeRateHistoryRepository) SaveHistory(ctx context.Context, entry domain.ExchangeRateHistory) error {
	m := mapping.ToModelExchangeRateHistory(entry)
	query := `
		INSERT INTO exchange_rate_history (history_id, currency_code, rate_date, rate, source, created_at, created_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7);
	`
	_, err := r.Pool.Exec(ctx, query,
		m.HistoryID,
		m.CurrencyCode,
		m.RateDate,
		m.Rate,
		m.Source,
		m.CreatedAt,
		m.CreatedBy,
	)
	if err != nil {
		return mapWriteError(err, "exchange rate history "+m.HistoryID)
	}
	return nil
}

// ListHistory returns entries matching filter, newest first.
func (r *PgxExchangeRateHistoryRepository) ListHistory(ctx context.Context, filter domain.HistoryFilter) ([]domain.ExchangeRateHistory, error) {
	limit := filter.Limit
	if limit <= 0 || limit > domain.MaxHistoryResults {
		limit = domain.MaxHistoryResults
	}
	query := `
		SELECT history_id, currency_code, rate_date, rate, source, created_at, created_by
		FROM exchange_rate_history
		WHERE ($1 = '' OR currency_code = $1)
		  AND ($2::timestamptz IS NULL OR rate_date >= $2)
		  AND ($3::timestamptz IS NULL OR rate_date <= $3)
		ORDER BY rate_date DESC
		LIMIT $4;
	`
	rows, err := r.Pool.Query(ctx, query, filter.CurrencyCode, filter.StartDate, filter.EndDate, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query exchange rate history: %w", err)
	}
	defer rows.Close()

	entries, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.ExchangeRateHistory, error) {
		var h models.ExchangeRateHistory
		err := row.Scan(
			&h.HistoryID,
			&h.CurrencyCode,
			&h.RateDate,
			&h.Rate,
			&h.Source,
			&h.CreatedAt,
			&h.CreatedBy,
		)
		return h, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan exchange rate history: %w", err)
	}

	return mapping.ToDomainExchangeRateHistorySlice(entries), nil
}
