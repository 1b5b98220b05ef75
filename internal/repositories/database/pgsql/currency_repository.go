package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/adminpro/internal/apperrors"
	"github.com/SscSPs/adminpro/internal/core/domain"
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	"github.com/SscSPs/adminpro/internal/models"
	"github.com/SscSPs/adminpro/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const currencyColumns = `currency_id, code, name, symbol, rate, is_base_currency, is_active, last_updated,
	created_at, created_by, last_updated_at, last_updated_by`

type PgxCurrencyRepository struct {
	BaseRepository
}

// newPgxCurrencyRepository creates a new repository for currency data.
func newPgxCurrencyRepository(pool *pgxpool.Pool) portsrepo.CurrencyRepositoryFacade {
	return &PgxCurrencyRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.CurrencyRepositoryFacade = (*PgxCurrencyRepository)(nil)

func scanCurrency(row pgx.Row) (models.Currency, error) {
	var c models.Currency
	err := row.Scan(
		&c.CurrencyID,
		&c.Code,
		&c.Name,
		&c.Symbol,
		&c.Rate,
		&c.IsBaseCurrency,
		&c.IsActive,
		&c.LastUpdated,
		&c.CreatedAt,
		&c.CreatedBy,
		&c.LastUpdatedAt,
		&c.LastUpdatedBy,
	)
	return c, err
}

func (r *PgxCurrencyRepository) findOne(ctx context.Context, where string, arg any) (*domain.CurrencyRate, error) {
	query := `SELECT ` + currencyColumns + ` FROM currencies WHERE ` + where
	modelCurr, err := scanCurrency(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency: %w", err)
	}
	domainCurr := mapping.ToDomainCurrency(modelCurr)
	return &domainCurr, nil
}

// FindCurrencyByID retrieves a currency by its ID.
func (r *PgxCurrencyRepository) FindCurrencyByID(ctx context.Context, currencyID string) (*domain.CurrencyRate, error) {
	return r.findOne(ctx, "currency_id = $1", currencyID)
}

// FindCurrencyByCode retrieves a currency by its 3-letter code.
func (r *PgxCurrencyRepository) FindCurrencyByCode(ctx context.Context, currencyCode string) (*domain.CurrencyRate, error) {
	return r.findOne(ctx, "code = $1", domain.NormalizeCurrencyCode(currencyCode))
}

// ListCurrencies retrieves the currencies matching filter, base first then by code.
func (r *PgxCurrencyRepository) ListCurrencies(ctx context.Context, filter domain.CurrencyFilter) ([]domain.CurrencyRate, error) {
	query := `
		SELECT ` + currencyColumns + `
		FROM currencies
		WHERE ($1 = '' OR code ILIKE '%' || $1 || '%' OR name ILIKE '%' || $1 || '%')
		  AND ($2::boolean IS NULL OR is_active = $2)
		ORDER BY is_base_currency DESC, code;
	`
	rows, err := r.Pool.Query(ctx, query, escapeLike(filter.Search), filter.IsActive)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	defer rows.Close()

	modelCurrencies, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		return scanCurrency(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}

	return mapping.ToDomainCurrencySlice(modelCurrencies), nil
}

// CountCurrencies returns the number of stored currencies.
func (r *PgxCurrencyRepository) CountCurrencies(ctx context.Context) (int, error) {
	var n int
	if err := r.Pool.QueryRow(ctx, `SELECT COUNT(*) FROM currencies`).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count currencies: %w", err)
	}
	return n, nil
}

// SaveCurrency inserts a currency, demoting the previous base when the new one is base.
func (r *PgxCurrencyRepository) SaveCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	m := mapping.ToModelCurrency(currency)
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.demoteOtherBases(ctx, tx, m); err != nil {
			return err
		}
		query := `
			INSERT INTO currencies (` + currencyColumns + `)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12);
		`
		_, err := tx.Exec(ctx, query,
			m.CurrencyID,
			m.Code,
			m.Name,
			m.Symbol,
			m.Rate,
			m.IsBaseCurrency,
			m.IsActive,
			m.LastUpdated,
			m.CreatedAt,
			m.CreatedBy,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "currency "+m.Code)
		}
		return nil
	})
}

// UpdateCurrency replaces a stored currency, demoting the previous base when needed.
func (r *PgxCurrencyRepository) UpdateCurrency(ctx context.Context, currency domain.CurrencyRate) error {
	m := mapping.ToModelCurrency(currency)
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := r.demoteOtherBases(ctx, tx, m); err != nil {
			return err
		}
		query := `
			UPDATE currencies SET
				code = $2, name = $3, symbol = $4, rate = $5, is_base_currency = $6, is_active = $7,
				last_updated = $8, last_updated_at = $9, last_updated_by = $10
			WHERE currency_id = $1;
		`
		tag, err := tx.Exec(ctx, query,
			m.CurrencyID,
			m.Code,
			m.Name,
			m.Symbol,
			m.Rate,
			m.IsBaseCurrency,
			m.IsActive,
			m.LastUpdated,
			m.LastUpdatedAt,
			m.LastUpdatedBy,
		)
		if err != nil {
			return mapWriteError(err, "currency "+m.Code)
		}
		if tag.RowsAffected() == 0 {
			return apperrors.ErrNotFound
		}
		return nil
	})
}

// DeleteCurrency removes a currency unless it is the base currency.
func (r *PgxCurrencyRepository) DeleteCurrency(ctx context.Context, currencyID string) error {
	return r.withTx(ctx, func(tx pgx.Tx) error {
		if err := lockKey(ctx, tx, baseCurrencyLockKey); err != nil {
			return err
		}
		var isBase bool
		err := tx.QueryRow(ctx, `SELECT is_base_currency FROM currencies WHERE currency_id = $1 FOR UPDATE`, currencyID).Scan(&isBase)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				return apperrors.ErrNotFound
			}
			return fmt.Errorf("failed to load currency %s: %w", currencyID, err)
		}
		if isBase {
			return apperrors.NewPolicyError("cannot delete the base currency")
		}
		if _, err := tx.Exec(ctx, `DELETE FROM currencies WHERE currency_id = $1`, currencyID); err != nil {
			return fmt.Errorf("failed to delete currency %s: %w", currencyID, err)
		}
		return nil
	})
}

// demoteOtherBases serializes base changes and clears the flag on every other
// record when m is flagged as base.
func (r *PgxCurrencyRepository) demoteOtherBases(ctx context.Context, tx pgx.Tx, m models.Currency) error {
	if err := lockKey(ctx, tx, baseCurrencyLockKey); err != nil {
		return err
	}
	if !m.IsBaseCurrency {
		return nil
	}
	query := `
		UPDATE currencies
		SET is_base_currency = FALSE, last_updated = $2, last_updated_at = $2, last_updated_by = $3
		WHERE is_base_currency AND currency_id <> $1;
	`
	if _, err := tx.Exec(ctx, query, m.CurrencyID, m.LastUpdatedAt, m.LastUpdatedBy); err != nil {
		return fmt.Errorf("failed to clear previous base currency: %w", err)
	}
	return nil
}
