package pgsql

import (
	portsrepo "github.com/SscSPs/adminpro/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyRepo:     newPgxCurrencyRepository(dbPool),
		ExchangeRateRepo: newPgxExchangeRateHistoryRepository(dbPool),
		RoleRepo:         newPgxRoleRepository(dbPool),
		UserRepo:         newPgxUserRepository(dbPool),
	}
}
