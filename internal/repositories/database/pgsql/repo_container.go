package pgsql

import (
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo:  newPgxAccountRepository(dbPool),
		SettingsRepo: newPgxSettingsRepository(dbPool),
		JournalRepo:  newPgxJournalRepository(dbPool),
		ChartRepo:    newPgxChartRepository(dbPool),
	}
}
