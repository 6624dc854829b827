package pgsql

import (
	"context"

	"github.com/SscSPs/rental_ledger/internal/core/domain"
	portsrepo "github.com/SscSPs/rental_ledger/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxChartRepository writes accounts and settings inside a single transaction.
type PgxChartRepository struct {
	BaseRepository
}

func newPgxChartRepository(pool *pgxpool.Pool) portsrepo.ChartWriter {
	return &PgxChartRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.ChartWriter = (*PgxChartRepository)(nil)

func (r *PgxChartRepository) WithinTx(ctx context.Context, fn func(accounts portsrepo.AccountWriter, settings portsrepo.SettingsWriter) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	if err := fn(txAccountWriter{tx: tx}, txSettingsWriter{tx: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}

type txAccountWriter struct {
	tx pgx.Tx
}

func (w txAccountWriter) SaveAccount(ctx context.Context, account *domain.Account) error {
	return saveAccount(ctx, w.tx, account)
}

type txSettingsWriter struct {
	tx pgx.Tx
}

func (w txSettingsWriter) SaveSetting(ctx context.Context, key domain.SettingKey, value *string) error {
	return saveSetting(ctx, w.tx, key, value)
}
