package pgsql

import (
	"context"
	"log/slog"

	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/agarrido2001/XaveMarket/internal/middleware"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxMarketStore keeps the market state in PostgreSQL. Reads outside a
// transaction see committed rows; RunInTx runs at SERIALIZABLE isolation.
type PgxMarketStore struct {
	BaseRepository
	*marketQueries
}

// newPgxMarketStore creates a new market store.
func newPgxMarketStore(pool *pgxpool.Pool) *PgxMarketStore {
	return &PgxMarketStore{
		BaseRepository: BaseRepository{Pool: pool},
		marketQueries:  &marketQueries{q: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.MarketStore = (*PgxMarketStore)(nil)

// RunInTx implements portsrepo.MarketStore.
func (r *PgxMarketStore) RunInTx(ctx context.Context, fn func(ctx context.Context, tx portsrepo.MarketTx) error) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() {
		if rbErr := r.Rollback(context.WithoutCancel(ctx), tx); rbErr != nil {
			middleware.GetLoggerFromCtx(ctx).Error("Failed to roll back market transaction", slog.String("error", rbErr.Error()))
		}
	}()

	if err := fn(ctx, &marketQueries{q: tx}); err != nil {
		return err
	}
	return r.Commit(ctx, tx)
}
