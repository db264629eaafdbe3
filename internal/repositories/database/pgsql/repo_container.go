package pgsql

import (
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		MarketStore: newPgxMarketStore(dbPool),
		RoleRepo:    newPgxRoleRepository(dbPool),
	}
}
