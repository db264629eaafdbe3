package pgsql

import (
	"context"
	"errors"
	"fmt"
	"math/big"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/agarrido2001/XaveMarket/internal/models"
	"github.com/agarrido2001/XaveMarket/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// marketQueries implements every market read and write against q.
type marketQueries struct {
	q querier
}

var _ portsrepo.MarketTx = (*marketQueries)(nil)

// tokenParam encodes a token id for a NUMERIC(20,0) column.
func tokenParam(t domain.TokenID) decimal.Decimal {
	return decimal.NewFromBigInt(new(big.Int).SetUint64(uint64(t)), 0)
}

func tokenFromNumeric(d decimal.Decimal) (domain.TokenID, error) {
	b := d.BigInt()
	if !d.IsInteger() || !b.IsUint64() {
		return 0, fmt.Errorf("stored token id %s out of range", d.String())
	}
	return domain.TokenID(b.Uint64()), nil
}

func parseStoredAddress(s string) (domain.Address, error) {
	addr, err := domain.ParseAddress(s)
	if err != nil {
		return domain.ZeroAddress, fmt.Errorf("stored address %q: %w", s, err)
	}
	return addr, nil
}

// --- Currencies ---

// FindCurrency retrieves a registered currency.
func (r *marketQueries) FindCurrency(ctx context.Context, currency domain.Address) (*domain.Currency, error) {
	query := `
		SELECT address, symbol, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies WHERE address = $1`

	var m models.Currency
	err := r.q.QueryRow(ctx, query, currency.String()).Scan(
		&m.Address, &m.Symbol, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find currency %s: %w", currency, err)
	}
	d, err := mapping.ToDomainCurrency(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCurrencies retrieves all registered currencies in registration order.
func (r *marketQueries) ListCurrencies(ctx context.Context) ([]domain.Currency, error) {
	query := `
		SELECT address, symbol, created_at, created_by, last_updated_at, last_updated_by
		FROM currencies ORDER BY position`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query currencies: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Currency, error) {
		var m models.Currency
		err := row.Scan(&m.Address, &m.Symbol, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan currencies: %w", err)
	}
	return mapping.ToDomainCurrencySlice(ms)
}

// SaveCurrency registers a currency.
func (r *marketQueries) SaveCurrency(ctx context.Context, currency domain.Currency) error {
	m := mapping.ToModelCurrency(currency)
	query := `
		INSERT INTO currencies (address, symbol, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (address) DO NOTHING`

	tag, err := r.q.Exec(ctx, query, m.Address, m.Symbol, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save currency %s: %w", m.Address, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

// DeleteCurrency unregisters a currency.
func (r *marketQueries) DeleteCurrency(ctx context.Context, currency domain.Address) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM currencies WHERE address = $1`, currency.String())
	if err != nil {
		return fmt.Errorf("failed to delete currency %s: %w", currency, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Collections ---

// FindCollection retrieves a registered collection.
func (r *marketQueries) FindCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error) {
	query := `
		SELECT address, standard, holder, created_at, created_by, last_updated_at, last_updated_by
		FROM collections WHERE address = $1`

	var m models.Collection
	err := r.q.QueryRow(ctx, query, collection.String()).Scan(
		&m.Address, &m.Standard, &m.Holder, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find collection %s: %w", collection, err)
	}
	d, err := mapping.ToDomainCollection(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

// ListCollections retrieves all registered collections in registration order.
func (r *marketQueries) ListCollections(ctx context.Context) ([]domain.Collection, error) {
	query := `
		SELECT address, standard, holder, created_at, created_by, last_updated_at, last_updated_by
		FROM collections ORDER BY position`

	rows, err := r.q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to query collections: %w", err)
	}
	ms, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (models.Collection, error) {
		var m models.Collection
		err := row.Scan(&m.Address, &m.Standard, &m.Holder, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
		return m, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan collections: %w", err)
	}
	return mapping.ToDomainCollectionSlice(ms)
}

// SaveCollection registers a collection.
func (r *marketQueries) SaveCollection(ctx context.Context, collection domain.Collection) error {
	m := mapping.ToModelCollection(collection)
	query := `
		INSERT INTO collections (address, standard, holder, created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (address) DO NOTHING`

	tag, err := r.q.Exec(ctx, query, m.Address, m.Standard, m.Holder, m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy)
	if err != nil {
		return fmt.Errorf("failed to save collection %s: %w", m.Address, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrDuplicate
	}
	return nil
}

// DeleteCollection unregisters a collection. Prices, listings and keys are kept.
func (r *marketQueries) DeleteCollection(ctx context.Context, collection domain.Address) error {
	tag, err := r.q.Exec(ctx, `DELETE FROM collections WHERE address = $1`, collection.String())
	if err != nil {
		return fmt.Errorf("failed to delete collection %s: %w", collection, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

// --- Prices ---

func (r *marketQueries) findPrice(ctx context.Context, query string, args ...any) (domain.Price, error) {
	var amount decimal.Decimal
	if err := r.q.QueryRow(ctx, query, args...).Scan(&amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NoPrice(), nil
		}
		return domain.NoPrice(), fmt.Errorf("failed to read price: %w", err)
	}
	return domain.PriceOf(amount), nil
}

// FindDefaultPrice reads the collection-wide price in currency.
func (r *marketQueries) FindDefaultPrice(ctx context.Context, collection, currency domain.Address) (domain.Price, error) {
	return r.findPrice(ctx,
		`SELECT amount FROM default_prices WHERE collection = $1 AND currency = $2`,
		collection.String(), currency.String())
}

// FindOverridePrice reads the per-token price in currency.
func (r *marketQueries) FindOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error) {
	return r.findPrice(ctx,
		`SELECT amount FROM override_prices WHERE collection = $1 AND token_id = $2 AND currency = $3`,
		collection.String(), tokenParam(token), currency.String())
}

// CountDefaultPrices counts the currencies a collection has a default price in.
func (r *marketQueries) CountDefaultPrices(ctx context.Context, collection domain.Address) (int, error) {
	var n int
	err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM default_prices WHERE collection = $1`, collection.String()).Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("failed to count default prices: %w", err)
	}
	return n, nil
}

// SetDefaultPrice upserts the collection-wide price in currency.
func (r *marketQueries) SetDefaultPrice(ctx context.Context, collection, currency domain.Address, amount decimal.Decimal) error {
	query := `
		INSERT INTO default_prices (collection, currency, amount) VALUES ($1, $2, $3)
		ON CONFLICT (collection, currency) DO UPDATE SET amount = EXCLUDED.amount`
	if _, err := r.q.Exec(ctx, query, collection.String(), currency.String(), amount); err != nil {
		return fmt.Errorf("failed to set default price: %w", err)
	}
	return nil
}

// SetOverridePrice upserts the per-token price in currency.
func (r *marketQueries) SetOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address, amount decimal.Decimal) error {
	query := `
		INSERT INTO override_prices (collection, token_id, currency, amount) VALUES ($1, $2, $3, $4)
		ON CONFLICT (collection, token_id, currency) DO UPDATE SET amount = EXCLUDED.amount`
	if _, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token), currency.String(), amount); err != nil {
		return fmt.Errorf("failed to set override price for token %s: %w", token, err)
	}
	return nil
}

// DeleteOverridePrice removes the per-token price in currency, if any.
func (r *marketQueries) DeleteOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) error {
	query := `DELETE FROM override_prices WHERE collection = $1 AND token_id = $2 AND currency = $3`
	if _, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token), currency.String()); err != nil {
		return fmt.Errorf("failed to delete override price for token %s: %w", token, err)
	}
	return nil
}

// --- Listings ---

// IsListed reports listing membership.
func (r *marketQueries) IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error) {
	var listed bool
	err := r.q.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM listings WHERE collection = $1 AND token_id = $2)`,
		collection.String(), tokenParam(token)).Scan(&listed)
	if err != nil {
		return false, fmt.Errorf("failed to check listing of token %s: %w", token, err)
	}
	return listed, nil
}

// ListListings pages through listed tokens in ascending token order.
func (r *marketQueries) ListListings(ctx context.Context, collection domain.Address, after *domain.TokenID, limit int) ([]domain.TokenID, error) {
	query := `SELECT token_id FROM listings WHERE collection = $1`
	args := []any{collection.String()}
	if after != nil {
		args = append(args, tokenParam(*after))
		query += fmt.Sprintf(" AND token_id > $%d", len(args))
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY token_id LIMIT $%d", len(args))

	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query listings: %w", err)
	}
	raw, err := pgx.CollectRows(rows, pgx.RowTo[decimal.Decimal])
	if err != nil {
		return nil, fmt.Errorf("failed to scan listings: %w", err)
	}
	tokens := make([]domain.TokenID, 0, len(raw))
	for _, d := range raw {
		t, err := tokenFromNumeric(d)
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return tokens, nil
}

// CountListings counts the tokens listed for a collection.
func (r *marketQueries) CountListings(ctx context.Context, collection domain.Address) (int, error) {
	var n int
	if err := r.q.QueryRow(ctx, `SELECT COUNT(*) FROM listings WHERE collection = $1`, collection.String()).Scan(&n); err != nil {
		return 0, fmt.Errorf("failed to count listings: %w", err)
	}
	return n, nil
}

// AddListing lists a token; listing an already listed token is a no-op.
func (r *marketQueries) AddListing(ctx context.Context, collection domain.Address, token domain.TokenID) error {
	query := `INSERT INTO listings (collection, token_id) VALUES ($1, $2) ON CONFLICT DO NOTHING`
	if _, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token)); err != nil {
		return fmt.Errorf("failed to list token %s: %w", token, err)
	}
	return nil
}

// RemoveListing delists a token; delisting an unlisted token is a no-op.
func (r *marketQueries) RemoveListing(ctx context.Context, collection domain.Address, token domain.TokenID) error {
	query := `DELETE FROM listings WHERE collection = $1 AND token_id = $2`
	if _, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token)); err != nil {
		return fmt.Errorf("failed to delist token %s: %w", token, err)
	}
	return nil
}

// --- Purchase keys ---

// FindPurchaseKey reads the key gating a token.
func (r *marketQueries) FindPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error) {
	query := `SELECT asset, sub_id, amount FROM purchase_keys WHERE collection = $1 AND token_id = $2`

	var (
		asset  string
		subID  decimal.Decimal
		amount decimal.Decimal
	)
	if err := r.q.QueryRow(ctx, query, collection.String(), tokenParam(token)).Scan(&asset, &subID, &amount); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.NoPurchaseKey(), nil
		}
		return domain.NoPurchaseKey(), fmt.Errorf("failed to read purchase key of token %s: %w", token, err)
	}

	addr, err := parseStoredAddress(asset)
	if err != nil {
		return domain.NoPurchaseKey(), err
	}
	sub, err := tokenFromNumeric(subID)
	if err != nil {
		return domain.NoPurchaseKey(), err
	}
	return domain.PurchaseKey{Asset: addr, SubID: sub, Amount: amount}, nil
}

// SavePurchaseKey upserts the key gating a token.
func (r *marketQueries) SavePurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID, key domain.PurchaseKey) error {
	query := `
		INSERT INTO purchase_keys (collection, token_id, asset, sub_id, amount) VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (collection, token_id) DO UPDATE SET
			asset = EXCLUDED.asset, sub_id = EXCLUDED.sub_id, amount = EXCLUDED.amount`
	_, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token), key.Asset.String(), tokenParam(key.SubID), key.Amount)
	if err != nil {
		return fmt.Errorf("failed to save purchase key of token %s: %w", token, err)
	}
	return nil
}

// DeletePurchaseKey clears the key gating a token, if any.
func (r *marketQueries) DeletePurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) error {
	query := `DELETE FROM purchase_keys WHERE collection = $1 AND token_id = $2`
	if _, err := r.q.Exec(ctx, query, collection.String(), tokenParam(token)); err != nil {
		return fmt.Errorf("failed to clear purchase key of token %s: %w", token, err)
	}
	return nil
}

// --- Balances ---

// GetBalance reads the market's holding of currency; unknown currencies hold zero.
func (r *marketQueries) GetBalance(ctx context.Context, currency domain.Address) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.q.QueryRow(ctx, `SELECT amount FROM balances WHERE currency = $1`, currency.String()).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read balance of %s: %w", currency, err)
	}
	return amount, nil
}

// GetSemiFungibleBalance reads the market's holding of one (asset, subId) pair.
func (r *marketQueries) GetSemiFungibleBalance(ctx context.Context, key domain.SemiFungibleKey) (decimal.Decimal, error) {
	var amount decimal.Decimal
	err := r.q.QueryRow(ctx,
		`SELECT amount FROM semi_fungible_balances WHERE asset = $1 AND sub_id = $2`,
		key.Asset.String(), tokenParam(key.SubID)).Scan(&amount)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return decimal.Zero, nil
		}
		return decimal.Zero, fmt.Errorf("failed to read semi-fungible balance: %w", err)
	}
	return amount, nil
}

// ListSemiFungibleBalances returns every credited pair in first-credit order.
func (r *marketQueries) ListSemiFungibleBalances(ctx context.Context) ([]domain.SemiFungibleBalance, error) {
	rows, err := r.q.Query(ctx, `SELECT asset, sub_id, amount FROM semi_fungible_balances ORDER BY position`)
	if err != nil {
		return nil, fmt.Errorf("failed to query semi-fungible balances: %w", err)
	}
	balances, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.SemiFungibleBalance, error) {
		var (
			asset  string
			subID  decimal.Decimal
			amount decimal.Decimal
		)
		if err := row.Scan(&asset, &subID, &amount); err != nil {
			return domain.SemiFungibleBalance{}, err
		}
		addr, err := parseStoredAddress(asset)
		if err != nil {
			return domain.SemiFungibleBalance{}, err
		}
		sub, err := tokenFromNumeric(subID)
		if err != nil {
			return domain.SemiFungibleBalance{}, err
		}
		return domain.SemiFungibleBalance{
			SemiFungibleKey: domain.SemiFungibleKey{Asset: addr, SubID: sub},
			Amount:          amount,
		}, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan semi-fungible balances: %w", err)
	}
	return balances, nil
}

// CreditBalance adds amount to the market's holding of currency.
func (r *marketQueries) CreditBalance(ctx context.Context, currency domain.Address, amount decimal.Decimal) error {
	query := `
		INSERT INTO balances (currency, amount) VALUES ($1, $2)
		ON CONFLICT (currency) DO UPDATE SET amount = balances.amount + EXCLUDED.amount`
	if _, err := r.q.Exec(ctx, query, currency.String(), amount); err != nil {
		return fmt.Errorf("failed to credit balance of %s: %w", currency, err)
	}
	return nil
}

// ZeroBalance empties the market's holding of currency.
func (r *marketQueries) ZeroBalance(ctx context.Context, currency domain.Address) error {
	if _, err := r.q.Exec(ctx, `UPDATE balances SET amount = 0 WHERE currency = $1`, currency.String()); err != nil {
		return fmt.Errorf("failed to zero balance of %s: %w", currency, err)
	}
	return nil
}

// CreditSemiFungible adds amount to one (asset, subId) bucket.
func (r *marketQueries) CreditSemiFungible(ctx context.Context, key domain.SemiFungibleKey, amount decimal.Decimal) error {
	query := `
		INSERT INTO semi_fungible_balances (asset, sub_id, amount) VALUES ($1, $2, $3)
		ON CONFLICT (asset, sub_id) DO UPDATE SET amount = semi_fungible_balances.amount + EXCLUDED.amount`
	if _, err := r.q.Exec(ctx, query, key.Asset.String(), tokenParam(key.SubID), amount); err != nil {
		return fmt.Errorf("failed to credit semi-fungible balance: %w", err)
	}
	return nil
}

// ZeroSemiFungible empties one (asset, subId) bucket; the bucket keeps its position.
func (r *marketQueries) ZeroSemiFungible(ctx context.Context, key domain.SemiFungibleKey) error {
	query := `UPDATE semi_fungible_balances SET amount = 0 WHERE asset = $1 AND sub_id = $2`
	if _, err := r.q.Exec(ctx, query, key.Asset.String(), tokenParam(key.SubID)); err != nil {
		return fmt.Errorf("failed to zero semi-fungible balance: %w", err)
	}
	return nil
}
