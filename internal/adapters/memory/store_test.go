package memory

import (
	"context"
	"errors"
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	currency   = domain.MustParseAddress("0x00000000000000000000000000000000000000a1")
	collection = domain.MustParseAddress("0x00000000000000000000000000000000000000c1")
	asset      = domain.MustParseAddress("0x00000000000000000000000000000000000000d1")
)

func TestStore_RollbackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	boom := errors.New("boom")

	err := store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		require.NoError(t, tx.SaveCurrency(ctx, domain.Currency{Address: currency}))
		require.NoError(t, tx.AddListing(ctx, collection, 1))
		return boom
	})
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, uint64(0), store.Version())

	_, err = store.FindCurrency(ctx, currency)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	listed, err := store.IsListed(ctx, collection, 1)
	require.NoError(t, err)
	assert.False(t, listed)
}

func TestStore_CommitAndConflict(t *testing.T) {
	ctx := context.Background()
	store := NewStore()

	err := store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		return tx.CreditBalance(ctx, currency, decimal.NewFromInt(5))
	})
	require.NoError(t, err)
	assert.Equal(t, uint64(1), store.Version())

	// A commit that lands while outer is open makes outer fail.
	err = store.RunInTx(ctx, func(ctx context.Context, outer portsrepo.MarketTx) error {
		if err := store.RunInTx(ctx, func(ctx context.Context, inner portsrepo.MarketTx) error {
			return inner.CreditBalance(ctx, currency, decimal.NewFromInt(1))
		}); err != nil {
			return err
		}
		return outer.CreditBalance(ctx, currency, decimal.NewFromInt(100))
	})
	assert.ErrorIs(t, err, ErrConcurrentCommit)
	assert.Equal(t, uint64(2), store.Version())

	balance, err := store.GetBalance(ctx, currency)
	require.NoError(t, err)
	assert.True(t, balance.Equal(decimal.NewFromInt(6)), balance.String())
}

func TestStore_RegistriesAndPrices(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	second := domain.MustParseAddress("0x00000000000000000000000000000000000000a2")

	err := store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		require.NoError(t, tx.SaveCurrency(ctx, domain.Currency{Address: second}))
		require.NoError(t, tx.SaveCurrency(ctx, domain.Currency{Address: currency}))
		assert.ErrorIs(t, tx.SaveCurrency(ctx, domain.Currency{Address: currency}), apperrors.ErrDuplicate)
		require.NoError(t, tx.SaveCollection(ctx, domain.Collection{Address: collection, Standard: domain.StandardERC721}))
		assert.ErrorIs(t, tx.SaveCollection(ctx, domain.Collection{Address: collection}), apperrors.ErrDuplicate)
		require.NoError(t, tx.SetDefaultPrice(ctx, collection, currency, decimal.NewFromInt(100)))
		require.NoError(t, tx.SetOverridePrice(ctx, collection, 3, currency, decimal.NewFromInt(30)))
		return nil
	})
	require.NoError(t, err)

	currencies, err := store.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 2)
	assert.Equal(t, second, currencies[0].Address)

	n, err := store.CountDefaultPrices(ctx, collection)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	price, err := store.FindOverridePrice(ctx, collection, 3, currency)
	require.NoError(t, err)
	assert.True(t, price.IsSet())
	price, err = store.FindOverridePrice(ctx, collection, 4, currency)
	require.NoError(t, err)
	assert.False(t, price.IsSet())

	err = store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		require.NoError(t, tx.DeleteCurrency(ctx, second))
		return tx.DeleteCollection(ctx, collection)
	})
	require.NoError(t, err)
	currencies, err = store.ListCurrencies(ctx)
	require.NoError(t, err)
	require.Len(t, currencies, 1)
	assert.Equal(t, currency, currencies[0].Address)
	_, err = store.FindCollection(ctx, collection)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestStore_ListingsAndSemiFungibleOrder(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	first := domain.SemiFungibleKey{Asset: asset, SubID: 9}
	second := domain.SemiFungibleKey{Asset: asset, SubID: 2}

	err := store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		for _, id := range []domain.TokenID{4, 1, 3, 2} {
			require.NoError(t, tx.AddListing(ctx, collection, id))
		}
		require.NoError(t, tx.CreditSemiFungible(ctx, first, decimal.NewFromInt(1)))
		require.NoError(t, tx.CreditSemiFungible(ctx, second, decimal.NewFromInt(2)))
		require.NoError(t, tx.CreditSemiFungible(ctx, first, decimal.NewFromInt(1)))
		require.NoError(t, tx.ZeroSemiFungible(ctx, second))
		return nil
	})
	require.NoError(t, err)

	after := domain.TokenID(1)
	page, err := store.ListListings(ctx, collection, &after, 2)
	require.NoError(t, err)
	assert.Equal(t, []domain.TokenID{2, 3}, page)
	n, err := store.CountListings(ctx, collection)
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	held, err := store.ListSemiFungibleBalances(ctx)
	require.NoError(t, err)
	require.Len(t, held, 2)
	assert.Equal(t, first, held[0].SemiFungibleKey)
	assert.True(t, held[0].Amount.Equal(decimal.NewFromInt(2)))
	assert.True(t, held[1].Amount.IsZero())
}

func TestRoleRepository(t *testing.T) {
	ctx := context.Background()
	repo := NewRoleRepository()
	account := domain.MustParseAddress("0x0000000000000000000000000000000000000001")

	require.NoError(t, repo.GrantRole(ctx, domain.RoleGrant{Role: domain.RoleWithdraw, Account: account}))
	require.NoError(t, repo.GrantRole(ctx, domain.RoleGrant{Role: domain.RoleWithdraw, Account: account}))
	ok, err := repo.HasRole(ctx, domain.RoleWithdraw, account)
	require.NoError(t, err)
	assert.True(t, ok)

	members, err := repo.ListRoleMembers(ctx, domain.RoleWithdraw)
	require.NoError(t, err)
	assert.Len(t, members, 1)

	require.NoError(t, repo.RevokeRole(ctx, domain.RoleWithdraw, account))
	require.NoError(t, repo.RevokeRole(ctx, domain.RoleWithdraw, account))
	ok, err = repo.HasRole(ctx, domain.RoleWithdraw, account)
	require.NoError(t, err)
	assert.False(t, ok)
}
