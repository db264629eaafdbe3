package repositories

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CurrencyReader defines read operations for the currency registry.
type CurrencyReader interface {
	// FindCurrency returns apperrors.ErrNotFound when the currency is not registered.
	FindCurrency(ctx context.Context, currency domain.Address) (*domain.Currency, error)

	// ListCurrencies returns registered currencies in insertion order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriter defines write operations for the currency registry.
type CurrencyWriter interface {
	// SaveCurrency returns apperrors.ErrDuplicate when the currency exists.
	SaveCurrency(ctx context.Context, currency domain.Currency) error

	DeleteCurrency(ctx context.Context, currency domain.Address) error
}

// CollectionReader defines read operations for the item registry.
type CollectionReader interface {
	FindCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error)

	// ListCollections returns registered collections in insertion order.
	ListCollections(ctx context.Context) ([]domain.Collection, error)
}

// CollectionWriter defines write operations for the item registry.
type CollectionWriter interface {
	SaveCollection(ctx context.Context, collection domain.Collection) error
	DeleteCollection(ctx context.Context, collection domain.Address) error
}

// PriceReader reads stored prices. Absent entries come back as domain.NoPrice().
type PriceReader interface {
	FindDefaultPrice(ctx context.Context, collection, currency domain.Address) (domain.Price, error)
	FindOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error)
	CountDefaultPrices(ctx context.Context, collection domain.Address) (int, error)
}

// PriceWriter writes stored prices.
type PriceWriter interface {
	SetDefaultPrice(ctx context.Context, collection, currency domain.Address, amount decimal.Decimal) error
	SetOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address, amount decimal.Decimal) error
	DeleteOverridePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) error
}

// ListingReader reads listing membership.
type ListingReader interface {
	IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error)

	// ListListings returns up to limit listed tokens in ascending order,
	// strictly after the given token when after is non-nil.
	ListListings(ctx context.Context, collection domain.Address, after *domain.TokenID, limit int) ([]domain.TokenID, error)

	CountListings(ctx context.Context, collection domain.Address) (int, error)
}

// ListingWriter changes listing membership. Both operations are idempotent.
type ListingWriter interface {
	AddListing(ctx context.Context, collection domain.Address, token domain.TokenID) error
	RemoveListing(ctx context.Context, collection domain.Address, token domain.TokenID) error
}

// PurchaseKeyReader reads purchase keys. Absent keys come back as domain.NoPurchaseKey().
type PurchaseKeyReader interface {
	FindPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error)
}

// PurchaseKeyWriter writes purchase keys.
type PurchaseKeyWriter interface {
	SavePurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID, key domain.PurchaseKey) error
	DeletePurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) error
}

// BalanceReader reads the market's own holdings.
type BalanceReader interface {
	GetBalance(ctx context.Context, currency domain.Address) (decimal.Decimal, error)
	GetSemiFungibleBalance(ctx context.Context, key domain.SemiFungibleKey) (decimal.Decimal, error)

	// ListSemiFungibleBalances returns every ever-credited pair in first-credit
	// order, zero entries included.
	ListSemiFungibleBalances(ctx context.Context) ([]domain.SemiFungibleBalance, error)
}

// BalanceWriter changes the market's holdings.
type BalanceWriter interface {
	CreditBalance(ctx context.Context, currency domain.Address, amount decimal.Decimal) error
	ZeroBalance(ctx context.Context, currency domain.Address) error
	CreditSemiFungible(ctx context.Context, key domain.SemiFungibleKey, amount decimal.Decimal) error
	ZeroSemiFungible(ctx context.Context, key domain.SemiFungibleKey) error
}

// MarketReader combines every read of the market state.
type MarketReader interface {
	CurrencyReader
	CollectionReader
	PriceReader
	ListingReader
	PurchaseKeyReader
	BalanceReader
}

// MarketWriter combines every write of the market state.
type MarketWriter interface {
	CurrencyWriter
	CollectionWriter
	PriceWriter
	ListingWriter
	PurchaseKeyWriter
	BalanceWriter
}

// MarketTx is a unit of work over the market state. Writes become visible
// to other readers only when the enclosing RunInTx returns nil.
type MarketTx interface {
	MarketReader
	MarketWriter
}

// MarketStore is the persistent market state. Reads made directly on the
// store observe committed state only.
type MarketStore interface {
	MarketReader

	// RunInTx runs fn in a transaction, committing when fn returns nil and
	// discarding every write otherwise.
	RunInTx(ctx context.Context, fn func(ctx context.Context, tx MarketTx) error) error
}
