package services

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/shopspring/decimal"
)

// CurrencyReaderSvc defines read operations for the currency registry
type CurrencyReaderSvc interface {
	// ListCurrencies returns accepted currencies in registration order.
	ListCurrencies(ctx context.Context) ([]domain.Currency, error)
}

// CurrencyWriterSvc defines write operations for the currency registry
type CurrencyWriterSvc interface {
	AddCurrency(ctx context.Context, caller domain.Address, req dto.AddCurrencyRequest) (*domain.Currency, error)

	// RemoveCurrency fails with apperrors.ErrBalanceOutstanding while the
	// market still holds any of the currency.
	RemoveCurrency(ctx context.Context, caller, currency domain.Address) error
}

// CurrencySvcFacade combines all currency-related service interfaces
type CurrencySvcFacade interface {
	CurrencyReaderSvc
	CurrencyWriterSvc
}

// CollectionReaderSvc defines read operations for the item registry
type CollectionReaderSvc interface {
	GetCollection(ctx context.Context, collection domain.Address) (*domain.Collection, error)
	ListCollections(ctx context.Context) ([]domain.Collection, error)
}

// CollectionWriterSvc defines write operations for the item registry
type CollectionWriterSvc interface {
	AddCollection(ctx context.Context, caller domain.Address, req dto.AddCollectionRequest) (*domain.Collection, error)

	// AddCollectionWithPrices registers the collection and its default prices
	// atomically.
	AddCollectionWithPrices(ctx context.Context, caller domain.Address, req dto.AddCollectionRequest, currencies []domain.Address, amounts []decimal.Decimal) (*domain.Collection, error)

	RemoveCollection(ctx context.Context, caller, collection domain.Address) error
}

// CollectionSvcFacade combines all collection-related service interfaces
type CollectionSvcFacade interface {
	CollectionReaderSvc
	CollectionWriterSvc
}

// PriceReaderSvc resolves prices
type PriceReaderSvc interface {
	// ResolvePrice returns the override price, else the default price, else
	// domain.NoPrice().
	ResolvePrice(ctx context.Context, collection domain.Address, token domain.TokenID, currency domain.Address) (domain.Price, error)

	// GetAllPrices resolves token in every registered currency.
	GetAllPrices(ctx context.Context, collection domain.Address, token domain.TokenID) ([]domain.CurrencyPrice, error)
}

// PriceWriterSvc changes stored prices
type PriceWriterSvc interface {
	SetDefaultPrices(ctx context.Context, caller, collection domain.Address, currencies []domain.Address, amounts []decimal.Decimal) error
	SetOverridePrices(ctx context.Context, caller, collection, currency domain.Address, tokens []domain.TokenID, amounts []decimal.Decimal) error
	ClearOverridePrices(ctx context.Context, caller, collection, currency domain.Address, tokens []domain.TokenID) error
}

// PriceSvcFacade combines all price-related service interfaces
type PriceSvcFacade interface {
	PriceReaderSvc
	PriceWriterSvc
}

// ListingReaderSvc reads listing membership
type ListingReaderSvc interface {
	IsListed(ctx context.Context, collection domain.Address, token domain.TokenID) (bool, error)

	// ListListings returns a page of listed tokens and the token of the next page, if any.
	ListListings(ctx context.Context, collection domain.Address, limit int, nextToken *string) ([]domain.TokenID, *string, error)
}

// ListingWriterSvc changes listing membership
type ListingWriterSvc interface {
	AddToMarket(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error
	RemoveFromMarket(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error
}

// ListingSvcFacade combines all listing-related service interfaces
type ListingSvcFacade interface {
	ListingReaderSvc
	ListingWriterSvc
}

// PurchaseKeySvcFacade manages purchase keys
type PurchaseKeySvcFacade interface {
	SetPurchaseKey(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID, key domain.PurchaseKey) error
	ClearPurchaseKey(ctx context.Context, caller, collection domain.Address, tokens []domain.TokenID) error

	// GetPurchaseKey returns domain.NoPurchaseKey() for ungated tokens.
	GetPurchaseKey(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.PurchaseKey, error)
}

// SettlementSvcFacade settles purchases and pays out the market's holdings
type SettlementSvcFacade interface {
	BuyToken(ctx context.Context, buyer, collection domain.Address, tokens []domain.TokenID, currency domain.Address) (*domain.Purchase, error)
	Withdraw(ctx context.Context, caller domain.Address) (*domain.Withdrawal, error)
	GetBalances(ctx context.Context) (*domain.Balances, error)
}

// RoleAuthorizerSvc checks role membership before privileged operations
type RoleAuthorizerSvc interface {
	// AuthorizeCaller returns apperrors.ErrUnauthorized when account lacks role.
	AuthorizeCaller(ctx context.Context, account domain.Address, role domain.Role) error
}

// AccessControlSvcFacade manages role grants
type AccessControlSvcFacade interface {
	RoleAuthorizerSvc
	GrantRole(ctx context.Context, caller domain.Address, role domain.Role, account domain.Address) error
	RevokeRole(ctx context.Context, caller domain.Address, role domain.Role, account domain.Address) error
	HasRole(ctx context.Context, role domain.Role, account domain.Address) (bool, error)
	ListRoleMembers(ctx context.Context, role domain.Role) ([]domain.RoleGrant, error)

	// Bootstrap grants every role to admin without an authorization check.
	Bootstrap(ctx context.Context, admin domain.Address) error
}
