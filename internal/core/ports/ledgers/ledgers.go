// Package ledgers defines the boundary to the external asset ledgers the
// market settles against: fungible currencies, unique items and
// semi-fungible purchase-key assets.
package ledgers

import (
	"context"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/shopspring/decimal"
)

// FungibleLedger moves currency on behalf of the session operator.
type FungibleLedger interface {
	// TransferFrom moves amount of asset from owner to to. The ledger checks
	// that owner approved the operator for at least amount.
	TransferFrom(ctx context.Context, asset, owner, to domain.Address, amount decimal.Decimal) error

	BalanceOf(ctx context.Context, asset, owner domain.Address) (decimal.Decimal, error)
}

// ItemLedger moves unique items.
type ItemLedger interface {
	OwnerOf(ctx context.Context, collection domain.Address, token domain.TokenID) (domain.Address, error)

	// TransferFrom requires owner to be the current holder and the operator to
	// be approved for the token or for all of owner's items.
	TransferFrom(ctx context.Context, collection, owner, to domain.Address, token domain.TokenID) error
}

// SemiFungibleLedger moves semi-fungible balances, which also carry
// erc1155 collection items.
type SemiFungibleLedger interface {
	SafeTransferFrom(ctx context.Context, asset, owner, to domain.Address, subID domain.TokenID, amount decimal.Decimal) error
	BalanceOf(ctx context.Context, asset, owner domain.Address, subID domain.TokenID) (decimal.Decimal, error)
}

// Session groups transfers made by one market operation. Nothing is final
// until Commit; Rollback reverts every transfer made through the session.
type Session interface {
	Fungible() FungibleLedger
	Items() ItemLedger
	SemiFungible() SemiFungibleLedger
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}

// Gateway opens ledger sessions acting as operator.
type Gateway interface {
	Begin(ctx context.Context, operator domain.Address) (Session, error)

	// IsContract reports whether addr hosts a ledger contract.
	IsContract(ctx context.Context, addr domain.Address) (bool, error)
}
