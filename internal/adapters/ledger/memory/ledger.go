// Package memory is an in-process implementation of the asset ledgers:
// ERC-20 style currencies, ERC-721 style items and ERC-1155 style
// semi-fungible balances, with the usual approval rules.
package memory

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	"github.com/shopspring/decimal"
)

// Ledger rejections, worded like the contracts they stand in for.
var (
	ErrNotContract             = errors.New("address is not a ledger contract")
	ErrWrongContractKind       = errors.New("contract does not support this operation")
	ErrInsufficientBalance     = errors.New("ERC20: transfer amount exceeds balance")
	ErrInsufficientAllowance   = errors.New("ERC20: insufficient allowance")
	ErrInvalidToken            = errors.New("ERC721: invalid token ID")
	ErrIncorrectOwner          = errors.New("ERC721: transfer from incorrect owner")
	ErrItemNotApproved         = errors.New("ERC721: caller is not token owner or approved")
	ErrInsufficientSemiBalance = errors.New("ERC1155: insufficient balance for transfer")
	ErrSemiNotApproved         = errors.New("ERC1155: caller is not token owner or approved")
	ErrSessionClosed           = errors.New("ledger session already closed")
)

// ContractKind tells which ledger a contract address belongs to.
type ContractKind int

const (
	KindFungible ContractKind = iota + 1
	KindItems
	KindSemiFungible
)

// TransferHook runs after every transfer made through a session, outside
// the ledger lock. A returned error fails the transfer. It stands in for
// receiver callbacks such as onERC1155Received.
type TransferHook func(ctx context.Context, kind ContractKind, asset domain.Address) error

type pair struct {
	owner domain.Address
	other domain.Address
}

type semiKey struct {
	owner domain.Address
	subID domain.TokenID
}

// Ledger holds every asset contract in one process.
type Ledger struct {
	mu        sync.Mutex
	contracts map[domain.Address]ContractKind

	fungible   map[domain.Address]map[domain.Address]decimal.Decimal
	allowances map[domain.Address]map[pair]decimal.Decimal

	owners    map[domain.Address]map[domain.TokenID]domain.Address
	approved  map[domain.Address]map[domain.TokenID]domain.Address
	operators map[domain.Address]map[pair]bool

	semi map[domain.Address]map[semiKey]decimal.Decimal

	hook TransferHook
}

var _ ledgers.Gateway = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{
		contracts:  make(map[domain.Address]ContractKind),
		fungible:   make(map[domain.Address]map[domain.Address]decimal.Decimal),
		allowances: make(map[domain.Address]map[pair]decimal.Decimal),
		owners:     make(map[domain.Address]map[domain.TokenID]domain.Address),
		approved:   make(map[domain.Address]map[domain.TokenID]domain.Address),
		operators:  make(map[domain.Address]map[pair]bool),
		semi:       make(map[domain.Address]map[semiKey]decimal.Decimal),
	}
}

// SetTransferHook installs hook for every later transfer.
func (l *Ledger) SetTransferHook(hook TransferHook) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.hook = hook
}

// Deploy registers a contract address.
func (l *Ledger) Deploy(addr domain.Address, kind ContractKind) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.contracts[addr] = kind
	switch kind {
	case KindFungible:
		if l.fungible[addr] == nil {
			l.fungible[addr] = make(map[domain.Address]decimal.Decimal)
			l.allowances[addr] = make(map[pair]decimal.Decimal)
		}
	case KindItems:
		if l.owners[addr] == nil {
			l.owners[addr] = make(map[domain.TokenID]domain.Address)
			l.approved[addr] = make(map[domain.TokenID]domain.Address)
			l.operators[addr] = make(map[pair]bool)
		}
	case KindSemiFungible:
		if l.semi[addr] == nil {
			l.semi[addr] = make(map[semiKey]decimal.Decimal)
			l.operators[addr] = make(map[pair]bool)
		}
	}
}

// IsContract implements ledgers.Gateway.
func (l *Ledger) IsContract(_ context.Context, addr domain.Address) (bool, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	_, ok := l.contracts[addr]
	return ok, nil
}

func (l *Ledger) requireKind(addr domain.Address, kind ContractKind) error {
	got, ok := l.contracts[addr]
	if !ok {
		return fmt.Errorf("%w: %s", ErrNotContract, addr)
	}
	if got != kind {
		return fmt.Errorf("%w: %s", ErrWrongContractKind, addr)
	}
	return nil
}

// Mint credits amount of a fungible asset to owner.
func (l *Ledger) Mint(asset, owner domain.Address, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(asset, KindFungible); err != nil {
		return err
	}
	l.fungible[asset][owner] = l.fungibleBalance(asset, owner).Add(amount)
	return nil
}

// Approve sets spender's allowance over owner's asset.
func (l *Ledger) Approve(asset, owner, spender domain.Address, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(asset, KindFungible); err != nil {
		return err
	}
	l.allowances[asset][pair{owner, spender}] = amount
	return nil
}

// MintItem creates token in collection owned by owner.
func (l *Ledger) MintItem(collection, owner domain.Address, token domain.TokenID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(collection, KindItems); err != nil {
		return err
	}
	l.owners[collection][token] = owner
	return nil
}

// ApproveItem lets approved move one token.
func (l *Ledger) ApproveItem(collection, approved domain.Address, token domain.TokenID) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(collection, KindItems); err != nil {
		return err
	}
	l.approved[collection][token] = approved
	return nil
}

// MintSemiFungible credits amount of (asset, subID) to owner.
func (l *Ledger) MintSemiFungible(asset, owner domain.Address, subID domain.TokenID, amount decimal.Decimal) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(asset, KindSemiFungible); err != nil {
		return err
	}
	key := semiKey{owner, subID}
	l.semi[asset][key] = l.semiBalance(asset, key).Add(amount)
	return nil
}

// SetApprovalForAll lets operator move all of owner's items or balances in asset.
func (l *Ledger) SetApprovalForAll(asset, owner, operator domain.Address, approved bool) error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, ok := l.contracts[asset]; !ok {
		return fmt.Errorf("%w: %s", ErrNotContract, asset)
	}
	if l.operators[asset] == nil {
		return fmt.Errorf("%w: %s", ErrWrongContractKind, asset)
	}
	if approved {
		l.operators[asset][pair{owner, operator}] = true
	} else {
		delete(l.operators[asset], pair{owner, operator})
	}
	return nil
}

// BalanceOf returns owner's fungible balance.
func (l *Ledger) BalanceOf(asset, owner domain.Address) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.fungibleBalance(asset, owner)
}

// OwnerOf returns the holder of token, or the zero address.
func (l *Ledger) OwnerOf(collection domain.Address, token domain.TokenID) domain.Address {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.owners[collection][token]
}

// SemiFungibleBalanceOf returns owner's balance of (asset, subID).
func (l *Ledger) SemiFungibleBalanceOf(asset, owner domain.Address, subID domain.TokenID) decimal.Decimal {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.semiBalance(asset, semiKey{owner, subID})
}

func (l *Ledger) fungibleBalance(asset, owner domain.Address) decimal.Decimal {
	if b, ok := l.fungible[asset][owner]; ok {
		return b
	}
	return decimal.Zero
}

func (l *Ledger) semiBalance(asset domain.Address, key semiKey) decimal.Decimal {
	if b, ok := l.semi[asset][key]; ok {
		return b
	}
	return decimal.Zero
}

// Begin implements ledgers.Gateway.
func (l *Ledger) Begin(_ context.Context, operator domain.Address) (ledgers.Session, error) {
	return &session{ledger: l, operator: operator}, nil
}
