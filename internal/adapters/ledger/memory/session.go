package memory

import (
	"context"
	"fmt"
	"sync"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	"github.com/shopspring/decimal"
)

// session applies transfers immediately and keeps an undo journal so
// Rollback can revert them. Undo steps apply the inverse delta, so transfers
// made meanwhile by other sessions survive a rollback.
type session struct {
	ledger   *Ledger
	operator domain.Address

	mu     sync.Mutex
	undo   []func()
	closed bool
}

var _ ledgers.Session = (*session)(nil)

func (s *session) Fungible() ledgers.FungibleLedger         { return fungibleView{s} }
func (s *session) Items() ledgers.ItemLedger                { return itemView{s} }
func (s *session) SemiFungible() ledgers.SemiFungibleLedger { return semiView{s} }

func (s *session) Commit(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true
	s.undo = nil
	return nil
}

func (s *session) Rollback(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrSessionClosed
	}
	s.closed = true

	s.ledger.mu.Lock()
	for i := len(s.undo) - 1; i >= 0; i-- {
		s.undo[i]()
	}
	s.ledger.mu.Unlock()
	s.undo = nil
	return nil
}

// apply runs op under the ledger lock, records its undo step and then calls
// the transfer hook.
func (s *session) apply(ctx context.Context, kind ContractKind, asset domain.Address, op func(l *Ledger) (func(), error)) error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return ErrSessionClosed
	}
	s.ledger.mu.Lock()
	undo, err := op(s.ledger)
	hook := s.ledger.hook
	s.ledger.mu.Unlock()
	if err != nil {
		s.mu.Unlock()
		return err
	}
	s.undo = append(s.undo, undo)
	s.mu.Unlock()

	if hook != nil {
		return hook(ctx, kind, asset)
	}
	return nil
}

type fungibleView struct{ s *session }

func (v fungibleView) TransferFrom(ctx context.Context, asset, owner, to domain.Address, amount decimal.Decimal) error {
	operator := v.s.operator
	return v.s.apply(ctx, KindFungible, asset, func(l *Ledger) (func(), error) {
		if err := l.requireKind(asset, KindFungible); err != nil {
			return nil, err
		}
		balance := l.fungibleBalance(asset, owner)
		if balance.LessThan(amount) {
			return nil, ErrInsufficientBalance
		}
		allowanceKey := pair{owner, operator}
		allowance, hadAllowance := l.allowances[asset][allowanceKey]
		if owner != operator {
			if !hadAllowance || allowance.LessThan(amount) {
				return nil, ErrInsufficientAllowance
			}
			l.allowances[asset][allowanceKey] = allowance.Sub(amount)
		}
		l.fungible[asset][owner] = balance.Sub(amount)
		l.fungible[asset][to] = l.fungibleBalance(asset, to).Add(amount)

		return func() {
			l.fungible[asset][to] = l.fungibleBalance(asset, to).Sub(amount)
			l.fungible[asset][owner] = l.fungibleBalance(asset, owner).Add(amount)
			if owner != operator {
				l.allowances[asset][allowanceKey] = l.allowances[asset][allowanceKey].Add(amount)
			}
		}, nil
	})
}

func (v fungibleView) BalanceOf(_ context.Context, asset, owner domain.Address) (decimal.Decimal, error) {
	l := v.s.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(asset, KindFungible); err != nil {
		return decimal.Zero, err
	}
	return l.fungibleBalance(asset, owner), nil
}

type itemView struct{ s *session }

func (v itemView) OwnerOf(_ context.Context, collection domain.Address, token domain.TokenID) (domain.Address, error) {
	l := v.s.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(collection, KindItems); err != nil {
		return domain.ZeroAddress, err
	}
	owner, ok := l.owners[collection][token]
	if !ok {
		return domain.ZeroAddress, fmt.Errorf("%w: %d", ErrInvalidToken, token)
	}
	return owner, nil
}

func (v itemView) TransferFrom(ctx context.Context, collection, owner, to domain.Address, token domain.TokenID) error {
	operator := v.s.operator
	return v.s.apply(ctx, KindItems, collection, func(l *Ledger) (func(), error) {
		if err := l.requireKind(collection, KindItems); err != nil {
			return nil, err
		}
		current, ok := l.owners[collection][token]
		if !ok {
			return nil, fmt.Errorf("%w: %d", ErrInvalidToken, token)
		}
		if current != owner {
			return nil, ErrIncorrectOwner
		}
		approved, hadApproval := l.approved[collection][token]
		if operator != owner && !(hadApproval && approved == operator) && !l.operators[collection][pair{owner, operator}] {
			return nil, ErrItemNotApproved
		}
		l.owners[collection][token] = to
		delete(l.approved[collection], token)

		return func() {
			if l.owners[collection][token] != to {
				return
			}
			l.owners[collection][token] = owner
			if _, reapproved := l.approved[collection][token]; hadApproval && !reapproved {
				l.approved[collection][token] = approved
			}
		}, nil
	})
}

type semiView struct{ s *session }

func (v semiView) SafeTransferFrom(ctx context.Context, asset, owner, to domain.Address, subID domain.TokenID, amount decimal.Decimal) error {
	operator := v.s.operator
	return v.s.apply(ctx, KindSemiFungible, asset, func(l *Ledger) (func(), error) {
		if err := l.requireKind(asset, KindSemiFungible); err != nil {
			return nil, err
		}
		if operator != owner && !l.operators[asset][pair{owner, operator}] {
			return nil, ErrSemiNotApproved
		}
		fromKey, toKey := semiKey{owner, subID}, semiKey{to, subID}
		fromBalance := l.semiBalance(asset, fromKey)
		if fromBalance.LessThan(amount) {
			return nil, ErrInsufficientSemiBalance
		}
		l.semi[asset][fromKey] = fromBalance.Sub(amount)
		l.semi[asset][toKey] = l.semiBalance(asset, toKey).Add(amount)

		return func() {
			l.semi[asset][toKey] = l.semiBalance(asset, toKey).Sub(amount)
			l.semi[asset][fromKey] = l.semiBalance(asset, fromKey).Add(amount)
		}, nil
	})
}

func (v semiView) BalanceOf(_ context.Context, asset, owner domain.Address, subID domain.TokenID) (decimal.Decimal, error) {
	l := v.s.ledger
	l.mu.Lock()
	defer l.mu.Unlock()
	if err := l.requireKind(asset, KindSemiFungible); err != nil {
		return decimal.Zero, err
	}
	return l.semiBalance(asset, semiKey{owner, subID}), nil
}
