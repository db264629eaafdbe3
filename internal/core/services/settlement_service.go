package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/events"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

// SettlementObserver receives settlement outcomes, typically for metrics.
type SettlementObserver interface {
	PurchaseSettled(currency domain.Address, tokens int, total decimal.Decimal)
	WithdrawalSettled(entries int)
	SettlementFailed(op string, kind apperrors.Kind)
}

// settlementService settles purchases across the three ledgers and pays out
// the market's holdings.
type settlementService struct {
	BaseService
	notifier
	store      portsrepo.MarketStore
	gateway    ledgers.Gateway
	serializer *Serializer
	market     domain.Address
	observer   SettlementObserver
}

// SettlementOption is a functional option for configuring the settlement service
type SettlementOption func(*settlementService)

// WithSettlementObserver reports settlement outcomes to observer.
func WithSettlementObserver(observer SettlementObserver) SettlementOption {
	return func(s *settlementService) {
		s.observer = observer
	}
}

// WithEventSink publishes purchase notifications to sink.
func WithEventSink(sink events.Sink) SettlementOption {
	return func(s *settlementService) {
		s.sink = sink
	}
}

// NewSettlementService creates the settlement engine. market is the account
// that receives payments and acts as operator on the ledgers.
func NewSettlementService(store portsrepo.MarketStore, gateway ledgers.Gateway, serializer *Serializer, authorizer portssvc.RoleAuthorizerSvc, market domain.Address, options ...SettlementOption) portssvc.SettlementSvcFacade {
	svc := &settlementService{
		BaseService: BaseService{Authorizer: authorizer},
		store:       inFlightView(store),
		gateway:     gateway,
		serializer:  serializer,
		market:      market,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SettlementSvcFacade = (*settlementService)(nil)

// keyCharge is the accumulated purchase-key payment for one bucket.
type keyCharge struct {
	key     domain.SemiFungibleKey
	amount  decimal.Decimal
	holding decimal.Decimal
}

func (s *settlementService) BuyToken(ctx context.Context, buyer, collection domain.Address, tokens []domain.TokenID, currency domain.Address) (*domain.Purchase, error) {
	var purchase *domain.Purchase
	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		if err := requireTokens(tokens); err != nil {
			return err
		}
		return s.settle(ctx, func(ctx context.Context, tx portsrepo.MarketTx, session ledgers.Session) error {
			p, err := s.buy(ctx, tx, session, buyer, collection, tokens, currency)
			purchase = p
			return err
		})
	})
	if err != nil {
		s.failed(ctx, "buy", err,
			slog.String("buyer", buyer.String()),
			slog.String("collection", collection.String()),
			slog.String("currency", currency.String()),
			slog.Int("tokens", len(tokens)))
		return nil, err
	}

	s.LogInfo(ctx, "Purchase settled",
		slog.String("buyer", buyer.String()),
		slog.String("collection", collection.String()),
		slog.String("currency", currency.String()),
		slog.String("total", purchase.Total.String()),
		slog.Int("tokens", len(purchase.Tokens)))
	if s.observer != nil {
		s.observer.PurchaseSettled(currency, len(purchase.Tokens), purchase.Total)
	}
	s.purchased(ctx, domain.Purchased{
		Buyer:      purchase.Buyer,
		Collection: purchase.Collection,
		Tokens:     purchase.Tokens,
		Currency:   purchase.Currency,
		Total:      purchase.Total,
	})
	return purchase, nil
}

// buy validates the batch, stages every internal effect and then performs
// the ledger transfers.
func (s *settlementService) buy(ctx context.Context, tx portsrepo.MarketTx, session ledgers.Session, buyer, collection domain.Address, tokens []domain.TokenID, currency domain.Address) (*domain.Purchase, error) {
	c, err := requireCollection(ctx, tx, collection)
	if err != nil {
		return nil, err
	}

	total := decimal.Zero
	seen := make(map[domain.TokenID]struct{}, len(tokens))
	var charges []*keyCharge
	chargeByKey := make(map[domain.SemiFungibleKey]*keyCharge)

	for _, token := range tokens {
		listed, err := tx.IsListed(ctx, collection, token)
		if err != nil {
			return nil, err
		}
		if _, dup := seen[token]; dup || !listed {
			return nil, apperrors.NewTokenError(apperrors.ErrTokenNotListed, uint64(token))
		}
		seen[token] = struct{}{}

		price, err := resolvePrice(ctx, tx, collection, token, currency)
		if err != nil {
			return nil, err
		}
		amount, ok := price.Get()
		if !ok {
			return nil, apperrors.NewTokenError(apperrors.ErrNoPriceForCurrency, uint64(token))
		}
		total = total.Add(amount)

		key, err := tx.FindPurchaseKey(ctx, collection, token)
		if err != nil {
			return nil, err
		}
		if !key.IsSet() {
			continue
		}
		charge, ok := chargeByKey[key.Key()]
		if !ok {
			holding, err := session.SemiFungible().BalanceOf(ctx, key.Asset, buyer, key.SubID)
			if err != nil {
				return nil, apperrors.ExternalError("purchase key balance", err)
			}
			charge = &keyCharge{key: key.Key(), amount: decimal.Zero, holding: holding}
			chargeByKey[key.Key()] = charge
			charges = append(charges, charge)
		}
		charge.amount = charge.amount.Add(key.Amount)
		if charge.holding.LessThan(charge.amount) {
			return nil, apperrors.NewTokenError(apperrors.ErrPurchaseKeyRequired, uint64(token))
		}
	}

	// Effects.
	for _, token := range tokens {
		if err := tx.RemoveListing(ctx, collection, token); err != nil {
			return nil, fmt.Errorf("failed to delist sold token %d: %w", token, err)
		}
	}
	if err := tx.CreditBalance(ctx, currency, total); err != nil {
		return nil, fmt.Errorf("failed to credit balance: %w", err)
	}
	keysPaid := make([]domain.SemiFungibleBalance, 0, len(charges))
	for _, charge := range charges {
		if err := tx.CreditSemiFungible(ctx, charge.key, charge.amount); err != nil {
			return nil, fmt.Errorf("failed to credit purchase key balance: %w", err)
		}
		keysPaid = append(keysPaid, domain.SemiFungibleBalance{SemiFungibleKey: charge.key, Amount: charge.amount})
	}

	// Interactions.
	for _, charge := range charges {
		err := session.SemiFungible().SafeTransferFrom(ctx, charge.key.Asset, buyer, s.market, charge.key.SubID, charge.amount)
		if err != nil {
			return nil, apperrors.ExternalError("purchase key transfer", err)
		}
	}
	for _, token := range tokens {
		if err := s.deliver(ctx, session, c, buyer, token); err != nil {
			return nil, err
		}
	}
	if err := session.Fungible().TransferFrom(ctx, currency, buyer, s.market, total); err != nil {
		return nil, apperrors.ExternalError("payment transfer", err)
	}

	return &domain.Purchase{
		Buyer:       buyer,
		Collection:  collection,
		Tokens:      append([]domain.TokenID(nil), tokens...),
		Currency:    currency,
		Total:       total,
		KeysPaid:    keysPaid,
		PurchasedAt: time.Now().UTC(),
	}, nil
}

// deliver moves one token from its holder to the buyer.
func (s *settlementService) deliver(ctx context.Context, session ledgers.Session, c *domain.Collection, buyer domain.Address, token domain.TokenID) error {
	switch c.Standard {
	case domain.StandardERC1155:
		err := session.SemiFungible().SafeTransferFrom(ctx, c.Address, c.Holder, buyer, token, decimal.NewFromInt(1))
		if err != nil {
			return apperrors.ExternalError(fmt.Sprintf("item transfer of token %d", token), err)
		}
	default:
		owner, err := session.Items().OwnerOf(ctx, c.Address, token)
		if err != nil {
			return apperrors.ExternalError(fmt.Sprintf("owner lookup of token %d", token), err)
		}
		if err := session.Items().TransferFrom(ctx, c.Address, owner, buyer, token); err != nil {
			return apperrors.ExternalError(fmt.Sprintf("item transfer of token %d", token), err)
		}
	}
	return nil
}

func (s *settlementService) Withdraw(ctx context.Context, caller domain.Address) (*domain.Withdrawal, error) {
	if err := s.AuthorizeCaller(ctx, caller, domain.RoleWithdraw); err != nil {
		return nil, err
	}

	var withdrawal *domain.Withdrawal
	err := s.serializer.Do(ctx, func(ctx context.Context) error {
		return s.settle(ctx, func(ctx context.Context, tx portsrepo.MarketTx, session ledgers.Session) error {
			w, err := s.withdraw(ctx, tx, session, caller)
			withdrawal = w
			return err
		})
	})
	if err != nil {
		s.failed(ctx, "withdraw", err, slog.String("caller", caller.String()))
		return nil, err
	}

	entries := len(withdrawal.Currencies) + len(withdrawal.SemiFungible)
	s.LogInfo(ctx, "Balances withdrawn", slog.String("recipient", caller.String()), slog.Int("entries", entries))
	if s.observer != nil {
		s.observer.WithdrawalSettled(entries)
	}
	return withdrawal, nil
}

func (s *settlementService) withdraw(ctx context.Context, tx portsrepo.MarketTx, session ledgers.Session, recipient domain.Address) (*domain.Withdrawal, error) {
	currencies, err := tx.ListCurrencies(ctx)
	if err != nil {
		return nil, err
	}
	var fungible []domain.CurrencyBalance
	for _, c := range currencies {
		balance, err := tx.GetBalance(ctx, c.Address)
		if err != nil {
			return nil, err
		}
		if balance.IsPositive() {
			fungible = append(fungible, domain.CurrencyBalance{Currency: c.Address, Amount: balance})
		}
	}
	held, err := tx.ListSemiFungibleBalances(ctx)
	if err != nil {
		return nil, err
	}
	var semiFungible []domain.SemiFungibleBalance
	for _, b := range held {
		if b.Amount.IsPositive() {
			semiFungible = append(semiFungible, b)
		}
	}
	if len(fungible) == 0 && len(semiFungible) == 0 {
		return nil, apperrors.ErrNoBalanceAvailable
	}

	for _, b := range fungible {
		if err := tx.ZeroBalance(ctx, b.Currency); err != nil {
			return nil, err
		}
	}
	for _, b := range semiFungible {
		if err := tx.ZeroSemiFungible(ctx, b.SemiFungibleKey); err != nil {
			return nil, err
		}
	}

	for _, b := range fungible {
		if err := session.Fungible().TransferFrom(ctx, b.Currency, s.market, recipient, b.Amount); err != nil {
			return nil, apperrors.ExternalError("currency payout", err)
		}
	}
	for _, b := range semiFungible {
		if err := session.SemiFungible().SafeTransferFrom(ctx, b.Asset, s.market, recipient, b.SubID, b.Amount); err != nil {
			return nil, apperrors.ExternalError("purchase key payout", err)
		}
	}

	return &domain.Withdrawal{
		Recipient:    recipient,
		Currencies:   fungible,
		SemiFungible: semiFungible,
		WithdrawnAt:  time.Now().UTC(),
	}, nil
}

func (s *settlementService) GetBalances(ctx context.Context) (*domain.Balances, error) {
	currencies, err := s.store.ListCurrencies(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list currencies for balances")
		return nil, fmt.Errorf("failed to list currencies: %w", err)
	}
	balances := &domain.Balances{
		Currencies:   make([]domain.CurrencyBalance, 0, len(currencies)),
		SemiFungible: []domain.SemiFungibleBalance{},
	}
	for _, c := range currencies {
		amount, err := s.store.GetBalance(ctx, c.Address)
		if err != nil {
			s.LogError(ctx, err, "Failed to read balance", slog.String("currency", c.Address.String()))
			return nil, fmt.Errorf("failed to read balance: %w", err)
		}
		balances.Currencies = append(balances.Currencies, domain.CurrencyBalance{Currency: c.Address, Amount: amount})
	}
	held, err := s.store.ListSemiFungibleBalances(ctx)
	if err != nil {
		s.LogError(ctx, err, "Failed to list purchase key balances")
		return nil, fmt.Errorf("failed to list purchase key balances: %w", err)
	}
	balances.SemiFungible = append(balances.SemiFungible, held...)
	return balances, nil
}

// settle runs fn inside one store transaction and one ledger session. The
// store commits first; the ledger session is committed only after it and
// rolled back on any failure before that point.
func (s *settlementService) settle(ctx context.Context, fn func(ctx context.Context, tx portsrepo.MarketTx, session ledgers.Session) error) error {
	session, err := s.gateway.Begin(ctx, s.market)
	if err != nil {
		return apperrors.ExternalError("begin ledger session", err)
	}

	err = s.store.RunInTx(ctx, func(ctx context.Context, tx portsrepo.MarketTx) error {
		return fn(ctx, tx, session)
	})
	if err != nil {
		if rbErr := session.Rollback(context.WithoutCancel(ctx)); rbErr != nil {
			s.LogError(ctx, rbErr, "Failed to roll back ledger session")
		}
		return err
	}

	if err := session.Commit(ctx); err != nil {
		s.LogError(ctx, err, "Ledger session commit failed after store commit")
		return apperrors.ExternalError("commit ledger session", err)
	}
	return nil
}

func (s *settlementService) failed(ctx context.Context, op string, err error, keyvals ...any) {
	s.logFailure(ctx, err, "Settlement failed", append([]any{slog.String("op", op)}, keyvals...)...)
	if s.observer != nil {
		s.observer.SettlementFailed(op, apperrors.Classify(err))
	}
}
