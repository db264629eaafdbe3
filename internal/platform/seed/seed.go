// Package seed loads a YAML bootstrap file into a fresh market: registered
// currencies and collections with their prices, listings and purchase keys,
// extra role grants and, for the in-process ledger, starting balances.
package seed

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/agarrido2001/XaveMarket/internal/adapters/ledger/memory"
	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
	"github.com/agarrido2001/XaveMarket/internal/dto"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// File is the root of a seed document.
type File struct {
	Currencies  []Currency   `yaml:"currencies"`
	Collections []Collection `yaml:"collections"`
	Roles       []RoleGrant  `yaml:"roles"`
	Ledger      Ledger       `yaml:"ledger"`
}

type Currency struct {
	Address domain.Address `yaml:"address"`
	Symbol  string         `yaml:"symbol"`
}

type Price struct {
	Currency domain.Address  `yaml:"currency"`
	Amount   decimal.Decimal `yaml:"amount"`
}

type Override struct {
	Currency domain.Address   `yaml:"currency"`
	Tokens   []domain.TokenID `yaml:"tokens"`
	Amount   decimal.Decimal  `yaml:"amount"`
}

type PurchaseKey struct {
	Tokens []domain.TokenID `yaml:"tokens"`
	Asset  domain.Address   `yaml:"asset"`
	SubID  domain.TokenID   `yaml:"subId"`
	Amount decimal.Decimal  `yaml:"amount"`
}

type Collection struct {
	Address       domain.Address   `yaml:"address"`
	Standard      string           `yaml:"standard"`
	Holder        domain.Address   `yaml:"holder"`
	DefaultPrices []Price          `yaml:"defaultPrices"`
	Overrides     []Override       `yaml:"overrides"`
	PurchaseKeys  []PurchaseKey    `yaml:"purchaseKeys"`
	Listed        []domain.TokenID `yaml:"listed"`
}

type RoleGrant struct {
	Role    domain.Role    `yaml:"role"`
	Account domain.Address `yaml:"account"`
}

// Ledger holds starting balances for the in-process ledger. Every balance is
// approved to the market account.
type Ledger struct {
	Balances     []FungibleBalance `yaml:"balances"`
	Items        []ItemGrant       `yaml:"items"`
	SemiFungible []SemiBalance     `yaml:"semiFungible"`
}

type FungibleBalance struct {
	Asset  domain.Address  `yaml:"asset"`
	Owner  domain.Address  `yaml:"owner"`
	Amount decimal.Decimal `yaml:"amount"`
}

type ItemGrant struct {
	Collection domain.Address   `yaml:"collection"`
	Owner      domain.Address   `yaml:"owner"`
	Tokens     []domain.TokenID `yaml:"tokens"`
}

type SemiBalance struct {
	Asset  domain.Address  `yaml:"asset"`
	Owner  domain.Address  `yaml:"owner"`
	SubID  domain.TokenID  `yaml:"subId"`
	Amount decimal.Decimal `yaml:"amount"`
}

// LoadFile reads and parses a seed file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read seed file: %w", err)
	}
	return Parse(data)
}

// Parse decodes a seed document. Unknown fields are rejected.
func Parse(data []byte) (*File, error) {
	var f File
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Seeder applies a seed file through the market services.
type Seeder struct {
	Services *portssvc.ServiceContainer
	Admin    domain.Address // Caller for every privileged operation
	Market   domain.Address // Operator approved on seeded ledger balances
	Ledger   *memory.Ledger // Optional; ledger fixtures are skipped when nil
	Logger   *slog.Logger
}

// Apply deploys the seeded contracts, credits starting balances and then
// registers everything through the services. Registry entries that already
// exist are kept, so re-applying a file to a persistent store is harmless.
func (s *Seeder) Apply(ctx context.Context, f *File) error {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}

	if s.Ledger != nil {
		if err := s.applyLedger(f); err != nil {
			return err
		}
	}

	for _, c := range f.Currencies {
		_, err := s.Services.Currency.AddCurrency(ctx, s.Admin, dto.AddCurrencyRequest{Address: c.Address, Symbol: c.Symbol})
		if err != nil {
			if !errors.Is(err, apperrors.ErrDuplicate) {
				return fmt.Errorf("seed currency %s: %w", c.Address, err)
			}
			logger.Info("Seed currency already registered", slog.String("currency", c.Address.String()))
		}
	}

	for _, c := range f.Collections {
		if err := s.applyCollection(ctx, logger, c); err != nil {
			return fmt.Errorf("seed collection %s: %w", c.Address, err)
		}
	}

	for _, g := range f.Roles {
		if err := s.Services.AccessControl.GrantRole(ctx, s.Admin, g.Role, g.Account); err != nil {
			return fmt.Errorf("seed role %s for %s: %w", g.Role, g.Account, err)
		}
	}

	logger.Info("Seed applied",
		slog.Int("currencies", len(f.Currencies)),
		slog.Int("collections", len(f.Collections)),
		slog.Int("roles", len(f.Roles)))
	return nil
}

func (s *Seeder) applyCollection(ctx context.Context, logger *slog.Logger, c Collection) error {
	req := dto.AddCollectionRequest{Address: c.Address, Standard: c.Standard, Holder: c.Holder}

	currencies := make([]domain.Address, len(c.DefaultPrices))
	amounts := make([]decimal.Decimal, len(c.DefaultPrices))
	for i, p := range c.DefaultPrices {
		currencies[i] = p.Currency
		amounts[i] = p.Amount
	}

	var err error
	if len(currencies) > 0 {
		_, err = s.Services.Collection.AddCollectionWithPrices(ctx, s.Admin, req, currencies, amounts)
	} else {
		_, err = s.Services.Collection.AddCollection(ctx, s.Admin, req)
	}
	switch {
	case err == nil:
	case errors.Is(err, apperrors.ErrDuplicate):
		logger.Info("Seed collection already registered", slog.String("collection", c.Address.String()))
		if len(currencies) > 0 {
			if err := s.Services.Price.SetDefaultPrices(ctx, s.Admin, c.Address, currencies, amounts); err != nil {
				return err
			}
		}
	default:
		return err
	}

	for _, o := range c.Overrides {
		prices := make([]decimal.Decimal, len(o.Tokens))
		for i := range prices {
			prices[i] = o.Amount
		}
		if err := s.Services.Price.SetOverridePrices(ctx, s.Admin, c.Address, o.Currency, o.Tokens, prices); err != nil {
			return err
		}
	}

	for _, k := range c.PurchaseKeys {
		key := domain.PurchaseKey{Asset: k.Asset, SubID: k.SubID, Amount: k.Amount}
		if err := s.Services.PurchaseKey.SetPurchaseKey(ctx, s.Admin, c.Address, k.Tokens, key); err != nil {
			return err
		}
	}

	if len(c.Listed) > 0 {
		if err := s.Services.Listing.AddToMarket(ctx, s.Admin, c.Address, c.Listed); err != nil {
			return err
		}
	}
	return nil
}

func (s *Seeder) applyLedger(f *File) error {
	l := s.Ledger

	for _, c := range f.Currencies {
		l.Deploy(c.Address, memory.KindFungible)
	}
	for _, c := range f.Collections {
		if domain.TokenStandard(c.Standard) == domain.StandardERC1155 {
			l.Deploy(c.Address, memory.KindSemiFungible)
		} else {
			l.Deploy(c.Address, memory.KindItems)
		}
		for _, k := range c.PurchaseKeys {
			l.Deploy(k.Asset, memory.KindSemiFungible)
		}
	}

	for _, b := range f.Ledger.Balances {
		if err := l.Mint(b.Asset, b.Owner, b.Amount); err != nil {
			return fmt.Errorf("seed balance of %s: %w", b.Owner, err)
		}
		if err := l.Approve(b.Asset, b.Owner, s.Market, l.BalanceOf(b.Asset, b.Owner)); err != nil {
			return fmt.Errorf("seed allowance of %s: %w", b.Owner, err)
		}
	}
	for _, g := range f.Ledger.Items {
		for _, token := range g.Tokens {
			if err := l.MintItem(g.Collection, g.Owner, token); err != nil {
				return fmt.Errorf("seed item %s of %s: %w", token, g.Collection, err)
			}
		}
		if err := l.SetApprovalForAll(g.Collection, g.Owner, s.Market, true); err != nil {
			return fmt.Errorf("seed item approval of %s: %w", g.Owner, err)
		}
	}
	for _, b := range f.Ledger.SemiFungible {
		if err := l.MintSemiFungible(b.Asset, b.Owner, b.SubID, b.Amount); err != nil {
			return fmt.Errorf("seed semi-fungible balance of %s: %w", b.Owner, err)
		}
		if err := l.SetApprovalForAll(b.Asset, b.Owner, s.Market, true); err != nil {
			return fmt.Errorf("seed semi-fungible approval of %s: %w", b.Owner, err)
		}
	}
	return nil
}
