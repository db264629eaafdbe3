package services

import (
	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/events"
	"github.com/agarrido2001/XaveMarket/internal/core/ports/ledgers"
	portsrepo "github.com/agarrido2001/XaveMarket/internal/core/ports/repositories"
	portssvc "github.com/agarrido2001/XaveMarket/internal/core/ports/services"
)

// Dependencies are the collaborators shared by every market service.
type Dependencies struct {
	Repos    portsrepo.RepositoryProvider
	Gateway  ledgers.Gateway
	Sink     events.Sink
	Observer SettlementObserver
	Market   domain.Address
}

// NewServiceContainer creates a new service container with properly initialized dependencies.
// All services share one Serializer.
func NewServiceContainer(deps Dependencies) *portssvc.ServiceContainer {
	serializer := NewSerializer()
	container := &portssvc.ServiceContainer{}

	// Access control first since every other service authorizes through it
	container.AccessControl = NewAccessControlService(deps.Repos.RoleRepo, serializer)
	authorizer := container.AccessControl

	store := deps.Repos.MarketStore
	container.Currency = NewCurrencyService(store, deps.Gateway, serializer, authorizer)
	container.Collection = NewCollectionService(store, deps.Gateway, serializer, authorizer)
	container.Price = NewPriceService(store, serializer, authorizer)
	container.Listing = NewListingService(store, deps.Sink, serializer, authorizer)
	container.PurchaseKey = NewPurchaseKeyService(store, deps.Gateway, serializer, authorizer)

	options := []SettlementOption{WithEventSink(deps.Sink)}
	if deps.Observer != nil {
		options = append(options, WithSettlementObserver(deps.Observer))
	}
	container.Settlement = NewSettlementService(store, deps.Gateway, serializer, authorizer, deps.Market, options...)

	return container
}
