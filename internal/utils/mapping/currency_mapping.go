package mapping

import (
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/models"
)

// ToModelCurrency converts a domain Currency to a model Currency
func ToModelCurrency(d domain.Currency) models.Currency {
	return models.Currency{
		Address:     d.Address.String(),
		Symbol:      d.Symbol,
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCurrency converts a model Currency to a domain Currency
func ToDomainCurrency(m models.Currency) (domain.Currency, error) {
	addr, err := domain.ParseAddress(m.Address)
	if err != nil {
		return domain.Currency{}, fmt.Errorf("stored currency: %w", err)
	}
	return domain.Currency{
		Address:     addr,
		Symbol:      m.Symbol,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainCurrencySlice converts a slice of model Currencies to a slice of domain Currencies
func ToDomainCurrencySlice(ms []models.Currency) ([]domain.Currency, error) {
	ds := make([]domain.Currency, len(ms))
	for i, m := range ms {
		d, err := ToDomainCurrency(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
