package mapping

import (
	"fmt"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/models"
)

// ToModelCollection converts a domain Collection to a model Collection
func ToModelCollection(d domain.Collection) models.Collection {
	return models.Collection{
		Address:     d.Address.String(),
		Standard:    string(d.Standard),
		Holder:      d.Holder.String(),
		AuditFields: ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainCollection converts a model Collection to a domain Collection
func ToDomainCollection(m models.Collection) (domain.Collection, error) {
	addr, err := domain.ParseAddress(m.Address)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("stored collection: %w", err)
	}
	holder, err := domain.ParseAddress(m.Holder)
	if err != nil {
		return domain.Collection{}, fmt.Errorf("stored collection holder: %w", err)
	}
	return domain.Collection{
		Address:     addr,
		Standard:    domain.TokenStandard(m.Standard),
		Holder:      holder,
		AuditFields: ToDomainAuditFields(m.AuditFields),
	}, nil
}

// ToDomainCollectionSlice converts a slice of model Collections to domain Collections
func ToDomainCollectionSlice(ms []models.Collection) ([]domain.Collection, error) {
	ds := make([]domain.Collection, len(ms))
	for i, m := range ms {
		d, err := ToDomainCollection(m)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}
