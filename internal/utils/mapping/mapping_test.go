package mapping

import (
	"testing"
	"time"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
	"github.com/agarrido2001/XaveMarket/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectionMapping(t *testing.T) {
	now := time.Now().UTC()
	c := domain.Collection{
		Address:     domain.MustParseAddress("0x00000000000000000000000000000000000000c2"),
		Standard:    domain.StandardERC1155,
		Holder:      domain.MustParseAddress("0x0000000000000000000000000000000000000004"),
		AuditFields: domain.AuditFields{CreatedAt: now, CreatedBy: "0x01", LastUpdatedAt: now, LastUpdatedBy: "0x01"},
	}

	m := ToModelCollection(c)
	assert.Equal(t, "0x00000000000000000000000000000000000000c2", m.Address)
	assert.Equal(t, "erc1155", m.Standard)

	back, err := ToDomainCollection(m)
	require.NoError(t, err)
	assert.Equal(t, c, back)

	// erc721 rows keep the zero holder.
	m = ToModelCollection(domain.Collection{Address: c.Address, Standard: domain.StandardERC721})
	back, err = ToDomainCollection(m)
	require.NoError(t, err)
	assert.True(t, back.Holder.IsZero())
}

func TestCurrencyMapping_RejectsCorruptRows(t *testing.T) {
	_, err := ToDomainCurrency(models.Currency{Address: "garbage"})
	assert.Error(t, err)

	_, err = ToDomainCurrencySlice([]models.Currency{{Address: "0x00000000000000000000000000000000000000a1"}, {Address: ""}})
	assert.Error(t, err)
}
