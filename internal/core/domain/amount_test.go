package domain

import (
	"testing"

	"github.com/agarrido2001/XaveMarket/internal/apperrors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateAmount(t *testing.T) {
	tests := []struct {
		name    string
		amount  decimal.Decimal
		wantErr error
	}{
		{"positive", decimal.NewFromInt(100), nil},
		{"zero", decimal.Zero, apperrors.ErrZeroAmount},
		{"negative", decimal.NewFromInt(-1), apperrors.ErrValidation},
		{"fractional", decimal.RequireFromString("1.5"), apperrors.ErrValidation},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateAmount(tt.amount)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestPrice(t *testing.T) {
	unset := NoPrice()
	assert.False(t, unset.IsSet())
	assert.True(t, unset.AmountOrZero().IsZero())
	assert.Equal(t, "unset", unset.String())

	set := PriceOf(decimal.NewFromInt(7))
	got, ok := set.Get()
	assert.True(t, ok)
	assert.True(t, got.Equal(decimal.NewFromInt(7)))
	assert.True(t, set.AmountOrZero().Equal(decimal.NewFromInt(7)))
}

func TestRoleAndStandard(t *testing.T) {
	assert.True(t, RoleNFTAdmin.Valid())
	assert.False(t, Role("MINTER").Valid())
	assert.True(t, StandardERC1155.Valid())
	assert.False(t, TokenStandard("erc20").Valid())

	key := PurchaseKey{Asset: MustParseAddress("0x00000000000000000000000000000000000000d1"), SubID: 5, Amount: decimal.NewFromInt(2)}
	assert.True(t, key.IsSet())
	assert.False(t, NoPurchaseKey().IsSet())
	assert.Equal(t, SemiFungibleKey{Asset: key.Asset, SubID: 5}, key.Key())
}
