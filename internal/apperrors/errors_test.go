package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTokenError(t *testing.T) {
	err := fmt.Errorf("buy failed: %w", NewTokenError(ErrTokenNotListed, 7))

	assert.ErrorIs(t, err, ErrTokenNotListed)
	id, ok := TokenOf(err)
	assert.True(t, ok)
	assert.Equal(t, uint64(7), id)
	assert.Contains(t, err.Error(), "tokenId 7")

	_, ok = TokenOf(ErrNotFound)
	assert.False(t, ok)
}

func TestExternalError(t *testing.T) {
	cause := errors.New("ERC20: insufficient allowance")
	err := ExternalError("fungible transfer", cause)

	assert.ErrorIs(t, err, ErrExternalLedger)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "ERC20: insufficient allowance")
	assert.Nil(t, ExternalError("noop", nil))
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want Kind
	}{
		{"nil", nil, ""},
		{"empty batch", ErrEmptyBatch, KindValidation},
		{"wrapped not found", fmt.Errorf("collection: %w", ErrNotFound), KindValidation},
		{"token not listed", NewTokenError(ErrTokenNotListed, 1), KindBusiness},
		{"no balance", ErrNoBalanceAvailable, KindBusiness},
		{"external", ExternalError("transfer", errors.New("boom")), KindExternal},
		{"unknown", errors.New("disk on fire"), KindInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
