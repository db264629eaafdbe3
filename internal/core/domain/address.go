package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// Address is a 20-byte account or contract hash on the asset ledgers.
// The zero value is the "no asset" sentinel.
type Address util.Uint160

// ZeroAddress is the empty address.
var ZeroAddress Address

// ParseAddress accepts a big-endian hex hash (with or without 0x) or a
// base58 Neo address.
func ParseAddress(s string) (Address, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroAddress, fmt.Errorf("empty address")
	}
	hexPart := strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(hexPart) == util.Uint160Size*2 {
		u, err := util.Uint160DecodeStringBE(hexPart)
		if err != nil {
			return ZeroAddress, fmt.Errorf("invalid address %q: %w", s, err)
		}
		return Address(u), nil
	}
	u, err := address.StringToUint160(s)
	if err != nil {
		return ZeroAddress, fmt.Errorf("invalid address %q: %w", s, err)
	}
	return Address(u), nil
}

// MustParseAddress panics on malformed input. Intended for fixtures.
func MustParseAddress(s string) Address {
	a, err := ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// IsZero reports whether a is the empty address.
func (a Address) IsZero() bool { return a == ZeroAddress }

// String renders a as 0x-prefixed big-endian hex.
func (a Address) String() string { return "0x" + util.Uint160(a).StringBE() }

// NeoAddress renders a in base58 Neo form.
func (a Address) NeoAddress() string { return address.Uint160ToString(util.Uint160(a)) }

// MarshalText implements encoding.TextMarshaler.
func (a Address) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// UnmarshalText implements encoding.TextUnmarshaler.
func (a *Address) UnmarshalText(text []byte) error {
	parsed, err := ParseAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// TokenID identifies an item inside a collection, or a sub-identifier of a
// semi-fungible asset.
type TokenID uint64

// ParseTokenID parses a base-10 token id.
func ParseTokenID(s string) (TokenID, error) {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid token id %q: %w", s, err)
	}
	return TokenID(v), nil
}

func (t TokenID) String() string { return strconv.FormatUint(uint64(t), 10) }
