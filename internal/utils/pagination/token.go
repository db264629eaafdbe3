package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/agarrido2001/XaveMarket/internal/core/domain"
)

// EncodeListingToken creates a base64 encoded cursor pointing after token
// in collection's listing.
func EncodeListingToken(collection domain.Address, token domain.TokenID) string {
	return EncodeMultiFieldToken(collection.String(), token.String())
}

// DecodeListingToken parses a cursor created by EncodeListingToken.
func DecodeListingToken(cursor string) (domain.Address, domain.TokenID, error) {
	parts, err := DecodeMultiFieldToken(cursor)
	if err != nil {
		return domain.ZeroAddress, 0, err
	}
	if len(parts) != 2 {
		return domain.ZeroAddress, 0, fmt.Errorf("invalid pagination token format (split)")
	}
	collection, err := domain.ParseAddress(parts[0])
	if err != nil {
		return domain.ZeroAddress, 0, fmt.Errorf("invalid pagination token format (collection parse): %w", err)
	}
	token, err := domain.ParseTokenID(parts[1])
	if err != nil {
		return domain.ZeroAddress, 0, fmt.Errorf("invalid pagination token format (token parse): %w", err)
	}
	return collection, token, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
func EncodeMultiFieldToken(fields ...string) string {
	return base64.URLEncoding.EncodeToString([]byte(strings.Join(fields, "|")))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.URLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), "|"), nil
}
