// Package cart implements the client-held shopping cart: the codec that
// turns untrusted client state into cart items and back.
package cart

import (
	"encoding/base64"
	"encoding/json"
	"math"

	"storefront/internal/domain"
)

// maxEncodedLen bounds the accepted client state so the cart stays
// viable as a cookie value. Anything larger is treated as garbage.
const maxEncodedLen = 4096

// Decode parses client-held cart state: base64url-encoded JSON array of
// {productId, quantity} entries. The input is untrusted; any failure at
// any level degrades to an empty or partial cart, never an error.
func Decode(raw string) []domain.CartItem {
	items := []domain.CartItem{}
	if raw == "" || len(raw) > maxEncodedLen {
		return items
	}

	data, err := base64.RawURLEncoding.DecodeString(raw)
	if err != nil {
		return items
	}

	var entries []json.RawMessage
	if err := json.Unmarshal(data, &entries); err != nil {
		return items
	}

	for _, entry := range entries {
		var fields map[string]any
		if err := json.Unmarshal(entry, &fields); err != nil {
			continue
		}

		productID, _ := fields["productId"].(string)
		quantity := 0
		if q, ok := fields["quantity"].(float64); ok && !math.IsNaN(q) && !math.IsInf(q, 0) {
			quantity = int(q)
		}

		if productID == "" || quantity <= 0 {
			continue
		}
		items = append(items, domain.CartItem{ProductID: productID, Quantity: quantity})
	}

	return items
}

// Encode serializes items into the client-held representation accepted
// by Decode. Entries with a non-positive quantity are dropped, matching
// what Decode would do to them anyway.
func Encode(items []domain.CartItem) (string, error) {
	valid := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID == "" || item.Quantity <= 0 {
			continue
		}
		valid = append(valid, item)
	}

	data, err := json.Marshal(valid)
	if err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(data), nil
}
