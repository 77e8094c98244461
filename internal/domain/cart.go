package domain

import (
	"github.com/shopspring/decimal"
)

// CartItem references a product by id; the product itself is resolved
// against the catalog at read time. Carts are never stored server-side.
type CartItem struct {
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// PricedLine is a cart entry joined with its product and subtotal.
type PricedLine struct {
	Product   Product         `json:"product"`
	Quantity  int             `json:"quantity"`
	LineTotal decimal.Decimal `json:"line_total"`
}

// PricedCart is the result of pricing a cart against the live catalog.
type PricedCart struct {
	Lines []PricedLine    `json:"lines"`
	Total decimal.Decimal `json:"total"`
}
