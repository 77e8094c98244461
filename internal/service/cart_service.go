package service

import (
	"storefront/internal/domain"
	"storefront/internal/store"

	"github.com/shopspring/decimal"
)

// CartService implements cart mutations and pricing against the live
// catalog. The cart itself is owned by the caller: every method returns
// a fresh slice and never mutates its input.
type CartService interface {
	AddItem(items []domain.CartItem, productID string, quantity int) ([]domain.CartItem, bool)
	UpdateItem(items []domain.CartItem, productID string, quantity int) []domain.CartItem
	PriceCart(items []domain.CartItem) domain.PricedCart
}

type cartService struct {
	catalog *store.Catalog
}

// NewCartService creates a new instance of CartService
func NewCartService(catalog *store.Catalog) CartService {
	return &cartService{catalog: catalog}
}

// AddItem merges quantity of productID into items. An unknown product
// is rejected: the input is returned unchanged with ok=false, and the
// caller decides the fallback. Quantities below 1 are clamped up to 1.
func (s *cartService) AddItem(items []domain.CartItem, productID string, quantity int) ([]domain.CartItem, bool) {
	if _, err := s.catalog.Product(productID); err != nil {
		return items, false
	}

	if quantity < 1 {
		quantity = 1
	}

	updated := append([]domain.CartItem(nil), items...)
	for i, item := range updated {
		if item.ProductID == productID {
			updated[i].Quantity += quantity
			return updated, true
		}
	}

	return append(updated, domain.CartItem{ProductID: productID, Quantity: quantity}), true
}

// UpdateItem sets the quantity of productID's line; a quantity of zero
// or less removes the line. Unknown productIDs are left alone.
func (s *cartService) UpdateItem(items []domain.CartItem, productID string, quantity int) []domain.CartItem {
	updated := make([]domain.CartItem, 0, len(items))
	for _, item := range items {
		if item.ProductID != productID {
			updated = append(updated, item)
			continue
		}
		if quantity > 0 {
			updated = append(updated, domain.CartItem{ProductID: productID, Quantity: quantity})
		}
	}
	return updated
}

// PriceCart resolves each line against the catalog and computes
// subtotals. Lines whose product has since been deleted are dropped;
// the catalog and the client-held cart evolve independently. Line
// currencies are not cross-checked (see DESIGN.md).
func (s *cartService) PriceCart(items []domain.CartItem) domain.PricedCart {
	priced := domain.PricedCart{
		Lines: []domain.PricedLine{},
		Total: decimal.Zero,
	}

	for _, item := range items {
		product, err := s.catalog.Product(item.ProductID)
		if err != nil {
			continue
		}

		lineTotal := product.Price.Mul(decimal.NewFromInt(int64(item.Quantity)))
		priced.Lines = append(priced.Lines, domain.PricedLine{
			Product:   *product,
			Quantity:  item.Quantity,
			LineTotal: lineTotal,
		})
		priced.Total = priced.Total.Add(lineTotal)
	}

	return priced
}
