package repository

import (
	"errors"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/slug"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
)

// ProductInput holds the fields accepted when creating a product.
// Slug is optional; when empty it is derived from Name.
type ProductInput struct {
	Slug           string
	Name           string
	Description    string
	Price          decimal.Decimal
	Currency       string
	Images         []domain.MediaItem
	AdditionalInfo map[string]string
	CategoryIDs    []string
	Template       string
}

// ProductPatch is a partial update. Nil fields keep the stored value;
// set fields replace it wholesale.
type ProductPatch struct {
	Slug           *string
	Name           *string
	Description    *string
	Price          *decimal.Decimal
	Currency       *string
	Images         *[]domain.MediaItem
	AdditionalInfo *map[string]string
	CategoryIDs    *[]string
	Template       *string
}

// ProductRepository defines the interface for product data access
type ProductRepository interface {
	Create(input ProductInput) *domain.Product
	Get(id string) (*domain.Product, error)
	GetBySlug(slug string) (*domain.Product, error)
	List() []*domain.Product
	Update(id string, patch ProductPatch) (*domain.Product, error)
	Delete(id string)
	RemoveCategoryRef(categoryID string)
}

type productRepository struct {
	mu       sync.RWMutex
	products map[string]domain.Product
}

// NewProductRepository creates a new in-memory ProductRepository
func NewProductRepository() ProductRepository {
	return &productRepository{
		products: make(map[string]domain.Product),
	}
}

func (r *productRepository) Create(input ProductInput) *domain.Product {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := input.Slug
	if source == "" {
		source = input.Name
	}

	product := domain.Product{
		ID:             uuid.NewString(),
		Slug:           slug.Make(source),
		Name:           input.Name,
		Description:    input.Description,
		Price:          input.Price,
		Currency:       input.Currency,
		Images:         input.Images,
		AdditionalInfo: input.AdditionalInfo,
		CategoryIDs:    input.CategoryIDs,
		Template:       input.Template,
	}

	r.products[product.ID] = product
	return cloneProduct(product)
}

func (r *productRepository) Get(id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return cloneProduct(product), nil
}

// GetBySlug returns the first product with the given slug. Slug
// uniqueness is not enforced, so the match is whichever one map
// iteration reaches first.
func (r *productRepository) GetBySlug(s string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, product := range r.products {
		if product.Slug == s {
			return cloneProduct(product), nil
		}
	}
	return nil, ErrProductNotFound
}

// List returns all products in no particular order.
func (r *productRepository) List() []*domain.Product {
	r.mu.RLock()
	defer r.mu.RUnlock()

	products := make([]*domain.Product, 0, len(r.products))
	for _, product := range r.products {
		products = append(products, cloneProduct(product))
	}
	return products
}

func (r *productRepository) Update(id string, patch ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	product, ok := r.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	nameChanged := patch.Name != nil && *patch.Name != product.Name

	if patch.Name != nil {
		product.Name = *patch.Name
	}
	if patch.Description != nil {
		product.Description = *patch.Description
	}
	if patch.Price != nil {
		product.Price = *patch.Price
	}
	if patch.Currency != nil {
		product.Currency = *patch.Currency
	}
	if patch.Images != nil {
		product.Images = *patch.Images
	}
	if patch.AdditionalInfo != nil {
		product.AdditionalInfo = *patch.AdditionalInfo
	}
	if patch.CategoryIDs != nil {
		product.CategoryIDs = *patch.CategoryIDs
	}
	if patch.Template != nil {
		product.Template = *patch.Template
	}

	// An explicit slug always wins; otherwise a renamed product gets a
	// freshly derived slug.
	if patch.Slug != nil {
		product.Slug = slug.Make(*patch.Slug)
	} else if nameChanged {
		product.Slug = slug.Make(product.Name)
	}

	r.products[id] = product
	return cloneProduct(product), nil
}

// Delete removes the product. Deleting an unknown id is a no-op.
func (r *productRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.products, id)
}

// RemoveCategoryRef strips categoryID from every product that lists it.
func (r *productRepository) RemoveCategoryRef(categoryID string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for id, product := range r.products {
		kept := product.CategoryIDs[:0:0]
		removed := false
		for _, cid := range product.CategoryIDs {
			if cid == categoryID {
				removed = true
				continue
			}
			kept = append(kept, cid)
		}
		if removed {
			product.CategoryIDs = kept
			r.products[id] = product
		}
	}
}

func cloneProduct(p domain.Product) *domain.Product {
	out := p
	if p.Images != nil {
		out.Images = append([]domain.MediaItem(nil), p.Images...)
	}
	if p.CategoryIDs != nil {
		out.CategoryIDs = append([]string(nil), p.CategoryIDs...)
	}
	if p.AdditionalInfo != nil {
		out.AdditionalInfo = make(map[string]string, len(p.AdditionalInfo))
		for k, v := range p.AdditionalInfo {
			out.AdditionalInfo[k] = v
		}
	}
	return &out
}
