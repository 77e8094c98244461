// Package store owns all catalog state for the process. Every catalog
// read or write goes through a Catalog; nothing else touches the
// repositories directly.
package store

import (
	"storefront/internal/domain"
	"storefront/internal/repository"
)

// Catalog composes the product, category and page repositories with the
// site settings singleton. It is constructed explicitly and handed to
// callers by reference; there is no package-level instance.
type Catalog struct {
	products   repository.ProductRepository
	categories repository.CategoryRepository
	pages      repository.PageRepository
	settings   repository.SettingsRepository
}

// NewCatalog creates an empty catalog with zero-value site settings.
func NewCatalog() *Catalog {
	return &Catalog{
		products:   repository.NewProductRepository(),
		categories: repository.NewCategoryRepository(),
		pages:      repository.NewPageRepository(),
		settings:   repository.NewSettingsRepository(domain.SiteSettings{}),
	}
}

// Products

func (c *Catalog) CreateProduct(input repository.ProductInput) *domain.Product {
	return c.products.Create(input)
}

func (c *Catalog) Product(id string) (*domain.Product, error) {
	return c.products.Get(id)
}

func (c *Catalog) ProductBySlug(slug string) (*domain.Product, error) {
	return c.products.GetBySlug(slug)
}

func (c *Catalog) Products() []*domain.Product {
	return c.products.List()
}

func (c *Catalog) UpdateProduct(id string, patch repository.ProductPatch) (*domain.Product, error) {
	return c.products.Update(id, patch)
}

func (c *Catalog) DeleteProduct(id string) {
	c.products.Delete(id)
}

// Categories

func (c *Catalog) CreateCategory(input repository.CategoryInput) *domain.Category {
	return c.categories.Create(input)
}

func (c *Catalog) Category(id string) (*domain.Category, error) {
	return c.categories.Get(id)
}

func (c *Catalog) Categories() []*domain.Category {
	return c.categories.List()
}

func (c *Catalog) UpdateCategory(id string, patch repository.CategoryPatch) (*domain.Category, error) {
	return c.categories.Update(id, patch)
}

// DeleteCategory removes the category and strips its id from every
// product before returning, so no caller can observe a product that
// still references it. Child categories keep their ParentID; orphans
// are not reassigned.
func (c *Catalog) DeleteCategory(id string) {
	c.categories.Delete(id)
	c.products.RemoveCategoryRef(id)
}

// Pages

func (c *Catalog) CreatePage(input repository.PageInput) *domain.Page {
	return c.pages.Create(input)
}

func (c *Catalog) Page(id string) (*domain.Page, error) {
	return c.pages.Get(id)
}

func (c *Catalog) PageBySlug(slug string) (*domain.Page, error) {
	return c.pages.GetBySlug(slug)
}

func (c *Catalog) Pages() []*domain.Page {
	return c.pages.List()
}

func (c *Catalog) UpdatePage(id string, patch repository.PagePatch) (*domain.Page, error) {
	return c.pages.Update(id, patch)
}

func (c *Catalog) DeletePage(id string) {
	c.pages.Delete(id)
}

// Settings

func (c *Catalog) Settings() domain.SiteSettings {
	return c.settings.Get()
}

func (c *Catalog) UpdateSettings(patch repository.SettingsPatch) domain.SiteSettings {
	return c.settings.Update(patch)
}
