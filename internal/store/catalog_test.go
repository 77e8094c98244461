package store

import (
	"testing"

	"storefront/internal/domain"
	"storefront/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_DeleteCategoryStripsProductReferences(t *testing.T) {
	catalog := NewCatalog()

	coffee := catalog.CreateCategory(repository.CategoryInput{Name: "Coffee"})
	gear := catalog.CreateCategory(repository.CategoryInput{Name: "Gear"})

	beans := catalog.CreateProduct(repository.ProductInput{
		Name:        "Espresso Beans",
		CategoryIDs: []string{coffee.ID, gear.ID},
	})
	kettle := catalog.CreateProduct(repository.ProductInput{
		Name:        "Kettle",
		CategoryIDs: []string{gear.ID},
	})

	catalog.DeleteCategory(gear.ID)

	_, err := catalog.Category(gear.ID)
	assert.ErrorIs(t, err, repository.ErrCategoryNotFound)

	// No product may still reference the deleted category
	for _, p := range catalog.Products() {
		assert.NotContains(t, p.CategoryIDs, gear.ID)
	}

	gotBeans, err := catalog.Product(beans.ID)
	require.NoError(t, err)
	assert.Equal(t, []string{coffee.ID}, gotBeans.CategoryIDs)

	// Products themselves survive the cascade
	_, err = catalog.Product(kettle.ID)
	assert.NoError(t, err)
}

func TestCatalog_DeleteCategoryKeepsChildCategories(t *testing.T) {
	catalog := NewCatalog()

	parent := catalog.CreateCategory(repository.CategoryInput{Name: "Coffee"})
	child := catalog.CreateCategory(repository.CategoryInput{
		Name:     "Single Origin",
		ParentID: parent.ID,
	})

	catalog.DeleteCategory(parent.ID)

	got, err := catalog.Category(child.ID)
	require.NoError(t, err)
	assert.Equal(t, parent.ID, got.ParentID)
}

func TestCatalog_PageBySlug(t *testing.T) {
	catalog := NewCatalog()
	page := catalog.CreatePage(repository.PageInput{Title: "About Us"})

	got, err := catalog.PageBySlug("about-us")
	require.NoError(t, err)
	assert.Equal(t, page.ID, got.ID)

	_, err = catalog.PageBySlug("missing")
	assert.ErrorIs(t, err, repository.ErrPageNotFound)
}

func TestCatalog_SettingsUpdateAndRead(t *testing.T) {
	catalog := NewCatalog()

	header := "<h1>Shop</h1>"
	catalog.UpdateSettings(repository.SettingsPatch{
		HeaderHTML: &header,
		PaymentGateways: &[]domain.PaymentGateway{
			{Provider: "stripe", Enabled: true},
		},
	})

	footer := "<footer>2026</footer>"
	settings := catalog.UpdateSettings(repository.SettingsPatch{FooterHTML: &footer})

	assert.Equal(t, header, settings.HeaderHTML)
	assert.Equal(t, footer, settings.FooterHTML)
	require.Len(t, settings.PaymentGateways, 1)
	assert.Equal(t, "stripe", settings.PaymentGateways[0].Provider)

	// Mutating the returned value does not leak into the store
	settings.HeaderHTML = "mutated"
	assert.Equal(t, header, catalog.Settings().HeaderHTML)
}
