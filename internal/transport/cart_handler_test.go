package transport

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/repository"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var testCartConfig = config.CartConfig{CookieName: "cart", CookieMaxAge: 3600}

func newCartTestServer(t *testing.T) (*chi.Mux, *store.Catalog) {
	t.Helper()

	catalog := store.NewCatalog()
	handler := NewCartHandler(service.NewCartService(catalog), testCartConfig, zap.NewNop())

	router := chi.NewRouter()
	handler.RegisterRoutes(router)
	return router, catalog
}

func cartCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()

	for _, c := range w.Result().Cookies() {
		if c.Name == testCartConfig.CookieName {
			return c
		}
	}
	t.Fatal("cart cookie not set")
	return nil
}

func postJSON(t *testing.T, router http.Handler, path string, payload interface{}, cookie *http.Cookie) *httptest.ResponseRecorder {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	if cookie != nil {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestCartHandler_AddItemSetsCookieAndPrices(t *testing.T) {
	router, catalog := newCartTestServer(t)
	product := catalog.CreateProduct(repository.ProductInput{
		Name:     "Espresso Beans",
		Price:    decimal.NewFromInt(10),
		Currency: "EUR",
	})

	w := postJSON(t, router, "/api/cart/items", AddCartItemRequest{
		ProductID: product.ID,
		Quantity:  2,
	}, nil)

	require.Equal(t, http.StatusOK, w.Code)

	cookie := cartCookie(t, w)
	items := cart.Decode(cookie.Value)
	assert.Equal(t, []domain.CartItem{{ProductID: product.ID, Quantity: 2}}, items)

	var priced domain.PricedCart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &priced))
	require.Len(t, priced.Lines, 1)
	assert.True(t, priced.Total.Equal(decimal.NewFromInt(20)))
}

func TestCartHandler_AddItemMergesAcrossRequests(t *testing.T) {
	router, catalog := newCartTestServer(t)
	product := catalog.CreateProduct(repository.ProductInput{
		Name:  "Espresso Beans",
		Price: decimal.NewFromInt(10),
	})

	w := postJSON(t, router, "/api/cart/items", AddCartItemRequest{ProductID: product.ID, Quantity: 2}, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = postJSON(t, router, "/api/cart/items", AddCartItemRequest{ProductID: product.ID, Quantity: 3}, cartCookie(t, w))
	require.Equal(t, http.StatusOK, w.Code)

	items := cart.Decode(cartCookie(t, w).Value)
	assert.Equal(t, []domain.CartItem{{ProductID: product.ID, Quantity: 5}}, items)
}

func TestCartHandler_AddUnknownProductIs404(t *testing.T) {
	router, _ := newCartTestServer(t)

	w := postJSON(t, router, "/api/cart/items", AddCartItemRequest{ProductID: "missing", Quantity: 1}, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Empty(t, w.Result().Cookies())
}

func TestCartHandler_TamperedCookieDegradesToEmptyCart(t *testing.T) {
	router, _ := newCartTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(&http.Cookie{Name: testCartConfig.CookieName, Value: "garbage!!"})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	var priced domain.PricedCart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &priced))
	assert.Empty(t, priced.Lines)
	assert.True(t, priced.Total.IsZero())
}

func TestCartHandler_DeletedProductDropsFromPricing(t *testing.T) {
	router, catalog := newCartTestServer(t)
	product := catalog.CreateProduct(repository.ProductInput{
		Name:  "Espresso Beans",
		Price: decimal.NewFromInt(10),
	})

	w := postJSON(t, router, "/api/cart/items", AddCartItemRequest{ProductID: product.ID, Quantity: 2}, nil)
	cookie := cartCookie(t, w)

	catalog.DeleteProduct(product.ID)

	req := httptest.NewRequest(http.MethodGet, "/api/cart", nil)
	req.AddCookie(cookie)
	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var priced domain.PricedCart
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &priced))
	assert.Empty(t, priced.Lines)
	assert.True(t, priced.Total.IsZero())
}

func TestCartHandler_UpdateItemQuantity(t *testing.T) {
	router, catalog := newCartTestServer(t)
	product := catalog.CreateProduct(repository.ProductInput{
		Name:  "Espresso Beans",
		Price: decimal.NewFromInt(10),
	})

	w := postJSON(t, router, "/api/cart/items", AddCartItemRequest{ProductID: product.ID, Quantity: 2}, nil)
	cookie := cartCookie(t, w)

	body, _ := json.Marshal(UpdateCartItemRequest{ProductID: product.ID, Quantity: 0})
	req := httptest.NewRequest(http.MethodPut, "/api/cart/items", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.AddCookie(cookie)

	w = httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, cart.Decode(cartCookie(t, w).Value))
}
