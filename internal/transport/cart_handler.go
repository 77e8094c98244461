package transport

import (
	"net/http"

	"storefront/internal/cart"
	"storefront/internal/config"
	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// AddCartItemRequest adds quantity of a product to the visitor's cart
type AddCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// UpdateCartItemRequest sets the quantity of one cart line; zero or
// less removes the line
type UpdateCartItemRequest struct {
	ProductID string `json:"product_id" validate:"required"`
	Quantity  int    `json:"quantity"`
}

// CartHandler handles HTTP requests for the client-held cart. The cart
// travels in a cookie: it is decoded once per request, threaded through
// the service calls, and re-encoded into the response.
type CartHandler struct {
	carts  service.CartService
	cookie config.CartConfig
	logger *zap.Logger
}

// NewCartHandler creates a new CartHandler
func NewCartHandler(carts service.CartService, cookie config.CartConfig, logger *zap.Logger) *CartHandler {
	return &CartHandler{carts: carts, cookie: cookie, logger: logger}
}

// RegisterRoutes registers all cart routes
func (h *CartHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/cart", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Post("/items", h.AddItem)
		r.Put("/items", h.UpdateItem)
		r.Delete("/", h.Clear)
	})
}

// readCart decodes the cart cookie. A missing or malformed cookie is an
// empty cart, never an error.
func (h *CartHandler) readCart(r *http.Request) []domain.CartItem {
	cookie, err := r.Cookie(h.cookie.CookieName)
	if err != nil {
		return []domain.CartItem{}
	}
	return cart.Decode(cookie.Value)
}

// writeCart re-encodes items into the cart cookie on the response.
func (h *CartHandler) writeCart(w http.ResponseWriter, items []domain.CartItem) {
	encoded, err := cart.Encode(items)
	if err != nil {
		h.logger.Error("Failed to encode cart", zap.Error(err))
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cookie.CookieName,
		Value:    encoded,
		Path:     "/",
		MaxAge:   h.cookie.CookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Get prices the visitor's cart against the live catalog
func (h *CartHandler) Get(w http.ResponseWriter, r *http.Request) {
	items := h.readCart(r)
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.PriceCart(items))
}

// AddItem merges a product into the cart
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := h.readCart(r)
	items, ok := h.carts.AddItem(items, req.ProductID, req.Quantity)
	if !ok {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	h.logger.Info("Cart item added",
		zap.String("product_id", req.ProductID),
		zap.Int("quantity", req.Quantity),
	)

	h.writeCart(w, items)
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.PriceCart(items))
}

// UpdateItem sets a cart line's quantity
func (h *CartHandler) UpdateItem(w http.ResponseWriter, r *http.Request) {
	var req UpdateCartItemRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	items := h.readCart(r)
	items = h.carts.UpdateItem(items, req.ProductID, req.Quantity)

	h.writeCart(w, items)
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.PriceCart(items))
}

// Clear empties the cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.writeCart(w, []domain.CartItem{})
	middleware.RespondWithJSON(w, http.StatusOK, h.carts.PriceCart(nil))
}
