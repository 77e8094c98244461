package transport

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// MediaItemPayload is one product image in a request body. ID may be
// omitted; a fresh one is assigned then.
type MediaItemPayload struct {
	ID  string `json:"id"`
	URL string `json:"url" validate:"required,url"`
	Alt string `json:"alt"`
}

// CreateProductRequest represents the product creation payload. Slug is
// optional and derived from Name when absent.
type CreateProductRequest struct {
	Name           string             `json:"name" validate:"required"`
	Slug           string             `json:"slug"`
	Description    string             `json:"description"`
	Price          decimal.Decimal    `json:"price"`
	Currency       string             `json:"currency" validate:"required,len=3"`
	Images         []MediaItemPayload `json:"images" validate:"dive"`
	AdditionalInfo map[string]string  `json:"additional_info"`
	CategoryIDs    []string           `json:"category_ids"`
	Template       string             `json:"template"`
}

// UpdateProductRequest is a partial update; absent fields keep their
// stored values.
type UpdateProductRequest struct {
	Name           *string             `json:"name"`
	Slug           *string             `json:"slug"`
	Description    *string             `json:"description"`
	Price          *decimal.Decimal    `json:"price"`
	Currency       *string             `json:"currency" validate:"omitempty,len=3"`
	Images         *[]MediaItemPayload `json:"images" validate:"omitempty,dive"`
	AdditionalInfo *map[string]string  `json:"additional_info"`
	CategoryIDs    *[]string           `json:"category_ids"`
	Template       *string             `json:"template"`
}

// ProductHandler handles HTTP requests for catalog products
type ProductHandler struct {
	catalog *store.Catalog
	logger  *zap.Logger
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(catalog *store.Catalog, logger *zap.Logger) *ProductHandler {
	return &ProductHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers all product routes
func (h *ProductHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/products", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/slug/{slug}", h.GetBySlug)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

func toMediaItems(payload []MediaItemPayload) []domain.MediaItem {
	if payload == nil {
		return nil
	}
	items := make([]domain.MediaItem, len(payload))
	for i, p := range payload {
		id := p.ID
		if id == "" {
			id = uuid.NewString()
		}
		items[i] = domain.MediaItem{ID: id, URL: p.URL, Alt: p.Alt}
	}
	return items
}

// Create handles product creation
func (h *ProductHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Price.IsNegative() {
		middleware.RespondWithError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	product := h.catalog.CreateProduct(repository.ProductInput{
		Slug:           req.Slug,
		Name:           req.Name,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		Images:         toMediaItems(req.Images),
		AdditionalInfo: req.AdditionalInfo,
		CategoryIDs:    req.CategoryIDs,
		Template:       req.Template,
	})

	h.logger.Info("Product created",
		zap.String("product_id", product.ID),
		zap.String("slug", product.Slug),
	)

	middleware.RespondWithJSON(w, http.StatusCreated, product)
}

// List returns all products
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Products())
}

// Get returns one product by id
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.Product(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// GetBySlug returns the first product matching the slug
func (h *ProductHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	product, err := h.catalog.ProductBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Update applies a partial update to a product
func (h *ProductHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateProductRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Price != nil && req.Price.IsNegative() {
		middleware.RespondWithError(w, http.StatusBadRequest, "price must not be negative")
		return
	}

	patch := repository.ProductPatch{
		Name:           req.Name,
		Slug:           req.Slug,
		Description:    req.Description,
		Price:          req.Price,
		Currency:       req.Currency,
		AdditionalInfo: req.AdditionalInfo,
		CategoryIDs:    req.CategoryIDs,
		Template:       req.Template,
	}
	if req.Images != nil {
		images := toMediaItems(*req.Images)
		patch.Images = &images
	}

	product, err := h.catalog.UpdateProduct(chi.URLParam(r, "id"), patch)
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "product not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, product)
}

// Delete removes a product; unknown ids are treated as already gone
func (h *ProductHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.catalog.DeleteProduct(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
