package transport

import (
	"net/http"

	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// CreatePageRequest represents the page creation payload. Slug is
// optional and derived from Title when absent.
type CreatePageRequest struct {
	Title    string `json:"title" validate:"required"`
	Slug     string `json:"slug"`
	Content  string `json:"content"`
	Template string `json:"template"`
}

// UpdatePageRequest is a partial update; absent fields keep their
// stored values.
type UpdatePageRequest struct {
	Title    *string `json:"title"`
	Slug     *string `json:"slug"`
	Content  *string `json:"content"`
	Template *string `json:"template"`
}

// PageHandler handles HTTP requests for content pages
type PageHandler struct {
	catalog *store.Catalog
	logger  *zap.Logger
}

// NewPageHandler creates a new PageHandler
func NewPageHandler(catalog *store.Catalog, logger *zap.Logger) *PageHandler {
	return &PageHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers all page routes
func (h *PageHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/pages", func(r chi.Router) {
		r.Post("/", h.Create)
		r.Get("/", h.List)
		r.Get("/{id}", h.Get)
		r.Get("/slug/{slug}", h.GetBySlug)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})
}

// Create handles page creation
func (h *PageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreatePageRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page := h.catalog.CreatePage(repository.PageInput{
		Slug:     req.Slug,
		Title:    req.Title,
		Content:  req.Content,
		Template: req.Template,
	})

	h.logger.Info("Page created",
		zap.String("page_id", page.ID),
		zap.String("slug", page.Slug),
	)

	middleware.RespondWithJSON(w, http.StatusCreated, page)
}

// List returns all pages
func (h *PageHandler) List(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Pages())
}

// Get returns one page by id
func (h *PageHandler) Get(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.Page(chi.URLParam(r, "id"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "page not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// GetBySlug returns the first page matching the slug
func (h *PageHandler) GetBySlug(w http.ResponseWriter, r *http.Request) {
	page, err := h.catalog.PageBySlug(chi.URLParam(r, "slug"))
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "page not found")
		return
	}
	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Update applies a partial update to a page
func (h *PageHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdatePageRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	page, err := h.catalog.UpdatePage(chi.URLParam(r, "id"), repository.PagePatch{
		Title:    req.Title,
		Slug:     req.Slug,
		Content:  req.Content,
		Template: req.Template,
	})
	if err != nil {
		middleware.RespondWithError(w, http.StatusNotFound, "page not found")
		return
	}

	middleware.RespondWithJSON(w, http.StatusOK, page)
}

// Delete removes a page; unknown ids are treated as already gone
func (h *PageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.catalog.DeletePage(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}
