package repository

import (
	"errors"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/slug"

	"github.com/google/uuid"
)

var (
	ErrPageNotFound = errors.New("page not found")
)

// PageInput holds the fields accepted when creating a page.
// Slug is optional; when empty it is derived from Title.
type PageInput struct {
	Slug     string
	Title    string
	Content  string
	Template string
}

// PagePatch is a partial update; nil fields keep the stored value.
type PagePatch struct {
	Slug     *string
	Title    *string
	Content  *string
	Template *string
}

// PageRepository defines the interface for content page data access
type PageRepository interface {
	Create(input PageInput) *domain.Page
	Get(id string) (*domain.Page, error)
	GetBySlug(slug string) (*domain.Page, error)
	List() []*domain.Page
	Update(id string, patch PagePatch) (*domain.Page, error)
	Delete(id string)
}

type pageRepository struct {
	mu    sync.RWMutex
	pages map[string]domain.Page
}

// NewPageRepository creates a new in-memory PageRepository
func NewPageRepository() PageRepository {
	return &pageRepository{
		pages: make(map[string]domain.Page),
	}
}

func (r *pageRepository) Create(input PageInput) *domain.Page {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := input.Slug
	if source == "" {
		source = input.Title
	}

	page := domain.Page{
		ID:       uuid.NewString(),
		Slug:     slug.Make(source),
		Title:    input.Title,
		Content:  input.Content,
		Template: input.Template,
	}

	r.pages[page.ID] = page
	return &page
}

func (r *pageRepository) Get(id string) (*domain.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	page, ok := r.pages[id]
	if !ok {
		return nil, ErrPageNotFound
	}
	return &page, nil
}

// GetBySlug returns the first page with the given slug; duplicates
// resolve to whichever one map iteration reaches first.
func (r *pageRepository) GetBySlug(s string) (*domain.Page, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, page := range r.pages {
		if page.Slug == s {
			p := page
			return &p, nil
		}
	}
	return nil, ErrPageNotFound
}

// List returns all pages in no particular order.
func (r *pageRepository) List() []*domain.Page {
	r.mu.RLock()
	defer r.mu.RUnlock()

	pages := make([]*domain.Page, 0, len(r.pages))
	for _, page := range r.pages {
		p := page
		pages = append(pages, &p)
	}
	return pages
}

func (r *pageRepository) Update(id string, patch PagePatch) (*domain.Page, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	page, ok := r.pages[id]
	if !ok {
		return nil, ErrPageNotFound
	}

	titleChanged := patch.Title != nil && *patch.Title != page.Title

	if patch.Title != nil {
		page.Title = *patch.Title
	}
	if patch.Content != nil {
		page.Content = *patch.Content
	}
	if patch.Template != nil {
		page.Template = *patch.Template
	}

	if patch.Slug != nil {
		page.Slug = slug.Make(*patch.Slug)
	} else if titleChanged {
		page.Slug = slug.Make(page.Title)
	}

	r.pages[id] = page
	return &page, nil
}

// Delete removes the page. Deleting an unknown id is a no-op.
func (r *pageRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.pages, id)
}
