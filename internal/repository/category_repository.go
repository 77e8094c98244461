package repository

import (
	"errors"
	"sync"

	"storefront/internal/domain"
	"storefront/internal/slug"

	"github.com/google/uuid"
)

var (
	ErrCategoryNotFound = errors.New("category not found")
)

// CategoryInput holds the fields accepted when creating a category.
type CategoryInput struct {
	Slug        string
	Name        string
	Description string
	ParentID    string
}

// CategoryPatch is a partial update; nil fields keep the stored value.
type CategoryPatch struct {
	Slug        *string
	Name        *string
	Description *string
	ParentID    *string
}

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	Create(input CategoryInput) *domain.Category
	Get(id string) (*domain.Category, error)
	List() []*domain.Category
	Update(id string, patch CategoryPatch) (*domain.Category, error)
	Delete(id string)
}

type categoryRepository struct {
	mu         sync.RWMutex
	categories map[string]domain.Category
}

// NewCategoryRepository creates a new in-memory CategoryRepository
func NewCategoryRepository() CategoryRepository {
	return &categoryRepository{
		categories: make(map[string]domain.Category),
	}
}

func (r *categoryRepository) Create(input CategoryInput) *domain.Category {
	r.mu.Lock()
	defer r.mu.Unlock()

	source := input.Slug
	if source == "" {
		source = input.Name
	}

	category := domain.Category{
		ID:          uuid.NewString(),
		Slug:        slug.Make(source),
		Name:        input.Name,
		Description: input.Description,
		ParentID:    input.ParentID,
	}

	r.categories[category.ID] = category
	return &category
}

func (r *categoryRepository) Get(id string) (*domain.Category, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}
	return &category, nil
}

// List returns all categories in no particular order.
func (r *categoryRepository) List() []*domain.Category {
	r.mu.RLock()
	defer r.mu.RUnlock()

	categories := make([]*domain.Category, 0, len(r.categories))
	for _, category := range r.categories {
		c := category
		categories = append(categories, &c)
	}
	return categories
}

func (r *categoryRepository) Update(id string, patch CategoryPatch) (*domain.Category, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	category, ok := r.categories[id]
	if !ok {
		return nil, ErrCategoryNotFound
	}

	nameChanged := patch.Name != nil && *patch.Name != category.Name

	if patch.Name != nil {
		category.Name = *patch.Name
	}
	if patch.Description != nil {
		category.Description = *patch.Description
	}
	if patch.ParentID != nil {
		category.ParentID = *patch.ParentID
	}

	if patch.Slug != nil {
		category.Slug = slug.Make(*patch.Slug)
	} else if nameChanged {
		category.Slug = slug.Make(category.Name)
	}

	r.categories[id] = category
	return &category, nil
}

// Delete removes the category. Deleting an unknown id is a no-op.
// Stripping the id from products is the catalog store's job.
func (r *categoryRepository) Delete(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.categories, id)
}
