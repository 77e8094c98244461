package domain

import (
	"github.com/shopspring/decimal"
)

// MediaItem is one image attached to a product.
type MediaItem struct {
	ID  string `json:"id"`
	URL string `json:"url"`
	Alt string `json:"alt"`
}

// Product represents a product in the catalog
type Product struct {
	ID             string            `json:"id"`
	Slug           string            `json:"slug"`
	Name           string            `json:"name"`
	Description    string            `json:"description"`
	Price          decimal.Decimal   `json:"price"`
	Currency       string            `json:"currency"`
	Images         []MediaItem       `json:"images"`
	AdditionalInfo map[string]string `json:"additional_info"`
	CategoryIDs    []string          `json:"category_ids"`
	Template       string            `json:"template,omitempty"`
}

// Category represents a product category. ParentID is optional and
// self-referential; nothing prevents a cycle (see DESIGN.md).
type Category struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	ParentID    string `json:"parent_id,omitempty"`
}

// Page is an editable content page (about, contact, ...).
type Page struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Content  string `json:"content"`
	Template string `json:"template"`
}

// PaymentGateway holds opaque gateway configuration. Keys and metadata
// are stored as-is; nothing in this service ever calls a gateway.
type PaymentGateway struct {
	Provider  string            `json:"provider"`
	Enabled   bool              `json:"enabled"`
	PublicKey string            `json:"public_key,omitempty"`
	SecretKey string            `json:"secret_key,omitempty"`
	Metadata  map[string]string `json:"metadata,omitempty"`
}

// SiteSettings is the storefront-wide singleton value.
type SiteSettings struct {
	HeaderHTML      string           `json:"header_html"`
	FooterHTML      string           `json:"footer_html"`
	PaymentGateways []PaymentGateway `json:"payment_gateways"`
}
