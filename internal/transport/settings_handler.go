package transport

import (
	"net/http"

	"storefront/internal/domain"
	"storefront/internal/middleware"
	"storefront/internal/repository"
	"storefront/internal/store"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// PaymentGatewayPayload is one gateway entry in a settings update.
// Keys and metadata are stored opaquely; nothing validates them beyond
// the provider name.
type PaymentGatewayPayload struct {
	Provider  string            `json:"provider" validate:"required"`
	Enabled   bool              `json:"enabled"`
	PublicKey string            `json:"public_key"`
	SecretKey string            `json:"secret_key"`
	Metadata  map[string]string `json:"metadata"`
}

// UpdateSettingsRequest is a partial update of the site settings.
// PaymentGateways, when supplied, replaces the stored list wholesale.
type UpdateSettingsRequest struct {
	HeaderHTML      *string                  `json:"header_html"`
	FooterHTML      *string                  `json:"footer_html"`
	PaymentGateways *[]PaymentGatewayPayload `json:"payment_gateways" validate:"omitempty,dive"`
}

// SettingsHandler handles HTTP requests for site settings
type SettingsHandler struct {
	catalog *store.Catalog
	logger  *zap.Logger
}

// NewSettingsHandler creates a new SettingsHandler
func NewSettingsHandler(catalog *store.Catalog, logger *zap.Logger) *SettingsHandler {
	return &SettingsHandler{catalog: catalog, logger: logger}
}

// RegisterRoutes registers the settings routes
func (h *SettingsHandler) RegisterRoutes(r chi.Router) {
	r.Route("/api/settings", func(r chi.Router) {
		r.Get("/", h.Get)
		r.Put("/", h.Update)
	})
}

// Get returns the current site settings
func (h *SettingsHandler) Get(w http.ResponseWriter, r *http.Request) {
	middleware.RespondWithJSON(w, http.StatusOK, h.catalog.Settings())
}

// Update merges the supplied fields into the site settings
func (h *SettingsHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req UpdateSettingsRequest
	if err := middleware.DecodeAndValidate(r, &req); err != nil {
		if validationErrors := middleware.FormatValidationErrors(err); len(validationErrors) > 0 {
			middleware.RespondWithValidationErrors(w, validationErrors)
			return
		}
		middleware.RespondWithError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	patch := repository.SettingsPatch{
		HeaderHTML: req.HeaderHTML,
		FooterHTML: req.FooterHTML,
	}
	if req.PaymentGateways != nil {
		gateways := make([]domain.PaymentGateway, len(*req.PaymentGateways))
		for i, gw := range *req.PaymentGateways {
			gateways[i] = domain.PaymentGateway{
				Provider:  gw.Provider,
				Enabled:   gw.Enabled,
				PublicKey: gw.PublicKey,
				SecretKey: gw.SecretKey,
				Metadata:  gw.Metadata,
			}
		}
		patch.PaymentGateways = &gateways
	}

	settings := h.catalog.UpdateSettings(patch)

	h.logger.Info("Site settings updated",
		zap.Int("payment_gateways", len(settings.PaymentGateways)),
	)

	middleware.RespondWithJSON(w, http.StatusOK, settings)
}
