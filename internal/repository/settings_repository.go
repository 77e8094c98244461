package repository

import (
	"sync"

	"storefront/internal/domain"
)

// SettingsPatch is a partial update to the site settings singleton.
// PaymentGateways is replaced wholesale when supplied, never merged
// entry by entry.
type SettingsPatch struct {
	HeaderHTML      *string
	FooterHTML      *string
	PaymentGateways *[]domain.PaymentGateway
}

// SettingsRepository holds the single SiteSettings value for the
// lifetime of the store. Callers always receive a copy; the only way
// to change the settings is Update.
type SettingsRepository interface {
	Get() domain.SiteSettings
	Update(patch SettingsPatch) domain.SiteSettings
}

type settingsRepository struct {
	mu       sync.RWMutex
	settings domain.SiteSettings
}

// NewSettingsRepository creates a settings holder seeded with initial.
func NewSettingsRepository(initial domain.SiteSettings) SettingsRepository {
	return &settingsRepository{settings: initial}
}

func (r *settingsRepository) Get() domain.SiteSettings {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return cloneSettings(r.settings)
}

func (r *settingsRepository) Update(patch SettingsPatch) domain.SiteSettings {
	r.mu.Lock()
	defer r.mu.Unlock()

	if patch.HeaderHTML != nil {
		r.settings.HeaderHTML = *patch.HeaderHTML
	}
	if patch.FooterHTML != nil {
		r.settings.FooterHTML = *patch.FooterHTML
	}
	if patch.PaymentGateways != nil {
		r.settings.PaymentGateways = *patch.PaymentGateways
	}

	return cloneSettings(r.settings)
}

func cloneSettings(s domain.SiteSettings) domain.SiteSettings {
	out := s
	if s.PaymentGateways != nil {
		out.PaymentGateways = make([]domain.PaymentGateway, len(s.PaymentGateways))
		for i, gw := range s.PaymentGateways {
			g := gw
			if gw.Metadata != nil {
				g.Metadata = make(map[string]string, len(gw.Metadata))
				for k, v := range gw.Metadata {
					g.Metadata[k] = v
				}
			}
			out.PaymentGateways[i] = g
		}
	}
	return out
}
