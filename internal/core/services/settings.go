package services

import (
	"github.com/medbank-labs/medbank-cli/internal/core/domain"
	"github.com/medbank-labs/medbank-cli/internal/core/ports/driven"
)

// SettingsService maps the raw config store onto typed policies.
// Invalid stored values fall back to defaults rather than failing.
type SettingsService struct {
	config driven.ConfigStore
}

// NewSettingsService creates a settings service over a config store.
func NewSettingsService(config driven.ConfigStore) *SettingsService {
	return &SettingsService{config: config}
}

// ValidationPolicy returns the configured validator policy.
func (s *SettingsService) ValidationPolicy() domain.ValidationPolicy {
	policy := domain.DefaultValidationPolicy()
	if s.config == nil {
		return policy
	}

	policy.RequireAllLevels = s.config.GetBool(driven.KeyRequireAllLevels, policy.RequireAllLevels)

	if raw := domain.BilingualPolicy(s.config.GetString(driven.KeyBilingualPolicy)); raw.IsValid() {
		policy.Bilingual = raw
	}
	return policy
}

// IntegrityPolicy returns the configured dangling-reference policy.
func (s *SettingsService) IntegrityPolicy() domain.IntegrityPolicy {
	if s.config != nil {
		if raw := domain.IntegrityPolicy(s.config.GetString(driven.KeyIntegrityPolicy)); raw.IsValid() {
			return raw
		}
	}
	return domain.IntegrityWarn
}

// ContentDir returns the configured content directory, empty when unset.
func (s *SettingsService) ContentDir() string {
	if s.config == nil {
		return ""
	}
	return s.config.GetString(driven.KeyContentDir)
}
