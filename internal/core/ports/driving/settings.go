package driving

import "github.com/custodia-labs/marktext/internal/core/domain"

// SettingsService reads and writes application settings.
type SettingsService interface {
	// Get returns the current settings, defaults filled in.
	Get() (*domain.Settings, error)

	// Set validates and stores one configuration key.
	Set(key, value string) error
}
