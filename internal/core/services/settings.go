package services

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get returns the current settings. Missing or invalid values fall back
// to defaults.
func (s *SettingsService) Get() (*domain.Settings, error) {
	settings := domain.DefaultSettings()

	if v := s.configStore.GetInt(domain.KeyShortLineThreshold); v > 0 {
		settings.Classifier.ShortLineThreshold = v
	}
	settings.Classifier.AllowedTags = s.configStore.GetStringSlice(domain.KeyAllowedTags)
	settings.Paste.ConvertHTML = s.configStore.GetBool(domain.KeyConvertHTML)
	settings.Emoji.AliasesFile = s.configStore.GetString(domain.KeyAliasesFile)

	if b := domain.StorageBackend(s.configStore.GetString(domain.KeyStorageBackend)); b.IsValid() {
		settings.Storage.Backend = b
	}
	settings.Storage.DataDir = s.configStore.GetString(domain.KeyDataDir)

	if _, ok := s.configStore.Get(domain.KeySyncInterval); ok {
		if ms := s.configStore.GetInt(domain.KeySyncInterval); ms >= 0 {
			settings.Sync.MinInterval = time.Duration(ms) * time.Millisecond
		}
	}
	return &settings, nil
}

// Keys lists the configuration keys Set accepts.
func (s *SettingsService) Keys() []string {
	return []string{
		domain.KeyShortLineThreshold,
		domain.KeyAllowedTags,
		domain.KeyConvertHTML,
		domain.KeyAliasesFile,
		domain.KeyStorageBackend,
		domain.KeyDataDir,
		domain.KeySyncInterval,
	}
}

// Set validates value for key and stores it.
func (s *SettingsService) Set(key, value string) error {
	parsed, err := parseSetting(key, value)
	if err != nil {
		return err
	}
	return s.configStore.Set(key, parsed)
}

func parseSetting(key, value string) (any, error) {
	value = strings.TrimSpace(value)
	switch key {
	case domain.KeyShortLineThreshold:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("%s must be a positive integer: %w", key, domain.ErrInvalidInput)
		}
		return n, nil
	case domain.KeySyncInterval:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return nil, fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		return n, nil
	case domain.KeyConvertHTML:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("%s must be true or false: %w", key, domain.ErrInvalidInput)
		}
		return b, nil
	case domain.KeyAllowedTags:
		var tags []string
		for _, t := range strings.Split(value, ",") {
			if t = strings.ToLower(strings.TrimSpace(t)); t != "" {
				tags = append(tags, t)
			}
		}
		return tags, nil
	case domain.KeyStorageBackend:
		if !domain.StorageBackend(value).IsValid() {
			return nil, fmt.Errorf("unknown storage backend %q: %w", value, domain.ErrInvalidInput)
		}
		return value, nil
	case domain.KeyAliasesFile, domain.KeyDataDir:
		return value, nil
	default:
		return nil, fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
	}
}
