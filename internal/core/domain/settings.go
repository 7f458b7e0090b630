package domain

import "time"

// StorageBackend selects where documents are persisted.
type StorageBackend string

// Available storage backends.
const (
	// StorageSQLite persists documents in a local SQLite database.
	StorageSQLite StorageBackend = "sqlite"

	// StorageMemory keeps documents for the lifetime of the process.
	StorageMemory StorageBackend = "memory"
)

// IsValid returns true if the backend is recognised.
func (b StorageBackend) IsValid() bool {
	switch b {
	case StorageSQLite, StorageMemory:
		return true
	default:
		return false
	}
}

// String returns the string representation.
func (b StorageBackend) String() string {
	return string(b)
}

// Configuration keys, in dot notation as flattened from the TOML file.
const (
	KeyShortLineThreshold = "classifier.short_line_threshold"
	KeyAllowedTags        = "classifier.allowed_tags"
	KeyConvertHTML        = "paste.convert_html"
	KeyAliasesFile        = "emoji.aliases_file"
	KeyStorageBackend     = "storage.backend"
	KeyDataDir            = "storage.data_dir"
	KeySyncInterval       = "sync.min_interval_ms"
)

// ClassifierSettings tunes the paste classifier.
type ClassifierSettings struct {
	// ShortLineThreshold is the rune length below which a single line is
	// only accepted on a high-precision pattern.
	ShortLineThreshold int

	// AllowedTags lists the companion payload tags that do not count as
	// real structure. Empty means the built-in list.
	AllowedTags []string
}

// PasteSettings tunes paste handling.
type PasteSettings struct {
	// ConvertHTML converts a structured companion payload to markdown
	// when the plain text is rejected because of it.
	ConvertHTML bool
}

// EmojiSettings configures the alias table.
type EmojiSettings struct {
	// AliasesFile is an optional TOML file of extra name = glyph pairs.
	AliasesFile string
}

// StorageSettings configures document persistence.
type StorageSettings struct {
	Backend StorageBackend
	DataDir string
}

// SyncSettings configures folder sync.
type SyncSettings struct {
	// MinInterval is the minimum spacing between re-imports while watching.
	MinInterval time.Duration
}

// Settings is the full application configuration.
type Settings struct {
	Classifier ClassifierSettings
	Paste      PasteSettings
	Emoji      EmojiSettings
	Storage    StorageSettings
	Sync       SyncSettings
}

// DefaultShortLineThreshold is the default single-line length threshold.
const DefaultShortLineThreshold = 80

// DefaultSyncInterval is the default spacing between watch re-imports.
const DefaultSyncInterval = 250 * time.Millisecond

// DefaultSettings returns the settings used when no configuration exists.
func DefaultSettings() Settings {
	return Settings{
		Classifier: ClassifierSettings{
			ShortLineThreshold: DefaultShortLineThreshold,
		},
		Storage: StorageSettings{
			Backend: StorageSQLite,
		},
		Sync: SyncSettings{
			MinInterval: DefaultSyncInterval,
		},
	}
}
