// Command marktext classifies pastes and converts between markdown and
// the document tree.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/marktext/internal/adapters/driven/config/file"
	"github.com/custodia-labs/marktext/internal/adapters/driven/emoji"
	"github.com/custodia-labs/marktext/internal/adapters/driven/htmlconv"
	"github.com/custodia-labs/marktext/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marktext/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/marktext/internal/adapters/driving/cli"
	"github.com/custodia-labs/marktext/internal/classifier"
	"github.com/custodia-labs/marktext/internal/connectors/filesystem"
	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/services"
	"github.com/custodia-labs/marktext/internal/logger"
	"github.com/custodia-labs/marktext/internal/transformers"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

func main() {
	if err := run(); err != nil {
		// cobra has already printed command errors.
		os.Exit(1)
	}
}

func run() error {
	configStore, err := file.NewConfigStore(os.Getenv("MARKTEXT_CONFIG_DIR"))
	if err != nil {
		return report(fmt.Errorf("opening config: %w", err))
	}
	settingsService := services.NewSettingsService(configStore)
	settings, err := settingsService.Get()
	if err != nil {
		return report(fmt.Errorf("loading settings: %w", err))
	}

	aliases := emoji.Default()
	if path := settings.Emoji.AliasesFile; path != "" {
		if err := aliases.LoadFile(path); err != nil {
			logger.Warn("ignoring emoji aliases: %v", err)
		}
	}
	engine, err := transformers.New(aliases)
	if err != nil {
		return report(fmt.Errorf("building rule registry: %w", err))
	}

	cls, err := classifier.New(classifierPolicy(settings.Classifier))
	if err != nil {
		return report(fmt.Errorf("building classifier: %w", err))
	}

	docStore, closeStore, err := openDocumentStore(settings.Storage)
	if err != nil {
		return report(err)
	}
	defer closeStore()

	paste := services.NewPasteService(cls, engine, htmlconv.New(), settings.Paste)
	docs := services.NewDocumentService(docStore, engine, paste)

	cli.SetVersion(version)
	cli.SetServices(&cli.Services{
		Conversion: services.NewConversionService(engine),
		Paste:      paste,
		Document:   docs,
		Sync:       services.NewSyncService(docs, settings.Sync.MinInterval),
		Settings:   settingsService,
		OpenSource: openSource,
	})
	return cli.Execute()
}

func classifierPolicy(s domain.ClassifierSettings) classifier.Policy {
	policy := classifier.DefaultPolicy()
	if s.ShortLineThreshold > 0 {
		policy.ShortLineThreshold = s.ShortLineThreshold
	}
	if len(s.AllowedTags) > 0 {
		policy.AllowedTags = s.AllowedTags
	}
	return policy
}

func openDocumentStore(s domain.StorageSettings) (driven.DocumentStore, func(), error) {
	if s.Backend == domain.StorageMemory {
		return memory.NewDocumentStore(), func() {}, nil
	}

	store, err := sqlite.NewStore(s.DataDir)
	if err != nil {
		return nil, nil, fmt.Errorf("opening document store: %w", err)
	}
	return store.DocumentStore(), func() {
		if err := store.Close(); err != nil {
			logger.Warn("closing document store: %v", err)
		}
	}, nil
}

func openSource(dir string) (driven.MarkdownSource, error) {
	connector := filesystem.New(filesystem.ResolvePath(dir))
	if err := connector.Validate(); err != nil {
		return nil, err
	}
	return connector, nil
}

func report(err error) error {
	logger.Error("%v", err)
	return err
}
