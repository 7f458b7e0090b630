package driven

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// MarkdownSource reads markdown files from a location and reports changes.
type MarkdownSource interface {
	// Scan returns every markdown file currently present.
	Scan(ctx context.Context) ([]domain.SourceFile, error)

	// Watch streams file changes until ctx is cancelled or Close is called.
	Watch(ctx context.Context) (<-chan domain.FileChange, error)

	// Close releases watch resources.
	Close() error
}
