package driving

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
)

// SyncService imports markdown files from a source into the store.
type SyncService interface {
	// Sync imports every file the source currently holds.
	Sync(ctx context.Context, source driven.MarkdownSource) (int, error)

	// Watch re-imports files as they change until ctx is cancelled.
	// onChange, when non-nil, is called after each handled change.
	Watch(ctx context.Context, source driven.MarkdownSource, onChange func(domain.FileChange, error)) error
}
