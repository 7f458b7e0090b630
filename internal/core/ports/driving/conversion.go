package driving

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// ConversionService converts between trees and markdown text.
type ConversionService interface {
	// Import parses markdown into a fresh tree.
	Import(ctx context.Context, markdown string) (*domain.Tree, error)

	// Export serialises a tree to markdown.
	Export(ctx context.Context, tree *domain.Tree) (string, error)

	// RoundTrip imports then exports markdown, yielding its normalised form.
	RoundTrip(ctx context.Context, markdown string) (string, error)
}
