package driving

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// PasteService handles paste events against a live tree.
type PasteService interface {
	// Classify reports whether the event's text is likely markdown.
	Classify(ctx context.Context, event domain.PasteEvent) bool

	// Paste inserts the event's content at the tree's selection and moves
	// the selection to the end of the inserted content.
	Paste(ctx context.Context, tree *domain.Tree, event domain.PasteEvent) (*domain.PasteResult, error)
}
