package driving

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// DocumentService manages stored documents.
type DocumentService interface {
	// Create stores markdown as a new document, normalised by a round-trip.
	Create(ctx context.Context, title, markdown string) (*domain.Document, error)

	// ImportFile reads a markdown file and stores it, updating the existing
	// document for the same path.
	ImportFile(ctx context.Context, path string) (*domain.Document, error)

	// ImportContent stores markdown read from uri, updating the existing
	// document for that uri.
	ImportContent(ctx context.Context, uri, markdown string) (*domain.Document, error)

	// DeleteByURI removes the document imported from uri, if any.
	DeleteByURI(ctx context.Context, uri string) error

	// Get retrieves a document by ID.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// Tree rebuilds the document tree of a stored document.
	Tree(ctx context.Context, id string) (*domain.Tree, error)

	// List returns all stored documents.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document.
	Delete(ctx context.Context, id string) error

	// Export returns the markdown of a stored document.
	Export(ctx context.Context, id string) (string, error)

	// Paste pastes an event at the end of a stored document and saves it.
	Paste(ctx context.Context, id string, event domain.PasteEvent) (*domain.PasteResult, error)

	// AppendLine appends one typed line, applying interactive shortcuts.
	AppendLine(ctx context.Context, id, line string) (*domain.Document, error)
}
