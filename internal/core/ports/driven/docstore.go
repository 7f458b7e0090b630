package driven

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// DocumentStore persists documents in their exported markdown form.
// Backed by SQLite, or memory for tests and ephemeral sessions.
type DocumentStore interface {
	// Save stores or updates a document.
	Save(ctx context.Context, doc *domain.Document) error

	// Get retrieves a document by ID.
	// Returns domain.ErrNotFound if no such document exists.
	Get(ctx context.Context, id string) (*domain.Document, error)

	// GetByURI retrieves the document imported from uri.
	// Returns domain.ErrNotFound if no such document exists.
	GetByURI(ctx context.Context, uri string) (*domain.Document, error)

	// List returns all documents ordered by title.
	List(ctx context.Context) ([]domain.Document, error)

	// Delete removes a document. Deleting a missing document is not an error.
	Delete(ctx context.Context, id string) error
}
