package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore,
// used for ephemeral sessions and tests.
type DocumentStore struct {
	mu        sync.RWMutex
	documents map[string]domain.Document
}

// NewDocumentStore creates a new in-memory document store.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{
		documents: make(map[string]domain.Document),
	}
}

// Save stores or updates a document. A document imported from a URI
// replaces any other document holding the same URI.
func (s *DocumentStore) Save(_ context.Context, doc *domain.Document) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("save document: %w", domain.ErrInvalidInput)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if doc.URI != "" {
		for id, existing := range s.documents {
			if id != doc.ID && existing.URI == doc.URI {
				delete(s.documents, id)
			}
		}
	}
	s.documents[doc.ID] = copyDocument(*doc)
	return nil
}

// Get retrieves a document by ID.
func (s *DocumentStore) Get(_ context.Context, id string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	doc, ok := s.documents[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	out := copyDocument(doc)
	return &out, nil
}

// GetByURI retrieves the document imported from uri.
func (s *DocumentStore) GetByURI(_ context.Context, uri string) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, doc := range s.documents {
		if uri != "" && doc.URI == uri {
			out := copyDocument(doc)
			return &out, nil
		}
	}
	return nil, domain.ErrNotFound
}

// List returns all documents ordered by title, then ID.
func (s *DocumentStore) List(_ context.Context) ([]domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	result := make([]domain.Document, 0, len(s.documents))
	for _, doc := range s.documents {
		result = append(result, copyDocument(doc))
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Title != result[j].Title {
			return result[i].Title < result[j].Title
		}
		return result[i].ID < result[j].ID
	})
	return result, nil
}

// Delete removes a document.
func (s *DocumentStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.documents, id)
	return nil
}

func copyDocument(doc domain.Document) domain.Document {
	if doc.Metadata != nil {
		meta := make(map[string]any, len(doc.Metadata))
		for k, v := range doc.Metadata {
			meta[k] = v
		}
		doc.Metadata = meta
	}
	return doc
}
