package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/marktext/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marktext/internal/classifier"
	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/transformers"
)

var errMock = errors.New("mock failure")

// newCodec returns the real engine without an emoji table.
func newCodec(t *testing.T) *transformers.Engine {
	t.Helper()
	engine, err := transformers.New(nil)
	require.NoError(t, err)
	return engine
}

// newServices wires the document service the way the CLI does, over a
// memory store.
func newServices(t *testing.T) (*DocumentService, *memory.DocumentStore) {
	t.Helper()
	codec := newCodec(t)
	store := memory.NewDocumentStore()
	cls, err := classifier.New(classifier.DefaultPolicy())
	require.NoError(t, err)
	paste := NewPasteService(cls, codec, nil, domain.PasteSettings{})
	return NewDocumentService(store, codec, paste), store
}

// mockConverter is a canned HTML converter.
type mockConverter struct {
	out   string
	err   error
	calls int
}

func (m *mockConverter) ToMarkdown(string) (string, error) {
	m.calls++
	return m.out, m.err
}

// mockSource is a scripted markdown source.
type mockSource struct {
	files    []domain.SourceFile
	scanErr  error
	changes  chan domain.FileChange
	watchErr error
}

func (m *mockSource) Scan(context.Context) ([]domain.SourceFile, error) {
	return m.files, m.scanErr
}

func (m *mockSource) Watch(context.Context) (<-chan domain.FileChange, error) {
	if m.watchErr != nil {
		return nil, m.watchErr
	}
	return m.changes, nil
}

func (m *mockSource) Close() error { return nil }

// failingStore wraps the memory store and fails saves on demand.
type failingStore struct {
	*memory.DocumentStore
	saveErr error
}

func (f *failingStore) Save(ctx context.Context, doc *domain.Document) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	return f.DocumentStore.Save(ctx, doc)
}
