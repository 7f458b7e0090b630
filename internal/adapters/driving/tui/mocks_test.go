package tui

import (
	"context"
	"errors"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
)

var errMock = errors.New("mock error")

// mockPasteService appends one paragraph per block to the tree.
type mockPasteService struct {
	likely    bool
	mode      domain.PasteMode
	blocks    int
	err       error
	lastEvent domain.PasteEvent
}

var _ driving.PasteService = (*mockPasteService)(nil)

func (m *mockPasteService) Classify(_ context.Context, event domain.PasteEvent) bool {
	m.lastEvent = event
	return m.likely
}

func (m *mockPasteService) Paste(
	_ context.Context, tree *domain.Tree, event domain.PasteEvent,
) (*domain.PasteResult, error) {
	m.lastEvent = event
	if m.err != nil {
		return nil, m.err
	}
	result := &domain.PasteResult{Mode: m.mode}
	for i := 0; i < m.blocks; i++ {
		p := tree.NewNode(domain.KindParagraph)
		if err := tree.Append(tree.Root(), p.ID); err != nil {
			return nil, err
		}
		result.Inserted = append(result.Inserted, p.ID)
	}
	return result, nil
}

type mockConversionService struct {
	markdown  string
	exportErr error
	exported  int
}

var _ driving.ConversionService = (*mockConversionService)(nil)

func (m *mockConversionService) Import(context.Context, string) (*domain.Tree, error) {
	return domain.NewTree(), nil
}

func (m *mockConversionService) Export(_ context.Context, tree *domain.Tree) (string, error) {
	m.exported = len(tree.Children(tree.Root()))
	return m.markdown, m.exportErr
}

func (m *mockConversionService) RoundTrip(_ context.Context, markdown string) (string, error) {
	return markdown, nil
}

// mockDocumentService records Create calls. Other methods are unused by
// the pad.
type mockDocumentService struct {
	driving.DocumentService

	createErr    error
	lastMarkdown string
}

func (m *mockDocumentService) Create(_ context.Context, title, markdown string) (*domain.Document, error) {
	if m.createErr != nil {
		return nil, m.createErr
	}
	m.lastMarkdown = markdown
	return &domain.Document{ID: "doc-1", Title: title, Markdown: markdown}, nil
}

func newTestPorts() (*Ports, *mockPasteService, *mockConversionService) {
	paste := &mockPasteService{likely: true, mode: domain.PasteMarkdown, blocks: 2}
	conversion := &mockConversionService{markdown: "# Title\n\ntext"}
	return NewPorts(paste, conversion), paste, conversion
}
