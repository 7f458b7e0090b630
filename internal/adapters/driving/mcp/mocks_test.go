package mcp

import (
	"context"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// mockConversionService is a mock implementation of driving.ConversionService.
// Import produces a tree holding one paragraph with the input text.
type mockConversionService struct {
	exported string
	err      error
}

func (m *mockConversionService) Import(_ context.Context, markdown string) (*domain.Tree, error) {
	if m.err != nil {
		return nil, m.err
	}
	tree := domain.NewTree()
	p := tree.NewNode(domain.KindParagraph)
	run := tree.NewText(markdown, 0)
	_ = tree.Append(p.ID, run.ID)
	_ = tree.Append(tree.Root(), p.ID)
	return tree, nil
}

func (m *mockConversionService) Export(_ context.Context, _ *domain.Tree) (string, error) {
	return m.exported, m.err
}

func (m *mockConversionService) RoundTrip(_ context.Context, _ string) (string, error) {
	return m.exported, m.err
}

// mockPasteService is a mock implementation of driving.PasteService.
type mockPasteService struct {
	markdown  bool
	lastEvent domain.PasteEvent
}

func (m *mockPasteService) Classify(_ context.Context, event domain.PasteEvent) bool {
	m.lastEvent = event
	return m.markdown
}

func (m *mockPasteService) Paste(_ context.Context, _ *domain.Tree, _ domain.PasteEvent) (*domain.PasteResult, error) {
	return &domain.PasteResult{Mode: domain.PastePlain}, nil
}

// mockDocumentService is a mock implementation of driving.DocumentService.
type mockDocumentService struct {
	documents []domain.Document
	document  *domain.Document
	markdown  string
	result    *domain.PasteResult
	err       error
	exportErr error
}

func (m *mockDocumentService) Create(_ context.Context, _, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) ImportFile(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) ImportContent(_ context.Context, _, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) DeleteByURI(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Get(_ context.Context, _ string) (*domain.Document, error) {
	return m.document, m.err
}

func (m *mockDocumentService) Tree(_ context.Context, _ string) (*domain.Tree, error) {
	return domain.NewTree(), m.err
}

func (m *mockDocumentService) List(_ context.Context) ([]domain.Document, error) {
	return m.documents, m.err
}

func (m *mockDocumentService) Delete(_ context.Context, _ string) error {
	return m.err
}

func (m *mockDocumentService) Export(_ context.Context, _ string) (string, error) {
	if m.exportErr != nil {
		return "", m.exportErr
	}
	return m.markdown, m.err
}

func (m *mockDocumentService) Paste(_ context.Context, _ string, _ domain.PasteEvent) (*domain.PasteResult, error) {
	return m.result, m.err
}

func (m *mockDocumentService) AppendLine(_ context.Context, _, _ string) (*domain.Document, error) {
	return m.document, m.err
}

// validPorts returns the minimum ports NewServer accepts.
func validPorts() *Ports {
	return &Ports{
		Conversion: &mockConversionService{},
		Paste:      &mockPasteService{},
	}
}
