package services

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Ensure DocumentService implements the interface.
var _ driving.DocumentService = (*DocumentService)(nil)

const untitled = "Untitled"

// DocumentService manages stored documents. Markdown is normalised by a
// round-trip through the codec before it is stored.
type DocumentService struct {
	docStore driven.DocumentStore
	codec    driven.MarkdownCodec
	paste    driving.PasteService
	now      func() time.Time
}

// NewDocumentService creates a new document service. paste may be nil,
// which disables Paste.
func NewDocumentService(
	docStore driven.DocumentStore,
	codec driven.MarkdownCodec,
	paste driving.PasteService,
) *DocumentService {
	return &DocumentService{
		docStore: docStore,
		codec:    codec,
		paste:    paste,
		now:      time.Now,
	}
}

// Create stores markdown as a new document. An empty title is taken from
// the first heading.
func (s *DocumentService) Create(ctx context.Context, title, markdown string) (*domain.Document, error) {
	tree, normalised, err := s.normalise(markdown)
	if err != nil {
		return nil, err
	}
	if title == "" {
		title = titleOf(tree, untitled)
	}
	now := s.now()
	doc := &domain.Document{
		ID:        uuid.New().String(),
		Title:     title,
		Markdown:  normalised,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.docStore.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	return doc, nil
}

// ImportFile reads a markdown file and stores it.
func (s *DocumentService) ImportFile(ctx context.Context, path string) (*domain.Document, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolving %s: %w", path, err)
	}
	content, err := os.ReadFile(abs)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return s.ImportContent(ctx, abs, string(content))
}

// ImportContent stores markdown read from uri, keeping the ID and creation
// time of an existing document for the same uri.
func (s *DocumentService) ImportContent(ctx context.Context, uri, markdown string) (*domain.Document, error) {
	if uri == "" {
		return nil, fmt.Errorf("import content: %w", domain.ErrInvalidInput)
	}
	tree, normalised, err := s.normalise(markdown)
	if err != nil {
		return nil, err
	}

	now := s.now()
	doc, err := s.docStore.GetByURI(ctx, uri)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		doc = &domain.Document{ID: uuid.New().String(), URI: uri, CreatedAt: now}
	case err != nil:
		return nil, fmt.Errorf("looking up %s: %w", uri, err)
	}
	base := strings.TrimSuffix(filepath.Base(uri), filepath.Ext(uri))
	doc.Title = titleOf(tree, base)
	doc.Markdown = normalised
	doc.UpdatedAt = now

	if err := s.docStore.Save(ctx, doc); err != nil {
		return nil, fmt.Errorf("saving document: %w", err)
	}
	logger.Debug("imported %s as %s", uri, doc.ID)
	return doc, nil
}

// DeleteByURI removes the document imported from uri, if any.
func (s *DocumentService) DeleteByURI(ctx context.Context, uri string) error {
	doc, err := s.docStore.GetByURI(ctx, uri)
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("looking up %s: %w", uri, err)
	}
	return s.docStore.Delete(ctx, doc.ID)
}

// Get retrieves a document by ID.
func (s *DocumentService) Get(ctx context.Context, id string) (*domain.Document, error) {
	return s.docStore.Get(ctx, id)
}

// Tree rebuilds the tree of a stored document.
func (s *DocumentService) Tree(ctx context.Context, id string) (*domain.Tree, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return s.codec.Import(doc.Markdown)
}

// List returns all stored documents.
func (s *DocumentService) List(ctx context.Context) ([]domain.Document, error) {
	return s.docStore.List(ctx)
}

// Delete removes a document.
func (s *DocumentService) Delete(ctx context.Context, id string) error {
	return s.docStore.Delete(ctx, id)
}

// Export returns the markdown of a stored document.
func (s *DocumentService) Export(ctx context.Context, id string) (string, error) {
	tree, err := s.Tree(ctx, id)
	if err != nil {
		return "", err
	}
	return s.codec.Export(tree)
}

// Paste pastes event at the end of a stored document and saves it.
func (s *DocumentService) Paste(ctx context.Context, id string, event domain.PasteEvent) (*domain.PasteResult, error) {
	if s.paste == nil {
		return nil, domain.ErrNotImplemented
	}
	doc, tree, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}
	if last := tree.LastChild(tree.Root()); last != domain.NoNode {
		tree.SelectEnd(last)
	}

	result, err := s.paste.Paste(ctx, tree, event)
	if err != nil {
		return nil, err
	}
	if err := s.store(ctx, doc, tree); err != nil {
		return nil, err
	}
	return result, nil
}

// AppendLine appends one typed line in interactive mode, so shortcuts such
// as a trailing "---" take effect as they would in the editor.
func (s *DocumentService) AppendLine(ctx context.Context, id, line string) (*domain.Document, error) {
	if strings.ContainsAny(line, "\r\n") {
		return nil, fmt.Errorf("append line: %w", domain.ErrInvalidInput)
	}
	doc, tree, err := s.load(ctx, id)
	if err != nil {
		return nil, err
	}

	p := tree.NewNode(domain.KindParagraph)
	if line != "" {
		run := tree.NewText(line, 0)
		if err := tree.Append(p.ID, run.ID); err != nil {
			return nil, err
		}
	}
	if err := tree.Append(tree.Root(), p.ID); err != nil {
		return nil, err
	}
	if _, err := s.codec.ImportLine(tree, p.ID, true); err != nil {
		return nil, fmt.Errorf("append line: %w", err)
	}
	// The caret paragraph left behind by a shortcut is not content.
	if tree.Attached(p.ID) && tree.TextContent(p.ID) == "" && len(tree.Children(p.ID)) == 0 {
		if err := tree.Remove(p.ID); err != nil {
			return nil, err
		}
	}

	if err := s.store(ctx, doc, tree); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) load(ctx context.Context, id string) (*domain.Document, *domain.Tree, error) {
	doc, err := s.docStore.Get(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	tree, err := s.codec.Import(doc.Markdown)
	if err != nil {
		return nil, nil, fmt.Errorf("rebuilding %s: %w", id, err)
	}
	return doc, tree, nil
}

func (s *DocumentService) store(ctx context.Context, doc *domain.Document, tree *domain.Tree) error {
	md, err := s.codec.Export(tree)
	if err != nil {
		return fmt.Errorf("exporting %s: %w", doc.ID, err)
	}
	doc.Markdown = md
	doc.UpdatedAt = s.now()
	if err := s.docStore.Save(ctx, doc); err != nil {
		return fmt.Errorf("saving document: %w", err)
	}
	return nil
}

func (s *DocumentService) normalise(markdown string) (*domain.Tree, string, error) {
	tree, err := s.codec.Import(markdown)
	if err != nil {
		return nil, "", fmt.Errorf("importing markdown: %w", err)
	}
	out, err := s.codec.Export(tree)
	if err != nil {
		return nil, "", fmt.Errorf("exporting markdown: %w", err)
	}
	return tree, out, nil
}

// titleOf returns the text of the first heading, or fallback.
func titleOf(tree *domain.Tree, fallback string) string {
	for _, c := range tree.Children(tree.Root()) {
		if tree.Node(c).Kind == domain.KindHeading {
			if title := strings.TrimSpace(tree.TextContent(c)); title != "" {
				return title
			}
		}
	}
	if fallback == "" {
		return untitled
	}
	return fallback
}
