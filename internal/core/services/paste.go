package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/core/ports/driving"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Ensure PasteService implements the interface.
var _ driving.PasteService = (*PasteService)(nil)

// structureDetector is implemented by classifiers that can tell why a
// paste was rejected.
type structureDetector interface {
	HasStructure(html string) bool
}

// PasteService decides how pasted content enters a tree.
type PasteService struct {
	classifier driven.PasteClassifier
	codec      driven.MarkdownCodec
	converter  driven.HTMLConverter // optional
	settings   domain.PasteSettings
}

// NewPasteService creates a new paste service. converter may be nil, in
// which case rich payloads are never converted.
func NewPasteService(
	classifier driven.PasteClassifier,
	codec driven.MarkdownCodec,
	converter driven.HTMLConverter,
	settings domain.PasteSettings,
) *PasteService {
	return &PasteService{
		classifier: classifier,
		codec:      codec,
		converter:  converter,
		settings:   settings,
	}
}

// Classify reports whether the event's text is likely markdown.
func (s *PasteService) Classify(_ context.Context, event domain.PasteEvent) bool {
	return s.classifier.IsLikelyMarkdown(event.Text, event.HTML)
}

// Paste inserts the event at the tree's selection.
func (s *PasteService) Paste(ctx context.Context, tree *domain.Tree, event domain.PasteEvent) (*domain.PasteResult, error) {
	if tree == nil {
		return nil, fmt.Errorf("paste: %w", domain.ErrInvalidInput)
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(event.Text) == "" && strings.TrimSpace(event.HTML) == "" {
		return &domain.PasteResult{Mode: domain.PastePlain, Selection: tree.Selection()}, nil
	}

	if s.Classify(ctx, event) {
		logger.Debug("paste classified as markdown")
		return s.importMarkdown(tree, event.Text, domain.PasteMarkdown)
	}

	if s.shouldConvert(event) {
		md, err := s.converter.ToMarkdown(event.HTML)
		if err != nil {
			return nil, fmt.Errorf("paste: %w", err)
		}
		if strings.TrimSpace(md) != "" {
			logger.Debug("paste converted from html")
			return s.importMarkdown(tree, md, domain.PasteHTML)
		}
	}

	logger.Debug("paste inserted as plain text")
	return s.insertPlain(tree, event.Text)
}

func (s *PasteService) shouldConvert(event domain.PasteEvent) bool {
	if s.converter == nil || !s.settings.ConvertHTML || strings.TrimSpace(event.HTML) == "" {
		return false
	}
	if d, ok := s.classifier.(structureDetector); ok {
		return d.HasStructure(event.HTML)
	}
	return true
}

// insertionPoint returns the root index new blocks go to. An empty
// paragraph holding the selection is removed and its slot reused.
func insertionPoint(tree *domain.Tree) (int, error) {
	root := tree.Root()
	top := tree.TopLevel(tree.Selection().Node)
	if top == domain.NoNode {
		return len(tree.Children(root)), nil
	}
	index := tree.IndexOf(top)
	n := tree.Node(top)
	if n.Kind == domain.KindParagraph && tree.TextContent(top) == "" && len(n.Children) <= 1 {
		if err := tree.Remove(top); err != nil {
			return 0, err
		}
		return index, nil
	}
	return index + 1, nil
}

func (s *PasteService) importMarkdown(tree *domain.Tree, md string, mode domain.PasteMode) (*domain.PasteResult, error) {
	index, err := insertionPoint(tree)
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	inserted, err := s.codec.ImportAt(tree, tree.Root(), index, md)
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	return &domain.PasteResult{Mode: mode, Inserted: inserted, Selection: tree.Selection()}, nil
}

// insertPlain adds one paragraph per non-blank line, with no rules applied.
func (s *PasteService) insertPlain(tree *domain.Tree, text string) (*domain.PasteResult, error) {
	index, err := insertionPoint(tree)
	if err != nil {
		return nil, fmt.Errorf("paste: %w", err)
	}
	text = strings.ReplaceAll(text, "\r\n", "\n")
	var inserted []domain.NodeID
	for _, line := range strings.Split(text, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		p := tree.NewNode(domain.KindParagraph)
		run := tree.NewText(line, 0)
		if err := tree.Append(p.ID, run.ID); err != nil {
			return nil, fmt.Errorf("paste: %w", err)
		}
		if err := tree.InsertAt(tree.Root(), index+len(inserted), p.ID); err != nil {
			return nil, fmt.Errorf("paste: %w", err)
		}
		inserted = append(inserted, p.ID)
	}
	if len(inserted) > 0 {
		tree.SelectEnd(inserted[len(inserted)-1])
	}
	return &domain.PasteResult{Mode: domain.PastePlain, Inserted: inserted, Selection: tree.Selection()}, nil
}
