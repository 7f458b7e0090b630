package transformers

import (
	"fmt"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.MarkdownCodec = (*Engine)(nil)

// Engine converts between markdown text and document trees using a rule
// registry.
type Engine struct {
	registry *Registry
}

// New creates an engine with the default rules. emoji resolves :alias:
// shortcodes and may be nil.
func New(emoji driven.EmojiTable) (*Engine, error) {
	reg, err := NewRegistry(emoji, DefaultRules()...)
	if err != nil {
		return nil, err
	}
	return &Engine{registry: reg}, nil
}

// NewWithRegistry creates an engine over a custom registry.
func NewWithRegistry(reg *Registry) *Engine {
	return &Engine{registry: reg}
}

// Registry returns the engine's rule registry.
func (e *Engine) Registry() *Registry {
	return e.registry
}

// Import builds a new tree from markdown.
func (e *Engine) Import(markdown string) (*domain.Tree, error) {
	tree := domain.NewTree()
	inserted, err := e.registry.importAt(tree, tree.Root(), 0, markdown, false)
	if err != nil {
		return nil, fmt.Errorf("import: %w", err)
	}
	if len(inserted) > 0 {
		tree.SelectEnd(inserted[len(inserted)-1])
	}
	return tree, nil
}

// ImportAt imports markdown into an existing tree at index under parent
// and moves the selection to the end of the inserted content.
func (e *Engine) ImportAt(tree *domain.Tree, parent domain.NodeID, index int, markdown string) ([]domain.NodeID, error) {
	if tree == nil || tree.Node(parent) == nil {
		return nil, fmt.Errorf("import at %d: %w", parent, domain.ErrNotFound)
	}
	if tree.Node(parent).Kind.IsInline() {
		return nil, fmt.Errorf("import into %s: %w", tree.Node(parent).Kind, domain.ErrInvalidInput)
	}
	inserted, err := e.registry.importAt(tree, parent, index, markdown, false)
	if err != nil {
		return nil, fmt.Errorf("import at %d: %w", parent, err)
	}
	if len(inserted) > 0 {
		tree.SelectEnd(inserted[len(inserted)-1])
	}
	return inserted, nil
}

// ImportLine runs the block rules and the inline pass over one existing
// paragraph, as happens when the user finishes typing a line. It reports
// whether a block rule fired.
func (e *Engine) ImportLine(tree *domain.Tree, paragraph domain.NodeID, interactive bool) (bool, error) {
	n := tree.Node(paragraph)
	if n == nil {
		return false, fmt.Errorf("import line %d: %w", paragraph, domain.ErrNotFound)
	}
	if n.Kind != domain.KindParagraph {
		return false, fmt.Errorf("import line %d is %s: %w", paragraph, n.Kind, domain.ErrUnsupportedType)
	}
	if n.Parent == domain.NoNode {
		return false, fmt.Errorf("import line %d: %w", paragraph, domain.ErrDetached)
	}

	ctx := newImportContext(tree, interactive)
	fired, err := e.registry.ImportLine(ctx, paragraph)
	if err != nil {
		return false, fmt.Errorf("import line %d: %w", paragraph, err)
	}
	if !fired {
		ctx.markInline(paragraph)
	}
	if err := e.registry.runInlines(ctx); err != nil {
		return false, fmt.Errorf("import line %d: %w", paragraph, err)
	}
	return fired, nil
}

// Export serialises the whole tree.
func (e *Engine) Export(tree *domain.Tree) (string, error) {
	if tree == nil {
		return "", fmt.Errorf("export: %w", domain.ErrInvalidInput)
	}
	return e.registry.exportBlocks(tree, tree.Root()), nil
}

// ExportNode serialises one node and its descendants.
func (e *Engine) ExportNode(tree *domain.Tree, id domain.NodeID) (string, error) {
	if tree == nil || tree.Node(id) == nil {
		return "", fmt.Errorf("export %d: %w", id, domain.ErrNotFound)
	}
	return e.registry.exportNode(tree, id), nil
}
