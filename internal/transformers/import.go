package transformers

import (
	"strings"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// importContext carries the state of one import call.
type importContext struct {
	tree        *domain.Tree
	interactive bool

	// pending lists blocks whose text runs still need the inline pass.
	pending []domain.NodeID
	inQueue map[domain.NodeID]bool

	// touched holds existing blocks that absorbed imported content.
	touched map[domain.NodeID]bool
}

func newImportContext(tree *domain.Tree, interactive bool) *importContext {
	return &importContext{
		tree:        tree,
		interactive: interactive,
		inQueue:     make(map[domain.NodeID]bool),
		touched:     make(map[domain.NodeID]bool),
	}
}

func (c *importContext) markInline(id domain.NodeID) {
	if c.inQueue[id] {
		return
	}
	c.inQueue[id] = true
	c.pending = append(c.pending, id)
}

func (c *importContext) touch(id domain.NodeID) {
	c.touched[id] = true
}

// runInlines drains the pending queue.
func (r *Registry) runInlines(ctx *importContext) error {
	for _, block := range ctx.pending {
		if !ctx.tree.Attached(block) {
			continue
		}
		if err := r.importInlines(ctx, block); err != nil {
			return err
		}
	}
	ctx.pending = nil
	ctx.inQueue = make(map[domain.NodeID]bool)
	return nil
}

// importAt inserts one paragraph per line of markdown at index under
// parent, runs the block rules over them in order and then the inline
// pass. It returns the children of parent that were created or extended.
func (r *Registry) importAt(tree *domain.Tree, parent domain.NodeID, index int, markdown string, interactive bool) ([]domain.NodeID, error) {
	ctx := newImportContext(tree, interactive)
	mark := domain.NodeID(tree.Len())

	lines := splitLines(markdown)
	paragraphs := make([]domain.NodeID, 0, len(lines))
	for i, line := range lines {
		p := tree.NewNode(domain.KindParagraph)
		if err := tree.Append(p.ID, tree.NewText(line, 0).ID); err != nil {
			return nil, err
		}
		if err := tree.InsertAt(parent, index+i, p.ID); err != nil {
			return nil, err
		}
		paragraphs = append(paragraphs, p.ID)
	}

	for _, p := range paragraphs {
		// Multiline rules consume the paragraphs after them.
		if tree.Node(p).Parent == domain.NoNode {
			continue
		}
		fired, err := r.ImportLine(ctx, p)
		if err != nil {
			return nil, err
		}
		if !fired {
			ctx.markInline(p)
		}
	}
	if err := r.runInlines(ctx); err != nil {
		return nil, err
	}

	var inserted []domain.NodeID
	for _, c := range tree.Children(parent) {
		if c >= mark || ctx.touched[c] {
			inserted = append(inserted, c)
		}
	}
	return inserted, nil
}

// splitLines normalises line endings and drops blank lines outside fenced
// code. Trailing whitespace is trimmed outside fences as well.
func splitLines(markdown string) []string {
	markdown = strings.ReplaceAll(markdown, "\r\n", "\n")
	markdown = strings.ReplaceAll(markdown, "\r", "\n")

	var out []string
	inFence := false
	for _, line := range strings.Split(markdown, "\n") {
		if strings.HasPrefix(line, "```") {
			inFence = !inFence
			out = append(out, strings.TrimRight(line, " \t"))
			continue
		}
		if inFence {
			out = append(out, line)
			continue
		}
		line = strings.TrimRight(line, " \t")
		if strings.TrimSpace(line) == "" {
			continue
		}
		out = append(out, line)
	}
	return out
}
