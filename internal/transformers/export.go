package transformers

import (
	"strings"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// exportBlocks serialises the children of parent as blocks separated by a
// blank line.
func (r *Registry) exportBlocks(tree *domain.Tree, parent domain.NodeID) string {
	children := tree.Children(parent)
	parts := make([]string, 0, len(children))
	for _, c := range children {
		parts = append(parts, r.exportNode(tree, c))
	}
	return strings.Join(parts, "\n\n")
}

// exportInlines concatenates the serialised children of an inline
// container.
func (r *Registry) exportInlines(tree *domain.Tree, parent domain.NodeID) string {
	var sb strings.Builder
	for _, c := range tree.Children(parent) {
		sb.WriteString(r.exportNode(tree, c))
	}
	return sb.String()
}

// exportNode asks the registry first and falls back to the generic
// serialiser for paragraphs, text runs and containers.
func (r *Registry) exportNode(tree *domain.Tree, id domain.NodeID) string {
	if s, ok := r.Export(tree, id); ok {
		return s
	}
	n := tree.Node(id)
	switch {
	case n.Kind == domain.KindText:
		return r.exportText(n)
	case n.Kind == domain.KindLineBreak:
		return "\n"
	case n.Kind.IsInline():
		return tree.TextContent(id)
	case n.Kind.HoldsInlines():
		return r.exportInlines(tree, id)
	default:
		return r.exportBlocks(tree, id)
	}
}
