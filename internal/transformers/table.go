package transformers

import (
	"strings"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// importTable handles a line that looks like a table row or divider.
//
// A divider marks the last row of an immediately preceding table as the
// header and disappears; with no table before it the divider line is
// simply dropped. A data row pulls in every preceding paragraph that is
// also a row, then either joins the table right before it or replaces the
// triggering line with a new table.
func (r *Registry) importTable(ctx *importContext, paragraph domain.NodeID, text string) (bool, error) {
	tree := ctx.tree

	if tableDividerPattern.MatchString(text) {
		if prev := tree.PrevSibling(paragraph); isKind(tree, prev, domain.KindTable) {
			for _, cell := range tree.Children(tree.LastChild(prev)) {
				tree.Node(cell).Header = true
			}
			ctx.touch(prev)
		}
		return true, tree.Remove(paragraph)
	}

	m := tableRowPattern.FindStringSubmatch(text)
	if m == nil {
		return false, nil
	}
	rows := [][]string{splitCells(m[1])}

	for prev := tree.PrevSibling(paragraph); prev != domain.NoNode; prev = tree.PrevSibling(paragraph) {
		line, ok := plainParagraph(tree, prev)
		if !ok || tableDividerPattern.MatchString(line) {
			break
		}
		pm := tableRowPattern.FindStringSubmatch(line)
		if pm == nil {
			break
		}
		rows = append([][]string{splitCells(pm[1])}, rows...)
		if err := tree.Remove(prev); err != nil {
			return false, err
		}
	}

	width := 0
	for _, cells := range rows {
		width = max(width, len(cells))
	}

	prev := tree.PrevSibling(paragraph)
	if isKind(tree, prev, domain.KindTable) {
		// Rows of a different width still join the table; the narrower
		// side is padded so the table stays rectangular.
		existing := tableWidth(tree, prev)
		width = max(width, existing)
		if existing < width {
			for _, row := range tree.Children(prev) {
				if err := r.padRow(tree, row, width); err != nil {
					return false, err
				}
			}
		}
		for _, cells := range rows {
			if err := r.appendRow(tree, prev, cells, width); err != nil {
				return false, err
			}
		}
		if err := tree.Remove(paragraph); err != nil {
			return false, err
		}
		tree.SelectEnd(prev)
		ctx.touch(prev)
		return true, nil
	}

	table := tree.NewNode(domain.KindTable)
	for _, cells := range rows {
		if err := r.appendRow(tree, table.ID, cells, width); err != nil {
			return false, err
		}
	}
	if err := tree.Replace(paragraph, table.ID); err != nil {
		return false, err
	}
	tree.SelectEnd(table.ID)
	ctx.touch(table.ID)
	return true, nil
}

func (r *Registry) appendRow(tree *domain.Tree, table domain.NodeID, cells []string, width int) error {
	row := tree.NewNode(domain.KindTableRow)
	if err := tree.Append(table, row.ID); err != nil {
		return err
	}
	for i := 0; i < width; i++ {
		raw := ""
		if i < len(cells) {
			raw = cells[i]
		}
		if err := r.appendCell(tree, row.ID, raw); err != nil {
			return err
		}
	}
	return nil
}

// padRow appends empty cells until row is width cells wide. Padding a
// header row adds header cells so the row keeps its divider.
func (r *Registry) padRow(tree *domain.Tree, row domain.NodeID, width int) error {
	header := isHeaderRow(tree, row)
	for len(tree.Children(row)) < width {
		if err := r.appendCell(tree, row, ""); err != nil {
			return err
		}
		tree.Node(tree.LastChild(row)).Header = header
	}
	return nil
}

// appendCell builds a cell whose content is the markdown import of raw
// after unescaping newlines.
func (r *Registry) appendCell(tree *domain.Tree, row domain.NodeID, raw string) error {
	cell := tree.NewNode(domain.KindTableCell)
	if err := tree.Append(row, cell.ID); err != nil {
		return err
	}
	if raw != "" {
		frag := domain.NewTree()
		if _, err := r.importAt(frag, frag.Root(), 0, UnescapeCell(raw), false); err != nil {
			return err
		}
		if _, err := tree.AppendFragment(cell.ID, frag); err != nil {
			return err
		}
	}
	if len(tree.Children(cell.ID)) == 0 {
		p := tree.NewNode(domain.KindParagraph)
		return tree.Append(cell.ID, p.ID)
	}
	return nil
}

// exportTable writes one `| a | b |` line per row, followed by a divider
// after any row made only of header cells.
func (r *Registry) exportTable(tree *domain.Tree, table domain.NodeID) string {
	var lines []string
	for _, row := range tree.Children(table) {
		cells := tree.Children(row)
		var sb strings.Builder
		sb.WriteString("|")
		for _, cell := range cells {
			content := strings.TrimSpace(r.exportBlocks(tree, cell))
			sb.WriteString(" ")
			sb.WriteString(EscapeCell(content))
			sb.WriteString(" |")
		}
		lines = append(lines, sb.String())
		if isHeaderRow(tree, row) {
			lines = append(lines, "|"+strings.Repeat(" --- |", len(cells)))
		}
	}
	return strings.Join(lines, "\n")
}

// isHeaderRow reports whether row has cells and all of them are headers.
func isHeaderRow(tree *domain.Tree, row domain.NodeID) bool {
	cells := tree.Children(row)
	if len(cells) == 0 {
		return false
	}
	for _, cell := range cells {
		if !tree.Node(cell).Header {
			return false
		}
	}
	return true
}

func splitCells(inner string) []string {
	parts := strings.Split(inner, "|")
	for i, p := range parts {
		parts[i] = strings.TrimSpace(p)
	}
	return parts
}

func tableWidth(tree *domain.Tree, table domain.NodeID) int {
	width := 0
	for _, row := range tree.Children(table) {
		width = max(width, len(tree.Children(row)))
	}
	return width
}

// plainParagraph returns the text of a paragraph holding exactly one
// unformatted text run.
func plainParagraph(tree *domain.Tree, id domain.NodeID) (string, bool) {
	n := tree.Node(id)
	if n == nil || n.Kind != domain.KindParagraph || len(n.Children) != 1 {
		return "", false
	}
	run := tree.Node(n.Children[0])
	if run.Kind != domain.KindText || run.Format != 0 {
		return "", false
	}
	return run.Text, true
}

func isKind(tree *domain.Tree, id domain.NodeID, kind domain.Kind) bool {
	n := tree.Node(id)
	return n != nil && n.Kind == kind
}
