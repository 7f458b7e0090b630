package transformers

import (
	"strconv"
	"strings"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// listIndent is the number of spaces per nesting level.
const listIndent = 4

// importHorizontalRule replaces the paragraph with a rule. When the user
// is typing on the last line there must be somewhere to keep typing, so
// the rule goes before the paragraph and the paragraph is emptied instead.
func importHorizontalRule(ctx *importContext, paragraph domain.NodeID) (bool, error) {
	tree := ctx.tree
	hr := tree.NewNode(domain.KindHorizontalRule)

	if ctx.interactive && tree.NextSibling(paragraph) == domain.NoNode {
		if err := tree.InsertBefore(paragraph, hr.ID); err != nil {
			return false, err
		}
		for _, c := range append([]domain.NodeID(nil), tree.Children(paragraph)...) {
			if err := tree.Remove(c); err != nil {
				return false, err
			}
		}
		tree.SetSelection(domain.Selection{Node: paragraph, Offset: 0})
		ctx.touch(hr.ID)
		return true, nil
	}

	if err := tree.Replace(paragraph, hr.ID); err != nil {
		return false, err
	}
	ctx.touch(hr.ID)
	return true, nil
}

func importEmbed(ctx *importContext, paragraph domain.NodeID, kind, id string) (bool, error) {
	embed := ctx.tree.NewNode(domain.KindEmbed)
	embed.EmbedKind = kind
	embed.EmbedID = id
	if err := ctx.tree.Replace(paragraph, embed.ID); err != nil {
		return false, err
	}
	ctx.touch(embed.ID)
	return true, nil
}

// importCodeBlock consumes the following paragraphs up to the closing
// fence, or to the end of the parent when the fence is never closed.
func importCodeBlock(ctx *importContext, paragraph domain.NodeID, language string) (bool, error) {
	tree := ctx.tree
	var lines []string
	for next := tree.NextSibling(paragraph); next != domain.NoNode; next = tree.NextSibling(paragraph) {
		line := tree.TextContent(next)
		if err := tree.Remove(next); err != nil {
			return false, err
		}
		if strings.TrimSpace(line) == "```" {
			break
		}
		lines = append(lines, line)
	}

	code := tree.NewNode(domain.KindCodeBlock)
	code.Language = language
	code.Text = strings.Join(lines, "\n")
	if err := tree.Replace(paragraph, code.ID); err != nil {
		return false, err
	}
	ctx.touch(code.ID)
	return true, nil
}

func importHeading(ctx *importContext, paragraph domain.NodeID, level int, text string) (bool, error) {
	heading := ctx.tree.NewNode(domain.KindHeading)
	heading.Level = level
	if err := ctx.tree.Append(heading.ID, ctx.tree.NewText(text, 0).ID); err != nil {
		return false, err
	}
	if err := ctx.tree.Replace(paragraph, heading.ID); err != nil {
		return false, err
	}
	ctx.markInline(heading.ID)
	ctx.touch(heading.ID)
	return true, nil
}

// importQuote continues an immediately preceding quote with a line break,
// or starts a new one.
func importQuote(ctx *importContext, paragraph domain.NodeID, text string) (bool, error) {
	tree := ctx.tree
	if prev := tree.PrevSibling(paragraph); isKind(tree, prev, domain.KindQuote) {
		if err := tree.Append(prev, tree.NewNode(domain.KindLineBreak).ID); err != nil {
			return false, err
		}
		if err := tree.Append(prev, tree.NewText(text, 0).ID); err != nil {
			return false, err
		}
		if err := tree.Remove(paragraph); err != nil {
			return false, err
		}
		ctx.markInline(prev)
		ctx.touch(prev)
		return true, nil
	}

	quote := tree.NewNode(domain.KindQuote)
	if err := tree.Append(quote.ID, tree.NewText(text, 0).ID); err != nil {
		return false, err
	}
	if err := tree.Replace(paragraph, quote.ID); err != nil {
		return false, err
	}
	ctx.markInline(quote.ID)
	ctx.touch(quote.ID)
	return true, nil
}

// importListItem turns a list line into an item. Items join an
// immediately preceding list of the same type; indented items nest under
// the last item of the level above.
func importListItem(ctx *importContext, paragraph domain.NodeID, text string, m []int) (bool, error) {
	tree := ctx.tree
	depth := indentDepth(text[m[2]:m[3]])

	listType := domain.ListBullet
	start := 1
	switch {
	case m[4] >= 0:
		listType = domain.ListNumber
		start, _ = strconv.Atoi(text[m[4]:m[5]])
	case m[6] >= 0:
		listType = domain.ListCheck
	}

	item := tree.NewNode(domain.KindListItem)
	if listType == domain.ListCheck {
		item.Checked = strings.EqualFold(text[m[6]:m[7]], "x")
	}
	if err := tree.Append(item.ID, tree.NewText(text[m[1]:], 0).ID); err != nil {
		return false, err
	}

	prev := tree.PrevSibling(paragraph)
	var top domain.NodeID
	if p := tree.Node(prev); p != nil && p.Kind == domain.KindList && (depth > 0 || p.ListType == listType) {
		top = prev
		if err := tree.Remove(paragraph); err != nil {
			return false, err
		}
	} else {
		list := newList(tree, listType, start)
		if err := tree.Replace(paragraph, list.ID); err != nil {
			return false, err
		}
		top = list.ID
		depth = 0
	}

	target := top
	for level := 1; level <= depth; level++ {
		last := tree.LastChild(target)
		if last == domain.NoNode {
			break
		}
		nested := tree.LastChild(last)
		if n := tree.Node(nested); n != nil && n.Kind == domain.KindList && (level < depth || n.ListType == listType) {
			target = nested
			continue
		}
		list := newList(tree, listType, start)
		if err := tree.Append(last, list.ID); err != nil {
			return false, err
		}
		target = list.ID
	}

	if err := tree.Append(target, item.ID); err != nil {
		return false, err
	}
	ctx.markInline(item.ID)
	ctx.touch(top)
	return true, nil
}

func newList(tree *domain.Tree, listType domain.ListType, start int) *domain.Node {
	list := tree.NewNode(domain.KindList)
	list.ListType = listType
	if listType == domain.ListNumber {
		list.Start = start
	}
	return list
}

func indentDepth(ws string) int {
	width := 0
	for _, r := range ws {
		if r == '\t' {
			width += listIndent
		} else {
			width++
		}
	}
	return width / listIndent
}

func exportHeading(level int) string {
	level = min(max(level, 1), 6)
	return strings.Repeat("#", level) + " "
}

func (r *Registry) exportQuote(tree *domain.Tree, quote domain.NodeID) string {
	return "> " + strings.ReplaceAll(r.exportInlines(tree, quote), "\n", "\n> ")
}

func (r *Registry) exportList(tree *domain.Tree, list domain.NodeID, depth int) string {
	n := tree.Node(list)
	start := n.Start
	if start <= 0 {
		start = 1
	}
	indent := strings.Repeat(" ", depth*listIndent)

	var lines []string
	for i, itemID := range tree.Children(list) {
		item := tree.Node(itemID)
		var marker string
		switch n.ListType {
		case domain.ListNumber:
			marker = strconv.Itoa(start+i) + ". "
		case domain.ListCheck:
			if item.Checked {
				marker = "- [x] "
			} else {
				marker = "- [ ] "
			}
		default:
			marker = "- "
		}

		var inline strings.Builder
		var nested []domain.NodeID
		for _, c := range item.Children {
			if tree.Node(c).Kind == domain.KindList {
				nested = append(nested, c)
				continue
			}
			inline.WriteString(r.exportNode(tree, c))
		}
		lines = append(lines, indent+marker+inline.String())
		for _, c := range nested {
			lines = append(lines, r.exportList(tree, c, depth+1))
		}
	}
	return strings.Join(lines, "\n")
}
