package transformers

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// markableFormats are the formats that have a markdown marker.
const markableFormats = domain.FormatBold | domain.FormatItalic | domain.FormatStrikethrough |
	domain.FormatHighlight | domain.FormatCode

// importInlines runs the inline pass over one block: code spans first so
// their content is left alone, then text-match rules, links and finally
// the format markers.
func (r *Registry) importInlines(ctx *importContext, block domain.NodeID) error {
	tree := ctx.tree

	if code, ok := r.codeRule(); ok {
		for _, run := range snapshot(tree, block) {
			if err := splitCodeSpans(tree, run, code); err != nil {
				return err
			}
		}
	}

	for _, run := range snapshot(tree, block) {
		for run != domain.NoNode && isPlainRun(tree, run) {
			repl, tail, err := r.ImportInline(ctx, run)
			if err != nil {
				return err
			}
			if repl == domain.NoNode {
				break
			}
			run = tail
		}
	}
	tree.MergeText(block)

	for _, rule := range r.links {
		for _, run := range snapshot(tree, block) {
			if err := r.importLinks(tree, run, rule); err != nil {
				return err
			}
		}
	}

	for _, child := range snapshot(tree, block) {
		n := tree.Node(child)
		switch n.Kind {
		case domain.KindText:
			if err := r.applyFormats(tree, child); err != nil {
				return err
			}
		case domain.KindLink:
			for _, run := range snapshot(tree, child) {
				if err := r.applyFormats(tree, run); err != nil {
					return err
				}
			}
			tree.MergeText(child)
		}
	}
	tree.MergeText(block)
	return nil
}

func (r *Registry) codeRule() (Rule, bool) {
	for _, rule := range r.formats {
		if rule.Format == domain.FormatCode {
			return rule, true
		}
	}
	return Rule{}, false
}

// splitCodeSpans turns every marker-delimited span of run into a code run.
func splitCodeSpans(tree *domain.Tree, run domain.NodeID, rule Rule) error {
	for run != domain.NoNode && isPlainRun(tree, run) {
		n := tree.Node(run)
		open := strings.Index(n.Text, rule.Marker)
		if open < 0 {
			return nil
		}
		rest := n.Text[open+len(rule.Marker):]
		closeAt := strings.Index(rest, rule.Marker)
		if closeAt <= 0 {
			return nil
		}
		code := tree.NewText(rest[:closeAt], n.Format|domain.FormatCode)
		end := open + len(rule.Marker) + closeAt + len(rule.Marker)
		tail, err := tree.SpliceText(run, open, end, code.ID)
		if err != nil {
			return err
		}
		run = tail
	}
	return nil
}

// importLinks replaces each `[text](url)` span of run with a link node
// whose child carries the run's format.
func (r *Registry) importLinks(tree *domain.Tree, run domain.NodeID, rule Rule) error {
	for run != domain.NoNode && isPlainRun(tree, run) {
		n := tree.Node(run)
		m := rule.Pattern.FindStringSubmatchIndex(n.Text)
		if m == nil {
			return nil
		}
		// An image that a text-match rule left behind is not a link.
		if m[0] > 0 && n.Text[m[0]-1] == '!' {
			return nil
		}
		link := tree.NewNode(domain.KindLink)
		link.URL = n.Text[m[4]:m[5]]
		if label := n.Text[m[2]:m[3]]; label != "" {
			if err := tree.Append(link.ID, tree.NewText(label, n.Format).ID); err != nil {
				return err
			}
		}
		tail, err := tree.SpliceText(run, m[0], m[1], link.ID)
		if err != nil {
			return err
		}
		run = tail
	}
	return nil
}

// applyFormats finds the earliest valid marker pair in run, turns its
// content into a run with the added format and recurses into that content
// and into the remaining text.
func (r *Registry) applyFormats(tree *domain.Tree, run domain.NodeID) error {
	if !isPlainRun(tree, run) {
		return nil
	}
	n := tree.Node(run)
	start, end, rule, ok := r.findFormat(n.Text)
	if !ok {
		return nil
	}
	inner := tree.NewText(n.Text[start+len(rule.Marker):end], n.Format|rule.Format)
	tail, err := tree.SpliceText(run, start, end+len(rule.Marker), inner.ID)
	if err != nil {
		return err
	}
	if err := r.applyFormats(tree, inner.ID); err != nil {
		return err
	}
	if tail != domain.NoNode {
		return r.applyFormats(tree, tail)
	}
	return nil
}

// findFormat returns the earliest opening marker that has a valid closing
// marker. At one position longer markers are tried first.
func (r *Registry) findFormat(text string) (int, int, Rule, bool) {
	for i := 0; i < len(text); i++ {
		for _, rule := range r.formats {
			if rule.Format == domain.FormatCode || !strings.HasPrefix(text[i:], rule.Marker) {
				continue
			}
			if !validOpener(text, i, rule.Marker) {
				continue
			}
			if end, ok := findCloser(text, i+len(rule.Marker), rule.Marker); ok {
				return i, end, rule, true
			}
		}
	}
	return 0, 0, Rule{}, false
}

func validOpener(text string, i int, marker string) bool {
	after := i + len(marker)
	if after >= len(text) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(text[after:])
	if unicode.IsSpace(next) {
		return false
	}
	if len(marker) == 1 && text[after] == marker[0] {
		return false
	}
	if marker[0] == '_' && i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(text[:i])
		if isWordRune(prev) {
			return false
		}
	}
	return true
}

func findCloser(text string, from int, marker string) (int, bool) {
	for j := from + 1; j+len(marker) <= len(text); j++ {
		if !strings.HasPrefix(text[j:], marker) {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(text[:j])
		if unicode.IsSpace(prev) {
			continue
		}
		after := j + len(marker)
		if len(marker) == 1 {
			if text[j-1] == marker[0] || (after < len(text) && text[after] == marker[0]) {
				continue
			}
		}
		if marker[0] == '_' && after < len(text) {
			next, _ := utf8.DecodeRuneInString(text[after:])
			if isWordRune(next) {
				continue
			}
		}
		return j, true
	}
	return 0, false
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

// exportText writes a run wrapped in its format markers. Surrounding
// whitespace stays outside the markers so the output parses back.
func (r *Registry) exportText(n *domain.Node) string {
	if n.Format&markableFormats == 0 || strings.TrimSpace(n.Text) == "" {
		return n.Text
	}
	core := strings.TrimSpace(n.Text)
	lead := n.Text[:strings.Index(n.Text, core)]
	trail := n.Text[len(lead)+len(core):]
	open, closing := r.markersFor(n.Format)
	return lead + open + core + closing + trail
}

// markersFor picks one marker per format, first registered wins, with the
// code marker innermost.
func (r *Registry) markersFor(f domain.Format) (string, string) {
	remaining := f & markableFormats
	var markers []string
	code := ""
	for _, rule := range r.formats {
		if remaining&rule.Format != rule.Format {
			continue
		}
		remaining &^= rule.Format
		if rule.Format == domain.FormatCode {
			code = rule.Marker
			continue
		}
		markers = append(markers, rule.Marker)
	}
	var open, closing strings.Builder
	for _, m := range markers {
		open.WriteString(m)
	}
	open.WriteString(code)
	closing.WriteString(code)
	for i := len(markers) - 1; i >= 0; i-- {
		closing.WriteString(markers[i])
	}
	return open.String(), closing.String()
}

// isPlainRun reports whether id is an attached text run that inline rules
// may still rewrite.
func isPlainRun(tree *domain.Tree, id domain.NodeID) bool {
	n := tree.Node(id)
	return n != nil && n.Kind == domain.KindText && n.Parent != domain.NoNode && !n.Format.Has(domain.FormatCode)
}

func snapshot(tree *domain.Tree, parent domain.NodeID) []domain.NodeID {
	return append([]domain.NodeID(nil), tree.Children(parent)...)
}
