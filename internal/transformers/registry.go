package transformers

import (
	"fmt"
	"regexp"

	"github.com/custodia-labs/marktext/internal/core/domain"
	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Registry is the ordered rule set used for both directions. Earlier rules
// take precedence on import and export.
type Registry struct {
	rules   []Rule
	owners  map[domain.Kind]RuleID
	blocks  []Rule
	matches []Rule
	formats []Rule
	links   []Rule
	emoji   driven.EmojiTable
}

// NewRegistry validates rules and builds a registry. Two rules claiming
// export of the same node kind, two text-match rules sharing a trigger
// character, or two format rules sharing a marker fail with
// domain.ErrRuleConflict. emoji may be nil, in which case no alias
// resolves.
func NewRegistry(emoji driven.EmojiTable, rules ...Rule) (*Registry, error) {
	r := &Registry{
		owners: make(map[domain.Kind]RuleID),
		emoji:  emoji,
	}
	triggers := make(map[byte]RuleID)
	markers := make(map[string]RuleID)
	seen := make(map[RuleID]bool)

	for _, rule := range rules {
		if seen[rule.ID] {
			return nil, fmt.Errorf("%w: rule %s registered twice", domain.ErrRuleConflict, rule.ID)
		}
		seen[rule.ID] = true

		for _, kind := range rule.Owns {
			if other, ok := r.owners[kind]; ok {
				return nil, fmt.Errorf("%w: %s and %s both export %s", domain.ErrRuleConflict, other, rule.ID, kind)
			}
			r.owners[kind] = rule.ID
		}

		switch rule.Kind {
		case Element, MultilineElement:
			if rule.Pattern == nil {
				return nil, fmt.Errorf("%w: rule %s has no pattern", domain.ErrInvalidInput, rule.ID)
			}
			r.blocks = append(r.blocks, rule)
		case TextMatch:
			if rule.Pattern == nil || rule.Trigger == 0 {
				return nil, fmt.Errorf("%w: rule %s needs a pattern and a trigger", domain.ErrInvalidInput, rule.ID)
			}
			if other, ok := triggers[rule.Trigger]; ok {
				return nil, fmt.Errorf("%w: %s and %s share trigger %q", domain.ErrRuleConflict, other, rule.ID, rule.Trigger)
			}
			triggers[rule.Trigger] = rule.ID
			tail, err := regexp.Compile("(?:" + rule.Pattern.String() + ")$")
			if err != nil {
				return nil, fmt.Errorf("compile %s: %w", rule.ID, err)
			}
			rule.tail = tail
			r.matches = append(r.matches, rule)
		case TextFormat:
			if rule.Marker == "" || rule.Format == 0 {
				return nil, fmt.Errorf("%w: rule %s needs a marker and a format", domain.ErrInvalidInput, rule.ID)
			}
			if other, ok := markers[rule.Marker]; ok {
				return nil, fmt.Errorf("%w: %s and %s share marker %q", domain.ErrRuleConflict, other, rule.ID, rule.Marker)
			}
			markers[rule.Marker] = rule.ID
			r.formats = append(r.formats, rule)
		case InlineElement:
			if rule.Pattern == nil {
				return nil, fmt.Errorf("%w: rule %s has no pattern", domain.ErrInvalidInput, rule.ID)
			}
			r.links = append(r.links, rule)
		default:
			return nil, fmt.Errorf("%w: rule %s has kind %s", domain.ErrInvalidInput, rule.ID, rule.Kind)
		}
		r.rules = append(r.rules, rule)
	}
	return r, nil
}

// Rules returns the registered rules in priority order.
func (r *Registry) Rules() []Rule {
	out := make([]Rule, len(r.rules))
	copy(out, r.rules)
	return out
}

// Owner returns the rule that exports kind.
func (r *Registry) Owner(kind domain.Kind) (RuleID, bool) {
	id, ok := r.owners[kind]
	return id, ok
}

// Export asks the owning rule to serialise id. It returns false when no
// rule owns the node's kind, leaving it to the generic serialiser.
func (r *Registry) Export(tree *domain.Tree, id domain.NodeID) (string, bool) {
	n := tree.Node(id)
	if n == nil {
		return "", false
	}
	owner, ok := r.owners[n.Kind]
	if !ok {
		return "", false
	}
	switch owner {
	case RuleTable:
		return r.exportTable(tree, id), true
	case RuleHorizontalRule:
		return "***", true
	case RuleEmbed:
		return fmt.Sprintf(`<%s id="%s" />`, n.EmbedKind, n.EmbedID), true
	case RuleCodeBlock:
		return "```" + n.Language + "\n" + n.Text + "\n```", true
	case RuleHeading:
		return exportHeading(n.Level) + r.exportInlines(tree, id), true
	case RuleQuote:
		return r.exportQuote(tree, id), true
	case RuleList:
		return r.exportList(tree, id, 0), true
	case RuleImage:
		return "![" + n.Alt + "](" + n.Src + ")", true
	case RuleEquation:
		return "$" + n.Expression + "$", true
	case RuleLink:
		return "[" + r.exportInlines(tree, id) + "](" + n.URL + ")", true
	}
	return "", false
}

// ImportLine tries every element rule, in order, against the paragraph's
// plain text. The first rule that fires wins.
func (r *Registry) ImportLine(ctx *importContext, paragraph domain.NodeID) (bool, error) {
	n := ctx.tree.Node(paragraph)
	if n == nil || n.Kind != domain.KindParagraph {
		return false, nil
	}
	text := ctx.tree.TextContent(paragraph)
	for _, rule := range r.blocks {
		m := rule.Pattern.FindStringSubmatchIndex(text)
		if m == nil {
			continue
		}
		fired, err := r.importBlock(ctx, rule, paragraph, text, m)
		if err != nil {
			return false, fmt.Errorf("rule %s: %w", rule.ID, err)
		}
		if fired {
			logger.Debug("transformer %s fired on node %d", rule.ID, paragraph)
			return true, nil
		}
	}
	return false, nil
}

// ImportInline scans a text run for a text-match rule. Every trigger
// character is a candidate end position; the first rule whose pattern
// matches the text up to and including it, and does not decline, replaces
// the matched span. It returns the replacement and the run holding the
// remaining text, or NoNode for both when nothing matched.
func (r *Registry) ImportInline(ctx *importContext, run domain.NodeID) (domain.NodeID, domain.NodeID, error) {
	n := ctx.tree.Node(run)
	if n == nil || n.Kind != domain.KindText || n.Format.Has(domain.FormatCode) {
		return domain.NoNode, domain.NoNode, nil
	}
	text := n.Text
	for i := 0; i < len(text); i++ {
		for _, rule := range r.matches {
			if text[i] != rule.Trigger {
				continue
			}
			loc := rule.tail.FindStringSubmatchIndex(text[:i+1])
			if loc == nil {
				continue
			}
			repl, ok := r.importTextMatch(ctx, rule, n, text, loc)
			if !ok {
				continue
			}
			logger.Debug("transformer %s matched %q", rule.ID, text[loc[0]:loc[1]])
			tail, err := ctx.tree.SpliceText(run, loc[0], loc[1], repl)
			if err != nil {
				return domain.NoNode, domain.NoNode, err
			}
			return repl, tail, nil
		}
	}
	return domain.NoNode, domain.NoNode, nil
}

func (r *Registry) importBlock(ctx *importContext, rule Rule, paragraph domain.NodeID, text string, m []int) (bool, error) {
	switch rule.ID {
	case RuleTable:
		return r.importTable(ctx, paragraph, text)
	case RuleHorizontalRule:
		return importHorizontalRule(ctx, paragraph)
	case RuleEmbed:
		return importEmbed(ctx, paragraph, text[m[2]:m[3]], text[m[4]:m[5]])
	case RuleCodeBlock:
		return importCodeBlock(ctx, paragraph, text[m[2]:m[3]])
	case RuleHeading:
		return importHeading(ctx, paragraph, m[3]-m[2], text[m[1]:])
	case RuleQuote:
		return importQuote(ctx, paragraph, text[m[1]:])
	case RuleList:
		return importListItem(ctx, paragraph, text, m)
	}
	return false, nil
}

func (r *Registry) importTextMatch(ctx *importContext, rule Rule, run *domain.Node, text string, loc []int) (domain.NodeID, bool) {
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}
	switch rule.ID {
	case RuleImage:
		img := ctx.tree.NewNode(domain.KindInlineImage)
		img.Alt = group(1)
		img.Src = group(2)
		return img.ID, true
	case RuleEmoji:
		if r.emoji == nil {
			return domain.NoNode, false
		}
		glyph, ok := r.emoji.Lookup(group(1))
		if !ok {
			return domain.NoNode, false
		}
		return ctx.tree.NewText(glyph, run.Format).ID, true
	case RuleEquation:
		eq := ctx.tree.NewNode(domain.KindEquation)
		eq.Expression = group(1)
		return eq.ID, true
	}
	return domain.NoNode, false
}
