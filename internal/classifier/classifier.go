package classifier

import (
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/custodia-labs/marktext/internal/core/ports/driven"
	"github.com/custodia-labs/marktext/internal/logger"
)

// Verify interface compliance.
var _ driven.PasteClassifier = (*Classifier)(nil)

// Pattern names.
const (
	PatternHeading        = "heading"
	PatternBold           = "bold"
	PatternItalic         = "italic"
	PatternUnorderedList  = "unordered_list"
	PatternOrderedList    = "ordered_list"
	PatternFencedCode     = "fenced_code"
	PatternInlineCode     = "inline_code"
	PatternLink           = "link"
	PatternImage          = "image"
	PatternBlockquote     = "blockquote"
	PatternHorizontalRule = "horizontal_rule"
	PatternChecklist      = "checklist"
	PatternTableRow       = "table_row"
)

// Pattern is one piece of structural evidence.
type Pattern struct {
	Name string
	Expr *regexp.Regexp
}

// Policy is the data the classifier decides with.
type Policy struct {
	// Patterns is the full structural pattern set.
	Patterns []Pattern

	// Strong names patterns that are enough on their own.
	Strong []string

	// ShortLine names the only patterns that may accept a short single
	// line.
	ShortLine []string

	// ShortLineThreshold is the rune length below which a single line is
	// treated as a short fragment.
	ShortLineThreshold int

	// MinMatches is how many distinct patterns must match when none of
	// them is strong.
	MinMatches int

	// AllowedTags are companion payload tags that carry no structure.
	AllowedTags []string
}

// DefaultAllowedTags is the companion allow-list used when none is
// configured. These are the wrapper tags clipboards add around plain text.
var DefaultAllowedTags = []string{
	"html", "head", "body", "meta", "style", "title",
	"div", "span", "br", "p", "pre", "code", "font",
}

// DefaultPolicy returns the built-in policy.
func DefaultPolicy() Policy {
	return Policy{
		Patterns: []Pattern{
			{PatternHeading, regexp.MustCompile(`(?m)^#{1,6}\s+\S`)},
			{PatternBold, regexp.MustCompile(`\*\*[^*\n]+\*\*|__[^_\n]+__`)},
			{PatternItalic, regexp.MustCompile(`(?:^|[^*\w])\*[^*\s][^*\n]*\*(?:[^*\w]|$)|(?:^|[^_\w])_[^_\s][^_\n]*_(?:[^_\w]|$)`)},
			{PatternUnorderedList, regexp.MustCompile(`(?m)^\s*[-*+]\s+\S`)},
			{PatternOrderedList, regexp.MustCompile(`(?m)^\s*\d+[.)]\s+\S`)},
			{PatternFencedCode, regexp.MustCompile("(?m)^```")},
			{PatternInlineCode, regexp.MustCompile("`[^`\n]+`")},
			{PatternLink, regexp.MustCompile(`\[[^\]\n]+\]\([^)\s]+\)`)},
			{PatternImage, regexp.MustCompile(`!\[[^\]\n]*\]\([^)\s]+\)`)},
			{PatternBlockquote, regexp.MustCompile(`(?m)^>\s?\S`)},
			{PatternHorizontalRule, regexp.MustCompile(`(?m)^\s*(?:-{3,}|\*{3,}|_{3,})\s*$`)},
			{PatternChecklist, regexp.MustCompile(`(?m)^\s*[-*+]\s+\[[ xX]\]\s`)},
			{PatternTableRow, regexp.MustCompile(`(?m)^\|.+\|\s*$`)},
		},
		Strong: []string{
			PatternHeading, PatternFencedCode, PatternUnorderedList,
			PatternOrderedList, PatternBlockquote, PatternTableRow,
		},
		ShortLine: []string{
			PatternHeading, PatternBold, PatternItalic, PatternLink, PatternInlineCode,
		},
		ShortLineThreshold: 80,
		MinMatches:         2,
		AllowedTags:        DefaultAllowedTags,
	}
}

// Classifier decides whether pasted plain text is likely markdown. It
// holds no mutable state and is safe for concurrent use.
type Classifier struct {
	policy  Policy
	strong  map[string]bool
	short   map[string]bool
	allowed map[string]bool
}

// New creates a classifier for policy. Strong and short-line names must
// refer to patterns in the policy.
func New(policy Policy) (*Classifier, error) {
	names := make(map[string]bool, len(policy.Patterns))
	for _, p := range policy.Patterns {
		if p.Expr == nil {
			return nil, fmt.Errorf("pattern %q has no expression", p.Name)
		}
		names[p.Name] = true
	}
	c := &Classifier{
		policy:  policy,
		strong:  make(map[string]bool),
		short:   make(map[string]bool),
		allowed: make(map[string]bool),
	}
	for _, n := range policy.Strong {
		if !names[n] {
			return nil, fmt.Errorf("strong pattern %q is not defined", n)
		}
		c.strong[n] = true
	}
	for _, n := range policy.ShortLine {
		if !names[n] {
			return nil, fmt.Errorf("short-line pattern %q is not defined", n)
		}
		c.short[n] = true
	}
	tags := policy.AllowedTags
	if len(tags) == 0 {
		tags = DefaultAllowedTags
	}
	for _, t := range tags {
		c.allowed[strings.ToLower(t)] = true
	}
	if c.policy.MinMatches <= 0 {
		c.policy.MinMatches = 2
	}
	return c, nil
}

// IsLikelyMarkdown reports whether text should be imported as markdown.
// companionHTML is the rich clipboard payload, or empty.
func (c *Classifier) IsLikelyMarkdown(text, companionHTML string) bool {
	text = norm.NFC.String(text)
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return false
	}

	if companionHTML != "" && c.HasStructure(companionHTML) {
		logger.Debug("classifier: companion HTML carries structure")
		return false
	}
	if logger.IsVerbose() {
		logger.Debug("classifier: patterns found %v", c.Matches(text))
	}

	if !strings.Contains(trimmed, "\n") && utf8.RuneCountInString(trimmed) < c.policy.ShortLineThreshold {
		for _, p := range c.policy.Patterns {
			if c.short[p.Name] && p.Expr.MatchString(trimmed) {
				return true
			}
		}
		return false
	}

	matched := 0
	for _, p := range c.policy.Patterns {
		if !p.Expr.MatchString(text) {
			continue
		}
		if c.strong[p.Name] {
			return true
		}
		matched++
		if matched >= c.policy.MinMatches {
			return true
		}
	}
	return false
}

// Matches returns the names of the patterns found in text, in policy
// order. It applies no thresholds.
func (c *Classifier) Matches(text string) []string {
	text = norm.NFC.String(text)
	var out []string
	for _, p := range c.policy.Patterns {
		if p.Expr.MatchString(text) {
			out = append(out, p.Name)
		}
	}
	return out
}

// HasStructure reports whether a companion payload uses any tag outside
// the allow-list.
func (c *Classifier) HasStructure(companionHTML string) bool {
	z := html.NewTokenizer(strings.NewReader(companionHTML))
	for {
		switch z.Next() {
		case html.ErrorToken:
			return false
		case html.StartTagToken, html.EndTagToken, html.SelfClosingTagToken:
			name, _ := z.TagName()
			if !c.allowed[strings.ToLower(string(name))] {
				return true
			}
		}
	}
}

var defaultClassifier = func() *Classifier {
	c, err := New(DefaultPolicy())
	if err != nil {
		panic(err)
	}
	return c
}()

// IsLikelyMarkdown classifies text with the default policy.
func IsLikelyMarkdown(text, companionHTML string) bool {
	return defaultClassifier.IsLikelyMarkdown(text, companionHTML)
}
