package transformers

import (
	"regexp"

	"github.com/custodia-labs/marktext/internal/core/domain"
)

// RuleKind says how a rule is triggered.
type RuleKind int

const (
	// Element rules match one paragraph's plain text.
	Element RuleKind = iota

	// MultilineElement rules match one paragraph and may consume its
	// siblings.
	MultilineElement

	// TextFormat rules wrap a span of a text run in a marker pair.
	TextFormat

	// TextMatch rules fire on a trigger character inside a text run.
	TextMatch

	// InlineElement rules turn a span of a text run into an inline node
	// with its own children.
	InlineElement
)

// String returns the string representation.
func (k RuleKind) String() string {
	switch k {
	case Element:
		return "element"
	case MultilineElement:
		return "multiline-element"
	case TextFormat:
		return "text-format"
	case TextMatch:
		return "text-match"
	case InlineElement:
		return "inline-element"
	default:
		return "unknown"
	}
}

// RuleID names one transformer. Import and export dispatch switch on it.
type RuleID int

// Transformers known to the registry.
const (
	RuleTable RuleID = iota
	RuleHorizontalRule
	RuleEmbed
	RuleCodeBlock
	RuleHeading
	RuleQuote
	RuleList
	RuleImage
	RuleEmoji
	RuleEquation
	RuleLink
	RuleInlineCode
	RuleBoldItalic
	RuleBoldItalicUnderscore
	RuleBold
	RuleBoldUnderscore
	RuleStrikethrough
	RuleHighlight
	RuleItalic
	RuleItalicUnderscore
)

var ruleNames = map[RuleID]string{
	RuleTable:                "table",
	RuleHorizontalRule:       "horizontal-rule",
	RuleEmbed:                "embed",
	RuleCodeBlock:            "code-block",
	RuleHeading:              "heading",
	RuleQuote:                "quote",
	RuleList:                 "list",
	RuleImage:                "image",
	RuleEmoji:                "emoji",
	RuleEquation:             "equation",
	RuleLink:                 "link",
	RuleInlineCode:           "inline-code",
	RuleBoldItalic:           "bold-italic",
	RuleBoldItalicUnderscore: "bold-italic-underscore",
	RuleBold:                 "bold",
	RuleBoldUnderscore:       "bold-underscore",
	RuleStrikethrough:        "strikethrough",
	RuleHighlight:            "highlight",
	RuleItalic:               "italic",
	RuleItalicUnderscore:     "italic-underscore",
}

// String returns the rule name.
func (id RuleID) String() string {
	if name, ok := ruleNames[id]; ok {
		return name
	}
	return "unknown"
}

// Rule declares one transformer: the node kinds it exports, and how its
// import side is triggered.
type Rule struct {
	ID   RuleID
	Kind RuleKind

	// Owns lists the node kinds whose export this rule claims.
	Owns []domain.Kind

	// Pattern is matched against a paragraph's text (element rules) or a
	// text run (text-match and inline-element rules).
	Pattern *regexp.Regexp

	// Trigger is the character that makes a text-match rule try Pattern.
	Trigger byte

	// Marker and Format describe a text-format rule.
	Marker string
	Format domain.Format

	// tail is Pattern anchored at the end of the input; set by NewRegistry
	// for text-match rules.
	tail *regexp.Regexp
}

var (
	tableRowPattern     = regexp.MustCompile(`^\|(.+)\|\s?$`)
	tableDividerPattern = regexp.MustCompile(`^(\| ?:?-+:? ?)+\|\s?$`)
	hrPattern           = regexp.MustCompile(`^(---|\*\*\*|___)\s?$`)
	embedPattern        = regexp.MustCompile(`^<([a-z][a-z0-9-]*)\s+id="([^"]*)"\s*/>\s?$`)
	codeFencePattern    = regexp.MustCompile("^```([\\w#+.-]*)\\s*$")
	headingPattern      = regexp.MustCompile(`^(#{1,6})\s`)
	quotePattern        = regexp.MustCompile(`^>\s`)
	listPattern         = regexp.MustCompile(`^(\s*)(?:(\d{1,9})\.|[-*+](?:\s\[([ xX])\])?)\s`)
	imagePattern        = regexp.MustCompile(`!\[([^\[]*)\]\(([^(]+)\)`)
	emojiPattern        = regexp.MustCompile(`:([a-z0-9_]+):`)
	equationPattern     = regexp.MustCompile(`\$([^$]+?)\$`)
	linkPattern         = regexp.MustCompile(`\[([^\[\]]*)\]\(([^()\s]+)\)`)
)

// DefaultRules returns the built-in rule set in priority order. The table
// rule comes before every other block rule so that a `|a|b|` line is never
// taken for paragraph text.
func DefaultRules() []Rule {
	return []Rule{
		{ID: RuleTable, Kind: MultilineElement, Owns: []domain.Kind{domain.KindTable}, Pattern: tableRowPattern},
		{ID: RuleHorizontalRule, Kind: Element, Owns: []domain.Kind{domain.KindHorizontalRule}, Pattern: hrPattern},
		{ID: RuleEmbed, Kind: Element, Owns: []domain.Kind{domain.KindEmbed}, Pattern: embedPattern},
		{ID: RuleCodeBlock, Kind: MultilineElement, Owns: []domain.Kind{domain.KindCodeBlock}, Pattern: codeFencePattern},
		{ID: RuleHeading, Kind: Element, Owns: []domain.Kind{domain.KindHeading}, Pattern: headingPattern},
		{ID: RuleQuote, Kind: Element, Owns: []domain.Kind{domain.KindQuote}, Pattern: quotePattern},
		{ID: RuleList, Kind: Element, Owns: []domain.Kind{domain.KindList}, Pattern: listPattern},

		{ID: RuleImage, Kind: TextMatch, Owns: []domain.Kind{domain.KindInlineImage, domain.KindImage}, Pattern: imagePattern, Trigger: ')'},
		{ID: RuleEmoji, Kind: TextMatch, Pattern: emojiPattern, Trigger: ':'},
		{ID: RuleEquation, Kind: TextMatch, Owns: []domain.Kind{domain.KindEquation}, Pattern: equationPattern, Trigger: '$'},
		{ID: RuleLink, Kind: InlineElement, Owns: []domain.Kind{domain.KindLink}, Pattern: linkPattern},

		{ID: RuleInlineCode, Kind: TextFormat, Marker: "`", Format: domain.FormatCode},
		{ID: RuleBoldItalic, Kind: TextFormat, Marker: "***", Format: domain.FormatBold | domain.FormatItalic},
		{ID: RuleBoldItalicUnderscore, Kind: TextFormat, Marker: "___", Format: domain.FormatBold | domain.FormatItalic},
		{ID: RuleBold, Kind: TextFormat, Marker: "**", Format: domain.FormatBold},
		{ID: RuleBoldUnderscore, Kind: TextFormat, Marker: "__", Format: domain.FormatBold},
		{ID: RuleStrikethrough, Kind: TextFormat, Marker: "~~", Format: domain.FormatStrikethrough},
		{ID: RuleHighlight, Kind: TextFormat, Marker: "==", Format: domain.FormatHighlight},
		{ID: RuleItalic, Kind: TextFormat, Marker: "*", Format: domain.FormatItalic},
		{ID: RuleItalicUnderscore, Kind: TextFormat, Marker: "_", Format: domain.FormatItalic},
	}
}
