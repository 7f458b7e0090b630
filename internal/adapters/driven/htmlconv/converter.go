// Package htmlconv converts rich clipboard payloads to markdown.
//
// The payload is sanitised first, so script, style and event attributes
// never reach the converter, and then rendered with the commonmark and
// table plugins.
package htmlconv

import (
	"fmt"
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/microcosm-cc/bluemonday"

	"github.com/custodia-labs/marktext/internal/core/ports/driven"
)

// Verify interface compliance.
var _ driven.HTMLConverter = (*Converter)(nil)

// Converter implements driven.HTMLConverter.
type Converter struct {
	policy *bluemonday.Policy
	md     *converter.Converter
}

// New creates a converter with the user-generated-content sanitiser policy.
func New() *Converter {
	return &Converter{
		policy: bluemonday.UGCPolicy(),
		md: converter.NewConverter(
			converter.WithPlugins(
				base.NewBasePlugin(),
				commonmark.NewCommonmarkPlugin(),
				table.NewTablePlugin(),
			),
		),
	}
}

// ToMarkdown sanitises html and converts it to markdown.
func (c *Converter) ToMarkdown(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", nil
	}
	clean := c.policy.Sanitize(html)
	out, err := c.md.ConvertString(clean)
	if err != nil {
		return "", fmt.Errorf("converting html: %w", err)
	}
	return strings.TrimSpace(out), nil
}
