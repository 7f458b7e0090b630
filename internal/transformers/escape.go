package transformers

import "strings"

// EscapeCell encodes newlines in a table cell as the two characters `\n`
// so the cell fits on one markdown row.
func EscapeCell(s string) string {
	return strings.ReplaceAll(s, "\n", `\n`)
}

// UnescapeCell reverses EscapeCell.
func UnescapeCell(s string) string {
	return strings.ReplaceAll(s, `\n`, "\n")
}
