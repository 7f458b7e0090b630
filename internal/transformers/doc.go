// Package transformers converts between markdown text and document trees.
//
// A Registry holds an ordered list of rules. Element rules match a whole
// line, text-match rules fire on a trigger character inside a text run and
// format rules wrap spans in marker pairs. Import splits markdown into one
// paragraph per line, applies the block rules in document order and then
// runs the inline pass over every block that still holds raw text. Export
// walks the tree and lets the rule that owns each node kind write it.
//
// The table rule rebuilds tables from consecutive `| a | b |` lines, with
// cell content imported recursively and newlines escaped as `\n`.
package transformers
