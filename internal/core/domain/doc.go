// Package domain defines the core entities for marktext.
//
// This package is part of the hexagonal architecture's innermost layer.
// It has NO external dependencies and defines the fundamental types:
//
//   - Tree: an arena of block and inline nodes addressed by NodeID
//   - Node: one tagged node (paragraph, heading, table, text run, ...)
//   - Document: a stored document persisted as markdown
//   - PasteEvent / PasteResult: the paste boundary with the host
//   - Settings: application configuration
//
// # Architectural Position
//
// Domain is at the centre of the hexagon. It may only import
// the Go standard library. All other packages depend on domain,
// never the reverse.
package domain
