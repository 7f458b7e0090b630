// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
//   - MarkdownCodec: tree <-> markdown conversion (transformers engine)
//   - PasteClassifier: markdown-likelihood predicate (classifier)
//   - EmojiTable: alias lookup used by the emoji rule
//   - DocumentStore: document persistence
//   - ConfigStore: application configuration
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HTMLConverter: converts rich paste payloads. Without it, rich
//     payloads fall back to plain-text insertion.
//   - MarkdownSource: folder sync and watch.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter or engine package
package driven
