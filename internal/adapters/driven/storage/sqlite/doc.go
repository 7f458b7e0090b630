// Package sqlite persists documents in a local SQLite database.
//
// It uses modernc.org/sqlite, a pure Go driver, so the binary builds
// without CGO. Documents are stored in their exported markdown form; the
// tree is rebuilt on demand.
//
// # Schema
//
// The schema is managed through numbered migrations embedded from the
// migrations/ directory. Applied versions are recorded in
// schema_migrations.
//
// # Data Location
//
// By default, the database is stored at ~/.marktext/data/documents.db and
// opened in WAL mode.
package sqlite
