// Package migrations embeds the SQL schema migrations for the SQLite
// document store. Files are named NNN_name.up.sql and applied in order.
package migrations

import "embed"

// FS holds the migration files.
//
//go:embed *.sql
var FS embed.FS
