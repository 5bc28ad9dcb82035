// Package migrations embeds the PostgreSQL schema migrations.
package migrations

import "embed"

// Postgres holds the goose migrations for the remote database, rooted at
// "postgres".
//
//go:embed postgres/*.sql
var Postgres embed.FS
