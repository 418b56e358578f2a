// Package schema contains embedded migration files.
package schema

import "embed"

// MigrationsFS contains all SQL migration files from pgmigrations directory.
//
//go:embed pgmigrations/*.sql
var MigrationsFS embed.FS

// LiteMigrationsFS contains the SQLite variant of the task schema from
// the litemigrations directory.
//
//go:embed litemigrations/*.sql
var LiteMigrationsFS embed.FS
