// Package migrations embeds the goose migration set for the postgres
// books of record. The seed command applies it at startup.
package migrations

import "embed"

// FS holds the ordered goose migrations.
//
//go:embed *.sql
var FS embed.FS
