package migrations

import "embed"

// Migrations SQL embebido para goose.
//
//go:embed *.sql
var Migrations embed.FS
