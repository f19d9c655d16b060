package migrations

import "embed"

// FS holds the versioned schema files applied by the migration runner.
//
//go:embed *.sql
var FS embed.FS
