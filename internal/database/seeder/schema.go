package seeder

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"skill-match/internal/database"
)

// ErrSchemaMismatch means the database is behind the seeders; run migrate first.
var ErrSchemaMismatch = errors.New("schema mismatch, run migrate first")

// EnsureTableColumns checks that table exists in the public schema with at
// least the given columns. Every missing column is reported at once.
func EnsureTableColumns(ctx context.Context, db database.DB, table string, columns ...string) error {
	if db == nil {
		return errors.New("nil db")
	}
	if table == "" || len(columns) == 0 {
		return errors.New("table and columns are required")
	}

	rows, err := db.Query(ctx,
		`SELECT column_name FROM information_schema.columns WHERE table_schema = 'public' AND table_name = $1`,
		table,
	)
	if err != nil {
		return fmt.Errorf("inspect %s: %w", table, err)
	}
	defer rows.Close()

	have := make(map[string]bool)
	for rows.Next() {
		var col string
		if err := rows.Scan(&col); err != nil {
			return err
		}
		have[col] = true
	}
	if err := rows.Err(); err != nil {
		return err
	}

	if len(have) == 0 {
		return fmt.Errorf("%w: table %s does not exist", ErrSchemaMismatch, table)
	}
	var missing []string
	for _, col := range columns {
		if !have[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return fmt.Errorf("%w: %s is missing %s", ErrSchemaMismatch, table, strings.Join(missing, ", "))
	}
	return nil
}
