package zombiezen

import (
	"context"
	"embed"
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// sqlFiles embeds all SQL scripts from the sql/ subdirectory.
//
//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateCorpusTables executes the embedded corpus schema against the
// pool. Safe to run on an already initialized database.
func CreateCorpusTables(pool *sqlitex.Pool) error {
	script, err := sqlFiles.ReadFile("sql/corpus.sql")
	if err != nil {
		return fmt.Errorf("failed to read embedded sql file: %w", err)
	}

	conn, err := pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
		return fmt.Errorf("failed to execute corpus schema: %w", err)
	}
	return nil
}
