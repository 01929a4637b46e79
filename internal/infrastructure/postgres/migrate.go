package postgres

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"sort"

	"github.com/jackc/pgx/v5/pgxpool"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

// Migrate ejecuta los scripts de migrations/ en orden alfabético. Son idempotentes
// (IF NOT EXISTS / CREATE OR REPLACE), así que se pueden correr en cada arranque.
func Migrate(ctx context.Context, pool *pgxpool.Pool) error {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return fmt.Errorf("listar migraciones: %w", err)
	}
	sort.Strings(names)
	for _, name := range names {
		sql, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("leer %s: %w", name, err)
		}
		if _, err := pool.Exec(ctx, string(sql)); err != nil {
			return fmt.Errorf("aplicar %s: %w", name, err)
		}
	}
	return nil
}

// Schema devuelve el SQL de todas las migraciones concatenado (lo usa el importador).
func Schema() (string, error) {
	names, err := fs.Glob(migrationsFS, "migrations/*.sql")
	if err != nil {
		return "", err
	}
	sort.Strings(names)
	var out string
	for _, name := range names {
		b, err := migrationsFS.ReadFile(name)
		if err != nil {
			return "", err
		}
		out += string(b) + "\n"
	}
	return out, nil
}
