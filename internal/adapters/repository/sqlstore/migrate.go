package sqlstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"time"
)

//go:embed migrations
var migrationFiles embed.FS

type Migration struct {
	Version   string
	Applied   bool
	AppliedAt *time.Time
}

const createMigrationsTable = `
	CREATE TABLE IF NOT EXISTS schema_migrations (
		version TEXT PRIMARY KEY,
		applied_at TIMESTAMP NOT NULL
	)
`

// Migrate applies every pending up migration for the driver, in file
// name order. It returns the versions it applied.
func Migrate(ctx context.Context, db *sql.DB, driver string) ([]string, error) {
	migrations, err := Status(ctx, db, driver)
	if err != nil {
		return nil, err
	}

	var applied []string
	for _, m := range migrations {
		if m.Applied {
			continue
		}
		if err := applyMigration(ctx, db, driver, m.Version); err != nil {
			return applied, err
		}
		applied = append(applied, m.Version)
	}

	return applied, nil
}

// Status lists the known migrations for the driver and whether each has
// been applied.
func Status(ctx context.Context, db *sql.DB, driver string) ([]Migration, error) {
	versions, err := migrationVersions(driver)
	if err != nil {
		return nil, err
	}

	if _, err := db.ExecContext(ctx, createMigrationsTable); err != nil {
		return nil, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	rows, err := db.QueryContext(ctx, `SELECT version, applied_at FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	defer rows.Close()

	appliedAt := make(map[string]time.Time)
	for rows.Next() {
		var version string
		var at time.Time
		if err := rows.Scan(&version, &at); err != nil {
			return nil, fmt.Errorf("failed to scan migration: %w", err)
		}
		appliedAt[version] = at
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating migrations: %w", err)
	}

	migrations := make([]Migration, 0, len(versions))
	for _, v := range versions {
		m := Migration{Version: v}
		if at, ok := appliedAt[v]; ok {
			m.Applied = true
			m.AppliedAt = &at
		}
		migrations = append(migrations, m)
	}
	return migrations, nil
}

func applyMigration(ctx context.Context, db *sql.DB, driver, version string) error {
	content, err := migrationFiles.ReadFile(path.Join("migrations", driver, version+".up.sql"))
	if err != nil {
		return fmt.Errorf("failed to read migration %s: %w", version, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("failed to execute migration %s: %w", version, err)
	}

	_, err = tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, applied_at) VALUES ($1, $2)`,
		version, time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("failed to record migration %s: %w", version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %s: %w", version, err)
	}
	return nil
}

func migrationVersions(driver string) ([]string, error) {
	entries, err := fs.ReadDir(migrationFiles, path.Join("migrations", driver))
	if err != nil {
		return nil, fmt.Errorf("no migrations for driver %q: %w", driver, err)
	}

	var versions []string
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".up.sql") {
			continue
		}
		versions = append(versions, strings.TrimSuffix(entry.Name(), ".up.sql"))
	}
	sort.Strings(versions)
	return versions, nil
}
