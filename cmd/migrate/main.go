// Command migrate applies the SQL migrations in migrations/ against
// the configured database, tracking state in schema_migrations.
package main

import (
	"context"
	"database/sql"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/lib/pq"

	"github.com/echub/compliance-hub-backend/internal/infrastructure/config"
)

const (
	migrationsTable = "schema_migrations"
	migrationsDir   = "migrations"
)

type migration struct {
	ID        string
	Filename  string
	AppliedAt time.Time
}

func main() {
	var (
		action = flag.String("action", "up", "Migration action: up, status, create")
		name   = flag.String("name", "", "Migration name (for create action)")
		steps  = flag.Int("steps", 0, "Number of migrations to apply (0 = all)")
	)
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx := context.Background()

	if *action == "create" {
		if *name == "" {
			slog.Error("migration name is required for create action")
			os.Exit(1)
		}
		if err := createMigration(*name); err != nil {
			slog.Error("create failed", "error", err)
			os.Exit(1)
		}
		return
	}

	db, err := sql.Open("postgres", cfg.Database.URL)
	if err != nil {
		slog.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	m := &migrator{db: db}

	switch *action {
	case "up":
		err = m.up(ctx, *steps)
	case "status":
		err = m.status(ctx)
	default:
		slog.Error("unknown action", "action", *action)
		os.Exit(1)
	}
	if err != nil {
		slog.Error("migration failed", "error", err)
		os.Exit(1)
	}
}

type migrator struct {
	db *sql.DB
}

func (m *migrator) ensureTable(ctx context.Context) error {
	_, err := m.db.ExecContext(ctx, fmt.Sprintf(`
		CREATE TABLE IF NOT EXISTS %s (
			id         TEXT PRIMARY KEY,
			filename   TEXT NOT NULL,
			applied_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)`, migrationsTable))
	return err
}

func (m *migrator) applied(ctx context.Context) (map[string]migration, error) {
	if err := m.ensureTable(ctx); err != nil {
		return nil, fmt.Errorf("ensuring migrations table: %w", err)
	}

	rows, err := m.db.QueryContext(ctx, fmt.Sprintf(
		"SELECT id, filename, applied_at FROM %s ORDER BY applied_at", migrationsTable))
	if err != nil {
		return nil, fmt.Errorf("querying applied migrations: %w", err)
	}
	defer rows.Close()

	out := make(map[string]migration)
	for rows.Next() {
		var mg migration
		if err := rows.Scan(&mg.ID, &mg.Filename, &mg.AppliedAt); err != nil {
			return nil, fmt.Errorf("scanning migration row: %w", err)
		}
		out[mg.ID] = mg
	}
	return out, rows.Err()
}

func (m *migrator) pending(ctx context.Context) ([]string, error) {
	applied, err := m.applied(ctx)
	if err != nil {
		return nil, err
	}

	files, err := filepath.Glob(filepath.Join(migrationsDir, "*.sql"))
	if err != nil {
		return nil, fmt.Errorf("listing migration files: %w", err)
	}
	sort.Strings(files)

	var out []string
	for _, file := range files {
		if _, ok := applied[migrationID(file)]; !ok {
			out = append(out, file)
		}
	}
	return out, nil
}

func (m *migrator) up(ctx context.Context, steps int) error {
	pending, err := m.pending(ctx)
	if err != nil {
		return err
	}
	if len(pending) == 0 {
		slog.Info("no pending migrations")
		return nil
	}
	if steps > 0 && steps < len(pending) {
		pending = pending[:steps]
	}

	for _, file := range pending {
		if err := m.apply(ctx, file); err != nil {
			return fmt.Errorf("applying %s: %w", file, err)
		}
		slog.Info("applied migration", "file", file)
	}
	slog.Info("migrations completed", "count", len(pending))
	return nil
}

func (m *migrator) apply(ctx context.Context, file string) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading migration file: %w", err)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, string(content)); err != nil {
		return fmt.Errorf("executing migration SQL: %w", err)
	}
	if _, err := tx.ExecContext(ctx,
		fmt.Sprintf("INSERT INTO %s (id, filename) VALUES ($1, $2)", migrationsTable),
		migrationID(file), filepath.Base(file)); err != nil {
		return fmt.Errorf("recording migration: %w", err)
	}
	return tx.Commit()
}

func (m *migrator) status(ctx context.Context) error {
	applied, err := m.applied(ctx)
	if err != nil {
		return err
	}
	pending, err := m.pending(ctx)
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(applied))
	for id := range applied {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	fmt.Printf("Applied migrations: %d\n", len(applied))
	for _, id := range ids {
		mg := applied[id]
		fmt.Printf("  %s (applied at %s)\n", mg.Filename, mg.AppliedAt.Format(time.RFC3339))
	}
	fmt.Printf("\nPending migrations: %d\n", len(pending))
	for _, file := range pending {
		fmt.Printf("  %s\n", filepath.Base(file))
	}
	return nil
}

func createMigration(name string) error {
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return fmt.Errorf("creating migrations directory: %w", err)
	}

	id := fmt.Sprintf("%s_%s", time.Now().Format("20060102150405"), name)
	path := filepath.Join(migrationsDir, id+".sql")
	content := fmt.Sprintf("-- Migration: %s\n-- Created at: %s\n\n", name, time.Now().Format(time.RFC3339))

	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("writing migration file: %w", err)
	}
	slog.Info("created migration", "file", path)
	return nil
}

func migrationID(file string) string {
	return strings.TrimSuffix(filepath.Base(file), ".sql")
}
