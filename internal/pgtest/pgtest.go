//go:build integration

// Package pgtest starts a throwaway Postgres with the podmerge schema.
package pgtest

import (
	"context"
	"path/filepath"
	"runtime"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

var migrations = []string{
	"001_create_podcasts.up.sql",
	"002_create_user_data.up.sql",
	"003_create_merge_requests.up.sql",
}

var tables = []string{
	"merge_requests",
	"episode_actions",
	"episode_states",
	"podcast_publishers",
	"history_entries",
	"subscriptions",
	"merged_uuids",
	"slugs",
	"urls",
	"episodes",
	"podcasts",
}

type Database struct {
	DB        *sqlx.DB
	container *postgres.PostgresContainer
}

func Start(ctx context.Context) (*Database, error) {
	_, file, _, _ := runtime.Caller(0)
	migrationsPath := filepath.Join(filepath.Dir(file), "..", "..", "migrations")

	scripts := make([]string, 0, len(migrations))
	for _, name := range migrations {
		scripts = append(scripts, filepath.Join(migrationsPath, name))
	}

	container, err := postgres.Run(ctx,
		"postgres:16-alpine",
		postgres.WithDatabase("test_db"),
		postgres.WithUsername("test"),
		postgres.WithPassword("test"),
		postgres.WithInitScripts(scripts...),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, err
	}

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := sqlx.Connect("postgres", connStr)
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Database{DB: db, container: container}, nil
}

// Truncate empties every table between tests.
func (d *Database) Truncate(ctx context.Context) error {
	for _, table := range tables {
		if _, err := d.DB.ExecContext(ctx, "TRUNCATE TABLE "+table+" CASCADE"); err != nil {
			return err
		}
	}
	return nil
}

func (d *Database) Close(ctx context.Context) {
	if d.DB != nil {
		d.DB.Close()
	}
	if d.container != nil {
		_ = d.container.Terminate(ctx)
	}
}

func Ptr[T any](v T) *T {
	return &v
}
