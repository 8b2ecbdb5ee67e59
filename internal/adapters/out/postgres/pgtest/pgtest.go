// Package pgtest starts a disposable PostgreSQL container with the schema
// applied, for integration suites.
package pgtest

import (
	"context"
	"fmt"
	"strings"
	"time"

	"logistics/internal/adapters/out/postgres"

	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Tables lists every application table, for truncation between tests.
var Tables = []string{"shipments", "users", "companies", "reference_repairs"}

type Database struct {
	Container *tcpostgres.PostgresContainer
	DSN       string
	DB        *gorm.DB
}

func Start(ctx context.Context) (*Database, error) {
	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("start postgres container: %w", err)
	}

	d := &Database{Container: container}

	if d.DSN, err = container.ConnectionString(ctx, "sslmode=disable"); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if err = postgres.MigrateUp(d.DSN); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	if d.DB, err = postgres.Open(d.DSN, logger.Silent); err != nil {
		_ = d.Terminate(ctx)
		return nil, err
	}

	return d, nil
}

// Truncate empties the given tables, or all of Tables when none are given.
func (d *Database) Truncate(ctx context.Context, tables ...string) error {
	if len(tables) == 0 {
		tables = Tables
	}
	return d.DB.WithContext(ctx).Exec("TRUNCATE TABLE " + strings.Join(tables, ", ")).Error
}

func (d *Database) Terminate(ctx context.Context) error {
	if d.Container == nil {
		return nil
	}
	return d.Container.Terminate(ctx)
}
