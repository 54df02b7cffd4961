// Package testdb opens migrated databases for tests: an in-process SQLite one for
// fast unit tests and a PostgreSQL testcontainer for integration suites.
package testdb

import (
	"context"
	"fmt"
	"testing"
	"time"

	"smartlogi/internal/adapters/out/postgres"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// SQLite returns a private in-memory database with the full schema.
// It is closed when the test ends.
func SQLite(t testing.TB) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sqlite handle: %v", err)
	}
	// one connection keeps the in-memory database alive and serializes writers
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := postgres.Migrate(db); err != nil {
		t.Fatalf("migrate sqlite: %v", err)
	}
	return db
}

// Container is a running PostgreSQL instance with the schema applied.
type Container struct {
	*tcpostgres.PostgresContainer
	DB *gorm.DB
}

// StartPostgres runs postgres:15-alpine and migrates it.
func StartPostgres(ctx context.Context) (*Container, error) {
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
		return nil, err
	}

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	db, err := gorm.Open(gormpostgres.Open(dsn), &gorm.Config{Logger: logger.Discard})
	if err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	if err := postgres.Migrate(db); err != nil {
		_ = container.Terminate(ctx)
		return nil, err
	}

	return &Container{PostgresContainer: container, DB: db}, nil
}

// Truncate empties every table, for SetupTest.
func (c *Container) Truncate() error {
	return c.DB.Exec("TRUNCATE TABLE parcel_history, parcel_line_items, parcels, actors, products, zones").Error
}
