package sqlite_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/msomdec/deskbreak/internal/domain"
	"github.com/msomdec/deskbreak/internal/repository/sqlite"
)

// Verify that *sqlite.DB implements domain.Database at compile time.
var _ domain.Database = (*sqlite.DB)(nil)

func newTestDB(t *testing.T) *sqlite.DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := db.Migrate(context.Background()); err != nil {
		t.Fatalf("Migrate: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func TestNew(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	db, err := sqlite.New(dbPath)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer db.Close()

	// Verify the file was created.
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Fatal("database file was not created")
	}

	// Verify we can ping the database.
	if err := db.SqlDB.Ping(); err != nil {
		t.Fatalf("ping: %v", err)
	}

	// Verify foreign keys are enabled.
	var fkEnabled int
	if err := db.SqlDB.QueryRow("PRAGMA foreign_keys").Scan(&fkEnabled); err != nil {
		t.Fatalf("check foreign_keys: %v", err)
	}
	if fkEnabled != 1 {
		t.Fatalf("expected foreign_keys=1, got %d", fkEnabled)
	}
}

func TestMigrate(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Verify both tables exist by inserting a row each.
	_, err := db.SqlDB.ExecContext(ctx,
		`INSERT INTO sessions (id, user_id, session_date, sitting_duration, activity_duration, completed, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		"s-1", domain.DefaultUserID, "2026-08-31", 50, 10, 0, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("insert into sessions: %v", err)
	}

	_, err = db.SqlDB.ExecContext(ctx,
		`INSERT INTO user_settings (id, user_id, sitting_reminder_minutes, activity_break_minutes,
		 notifications_enabled, sound_alerts_enabled, daily_goal_sessions, timestamp)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		"u-1", domain.DefaultUserID, 50, 10, 1, 1, 8, time.Now().UTC(),
	)
	if err != nil {
		t.Fatalf("insert into user_settings: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	// Second run should be a no-op.
	if err := db.Migrate(ctx); err != nil {
		t.Fatalf("second Migrate (idempotent): %v", err)
	}

	var count int
	err := db.SqlDB.QueryRowContext(ctx, "SELECT COUNT(*) FROM schema_migrations").Scan(&count)
	if err != nil {
		t.Fatalf("count schema_migrations: %v", err)
	}
	if count != 2 {
		t.Fatalf("expected 2 migration records, got %d", count)
	}
}
