package sqlite

import (
	"context"
	"crypto/sha256"
	"database/sql"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"smartvault/internal/ports"

	_ "github.com/mattn/go-sqlite3"
)

const (
	schemaVersion = "1"

	// DefaultRetention is how many entries are kept before the oldest are pruned
	DefaultRetention = 5000
)

// Journal implements ports.ActivityJournal using SQLite
type Journal struct {
	db        *sql.DB
	dbPath    string
	retention int
}

// Ensure Journal implements ActivityJournal
var _ ports.ActivityJournal = (*Journal)(nil)

// Open opens (or creates) the journal at dbPath. An empty dbPath selects the
// per-backend default under the XDG data directory.
func Open(dbPath, backendAddr string) (*Journal, error) {
	if dbPath == "" {
		dbPath = DatabasePath(backendAddr)
	}
	if len(dbPath) > 0 && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create journal directory: %w", err)
	}

	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	_, err = db.Exec(`
		PRAGMA synchronous = NORMAL;
		PRAGMA temp_store = MEMORY;

		CREATE TABLE IF NOT EXISTS activity (
			id TEXT PRIMARY KEY,
			action TEXT NOT NULL,
			target TEXT NOT NULL,
			ok INTEGER NOT NULL,
			message TEXT NOT NULL,
			started_at INTEGER NOT NULL,
			duration_ms INTEGER NOT NULL
		);
		CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_activity_started ON activity(started_at);
	`)
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to setup database: %w", err)
	}

	j := &Journal{db: db, dbPath: dbPath, retention: DefaultRetention}
	if err := j.updateMeta(backendAddr); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to update metadata: %w", err)
	}
	return j, nil
}

// SetRetention changes how many entries are kept. Zero or less keeps everything.
func (j *Journal) SetRetention(n int) {
	j.retention = n
}

// Path returns the database file path
func (j *Journal) Path() string {
	return j.dbPath
}

// Close closes the database connection
func (j *Journal) Close() error {
	if j.db != nil {
		return j.db.Close()
	}
	return nil
}

// Record appends entry and prunes past the retention limit
func (j *Journal) Record(ctx context.Context, entry ports.ActivityEntry) error {
	tx, err := j.begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if err := tx.insert(entry); err != nil {
		return fmt.Errorf("failed to record %s: %w", entry.Action, err)
	}
	if j.retention > 0 {
		if err := tx.prune(j.retention); err != nil {
			return fmt.Errorf("failed to prune journal: %w", err)
		}
	}
	return tx.Commit()
}

// Recent returns up to limit entries, newest first
func (j *Journal) Recent(ctx context.Context, limit int) ([]ports.ActivityEntry, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := j.db.QueryContext(ctx, `
		SELECT id, action, target, ok, message, started_at, duration_ms
		FROM activity
		ORDER BY started_at DESC, rowid DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []ports.ActivityEntry
	for rows.Next() {
		var (
			e          ports.ActivityEntry
			ok         int
			startedAt  int64
			durationMs int64
		)
		if err := rows.Scan(&e.ID, &e.Action, &e.Target, &ok, &e.Message, &startedAt, &durationMs); err != nil {
			return nil, err
		}
		e.OK = ok != 0
		e.StartedAt = time.UnixMilli(startedAt)
		e.Duration = time.Duration(durationMs) * time.Millisecond
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

// DatabasePath returns the default journal path for a backend address
func DatabasePath(backendAddr string) string {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, _ := os.UserHomeDir()
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "smartvault", hashAddr(backendAddr)+".db")
}

// hashAddr returns a short hash of the backend address
func hashAddr(addr string) string {
	h := sha256.Sum256([]byte(addr))
	return hex.EncodeToString(h[:8])
}

func (j *Journal) updateMeta(backendAddr string) error {
	_, err := j.db.Exec(`
		INSERT OR REPLACE INTO meta (key, value) VALUES ('schema_version', ?);
		INSERT OR REPLACE INTO meta (key, value) VALUES ('backend_addr', ?);
	`, schemaVersion, backendAddr)
	return err
}
