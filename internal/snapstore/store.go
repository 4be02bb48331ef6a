// Package snapstore memoizes computed metrics snapshots across runs, keyed by
// a content hash of the filtered input dataset.
package snapstore

import (
	"database/sql"
	"fmt"

	_ "github.com/go-sql-driver/mysql"  // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib"  // PostgreSQL driver
	_ "modernc.org/sqlite"              // SQLite driver

	"github.com/huangsam/stackrank/internal/contract"
	"github.com/huangsam/stackrank/schema"
)

// snapshotsTable is the table holding memoized snapshots.
const snapshotsTable = "stackrank_snapshots"

// Store handles durable snapshot storage using various database backends.
type Store struct {
	db      *sql.DB
	backend schema.DatabaseBackend
}

var _ contract.SnapshotStore = &Store{} // Compile-time check

// New initializes and returns a snapshot store for the backend type.
// NoneBackend returns a no-op store so callers never branch on caching.
func New(backend schema.DatabaseBackend, connStr string) (*Store, error) {
	var db *sql.DB
	var err error

	switch backend {
	case schema.SQLiteBackend:
		dbPath := connStr
		if dbPath == "" {
			dbPath = contract.GetDBFilePath()
		}
		db, err = sql.Open("sqlite", dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SQLite snapshot store at %q: %w. Ensure the directory is writable", dbPath, err)
		}
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)

	case schema.MySQLBackend:
		// connStr should be:
		// user:password@tcp(host:port)/dbname
		db, err = sql.Open("mysql", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to MySQL snapshot store: %w. Check connection format: user:password@tcp(host:port)/dbname", err)
		}

	case schema.PostgreSQLBackend:
		// connStr should be:
		// host=localhost port=5432 user=postgres password=secret dbname=postgres
		db, err = sql.Open("pgx", connStr)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to PostgreSQL snapshot store: %w. Check connection format: host=localhost port=5432 user=postgres dbname=mydb", err)
		}

	case schema.NoneBackend:
		return &Store{db: nil, backend: backend}, nil

	default:
		return nil, fmt.Errorf("unsupported snapshot backend: %s. Must be sqlite, mysql, postgres, or none", backend)
	}

	// Ping to verify connection
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to connect to %s database. Check that the server is running and connection parameters are valid: %w", backend, err)
	}

	if err := Migrate(db, backend, -1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to migrate snapshot store: %w", err)
	}

	return &Store{db: db, backend: backend}, nil
}

// getPlaceholder returns the parameter placeholder for the backend.
func (s *Store) getPlaceholder(n int) string {
	if s.backend == schema.PostgreSQLBackend {
		return fmt.Sprintf("$%d", n)
	}
	return "?"
}

// Get retrieves a snapshot by key. A miss is reported via ok=false, not an error.
func (s *Store) Get(key string) ([]byte, bool, error) {
	if s.db == nil {
		return nil, false, nil
	}

	query := fmt.Sprintf(`SELECT snapshot_value FROM %s WHERE snapshot_key = %s`,
		snapshotsTable, s.getPlaceholder(1))

	var value []byte
	if err := s.db.QueryRow(query, key).Scan(&value); err != nil {
		if err == sql.ErrNoRows {
			return nil, false, nil
		}
		return nil, false, err
	}
	return value, true, nil
}

// Set inserts or replaces the snapshot for a key.
func (s *Store) Set(key string, value []byte, createdAt int64) error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(s.getUpsertQuery(), key, value, createdAt)
	return err
}

// getUpsertQuery returns the UPSERT query for the backend.
func (s *Store) getUpsertQuery() string {
	switch s.backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (snapshot_key, snapshot_value, created_at) VALUES (?, ?, ?) AS new
			ON DUPLICATE KEY UPDATE snapshot_value = new.snapshot_value, created_at = new.created_at`, snapshotsTable)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`INSERT INTO %s (snapshot_key, snapshot_value, created_at) VALUES ($1, $2, $3)
			ON CONFLICT (snapshot_key) DO UPDATE SET snapshot_value = EXCLUDED.snapshot_value, created_at = EXCLUDED.created_at`, snapshotsTable)

	default: // SQLite
		return fmt.Sprintf(`INSERT OR REPLACE INTO %s (snapshot_key, snapshot_value, created_at) VALUES (?, ?, ?)`, snapshotsTable)
	}
}

// Count returns the number of stored snapshots.
func (s *Store) Count() (int, error) {
	if s.db == nil {
		return 0, nil
	}
	var count int
	err := s.db.QueryRow(fmt.Sprintf(`SELECT COUNT(*) FROM %s`, snapshotsTable)).Scan(&count)
	return count, err
}

// Clear removes all stored snapshots.
func (s *Store) Clear() error {
	if s.db == nil {
		return nil
	}
	_, err := s.db.Exec(fmt.Sprintf(`DELETE FROM %s`, snapshotsTable))
	return err
}

// MigrateTo migrates the snapshot schema to the given version.
// See Migrate for the targetVersion semantics.
func (s *Store) MigrateTo(targetVersion int) error {
	if s.db == nil {
		return nil
	}
	return Migrate(s.db, s.backend, targetVersion)
}

// Backend reports the backing database kind.
func (s *Store) Backend() schema.DatabaseBackend {
	return s.backend
}

// Close closes the underlying DB connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
