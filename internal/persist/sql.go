package persist

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	_ "github.com/lib/pq" // PostgreSQL driver
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder and DDL flavour.
type Dialect uint8

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// SQLStore keeps saves in a "saves" table, one row per slot.
type SQLStore struct {
	db      *sql.DB
	dialect Dialect
	slot    string
	owner   bool
}

// OpenSQLite opens (creating if needed) a SQLite database file.
func OpenSQLite(ctx context.Context, path, slot string) (*SQLStore, error) {
	if path == "" {
		return nil, errors.New("persist: empty sqlite path")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("persist: %w", err)
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("persist: open sqlite: %w", err)
	}
	db.SetMaxOpenConns(1)
	return newSQLStore(ctx, db, DialectSQLite, slot)
}

// OpenPostgres connects to a PostgreSQL server.
func OpenPostgres(ctx context.Context, dsn, slot string) (*SQLStore, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("persist: open postgres: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("persist: ping postgres: %w", err)
	}
	return newSQLStore(ctx, db, DialectPostgres, slot)
}

func newSQLStore(ctx context.Context, db *sql.DB, d Dialect, slot string) (*SQLStore, error) {
	s := &SQLStore{db: db, dialect: d, slot: slot, owner: true}
	if err := s.initSchema(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) initSchema(ctx context.Context) error {
	blob := "BLOB"
	if s.dialect == DialectPostgres {
		blob = "BYTEA"
	}
	_, err := s.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS saves (
		slot     TEXT PRIMARY KEY,
		run_id   TEXT NOT NULL,
		depth    INTEGER NOT NULL,
		saved_at BIGINT NOT NULL,
		data     `+blob+` NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("persist: create schema: %w", err)
	}
	return nil
}

// WithSlot returns a store for another slot sharing the same connection.
// Closing the derived store leaves the connection open.
func (s *SQLStore) WithSlot(slot string) *SQLStore {
	return &SQLStore{db: s.db, dialect: s.dialect, slot: cleanSlot(slot)}
}

// rebind rewrites ? placeholders into $n for PostgreSQL.
func (s *SQLStore) rebind(query string) string {
	if s.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteString("$" + strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *SQLStore) Save(ctx context.Context, snap *Snapshot) error {
	data, err := Encode(snap)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx, s.rebind(`INSERT INTO saves (slot, run_id, depth, saved_at, data)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT (slot) DO UPDATE SET
			run_id = excluded.run_id, depth = excluded.depth,
			saved_at = excluded.saved_at, data = excluded.data`),
		s.slot, snap.RunID.String(), snap.Depth, snap.SavedAt.UnixNano(), data)
	if err != nil {
		return fmt.Errorf("persist: save %q: %w", s.slot, err)
	}
	return nil
}

func (s *SQLStore) Load(ctx context.Context) (*Snapshot, error) {
	var data []byte
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT data FROM saves WHERE slot = ?`), s.slot).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNoSave
	}
	if err != nil {
		return nil, fmt.Errorf("persist: load %q: %w", s.slot, err)
	}
	return Decode(data)
}

func (s *SQLStore) Exists(ctx context.Context) (bool, error) {
	var n int
	err := s.db.QueryRowContext(ctx, s.rebind(`SELECT COUNT(*) FROM saves WHERE slot = ?`), s.slot).Scan(&n)
	if err != nil {
		return false, fmt.Errorf("persist: exists %q: %w", s.slot, err)
	}
	return n > 0, nil
}

func (s *SQLStore) Delete(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, s.rebind(`DELETE FROM saves WHERE slot = ?`), s.slot); err != nil {
		return fmt.Errorf("persist: delete %q: %w", s.slot, err)
	}
	return nil
}

func (s *SQLStore) Close() error {
	if !s.owner {
		return nil
	}
	return s.db.Close()
}
