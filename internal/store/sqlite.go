package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"

	"soulshub/internal/observability"
)

// sqliteStore keeps the whole namespace in a single kv table inside an
// embedded SQLite file. This is the default backend: a single community
// deployment with local-first durability and no external services.
type sqliteStore struct {
	db *sql.DB
}

// OpenSQLite opens (creating if needed) the key-value database at path.
func OpenSQLite(path string) (Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite store: %w", err)
	}

	// A single writer is plenty here and sidesteps SQLITE_BUSY under
	// concurrent handlers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(`PRAGMA journal_mode=WAL`); err != nil {
		db.Close()
		return nil, fmt.Errorf("enable WAL: %w", err)
	}

	schema := `CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value BLOB NOT NULL,
		updated_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
	)`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("create kv table: %w", err)
	}

	return &sqliteStore{db: db}, nil
}

func (s *sqliteStore) Get(ctx context.Context, key string) ([]byte, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "sqlite", "get", key)
	defer span.End()
	defer observability.TrackStoreOperation("sqlite", "get")()

	var value []byte
	err := s.db.QueryRowContext(ctx, `SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		observability.StoreErrorRate.WithLabelValues("sqlite", "get").Inc()
		observability.RecordSpanError(span, err)
		return nil, fmt.Errorf("get %q: %w", key, err)
	}
	return value, nil
}

func (s *sqliteStore) Put(ctx context.Context, key string, value []byte) error {
	ctx, span := observability.TraceStoreOperation(ctx, "sqlite", "put", key)
	defer span.End()
	defer observability.TrackStoreOperation("sqlite", "put")()

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP`,
		key, value)
	if err != nil {
		observability.StoreErrorRate.WithLabelValues("sqlite", "put").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("put %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Delete(ctx context.Context, key string) error {
	ctx, span := observability.TraceStoreOperation(ctx, "sqlite", "delete", key)
	defer span.End()
	defer observability.TrackStoreOperation("sqlite", "delete")()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key = ?`, key); err != nil {
		observability.StoreErrorRate.WithLabelValues("sqlite", "delete").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("delete %q: %w", key, err)
	}
	return nil
}

func (s *sqliteStore) Keys(ctx context.Context, prefix string) ([]string, error) {
	ctx, span := observability.TraceStoreOperation(ctx, "sqlite", "keys", prefix)
	defer span.End()
	defer observability.TrackStoreOperation("sqlite", "keys")()

	rows, err := s.db.QueryContext(ctx,
		`SELECT key FROM kv WHERE key LIKE ? || '%' ORDER BY key`, prefix)
	if err != nil {
		observability.StoreErrorRate.WithLabelValues("sqlite", "keys").Inc()
		observability.RecordSpanError(span, err)
		return nil, fmt.Errorf("keys %q: %w", prefix, err)
	}
	defer rows.Close()

	var keys []string
	for rows.Next() {
		var k string
		if err := rows.Scan(&k); err != nil {
			return nil, fmt.Errorf("scan key: %w", err)
		}
		keys = append(keys, k)
	}
	return keys, rows.Err()
}

func (s *sqliteStore) WipePrefix(ctx context.Context, prefix string) error {
	ctx, span := observability.TraceStoreOperation(ctx, "sqlite", "wipe", prefix)
	defer span.End()
	defer observability.TrackStoreOperation("sqlite", "wipe")()

	if _, err := s.db.ExecContext(ctx, `DELETE FROM kv WHERE key LIKE ? || '%'`, prefix); err != nil {
		observability.StoreErrorRate.WithLabelValues("sqlite", "wipe").Inc()
		observability.RecordSpanError(span, err)
		return fmt.Errorf("wipe %q: %w", prefix, err)
	}
	return nil
}

func (s *sqliteStore) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *sqliteStore) Close() error {
	return s.db.Close()
}
