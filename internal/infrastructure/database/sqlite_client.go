package database

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"

	"github.com/rotisserie/eris"
	_ "modernc.org/sqlite"
)

const quoteRecordsSchema = `
CREATE TABLE IF NOT EXISTS quote_records (
	id          TEXT PRIMARY KEY,
	session_id  TEXT NOT NULL,
	quote_id    TEXT NOT NULL,
	created_seq INTEGER NOT NULL,
	doc         TEXT NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_quote_records_session ON quote_records(session_id, created_seq DESC);
CREATE UNIQUE INDEX IF NOT EXISTS idx_quote_records_quote ON quote_records(quote_id);
`

// ConnectSQLite opens (or creates) the local record store and applies the
// schema.
func ConnectSQLite(ctx context.Context, path string) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, eris.Wrap(err, "sqlite: create db dir")
	}

	dsn := path + "?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)&_pragma=synchronous(normal)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, eris.Wrap(err, "sqlite: open")
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "sqlite: ping")
	}
	if _, err := db.ExecContext(ctx, quoteRecordsSchema); err != nil {
		db.Close()
		return nil, eris.Wrap(err, "sqlite: migrate")
	}
	return db, nil
}
