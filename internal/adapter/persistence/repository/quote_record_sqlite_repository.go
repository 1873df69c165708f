package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/usecase/interfaces"
)

// QuoteRecordSQLiteRepository keeps each QuoteRecord as a JSON document in a
// local SQLite file. The lookup keys live in their own columns.
type QuoteRecordSQLiteRepository struct {
	db *sql.DB
}

var _ interfaces.IQuoteRecordRepository = (*QuoteRecordSQLiteRepository)(nil)

func NewQuoteRecordSQLiteRepository(db *sql.DB) *QuoteRecordSQLiteRepository {
	return &QuoteRecordSQLiteRepository{db: db}
}

func (r *QuoteRecordSQLiteRepository) Create(ctx context.Context, rec entities.QuoteRecord) (entities.QuoteRecord, error) {
	doc, err := json.Marshal(rec)
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrap(err, "sqlite: marshal quote record")
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO quote_records (id, session_id, quote_id, created_seq, doc) VALUES (?, ?, ?, ?, ?)`,
		rec.ID, rec.SessionID, rec.QuoteID, createdSeq(rec), string(doc),
	)
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrapf(err, "sqlite: insert quote record %s", rec.ID)
	}
	return rec, nil
}

func (r *QuoteRecordSQLiteRepository) GetByID(ctx context.Context, id string) (entities.QuoteRecord, error) {
	return r.getOne(ctx, `SELECT doc FROM quote_records WHERE id = ?`, id)
}

func (r *QuoteRecordSQLiteRepository) GetLatestBySessionID(ctx context.Context, sessionID string) (entities.QuoteRecord, error) {
	return r.getOne(ctx, `SELECT doc FROM quote_records WHERE session_id = ? ORDER BY created_seq DESC LIMIT 1`, sessionID)
}

func (r *QuoteRecordSQLiteRepository) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteRecord, error) {
	return r.getOne(ctx, `SELECT doc FROM quote_records WHERE quote_id = ?`, quoteID)
}

func (r *QuoteRecordSQLiteRepository) getOne(ctx context.Context, query string, arg string) (entities.QuoteRecord, error) {
	var doc string
	err := r.db.QueryRowContext(ctx, query, arg).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.QuoteRecord{}, nil
	}
	if err != nil {
		return entities.QuoteRecord{}, eris.Wrap(err, "sqlite: query quote record")
	}

	var rec entities.QuoteRecord
	if err := json.Unmarshal([]byte(doc), &rec); err != nil {
		return entities.QuoteRecord{}, eris.Wrap(err, "sqlite: decode quote record")
	}
	return rec, nil
}

// Patch applies every field with one json_set. On failure the fields are
// retried one at a time.
func (r *QuoteRecordSQLiteRepository) Patch(ctx context.Context, id string, fields map[string]any) ([]string, error) {
	keys := patchKeys(fields)
	if len(keys) == 0 {
		return nil, nil
	}

	err := r.update(ctx, id, keys, fields)
	if err == nil {
		return keys, nil
	}
	if errors.Is(err, ErrRecordNotFound) {
		return nil, err
	}
	zap.L().Warn("bulk patch failed, writing fields one by one",
		zap.String("id", id), zap.Int("fields", len(keys)), zap.Error(err))

	var written []string
	var lastErr error
	for _, k := range keys {
		if err := r.update(ctx, id, []string{k}, fields); err != nil {
			zap.L().Warn("field patch failed", zap.String("id", id), zap.String("field", k), zap.Error(err))
			lastErr = err
			continue
		}
		written = append(written, k)
	}
	if len(written) == 0 {
		return nil, lastErr
	}
	return written, nil
}

func (r *QuoteRecordSQLiteRepository) update(ctx context.Context, id string, keys []string, fields map[string]any) error {
	args := make([]any, 0, 2*len(keys)+1)
	pairs := make([]string, 0, len(keys))
	for _, k := range keys {
		raw, err := json.Marshal(fields[k])
		if err != nil {
			return eris.Wrapf(err, "sqlite: marshal %s", k)
		}
		pairs = append(pairs, "?, json(?)")
		args = append(args, `$."`+k+`"`, string(raw))
	}
	args = append(args, id)

	query := `UPDATE quote_records SET doc = json_set(doc, ` + strings.Join(pairs, ", ") + `) WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return eris.Wrapf(err, "sqlite: patch %s", id)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return eris.Wrapf(err, "sqlite: patch %s", id)
	}
	if n == 0 {
		return fmt.Errorf("sqlite: patch %s: %w", id, ErrRecordNotFound)
	}
	return nil
}
