package repository

import (
	"errors"
	"sort"
	"time"

	"vacate_quote/internal/domain/entities"
)

// ErrRecordNotFound is returned by Patch when the target record is missing.
var ErrRecordNotFound = errors.New("quote record not found")

// immutableFields cannot be changed through Patch.
var immutableFields = map[string]bool{"id": true, "session_id": true, "quote_id": true, "created_at": true}

// patchKeys returns the patchable field names in a stable order.
func patchKeys(fields map[string]any) []string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		if k == "" || immutableFields[k] {
			continue
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// createdSeq orders records of one session, newest last.
func createdSeq(rec entities.QuoteRecord) int64 {
	if rec.CreatedAt.IsZero() {
		return time.Now().UTC().UnixNano()
	}
	return rec.CreatedAt.UTC().UnixNano()
}
