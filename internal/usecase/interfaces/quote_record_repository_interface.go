package interfaces

import (
	"context"
	"vacate_quote/internal/domain/entities"
)

// IQuoteRecordRepository abstracts the external record store holding one
// QuoteRecord per quote.
//
// Lookups return a zero-value record (ID == "") when nothing matches.
//
// Patch is best-effort: the bulk write is tried first and, when it fails, every
// field is retried on its own. It returns the names of the fields that were
// written; an error is returned only when none of them could be.
type IQuoteRecordRepository interface {
	Create(ctx context.Context, rec entities.QuoteRecord) (entities.QuoteRecord, error)
	GetByID(ctx context.Context, id string) (entities.QuoteRecord, error)
	GetLatestBySessionID(ctx context.Context, sessionID string) (entities.QuoteRecord, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteRecord, error)
	Patch(ctx context.Context, id string, fields map[string]any) ([]string, error)
}
