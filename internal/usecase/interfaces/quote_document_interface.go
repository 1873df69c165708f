package interfaces

import (
	"context"
	"vacate_quote/internal/domain/entities"
)

// IQuoteDocumentRenderer produces the customer-facing quote document and
// returns the public link to it.
type IQuoteDocumentRenderer interface {
	Render(ctx context.Context, rec entities.QuoteRecord) (string, error)
}

// IQuoteMailer emails the quote document link to the customer.
type IQuoteMailer interface {
	SendQuote(ctx context.Context, email entities.QuoteEmail) error
}

// IQuoteDelivery hands a finalized record to document generation and email.
// Deliver must not block the caller's turn.
type IQuoteDelivery interface {
	Deliver(ctx context.Context, rec entities.QuoteRecord)
}
