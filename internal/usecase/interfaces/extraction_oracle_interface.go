package interfaces

import (
	"context"
	"vacate_quote/internal/domain/entities"
)

// IExtractionOracle turns a customer message plus the transcript into proposed
// attributes and a reply. Malformed model output is reported as an error; the
// caller decides how to degrade.
type IExtractionOracle interface {
	Extract(ctx context.Context, req entities.ExtractionRequest) (entities.ExtractionResult, error)
}
