package response

import (
	"time"

	"vacate_quote/internal/domain/entities"
)

// QuoteResponse is the administrative view of a quote record. The transcript
// and diagnostic log are left out.
type QuoteResponse struct {
	ID             string                   `json:"id"`
	QuoteID        string                   `json:"quote_id"`
	SessionID      string                   `json:"session_id"`
	Stage          string                   `json:"quote_stage"`
	Attributes     entities.QuoteAttributes `json:"attributes"`
	Price          *entities.PriceBreakdown `json:"price,omitempty"`
	PDFLink        string                   `json:"pdf_link,omitempty"`
	BookingURL     string                   `json:"booking_url,omitempty"`
	ReferralReason string                   `json:"referral_reason,omitempty"`
	CreatedAt      time.Time                `json:"created_at"`
	UpdatedAt      time.Time                `json:"updated_at"`
}

func FromQuoteRecord(rec entities.QuoteRecord) QuoteResponse {
	res := QuoteResponse{
		ID:             rec.ID,
		QuoteID:        rec.QuoteID,
		SessionID:      rec.SessionID,
		Stage:          string(rec.Stage),
		Attributes:     rec.QuoteAttributes,
		PDFLink:        rec.PDFLink,
		BookingURL:     rec.BookingURL,
		ReferralReason: rec.ReferralReason,
		CreatedAt:      rec.CreatedAt,
		UpdatedAt:      rec.UpdatedAt,
	}
	if rec.TotalPrice > 0 {
		price := rec.PriceBreakdown
		res.Price = &price
	}
	return res
}
