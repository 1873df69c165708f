package response

import "vacate_quote/internal/domain/entities"

// TurnResponse is the reply to one chat message.
type TurnResponse struct {
	Properties  []entities.FieldUpdate `json:"properties"`
	Response    string                 `json:"response"`
	NextActions []entities.NextAction  `json:"next_actions"`
	SessionID   string                 `json:"session_id"`
	QuoteID     string                 `json:"quote_id,omitempty"`
	Stage       string                 `json:"quote_stage,omitempty"`
}

// FromTurnResult never leaves the lists null.
func FromTurnResult(r entities.TurnResult) TurnResponse {
	props := r.UpdatedFields
	if props == nil {
		props = []entities.FieldUpdate{}
	}
	actions := r.NextActions
	if actions == nil {
		actions = []entities.NextAction{}
	}
	return TurnResponse{
		Properties:  props,
		Response:    r.Reply,
		NextActions: actions,
		SessionID:   r.SessionID,
		QuoteID:     r.QuoteID,
		Stage:       string(r.Stage),
	}
}
