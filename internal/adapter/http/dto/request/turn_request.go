package request

import "strings"

// TurnRequest is one chat message from the quote widget. The widget sends
// "__init__" as the message when it opens.
type TurnRequest struct {
	Message   string `json:"message"`
	SessionID string `json:"session_id"`
}

func (r TurnRequest) ResolveSessionID() string {
	return strings.TrimSpace(r.SessionID)
}

// ReferralRequest hands a quote to the office.
type ReferralRequest struct {
	Reason string `json:"reason" binding:"max=500"`
}
