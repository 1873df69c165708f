package entities

// ExtractedAttribute is one (field, value) pair proposed by the extraction oracle.
// Value is untyped: the oracle may answer "yes", true, "3" or 3.
type ExtractedAttribute struct {
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// ExtractionMode tells the oracle what the turn is for.
type ExtractionMode string

const (
	ExtractionModeInit         ExtractionMode = "init"
	ExtractionModeGathering    ExtractionMode = "gathering"
	ExtractionModePersonalInfo ExtractionMode = "personal_info"
	ExtractionModeFollowUp     ExtractionMode = "follow_up"
)

// ExtractionRequest is the input of one oracle call.
type ExtractionRequest struct {
	QuoteID    string
	Message    string
	Transcript Transcript
	Stage      QuoteStage
	Mode       ExtractionMode
}

// ExtractionResult is the oracle's structured answer.
type ExtractionResult struct {
	Attributes []ExtractedAttribute
	Reply      string
}

// FieldUpdate is a field changed during a turn, as reported to the client.
type FieldUpdate struct {
	Property string `json:"property"`
	Value    any    `json:"value"`
}

// NextAction is an option offered to the customer once the quote is priced.
type NextAction struct {
	Action string `json:"action"`
	Label  string `json:"label"`
	URL    string `json:"url,omitempty"`
}

const (
	ActionProceedToBooking = "proceed_to_booking"
	ActionDownloadPDF      = "download_pdf"
	ActionEmailPDF         = "email_pdf"
	ActionAskQuestions     = "ask_more_questions"
)

// TurnResult is what one inbound message produces.
type TurnResult struct {
	UpdatedFields []FieldUpdate
	Reply         string
	NextActions   []NextAction
	SessionID     string
	QuoteID       string
	Stage         QuoteStage
}

// QuoteEmail is the message handed to the mailer once the document exists.
type QuoteEmail struct {
	QuoteID      string
	To           string
	CustomerName string
	DocumentURL  string
	BookingURL   string
}
