package entities

// QuoteStage represents the phase a quoting conversation is in.
//
// Main path:
//
//	Gathering Info -> Quote Calculated -> Gathering Personal Info -> Personal Info Received -> Booking Confirmed
//
// Escalation path: Abuse Warning -> Chat Banned. Referred to Office can be reached from any
// non-terminal stage.
type QuoteStage string

const (
	StageGatheringInfo         QuoteStage = "Gathering Info"
	StageQuoteCalculated       QuoteStage = "Quote Calculated"
	StageGatheringPersonalInfo QuoteStage = "Gathering Personal Info"
	StagePersonalInfoReceived  QuoteStage = "Personal Info Received"
	StageBookingConfirmed      QuoteStage = "Booking Confirmed"
	StageAbuseWarning          QuoteStage = "Abuse Warning"
	StageChatBanned            QuoteStage = "Chat Banned"
	StageReferredToOffice      QuoteStage = "Referred to Office"
)

// IsTerminal reports whether no further turn may change the record.
func (s QuoteStage) IsTerminal() bool {
	switch s {
	case StageChatBanned, StageBookingConfirmed, StageReferredToOffice:
		return true
	}
	return false
}

// IsPriced reports whether the quote has been committed to a price. Required
// attributes are frozen from this point on.
func (s QuoteStage) IsPriced() bool {
	switch s {
	case StageQuoteCalculated, StageGatheringPersonalInfo, StagePersonalInfoReceived, StageBookingConfirmed:
		return true
	}
	return false
}

// IsKnown reports whether s is one of the declared stages.
func (s QuoteStage) IsKnown() bool {
	switch s {
	case StageGatheringInfo, StageQuoteCalculated, StageGatheringPersonalInfo, StagePersonalInfoReceived,
		StageBookingConfirmed, StageAbuseWarning, StageChatBanned, StageReferredToOffice:
		return true
	}
	return false
}
