package quoting

import (
	"fmt"

	"vacate_quote/internal/domain/entities"
)

// GuardResult is the outcome of a transition check.
type GuardResult struct {
	Allowed bool
	Reason  string
}

// Error returns the reason as an error, or nil when allowed.
func (g GuardResult) Error() error {
	if g.Allowed {
		return nil
	}
	return fmt.Errorf("%s", g.Reason)
}

var transitions = map[entities.QuoteStage][]entities.QuoteStage{
	entities.StageGatheringInfo: {
		entities.StageQuoteCalculated, entities.StageAbuseWarning, entities.StageReferredToOffice,
	},
	entities.StageQuoteCalculated: {
		entities.StageGatheringPersonalInfo, entities.StageAbuseWarning, entities.StageReferredToOffice,
	},
	entities.StageGatheringPersonalInfo: {
		entities.StagePersonalInfoReceived, entities.StageAbuseWarning, entities.StageReferredToOffice,
	},
	entities.StagePersonalInfoReceived: {
		entities.StageBookingConfirmed, entities.StageAbuseWarning, entities.StageReferredToOffice,
	},
	// A warning resumes the path it interrupted, so any main-path stage is
	// reachable from it.
	entities.StageAbuseWarning: {
		entities.StageChatBanned, entities.StageGatheringInfo, entities.StageQuoteCalculated,
		entities.StageGatheringPersonalInfo, entities.StagePersonalInfoReceived, entities.StageReferredToOffice,
	},
}

// CanTransition checks whether a record may move from one stage to another.
func CanTransition(from, to entities.QuoteStage) GuardResult {
	if !to.IsKnown() {
		return GuardResult{Reason: fmt.Sprintf("unknown stage %q", to)}
	}
	if from.IsTerminal() {
		return GuardResult{Reason: fmt.Sprintf("stage %q is terminal", from)}
	}
	if from == to {
		return GuardResult{Allowed: true}
	}
	for _, next := range transitions[from] {
		if next == to {
			return GuardResult{Allowed: true}
		}
	}
	return GuardResult{Reason: fmt.Sprintf("cannot move from %q to %q", from, to)}
}

// CanConfirmBooking checks that a booking can be confirmed for the record.
// A pending abuse warning does not block a booking the customer had already
// reached.
func CanConfirmBooking(rec entities.QuoteRecord) GuardResult {
	stage := rec.EffectiveStage()
	if stage != entities.StagePersonalInfoReceived {
		return GuardResult{Reason: fmt.Sprintf("booking needs stage %q, quote is %q", entities.StagePersonalInfoReceived, rec.Stage)}
	}
	return CanTransition(stage, entities.StageBookingConfirmed)
}

// CanReferToOffice checks that the record can be handed to the office.
func CanReferToOffice(rec entities.QuoteRecord) GuardResult {
	return CanTransition(rec.Stage, entities.StageReferredToOffice)
}
