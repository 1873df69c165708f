package usecase

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/domain/quoting"
	"vacate_quote/internal/usecase/interfaces"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var (
	ErrInvalidSessionID = errors.New("invalid session_id")
	ErrEmptyMessage     = errors.New("empty message")
	ErrSessionNotFound  = errors.New("session not found")
)

// InitMessage is sent by the chat widget when it opens.
const InitMessage = "__init__"

const (
	greetingReply       = "Hey there! What suburb is the property in, how many bedrooms and bathrooms, and is it furnished or empty?"
	openerReply         = "What suburb are we quoting for today, and how many bedrooms and bathrooms are we looking at?"
	rephraseReply       = "Sorry, I couldn't quite understand that. Could you rephrase it for me?"
	personalInfoPrompt  = "Great! To send your quote and lock in the price, I just need your name, email and phone number. A property address is handy too if you have it."
	badEmailReply       = "Hmm, that email looks off. Could you double check it?"
	abuseWarningPrefix  = "Just a quick heads-up: we can't continue the quote if abusive language is used. Let's keep it respectful!"
	bannedReplyFormat   = "This chat is closed. Call %s if you still need a quote."
	banFarewellFormat   = "We've had to close this chat because of repeated abusive language. Your quote reference is %s. If you still need a clean, call us on %s."
	bookedReplyFormat   = "Your booking for quote %s is confirmed. If anything needs changing, call us on %s."
	referredReplyFormat = "Our office team is looking after quote %s now. Call %s and mention your quote number."
	troubleReplyFormat  = "I'm having trouble pulling up your quote right now. Please try again in a moment, or call us on %s."
	startFailedFormat   = "Sorry, I couldn't start a new quote just now. Please refresh and try again, or call us on %s."
	newQuoteNote        = "new quote started"
)

var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// ConversationSettings tunes the conversation flow.
type ConversationSettings struct {
	TranscriptMaxChars int
	DiagnosticMaxChars int
	ExtractionTimeout  time.Duration
	OfficePhone        string
	// BookingURLBase gets the quote id appended to form the booking link.
	BookingURLBase string
	Pricing        quoting.PricingTable
}

// DefaultConversationSettings mirrors the configuration defaults.
func DefaultConversationSettings() ConversationSettings {
	return ConversationSettings{
		TranscriptMaxChars: 10000,
		DiagnosticMaxChars: 10000,
		ExtractionTimeout:  30 * time.Second,
		OfficePhone:        "1300 918 388",
		Pricing:            quoting.DefaultPricingTable(),
	}
}

// IConversationUseCase runs one chat turn through the quote state machine.
type IConversationUseCase interface {
	SubmitTurn(ctx context.Context, sessionID, message string) (entities.TurnResult, error)
}

type ConversationUseCase struct {
	repo     interfaces.IQuoteRecordRepository
	oracle   interfaces.IExtractionOracle
	delivery interfaces.IQuoteDelivery
	settings ConversationSettings
	locks    *sessionLocks

	now        func() time.Time
	newID      func() string
	newQuoteID func(time.Time) string
}

var _ IConversationUseCase = (*ConversationUseCase)(nil)

func NewConversationUseCase(
	repo interfaces.IQuoteRecordRepository,
	oracle interfaces.IExtractionOracle,
	delivery interfaces.IQuoteDelivery,
	settings ConversationSettings,
) *ConversationUseCase {
	return &ConversationUseCase{
		repo:       repo,
		oracle:     oracle,
		delivery:   delivery,
		settings:   settings,
		locks:      newSessionLocks(),
		now:        func() time.Time { return time.Now().UTC() },
		newID:      uuid.NewString,
		newQuoteID: randomQuoteID,
	}
}

func randomQuoteID(at time.Time) string {
	u := uuid.New()
	return quoting.FormatQuoteID(at, int(binary.BigEndian.Uint32(u[:4])%1000))
}

// turn carries the record and pending writes of one inbound message.
type turn struct {
	rec     entities.QuoteRecord
	message string

	fields  map[string]any
	changed []entities.FieldUpdate
	reply   string
	actions []entities.NextAction
	deliver bool
	warned  bool
	note    string
}

func (t *turn) set(name string, value any) {
	t.fields[name] = value
}

func (t *turn) result() entities.TurnResult {
	changed := t.changed
	if changed == nil {
		changed = []entities.FieldUpdate{}
	}
	return entities.TurnResult{
		UpdatedFields: changed,
		Reply:         t.reply,
		NextActions:   t.actions,
		SessionID:     t.rec.SessionID,
		QuoteID:       t.rec.QuoteID,
		Stage:         t.rec.Stage,
	}
}

func (u *ConversationUseCase) SubmitTurn(ctx context.Context, sessionID, message string) (entities.TurnResult, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.TurnResult{}, ErrInvalidSessionID
	}
	message = strings.TrimSpace(message)
	if message == "" {
		return entities.TurnResult{}, ErrEmptyMessage
	}

	unlock := u.locks.lock(sessionID)
	defer unlock()

	if strings.EqualFold(message, InitMessage) {
		return u.startSession(ctx, sessionID), nil
	}

	rec, err := u.repo.GetLatestBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Error("quote lookup failed", zap.String("session_id", sessionID), zap.Error(err))
		return entities.TurnResult{
			UpdatedFields: []entities.FieldUpdate{},
			Reply:         fmt.Sprintf(troubleReplyFormat, u.settings.OfficePhone),
			SessionID:     sessionID,
		}, nil
	}
	if rec.ID == "" {
		return entities.TurnResult{}, ErrSessionNotFound
	}

	t := &turn{rec: rec, message: message, fields: map[string]any{}}

	if rec.Stage.IsTerminal() {
		t.reply = u.terminalReply(rec)
		zap.L().Info("turn on closed quote",
			zap.String("session_id", sessionID),
			zap.String("quote_id", rec.QuoteID),
			zap.String("stage", string(rec.Stage)),
		)
		return t.result(), nil
	}

	u.handle(ctx, t)
	u.commit(ctx, t)
	return t.result(), nil
}

func (u *ConversationUseCase) handle(ctx context.Context, t *turn) {
	if quoting.ContainsAbuse(t.message) {
		if t.rec.Stage == entities.StageAbuseWarning {
			u.setStage(t, entities.StageChatBanned)
			t.reply = fmt.Sprintf(banFarewellFormat, t.rec.QuoteID, u.settings.OfficePhone)
			return
		}
		resume := t.rec.Stage
		if u.setStage(t, entities.StageAbuseWarning) {
			t.rec.ResumeStage = resume
			t.set("resume_stage", string(resume))
			t.warned = true
		}
	}

	switch stage := t.rec.EffectiveStage(); stage {
	case entities.StageGatheringInfo:
		u.gather(ctx, t)
	case entities.StageQuoteCalculated:
		u.setStage(t, entities.StageGatheringPersonalInfo)
		t.reply = personalInfoPrompt
	case entities.StageGatheringPersonalInfo:
		u.collectContact(ctx, t)
	case entities.StagePersonalInfoReceived:
		u.followUp(ctx, t)
	default:
		zap.L().Warn("quote in unexpected stage", zap.String("quote_id", t.rec.QuoteID), zap.String("stage", string(stage)))
		t.reply = fmt.Sprintf(troubleReplyFormat, u.settings.OfficePhone)
	}

	if t.warned {
		t.reply = abuseWarningPrefix + "\n\n" + t.reply
	}
}

func (u *ConversationUseCase) gather(ctx context.Context, t *turn) {
	if quoting.IsWeakGreeting(t.message) {
		t.reply = greetingReply
		return
	}

	res, ok := u.extract(ctx, t, entities.ExtractionModeGathering)
	if !ok {
		return
	}
	proposal := quoting.CoerceAll(res.Attributes)
	var repeated []string
	proposal.Assignments, repeated = quoting.DropRepeatedRequest(t.rec.QuoteAttributes, proposal.Assignments)
	proposal.Dropped = append(proposal.Dropped, repeated...)
	u.apply(t, proposal)

	if quoting.IsComplete(t.rec.QuoteAttributes) && u.setStage(t, entities.StageQuoteCalculated) {
		u.price(t)
		return
	}

	t.reply = strings.TrimSpace(res.Reply)
	if len(proposal.Clarifications) > 0 {
		t.reply = strings.TrimSpace(t.reply + "\n\n" + strings.Join(proposal.Clarifications, " "))
	}
	if t.reply == "" {
		t.reply = "Thanks! Could you also tell me the " + strings.Join(quoting.MissingLabels(t.rec.QuoteAttributes, 3), ", ") + "?"
	}
}

func (u *ConversationUseCase) price(t *turn) {
	breakdown := quoting.Price(t.rec.QuoteAttributes, u.settings.Pricing)
	t.rec.PriceBreakdown = breakdown
	for k, v := range breakdown.Fields() {
		t.set(k, v)
	}

	t.rec.BookingURL = u.bookingURL(t.rec.QuoteID)
	if t.rec.BookingURL != "" {
		t.set("booking_url", t.rec.BookingURL)
	}

	t.reply = quoting.QuoteSummary(t.rec.QuoteAttributes, breakdown, u.settings.Pricing)
	t.actions = quoting.NextActions(t.rec.BookingURL)

	zap.L().Info("quote calculated",
		zap.String("session_id", t.rec.SessionID),
		zap.String("quote_id", t.rec.QuoteID),
		zap.Int("estimated_time_mins", breakdown.EstimatedTimeMins),
		zap.Float64("total_price", breakdown.TotalPrice),
	)
}

func (u *ConversationUseCase) collectContact(ctx context.Context, t *turn) {
	res, ok := u.extract(ctx, t, entities.ExtractionModePersonalInfo)
	if !ok {
		return
	}
	u.apply(t, quoting.CoerceAll(res.Attributes))

	attrs := t.rec.QuoteAttributes
	if !attrs.HasContactDetails() {
		t.reply = strings.TrimSpace(res.Reply)
		if t.reply == "" {
			t.reply = "Thanks! I still need your " + strings.Join(missingContact(attrs), ", ") + " to send the quote."
		}
		return
	}

	email := strings.TrimSpace(entities.StringValue(attrs.CustomerEmail))
	if !emailPattern.MatchString(email) {
		t.reply = badEmailReply
		return
	}
	if !u.setStage(t, entities.StagePersonalInfoReceived) {
		t.reply = fmt.Sprintf(troubleReplyFormat, u.settings.OfficePhone)
		return
	}
	t.deliver = true
	t.reply = fmt.Sprintf("All done! I'm putting your quote together and will email it to %s shortly. Let me know if you need anything else.", email)
}

func (u *ConversationUseCase) followUp(ctx context.Context, t *turn) {
	res, ok := u.extract(ctx, t, entities.ExtractionModeFollowUp)
	if !ok {
		return
	}
	u.apply(t, quoting.CoerceAll(res.Attributes))
	t.reply = strings.TrimSpace(res.Reply)
	if t.reply == "" {
		t.reply = fmt.Sprintf("Is there anything else I can help with? You can also reach the office on %s.", u.settings.OfficePhone)
	}
}

// extract calls the oracle with a bounded timeout. On failure it records a
// diagnostic, sets the rephrase reply and returns ok=false.
func (u *ConversationUseCase) extract(ctx context.Context, t *turn, mode entities.ExtractionMode) (entities.ExtractionResult, bool) {
	if u.settings.ExtractionTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, u.settings.ExtractionTimeout)
		defer cancel()
	}

	res, err := u.oracle.Extract(ctx, entities.ExtractionRequest{
		QuoteID:    t.rec.QuoteID,
		Message:    t.message,
		Transcript: t.rec.Transcript,
		Stage:      t.rec.EffectiveStage(),
		Mode:       mode,
	})
	if err != nil {
		zap.L().Warn("extraction failed",
			zap.String("session_id", t.rec.SessionID),
			zap.String("quote_id", t.rec.QuoteID),
			zap.String("mode", string(mode)),
			zap.Error(err),
		)
		u.recordDiagnostic(t, err.Error())
		t.reply = rephraseReply
		return entities.ExtractionResult{}, false
	}
	return res, true
}

func (u *ConversationUseCase) apply(t *turn, proposal quoting.Proposal) {
	merged := quoting.Merge(t.rec.QuoteAttributes, proposal.Assignments, t.rec.EffectiveStage())
	t.rec.QuoteAttributes = merged.Attributes
	for _, c := range merged.Changed {
		t.set(c.Property, c.Value)
		t.changed = append(t.changed, c)
	}
	if len(merged.Suppressed) > 0 || len(proposal.Dropped) > 0 {
		zap.L().Debug("extraction fields ignored",
			zap.String("quote_id", t.rec.QuoteID),
			zap.Strings("suppressed", merged.Suppressed),
			zap.Strings("dropped", proposal.Dropped),
		)
	}
}

// setStage moves the record to next when the transition is legal. Leaving a
// warning for anything but a ban clears it.
func (u *ConversationUseCase) setStage(t *turn, next entities.QuoteStage) bool {
	if g := quoting.CanTransition(t.rec.Stage, next); !g.Allowed {
		zap.L().Warn("stage transition rejected", zap.String("quote_id", t.rec.QuoteID), zap.String("reason", g.Reason))
		return false
	}
	from := t.rec.Stage
	t.rec.Stage = next
	t.set("quote_stage", string(next))
	if from == entities.StageAbuseWarning && next != entities.StageChatBanned {
		t.rec.ResumeStage = ""
		t.set("resume_stage", "")
	}
	zap.L().Info("stage changed",
		zap.String("session_id", t.rec.SessionID),
		zap.String("quote_id", t.rec.QuoteID),
		zap.String("from", string(from)),
		zap.String("to", string(next)),
	)
	return true
}

func (u *ConversationUseCase) recordDiagnostic(t *turn, reason string) {
	line := fmt.Sprintf("%s - %s", u.now().Format(time.RFC3339), reason)
	t.rec.DiagnosticLog = appendLogLine(t.rec.DiagnosticLog, line, u.settings.DiagnosticMaxChars)
	t.set("gpt_error_log", t.rec.DiagnosticLog)
}

// commit appends the exchange to the transcript and writes every pending
// field. Store failures are logged, never returned: the customer still gets
// the reply.
func (u *ConversationUseCase) commit(ctx context.Context, t *turn) {
	log := t.rec.Transcript
	if t.note != "" {
		log = log.Append(entities.SenderSystem, t.note, u.settings.TranscriptMaxChars)
	}
	if !strings.EqualFold(t.message, InitMessage) {
		log = log.Append(entities.SenderUser, t.message, u.settings.TranscriptMaxChars)
	}
	log = log.Append(entities.SenderAssistant, t.reply, u.settings.TranscriptMaxChars)
	t.rec.Transcript = log
	t.set("message_log", log)

	t.rec.UpdatedAt = u.now()
	t.set("updated_at", t.rec.UpdatedAt)

	written, err := u.repo.Patch(ctx, t.rec.ID, t.fields)
	if err != nil {
		zap.L().Error("quote record write failed",
			zap.String("session_id", t.rec.SessionID),
			zap.String("quote_id", t.rec.QuoteID),
			zap.Error(err),
		)
	} else if len(written) < len(t.fields) {
		zap.L().Warn("quote record partially written",
			zap.String("quote_id", t.rec.QuoteID),
			zap.Strings("missing", missingKeys(t.fields, written)),
		)
	}

	if t.deliver && u.delivery != nil {
		u.delivery.Deliver(ctx, t.rec)
	}
}

func (u *ConversationUseCase) startSession(ctx context.Context, sessionID string) entities.TurnResult {
	existing, err := u.repo.GetLatestBySessionID(ctx, sessionID)
	if err != nil {
		zap.L().Warn("quote lookup failed on init, starting a new quote", zap.String("session_id", sessionID), zap.Error(err))
		existing = entities.QuoteRecord{}
	}

	if existing.ID != "" && existing.Stage == entities.StageChatBanned {
		t := &turn{rec: existing}
		t.reply = u.terminalReply(existing)
		return t.result()
	}

	t := &turn{message: InitMessage, fields: map[string]any{}}
	if existing.ID != "" && resumable(existing.Stage) {
		t.rec = existing
	} else {
		now := u.now()
		rec := entities.QuoteRecord{
			ID:        u.newID(),
			SessionID: sessionID,
			QuoteID:   u.newQuoteID(now),
			Source:    "chat",
			Stage:     entities.StageGatheringInfo,
			CreatedAt: now,
			UpdatedAt: now,
		}
		created, err := u.repo.Create(ctx, rec)
		if err != nil {
			zap.L().Error("quote create failed", zap.String("session_id", sessionID), zap.Error(err))
			return entities.TurnResult{
				UpdatedFields: []entities.FieldUpdate{},
				Reply:         fmt.Sprintf(startFailedFormat, u.settings.OfficePhone),
				SessionID:     sessionID,
			}
		}
		t.rec = created
		t.note = newQuoteNote
		zap.L().Info("quote created",
			zap.String("session_id", sessionID),
			zap.String("quote_id", created.QuoteID),
		)
	}

	res, ok := u.extract(ctx, t, entities.ExtractionModeInit)
	t.reply = strings.TrimSpace(res.Reply)
	if !ok || t.reply == "" {
		t.reply = openerReply
	}
	u.commit(ctx, t)
	return t.result()
}

func resumable(stage entities.QuoteStage) bool {
	return stage == entities.StageGatheringInfo || stage == entities.StageAbuseWarning
}

func (u *ConversationUseCase) terminalReply(rec entities.QuoteRecord) string {
	switch rec.Stage {
	case entities.StageBookingConfirmed:
		return fmt.Sprintf(bookedReplyFormat, rec.QuoteID, u.settings.OfficePhone)
	case entities.StageReferredToOffice:
		return fmt.Sprintf(referredReplyFormat, rec.QuoteID, u.settings.OfficePhone)
	default:
		return fmt.Sprintf(bannedReplyFormat, u.settings.OfficePhone)
	}
}

func (u *ConversationUseCase) bookingURL(quoteID string) string {
	base := strings.TrimSpace(u.settings.BookingURLBase)
	if base == "" {
		return ""
	}
	if strings.Contains(base, "%s") {
		return fmt.Sprintf(base, quoteID)
	}
	return strings.TrimRight(base, "/") + "/" + quoteID
}

func missingContact(a entities.QuoteAttributes) []string {
	var out []string
	if strings.TrimSpace(entities.StringValue(a.CustomerName)) == "" {
		out = append(out, "name")
	}
	if strings.TrimSpace(entities.StringValue(a.CustomerEmail)) == "" {
		out = append(out, "email")
	}
	if strings.TrimSpace(entities.StringValue(a.CustomerPhone)) == "" {
		out = append(out, "phone number")
	}
	return out
}

func missingKeys(fields map[string]any, written []string) []string {
	got := make(map[string]bool, len(written))
	for _, w := range written {
		got[w] = true
	}
	var out []string
	for k := range fields {
		if !got[k] {
			out = append(out, k)
		}
	}
	return out
}

// appendLogLine adds line to a newline-separated log, dropping the oldest
// lines while the log is longer than maxChars.
func appendLogLine(log, line string, maxChars int) string {
	lines := strings.Split(strings.TrimSpace(log), "\n")
	if lines[0] == "" {
		lines = lines[:0]
	}
	lines = append(lines, line)
	if maxChars > 0 {
		size := len(strings.Join(lines, "\n"))
		for size > maxChars && len(lines) > 1 {
			size -= len(lines[0]) + 1
			lines = lines[1:]
		}
	}
	return strings.Join(lines, "\n")
}
