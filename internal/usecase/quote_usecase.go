package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/domain/quoting"
	"vacate_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

var (
	ErrQuoteNotFound             = errors.New("quote not found")
	ErrInvalidQuoteID            = errors.New("invalid quote_id")
	ErrStageTransitionNotAllowed = errors.New("stage transition not allowed")
)

// IQuoteUseCase exposes quote lookups and the transitions driven from
// outside the chat:
//   - the booking page confirms a booking => ConfirmBooking()
//   - staff or the widget hands a quote to the office => ReferToOffice()
type IQuoteUseCase interface {
	GetBySessionID(ctx context.Context, sessionID string) (entities.QuoteRecord, error)
	GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteRecord, error)
	ConfirmBooking(ctx context.Context, quoteID string) (entities.QuoteRecord, error)
	ReferToOffice(ctx context.Context, sessionID, reason string) (entities.QuoteRecord, error)
}

type QuoteUseCase struct {
	repo interfaces.IQuoteRecordRepository
	now  func() time.Time
}

var _ IQuoteUseCase = (*QuoteUseCase)(nil)

func NewQuoteUseCase(repo interfaces.IQuoteRecordRepository) *QuoteUseCase {
	return &QuoteUseCase{repo: repo, now: func() time.Time { return time.Now().UTC() }}
}

func (u *QuoteUseCase) GetBySessionID(ctx context.Context, sessionID string) (entities.QuoteRecord, error) {
	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return entities.QuoteRecord{}, ErrInvalidSessionID
	}

	rec, err := u.repo.GetLatestBySessionID(ctx, sessionID)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if rec.ID == "" {
		return entities.QuoteRecord{}, ErrQuoteNotFound
	}
	return rec, nil
}

func (u *QuoteUseCase) GetByQuoteID(ctx context.Context, quoteID string) (entities.QuoteRecord, error) {
	quoteID = strings.TrimSpace(quoteID)
	if quoteID == "" {
		return entities.QuoteRecord{}, ErrInvalidQuoteID
	}

	rec, err := u.repo.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if rec.ID == "" {
		return entities.QuoteRecord{}, ErrQuoteNotFound
	}
	return rec, nil
}

func (u *QuoteUseCase) ConfirmBooking(ctx context.Context, quoteID string) (entities.QuoteRecord, error) {
	rec, err := u.GetByQuoteID(ctx, quoteID)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if g := quoting.CanConfirmBooking(rec); !g.Allowed {
		return entities.QuoteRecord{}, fmt.Errorf("%w: %s", ErrStageTransitionNotAllowed, g.Reason)
	}
	return u.transition(ctx, rec, entities.StageBookingConfirmed, nil)
}

func (u *QuoteUseCase) ReferToOffice(ctx context.Context, sessionID, reason string) (entities.QuoteRecord, error) {
	rec, err := u.GetBySessionID(ctx, sessionID)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if g := quoting.CanReferToOffice(rec); !g.Allowed {
		return entities.QuoteRecord{}, fmt.Errorf("%w: %s", ErrStageTransitionNotAllowed, g.Reason)
	}
	reason = strings.TrimSpace(reason)
	rec.ReferralReason = reason
	return u.transition(ctx, rec, entities.StageReferredToOffice, map[string]any{"referral_reason": reason})
}

func (u *QuoteUseCase) transition(ctx context.Context, rec entities.QuoteRecord, next entities.QuoteStage, extra map[string]any) (entities.QuoteRecord, error) {
	rec.Stage = next
	rec.ResumeStage = ""
	rec.UpdatedAt = u.now()

	fields := map[string]any{
		"quote_stage":  string(next),
		"resume_stage": "",
		"updated_at":   rec.UpdatedAt,
	}
	for k, v := range extra {
		fields[k] = v
	}

	written, err := u.repo.Patch(ctx, rec.ID, fields)
	if err != nil {
		return entities.QuoteRecord{}, err
	}
	if !contains(written, "quote_stage") {
		return entities.QuoteRecord{}, fmt.Errorf("quote %s: stage was not persisted", rec.QuoteID)
	}

	zap.L().Info("quote stage changed",
		zap.String("quote_id", rec.QuoteID),
		zap.String("session_id", rec.SessionID),
		zap.String("to", string(next)),
	)
	return rec, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
