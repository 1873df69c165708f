package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/resilience"
	"vacate_quote/internal/usecase/interfaces"

	"go.uber.org/zap"
)

const failureWriteTimeout = 5 * time.Second

// DeliverySettings bounds one delivery run.
type DeliverySettings struct {
	Timeout            time.Duration
	Retry              resilience.RetryConfig
	DiagnosticMaxChars int
}

// QuoteDeliveryUseCase renders the quote document and emails it. Delivery runs
// in the background; a failure never reaches the chat turn that triggered it.
type QuoteDeliveryUseCase struct {
	repo     interfaces.IQuoteRecordRepository
	renderer interfaces.IQuoteDocumentRenderer
	mailer   interfaces.IQuoteMailer
	settings DeliverySettings
	now      func() time.Time
	wg       sync.WaitGroup
}

var _ interfaces.IQuoteDelivery = (*QuoteDeliveryUseCase)(nil)

func NewQuoteDeliveryUseCase(
	repo interfaces.IQuoteRecordRepository,
	renderer interfaces.IQuoteDocumentRenderer,
	mailer interfaces.IQuoteMailer,
	settings DeliverySettings,
) *QuoteDeliveryUseCase {
	if settings.Retry.OnRetry == nil {
		settings.Retry.OnRetry = resilience.RetryLogger("mail", "send_quote")
	}
	return &QuoteDeliveryUseCase{
		repo:     repo,
		renderer: renderer,
		mailer:   mailer,
		settings: settings,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// Deliver starts a background run detached from the request context.
func (u *QuoteDeliveryUseCase) Deliver(ctx context.Context, rec entities.QuoteRecord) {
	u.wg.Add(1)
	go func() {
		defer u.wg.Done()

		runCtx := context.WithoutCancel(ctx)
		if u.settings.Timeout > 0 {
			var cancel context.CancelFunc
			runCtx, cancel = context.WithTimeout(runCtx, u.settings.Timeout)
			defer cancel()
		}
		if err := u.Run(runCtx, rec); err != nil {
			zap.L().Error("quote delivery failed", zap.String("quote_id", rec.QuoteID), zap.Error(err))
		}
	}()
}

// Wait blocks until every background delivery has finished.
func (u *QuoteDeliveryUseCase) Wait() {
	u.wg.Wait()
}

// Run delivers synchronously. Exhausted email retries are recorded on the
// quote as a failed-delivery event and returned.
func (u *QuoteDeliveryUseCase) Run(ctx context.Context, rec entities.QuoteRecord) error {
	link, err := u.renderer.Render(ctx, rec)
	if err != nil {
		u.failed(ctx, rec, "document render failed: "+err.Error())
		return err
	}
	rec.PDFLink = link

	fields := map[string]any{"pdf_link": link}
	if rec.BookingURL != "" {
		fields["booking_url"] = rec.BookingURL
	}
	if _, err := u.repo.Patch(ctx, rec.ID, fields); err != nil {
		zap.L().Warn("pdf link not saved", zap.String("quote_id", rec.QuoteID), zap.Error(err))
	}

	email := entities.QuoteEmail{
		QuoteID:      rec.QuoteID,
		To:           entities.StringValue(rec.CustomerEmail),
		CustomerName: entities.StringValue(rec.CustomerName),
		DocumentURL:  link,
		BookingURL:   rec.BookingURL,
	}
	err = resilience.Do(ctx, u.settings.Retry, func(ctx context.Context) error {
		return u.mailer.SendQuote(ctx, email)
	})
	if err != nil {
		u.failed(ctx, rec, "quote email failed: "+err.Error())
		return err
	}

	zap.L().Info("quote delivered", zap.String("quote_id", rec.QuoteID), zap.String("document", link))
	return nil
}

// failed records a failed-delivery event. The write gets its own deadline so
// an expired run can still be recorded, and appends to the stored log so
// lines written by chat turns meanwhile are kept.
func (u *QuoteDeliveryUseCase) failed(ctx context.Context, rec entities.QuoteRecord, reason string) {
	zap.L().Error("failed delivery",
		zap.String("event", "quote_delivery_failed"),
		zap.String("quote_id", rec.QuoteID),
		zap.String("session_id", rec.SessionID),
		zap.String("reason", reason),
	)

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), failureWriteTimeout)
	defer cancel()

	current := rec.DiagnosticLog
	latest, err := u.repo.GetByID(writeCtx, rec.ID)
	switch {
	case err != nil:
		zap.L().Warn("diagnostic log not reloaded", zap.String("quote_id", rec.QuoteID), zap.Error(err))
	case latest.ID != "":
		current = latest.DiagnosticLog
	}

	line := fmt.Sprintf("%s - %s", u.now().Format(time.RFC3339), reason)
	log := appendLogLine(current, line, u.settings.DiagnosticMaxChars)
	if _, err := u.repo.Patch(writeCtx, rec.ID, map[string]any{"gpt_error_log": log}); err != nil {
		zap.L().Warn("failed delivery not recorded", zap.String("quote_id", rec.QuoteID), zap.Error(err))
	}
}
