package handlers

import (
	"context"
	"errors"
	"net/http"
	request "vacate_quote/internal/adapter/http/dto/request"
	response "vacate_quote/internal/adapter/http/dto/response"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/usecase"
	"vacate_quote/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidReferralPayload = pkg.NewDomainErrorSimple("INVALID_REFERRAL_INPUT", "Invalid referral payload", http.StatusBadRequest)
)

// QuoteHandler serves quote lookups and the booking and referral callbacks.
type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// GetBySession returns the latest quote of a chat session.
//
// @Summary   Get the quote for a session
// @Tags      quotes
// @Produce   json
// @Param     session_id  path      string  true  "Chat session id"
// @Success   200         {object}  response.QuoteResponse
// @Failure   404         {object}  pkg.HTTPError
// @Router    /quotes/session/{session_id} [get]
func (h *QuoteHandler) GetBySession(c *gin.Context) {
	h.respond(c, func(ctx context.Context) (entities.QuoteRecord, error) {
		return h.usecase.GetBySessionID(ctx, c.Param("session_id"))
	})
}

// GetByQuoteID returns a quote by its customer-facing id.
//
// @Summary   Get a quote
// @Tags      quotes
// @Produce   json
// @Param     quote_id  path      string  true  "Quote id"
// @Success   200       {object}  response.QuoteResponse
// @Failure   404       {object}  pkg.HTTPError
// @Router    /quotes/{quote_id} [get]
func (h *QuoteHandler) GetByQuoteID(c *gin.Context) {
	h.respond(c, func(ctx context.Context) (entities.QuoteRecord, error) {
		return h.usecase.GetByQuoteID(ctx, c.Param("quote_id"))
	})
}

// ConfirmBooking is called by the booking page once the customer books.
//
// @Summary   Confirm a booking
// @Tags      quotes
// @Produce   json
// @Param     quote_id  path      string  true  "Quote id"
// @Success   200       {object}  response.QuoteResponse
// @Failure   404       {object}  pkg.HTTPError
// @Failure   409       {object}  pkg.HTTPError
// @Router    /quotes/{quote_id}/booking-confirmation [post]
func (h *QuoteHandler) ConfirmBooking(c *gin.Context) {
	h.respond(c, func(ctx context.Context) (entities.QuoteRecord, error) {
		return h.usecase.ConfirmBooking(ctx, c.Param("quote_id"))
	})
}

// ReferToOffice hands a session's quote to office staff.
//
// @Summary   Refer a quote to the office
// @Tags      quotes
// @Accept    json
// @Produce   json
// @Param     session_id  path      string                   true   "Chat session id"
// @Param     body        body      request.ReferralRequest  false  "Referral reason"
// @Success   200         {object}  response.QuoteResponse
// @Failure   404         {object}  pkg.HTTPError
// @Failure   409         {object}  pkg.HTTPError
// @Router    /quotes/session/{session_id}/referral [post]
func (h *QuoteHandler) ReferToOffice(c *gin.Context) {
	var payload request.ReferralRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&payload); err != nil {
			c.JSON(errInvalidReferralPayload.HTTPStatus, errInvalidReferralPayload.ToHTTPError())
			return
		}
	}

	h.respond(c, func(ctx context.Context) (entities.QuoteRecord, error) {
		return h.usecase.ReferToOffice(ctx, c.Param("session_id"), payload.Reason)
	})
}

func (h *QuoteHandler) respond(c *gin.Context, call func(ctx context.Context) (entities.QuoteRecord, error)) {
	rec, err := call(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromQuoteRecord(rec))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrStageTransitionNotAllowed):
		return pkg.NewDomainErrorSimple("STAGE_TRANSITION_NOT_ALLOWED", "The quote cannot move to that stage", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
