package handlers

import (
	"errors"
	"net/http"
	request "vacate_quote/internal/adapter/http/dto/request"
	response "vacate_quote/internal/adapter/http/dto/response"
	"vacate_quote/internal/usecase"
	"vacate_quote/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

var (
	errInvalidTurnPayload = pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
)

// ConversationHandler serves the chat widget.
type ConversationHandler struct {
	usecase usecase.IConversationUseCase
}

func NewConversationHandler(uc usecase.IConversationUseCase) *ConversationHandler {
	return &ConversationHandler{usecase: uc}
}

// FilterResponse runs one chat turn.
//
// @Summary      Submit a chat message
// @Description  Runs one turn of the quoting conversation. Send "__init__" to open a session.
// @Tags         conversation
// @Accept       json
// @Produce      json
// @Param        body  body      request.TurnRequest  true  "Chat message"
// @Success      200   {object}  response.TurnResponse
// @Failure      400   {object}  pkg.HTTPError
// @Failure      404   {object}  pkg.HTTPError  "SESSION_EXPIRED"
// @Failure      500   {object}  pkg.HTTPError
// @Router       /filter-response [post]
func (h *ConversationHandler) FilterResponse(c *gin.Context) {
	var payload request.TurnRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidTurnPayload.HTTPStatus, errInvalidTurnPayload.ToHTTPError())
		return
	}

	result, err := h.usecase.SubmitTurn(c.Request.Context(), payload.ResolveSessionID(), payload.Message)
	if err != nil {
		appErr := mapConversationError(err)
		if appErr.HTTPStatus >= http.StatusInternalServerError {
			zap.L().Error("turn failed", zap.String("session_id", payload.ResolveSessionID()), zap.Error(err))
		}
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromTurnResult(result))
}

func mapConversationError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_EXPIRED", "Session expired. Please start a new quote.", http.StatusNotFound)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrEmptyMessage):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
