package routes

import (
	"vacate_quote/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathFilterResponse = "/filter-response"
	PathQuotes         = "/quotes"
)

func addConversationRoutes(rg *gin.RouterGroup, h *handlers.ConversationHandler, limit gin.HandlerFunc) {
	rg.POST(PathFilterResponse, limit, h.FilterResponse)
}

func addQuoteRoutes(rg *gin.RouterGroup, h *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.GET("/session/:session_id", h.GetBySession)
		quotes.POST("/session/:session_id/referral", h.ReferToOffice)
		quotes.GET("/:quote_id", h.GetByQuoteID)
		// Called by the booking page once the customer has booked.
		quotes.POST("/:quote_id/booking-confirmation", h.ConfirmBooking)
	}
}
