package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"vacate_quote/internal/adapter/http/handlers/mocks"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func newQuoteRouter(uc usecase.IQuoteUseCase) *gin.Engine {
	h := NewQuoteHandler(uc)
	r := gin.New()
	r.GET("/v1/quotes/session/:session_id", h.GetBySession)
	r.POST("/v1/quotes/session/:session_id/referral", h.ReferToOffice)
	r.GET("/v1/quotes/:quote_id", h.GetByQuoteID)
	r.POST("/v1/quotes/:quote_id/booking-confirmation", h.ConfirmBooking)
	return r
}

func serve(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestQuoteHandler_GetBySession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(entities.QuoteRecord{}, usecase.ErrQuoteNotFound)

		w := serve(newQuoteRouter(uc), http.MethodGet, "/v1/quotes/session/sess-1", "")
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		rec := entities.QuoteRecord{ID: "rec-1", QuoteID: "VC-1", SessionID: "sess-1", Stage: entities.StageQuoteCalculated}
		rec.TotalPrice = 272.49
		uc.EXPECT().GetBySessionID(gomock.Any(), "sess-1").Return(rec, nil)

		w := serve(newQuoteRouter(uc), http.MethodGet, "/v1/quotes/session/sess-1", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["quote_id"] != "VC-1" || body["quote_stage"] != "Quote Calculated" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		price, _ := body["price"].(map[string]any)
		if price["total_price"] != 272.49 {
			t.Fatalf("unexpected price: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetByQuoteID(t *testing.T) {
	gin.SetMode(gin.TestMode)
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteUseCase(ctrl)
	uc.EXPECT().GetByQuoteID(gomock.Any(), "VC-1").Return(entities.QuoteRecord{ID: "rec-1", QuoteID: "VC-1"}, nil)

	w := serve(newQuoteRouter(uc), http.MethodGet, "/v1/quotes/VC-1", "")
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuoteHandler_ConfirmBooking(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		name   string
		err    error
		status int
	}{
		{"success", nil, http.StatusOK},
		{"illegal transition", fmt.Errorf("%w: not ready", usecase.ErrStageTransitionNotAllowed), http.StatusConflict},
		{"unknown quote", usecase.ErrQuoteNotFound, http.StatusNotFound},
		{"store failure", errors.New("dynamo down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			uc := mocks.NewMockIQuoteUseCase(ctrl)
			uc.EXPECT().ConfirmBooking(gomock.Any(), "VC-1").
				Return(entities.QuoteRecord{ID: "rec-1", QuoteID: "VC-1", Stage: entities.StageBookingConfirmed}, tt.err)

			w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes/VC-1/booking-confirmation", "")
			if w.Code != tt.status {
				t.Fatalf("expected %d, got %d", tt.status, w.Code)
			}
		})
	}
}

func TestQuoteHandler_ReferToOffice(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("with reason", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ReferToOffice(gomock.Any(), "sess-1", "commercial job").
			Return(entities.QuoteRecord{ID: "rec-1", Stage: entities.StageReferredToOffice, ReferralReason: "commercial job"}, nil)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes/session/sess-1/referral", `{"reason":"commercial job"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("without body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		uc.EXPECT().ReferToOffice(gomock.Any(), "sess-1", "").
			Return(entities.QuoteRecord{ID: "rec-1", Stage: entities.StageReferredToOffice}, nil)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes/session/sess-1/referral", "")
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)

		w := serve(newQuoteRouter(uc), http.MethodPost, "/v1/quotes/session/sess-1/referral", "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}
