package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"vacate_quote/internal/adapter/http/handlers/mocks"
	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestConversationHandler_FilterResponse(t *testing.T) {
	gin.SetMode(gin.TestMode)

	build := func(uc usecase.IConversationUseCase) *gin.Engine {
		r := gin.New()
		r.POST("/v1/filter-response", NewConversationHandler(uc).FilterResponse)
		return r
	}
	post := func(r *gin.Engine, body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/v1/filter-response", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)

		w := post(build(uc), "{")
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("session expired", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitTurn(gomock.Any(), "sess-1", "3 bed").Return(entities.TurnResult{}, usecase.ErrSessionNotFound)

		w := post(build(uc), `{"session_id":" sess-1 ","message":"3 bed"}`)
		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "SESSION_EXPIRED" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})

	t.Run("validation errors", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitTurn(gomock.Any(), "", "hi").Return(entities.TurnResult{}, usecase.ErrInvalidSessionID)

		w := post(build(uc), `{"message":"hi"}`)
		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("unexpected error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitTurn(gomock.Any(), "sess-1", "hi").Return(entities.TurnResult{}, errors.New("boom"))

		w := post(build(uc), `{"session_id":"sess-1","message":"hi"}`)
		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIConversationUseCase(ctrl)
		uc.EXPECT().SubmitTurn(gomock.Any(), "sess-1", "3 bed 2 bath").Return(entities.TurnResult{
			UpdatedFields: []entities.FieldUpdate{{Property: "bedrooms_v2", Value: 3}},
			Reply:         "Great, furnished or unfurnished?",
			SessionID:     "sess-1",
			QuoteID:       "VC-1",
			Stage:         entities.StageGatheringInfo,
		}, nil)

		w := post(build(uc), `{"session_id":"sess-1","message":"3 bed 2 bath"}`)
		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body struct {
			Properties []struct {
				Property string `json:"property"`
				Value    any    `json:"value"`
			} `json:"properties"`
			Response    string `json:"response"`
			NextActions []any  `json:"next_actions"`
			SessionID   string `json:"session_id"`
		}
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("invalid body: %v", err)
		}
		if len(body.Properties) != 1 || body.Properties[0].Property != "bedrooms_v2" || body.Properties[0].Value != float64(3) {
			t.Fatalf("unexpected properties: %s", w.Body.String())
		}
		if body.Response != "Great, furnished or unfurnished?" || body.SessionID != "sess-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body.NextActions == nil {
			t.Fatalf("next_actions must be an empty list: %s", w.Body.String())
		}
	})
}
