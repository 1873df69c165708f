package extraction

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/resilience"
)

type fakeMessages struct {
	replies []string
	errs    []error
	calls   int
	last    sdk.MessageNewParams
}

func (f *fakeMessages) New(_ context.Context, body sdk.MessageNewParams, _ ...option.RequestOption) (*sdk.Message, error) {
	i := f.calls
	f.calls++
	f.last = body
	if i < len(f.errs) && f.errs[i] != nil {
		return nil, f.errs[i]
	}
	text := ""
	if i < len(f.replies) {
		text = f.replies[i]
	}
	return &sdk.Message{Content: []sdk.ContentBlockUnion{{Type: "text", Text: text}}}, nil
}

func fastRetry() resilience.RetryConfig {
	return resilience.RetryConfig{MaxAttempts: 3, InitialBackoff: time.Millisecond, MaxBackoff: time.Millisecond}
}

func TestParseOracleOutput(t *testing.T) {
	t.Run("plain json", func(t *testing.T) {
		res, err := ParseOracleOutput(`{"properties":[{"property":"bedrooms_v2","value":3}],"response":"Cheers!"}`)
		require.NoError(t, err)
		assert.Equal(t, "Cheers!", res.Reply)
		require.Len(t, res.Attributes, 1)
		assert.Equal(t, "bedrooms_v2", res.Attributes[0].Property)
		assert.Equal(t, json.Number("3"), res.Attributes[0].Value)
	})

	t.Run("fenced with chatter", func(t *testing.T) {
		raw := "Sure thing!\n```json\n{\"properties\":[{\"property\":\"suburb\",\"value\":\"Joondalup\"}],\"response\":\"Got it.\"}\n```\nAnything else?"
		res, err := ParseOracleOutput(raw)
		require.NoError(t, err)
		assert.Equal(t, "Got it.", res.Reply)
		assert.Equal(t, "Joondalup", res.Attributes[0].Value)
	})

	t.Run("blank property names are dropped", func(t *testing.T) {
		res, err := ParseOracleOutput(`{"properties":[{"property":"","value":1},{"property":"oven_cleaning","value":"yes"}],"response":"ok"}`)
		require.NoError(t, err)
		require.Len(t, res.Attributes, 1)
		assert.Equal(t, "oven_cleaning", res.Attributes[0].Property)
	})

	t.Run("malformed output", func(t *testing.T) {
		for _, raw := range []string{"", "no json here", `{"properties": [`, `{"properties":[],"response":""}`} {
			_, err := ParseOracleOutput(raw)
			require.Error(t, err, raw)
			assert.ErrorIs(t, err, ErrMalformedOutput, raw)
		}
	})
}

func TestAnthropicOracleExtract(t *testing.T) {
	req := entities.ExtractionRequest{
		QuoteID: "VC-250101-120000-123",
		Message: "3 bed 2 bath in Baldivis",
		Transcript: entities.Transcript{
			{Sender: "BRENDAN", Text: "What suburb are we quoting for today?"},
		},
		Stage: entities.StageGatheringInfo,
		Mode:  entities.ExtractionModeGathering,
	}

	t.Run("builds the request and parses the reply", func(t *testing.T) {
		fake := &fakeMessages{replies: []string{`{"properties":[{"property":"suburb","value":"Baldivis"}],"response":"Lovely."}`}}
		o := newOracle(fake, Config{Model: "claude-test", Temperature: 0.4, OfficePhone: "1300 000 000", Retry: fastRetry()})

		res, err := o.Extract(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "Lovely.", res.Reply)
		assert.Equal(t, 1, fake.calls)

		assert.Equal(t, sdk.Model("claude-test"), fake.last.Model)
		assert.Equal(t, int64(1024), fake.last.MaxTokens)
		require.Len(t, fake.last.System, 1)
		assert.Contains(t, fake.last.System[0].Text, "1300 000 000")
		assert.Contains(t, fake.last.System[0].Text, "bedrooms_v2")
		require.Len(t, fake.last.Messages, 1)
	})

	t.Run("resamples after malformed output", func(t *testing.T) {
		fake := &fakeMessages{replies: []string{"garbage", `{"properties":[],"response":"ok"}`}}
		o := newOracle(fake, Config{Model: "m", Retry: fastRetry()})

		res, err := o.Extract(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "ok", res.Reply)
		assert.Equal(t, 2, fake.calls)
	})

	t.Run("gives up after the attempt budget", func(t *testing.T) {
		fake := &fakeMessages{replies: []string{"a", "b", "c", "d"}}
		o := newOracle(fake, Config{Model: "m", Retry: fastRetry()})

		_, err := o.Extract(context.Background(), req)
		assert.ErrorIs(t, err, ErrMalformedOutput)
		assert.Equal(t, 3, fake.calls)
	})

	t.Run("retries transient api errors", func(t *testing.T) {
		fake := &fakeMessages{
			errs:    []error{&sdk.Error{StatusCode: http.StatusTooManyRequests}, nil},
			replies: []string{"", `{"properties":[],"response":"back again"}`},
		}
		o := newOracle(fake, Config{Model: "m", Retry: fastRetry()})

		res, err := o.Extract(context.Background(), req)
		require.NoError(t, err)
		assert.Equal(t, "back again", res.Reply)
		assert.Equal(t, 2, fake.calls)
	})

	t.Run("does not retry client errors", func(t *testing.T) {
		fake := &fakeMessages{errs: []error{&sdk.Error{StatusCode: http.StatusBadRequest}}}
		o := newOracle(fake, Config{Model: "m", Retry: fastRetry()})

		_, err := o.Extract(context.Background(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "anthropic: create message")
		assert.Equal(t, 1, fake.calls)
	})
}

func TestSystemPrompt(t *testing.T) {
	assert.Contains(t, SystemPrompt(entities.ExtractionModeInit, "1300"), "Do not greet")
	assert.Contains(t, SystemPrompt(entities.ExtractionModePersonalInfo, "1300"), "Do NOT repeat it")
	assert.Contains(t, SystemPrompt(entities.ExtractionModeFollowUp, "1300"), "Do NOT change or recalculate")
	assert.NotContains(t, SystemPrompt(entities.ExtractionModeGathering, "1300"), "Do not greet")
}

func TestUserPrompt(t *testing.T) {
	p := UserPrompt(entities.ExtractionRequest{
		QuoteID:    "VC-1",
		Stage:      entities.StageGatheringInfo,
		Message:    "two bathrooms",
		Transcript: entities.Transcript{{Sender: "USER", Text: "hi there"}},
	})
	assert.Contains(t, p, "Quote number: VC-1")
	assert.Contains(t, p, "hi there")
	assert.Contains(t, p, "Latest customer message:\ntwo bathrooms")
}
