// Package extraction implements the extraction oracle on the Anthropic
// Messages API.
package extraction

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"vacate_quote/internal/domain/entities"
	"vacate_quote/internal/infrastructure/resilience"
	"vacate_quote/internal/usecase/interfaces"
)

// ErrMalformedOutput is returned when the model reply holds no usable JSON.
var ErrMalformedOutput = errors.New("extraction: malformed model output")

// Config configures the Anthropic-backed oracle.
type Config struct {
	APIKey      string
	BaseURL     string
	Model       string
	MaxTokens   int64
	Temperature float64
	OfficePhone string
	Retry       resilience.RetryConfig
}

// messageCreator is the slice of the SDK the oracle uses.
type messageCreator interface {
	New(ctx context.Context, body sdk.MessageNewParams, opts ...option.RequestOption) (*sdk.Message, error)
}

// AnthropicOracle asks Claude to extract quote attributes and draft a reply.
type AnthropicOracle struct {
	messages messageCreator
	cfg      Config
}

var _ interfaces.IExtractionOracle = (*AnthropicOracle)(nil)

// NewAnthropicOracle builds an oracle backed by the official SDK. SDK-level
// retries are disabled; retries follow cfg.Retry.
func NewAnthropicOracle(cfg Config) *AnthropicOracle {
	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}
	client := sdk.NewClient(opts...)
	return newOracle(&client.Messages, cfg)
}

func newOracle(messages messageCreator, cfg Config) *AnthropicOracle {
	if cfg.MaxTokens <= 0 {
		cfg.MaxTokens = 1024
	}
	if cfg.Retry.OnRetry == nil {
		cfg.Retry.OnRetry = resilience.RetryLogger("anthropic", "extract")
	}
	return &AnthropicOracle{messages: messages, cfg: cfg}
}

func (o *AnthropicOracle) Extract(ctx context.Context, req entities.ExtractionRequest) (entities.ExtractionResult, error) {
	params := sdk.MessageNewParams{
		Model:       sdk.Model(o.cfg.Model),
		MaxTokens:   o.cfg.MaxTokens,
		System:      []sdk.TextBlockParam{{Text: SystemPrompt(req.Mode, o.cfg.OfficePhone)}},
		Messages:    []sdk.MessageParam{sdk.NewUserMessage(sdk.NewTextBlock(UserPrompt(req)))},
		Temperature: sdk.Float(o.cfg.Temperature),
	}

	start := time.Now()
	res, err := resilience.DoVal(ctx, o.cfg.Retry, func(ctx context.Context) (entities.ExtractionResult, error) {
		msg, err := o.messages.New(ctx, params)
		if err != nil {
			return entities.ExtractionResult{}, classify(err)
		}
		return ParseOracleOutput(messageText(msg))
	})
	if err != nil {
		return entities.ExtractionResult{}, err
	}

	zap.L().Debug("extraction complete",
		zap.String("quote_id", req.QuoteID),
		zap.String("mode", string(req.Mode)),
		zap.Int("attributes", len(res.Attributes)),
		zap.Duration("elapsed", time.Since(start)),
	)
	return res, nil
}

type oracleOutput struct {
	Properties []entities.ExtractedAttribute `json:"properties"`
	Response   string                        `json:"response"`
}

// ParseOracleOutput pulls the JSON object out of a model reply, tolerating
// code fences and chatter around it. Numbers are kept as json.Number.
// Malformed output is retryable: a second sample usually parses.
func ParseOracleOutput(raw string) (entities.ExtractionResult, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, "```json", "")
	s = strings.ReplaceAll(s, "```", "")

	start, end := strings.Index(s, "{"), strings.LastIndex(s, "}")
	if start == -1 || end <= start {
		return entities.ExtractionResult{}, fmt.Errorf("%w: no JSON object", ErrMalformedOutput)
	}

	dec := json.NewDecoder(bytes.NewReader([]byte(s[start : end+1])))
	dec.UseNumber()
	var out oracleOutput
	if err := dec.Decode(&out); err != nil {
		return entities.ExtractionResult{}, fmt.Errorf("%w: %v", ErrMalformedOutput, err)
	}

	res := entities.ExtractionResult{Reply: strings.TrimSpace(out.Response)}
	for _, p := range out.Properties {
		if strings.TrimSpace(p.Property) == "" {
			continue
		}
		res.Attributes = append(res.Attributes, p)
	}
	if res.Reply == "" && len(res.Attributes) == 0 {
		return entities.ExtractionResult{}, fmt.Errorf("%w: empty output", ErrMalformedOutput)
	}
	return res, nil
}

func messageText(msg *sdk.Message) string {
	if msg == nil {
		return ""
	}
	var b strings.Builder
	for _, block := range msg.Content {
		if block.Type == "text" {
			b.WriteString(block.Text)
		}
	}
	return b.String()
}

// classify wraps an SDK failure, marking it permanent unless the status or
// transport error is worth another attempt.
func classify(err error) error {
	wrapped := eris.Wrap(err, "anthropic: create message")
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return resilience.Permanent(wrapped)
	}
	var apiErr *sdk.Error
	if errors.As(err, &apiErr) && !resilience.IsTransientHTTPStatus(apiErr.StatusCode) {
		return resilience.Permanent(wrapped)
	}
	return wrapped
}
