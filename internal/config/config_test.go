package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"vacate_quote/internal/domain/quoting"
)

func chdirTemp(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, _ := os.Getwd()
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { os.Chdir(origDir) })
	return dir
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "sqlite", cfg.Store.Driver)
	assert.Equal(t, "quote_records", cfg.Store.DynamoDB.Table)
	assert.Equal(t, "claude-sonnet-4-5-20250929", cfg.Anthropic.Model)
	assert.InDelta(t, 0.4, cfg.Anthropic.Temperature, 0.001)
	assert.Equal(t, "1300 918 388", cfg.Conversation.OfficePhone)
	assert.Equal(t, 10000, cfg.Conversation.TranscriptMaxChars)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "json", cfg.Log.Format)

	assert.Equal(t, quoting.DefaultPricingTable(), cfg.Pricing.PricingTable())
}

func TestLoadFromYAML(t *testing.T) {
	dir := chdirTemp(t)

	yaml := `
store:
  driver: dynamodb
  dynamodb:
    endpoint: http://localhost:8000
pricing:
  hourly_rate: 80
  mandurah_surcharge: 65.5
  extra_minutes:
    deep_cleaning: 90
log:
  format: console
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(yaml), 0644))

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dynamodb", cfg.Store.Driver)
	assert.Equal(t, "http://localhost:8000", cfg.Store.DynamoDB.Endpoint)
	assert.Equal(t, "console", cfg.Log.Format)

	table := cfg.Pricing.PricingTable()
	assert.Equal(t, int64(8000), table.HourlyRateCents)
	assert.Equal(t, int64(6550), table.MandurahSurchargeCents)
	assert.Equal(t, 90, table.ExtraMinutes["deep_cleaning"])
	// Defaults still apply for unset values
	assert.Equal(t, int64(8000), table.WeekendSurchargeCents)
}

func TestYAMLKeysMatchViperKeys(t *testing.T) {
	dir := chdirTemp(t)

	want, err := Load()
	require.NoError(t, err)
	want.Server.Port = 9090
	want.Store.Driver = "dynamodb"
	want.Pricing.HourlyRate = 77.5
	want.Pricing.CarpetMinutes["carpet_stairs_count"] = 50
	want.Conversation.OfficePhone = "08 1111 2222"

	out, err := yaml.Marshal(want)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), out, 0644))

	got, err := Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("QUOTE_SERVER_PORT", "3000")
	t.Setenv("QUOTE_ANTHROPIC_KEY", "sk-test")
	t.Setenv("QUOTE_CONVERSATION_OFFICE_PHONE", "08 0000 0000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 3000, cfg.Server.Port)
	assert.Equal(t, "sk-test", cfg.Anthropic.Key)
	assert.Equal(t, "08 0000 0000", cfg.ConversationSettings().OfficePhone)
}

func TestDerivedSettings(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load()
	require.NoError(t, err)

	conv := cfg.ConversationSettings()
	assert.Equal(t, 30*time.Second, conv.ExtractionTimeout)
	assert.Equal(t, "http://localhost:8080/book", conv.BookingURLBase)

	del := cfg.DeliverySettings()
	assert.Equal(t, 3, del.Retry.MaxAttempts)
	assert.Equal(t, time.Second, del.Retry.InitialBackoff)
	assert.Equal(t, 2*time.Minute, del.Timeout)

	assert.Equal(t, 2, cfg.AnthropicRetry().MaxAttempts)
	assert.Equal(t, "http://localhost:8080/quotes", cfg.DocumentsURL())
}

func TestValidate(t *testing.T) {
	chdirTemp(t)
	cfg, err := Load()
	require.NoError(t, err)

	err = cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "anthropic.key")

	cfg.Anthropic.Key = "sk-test"
	assert.NoError(t, cfg.Validate())

	cfg.Store.Driver = "postgres"
	assert.Error(t, cfg.Validate())

	cfg.Store.Driver = "sqlite"
	cfg.Server.Port = 70000
	assert.Error(t, cfg.Validate())
}

func TestInitLoggerConsole(t *testing.T) {
	err := InitLogger(LogConfig{Level: "debug", Format: "console"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerJSON(t *testing.T) {
	err := InitLogger(LogConfig{Level: "info", Format: "json"})
	require.NoError(t, err)
	assert.NotNil(t, zap.L())
}

func TestInitLoggerInvalidLevel(t *testing.T) {
	err := InitLogger(LogConfig{Level: "invalid", Format: "json"})
	assert.Error(t, err)
}
