// Package config loads application settings with viper and boots the global
// zap logger.
package config

import (
	"math"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"github.com/spf13/viper"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"vacate_quote/internal/domain/quoting"
	"vacate_quote/internal/infrastructure/resilience"
	"vacate_quote/internal/usecase"
)

// Config holds the full application configuration.
type Config struct {
	Server       ServerConfig       `yaml:"server" mapstructure:"server"`
	Store        StoreConfig        `yaml:"store" mapstructure:"store"`
	Anthropic    AnthropicConfig    `yaml:"anthropic" mapstructure:"anthropic"`
	Pricing      PricingConfig      `yaml:"pricing" mapstructure:"pricing"`
	Conversation ConversationConfig `yaml:"conversation" mapstructure:"conversation"`
	Documents    DocumentsConfig    `yaml:"documents" mapstructure:"documents"`
	Mail         MailConfig         `yaml:"mail" mapstructure:"mail"`
	Log          LogConfig          `yaml:"log" mapstructure:"log"`
}

// ServerConfig configures the HTTP API.
type ServerConfig struct {
	Port           int     `yaml:"port" mapstructure:"port"`
	Mode           string  `yaml:"mode" mapstructure:"mode"`
	PublicBaseURL  string  `yaml:"public_base_url" mapstructure:"public_base_url"`
	RateLimitRPS   float64 `yaml:"rate_limit_rps" mapstructure:"rate_limit_rps"`
	RateLimitBurst int     `yaml:"rate_limit_burst" mapstructure:"rate_limit_burst"`
}

// StoreConfig selects the record store backend.
type StoreConfig struct {
	Driver     string         `yaml:"driver" mapstructure:"driver"`
	SQLitePath string         `yaml:"sqlite_path" mapstructure:"sqlite_path"`
	DynamoDB   DynamoDBConfig `yaml:"dynamodb" mapstructure:"dynamodb"`
}

// DynamoDBConfig holds the DynamoDB connection settings.
type DynamoDBConfig struct {
	Region          string `yaml:"region" mapstructure:"region"`
	Endpoint        string `yaml:"endpoint" mapstructure:"endpoint"`
	AccessKeyID     string `yaml:"access_key_id" mapstructure:"access_key_id"`
	SecretAccessKey string `yaml:"secret_access_key" mapstructure:"secret_access_key"`
	Table           string `yaml:"table" mapstructure:"table"`
	CreateTable     bool   `yaml:"create_table" mapstructure:"create_table"`
}

// AnthropicConfig configures the extraction oracle.
type AnthropicConfig struct {
	Key            string  `yaml:"key" mapstructure:"key"`
	BaseURL        string  `yaml:"base_url" mapstructure:"base_url"`
	Model          string  `yaml:"model" mapstructure:"model"`
	MaxTokens      int64   `yaml:"max_tokens" mapstructure:"max_tokens"`
	Temperature    float64 `yaml:"temperature" mapstructure:"temperature"`
	TimeoutSecs    int     `yaml:"timeout_secs" mapstructure:"timeout_secs"`
	MaxAttempts    int     `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoff int     `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
}

// PricingConfig is the pricing table in dollars and minutes.
type PricingConfig struct {
	HourlyRate                     float64        `yaml:"hourly_rate" mapstructure:"hourly_rate"`
	SeasonalDiscountPercent        int64          `yaml:"seasonal_discount_percent" mapstructure:"seasonal_discount_percent"`
	PropertyManagerDiscountPercent int64          `yaml:"property_manager_discount_percent" mapstructure:"property_manager_discount_percent"`
	GSTPercent                     int64          `yaml:"gst_percent" mapstructure:"gst_percent"`
	WeekendSurcharge               float64        `yaml:"weekend_surcharge" mapstructure:"weekend_surcharge"`
	AfterHoursSurcharge            float64        `yaml:"after_hours_surcharge" mapstructure:"after_hours_surcharge"`
	MandurahSurcharge              float64        `yaml:"mandurah_surcharge" mapstructure:"mandurah_surcharge"`
	BedroomMinutes                 int            `yaml:"bedroom_minutes" mapstructure:"bedroom_minutes"`
	BathroomMinutes                int            `yaml:"bathroom_minutes" mapstructure:"bathroom_minutes"`
	WindowMinutes                  int            `yaml:"window_minutes" mapstructure:"window_minutes"`
	BlindMinutes                   int            `yaml:"blind_minutes" mapstructure:"blind_minutes"`
	OvenMinutes                    int            `yaml:"oven_minutes" mapstructure:"oven_minutes"`
	UpholsteryMinutes              int            `yaml:"upholstery_minutes" mapstructure:"upholstery_minutes"`
	FurnishedMinutes               int            `yaml:"furnished_minutes" mapstructure:"furnished_minutes"`
	ExtraMinutes                   map[string]int `yaml:"extra_minutes" mapstructure:"extra_minutes"`
	CarpetMinutes                  map[string]int `yaml:"carpet_minutes" mapstructure:"carpet_minutes"`
}

// ConversationConfig bounds the chat state kept per quote.
type ConversationConfig struct {
	TranscriptMaxChars    int    `yaml:"transcript_max_chars" mapstructure:"transcript_max_chars"`
	DiagnosticMaxChars    int    `yaml:"diagnostic_max_chars" mapstructure:"diagnostic_max_chars"`
	ExtractionTimeoutSecs int    `yaml:"extraction_timeout_secs" mapstructure:"extraction_timeout_secs"`
	OfficePhone           string `yaml:"office_phone" mapstructure:"office_phone"`
	BookingURLBase        string `yaml:"booking_url_base" mapstructure:"booking_url_base"`
}

// DocumentsConfig says where rendered quotes are written and served.
type DocumentsConfig struct {
	OutputDir   string `yaml:"output_dir" mapstructure:"output_dir"`
	PublicPath  string `yaml:"public_path" mapstructure:"public_path"`
	CompanyName string `yaml:"company_name" mapstructure:"company_name"`
}

// MailConfig configures the SMTP relay and delivery retries.
type MailConfig struct {
	Host             string `yaml:"host" mapstructure:"host"`
	Port             int    `yaml:"port" mapstructure:"port"`
	Username         string `yaml:"username" mapstructure:"username"`
	Password         string `yaml:"password" mapstructure:"password"`
	From             string `yaml:"from" mapstructure:"from"`
	FromName         string `yaml:"from_name" mapstructure:"from_name"`
	MaxAttempts      int    `yaml:"max_attempts" mapstructure:"max_attempts"`
	InitialBackoffMs int    `yaml:"initial_backoff_ms" mapstructure:"initial_backoff_ms"`
	TimeoutSecs      int    `yaml:"timeout_secs" mapstructure:"timeout_secs"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level" mapstructure:"level"`
	Format string `yaml:"format" mapstructure:"format"`
}

// Load reads configuration from file and environment.
func Load() (*Config, error) {
	v := viper.New()

	// Config file
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	// Environment
	v.SetEnvPrefix("QUOTE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	// Read config file (optional)
	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, eris.Wrap(err, "config: read file")
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, eris.Wrap(err, "config: unmarshal")
	}

	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.mode", "release")
	v.SetDefault("server.public_base_url", "http://localhost:8080")
	v.SetDefault("server.rate_limit_rps", 1.0)
	v.SetDefault("server.rate_limit_burst", 10)

	v.SetDefault("store.driver", "sqlite")
	v.SetDefault("store.sqlite_path", "data/quotes.db")
	v.SetDefault("store.dynamodb.region", "ap-southeast-2")
	v.SetDefault("store.dynamodb.table", "quote_records")
	v.SetDefault("store.dynamodb.endpoint", "")
	v.SetDefault("store.dynamodb.access_key_id", "")
	v.SetDefault("store.dynamodb.secret_access_key", "")
	v.SetDefault("store.dynamodb.create_table", false)

	v.SetDefault("anthropic.key", "")
	v.SetDefault("anthropic.base_url", "")
	v.SetDefault("anthropic.model", "claude-sonnet-4-5-20250929")
	v.SetDefault("anthropic.max_tokens", 1024)
	v.SetDefault("anthropic.temperature", 0.4)
	v.SetDefault("anthropic.timeout_secs", 30)
	v.SetDefault("anthropic.max_attempts", 2)
	v.SetDefault("anthropic.initial_backoff_ms", 500)

	def := quoting.DefaultPricingTable()
	v.SetDefault("pricing.hourly_rate", centsToDollars(def.HourlyRateCents))
	v.SetDefault("pricing.seasonal_discount_percent", def.SeasonalDiscountPercent)
	v.SetDefault("pricing.property_manager_discount_percent", def.PropertyManagerDiscountPercent)
	v.SetDefault("pricing.gst_percent", def.GSTPercent)
	v.SetDefault("pricing.weekend_surcharge", centsToDollars(def.WeekendSurchargeCents))
	v.SetDefault("pricing.after_hours_surcharge", centsToDollars(def.AfterHoursSurchargeCents))
	v.SetDefault("pricing.mandurah_surcharge", centsToDollars(def.MandurahSurchargeCents))
	v.SetDefault("pricing.bedroom_minutes", def.BedroomMinutes)
	v.SetDefault("pricing.bathroom_minutes", def.BathroomMinutes)
	v.SetDefault("pricing.window_minutes", def.WindowMinutes)
	v.SetDefault("pricing.blind_minutes", def.BlindMinutes)
	v.SetDefault("pricing.oven_minutes", def.OvenMinutes)
	v.SetDefault("pricing.upholstery_minutes", def.UpholsteryMinutes)
	v.SetDefault("pricing.furnished_minutes", def.FurnishedMinutes)
	v.SetDefault("pricing.extra_minutes", def.ExtraMinutes)
	v.SetDefault("pricing.carpet_minutes", def.CarpetMinutes)

	conv := usecase.DefaultConversationSettings()
	v.SetDefault("conversation.transcript_max_chars", conv.TranscriptMaxChars)
	v.SetDefault("conversation.diagnostic_max_chars", conv.DiagnosticMaxChars)
	v.SetDefault("conversation.extraction_timeout_secs", int(conv.ExtractionTimeout/time.Second))
	v.SetDefault("conversation.office_phone", conv.OfficePhone)
	v.SetDefault("conversation.booking_url_base", "http://localhost:8080/book")

	v.SetDefault("documents.output_dir", "data/quotes")
	v.SetDefault("documents.public_path", "/quotes")
	v.SetDefault("documents.company_name", "Orca Cleaning")

	v.SetDefault("mail.host", "localhost")
	v.SetDefault("mail.port", 587)
	v.SetDefault("mail.username", "")
	v.SetDefault("mail.password", "")
	v.SetDefault("mail.from", "quotes@localhost")
	v.SetDefault("mail.from_name", "Orca Cleaning Quotes")
	v.SetDefault("mail.max_attempts", 3)
	v.SetDefault("mail.initial_backoff_ms", 1000)
	v.SetDefault("mail.timeout_secs", 120)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
}

// Validate checks the settings the server cannot start without.
func (c *Config) Validate() error {
	var missing []string
	switch c.Store.Driver {
	case "sqlite":
		if c.Store.SQLitePath == "" {
			missing = append(missing, "store.sqlite_path")
		}
	case "dynamodb":
		if c.Store.DynamoDB.Table == "" {
			missing = append(missing, "store.dynamodb.table")
		}
	default:
		return eris.Errorf("config: unknown store.driver %q", c.Store.Driver)
	}
	if c.Anthropic.Key == "" {
		missing = append(missing, "anthropic.key")
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return eris.Errorf("config: invalid server.port %d", c.Server.Port)
	}
	if len(missing) > 0 {
		return eris.Errorf("config: missing required settings: %s", strings.Join(missing, ", "))
	}
	return nil
}

// PricingTable converts the configured prices to the engine's cents table.
func (p PricingConfig) PricingTable() quoting.PricingTable {
	return quoting.PricingTable{
		HourlyRateCents:                dollarsToCents(p.HourlyRate),
		SeasonalDiscountPercent:        p.SeasonalDiscountPercent,
		PropertyManagerDiscountPercent: p.PropertyManagerDiscountPercent,
		GSTPercent:                     p.GSTPercent,
		WeekendSurchargeCents:          dollarsToCents(p.WeekendSurcharge),
		AfterHoursSurchargeCents:       dollarsToCents(p.AfterHoursSurcharge),
		MandurahSurchargeCents:         dollarsToCents(p.MandurahSurcharge),
		BedroomMinutes:                 p.BedroomMinutes,
		BathroomMinutes:                p.BathroomMinutes,
		WindowMinutes:                  p.WindowMinutes,
		BlindMinutes:                   p.BlindMinutes,
		OvenMinutes:                    p.OvenMinutes,
		UpholsteryMinutes:              p.UpholsteryMinutes,
		FurnishedMinutes:               p.FurnishedMinutes,
		ExtraMinutes:                   p.ExtraMinutes,
		CarpetMinutes:                  p.CarpetMinutes,
	}
}

// ConversationSettings builds the state machine settings.
func (c *Config) ConversationSettings() usecase.ConversationSettings {
	return usecase.ConversationSettings{
		TranscriptMaxChars: c.Conversation.TranscriptMaxChars,
		DiagnosticMaxChars: c.Conversation.DiagnosticMaxChars,
		ExtractionTimeout:  time.Duration(c.Conversation.ExtractionTimeoutSecs) * time.Second,
		OfficePhone:        c.Conversation.OfficePhone,
		BookingURLBase:     c.Conversation.BookingURLBase,
		Pricing:            c.Pricing.PricingTable(),
	}
}

// DeliverySettings builds the quote delivery settings.
func (c *Config) DeliverySettings() usecase.DeliverySettings {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = c.Mail.MaxAttempts
	retry.InitialBackoff = time.Duration(c.Mail.InitialBackoffMs) * time.Millisecond
	return usecase.DeliverySettings{
		Timeout:            time.Duration(c.Mail.TimeoutSecs) * time.Second,
		Retry:              retry,
		DiagnosticMaxChars: c.Conversation.DiagnosticMaxChars,
	}
}

// AnthropicRetry builds the retry policy for oracle calls.
func (c *Config) AnthropicRetry() resilience.RetryConfig {
	retry := resilience.DefaultRetryConfig()
	retry.MaxAttempts = c.Anthropic.MaxAttempts
	retry.InitialBackoff = time.Duration(c.Anthropic.InitialBackoff) * time.Millisecond
	return retry
}

// DocumentsURL is the public prefix rendered documents are served under.
func (c *Config) DocumentsURL() string {
	return strings.TrimRight(c.Server.PublicBaseURL, "/") + "/" + strings.Trim(c.Documents.PublicPath, "/")
}

// InitLogger initializes the global zap logger.
func InitLogger(cfg LogConfig) error {
	var zapCfg zap.Config
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	} else {
		zapCfg = zap.NewProductionConfig()
	}

	level, err := zapcore.ParseLevel(cfg.Level)
	if err != nil {
		return eris.Wrap(err, "config: parse log level")
	}
	zapCfg.Level.SetLevel(level)

	logger, err := zapCfg.Build()
	if err != nil {
		return eris.Wrap(err, "config: build logger")
	}
	zap.ReplaceGlobals(logger)

	return nil
}

func dollarsToCents(v float64) int64 {
	return int64(math.Round(v * 100))
}

func centsToDollars(c int64) float64 {
	return float64(c) / 100
}
