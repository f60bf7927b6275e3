package config

import (
	"fmt"
	"net/url"
	"time"

	apperrors "voice-sales-backend/internal/errors"

	"github.com/spf13/viper"
)

const defaultLocalBaseURL = "http://localhost:7008"

// Config holds all configuration for the application
type Config struct {
	Environment string `mapstructure:"ENVIRONMENT"`
	Port        string `mapstructure:"PORT"`
	LogLevel    string `mapstructure:"LOG_LEVEL"`

	// Database configuration
	DatabaseURL      string `mapstructure:"DATABASE_URL"`
	DatabaseHost     string `mapstructure:"DB_HOST"`
	DatabasePort     string `mapstructure:"DB_PORT"`
	DatabaseUser     string `mapstructure:"DB_USER"`
	DatabasePassword string `mapstructure:"DB_PASSWORD"`
	DatabaseName     string `mapstructure:"DB_NAME"`
	DatabaseSSLMode  string `mapstructure:"DB_SSL_MODE"`

	// CORS configuration
	AllowedOrigins []string `mapstructure:"ALLOWED_ORIGINS"`

	// Orchestration
	PublicBaseURL            string `mapstructure:"PUBLIC_BASE_URL"`
	AgentName                string `mapstructure:"AGENT_NAME"`
	PhoneDefaultRegion       string `mapstructure:"PHONE_DEFAULT_REGION"`
	InitiateRequiresPlaybook bool   `mapstructure:"INITIATE_REQUIRES_PLAYBOOK"`

	// Telephony configuration
	TelephonyProvider   string `mapstructure:"TELEPHONY_PROVIDER"`
	TwilioAccountSID    string `mapstructure:"TWILIO_ACCOUNT_SID"`
	TwilioAuthToken     string `mapstructure:"TWILIO_AUTH_TOKEN"`
	TwilioPhoneNumber   string `mapstructure:"TWILIO_PHONE_NUMBER"`
	TwilioBaseURL       string `mapstructure:"TWILIO_BASE_URL"`
	TelephonyTimeoutSec int    `mapstructure:"TELEPHONY_TIMEOUT_SEC"`

	// Text generation configuration
	TextGenProvider   string `mapstructure:"TEXTGEN_PROVIDER"`
	OpenAIAPIKey      string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL     string `mapstructure:"OPENAI_BASE_URL"`
	OpenAIModel       string `mapstructure:"OPENAI_MODEL"`
	GeminiAPIKey      string `mapstructure:"GEMINI_API_KEY"`
	GeminiModel       string `mapstructure:"GEMINI_MODEL"`
	TextGenTimeoutSec int    `mapstructure:"TEXTGEN_TIMEOUT_SEC"`

	// Speech synthesis configuration
	ElevenLabsAPIKey  string `mapstructure:"ELEVENLABS_API_KEY"`
	ElevenLabsVoiceID string `mapstructure:"ELEVENLABS_VOICE_ID"`
	ElevenLabsBaseURL string `mapstructure:"ELEVENLABS_BASE_URL"`
	TTSTimeoutSec     int    `mapstructure:"TTS_TIMEOUT_SEC"`

	// Dispatch configuration
	RedisURL            string  `mapstructure:"REDIS_URL"`
	DispatchQueue       string  `mapstructure:"DISPATCH_QUEUE"`
	DispatchConcurrency int     `mapstructure:"DISPATCH_CONCURRENCY"`
	BulkConcurrency     int     `mapstructure:"BULK_CONCURRENCY"`
	DialRatePerSec      float64 `mapstructure:"DIAL_RATE_PER_SEC"`

	// Email configuration
	SMTPHost      string `mapstructure:"SMTP_HOST"`
	SMTPPort      int    `mapstructure:"SMTP_PORT"`
	SMTPUser      string `mapstructure:"SMTP_USER"`
	SMTPPassword  string `mapstructure:"SMTP_PASSWORD"`
	SMTPFromEmail string `mapstructure:"SMTP_FROM_EMAIL"`
	SMTPFromName  string `mapstructure:"SMTP_FROM_NAME"`
}

// Load reads configuration from environment variables and config files
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")

	// Set default values
	setDefaults()

	// Read config file if it exists
	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	// Override with environment variables
	viper.AutomaticEnv()

	var config Config
	if err := viper.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}

	// Build database URL if not provided
	if config.DatabaseURL == "" {
		config.DatabaseURL = buildDatabaseURL(&config)
	}

	// Local callbacks only make sense outside production
	if config.PublicBaseURL == "" && !config.IsProduction() {
		config.PublicBaseURL = defaultLocalBaseURL
	}

	// Validate required fields
	if err := validate(&config); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return &config, nil
}

func setDefaults() {
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("PORT", "7008")
	viper.SetDefault("LOG_LEVEL", "info")

	// Database defaults
	viper.SetDefault("DATABASE_URL", "")
	viper.SetDefault("DB_HOST", "localhost")
	viper.SetDefault("DB_PORT", "5432")
	viper.SetDefault("DB_USER", "postgres")
	viper.SetDefault("DB_PASSWORD", "postgres")
	viper.SetDefault("DB_NAME", "voice_sales")
	viper.SetDefault("DB_SSL_MODE", "disable")

	// CORS defaults
	viper.SetDefault("ALLOWED_ORIGINS", []string{"http://localhost:3000", "http://localhost:8080"})

	// Orchestration defaults
	viper.SetDefault("PUBLIC_BASE_URL", "")
	viper.SetDefault("AGENT_NAME", "Sarah")
	viper.SetDefault("PHONE_DEFAULT_REGION", "US")
	viper.SetDefault("INITIATE_REQUIRES_PLAYBOOK", true)

	// Telephony defaults - demo provider never touches the network
	viper.SetDefault("TELEPHONY_PROVIDER", "demo")
	viper.SetDefault("TWILIO_ACCOUNT_SID", "")
	viper.SetDefault("TWILIO_AUTH_TOKEN", "")
	viper.SetDefault("TWILIO_PHONE_NUMBER", "")
	viper.SetDefault("TWILIO_BASE_URL", "https://api.twilio.com")
	viper.SetDefault("TELEPHONY_TIMEOUT_SEC", 10)

	// Text generation defaults
	viper.SetDefault("TEXTGEN_PROVIDER", "none")
	viper.SetDefault("OPENAI_API_KEY", "")
	viper.SetDefault("OPENAI_BASE_URL", "https://api.openai.com/v1")
	viper.SetDefault("OPENAI_MODEL", "gpt-4o-mini")
	viper.SetDefault("GEMINI_API_KEY", "")
	viper.SetDefault("GEMINI_MODEL", "gemini-2.0-flash")
	viper.SetDefault("TEXTGEN_TIMEOUT_SEC", 15)

	// Speech defaults
	viper.SetDefault("ELEVENLABS_API_KEY", "")
	viper.SetDefault("ELEVENLABS_VOICE_ID", "21m00Tcm4TlvDq8ikWAM")
	viper.SetDefault("ELEVENLABS_BASE_URL", "https://api.elevenlabs.io")
	viper.SetDefault("TTS_TIMEOUT_SEC", 15)

	// Dispatch defaults
	viper.SetDefault("REDIS_URL", "")
	viper.SetDefault("DISPATCH_QUEUE", "calls")
	viper.SetDefault("DISPATCH_CONCURRENCY", 5)
	viper.SetDefault("BULK_CONCURRENCY", 4)
	viper.SetDefault("DIAL_RATE_PER_SEC", 1.0)

	// Email defaults
	viper.SetDefault("SMTP_HOST", "")
	viper.SetDefault("SMTP_PORT", 587)
	viper.SetDefault("SMTP_USER", "")
	viper.SetDefault("SMTP_PASSWORD", "")
	viper.SetDefault("SMTP_FROM_EMAIL", "")
	viper.SetDefault("SMTP_FROM_NAME", "Sales Team")
}

func buildDatabaseURL(config *Config) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		config.DatabaseUser,
		config.DatabasePassword,
		config.DatabaseHost,
		config.DatabasePort,
		config.DatabaseName,
		config.DatabaseSSLMode,
	)
}

func validate(config *Config) error {
	if config.DatabaseName == "" {
		return apperrors.NewConfigurationError("database name is required")
	}

	switch config.TelephonyProvider {
	case "demo":
	case "twilio":
		if config.TwilioAccountSID == "" || config.TwilioAuthToken == "" || config.TwilioPhoneNumber == "" {
			return apperrors.NewConfigurationError("TWILIO_ACCOUNT_SID, TWILIO_AUTH_TOKEN and TWILIO_PHONE_NUMBER are required for the twilio provider")
		}
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown TELEPHONY_PROVIDER %q", config.TelephonyProvider))
	}

	switch config.TextGenProvider {
	case "none", "openai", "gemini":
	default:
		return apperrors.NewConfigurationError(fmt.Sprintf("unknown TEXTGEN_PROVIDER %q", config.TextGenProvider))
	}

	if config.IsProduction() {
		if config.PublicBaseURL == "" {
			return apperrors.NewConfigurationError("PUBLIC_BASE_URL must be set in production")
		}
		if isLoopback(config.PublicBaseURL) {
			return apperrors.NewConfigurationError(fmt.Sprintf("PUBLIC_BASE_URL %q is not reachable by the telephony provider", config.PublicBaseURL))
		}
	}

	return nil
}

// IsDevelopment returns true if the environment is development
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func isLoopback(baseURL string) bool {
	parsed, err := url.Parse(baseURL)
	if err != nil {
		return false
	}
	switch parsed.Hostname() {
	case "localhost", "127.0.0.1", "::1", "0.0.0.0":
		return true
	}
	return false
}

// IsProduction returns true if the environment is production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// TelephonyTimeout returns the per-request timeout for the telephony provider
func (c *Config) TelephonyTimeout() time.Duration {
	return seconds(c.TelephonyTimeoutSec, 10)
}

// TextGenTimeout returns the per-request timeout for the text generation provider
func (c *Config) TextGenTimeout() time.Duration {
	return seconds(c.TextGenTimeoutSec, 15)
}

// TTSTimeout returns the per-request timeout for the speech synthesizer
func (c *Config) TTSTimeout() time.Duration {
	return seconds(c.TTSTimeoutSec, 15)
}

func seconds(v, fallback int) time.Duration {
	if v <= 0 {
		v = fallback
	}
	return time.Duration(v) * time.Second
}
