package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	// Environment
	Environment EnvironmentConfig

	// Server
	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	// Assistant specifics
	Assistant      AssistantConfig
	GoogleCalendar GoogleCalendarConfig
	SendGrid       SendGridConfig
	Twilio         TwilioConfig
	Accounts       []AccountConfig

	// LLM Provider Abstraction
	LLM LLMConfig

	// Webhooks
	Webhook WebhookConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port            int
	Mode            string
	RateLimitPerMin int
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// AssistantConfig tunes the conversation layer.
type AssistantConfig struct {
	// Timezone is the IANA zone all natural-language times resolve in.
	Timezone string
}

type GoogleCalendarConfig struct {
	CredentialsPath string
	CalendarID      string
}

type SendGridConfig struct {
	APIKey    string
	FromEmail string
	FromName  string
}

type TwilioConfig struct {
	AccountSID string
	AuthToken  string
	FromPhone  string
}

// AccountConfig seeds one assistant account at startup.
type AccountConfig struct {
	ID       string            `mapstructure:"id"`
	Name     string            `mapstructure:"name"`
	Email    string            `mapstructure:"email"`
	Phone    string            `mapstructure:"phone"`
	Timezone string            `mapstructure:"timezone"`
	Perms    map[string]bool   `mapstructure:"permissions"`
	Extra    map[string]string `mapstructure:"extra"`
}

// LLMConfig holds configuration for the LLM provider abstraction layer
type LLMConfig struct {
	Providers       []ProviderConfig `yaml:"providers"`
	FallbackEnabled bool             `yaml:"fallback_enabled"`
	RetryAttempts   int              `yaml:"retry_attempts"`
	RetryDelay      string           `yaml:"retry_delay"`
	MaxTotalTimeout string           `yaml:"max_total_timeout"`
}

// ProviderConfig holds configuration for a single LLM provider
type ProviderConfig struct {
	Name     string `yaml:"name"`
	Enabled  bool   `yaml:"enabled"`
	Priority int    `yaml:"priority"`
	APIKey   string `yaml:"api_key"`
	BaseURL  string `yaml:"base_url,omitempty"`
	Model    string `yaml:"model"`
	Timeout  string `yaml:"timeout"`
}

type WebhookConfig struct {
	Enabled         bool
	PublicURL       string
	RateLimitPerMin int
}

// Load loads configuration using Viper.
// Config file name: config.yaml, searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	// Environment & Server
	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.HTTPServer.RateLimitPerMin = viper.GetInt("http_server.rate_limit_per_min")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	// Assistant
	cfg.Assistant.Timezone = viper.GetString("assistant.timezone")

	cfg.GoogleCalendar.CredentialsPath = viper.GetString("google_calendar.credentials_path")
	cfg.GoogleCalendar.CalendarID = viper.GetString("google_calendar.calendar_id")
	if googleCreds := viper.GetString("google_calendar_credentials"); googleCreds != "" {
		cfg.GoogleCalendar.CredentialsPath = googleCreds
	}

	// Transports
	cfg.SendGrid.APIKey = expandEnvVar(viper.GetString("sendgrid.api_key"))
	cfg.SendGrid.FromEmail = viper.GetString("sendgrid.from_email")
	cfg.SendGrid.FromName = viper.GetString("sendgrid.from_name")

	cfg.Twilio.AccountSID = expandEnvVar(viper.GetString("twilio.account_sid"))
	cfg.Twilio.AuthToken = expandEnvVar(viper.GetString("twilio.auth_token"))
	cfg.Twilio.FromPhone = viper.GetString("twilio.from_phone")

	// Seed accounts
	if err := viper.UnmarshalKey("accounts", &cfg.Accounts); err != nil {
		return nil, fmt.Errorf("error parsing accounts: %w", err)
	}

	// LLM Provider Abstraction
	cfg.LLM.FallbackEnabled = viper.GetBool("llm.fallback_enabled")
	cfg.LLM.RetryAttempts = viper.GetInt("llm.retry_attempts")
	cfg.LLM.RetryDelay = viper.GetString("llm.retry_delay")
	cfg.LLM.MaxTotalTimeout = viper.GetString("llm.max_total_timeout")

	// Load provider configurations
	if viper.IsSet("llm.providers") {
		providersRaw := viper.Get("llm.providers")
		if providersList, ok := providersRaw.([]interface{}); ok {
			for _, p := range providersList {
				if providerMap, ok := p.(map[string]interface{}); ok {
					provider := ProviderConfig{
						Name:     getStringFromMap(providerMap, "name"),
						Enabled:  getBoolFromMap(providerMap, "enabled"),
						Priority: getIntFromMap(providerMap, "priority"),
						APIKey:   expandEnvVar(getStringFromMap(providerMap, "api_key")),
						BaseURL:  getStringFromMap(providerMap, "base_url"),
						Model:    getStringFromMap(providerMap, "model"),
						Timeout:  getStringFromMap(providerMap, "timeout"),
					}
					cfg.LLM.Providers = append(cfg.LLM.Providers, provider)
				}
			}
		}
	}

	// LLM providers are optional; the assistant degrades to rule-based
	// classification without them. Configured providers must still be valid.
	if len(cfg.LLM.Providers) > 0 {
		if err := validateLLMConfig(&cfg.LLM); err != nil {
			return nil, err
		}
	}

	// Webhooks
	cfg.Webhook.Enabled = viper.GetBool("webhook.enabled")
	cfg.Webhook.PublicURL = viper.GetString("webhook.public_url")
	cfg.Webhook.RateLimitPerMin = viper.GetInt("webhook.rate_limit_per_min")

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("http_server.rate_limit_per_min", 120)
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("assistant.timezone", "Asia/Kolkata")
	viper.SetDefault("google_calendar.calendar_id", "primary")
	viper.SetDefault("webhook.rate_limit_per_min", 60)
	viper.SetDefault("webhook.enabled", true)

	// LLM defaults
	viper.SetDefault("llm.fallback_enabled", true)
	viper.SetDefault("llm.retry_attempts", 3)
	viper.SetDefault("llm.retry_delay", "1s")
	viper.SetDefault("llm.max_total_timeout", "60s")
}

// expandEnvVar expands environment variables in the format ${VAR_NAME}
func expandEnvVar(value string) string {
	if value == "" {
		return value
	}

	if strings.HasPrefix(value, "${") && strings.HasSuffix(value, "}") {
		envVar := value[2 : len(value)-1]
		if envValue := viper.GetString(envVar); envValue != "" {
			return envValue
		}
		if envValue := viper.GetString(strings.ToLower(envVar)); envValue != "" {
			return envValue
		}
		if envValue := os.Getenv(envVar); envValue != "" {
			return envValue
		}
	}

	return value
}

// validateLLMConfig validates the LLM configuration
func validateLLMConfig(cfg *LLMConfig) error {
	enabledCount := 0
	priorityMap := make(map[int]bool)

	for i, provider := range cfg.Providers {
		if provider.Name == "" {
			return fmt.Errorf("provider %d: name is required", i)
		}
		if provider.Model == "" {
			return fmt.Errorf("provider %s: model is required", provider.Name)
		}

		if provider.Enabled {
			enabledCount++

			if provider.Priority <= 0 {
				return fmt.Errorf("provider %s: priority must be positive", provider.Name)
			}
			if priorityMap[provider.Priority] {
				return fmt.Errorf("provider %s: duplicate priority %d", provider.Name, provider.Priority)
			}
			priorityMap[provider.Priority] = true
		}
	}

	if enabledCount == 0 {
		return fmt.Errorf("no enabled LLM providers")
	}

	return nil
}

// Helper functions to safely extract values from map[string]interface{}
func getStringFromMap(m map[string]interface{}, key string) string {
	if val, ok := m[key]; ok {
		if str, ok := val.(string); ok {
			return str
		}
	}
	return ""
}

func getBoolFromMap(m map[string]interface{}, key string) bool {
	if val, ok := m[key]; ok {
		if b, ok := val.(bool); ok {
			return b
		}
	}
	return false
}

func getIntFromMap(m map[string]interface{}, key string) int {
	if val, ok := m[key]; ok {
		if i, ok := val.(int); ok {
			return i
		}
		// Handle float64 from JSON unmarshaling
		if f, ok := val.(float64); ok {
			return int(f)
		}
	}
	return 0
}
