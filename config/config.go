package config

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Provider names accepted by TEXT_PROVIDER and IMAGE_PROVIDER.
const (
	ProviderOpenAI = "openai"
	ProviderGenAI  = "genai"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress      string `mapstructure:"SERVER_ADDRESS"`       // e.g., ":8080"
	AppEnv             string `mapstructure:"APP_ENV"`              // "development" or "production"
	CORSAllowedOrigins string `mapstructure:"CORS_ALLOWED_ORIGINS"` // comma separated list

	// Logging
	LogLevel    string `mapstructure:"LOG_LEVEL"`    // debug, info, warn, error
	LogEncoding string `mapstructure:"LOG_ENCODING"` // json or console

	// Provider selection
	TextProvider  string `mapstructure:"TEXT_PROVIDER"`  // openai or genai
	ImageProvider string `mapstructure:"IMAGE_PROVIDER"` // genai or openai

	// OpenAI (or any OpenAI-compatible endpoint)
	OpenAIKey        string `mapstructure:"OPENAI_API_KEY"`
	OpenAIBaseURL    string `mapstructure:"OPENAI_BASE_URL"` // empty means api.openai.com
	ChatModel        string `mapstructure:"CHAT_MODEL"`
	OpenAIImageModel string `mapstructure:"OPENAI_IMAGE_MODEL"`

	// Google Gemini / Imagen
	GeminiAPIKey     string `mapstructure:"GEMINI_API_KEY"`
	GeminiTextModel  string `mapstructure:"GEMINI_TEXT_MODEL"`
	GeminiImageModel string `mapstructure:"GEMINI_IMAGE_MODEL"`

	// Generation limits
	AITimeout       time.Duration `mapstructure:"AI_TIMEOUT"`
	MaxPromptTokens int           `mapstructure:"MAX_PROMPT_TOKENS"` // 0 disables the budget
}

var defaults = map[string]any{
	"SERVER_ADDRESS":       ":8080",
	"APP_ENV":              "development",
	"CORS_ALLOWED_ORIGINS": "http://localhost:3000",
	"LOG_LEVEL":            "info",
	"LOG_ENCODING":         "json",
	"TEXT_PROVIDER":        ProviderOpenAI,
	"IMAGE_PROVIDER":       ProviderGenAI,
	"OPENAI_API_KEY":       "",
	"OPENAI_BASE_URL":      "",
	"CHAT_MODEL":           "gpt-4o",
	"OPENAI_IMAGE_MODEL":   "dall-e-3",
	"GEMINI_API_KEY":       "",
	"GEMINI_TEXT_MODEL":    "gemini-2.0-flash",
	"GEMINI_IMAGE_MODEL":   "imagen-4.0-fast-generate-001",
	"AI_TIMEOUT":           "90s",
	"MAX_PROMPT_TOKENS":    0,
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)     // Path to look for the config file in
	v.SetConfigName("config") // Name of config file (without extension)
	v.SetConfigType("yaml")

	// Unmarshal only sees keys viper already knows about, so every
	// environment-only key needs a default.
	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	config.TextProvider = strings.ToLower(strings.TrimSpace(config.TextProvider))
	config.ImageProvider = strings.ToLower(strings.TrimSpace(config.ImageProvider))

	if err = config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

// Validate checks provider selection and the credentials each selected provider needs.
func (c Config) Validate() error {
	for _, p := range []struct{ name, value string }{
		{"TEXT_PROVIDER", c.TextProvider},
		{"IMAGE_PROVIDER", c.ImageProvider},
	} {
		switch p.value {
		case ProviderOpenAI:
			if c.OpenAIKey == "" {
				return fmt.Errorf("%s is %q but OPENAI_API_KEY is not set", p.name, p.value)
			}
		case ProviderGenAI:
			if c.GeminiAPIKey == "" {
				return fmt.Errorf("%s is %q but GEMINI_API_KEY is not set", p.name, p.value)
			}
		default:
			return fmt.Errorf("unknown %s %q (want %q or %q)", p.name, p.value, ProviderOpenAI, ProviderGenAI)
		}
	}
	if c.AITimeout <= 0 {
		return fmt.Errorf("AI_TIMEOUT must be positive, got %s", c.AITimeout)
	}
	if c.MaxPromptTokens < 0 {
		return fmt.Errorf("MAX_PROMPT_TOKENS must not be negative, got %d", c.MaxPromptTokens)
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS into a clean list.
func (c Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

// IsProduction reports whether APP_ENV selects release mode.
func (c Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, "production")
}
