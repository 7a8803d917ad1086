package config

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Advisor AdvisorConfig `mapstructure:"advisor"`
	Session SessionConfig `mapstructure:"session"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
}

type AdvisorConfig struct {
	// Provider selects the generative backend: "gemini" or "openai".
	Provider     string        `mapstructure:"provider"`
	GeminiAPIKey string        `mapstructure:"gemini_api_key"`
	GeminiModel  string        `mapstructure:"gemini_model"`
	OpenAIAPIKey string        `mapstructure:"openai_api_key"`
	OpenAIModel  string        `mapstructure:"openai_model"`
	Timeout      time.Duration `mapstructure:"timeout"`
}

type SessionConfig struct {
	TTL time.Duration `mapstructure:"ttl"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()

	// Set default values
	v.SetDefault("server.port", "8080")
	v.SetDefault("advisor.provider", "gemini")
	v.SetDefault("advisor.gemini_model", "gemini-1.5-flash")
	v.SetDefault("advisor.openai_model", "gpt-4o-mini")
	v.SetDefault("advisor.timeout", "60s")
	v.SetDefault("session.ttl", "1h")

	// Enable environment variable support
	v.AutomaticEnv()

	// The config file is optional; environment variables alone are
	// enough to run.
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		if !os.IsNotExist(err) {
			return nil, err
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	// Get environment variable overrides
	if key := v.GetString("GEMINI_API_KEY"); key != "" {
		config.Advisor.GeminiAPIKey = key
	}
	if key := v.GetString("OPENAI_API_KEY"); key != "" {
		config.Advisor.OpenAIAPIKey = key
	}
	if port := v.GetString("PORT"); port != "" {
		config.Server.Port = port
	}

	// The generative API key is the one required secret: missing means
	// the process must not start.
	switch config.Advisor.Provider {
	case "gemini":
		if config.Advisor.GeminiAPIKey == "" {
			return nil, fmt.Errorf("missing Gemini API key: set GEMINI_API_KEY")
		}
	case "openai":
		if config.Advisor.OpenAIAPIKey == "" {
			return nil, fmt.Errorf("missing OpenAI API key: set OPENAI_API_KEY")
		}
	default:
		return nil, fmt.Errorf("unknown advisor provider %q", config.Advisor.Provider)
	}

	return &config, nil
}
