package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type Config struct {
	Server       ServerConfig       `mapstructure:"server"`
	OpenAI       OpenAIConfig       `mapstructure:"openai"`
	LanguageTool LanguageToolConfig `mapstructure:"languagetool"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address"`
	AllowedOrigin string `mapstructure:"allowed_origin"`
}

type OpenAIConfig struct {
	APIKey  string `mapstructure:"api_key"`
	Model   string `mapstructure:"model"`
	BaseURL string `mapstructure:"base_url"`
}

type LanguageToolConfig struct {
	Username string `mapstructure:"username"`
	APIKey   string `mapstructure:"api_key"`
	BaseURL  string `mapstructure:"base_url"`
}

func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/essaylens")
	}

	v.SetDefault("server.address", ":8080")
	v.SetDefault("server.allowed_origin", "http://localhost:3000")
	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "")
	v.SetDefault("languagetool.base_url", "")

	// Bind secrets to environment variables only (not from config file)
	if err := v.BindEnv("openai.api_key", "OPENAI_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_API_KEY environment variable: %w", err)
	}
	if err := v.BindEnv("openai.model", "OPENAI_MODEL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_MODEL environment variable: %w", err)
	}
	if err := v.BindEnv("openai.base_url", "OPENAI_BASE_URL"); err != nil {
		return nil, fmt.Errorf("failed to bind OPENAI_BASE_URL environment variable: %w", err)
	}
	if err := v.BindEnv("languagetool.username", "LANGUAGETOOL_USERNAME"); err != nil {
		return nil, fmt.Errorf("failed to bind LANGUAGETOOL_USERNAME environment variable: %w", err)
	}
	if err := v.BindEnv("languagetool.api_key", "LANGUAGETOOL_API_KEY"); err != nil {
		return nil, fmt.Errorf("failed to bind LANGUAGETOOL_API_KEY environment variable: %w", err)
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("configuration file found but could not be read: %w. Please check the file format and permissions", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration format: %w", err)
	}

	return &cfg, nil
}
