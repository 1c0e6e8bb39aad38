package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	OpenAI OpenAIConfig `mapstructure:"openai"`
	Notion NotionConfig `mapstructure:"notion"`
	Log    LogConfig    `mapstructure:"log"`
	Server ServerConfig `mapstructure:"server"`
}

type OpenAIConfig struct {
	APIKey  string        `mapstructure:"api_key" validate:"required"`
	Model   string        `mapstructure:"model" validate:"required"`
	BaseURL string        `mapstructure:"base_url" validate:"required,url"`
	Timeout time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type NotionConfig struct {
	SecretKey  string        `mapstructure:"secret_key" validate:"required"`
	DatabaseID string        `mapstructure:"database_id" validate:"required,notion_id"`
	BaseURL    string        `mapstructure:"base_url" validate:"required,url"`
	Version    string        `mapstructure:"version" validate:"required"`
	Timeout    time.Duration `mapstructure:"timeout" validate:"gt=0"`
}

type LogConfig struct {
	// Directory holds error.log. Empty means the per-user config directory.
	Directory string `mapstructure:"directory"`
}

type ServerConfig struct {
	Address       string `mapstructure:"address" validate:"required,hostname_port"`
	AllowedOrigin string `mapstructure:"allowed_origin" validate:"omitempty,url"`
}

// DotEnvFile is read from the working directory in addition to the config file,
// the same way the desktop app loaded its keys.
const DotEnvFile = ".env"

// envBindings maps config keys to the environment variables that override them.
var envBindings = []struct {
	key  string
	envs []string
}{
	{key: "openai.api_key", envs: []string{"OPENAI_API_KEY"}},
	{key: "openai.model", envs: []string{"OPENAI_API_MODEL", "OPENAI_MODEL"}},
	{key: "notion.secret_key", envs: []string{"NOTION_SECRET_KEY"}},
	{key: "notion.database_id", envs: []string{"NOTION_DATABASE_ID"}},
}

// Load reads the config file and environment. Values are resolved as
// environment > config file > .env > defaults. The result is not validated; call Validate
// before constructing API clients.
func Load(configFile string) (*Config, error) {
	v := viper.New()

	v.SetConfigType("yaml")

	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/ogura-an")
	}

	v.SetDefault("openai.model", "gpt-4o-mini")
	v.SetDefault("openai.base_url", "https://api.openai.com/v1")
	v.SetDefault("openai.timeout", 60*time.Second)
	v.SetDefault("notion.base_url", "https://api.notion.com/v1")
	v.SetDefault("notion.version", "2022-06-28")
	v.SetDefault("notion.timeout", 30*time.Second)
	v.SetDefault("log.directory", "")
	v.SetDefault("server.address", "127.0.0.1:8080")
	v.SetDefault("server.allowed_origin", "")

	if err := loadDotEnv(v, DotEnvFile); err != nil {
		return nil, err
	}

	// API keys are bound to environment variables so they never need to live in the config file
	for _, binding := range envBindings {
		args := append([]string{binding.key}, binding.envs...)
		if err := v.BindEnv(args...); err != nil {
			return nil, fmt.Errorf("failed to bind %v environment variable: %w", binding.envs, err)
		}
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

func loadDotEnv(v *viper.Viper, path string) error {
	if _, err := os.Stat(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("os.Stat(%s) > %w", path, err)
	}

	dotenv := viper.New()
	dotenv.SetConfigFile(path)
	dotenv.SetConfigType("env")
	if err := dotenv.ReadInConfig(); err != nil {
		return fmt.Errorf("%s found but could not be read: %w", path, err)
	}

	for _, binding := range envBindings {
		for _, env := range binding.envs {
			if value := dotenv.GetString(env); value != "" {
				v.SetDefault(binding.key, value)
				break
			}
		}
	}
	return nil
}
