package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testDatabaseID = "a8aec43384f447ed84390e8e42c2e089"

// clearEnv hides any keys set in the developer's shell.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, binding := range envBindings {
		for _, env := range binding.envs {
			t.Setenv(env, "")
		}
	}
}

func defaultConfig() *Config {
	return &Config{
		OpenAI: OpenAIConfig{
			Model:   "gpt-4o-mini",
			BaseURL: "https://api.openai.com/v1",
			Timeout: 60 * time.Second,
		},
		Notion: NotionConfig{
			BaseURL: "https://api.notion.com/v1",
			Version: "2022-06-28",
			Timeout: 30 * time.Second,
		},
		Server: ServerConfig{
			Address: "127.0.0.1:8080",
		},
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name              string
		configContent     string
		dotEnvContent     string
		env               map[string]string
		useExplicitPath   bool
		wantErr           bool
		want              func() *Config
		wantErrorContains []string
	}{
		{
			name: "valid config file with custom values",
			configContent: `openai:
  model: gpt-4o
  timeout: 10s
notion:
  database_id: ` + testDatabaseID + `
  version: "2025-09-03"
log:
  directory: custom/logs
server:
  address: 127.0.0.1:9090
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.OpenAI.Model = "gpt-4o"
				cfg.OpenAI.Timeout = 10 * time.Second
				cfg.Notion.DatabaseID = testDatabaseID
				cfg.Notion.Version = "2025-09-03"
				cfg.Log.Directory = "custom/logs"
				cfg.Server.Address = "127.0.0.1:9090"
				return cfg
			},
		},
		{
			name: "invalid YAML format",
			configContent: `openai:
  model: gpt-4o
  invalid yaml format here [[[
`,
			wantErr: true,
			wantErrorContains: []string{
				"configuration file found but could not be read",
				"Please check the file format and permissions",
			},
		},
		{
			name: "no config file uses defaults",
			want: defaultConfig,
		},
		{
			name: "environment variables override the config file",
			configContent: `openai:
  api_key: from-file
  model: from-file
`,
			env: map[string]string{
				"OPENAI_API_KEY":     "sk-env",
				"OPENAI_API_MODEL":   "gpt-env",
				"NOTION_SECRET_KEY":  "secret_env",
				"NOTION_DATABASE_ID": testDatabaseID,
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.OpenAI.APIKey = "sk-env"
				cfg.OpenAI.Model = "gpt-env"
				cfg.Notion.SecretKey = "secret_env"
				cfg.Notion.DatabaseID = testDatabaseID
				return cfg
			},
		},
		{
			name: "OPENAI_MODEL is accepted as an alias",
			env: map[string]string{
				"OPENAI_MODEL": "gpt-alias",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.OpenAI.Model = "gpt-alias"
				return cfg
			},
		},
		{
			name: ".env file fills keys",
			dotEnvContent: `OPENAI_API_KEY=sk-dotenv
OPENAI_API_MODEL=gpt-dotenv
NOTION_SECRET_KEY=secret_dotenv
NOTION_DATABASE_ID=` + testDatabaseID + `
`,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.OpenAI.APIKey = "sk-dotenv"
				cfg.OpenAI.Model = "gpt-dotenv"
				cfg.Notion.SecretKey = "secret_dotenv"
				cfg.Notion.DatabaseID = testDatabaseID
				return cfg
			},
		},
		{
			name:          "environment wins over .env",
			dotEnvContent: "OPENAI_API_KEY=sk-dotenv\n",
			env: map[string]string{
				"OPENAI_API_KEY": "sk-env",
			},
			want: func() *Config {
				cfg := defaultConfig()
				cfg.OpenAI.APIKey = "sk-env"
				return cfg
			},
		},
		{
			name: "explicit config file path",
			configContent: `notion:
  secret_key: explicit
`,
			useExplicitPath: true,
			want: func() *Config {
				cfg := defaultConfig()
				cfg.Notion.SecretKey = "explicit"
				return cfg
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			tempDir := t.TempDir()
			originalDir, err := os.Getwd()
			require.NoError(t, err)
			defer func() {
				err := os.Chdir(originalDir)
				require.NoError(t, err)
			}()
			require.NoError(t, os.Chdir(tempDir))

			if tt.dotEnvContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, DotEnvFile), []byte(tt.dotEnvContent), 0600))
			}

			var configPath string
			if tt.useExplicitPath {
				configPath = filepath.Join(tempDir, "ogura-an.yml")
				require.NoError(t, os.WriteFile(configPath, []byte(tt.configContent), 0644))
			} else if tt.configContent != "" {
				require.NoError(t, os.WriteFile(filepath.Join(tempDir, "config.yaml"), []byte(tt.configContent), 0644))
			}

			got, err := Load(configPath)

			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, got)
				for _, wantMsg := range tt.wantErrorContains {
					assert.Contains(t, err.Error(), wantMsg)
				}
				return
			}

			require.NoError(t, err)
			require.NotNil(t, got)
			assert.Equal(t, tt.want(), got)
		})
	}
}

func TestConfig_Validate(t *testing.T) {
	validConfig := func() *Config {
		cfg := defaultConfig()
		cfg.OpenAI.APIKey = "sk-test"
		cfg.Notion.SecretKey = "secret_test"
		cfg.Notion.DatabaseID = testDatabaseID
		return cfg
	}

	tests := []struct {
		name              string
		modify            func(cfg *Config)
		locale            string
		wantErrorContains []string
	}{
		{
			name:   "valid",
			modify: func(cfg *Config) {},
			locale: "en",
		},
		{
			name: "database ID with dashes",
			modify: func(cfg *Config) {
				cfg.Notion.DatabaseID = "a8aec433-84f4-47ed-8439-0e8e42c2e089"
			},
			locale: "en",
		},
		{
			name: "missing keys are reported together",
			modify: func(cfg *Config) {
				cfg.OpenAI.APIKey = ""
				cfg.Notion.SecretKey = ""
				cfg.Notion.DatabaseID = ""
			},
			locale: "en",
			wantErrorContains: []string{
				"openai.api_key is a required field",
				"notion.secret_key is a required field",
				"notion.database_id is a required field",
			},
		},
		{
			name: "malformed database ID",
			modify: func(cfg *Config) {
				cfg.Notion.DatabaseID = "not-a-database"
			},
			locale: "en",
			wantErrorContains: []string{
				"notion.database_id must be a 32 character Notion ID",
			},
		},
		{
			name: "japanese messages",
			modify: func(cfg *Config) {
				cfg.OpenAI.APIKey = ""
			},
			locale: "ja",
			wantErrorContains: []string{
				"openai.api_keyは必須フィールドです",
			},
		},
		{
			name: "unknown locale falls back to english",
			modify: func(cfg *Config) {
				cfg.Notion.SecretKey = ""
			},
			locale: "fr",
			wantErrorContains: []string{
				"notion.secret_key is a required field",
			},
		},
		{
			name: "non positive timeout",
			modify: func(cfg *Config) {
				cfg.OpenAI.Timeout = 0
			},
			locale: "en",
			wantErrorContains: []string{
				"invalid configuration",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.modify(cfg)

			err := cfg.Validate(tt.locale)
			if len(tt.wantErrorContains) == 0 {
				assert.NoError(t, err)
				return
			}

			require.Error(t, err)
			for _, wantMsg := range tt.wantErrorContains {
				assert.Contains(t, err.Error(), wantMsg)
			}
		})
	}
}
