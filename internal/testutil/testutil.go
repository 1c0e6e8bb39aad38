// Package testutil provides shared test helpers for config files and fake upstream services.
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	OpenAIAPIKey     = "sk-test"
	NotionSecretKey  = "secret_test"
	NotionDatabaseID = "a8aec43384f447ed84390e8e42c2e089"
)

// ConfigOption configures optional fields of the generated config file.
type ConfigOption func(*configFixture)

type configFixture struct {
	openAIBaseURL string
	notionBaseURL string
	logDirectory  string
}

// WithOpenAIBaseURL points the config at a fake OpenAI server.
func WithOpenAIBaseURL(url string) ConfigOption {
	return func(cfg *configFixture) {
		cfg.openAIBaseURL = url
	}
}

// WithNotionBaseURL points the config at a fake Notion server.
func WithNotionBaseURL(url string) ConfigOption {
	return func(cfg *configFixture) {
		cfg.notionBaseURL = url
	}
}

// SetupTestConfig writes a config file with fake credentials under tmpDir and returns its path.
// The error log goes to tmpDir/logs.
func SetupTestConfig(t *testing.T, tmpDir string, opts ...ConfigOption) string {
	t.Helper()

	cfg := configFixture{
		openAIBaseURL: "https://api.openai.com/v1",
		notionBaseURL: "https://api.notion.com/v1",
		logDirectory:  filepath.Join(tmpDir, "logs"),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	configContent := fmt.Sprintf(`openai:
  api_key: %s
  model: gpt-4o-mini
  base_url: %s
  timeout: 5s
notion:
  secret_key: %s
  database_id: %s
  base_url: %s
  timeout: 5s
log:
  directory: %s
server:
  address: 127.0.0.1:18080
`,
		OpenAIAPIKey,
		cfg.openAIBaseURL,
		NotionSecretKey,
		NotionDatabaseID,
		cfg.notionBaseURL,
		cfg.logDirectory,
	)

	cfgPath := filepath.Join(tmpDir, "config.yml")
	require.NoError(t, os.WriteFile(cfgPath, []byte(configContent), 0644))
	return cfgPath
}

// ChatCompletionHandler answers every request with a single choice whose content is content.
func ChatCompletionHandler(t *testing.T, content string) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, err := json.Marshal(map[string]any{
			"id":      "chatcmpl-test",
			"object":  "chat.completion",
			"created": 1677652288,
			"model":   "gpt-4o-mini",
			"choices": []map[string]any{
				{
					"index": 0,
					"message": map[string]any{
						"role":    "assistant",
						"content": content,
					},
					"finish_reason": "stop",
				},
			},
		})
		require.NoError(t, err)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	})
}

// NotionPageHandler answers every request with a created page and sends each request body
// to requests when it is not nil.
func NotionPageHandler(t *testing.T, pageID string, requests chan<- []byte) http.Handler {
	t.Helper()
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var body json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		if requests != nil {
			requests <- body
		}

		w.Header().Set("Content-Type", "application/json")
		_, _ = fmt.Fprintf(w, `{"object":"page","id":%q,"url":"https://www.notion.so/%s"}`, pageID, pageID)
	})
}
