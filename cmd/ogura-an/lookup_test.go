package main

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/at-ishikawa/ogura-an/internal/apperror"
	"github.com/at-ishikawa/ogura-an/internal/notion"
	"github.com/at-ishikawa/ogura-an/internal/testutil"
	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const appleResult = `{"word":"りんご","meaning":"バラ科の落葉高木の果実。","tag":"果物","usage":"朝食にりんごを一つ食べた。"}`

func clearEnv(t *testing.T) {
	t.Helper()
	for _, env := range []string{"OPENAI_API_KEY", "OPENAI_API_MODEL", "OPENAI_MODEL", "NOTION_SECRET_KEY", "NOTION_DATABASE_ID"} {
		t.Setenv(env, "")
	}
	color.NoColor = true
}

func setupFakeServices(t *testing.T) (configPath string, pages <-chan []byte) {
	t.Helper()
	clearEnv(t)

	openAIServer := httptest.NewServer(testutil.ChatCompletionHandler(t, appleResult))
	t.Cleanup(openAIServer.Close)

	requests := make(chan []byte, 4)
	notionServer := httptest.NewServer(testutil.NotionPageHandler(t, "p-1", requests))
	t.Cleanup(notionServer.Close)

	configPath = testutil.SetupTestConfig(t, t.TempDir(),
		testutil.WithOpenAIBaseURL(openAIServer.URL),
		testutil.WithNotionBaseURL(notionServer.URL),
	)
	return configPath, requests
}

func TestLookupCommand(t *testing.T) {
	tests := []struct {
		name         string
		stdin        string
		extraArgs    []string
		wantRegister bool
	}{
		{
			name:         "register flag skips the confirmation",
			extraArgs:    []string{"--register"},
			wantRegister: true,
		},
		{
			name:         "confirmed",
			stdin:        "y\n",
			wantRegister: true,
		},
		{
			name:         "declined",
			stdin:        "n\n",
			wantRegister: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			configPath, pages := setupFakeServices(t)

			args := append([]string{"--config", configPath, "lookup", "りんご", "--context", "りんごを食べる"}, tt.extraArgs...)
			got, err := executeCommand(t, tt.stdin, args...)
			require.NoError(t, err)
			assert.Contains(t, got, appleResult)

			if !tt.wantRegister {
				assert.Empty(t, pages)
				assert.NotContains(t, got, "Notionに登録しました")
				return
			}
			assert.Contains(t, got, "Notionに登録しました")
			require.Len(t, pages, 1)

			var created notion.CreatePageRequest
			require.NoError(t, json.Unmarshal(<-pages, &created))
			assert.Equal(t, "りんご", created.Properties.Word.Title[0].Text.Content)
			assert.True(t, strings.HasSuffix(created.Properties.CreatedAt.Date.Start, "+09:00"))
		})
	}
}

func TestLookupCommand_English(t *testing.T) {
	configPath, _ := setupFakeServices(t)

	got, err := executeCommand(t, "", "--config", configPath, "--lang", "en", "lookup", "りんご")
	require.NoError(t, err)
	assert.Contains(t, got, "Register to Notion? [y/N]: ")
}

func TestLookupCommand_InvalidConfig(t *testing.T) {
	clearEnv(t)
	configPath := filepath.Join(t.TempDir(), "config.yml")
	require.NoError(t, os.WriteFile(configPath, []byte("openai:\n  api_key: sk-test\n"), 0o644))

	_, err := executeCommand(t, "", "--config", configPath, "lookup", "りんご")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid configuration")
	assert.Contains(t, err.Error(), "notion.secret_key")
}

func TestLookupCommand_UpstreamFailure(t *testing.T) {
	failing := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":{"message":"Internal server error"}}`))
	})

	tests := []struct {
		name         string
		failOpenAI   bool
		wantContains string
		wantLogKind  string
	}{
		{
			name:         "OpenAI fails",
			failOpenAI:   true,
			wantContains: "エラーが発生しました",
			wantLogKind:  "] fetch-word-meaning: ",
		},
		{
			name:         "Notion fails",
			wantContains: "Notionへの登録に失敗しました",
			wantLogKind:  "] register-record: ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			var openAIHandler http.Handler = testutil.ChatCompletionHandler(t, appleResult)
			notionHandler := http.Handler(failing)
			if tt.failOpenAI {
				openAIHandler = failing
				notionHandler = testutil.NotionPageHandler(t, "p-1", nil)
			}
			openAIServer := httptest.NewServer(openAIHandler)
			t.Cleanup(openAIServer.Close)
			notionServer := httptest.NewServer(notionHandler)
			t.Cleanup(notionServer.Close)

			configPath := testutil.SetupTestConfig(t, t.TempDir(),
				testutil.WithOpenAIBaseURL(openAIServer.URL),
				testutil.WithNotionBaseURL(notionServer.URL),
			)

			got, err := executeCommand(t, "", "--config", configPath, "lookup", "りんご", "--register")
			require.Error(t, err)
			assert.ErrorIs(t, err, apperror.ErrUpstreamRequest)
			assert.Contains(t, got, tt.wantContains)
			assert.NotContains(t, got, "Notionに登録しました")

			content, err := os.ReadFile(filepath.Join(filepath.Dir(configPath), "logs", "error.log"))
			require.NoError(t, err)
			assert.Contains(t, string(content), tt.wantLogKind)
		})
	}
}

func TestRegisterCommand(t *testing.T) {
	configPath, pages := setupFakeServices(t)

	got, err := executeCommand(t, appleResult, "--config", configPath, "register")
	require.NoError(t, err)
	assert.Contains(t, got, "Notionに登録しました")
	assert.Contains(t, got, "https://www.notion.so/p-1")
	assert.Len(t, pages, 1)
}

func TestRegisterCommand_Malformed(t *testing.T) {
	configPath, pages := setupFakeServices(t)

	got, err := executeCommand(t, `{"meaning":"x"}`, "--config", configPath, "register", "-")
	require.Error(t, err)
	assert.ErrorIs(t, err, apperror.ErrMalformedResult)
	assert.Contains(t, got, "Notionへの登録に失敗しました")
	assert.Empty(t, pages)

	content, err := os.ReadFile(filepath.Join(filepath.Dir(configPath), "logs", "error.log"))
	require.NoError(t, err)
	assert.Contains(t, string(content), "] register-record: malformed result: word is missing")
}

func TestInteractiveCommand(t *testing.T) {
	configPath, pages := setupFakeServices(t)

	got, err := executeCommand(t, "りんご\nりんごを食べる\ny\nexit\n", "--config", configPath, "interactive")
	require.NoError(t, err)
	assert.Contains(t, got, "ワード: ")
	assert.Contains(t, got, appleResult)
	assert.Contains(t, got, "終了します")
	assert.Len(t, pages, 1)
}
