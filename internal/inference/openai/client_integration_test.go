// go build +integration
package openai_test

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/at-ishikawa/ogura-an/internal/inference"
	"github.com/at-ishikawa/ogura-an/internal/inference/openai"
	"github.com/at-ishikawa/ogura-an/internal/meaning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestClient_LookupMeaning_Evaluate checks that the real model answers with a record the parser accepts.
// This test requires OPENAI_API_KEY environment variable to be set
// Run with: OPENAI_API_KEY=your-key go test -v ./internal/inference/openai -run TestClient_LookupMeaning_Evaluate
func TestClient_LookupMeaning_Evaluate(t *testing.T) {
	t.Parallel()

	slog.SetDefault(
		slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level:     slog.LevelDebug,
			AddSource: true,
		})),
	)

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		t.Skip("OPENAI_API_KEY environment variable not set, skipping integration test")
	}

	model := os.Getenv("OPENAI_API_MODEL")
	if model == "" {
		model = "gpt-4o-mini"
	}

	tests := []struct {
		name    string
		request inference.LookupRequest
	}{
		{
			name:    "word with context",
			request: inference.LookupRequest{Word: "りんご", Context: "りんごを食べる"},
		},
		{
			name:    "word without context",
			request: inference.LookupRequest{Word: "GRIT"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			client := openai.NewClient(apiKey, model)
			defer func() {
				_ = client.Close()
			}()
			ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
			defer cancel()

			text, err := client.LookupMeaning(ctx, tc.request)
			require.NoError(t, err)
			t.Logf("Word: %s, Result: %s", tc.request.Word, text)

			result, err := meaning.Parse(text)
			require.NoError(t, err)
			assert.NotEmpty(t, result.Meaning)
			assert.LessOrEqual(t, len(result.Tags()), 3)
			if tc.request.Context != "" {
				assert.NotEqual(t, tc.request.Context, result.Usage)
			}
		})
	}
}
