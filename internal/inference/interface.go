package inference

import (
	"context"
)

//go:generate mockgen -source=interface.go -destination=../mocks/inference/mock_client.go -package=mock_inference

// Client interface defines the methods for AI inference operations
type Client interface {
	// LookupMeaning returns the model output verbatim. It is expected to be a JSON object
	// but is not parsed here.
	LookupMeaning(ctx context.Context, params LookupRequest) (string, error)
}

// LookupRequest is a word to explain, and optionally the sentence it was found in
type LookupRequest struct {
	Word    string `json:"word"`
	Context string `json:"context"`
}
