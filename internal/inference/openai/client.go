package openai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/at-ishikawa/ogura-an/internal/apperror"
	"github.com/at-ishikawa/ogura-an/internal/inference"
	"resty.dev/v3"
)

const (
	serviceName    = "openai"
	DefaultBaseURL = "https://api.openai.com/v1"
)

type Client struct {
	httpClient *resty.Client
	model      string
}

var _ inference.Client = (*Client)(nil)

type Option func(*resty.Client)

// WithBaseURL points the client at another OpenAI compatible endpoint.
func WithBaseURL(baseURL string) Option {
	return func(c *resty.Client) {
		c.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds each request. Without it the transport default applies.
func WithTimeout(timeout time.Duration) Option {
	return func(c *resty.Client) {
		c.SetTimeout(timeout)
	}
}

func NewClient(apiKey, model string, opts ...Option) *Client {
	client := resty.New()
	client.SetBaseURL(DefaultBaseURL)
	client.SetHeader("Authorization", "Bearer "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetResponseBodyUnlimitedReads(true)
	for _, opt := range opts {
		opt(client)
	}

	return &Client{
		httpClient: client,
		model:      model,
	}
}

func (client Client) Close() error {
	return client.httpClient.Close()
}

type ChatCompletionRequest struct {
	Model    string    `json:"model"`
	Messages []Message `json:"messages"`
}

type Message struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Role string

const (
	RoleSystem Role = "system"
	RoleUser   Role = "user"
)

type ChatCompletionResponse struct {
	ID      string   `json:"id"`
	Object  string   `json:"object"`
	Created int64    `json:"created"`
	Model   string   `json:"model"`
	Choices []Choice `json:"choices"`
	Usage   Usage    `json:"usage"`
}

type Choice struct {
	Index        int           `json:"index"`
	Message      ChoiceMessage `json:"message"`
	FinishReason string        `json:"finish_reason"`
}

type ChoiceMessage struct {
	Role    Role   `json:"role"`
	Content string `json:"content"`
}

type Usage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// LookupMeaning implements the inference.Client interface
func (client *Client) LookupMeaning(
	ctx context.Context,
	params inference.LookupRequest,
) (string, error) {
	requestBody := client.getRequestBody(params)

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&ChatCompletionResponse{}).
		Post("/chat/completions")
	if err != nil {
		slog.Default().Error("OpenAI request failed",
			"word", params.Word,
			"error", err)
		return "", apperror.NewUpstreamTransportError(serviceName, fmt.Errorf("httpClient.Post > %w", err))
	}
	if !response.IsSuccess() {
		slog.Default().Error("OpenAI returned an error status",
			"word", params.Word,
			"status", response.StatusCode(),
			"body", response.String())
		return "", apperror.NewUpstreamStatusError(serviceName, response.StatusCode(), response.String())
	}

	responseBody, ok := response.Result().(*ChatCompletionResponse)
	if !ok || responseBody == nil || len(responseBody.Choices) == 0 {
		slog.Default().Error("OpenAI response has no choices",
			"word", params.Word,
			"body", response.String())
		return "", apperror.NewUpstreamStatusError(serviceName, response.StatusCode(),
			fmt.Sprintf("empty response body or choices: %s", response.String()))
	}

	content := responseBody.Choices[0].Message.Content
	if strings.TrimSpace(content) == "" {
		slog.Default().Error("OpenAI response has empty content",
			"word", params.Word,
			"body", response.String())
		return "", apperror.NewUpstreamStatusError(serviceName, response.StatusCode(),
			fmt.Sprintf("empty content: %s", response.String()))
	}
	slog.Default().Debug("openai response content",
		"request", requestBody,
		"model", responseBody.Model,
		"usage", responseBody.Usage,
		"content", content,
	)
	return content, nil
}
