package notion

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/at-ishikawa/ogura-an/internal/apperror"
	"github.com/at-ishikawa/ogura-an/internal/meaning"
	"github.com/at-ishikawa/ogura-an/internal/timestamp"
	"github.com/go-resty/resty/v2"
)

const (
	serviceName    = "notion"
	DefaultBaseURL = "https://api.notion.com/v1"
	DefaultVersion = "2022-06-28"
)

// Client creates pages in a single database. Every call creates a new page; there is no
// idempotency key, so registering the same result twice produces two pages.
type Client struct {
	httpClient *resty.Client
	databaseID string
	timestamps *timestamp.Normalizer
}

type Option func(*Client)

func WithBaseURL(baseURL string) Option {
	return func(c *Client) {
		c.httpClient.SetBaseURL(baseURL)
	}
}

// WithTimeout bounds each request. Without it the transport default applies.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.SetTimeout(timeout)
	}
}

// WithVersion overrides the Notion-Version header.
func WithVersion(version string) Option {
	return func(c *Client) {
		c.httpClient.SetHeader("Notion-Version", version)
	}
}

// WithTimestamps replaces the CreatedAt source.
func WithTimestamps(normalizer *timestamp.Normalizer) Option {
	return func(c *Client) {
		c.timestamps = normalizer
	}
}

func NewClient(secretKey, databaseID string, opts ...Option) *Client {
	httpClient := resty.New()
	httpClient.SetBaseURL(DefaultBaseURL)
	httpClient.SetHeader("Authorization", "Bearer "+secretKey)
	httpClient.SetHeader("Content-Type", "application/json")
	httpClient.SetHeader("Notion-Version", DefaultVersion)

	client := &Client{
		httpClient: httpClient,
		databaseID: databaseID,
		timestamps: timestamp.NewNormalizer(),
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

// CreatePage registers result as a new page. CreatedAt is taken when this is called.
func (c *Client) CreatePage(ctx context.Context, result meaning.Result) (Page, error) {
	if err := result.Validate(); err != nil {
		return Page{}, err
	}

	requestBody := BuildCreatePageRequest(c.databaseID, result, c.timestamps.Now())

	res, err := c.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetError(&APIError{}).
		Post("/pages")
	if err != nil {
		slog.Default().Error("Notion request failed",
			"word", result.Word,
			"error", err)
		return Page{}, apperror.NewUpstreamTransportError(serviceName, fmt.Errorf("client.R.Post > %w", err))
	}
	if !res.IsSuccess() {
		attrs := []any{
			"word", result.Word,
			"status", res.StatusCode(),
		}
		if apiErr, ok := res.Error().(*APIError); ok && apiErr != nil {
			attrs = append(attrs, "code", apiErr.Code, "message", apiErr.Message)
		}
		slog.Default().Error("Notion returned an error status", attrs...)
		return Page{}, apperror.NewUpstreamStatusError(serviceName, res.StatusCode(), string(res.Body()))
	}

	var page Page
	if err := json.Unmarshal(res.Body(), &page); err != nil {
		slog.Default().Error("Notion returned an undecodable page",
			"word", result.Word,
			"status", res.StatusCode(),
			"error", err)
		return Page{}, apperror.NewUpstreamStatusError(serviceName, res.StatusCode(),
			fmt.Sprintf("invalid page body: %v: %s", err, string(res.Body())))
	}
	page.Raw = json.RawMessage(res.Body())

	slog.Default().Debug("notion page created",
		"word", result.Word,
		"page_id", page.ID,
		"created_at", requestBody.Properties.CreatedAt.Date.Start,
	)
	return page, nil
}
