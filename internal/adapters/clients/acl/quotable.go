// Package acl implements the Anti-Corruption Layer pattern for the quote
// source. It translates quotable.io API responses to domain models,
// protecting the domain from external API changes.
package acl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/Jaimeman84/daily-quotes-app/internal/adapters/clients"
	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/logging"
	"github.com/Jaimeman84/daily-quotes-app/internal/ports"
)

// authorsPageSize is how many author names one listing request asks for.
// The search form shows a flat dropdown; one page is plenty.
const authorsPageSize = 150

// QuotableClientConfig contains configuration for the quotable client.
type QuotableClientConfig struct {
	// Client is the HTTP client to use for requests.
	// The client's BaseURL should be set to the quotable API endpoint.
	Client *clients.Client

	// ServiceName is the downstream name used in error and health reporting.
	ServiceName string

	// Logger is the structured logger.
	Logger *slog.Logger
}

// QuotableClient implements ports.QuoteClient using the quotable.io API.
type QuotableClient struct {
	client      *clients.Client
	serviceName string
	logger      *slog.Logger
}

// compile-time interface check
var _ ports.QuoteClient = (*QuotableClient)(nil)

// NewQuotableClient creates a new quotable client adapter.
// Panics if Client is nil. Defaults logger to slog.Default() if nil.
func NewQuotableClient(cfg QuotableClientConfig) *QuotableClient {
	if cfg.Client == nil {
		panic("QuotableClient: Client is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	serviceName := cfg.ServiceName
	if serviceName == "" {
		serviceName = "quote-source"
	}

	return &QuotableClient{
		client:      cfg.Client,
		serviceName: serviceName,
		logger:      logger,
	}
}

// quotableQuote is the external quote DTO from the quotable.io API.
// This is an internal type - never exposed outside the ACL.
type quotableQuote struct {
	ID      string   `json:"_id"`
	Content string   `json:"content"`
	Author  string   `json:"author"`
	Tags    []string `json:"tags"`
}

// quotableList is the external list envelope for /quotes.
type quotableList struct {
	Count      int             `json:"count"`
	TotalCount int             `json:"totalCount"`
	Page       int             `json:"page"`
	TotalPages int             `json:"totalPages"`
	Results    []quotableQuote `json:"results"`
}

// quotableAuthors is the external list envelope for /authors.
type quotableAuthors struct {
	Results []struct {
		Name string `json:"name"`
	} `json:"results"`
}

// GetRandomQuote fetches a random quote from the quote source.
// Implements ports.QuoteClient.
func (c *QuotableClient) GetRandomQuote(ctx context.Context) (*domain.Quote, error) {
	const path = "/random"
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(c.serviceName, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var external quotableQuote
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, domain.NewBadResponseError(c.serviceName, fmt.Sprintf("decoding quote: %v", err))
	}

	quote := translateQuote(&external)
	if quote.Content == "" {
		return nil, domain.NewBadResponseError(c.serviceName, "quote has no content")
	}

	c.logger.DebugContext(ctx, "fetched random quote",
		slog.String("quote_id", quote.ID),
		slog.String("author", quote.Author))

	return quote, nil
}

// SearchQuotes fetches one source page of quotes, optionally filtered by
// author. Content filtering is the application layer's concern.
// Implements ports.QuoteClient.
func (c *QuotableClient) SearchQuotes(ctx context.Context, query ports.SearchQuery) (*domain.QuoteBatch, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(query.Limit))
	params.Set("page", strconv.Itoa(query.Page))
	if query.Author != "" {
		params.Set("author", query.Author)
	}

	path := "/quotes?" + params.Encode()
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(c.serviceName, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	c.logger.Log(ctx, logging.LevelTrace, "request complete",
		slog.String("path", path),
		slog.Int("status", resp.StatusCode))

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var external quotableList
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, domain.NewBadResponseError(c.serviceName, fmt.Sprintf("decoding quote list: %v", err))
	}

	quotes := make([]domain.Quote, 0, len(external.Results))
	for i := range external.Results {
		quotes = append(quotes, *translateQuote(&external.Results[i]))
	}

	c.logger.DebugContext(ctx, "fetched quote page",
		slog.Int("page", query.Page),
		slog.Int("count", len(quotes)),
		slog.Int("total", external.TotalCount))

	return &domain.QuoteBatch{
		Quotes:     quotes,
		TotalCount: external.TotalCount,
	}, nil
}

// ListAuthors fetches author names for the search filter.
// Implements ports.QuoteClient.
func (c *QuotableClient) ListAuthors(ctx context.Context) ([]string, error) {
	params := url.Values{}
	params.Set("limit", strconv.Itoa(authorsPageSize))
	params.Set("sortBy", "name")

	path := "/authors?" + params.Encode()
	c.logger.Log(ctx, logging.LevelTrace, "starting request", slog.String("path", path))

	resp, err := c.client.Get(ctx, path)
	if err != nil {
		return nil, domain.NewUnavailableError(c.serviceName, err.Error())
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, c.handleErrorResponse(resp)
	}

	var external quotableAuthors
	if err := json.NewDecoder(resp.Body).Decode(&external); err != nil {
		return nil, domain.NewBadResponseError(c.serviceName, fmt.Sprintf("decoding authors: %v", err))
	}

	names := make([]string, 0, len(external.Results))
	for _, a := range external.Results {
		if a.Name != "" {
			names = append(names, a.Name)
		}
	}

	return names, nil
}

// translateQuote converts the external API DTO to a domain Quote.
// This isolates the domain from external API changes.
func translateQuote(ext *quotableQuote) *domain.Quote {
	return &domain.Quote{
		ID:      ext.ID,
		Content: ext.Content,
		Author:  ext.Author,
		Tags:    ext.Tags,
	}
}

// handleErrorResponse converts HTTP error responses to domain errors.
func (c *QuotableClient) handleErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	c.logger.Warn("quote API error",
		slog.Int("status_code", resp.StatusCode),
		slog.String("body", string(body)),
	)

	switch resp.StatusCode {
	case http.StatusNotFound:
		return domain.ErrNotFound
	case http.StatusServiceUnavailable, http.StatusBadGateway, http.StatusGatewayTimeout:
		return domain.NewUnavailableError(c.serviceName, fmt.Sprintf("HTTP %d", resp.StatusCode))
	default:
		return domain.NewUnavailableError(c.serviceName, fmt.Sprintf("unexpected HTTP %d", resp.StatusCode))
	}
}

// Name returns the health check name for this client.
// Implements ports.HealthChecker.
func (c *QuotableClient) Name() string {
	return c.serviceName
}

// Check performs a health check by fetching one random quote.
// Implements ports.HealthChecker.
func (c *QuotableClient) Check(ctx context.Context) error {
	resp, err := c.client.Get(ctx, "/random")
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("quote API returned status %d", resp.StatusCode)
	}

	return nil
}
