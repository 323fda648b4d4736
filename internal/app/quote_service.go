// Package app contains application services that orchestrate use cases.
// This is the application layer: it coordinates domain logic and
// infrastructure through ports and handles cross-cutting concerns such as
// logging. HTTP specifics live in adapters, persistence in the store adapter.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
	"github.com/Jaimeman84/daily-quotes-app/internal/platform/logging"
	"github.com/Jaimeman84/daily-quotes-app/internal/ports"
)

const (
	// defaultSourcePageSize is the per-page size requested from the source.
	defaultSourcePageSize = 50

	// defaultMaxSourcePages caps how many source pages one search fetches.
	defaultMaxSourcePages = 5

	// defaultResultPageSize is the local page size for filtered results.
	defaultResultPageSize = 10
)

// QuoteService orchestrates quote use cases against the remote source.
// Every operation is one synchronous user action; failures surface as
// domain errors for the presentation layer to render.
type QuoteService struct {
	client ports.QuoteClient
	logger *slog.Logger

	sourcePageSize int
	maxSourcePages int
	resultPageSize int
}

// QuoteServiceConfig holds optional configuration for QuoteService.
type QuoteServiceConfig struct {
	Logger *slog.Logger

	// SourcePageSize is the per-page size requested from the source.
	SourcePageSize int

	// MaxSourcePages caps how many source pages one search fetches.
	MaxSourcePages int

	// ResultPageSize is the page size of the locally filtered result list.
	ResultPageSize int
}

// NewQuoteService creates a quote service with the given source client.
func NewQuoteService(client ports.QuoteClient, cfg *QuoteServiceConfig) *QuoteService {
	logger := slog.Default()
	sourcePageSize := defaultSourcePageSize
	maxSourcePages := defaultMaxSourcePages
	resultPageSize := defaultResultPageSize

	if cfg != nil {
		if cfg.Logger != nil {
			logger = cfg.Logger
		}
		if cfg.SourcePageSize > 0 {
			sourcePageSize = cfg.SourcePageSize
		}
		if cfg.MaxSourcePages > 0 {
			maxSourcePages = cfg.MaxSourcePages
		}
		if cfg.ResultPageSize > 0 {
			resultPageSize = cfg.ResultPageSize
		}
	}

	return &QuoteService{
		client:         client,
		logger:         logger.With(slog.String("component", "app.QuoteService")),
		sourcePageSize: sourcePageSize,
		maxSourcePages: maxSourcePages,
		resultPageSize: resultPageSize,
	}
}

// Random fetches one random quote from the source.
func (s *QuoteService) Random(ctx context.Context) (*domain.Quote, error) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	quote, err := s.client.GetRandomQuote(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching random quote: %w", err)
	}

	logger.DebugContext(ctx, "random quote fetched", slog.String("author", quote.Author))

	return quote, nil
}

// SearchParams describes one search action from the user.
type SearchParams struct {
	// Term filters quote content, matched case-insensitively. Optional.
	Term string

	// Author restricts results to one author, filtered at the source. Optional.
	Author string

	// Page is the 1-based result page; values below 1 read as 1.
	Page int

	// PageSize overrides the default result page size when positive.
	PageSize int
}

// Search runs a quote search and returns one page of matching quotes.
//
// The source only filters by author, so the service pulls result pages from
// the source (up to a fixed cap), applies the content term locally with
// case-insensitive matching, and paginates the filtered list. An empty result
// set is a normal outcome, not an error.
func (s *QuoteService) Search(ctx context.Context, params SearchParams) (*domain.SearchResult, error) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	term := strings.TrimSpace(params.Term)
	author := strings.TrimSpace(params.Author)

	if term == "" && author == "" {
		return nil, domain.NewValidationError("q", "provide a search term or an author")
	}

	page := params.Page
	if page < 1 {
		page = 1
	}

	pageSize := s.resultPageSize
	if params.PageSize > 0 {
		pageSize = params.PageSize
	}

	fetched, err := s.fetchSearchPages(ctx, author)
	if err != nil {
		return nil, err
	}

	matched := filterByTerm(fetched, term)

	totalPages := (len(matched) + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}
	if page > totalPages {
		page = totalPages
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(matched) {
		end = len(matched)
	}

	logger.InfoContext(ctx, "search completed",
		slog.String("term", term),
		slog.String("author", author),
		slog.Int("fetched", len(fetched)),
		slog.Int("matched", len(matched)),
		slog.Int("page", page),
	)

	return &domain.SearchResult{
		Quotes:     matched[start:end],
		TotalCount: len(matched),
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// Authors returns the author names known to the source.
func (s *QuoteService) Authors(ctx context.Context) ([]string, error) {
	authors, err := s.client.ListAuthors(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing authors: %w", err)
	}

	return authors, nil
}

// fetchSearchPages pulls source pages sequentially until the source is
// exhausted or the page cap is reached. Pages are fetched one at a time;
// the cap bounds how much of a large corpus one search action can pull.
func (s *QuoteService) fetchSearchPages(ctx context.Context, author string) ([]domain.Quote, error) {
	var fetched []domain.Quote

	for page := 1; page <= s.maxSourcePages; page++ {
		batch, err := s.client.SearchQuotes(ctx, ports.SearchQuery{
			Author: author,
			Limit:  s.sourcePageSize,
			Page:   page,
		})
		if err != nil {
			return nil, fmt.Errorf("searching quotes: %w", err)
		}

		fetched = append(fetched, batch.Quotes...)

		if len(batch.Quotes) == 0 || len(fetched) >= batch.TotalCount {
			break
		}
	}

	return fetched, nil
}

// filterByTerm keeps quotes whose content contains term, case-insensitively.
// An empty term keeps everything.
func filterByTerm(quotes []domain.Quote, term string) []domain.Quote {
	if term == "" {
		return quotes
	}

	needle := strings.ToLower(term)
	matched := make([]domain.Quote, 0, len(quotes))

	for _, q := range quotes {
		if strings.Contains(strings.ToLower(q.Content), needle) {
			matched = append(matched, q)
		}
	}

	return matched
}
