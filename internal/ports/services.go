// Package ports defines interfaces for external dependencies.
// Ports are contracts that adapters implement, allowing the application layer
// to depend on abstractions rather than concrete implementations.
//
// Port Design Principles:
//   - Context as first parameter (always) for cancellation and deadlines
//   - Return domain types, never external DTOs or infrastructure types
//   - Error returns use domain error types (ErrUnavailable, ErrStorage, etc.)
//   - Keep interfaces small and focused
package ports

import (
	"context"

	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
)

// QuoteClient is the contract for the remote quote source.
// Each call is a single synchronous request/response: no retries,
// no caching, no rate limiting.
type QuoteClient interface {
	// GetRandomQuote fetches one random quote.
	// Returns domain.ErrUnavailable if the source is unreachable or times out,
	// domain.ErrBadResponse if the response cannot be mapped to a Quote.
	GetRandomQuote(ctx context.Context) (*domain.Quote, error)

	// SearchQuotes fetches quotes matching the query from the source,
	// together with the source's total-count metadata. Content filtering
	// happens in the application layer; the source only filters by author.
	// An empty result is a normal response, not an error.
	SearchQuotes(ctx context.Context, query SearchQuery) (*domain.QuoteBatch, error)

	// ListAuthors fetches the author names known to the source,
	// used to populate the search filter.
	ListAuthors(ctx context.Context) ([]string, error)
}

// SearchQuery describes a quote search against the source.
type SearchQuery struct {
	// Author restricts results to a single author when non-empty.
	Author string

	// Limit is the per-page size requested from the source.
	Limit int

	// Page is the 1-based source page to fetch.
	Page int
}

// FavoritesStore is the capability interface over the local favorites store.
// The flat-file implementation can be swapped for an embedded store without
// touching the presentation layer.
type FavoritesStore interface {
	// ListSaved returns all saved quotes in insertion order.
	// Returns domain.ErrStorage if the store cannot be read.
	ListSaved(ctx context.Context) ([]domain.SavedQuote, error)

	// Save appends the quote unless one with the same uniqueness key exists.
	// Returns domain.ErrConflict when the quote is already saved and
	// domain.ErrStorage when the store cannot be written.
	Save(ctx context.Context, quote *domain.Quote) error
}
