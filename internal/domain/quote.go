// Package domain contains core business entities and rules.
package domain

import (
	"strings"
	"time"
)

// Quote represents a quotation fetched from the remote quote source.
// Quotes are immutable once fetched and are never mutated locally.
type Quote struct {
	// ID is the identifier assigned by the quote source, if any.
	ID string

	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// Tags are categories or themes associated with the quote.
	Tags []string
}

// Key returns the uniqueness key for this quote.
func (q *Quote) Key() FavoriteKey {
	return NewFavoriteKey(q.Content, q.Author)
}

// SavedQuote is a Quote persisted to the local favorites store by explicit
// user action. It is created on save, never updated, and owned exclusively
// by the store.
type SavedQuote struct {
	// Content is the text of the quote.
	Content string

	// Author is who said or wrote the quote.
	Author string

	// SourceID is the identifier from the quote source, if known.
	// Informational only; it does not participate in the uniqueness key.
	SourceID string

	// SavedAt is when the quote was saved.
	SavedAt time.Time
}

// Key returns the uniqueness key for this saved quote.
func (s *SavedQuote) Key() FavoriteKey {
	return NewFavoriteKey(s.Content, s.Author)
}

// FavoriteKey is the uniqueness key that prevents duplicate saves.
//
// The key is the (content, author) pair rather than the source-provided ID:
// the favorites file must remain consistent if the quote source is swapped,
// and the source makes no stability guarantee for its IDs.
type FavoriteKey string

// NewFavoriteKey builds a FavoriteKey from quote content and author.
// Content and author are trimmed and the author compared case-insensitively,
// so cosmetic whitespace or casing differences do not create duplicates.
func NewFavoriteKey(content, author string) FavoriteKey {
	return FavoriteKey(strings.TrimSpace(content) + "\n" + strings.ToLower(strings.TrimSpace(author)))
}

// SearchResult is an ordered page of quotes plus pagination metadata.
type SearchResult struct {
	// Quotes are the quotes for the requested page, in source order.
	Quotes []Quote

	// TotalCount is the number of quotes matching the search across all pages.
	TotalCount int

	// Page is the 1-based page number this result represents.
	Page int

	// TotalPages is the number of pages available for this search.
	TotalPages int
}

// QuoteBatch is a raw batch of quotes from the quote source together with
// the source's own total-count metadata, before any local filtering.
type QuoteBatch struct {
	// Quotes are the fetched quotes in source order.
	Quotes []Quote

	// TotalCount is the source-reported total for the underlying query.
	TotalCount int
}
