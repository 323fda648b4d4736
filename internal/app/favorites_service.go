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

// FavoritesService orchestrates saving and listing favorite quotes.
type FavoritesService struct {
	store  ports.FavoritesStore
	logger *slog.Logger
}

// FavoritesServiceConfig holds optional configuration for FavoritesService.
type FavoritesServiceConfig struct {
	Logger *slog.Logger
}

// NewFavoritesService creates a favorites service over the given store.
func NewFavoritesService(store ports.FavoritesStore, cfg *FavoritesServiceConfig) *FavoritesService {
	logger := slog.Default()
	if cfg != nil && cfg.Logger != nil {
		logger = cfg.Logger
	}

	return &FavoritesService{
		store:  store,
		logger: logger.With(slog.String("component", "app.FavoritesService")),
	}
}

// Save persists a quote to the favorites store.
//
// Saving a quote that is already stored is a no-op reported through the
// returned alreadySaved flag, so callers can show "already saved" instead
// of an error. Validation and storage failures return an error.
func (s *FavoritesService) Save(ctx context.Context, quote *domain.Quote) (alreadySaved bool, err error) {
	logger := logging.FromContext(ctx)
	if logger == nil {
		logger = s.logger
	}

	if quote == nil || strings.TrimSpace(quote.Content) == "" {
		return false, domain.NewValidationError("content", "cannot be empty")
	}
	if strings.TrimSpace(quote.Author) == "" {
		return false, domain.NewValidationError("author", "cannot be empty")
	}

	err = s.store.Save(ctx, quote)
	if domain.IsConflict(err) {
		logger.DebugContext(ctx, "quote already saved", slog.String("author", quote.Author))
		return true, nil
	}
	if err != nil {
		return false, fmt.Errorf("saving favorite: %w", err)
	}

	logger.InfoContext(ctx, "quote saved", slog.String("author", quote.Author))

	return false, nil
}

// List returns every saved quote in insertion order.
func (s *FavoritesService) List(ctx context.Context) ([]domain.SavedQuote, error) {
	saved, err := s.store.ListSaved(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing favorites: %w", err)
	}

	return saved, nil
}
