// Package csvstore implements the favorites store over a local CSV file.
//
// The file is the system of record for saved quotes: one row per favorite,
// header row first, appended to on save and read fully on display. The
// format keeps the store hand-editable; deleting a favorite means deleting
// its row.
package csvstore

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Jaimeman84/daily-quotes-app/internal/domain"
	"github.com/Jaimeman84/daily-quotes-app/internal/ports"
)

// savedAtLayout is the timestamp format for the saved_at column.
const savedAtLayout = "2006-01-02 15:04:05"

// header is the CSV header row, written before the first saved row.
var header = []string{"content", "author", "source_id", "saved_at"}

// Store persists favorites to a CSV file.
//
// The file is not expected to be shared between processes; the mutex only
// serializes concurrent HTTP requests within this one.
type Store struct {
	path   string
	logger *slog.Logger
	now    func() time.Time

	mu sync.Mutex
}

// compile-time interface check
var _ ports.FavoritesStore = (*Store)(nil)

// Config contains configuration for the CSV store.
type Config struct {
	// Path is the location of the favorites file.
	Path string

	// Logger is the structured logger.
	Logger *slog.Logger

	// Now supplies timestamps; defaults to time.Now.
	Now func() time.Time
}

// New creates a CSV-backed favorites store.
// The file itself is created lazily on first save.
func New(cfg Config) (*Store, error) {
	if cfg.Path == "" {
		return nil, errors.New("csvstore: path is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	now := cfg.Now
	if now == nil {
		now = time.Now
	}

	return &Store{
		path:   cfg.Path,
		logger: logger.With(slog.String("component", "csvstore.Store")),
		now:    now,
	}, nil
}

// ListSaved returns all saved quotes in insertion order.
// A store file that does not exist yet reads as empty.
func (s *Store) ListSaved(ctx context.Context) ([]domain.SavedQuote, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.readAll()
}

// Save appends the quote unless one with the same uniqueness key exists.
// The duplicate check is a linear scan of existing keys before append,
// which is fine at this scale.
func (s *Store) Save(ctx context.Context, quote *domain.Quote) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	existing, err := s.readAll()
	if err != nil {
		return err
	}

	key := quote.Key()
	for i := range existing {
		if existing[i].Key() == key {
			return domain.NewConflictError("favorite", "already saved")
		}
	}

	if err := s.append(quote); err != nil {
		return err
	}

	s.logger.Info("favorite saved",
		slog.String("author", quote.Author),
		slog.Int("total", len(existing)+1),
	)

	return nil
}

// readAll loads every row from the store file.
func (s *Store) readAll() ([]domain.SavedQuote, error) {
	f, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []domain.SavedQuote{}, nil
	}
	if err != nil {
		return nil, domain.NewStorageError("read", s.path, err.Error())
	}
	defer func() { _ = f.Close() }()

	reader := csv.NewReader(f)
	reader.FieldsPerRecord = -1 // tolerate rows edited by hand

	saved := make([]domain.SavedQuote, 0)
	first := true

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, domain.NewStorageError("read", s.path, err.Error())
		}

		if first {
			first = false
			if isHeaderRow(record) {
				continue
			}
		}

		saved = append(saved, recordToSavedQuote(record))
	}

	return saved, nil
}

// append writes one row, creating the file with its header first if needed.
func (s *Store) append(quote *domain.Quote) error {
	writeHeader := false

	info, err := os.Stat(s.path)

	switch {
	case errors.Is(err, os.ErrNotExist):
		writeHeader = true

		if dir := filepath.Dir(s.path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return domain.NewStorageError("create", s.path, err.Error())
			}
		}
	case err != nil:
		return domain.NewStorageError("append", s.path, err.Error())
	case info.Size() == 0:
		// A pre-existing empty file (touched by hand, or left behind by a
		// write that failed before the header landed) still needs its header.
		writeHeader = true
	}

	f, err := os.OpenFile(s.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return domain.NewStorageError("append", s.path, err.Error())
	}
	defer func() { _ = f.Close() }()

	writer := csv.NewWriter(f)

	if writeHeader {
		if err := writer.Write(header); err != nil {
			return domain.NewStorageError("append", s.path, err.Error())
		}
	}

	row := []string{
		quote.Content,
		quote.Author,
		quote.ID,
		s.now().Format(savedAtLayout),
	}
	if err := writer.Write(row); err != nil {
		return domain.NewStorageError("append", s.path, err.Error())
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return domain.NewStorageError("append", s.path, err.Error())
	}

	return nil
}

// isHeaderRow reports whether a record is the header row. Matching the
// actual fields instead of assuming position keeps a file without a header
// (or one whose header write never landed) from swallowing its first quote.
func isHeaderRow(record []string) bool {
	if len(record) != len(header) {
		return false
	}

	for i := range header {
		if record[i] != header[i] {
			return false
		}
	}

	return true
}

// recordToSavedQuote maps a CSV row to a SavedQuote, tolerating short rows.
func recordToSavedQuote(record []string) domain.SavedQuote {
	var saved domain.SavedQuote

	if len(record) > 0 {
		saved.Content = record[0]
	}
	if len(record) > 1 {
		saved.Author = record[1]
	}
	if len(record) > 2 {
		saved.SourceID = record[2]
	}
	if len(record) > 3 {
		if t, err := time.ParseInLocation(savedAtLayout, record[3], time.Local); err == nil {
			saved.SavedAt = t
		}
	}

	return saved
}

// Name returns the health check name for this store.
// Implements ports.HealthChecker.
func (s *Store) Name() string {
	return "favorites-store"
}

// Check verifies the store location is usable.
// Implements ports.HealthChecker.
func (s *Store) Check(_ context.Context) error {
	dir := filepath.Dir(s.path)

	info, err := os.Stat(dir)
	if err != nil {
		return fmt.Errorf("favorites directory: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("favorites location %s is not a directory", dir)
	}

	return nil
}
