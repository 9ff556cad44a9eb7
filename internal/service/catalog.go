package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/seenhub/seenhub-server/internal/domain"
	domainerrors "github.com/seenhub/seenhub-server/internal/errors"
	"github.com/seenhub/seenhub-server/internal/genre"
	"github.com/seenhub/seenhub-server/internal/id"
	"github.com/seenhub/seenhub-server/internal/store"
)

// invalidIDMessage is the user-facing message for malformed entry IDs.
const invalidIDMessage = "Invalid ID format."

// CatalogService implements the shared catalog operations for one kind.
// The four kinds only differ in their entity fields, which the handlers deal
// with through closures; everything lifecycle-related lives here.
type CatalogService[T any, PT interface {
	*T
	domain.Entry
}] struct {
	catalog *store.Catalog[T, PT]
	kind    domain.Kind
	logger  *slog.Logger
}

// Per-kind instantiations, mostly to keep constructor call sites readable.
type (
	BookService   = CatalogService[domain.Book, *domain.Book]
	MovieService  = CatalogService[domain.Movie, *domain.Movie]
	MusicService  = CatalogService[domain.Music, *domain.Music]
	SeriesService = CatalogService[domain.Series, *domain.Series]
)

// NewCatalogService creates a catalog service for one kind.
func NewCatalogService[T any, PT interface {
	*T
	domain.Entry
}](catalog *store.Catalog[T, PT], logger *slog.Logger) *CatalogService[T, PT] {
	return &CatalogService[T, PT]{
		catalog: catalog,
		kind:    catalog.Kind(),
		logger:  logger,
	}
}

// Kind returns the service's catalog kind.
func (s *CatalogService[T, PT]) Kind() domain.Kind {
	return s.kind
}

// checkID rejects malformed IDs before any store access.
func (s *CatalogService[T, PT]) checkID(entryID string) error {
	if !id.Valid(s.kind.IDPrefix(), entryID) {
		return domainerrors.Validation(invalidIDMessage)
	}
	return nil
}

// List returns all live entries, newest first.
func (s *CatalogService[T, PT]) List(ctx context.Context) ([]PT, error) {
	return s.catalog.ListAll(ctx)
}

// ListPage returns one zero-based page of live entries, newest first.
func (s *CatalogService[T, PT]) ListPage(ctx context.Context, page, size int) (*store.Page[PT], error) {
	return s.catalog.ListPage(ctx, page, size)
}

// Get returns a live entry by ID. Malformed IDs fail validation before any
// lookup; missing and soft-deleted entries are indistinguishable to the
// caller.
func (s *CatalogService[T, PT]) Get(ctx context.Context, entryID string) (PT, error) {
	if err := s.checkID(entryID); err != nil {
		return nil, err
	}

	entry, err := s.catalog.Get(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return nil, domainerrors.NotFoundf("%s not found", s.kind)
		}
		return nil, fmt.Errorf("get %s: %w", s.kind, err)
	}
	if entry.Meta().Deleted {
		return nil, domainerrors.NotFoundf("%s not found", s.kind)
	}
	return entry, nil
}

// Create persists a new entry. The caller provides the entry with its
// kind-specific fields set; the service validates genres, assigns the ID and
// creation time and clears the deleted flag.
func (s *CatalogService[T, PT]) Create(ctx context.Context, entry PT) (PT, error) {
	if err := genre.Validate(string(s.kind), entry.Meta().Genre); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	entryID, err := id.Generate(s.kind.IDPrefix())
	if err != nil {
		return nil, fmt.Errorf("generate %s ID: %w", s.kind, err)
	}
	entry.Meta().Init(entryID, time.Now())

	if err := s.catalog.Create(ctx, entry); err != nil {
		return nil, fmt.Errorf("create %s: %w", s.kind, err)
	}
	return entry, nil
}

// Update applies a partial update to a live entry. The apply closure mutates
// only the fields present in the request; untouched fields keep their stored
// values.
func (s *CatalogService[T, PT]) Update(ctx context.Context, entryID string, apply func(PT)) (PT, error) {
	entry, err := s.Get(ctx, entryID)
	if err != nil {
		return nil, err
	}

	apply(entry)

	if err := genre.Validate(string(s.kind), entry.Meta().Genre); err != nil {
		return nil, domainerrors.Validation(err.Error())
	}

	if err := s.catalog.Update(ctx, entry); err != nil {
		return nil, fmt.Errorf("update %s: %w", s.kind, err)
	}
	return entry, nil
}

// Delete soft-deletes an entry and returns the updated record. Repeated
// deletes are no-ops that still return the record.
func (s *CatalogService[T, PT]) Delete(ctx context.Context, entryID string) (PT, error) {
	if err := s.checkID(entryID); err != nil {
		return nil, err
	}

	entry, err := s.catalog.SoftDelete(ctx, entryID)
	if err != nil {
		if errors.Is(err, store.ErrEntryNotFound) {
			return nil, domainerrors.NotFoundf("%s not found", s.kind)
		}
		return nil, fmt.Errorf("delete %s: %w", s.kind, err)
	}
	return entry, nil
}
