package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/seenhub/seenhub-server/internal/domain"
	domainerrors "github.com/seenhub/seenhub-server/internal/errors"
	"github.com/seenhub/seenhub-server/internal/search"
	"github.com/seenhub/seenhub-server/internal/store"
)

// SearchService keeps the full-text index in sync with the store and
// answers catalog search queries. It implements store.SearchIndexer.
type SearchService struct {
	index  *search.Index
	store  *store.Store
	logger *slog.Logger
}

// NewSearchService creates a new search service.
func NewSearchService(index *search.Index, st *store.Store, logger *slog.Logger) *SearchService {
	return &SearchService{index: index, store: st, logger: logger}
}

// IndexEntry adds or updates one entry in the index.
func (s *SearchService) IndexEntry(_ context.Context, entry domain.Entry) error {
	return s.index.IndexDocument(search.EntryToDocument(entry))
}

// DeleteEntry removes one entry from the index.
func (s *SearchService) DeleteEntry(_ context.Context, _ domain.Kind, entryID string) error {
	return s.index.DeleteDocument(entryID)
}

// ReindexAll rebuilds the index from the store. Only live entries are
// indexed.
func (s *SearchService) ReindexAll(ctx context.Context) error {
	if err := s.index.Rebuild(); err != nil {
		return fmt.Errorf("rebuild index: %w", err)
	}

	var docs []*search.Document

	books, err := s.store.Books.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, b := range books {
		docs = append(docs, search.EntryToDocument(b))
	}

	movies, err := s.store.Movies.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, m := range movies {
		docs = append(docs, search.EntryToDocument(m))
	}

	music, err := s.store.Music.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, m := range music {
		docs = append(docs, search.EntryToDocument(m))
	}

	series, err := s.store.Series.ListAll(ctx)
	if err != nil {
		return err
	}
	for _, sr := range series {
		docs = append(docs, search.EntryToDocument(sr))
	}

	if err := s.index.IndexDocuments(docs); err != nil {
		return fmt.Errorf("index documents: %w", err)
	}

	if s.logger != nil {
		s.logger.Info("search index rebuilt", "documents", len(docs))
	}
	return nil
}

// Search runs a catalog search. An empty kind searches all catalogs.
func (s *SearchService) Search(ctx context.Context, query, kind string) (*search.Result, error) {
	params := search.DefaultParams()
	params.Query = query
	if kind != "" {
		if !domain.Kind(kind).Valid() {
			return nil, domainerrors.Validationf("unknown kind %q", kind)
		}
		params.Kinds = []string{kind}
	}

	result, err := s.index.Search(ctx, params)
	if err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return result, nil
}
