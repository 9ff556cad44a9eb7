package store

import (
	"context"
	"encoding/json/v2"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dgraph-io/badger/v4"

	"github.com/seenhub/seenhub-server/internal/domain"
)

var (
	// ErrEntryNotFound is returned when a catalog entry does not exist.
	ErrEntryNotFound = errors.New("entry not found")
	// ErrEntryExists is returned when creating an entry whose ID is taken.
	ErrEntryExists = errors.New("entry already exists")
)

// Page is one page of a catalog listing. Last reports whether this is the
// final page.
type Page[T any] struct {
	Content []T  `json:"content"`
	Last    bool `json:"last"`
}

// Catalog provides typed access to one kind of catalog entry. All four kinds
// share the same storage layout: the record under {kind}:{id} and a
// creation-time index key that drives newest-first listing.
type Catalog[T any, PT interface {
	*T
	domain.Entry
}] struct {
	store  *Store
	kind   domain.Kind
	prefix string
}

// NewCatalog creates a catalog for the given kind.
func NewCatalog[T any, PT interface {
	*T
	domain.Entry
}](s *Store, kind domain.Kind) *Catalog[T, PT] {
	return &Catalog[T, PT]{
		store:  s,
		kind:   kind,
		prefix: string(kind) + ":",
	}
}

// Kind returns the catalog's kind.
func (c *Catalog[T, PT]) Kind() domain.Kind {
	return c.kind
}

// Create stores a new entry and its creation-time index atomically.
func (c *Catalog[T, PT]) Create(ctx context.Context, entry PT) error {
	meta := entry.Meta()
	key := []byte(c.prefix + meta.ID)

	exists, err := c.store.exists(key)
	if err != nil {
		return fmt.Errorf("check %s exists: %w", c.kind, err)
	}
	if exists {
		return ErrEntryExists
	}

	err = c.store.db.Update(func(txn *badger.Txn) error {
		data, err := json.Marshal(entry)
		if err != nil {
			return fmt.Errorf("marshal %s: %w", c.kind, err)
		}

		if err := txn.Set(key, data); err != nil {
			return err
		}

		indexKey := formatCreatedIndexKey(string(c.kind), meta.CreatedAt, meta.ID)
		return txn.Set(indexKey, nil)
	})
	if err != nil {
		return fmt.Errorf("create %s: %w", c.kind, err)
	}

	if c.store.logger != nil {
		c.store.logger.LogAttrs(ctx, slog.LevelInfo, "entry created",
			slog.String("kind", string(c.kind)),
			slog.String("id", meta.ID),
			slog.String("title", entry.SearchTitle()),
		)
	}

	c.indexSearch(ctx, entry)
	return nil
}

// Get retrieves an entry by ID. The raw record is returned even when it is
// soft-deleted; callers that must hide deleted entries check Meta().Deleted.
func (c *Catalog[T, PT]) Get(_ context.Context, id string) (PT, error) {
	key := []byte(c.prefix + id)

	var value T
	entry := PT(&value)
	if err := c.store.get(key, entry); err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return nil, ErrEntryNotFound
		}
		return nil, fmt.Errorf("get %s: %w", c.kind, err)
	}
	return entry, nil
}

// Update overwrites an existing entry. CreatedAt is pinned to the stored
// value so the creation-time index stays consistent.
func (c *Catalog[T, PT]) Update(ctx context.Context, entry PT) error {
	existing, err := c.Get(ctx, entry.Meta().ID)
	if err != nil {
		return err
	}
	entry.Meta().CreatedAt = existing.Meta().CreatedAt

	key := []byte(c.prefix + entry.Meta().ID)
	if err := c.store.set(key, entry); err != nil {
		return fmt.Errorf("update %s: %w", c.kind, err)
	}

	if c.store.logger != nil {
		c.store.logger.Info("entry updated", "kind", string(c.kind), "id", entry.Meta().ID)
	}

	if entry.Meta().Deleted {
		c.removeFromSearch(ctx, entry.Meta().ID)
	} else {
		c.indexSearch(ctx, entry)
	}
	return nil
}

// SoftDelete marks an entry as deleted and returns the updated record.
// Deleting an already deleted entry is a no-op.
func (c *Catalog[T, PT]) SoftDelete(ctx context.Context, id string) (PT, error) {
	entry, err := c.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry.Meta().Deleted {
		return entry, nil
	}

	entry.Meta().MarkDeleted()

	key := []byte(c.prefix + id)
	if err := c.store.set(key, entry); err != nil {
		return nil, fmt.Errorf("soft delete %s: %w", c.kind, err)
	}

	if c.store.logger != nil {
		c.store.logger.Info("entry deleted", "kind", string(c.kind), "id", id)
	}

	c.removeFromSearch(ctx, id)
	return entry, nil
}

// ListAll returns every live entry, newest first.
func (c *Catalog[T, PT]) ListAll(ctx context.Context) ([]PT, error) {
	entries := []PT{}
	err := c.iterateNewestFirst(ctx, func(entry PT) (bool, error) {
		entries = append(entries, entry)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ListPage returns one page of live entries, newest first. Pages are
// zero-based; Last is set when no live entries remain past this page.
func (c *Catalog[T, PT]) ListPage(ctx context.Context, page, size int) (*Page[PT], error) {
	skip := page * size
	result := &Page[PT]{Content: []PT{}, Last: true}

	err := c.iterateNewestFirst(ctx, func(entry PT) (bool, error) {
		if skip > 0 {
			skip--
			return true, nil
		}
		if len(result.Content) < size {
			result.Content = append(result.Content, entry)
			return true, nil
		}
		// One more live entry exists past the page boundary.
		result.Last = false
		return false, nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// iterateNewestFirst walks live entries in creation order, newest first, and
// calls fn for each. Iteration stops when fn returns false. Soft-deleted
// entries are skipped. Ordering comes from a reverse scan of the
// creation-time index, which breaks timestamp ties by ID.
func (c *Catalog[T, PT]) iterateNewestFirst(_ context.Context, fn func(PT) (bool, error)) error {
	prefix := createdIndexPrefix(string(c.kind))

	err := c.store.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		// Seek past the last possible key of the prefix so the reverse
		// scan starts at the newest entry.
		seek := append(append([]byte{}, prefix...), 0xFF)
		for it.Seek(seek); it.ValidForPrefix(prefix); it.Next() {
			id, err := parseCreatedIndexKey(it.Item().Key(), string(c.kind))
			if err != nil {
				return err
			}

			entry, err := c.loadInTxn(txn, id)
			if err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					// Dangling index key; skip it.
					continue
				}
				return err
			}
			if entry.Meta().Deleted {
				continue
			}

			cont, err := fn(entry)
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("list %s: %w", c.kind, err)
	}
	return nil
}

// loadInTxn reads and unmarshals one record inside an open transaction.
func (c *Catalog[T, PT]) loadInTxn(txn *badger.Txn, id string) (PT, error) {
	item, err := txn.Get([]byte(c.prefix + id))
	if err != nil {
		return nil, err
	}

	var value T
	entry := PT(&value)
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, entry)
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

func (c *Catalog[T, PT]) indexSearch(ctx context.Context, entry PT) {
	if c.store.searchIndexer == nil {
		return
	}
	if err := c.store.searchIndexer.IndexEntry(ctx, entry); err != nil && c.store.logger != nil {
		c.store.logger.Warn("failed to index entry for search",
			"kind", string(c.kind), "id", entry.Meta().ID, "error", err)
	}
}

func (c *Catalog[T, PT]) removeFromSearch(ctx context.Context, id string) {
	if c.store.searchIndexer == nil {
		return
	}
	if err := c.store.searchIndexer.DeleteEntry(ctx, c.kind, id); err != nil && c.store.logger != nil {
		c.store.logger.Warn("failed to remove entry from search",
			"kind", string(c.kind), "id", id, "error", err)
	}
}
