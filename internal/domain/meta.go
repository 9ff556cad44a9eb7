// Package domain defines the core catalog entities and their shared
// lifecycle fields.
package domain

import (
	"time"

	"github.com/seenhub/seenhub-server/internal/genre"
)

// ItemMeta carries the lifecycle fields shared by every catalog entry.
// Entries are never hard-deleted; Deleted marks an entry as removed while
// keeping the record on disk.
type ItemMeta struct {
	ID            string     `json:"id"`
	Genre         genre.List `json:"genre"`
	CommentID     string     `json:"commentId,omitempty"`
	IsMasterpiece bool       `json:"isMasterpiece"`
	CreatedAt     time.Time  `json:"createdAt"`
	Deleted       bool       `json:"deleted"`
}

// Meta returns the shared lifecycle fields. Embedding ItemMeta gives every
// entry type this method, which is how generic store and service code reaches
// the common fields.
func (m *ItemMeta) Meta() *ItemMeta {
	return m
}

// Init stamps a freshly created entry with its server-assigned identity.
func (m *ItemMeta) Init(id string, now time.Time) {
	m.ID = id
	m.CreatedAt = now
	m.Deleted = false
	if m.Genre == nil {
		m.Genre = genre.List{}
	}
}

// MarkDeleted soft-deletes the entry. Calling it on an already deleted
// entry is a no-op.
func (m *ItemMeta) MarkDeleted() {
	m.Deleted = true
}

// Entry is implemented by all four catalog entity types. The pointer type of
// each entity satisfies it via the embedded ItemMeta plus per-kind methods.
type Entry interface {
	Meta() *ItemMeta
	Kind() Kind
	// SearchTitle and SearchCreator feed the full-text index.
	SearchTitle() string
	SearchCreator() string
}
