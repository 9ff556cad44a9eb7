// Package search provides full-text search over catalog entries using Bleve.
// All four kinds share one index with a kind discriminator, so a single query
// can search the whole catalog or be narrowed to one kind.
package search

import (
	"github.com/seenhub/seenhub-server/internal/domain"
)

// Document is the unified document structure for the Bleve index.
// Title and creator are denormalized from the entry; creator means author
// for books, director for movies, artist for music and broadcaster for
// series.
type Document struct {
	ID        string   `json:"id"`
	Kind      string   `json:"kind"`
	Title     string   `json:"title"`
	Creator   string   `json:"creator,omitempty"`
	Genres    []string `json:"genres,omitempty"`
	CreatedAt int64    `json:"created_at"` // Unix millis
}

// ToMap converts the document to a map with lowercase field names.
// Bleve by default uses Go struct field names (capitalized), but our
// mapping uses lowercase names, so we convert explicitly.
func (d *Document) ToMap() map[string]interface{} {
	m := map[string]interface{}{
		"id":         d.ID,
		"kind":       d.Kind,
		"title":      d.Title,
		"created_at": d.CreatedAt,
	}

	if d.Creator != "" {
		m["creator"] = d.Creator
	}
	if len(d.Genres) > 0 {
		m["genres"] = d.Genres
	}

	return m
}

// EntryToDocument converts a catalog entry to its search document.
func EntryToDocument(entry domain.Entry) *Document {
	meta := entry.Meta()
	return &Document{
		ID:        meta.ID,
		Kind:      string(entry.Kind()),
		Title:     entry.SearchTitle(),
		Creator:   entry.SearchCreator(),
		Genres:    meta.Genre,
		CreatedAt: meta.CreatedAt.UnixMilli(),
	}
}
