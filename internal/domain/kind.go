package domain

import "github.com/seenhub/seenhub-server/internal/genre"

// Kind identifies one of the four catalog content types. It is a closed set;
// every kind-dependent behavior (ID prefix, genre enumeration, route segment)
// hangs off this type so the four variants stay exhaustively checked.
type Kind string

const (
	// KindBook is the book catalog.
	KindBook Kind = "book"
	// KindMovie is the movie catalog.
	KindMovie Kind = "movie"
	// KindMusic is the music catalog.
	KindMusic Kind = "music"
	// KindSeries is the TV series catalog.
	KindSeries Kind = "series"
)

// Kinds lists all catalog kinds in route order.
var Kinds = []Kind{KindBook, KindMovie, KindMusic, KindSeries}

// Valid reports whether k is a known catalog kind.
func (k Kind) Valid() bool {
	switch k {
	case KindBook, KindMovie, KindMusic, KindSeries:
		return true
	}
	return false
}

// IDPrefix returns the identifier prefix for entries of this kind
// (e.g. "book" for "book-V1StGXR8_Z5jdHi6B-myT").
func (k Kind) IDPrefix() string {
	return string(k)
}

// Genres returns the closed genre enumeration for this kind.
func (k Kind) Genres() []string {
	return genre.For(string(k))
}
