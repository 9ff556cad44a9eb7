// Package genre defines the fixed genre enumerations for each catalog kind
// and the normalization applied to genre input before persistence.
package genre

import (
	"encoding/json/v2"
	"fmt"
)

// Per-kind genre sets. These are closed enumerations: an item can only carry
// genres from its own kind's set.
var (
	// MusicGenres is the closed set for music entries.
	MusicGenres = []string{
		"Pop", "Rock", "Metal", "Hiphop", "Jazz", "Indie",
		"Classic", "Dance", "J-Pop", "R&B", "Soul", "Ballad",
	}

	// ScreenGenres is the closed set shared by movies and TV series.
	ScreenGenres = []string{
		"Drama", "Animation", "Comedy", "Action", "Thriller", "SF",
		"Fantasy", "Romance", "Documentary", "Disaster", "Horror",
	}

	// BookGenres is the closed set for book entries.
	BookGenres = []string{
		"Novel", "Essay", "Poetry", "SF", "Fantasy", "Mystery",
		"Thriller", "Romance", "History", "Science", "Self-Help", "Comics",
	}
)

// sets maps a catalog kind name to its genre enumeration.
var sets = map[string][]string{
	"book":   BookGenres,
	"movie":  ScreenGenres,
	"music":  MusicGenres,
	"series": ScreenGenres,
}

// For returns the genre enumeration for the given kind name.
// Returns nil for unknown kinds.
func For(kind string) []string {
	return sets[kind]
}

// Allowed reports whether g is a member of the kind's genre set.
func Allowed(kind, g string) bool {
	for _, s := range sets[kind] {
		if s == g {
			return true
		}
	}
	return false
}

// Validate checks every entry of list against the kind's enumeration.
func Validate(kind string, list List) error {
	for _, g := range list {
		if !Allowed(kind, g) {
			return fmt.Errorf("unknown %s genre %q", kind, g)
		}
	}
	return nil
}

// List is a genre array that tolerates single-string input.
// Clients historically submitted genre either as "Rock" or as ["Rock"];
// both decode to a one-or-more element list, and the stored form is
// always an array.
type List []string

// UnmarshalJSON accepts either a JSON string or a JSON array of strings.
func (l *List) UnmarshalJSON(data []byte) error {
	var single string
	if err := json.Unmarshal(data, &single); err == nil {
		if single == "" {
			*l = List{}
			return nil
		}
		*l = List{single}
		return nil
	}

	var many []string
	if err := json.Unmarshal(data, &many); err != nil {
		return fmt.Errorf("genre must be a string or an array of strings: %w", err)
	}
	*l = List(many)
	return nil
}

// MarshalJSON always emits an array, never null.
func (l List) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}
