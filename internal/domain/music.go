package domain

// Music is a catalogued music entry, typically an album or a single track.
type Music struct {
	ItemMeta
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	MBID      string `json:"mbid,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// Kind returns KindMusic.
func (m *Music) Kind() Kind { return KindMusic }

// SearchTitle returns the indexed title.
func (m *Music) SearchTitle() string { return m.Title }

// SearchCreator returns the indexed creator field.
func (m *Music) SearchCreator() string { return m.Artist }
