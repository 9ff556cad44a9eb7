package domain

// Movie is a catalogued movie entry.
type Movie struct {
	ItemMeta
	Title      string `json:"title"`
	Director   string `json:"director"`
	PosterPath string `json:"posterPath,omitempty"`
}

// Kind returns KindMovie.
func (m *Movie) Kind() Kind { return KindMovie }

// SearchTitle returns the indexed title.
func (m *Movie) SearchTitle() string { return m.Title }

// SearchCreator returns the indexed creator field.
func (m *Movie) SearchCreator() string { return m.Director }
