package domain

// Series is a catalogued TV series entry.
type Series struct {
	ItemMeta
	Title       string `json:"title"`
	Broadcaster string `json:"broadcaster,omitempty"`
	PosterPath  string `json:"posterPath,omitempty"`
}

// Kind returns KindSeries.
func (s *Series) Kind() Kind { return KindSeries }

// SearchTitle returns the indexed title.
func (s *Series) SearchTitle() string { return s.Title }

// SearchCreator returns the indexed creator field.
func (s *Series) SearchCreator() string { return s.Broadcaster }
