package kakao

// BookResult represents one book from Kakao search.
type BookResult struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Thumbnail string   `json:"thumbnail"`
	ISBN      string   `json:"isbn,omitempty"`
}

// searchResponse is the raw Kakao API response.
type searchResponse struct {
	Documents []document `json:"documents"`
	Meta      meta       `json:"meta"`
}

type document struct {
	Title     string   `json:"title"`
	Authors   []string `json:"authors"`
	Publisher string   `json:"publisher"`
	Thumbnail string   `json:"thumbnail"`
	ISBN      string   `json:"isbn"`
}

type meta struct {
	TotalCount    int  `json:"total_count"`
	PageableCount int  `json:"pageable_count"`
	IsEnd         bool `json:"is_end"`
}
