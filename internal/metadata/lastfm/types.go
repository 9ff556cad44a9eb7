package lastfm

// AlbumResult represents one album from Last.fm search.
type AlbumResult struct {
	Title     string `json:"title"`
	Artist    string `json:"artist"`
	MBID      string `json:"mbid,omitempty"`
	Thumbnail string `json:"thumbnail,omitempty"`
}

// searchResponse is the raw Last.fm album.search response.
type searchResponse struct {
	Results struct {
		AlbumMatches struct {
			Album []album `json:"album"`
		} `json:"albummatches"`
	} `json:"results"`
}

type album struct {
	Name   string  `json:"name"`
	Artist string  `json:"artist"`
	MBID   string  `json:"mbid"`
	Image  []image `json:"image"`
}

// image is one entry of Last.fm's size-tagged image list.
type image struct {
	URL  string `json:"#text"`
	Size string `json:"size"`
}
