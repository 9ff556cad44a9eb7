package tmdb

// Result represents one movie or TV series from TMDB search.
type Result struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"posterPath"`
	PosterURL   string `json:"posterUrl"`
	ReleaseDate string `json:"releaseDate,omitempty"`
	Overview    string `json:"overview,omitempty"`
}

// movieSearchResponse is the raw TMDB movie search response.
type movieSearchResponse struct {
	Page         int           `json:"page"`
	TotalResults int           `json:"total_results"`
	Results      []movieResult `json:"results"`
}

type movieResult struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	PosterPath  string `json:"poster_path"`
	ReleaseDate string `json:"release_date"`
	Overview    string `json:"overview"`
}

// tvSearchResponse is the raw TMDB TV search response.
type tvSearchResponse struct {
	Page         int        `json:"page"`
	TotalResults int        `json:"total_results"`
	Results      []tvResult `json:"results"`
}

type tvResult struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	PosterPath   string `json:"poster_path"`
	FirstAirDate string `json:"first_air_date"`
	Overview     string `json:"overview"`
}
