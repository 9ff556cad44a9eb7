package api

import (
	"encoding/json/v2"
	"net/http"
	"strconv"

	domainerrors "github.com/seenhub/seenhub-server/internal/errors"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// decodeBody parses the request body into dest. Malformed JSON is a
// validation error, not a server fault.
func decodeBody(r *http.Request, dest any) error {
	if err := json.UnmarshalRead(r.Body, dest); err != nil {
		return domainerrors.Validation("invalid request body").WithCause(err)
	}
	return nil
}

// pageParams holds parsed list pagination. Paged is false when the caller
// sent neither parameter, which means "return everything".
type pageParams struct {
	Page  int
	Size  int
	Paged bool
}

// parsePageParams reads page/size from the query string. Both absent means
// an unpaged full listing; otherwise missing values fall back to defaults.
func parsePageParams(r *http.Request) (pageParams, error) {
	pageStr := r.URL.Query().Get("page")
	sizeStr := r.URL.Query().Get("size")

	if pageStr == "" && sizeStr == "" {
		return pageParams{}, nil
	}

	params := pageParams{Page: 0, Size: defaultPageSize, Paged: true}

	if pageStr != "" {
		page, err := strconv.Atoi(pageStr)
		if err != nil || page < 0 {
			return pageParams{}, domainerrors.Validation("page must be a non-negative integer")
		}
		params.Page = page
	}

	if sizeStr != "" {
		size, err := strconv.Atoi(sizeStr)
		if err != nil || size < 1 {
			return pageParams{}, domainerrors.Validation("size must be a positive integer")
		}
		if size > maxPageSize {
			size = maxPageSize
		}
		params.Size = size
	}

	return params, nil
}
