package dim

import (
	"fmt"
	"net/url"
	"strconv"
)

// MediaSummary is the card-level view of a library item. It is immutable once
// fetched; screens hand it to cards by value.
type MediaSummary struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Rating      *float64 `json:"rating"`
	Description *string  `json:"description"`
	Genres      []string `json:"genres"`
	Year        int      `json:"year"`
	Duration    int64    `json:"duration"` // seconds
	PosterPath  string   `json:"poster_path"`
	MediaType   string   `json:"media_type"` // "movie" or "tv"
}

// Library is one of the server's media libraries.
type Library struct {
	ID        int    `json:"id"`
	Name      string `json:"name"`
	MediaType string `json:"media_type"`
}

// GetLibraries returns the server's configured libraries.
func (c *Client) GetLibraries() ([]Library, error) {
	var libs []Library
	if err := c.get("/api/v1/library", &libs); err != nil {
		return nil, fmt.Errorf("get libraries: %w", err)
	}
	return libs, nil
}

// GetLibraryMedia returns the items of a library.
func (c *Client) GetLibraryMedia(libraryID int) ([]MediaSummary, error) {
	var items []MediaSummary
	path := fmt.Sprintf("/api/v1/library/%d/media", libraryID)
	if err := c.get(path, &items); err != nil {
		return nil, fmt.Errorf("get library media: %w", err)
	}
	return items, nil
}

// SearchFilter narrows a search request. Zero values are omitted from the query.
type SearchFilter struct {
	Query string
	Genre string
	Year  int
}

// Search queries the server's search endpoint. Tag links from the preview
// popup land here with only a genre or a year set.
func (c *Client) Search(filter SearchFilter) ([]MediaSummary, error) {
	params := url.Values{}
	if filter.Query != "" {
		params.Set("query", filter.Query)
	}
	if filter.Genre != "" {
		params.Set("genre", filter.Genre)
	}
	if filter.Year > 0 {
		params.Set("year", strconv.Itoa(filter.Year))
	}

	var items []MediaSummary
	path := "/api/v1/search"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	if err := c.get(path, &items); err != nil {
		return nil, fmt.Errorf("search: %w", err)
	}
	return items, nil
}
