package dim

import (
	"fmt"
	"net/url"
	"strings"
)

// PosterURL returns the full URL for an item's cover art. Dim serves scanned
// artwork from its /images route; poster_path may already be absolute when
// metadata came straight from TMDB.
func (c *Client) PosterURL(item MediaSummary) string {
	p := item.PosterPath
	if p == "" {
		return ""
	}
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return fmt.Sprintf("%s/images/%s", c.baseURL, url.PathEscape(strings.TrimPrefix(p, "/")))
}
