package dim

import (
	"fmt"
	"net/url"
)

// StreamURL returns the playable manifest URL for a media version. The token
// rides along as a query parameter because mpv issues the request itself and
// cannot attach the Authorization header.
func (c *Client) StreamURL(version MediaVersion) string {
	params := url.Values{}
	params.Set("token", c.token)
	return fmt.Sprintf("%s/api/v1/stream/%d/manifest.mpd?%s",
		c.baseURL, version.ID, params.Encode())
}
