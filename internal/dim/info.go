package dim

import (
	"errors"
	"fmt"
)

// MediaVersion is one playable encoding of an item.
type MediaVersion struct {
	ID          int64  `json:"id"`
	File        string `json:"file"`
	DisplayName string `json:"display_name"`
}

// mediaInfo mirrors the two shapes the info endpoint can return: a flat
// version list for movies, or a season/episode tree for shows. The optional
// error field signals an application-level failure even on HTTP 200.
type mediaInfo struct {
	Error    string            `json:"error"`
	Versions []MediaVersion    `json:"versions"`
	Seasons  []mediaInfoSeason `json:"seasons"`
}

type mediaInfoSeason struct {
	Episodes []mediaInfoEpisode `json:"episodes"`
}

type mediaInfoEpisode struct {
	Versions []MediaVersion `json:"versions"`
}

// ErrNoVersions is returned when the payload decodes but carries no playable
// versions in either shape. Callers treat it like any other transient fetch
// failure: leave their current version list untouched.
var ErrNoVersions = errors.New("media info: no playable versions in payload")

// FetchMediaInfo fetches the playable versions of a media item. For shows the
// server nests versions under seasons and episodes; the first episode of the
// first season is taken, matching what the preview panel offers to play.
//
// Any failure (transport, non-2xx, payload error field, unexpected shape)
// comes back as an error and the caller must not replace its version list.
func (c *Client) FetchMediaInfo(mediaID int) ([]MediaVersion, error) {
	var info mediaInfo
	path := fmt.Sprintf("/api/v1/media/%d/info", mediaID)
	if err := c.get(path, &info); err != nil {
		return nil, fmt.Errorf("media info: %w", err)
	}
	if info.Error != "" {
		return nil, fmt.Errorf("media info: %s", info.Error)
	}
	return normalizeVersions(info)
}

// normalizeVersions flattens the two response shapes into one list. Each
// nested level is checked before indexing; an empty level means the payload
// shape was unexpected and the fetch counts as failed.
func normalizeVersions(info mediaInfo) ([]MediaVersion, error) {
	if len(info.Seasons) > 0 {
		episodes := info.Seasons[0].Episodes
		if len(episodes) == 0 {
			return nil, ErrNoVersions
		}
		if len(episodes[0].Versions) == 0 {
			return nil, ErrNoVersions
		}
		return episodes[0].Versions, nil
	}
	if len(info.Versions) == 0 {
		return nil, ErrNoVersions
	}
	return info.Versions, nil
}
