package itunes

import (
	"context"
	"fmt"
	"strings"

	"Tune-Radar-Go/pkg/charts"
)

// artistFeedLimit is the internal feed size used to derive a top-artists
// chart: deduplicating by artist name shrinks the list, so the fetch is
// oversized relative to any limit a caller would reasonably request.
const artistFeedLimit = 200

// TopSongs returns the top-songs chart for the client's configured country,
// at most limit entries in provider rank order.
func (c *Client) TopSongs(ctx context.Context, limit int) []charts.Song {
	return c.TopSongsByCountry(ctx, c.country(), limit)
}

// TopSongsByCountry returns the top-songs chart for an explicit two-letter
// country code.
func (c *Client) TopSongsByCountry(ctx context.Context, country string, limit int) []charts.Song {
	feed, ok := c.songFeed(ctx, country, limit)
	if !ok {
		return nil
	}
	return charts.ParseSongs(feed, limit)
}

// TopArtists derives the top charting artists for the client's country from
// the top-songs feed, deduplicated by name with first occurrence kept.
func (c *Client) TopArtists(ctx context.Context, limit int) []charts.Artist {
	feed, ok := c.songFeed(ctx, c.country(), artistFeedLimit)
	if !ok {
		return nil
	}
	return charts.ParseArtists(feed, limit)
}

func (c *Client) songFeed(ctx context.Context, country string, limit int) (*charts.SongFeed, bool) {
	if limit <= 0 {
		limit = artistFeedLimit
	}
	u := fmt.Sprintf("%s/%s/rss/topsongs/limit=%d/json",
		c.chartBase(), strings.ToLower(country), limit)
	var feed charts.SongFeed
	if !c.gateway().GetJSON(ctx, u, nil, &feed) {
		return nil, false
	}
	return &feed, true
}
