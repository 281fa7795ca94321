// Package shape provides display-convenience transformations over catalog
// results. Every function is pure and never fails: empty input yields an
// empty output.
package shape

import (
	"math/rand"

	"Tune-Radar-Go/pkg/itunes"
)

// DefaultSampleSize is the thumbnail sample size used by callers that do
// not pick their own.
const DefaultSampleSize = 3

// Summary wraps a track collection with its counts for display.
type Summary struct {
	Total  int            `json:"total"`
	Albums int            `json:"albums"`
	Tracks []itunes.Track `json:"tracks"`
}

// Summarize builds a Summary envelope around tracks. The slice is reused,
// not copied.
func Summarize(tracks []itunes.Track) Summary {
	albums := make(map[string]struct{})
	for _, t := range tracks {
		albums[t.AlbumName] = struct{}{}
	}
	return Summary{Total: len(tracks), Albums: len(albums), Tracks: tracks}
}

// GroupByAlbum maps album name to that album's tracks, preserving the order
// tracks arrive in (newest first when fed from the catalog aggregation).
func GroupByAlbum(tracks []itunes.Track) map[string][]itunes.Track {
	groups := make(map[string][]itunes.Track)
	for _, t := range tracks {
		groups[t.AlbumName] = append(groups[t.AlbumName], t)
	}
	return groups
}

// Thumbnails returns the thumbnail URL of every track, in order.
func Thumbnails(tracks []itunes.Track) []string {
	urls := make([]string, len(tracks))
	for i, t := range tracks {
		urls[i] = t.ThumbnailURL
	}
	return urls
}

// SampleThumbnails picks a uniform random sample of n thumbnail URLs
// without replacement. When the collection holds fewer than n URLs all of
// them are returned. A non-positive n selects DefaultSampleSize.
func SampleThumbnails(urls []string, n int) []string {
	if n <= 0 {
		n = DefaultSampleSize
	}
	if len(urls) <= n {
		out := make([]string, len(urls))
		copy(out, urls)
		return out
	}
	out := make([]string, 0, n)
	for _, i := range rand.Perm(len(urls))[:n] {
		out = append(out, urls[i])
	}
	return out
}
