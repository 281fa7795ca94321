// Package charts contains the chart feed data model and the parsers that
// turn raw provider feed payloads into ordered chart entries. Parsing is
// pure: the same payload always yields the same entries, and rank is
// assigned by feed position, not by any field in the payload.
package charts

import (
	"bytes"
	"encoding/json"
	"strings"
)

// Song is one entry of a top-songs chart. Rank is 1-based feed position.
type Song struct {
	Rank         int    `json:"rank"`
	Name         string `json:"name"`
	Artist       string `json:"artist"`
	ThumbnailURL string `json:"thumbnail"`
	PreviewURL   string `json:"preview_url,omitempty"`
}

// Artist is one entry of a top-artists chart.
type Artist struct {
	Rank         int    `json:"rank"`
	Name         string `json:"name"`
	ThumbnailURL string `json:"thumbnail,omitempty"`
}

// SongFeed mirrors the subset of the RSS-over-JSON top-songs feed this
// module consumes: {"feed": {"entry": [...]}}.
type SongFeed struct {
	Feed struct {
		Entry []FeedEntry `json:"entry"`
	} `json:"feed"`
}

// FeedEntry is a single feed item. The provider encodes scalar values as
// {"label": ...} objects and emits "link" as either one object or a list
// depending on whether a media preview exists.
type FeedEntry struct {
	Name   feedLabel `json:"im:name"`
	Artist feedLabel `json:"im:artist"`
	Images []struct {
		Label string `json:"label"`
	} `json:"im:image"`
	Links feedLinks `json:"link"`
}

type feedLabel struct {
	Label string `json:"label"`
}

type feedLink struct {
	Attributes struct {
		Rel  string `json:"rel"`
		Type string `json:"type"`
		Href string `json:"href"`
	} `json:"attributes"`
}

// feedLinks accepts both the single-object and the list encoding of "link".
type feedLinks []feedLink

func (l *feedLinks) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || string(data) == "null":
		return nil
	case data[0] == '[':
		return json.Unmarshal(data, (*[]feedLink)(l))
	}
	var one feedLink
	if err := json.Unmarshal(data, &one); err != nil {
		return err
	}
	*l = feedLinks{one}
	return nil
}

// thumbnail returns the entry's largest listed image, upgraded to the
// highest known artwork resolution. The feed lists images smallest first.
func (e FeedEntry) thumbnail() string {
	if len(e.Images) == 0 {
		return ""
	}
	return UpgradeArtwork(e.Images[len(e.Images)-1].Label)
}

// preview returns the href of the first link whose type attribute marks an
// audio asset, or "" when the entry carries no preview.
func (e FeedEntry) preview() string {
	for _, l := range e.Links {
		if strings.HasPrefix(l.Attributes.Type, "audio/") {
			return l.Attributes.Href
		}
	}
	return ""
}

// ParseSongs converts a top-songs feed into at most limit chart entries,
// in feed order. A non-positive limit returns every entry.
func ParseSongs(feed *SongFeed, limit int) []Song {
	if feed == nil {
		return nil
	}
	entries := feed.Feed.Entry
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	songs := make([]Song, len(entries))
	for i, e := range entries {
		songs[i] = Song{
			Rank:         i + 1,
			Name:         e.Name.Label,
			Artist:       e.Artist.Label,
			ThumbnailURL: e.thumbnail(),
			PreviewURL:   e.preview(),
		}
	}
	return songs
}

// ParseArtists derives a top-artists chart from a top-songs feed by keeping
// the first occurrence of each artist name, up to limit entries. Callers
// should fetch a feed substantially larger than limit so deduplication still
// yields enough unique names.
func ParseArtists(feed *SongFeed, limit int) []Artist {
	if feed == nil {
		return nil
	}
	seen := make(map[string]struct{})
	var artists []Artist
	for _, e := range feed.Feed.Entry {
		name := e.Artist.Label
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		artists = append(artists, Artist{
			Rank:         len(artists) + 1,
			Name:         name,
			ThumbnailURL: e.thumbnail(),
		})
		if limit > 0 && len(artists) == limit {
			break
		}
	}
	return artists
}
