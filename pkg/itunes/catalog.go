package itunes

import (
	"context"
	"sort"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"Tune-Radar-Go/pkg/charts"
)

// defaultFanOut bounds the simultaneous in-flight track lookups during
// catalog aggregation. One request per album with no bound would swamp the
// outbound connection pool and the upstream's rate limits; this ceiling is
// empirical, not a protocol requirement, and is tunable via Client.FanOut.
const defaultFanOut = 10

// Track is one catalog song with normalized metadata. ReleaseDate keeps the
// provider's fixed-width ISO-8601 form so collections sort correctly under
// plain string comparison; ReleaseMonth and ReleaseYear are derived from it.
type Track struct {
	Name         string `json:"song_name"`
	AlbumName    string `json:"album_name"`
	ReleaseDate  string `json:"release_date"`
	ReleaseMonth string `json:"release_month"`
	ReleaseYear  int    `json:"release_year"`
	PreviewURL   string `json:"preview_url,omitempty"`
	TrackNumber  int    `json:"track_number"`
	TrackID      int64  `json:"track_id"`
	ThumbnailURL string `json:"thumbnail"`
}

// album is an internal catalog entry surviving the album-stage filter.
type album struct {
	id          int64
	name        string
	releaseDate string
}

// lookupResult is the shared shape of /lookup response entries. Album and
// track entries populate different subsets of the fields.
type lookupResult struct {
	WrapperType    string `json:"wrapperType"`
	CollectionType string `json:"collectionType"`
	ArtistID       int64  `json:"artistId"`
	CollectionID   int64  `json:"collectionId"`
	CollectionName string `json:"collectionName"`
	TrackID        int64  `json:"trackId"`
	TrackName      string `json:"trackName"`
	TrackNumber    int    `json:"trackNumber"`
	ReleaseDate    string `json:"releaseDate"`
	PreviewURL     string `json:"previewUrl"`
	ArtworkURL100  string `json:"artworkUrl100"`
}

// AllOfficialSongs returns every track of the artist's own albums, newest
// first. Resolution failure and per-album fetch failures are absorbed: an
// unknown artist yields an empty result, and an album whose track lookup
// fails simply contributes no tracks. Consequently an empty slice cannot be
// distinguished from an upstream failure. Ties on release date keep the
// order produced by the merge, which is stable within a single call but not
// guaranteed across calls.
func (c *Client) AllOfficialSongs(ctx context.Context, artistName string) []Track {
	artistID, ok := c.ArtistID(ctx, artistName)
	if !ok {
		c.logger().WithField("artist", artistName).Info("artist not found")
		return nil
	}

	albums := c.albums(ctx, artistID)
	if len(albums) == 0 {
		return nil
	}

	// One goroutine per album, bounded; results land in per-album slots so
	// no accumulator needs locking.
	perAlbum := make([][]Track, len(albums))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(c.fanOut())
	for i, al := range albums {
		i, al := i, al
		g.Go(func() error {
			perAlbum[i] = c.albumTracks(ctx, artistID, al)
			return nil
		})
	}
	// Workers never return errors, so Wait only joins them.
	_ = g.Wait()

	var songs []Track
	for _, tracks := range perAlbum {
		songs = append(songs, tracks...)
	}
	// The global sort is what callers may rely on; the per-album sorts in
	// albumTracks keep intermediate slices independently useful.
	sort.SliceStable(songs, func(i, j int) bool {
		return songs[i].ReleaseDate > songs[j].ReleaseDate
	})
	return songs
}

func (c *Client) fanOut() int {
	if c.FanOut > 0 {
		return c.FanOut
	}
	return defaultFanOut
}

// albums fetches the artist's collection list and keeps entries that are
// proper albums owned by the artist. The search-backed lookup can return
// compilations and fuzzy matches attributed to other artists; both filters
// guard against that. The result is sorted newest first.
func (c *Client) albums(ctx context.Context, artistID int64) []album {
	var body struct {
		Results []lookupResult `json:"results"`
	}
	if !c.gateway().GetJSON(ctx, c.base()+"/lookup", c.lookupParams(artistID, "album"), &body) {
		return nil
	}
	var albums []album
	for _, r := range body.Results {
		if r.CollectionType != "Album" || r.ArtistID != artistID {
			continue
		}
		albums = append(albums, album{
			id:          r.CollectionID,
			name:        r.CollectionName,
			releaseDate: r.ReleaseDate,
		})
	}
	sort.Slice(albums, func(i, j int) bool {
		return albums[i].releaseDate > albums[j].releaseDate
	})
	return albums
}

// albumTracks fetches one album's track list and normalizes the entries
// owned by the artist. Entries whose wrapper marks anything but an
// individual track (videos, liner notes) and tracks credited to another
// artist are dropped. The returned slice is sorted newest first.
func (c *Client) albumTracks(ctx context.Context, artistID int64, al album) []Track {
	var body struct {
		Results []lookupResult `json:"results"`
	}
	if !c.gateway().GetJSON(ctx, c.base()+"/lookup", c.lookupParams(al.id, "song"), &body) {
		return nil
	}
	var tracks []Track
	for _, r := range body.Results {
		if r.WrapperType != "track" || r.ArtistID != artistID {
			continue
		}
		released, err := time.Parse(time.RFC3339, r.ReleaseDate)
		if err != nil {
			c.logger().WithFields(logrus.Fields{
				"album": al.name,
				"track": r.TrackName,
				"date":  r.ReleaseDate,
			}).Warn("unparseable release date")
			continue
		}
		tracks = append(tracks, Track{
			Name:         r.TrackName,
			AlbumName:    al.name,
			ReleaseDate:  r.ReleaseDate,
			ReleaseMonth: released.Month().String(),
			ReleaseYear:  released.Year(),
			PreviewURL:   r.PreviewURL,
			TrackNumber:  r.TrackNumber,
			TrackID:      r.TrackID,
			ThumbnailURL: charts.UpgradeArtwork(r.ArtworkURL100),
		})
	}
	sort.SliceStable(tracks, func(i, j int) bool {
		return tracks[i].ReleaseDate > tracks[j].ReleaseDate
	})
	return tracks
}
