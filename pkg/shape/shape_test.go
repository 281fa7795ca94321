package shape

import (
	"testing"

	"Tune-Radar-Go/pkg/itunes"
)

func sampleTracks() []itunes.Track {
	return []itunes.Track{
		{Name: "Single", AlbumName: "New", TrackID: 201, ThumbnailURL: "https://img.test/201.jpg"},
		{Name: "Closer", AlbumName: "New", TrackID: 204, ThumbnailURL: "https://img.test/204.jpg"},
		{Name: "Deep Cut", AlbumName: "Old", TrackID: 102, ThumbnailURL: "https://img.test/102.jpg"},
	}
}

func TestGroupByAlbum(t *testing.T) {
	groups := GroupByAlbum(sampleTracks())
	if len(groups) != 2 {
		t.Fatalf("expected 2 albums got %d", len(groups))
	}
	if got := groups["New"]; len(got) != 2 || got[0].TrackID != 201 || got[1].TrackID != 204 {
		t.Fatalf("unexpected group %+v", got)
	}
	if got := groups["Old"]; len(got) != 1 || got[0].TrackID != 102 {
		t.Fatalf("unexpected group %+v", got)
	}
}

func TestGroupByAlbumEmpty(t *testing.T) {
	if groups := GroupByAlbum(nil); len(groups) != 0 {
		t.Fatalf("expected empty map got %+v", groups)
	}
}

func TestSummarize(t *testing.T) {
	s := Summarize(sampleTracks())
	if s.Total != 3 || s.Albums != 2 || len(s.Tracks) != 3 {
		t.Fatalf("unexpected summary %+v", s)
	}
}

// TestSampleThumbnailsSmallCollection covers the boundary scenario: asking
// for more thumbnails than exist returns everything, once each.
func TestSampleThumbnailsSmallCollection(t *testing.T) {
	urls := []string{"https://img.test/a.jpg", "https://img.test/b.jpg"}
	got := SampleThumbnails(urls, 3)
	if len(got) != 2 {
		t.Fatalf("expected 2 thumbnails got %d", len(got))
	}
	if got[0] == got[1] {
		t.Fatalf("sample contains a duplicate: %v", got)
	}
}

func TestSampleThumbnails(t *testing.T) {
	urls := Thumbnails(sampleTracks())
	got := SampleThumbnails(urls, 2)
	if len(got) != 2 {
		t.Fatalf("expected 2 thumbnails got %d", len(got))
	}
	seen := make(map[string]bool)
	for _, u := range got {
		if seen[u] {
			t.Fatalf("duplicate %q in sample", u)
		}
		seen[u] = true
		found := false
		for _, orig := range urls {
			if u == orig {
				found = true
			}
		}
		if !found {
			t.Fatalf("sampled %q not in source collection", u)
		}
	}
}

func TestSampleThumbnailsDefaultSize(t *testing.T) {
	urls := []string{"a", "b", "c", "d", "e"}
	if got := SampleThumbnails(urls, 0); len(got) != DefaultSampleSize {
		t.Fatalf("expected %d thumbnails got %d", DefaultSampleSize, len(got))
	}
}
