package itunes

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
)

const songFeedBody = `{"feed":{"entry":[
	{"im:name":{"label":"One"},"im:artist":{"label":"Daft Punk"},"im:image":[{"label":"https://img.test/1/170x170bb.jpg"}],
	 "link":[{"attributes":{"rel":"enclosure","type":"audio/x-m4a","href":"https://audio.test/1.m4a"}}]},
	{"im:name":{"label":"Two"},"im:artist":{"label":"M83"},"im:image":[{"label":"https://img.test/2/170x170bb.jpg"}],
	 "link":{"attributes":{"rel":"alternate","type":"text/html","href":"https://music.test/2"}}},
	{"im:name":{"label":"Three"},"im:artist":{"label":"Daft Punk"},"im:image":[{"label":"https://img.test/3/170x170bb.jpg"}],
	 "link":{"attributes":{"rel":"alternate","type":"text/html","href":"https://music.test/3"}}}
]}}`

func TestTopSongsByCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/fr/rss/topsongs/limit=3/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, songFeedBody)
	}))
	defer srv.Close()

	songs := newTestClient(srv).TopSongsByCountry(context.Background(), "FR", 3)
	if len(songs) != 3 {
		t.Fatalf("expected 3 songs got %d", len(songs))
	}
	if songs[0].Rank != 1 || songs[0].Name != "One" {
		t.Fatalf("unexpected first entry %+v", songs[0])
	}
	if songs[0].PreviewURL != "https://audio.test/1.m4a" {
		t.Errorf("unexpected preview %q", songs[0].PreviewURL)
	}
	if songs[0].ThumbnailURL != "https://img.test/1/600x600bb.jpg" {
		t.Errorf("thumbnail not upgraded: %q", songs[0].ThumbnailURL)
	}
}

// TestTopSongsDefaultCountry verifies the client country scopes the feed
// when no explicit code is given.
func TestTopSongsDefaultCountry(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/us/rss/topsongs/limit=2/json" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		io.WriteString(w, songFeedBody)
	}))
	defer srv.Close()

	if songs := newTestClient(srv).TopSongs(context.Background(), 2); len(songs) != 2 {
		t.Fatalf("expected 2 songs got %d", len(songs))
	}
}

// TestTopArtists verifies the oversized internal fetch and the
// dedupe-by-name contract.
func TestTopArtists(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/us/rss/topsongs/limit=200/json" {
			t.Errorf("artists chart must fetch the full feed, got %s", r.URL.Path)
		}
		io.WriteString(w, songFeedBody)
	}))
	defer srv.Close()

	artists := newTestClient(srv).TopArtists(context.Background(), 10)
	if len(artists) != 2 {
		t.Fatalf("expected 2 unique artists got %d", len(artists))
	}
	if artists[0].Name != "Daft Punk" || artists[1].Name != "M83" {
		t.Fatalf("unexpected artists %+v", artists)
	}
}

func TestTopSongsUpstreamFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	if songs := newTestClient(srv).TopSongs(context.Background(), 5); len(songs) != 0 {
		t.Fatalf("expected empty result got %+v", songs)
	}
}
