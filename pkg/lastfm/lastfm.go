// Package lastfm implements the scrobbling provider's chart API. Only the
// global top-artists chart is consumed. An API key is required; it is
// passed through on each request, never exchanged or refreshed. A client
// built without a key warns once and then returns empty results from every
// call that needs it.
package lastfm

import (
	"context"
	"net/url"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"Tune-Radar-Go/pkg/charts"
	"Tune-Radar-Go/pkg/fetch"
)

const defaultBaseURL = "http://ws.audioscrobbler.com/2.0/"

// EnvAPIKey is the environment variable NewFromEnv reads the API key from.
const EnvAPIKey = "LASTFM_API_KEY"

// Client queries the scrobbler chart endpoint. BaseURL defaults to the
// public endpoint, Fetch to a gateway with the default timeout and Log to
// the logrus standard logger.
type Client struct {
	APIKey  string
	BaseURL string
	Fetch   *fetch.Client
	Log     *logrus.Logger
}

// New returns a Client using apiKey. An empty key is not an error: it is
// warned about once here, and chart calls will return no data.
func New(apiKey string, timeout time.Duration, log *logrus.Logger) *Client {
	c := &Client{
		APIKey: apiKey,
		Fetch:  fetch.New(timeout, log),
		Log:    log,
	}
	if apiKey == "" {
		c.logger().Warnf("%s is not set; chart calls will return no data", EnvAPIKey)
	}
	return c
}

// NewFromEnv builds a Client with the key from the LASTFM_API_KEY
// environment variable, loading a .env file first when one exists.
func NewFromEnv(timeout time.Duration, log *logrus.Logger) *Client {
	_ = godotenv.Load()
	return New(os.Getenv(EnvAPIKey), timeout, log)
}

func (c *Client) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Client) gateway() *fetch.Client {
	if c.Fetch == nil {
		c.Fetch = fetch.New(0, c.Log)
	}
	return c.Fetch
}

func (c *Client) base() string {
	if c.BaseURL == "" {
		return defaultBaseURL
	}
	return c.BaseURL
}

// topArtistsResponse mirrors the subset of the chart.gettopartists payload
// this module consumes.
type topArtistsResponse struct {
	Artists struct {
		Artist []struct {
			Name  string `json:"name"`
			Image []struct {
				URL  string `json:"#text"`
				Size string `json:"size"`
			} `json:"image"`
		} `json:"artist"`
	} `json:"artists"`
}

// TopArtists returns the global top-artists chart, at most limit entries in
// provider rank order. Without an API key, or on any upstream failure, the
// result is empty.
func (c *Client) TopArtists(ctx context.Context, limit int) []charts.Artist {
	if c.APIKey == "" {
		return nil
	}
	params := url.Values{
		"method":  {"chart.gettopartists"},
		"api_key": {c.APIKey},
		"format":  {"json"},
		"limit":   {strconv.Itoa(limit)},
	}
	var body topArtistsResponse
	if !c.gateway().GetJSON(ctx, c.base(), params, &body) {
		return nil
	}
	entries := body.Artists.Artist
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	artists := make([]charts.Artist, len(entries))
	for i, a := range entries {
		thumb := ""
		for _, img := range a.Image {
			if img.URL != "" {
				// The image list runs smallest to largest; keep the last
				// populated URL.
				thumb = img.URL
			}
		}
		artists[i] = charts.Artist{
			Rank:         i + 1,
			Name:         a.Name,
			ThumbnailURL: thumb,
		}
	}
	return artists
}
