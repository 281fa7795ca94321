// Package itunes implements the catalog provider: artist resolution, the
// concurrent album/track catalog aggregation and the RSS top-songs chart
// feeds. All operations are fail-soft — a failed or empty upstream response
// yields an empty result, never an error — matching the fetch gateway's
// contract.
package itunes

import (
	"context"
	"net/url"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"

	"Tune-Radar-Go/pkg/fetch"
)

const (
	defaultBaseURL      = "https://itunes.apple.com"
	defaultChartBaseURL = "https://itunes.apple.com"
	defaultCountry      = "US"

	// lookupLimit is the fixed page size for album and track lookups. The
	// upstream caps lookup responses at 200 entries; there is no further
	// pagination.
	lookupLimit = 200
)

// Client queries the catalog provider. All fields are optional: Country
// defaults to "US", BaseURL and ChartBaseURL to the public endpoints,
// FanOut to defaultFanOut, Fetch to a gateway with the default timeout and
// Log to the logrus standard logger. The zero value is ready for use.
type Client struct {
	Country      string
	BaseURL      string
	ChartBaseURL string

	// FanOut bounds the number of simultaneous track lookups during
	// catalog aggregation. Zero selects defaultFanOut.
	FanOut int

	Fetch *fetch.Client
	Log   *logrus.Logger
}

// New returns a Client for the given country using per-request timeout.
// Zero values select the defaults described on Client.
func New(country string, timeout time.Duration, log *logrus.Logger) *Client {
	return &Client{
		Country: country,
		Fetch:   fetch.New(timeout, log),
		Log:     log,
	}
}

func (c *Client) gateway() *fetch.Client {
	if c.Fetch == nil {
		c.Fetch = fetch.New(0, c.Log)
	}
	return c.Fetch
}

func (c *Client) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

func (c *Client) country() string {
	if c.Country == "" {
		return defaultCountry
	}
	return c.Country
}

func (c *Client) base() string {
	if c.BaseURL == "" {
		return defaultBaseURL
	}
	return c.BaseURL
}

func (c *Client) chartBase() string {
	if c.ChartBaseURL == "" {
		return defaultChartBaseURL
	}
	return c.ChartBaseURL
}

// ArtistID resolves a free-text artist name to the provider's numeric
// artist identifier. The search is scoped to music artists with a single
// result requested: the first match wins, and ambiguous names are not
// disambiguated. ok is false when the name is unrecognized or the search
// fails.
func (c *Client) ArtistID(ctx context.Context, name string) (id int64, ok bool) {
	params := url.Values{
		"term":    {name},
		"entity":  {"musicArtist"},
		"limit":   {"1"},
		"country": {c.country()},
	}
	var body struct {
		Results []struct {
			ArtistID int64 `json:"artistId"`
		} `json:"results"`
	}
	if !c.gateway().GetJSON(ctx, c.base()+"/search", params, &body) {
		return 0, false
	}
	if len(body.Results) == 0 {
		return 0, false
	}
	return body.Results[0].ArtistID, true
}

// lookupParams builds the shared query for /lookup requests.
func (c *Client) lookupParams(id int64, entity string) url.Values {
	return url.Values{
		"id":      {strconv.FormatInt(id, 10)},
		"entity":  {entity},
		"limit":   {strconv.Itoa(lookupLimit)},
		"country": {c.country()},
	}
}
