// Package fetch provides the single HTTP gateway used by every upstream
// client in this module. Requests are one-shot GETs with a per-request
// timeout inherited from the underlying http.Client; there is no retry.
//
// The gateway deliberately never returns an error. Transport failures,
// non-2xx statuses and undecodable bodies are logged, counted and reported
// as a false ok value, so callers treat "no data" and "failed" identically.
// Callers that need to observe failures should watch the log output or the
// Prometheus counter rather than the return value.
package fetch

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
	"time"

	"github.com/sirupsen/logrus"
)

// DefaultTimeout bounds each individual request when no explicit timeout is
// configured. It matches the upstream clients' lazy http.Client default.
const DefaultTimeout = 10 * time.Second

// Client issues fail-soft JSON GET requests. HTTP may be nil in which case a
// client with DefaultTimeout is allocated on first use; Log may be nil in
// which case the logrus standard logger is used. The zero value is therefore
// ready for use.
type Client struct {
	HTTP *http.Client
	Log  *logrus.Logger
}

// New returns a Client with the given per-request timeout. A zero timeout
// selects DefaultTimeout. log may be nil.
func New(timeout time.Duration, log *logrus.Logger) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		HTTP: &http.Client{Timeout: timeout},
		Log:  log,
	}
}

func (c *Client) logger() *logrus.Logger {
	if c.Log != nil {
		return c.Log
	}
	return logrus.StandardLogger()
}

// GetJSON issues a single GET against rawurl with params appended as the
// query string and decodes the response body into out. It reports whether a
// 2xx response was received and decoded; on false, out is left in whatever
// partial state the decoder produced and must be treated as empty.
func (c *Client) GetJSON(ctx context.Context, rawurl string, params url.Values, out any) bool {
	if c.HTTP == nil {
		c.HTTP = &http.Client{Timeout: DefaultTimeout}
	}
	u := rawurl
	if len(params) > 0 {
		u += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		c.fail(rawurl, outcomeTransportError, err)
		return false
	}
	resp, err := c.HTTP.Do(req)
	if err != nil {
		c.fail(rawurl, outcomeTransportError, err)
		return false
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		c.logger().WithFields(logrus.Fields{
			"url":    rawurl,
			"status": resp.Status,
		}).Warn("upstream request failed")
		upstreamRequests.WithLabelValues(outcomeHTTPError).Inc()
		return false
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		c.fail(rawurl, outcomeDecodeError, err)
		return false
	}
	upstreamRequests.WithLabelValues(outcomeOK).Inc()
	return true
}

func (c *Client) fail(rawurl, outcome string, err error) {
	c.logger().WithFields(logrus.Fields{
		"url":   rawurl,
		"error": err,
	}).Warn("upstream request failed")
	upstreamRequests.WithLabelValues(outcome).Inc()
}
