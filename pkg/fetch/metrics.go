package fetch

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Request outcomes used as the counter label. The public return value of
// GetJSON collapses all failure kinds into "no data"; the counter keeps the
// distinction for operators.
const (
	outcomeOK             = "ok"
	outcomeHTTPError      = "http_error"
	outcomeTransportError = "transport_error"
	outcomeDecodeError    = "decode_error"
)

var upstreamRequests = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "tuneradar_upstream_requests_total",
	Help: "Upstream catalog and chart requests by outcome.",
}, []string{"outcome"})
