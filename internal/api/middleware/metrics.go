package middleware

import (
	"net/http"
	"sync/atomic"
)

// MetricsCollector counts requests by outcome.
type MetricsCollector struct {
	requests       atomic.Int64
	clientErrors   atomic.Int64
	serverErrors   atomic.Int64
	upstreamErrors atomic.Int64
}

// MetricsSnapshot is a point-in-time copy of the counters.
type MetricsSnapshot struct {
	Requests       int64 `json:"request_count"`
	ClientErrors   int64 `json:"client_error_count"`
	ServerErrors   int64 `json:"server_error_count"`
	UpstreamErrors int64 `json:"upstream_error_count"`
}

func NewMetricsCollector() *MetricsCollector {
	return &MetricsCollector{}
}

// Middleware returns middleware that counts requests and errors.
// 502 responses (provider failures) are also counted as upstream errors.
func (mc *MetricsCollector) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mc.requests.Add(1)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		switch {
		case rw.statusCode >= 500:
			mc.serverErrors.Add(1)
			if rw.statusCode == http.StatusBadGateway {
				mc.upstreamErrors.Add(1)
			}
		case rw.statusCode >= 400:
			mc.clientErrors.Add(1)
		}
	})
}

func (mc *MetricsCollector) Snapshot() MetricsSnapshot {
	return MetricsSnapshot{
		Requests:       mc.requests.Load(),
		ClientErrors:   mc.clientErrors.Load(),
		ServerErrors:   mc.serverErrors.Load(),
		UpstreamErrors: mc.upstreamErrors.Load(),
	}
}
