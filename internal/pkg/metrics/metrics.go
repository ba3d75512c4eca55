// Package metrics holds the Prometheus collectors of the service. They are
// registered with the default registry on package initialization.
package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	HTTPRequestTotals = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_request_total",
			Help: "Total HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5},
		},
		[]string{"method", "path"},
	)

	HTTPRequestInFlight = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "http_request_in_flight",
			Help: "Current in-flight requests",
		},
	)

	BackendRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "backend_request_duration_seconds",
			Help:    "Directory backend request latency",
			Buckets: []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
		},
		[]string{"method", "resource", "status"},
	)

	BackendRequestsShared = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "backend_requests_shared_total",
			Help: "Backend GET requests served by an identical in-flight request",
		},
	)

	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "cache_lookups_total",
			Help: "Redis cache lookups by outcome (hit, miss, error)",
		},
		[]string{"kind", "outcome"},
	)

	CitySectionFailures = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "city_page_section_failures_total",
			Help: "City page sections that failed to load",
		},
		[]string{"section"},
	)

	RegistrationsSubmitted = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "registrations_submitted_total",
			Help: "Registration submissions by type and outcome",
		},
		[]string{"type", "outcome"},
	)

	RateLimitRejections = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "rate_limit_rejections_total",
			Help: "Write requests rejected by the per IP limiter",
		},
	)

	SitemapURLs = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_urls",
			Help: "Number of URLs in the last generated sitemap",
		},
	)

	SitemapLastGenerated = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "sitemap_last_generated_timestamp_seconds",
			Help: "Unix time of the last successful sitemap generation",
		},
	)
)

func init() {
	prometheus.MustRegister(HTTPRequestTotals)
	prometheus.MustRegister(HTTPRequestDuration)
	prometheus.MustRegister(HTTPRequestInFlight)
	prometheus.MustRegister(BackendRequestDuration)
	prometheus.MustRegister(BackendRequestsShared)
	prometheus.MustRegister(CacheLookups)
	prometheus.MustRegister(CitySectionFailures)
	prometheus.MustRegister(RegistrationsSubmitted)
	prometheus.MustRegister(RateLimitRejections)
	prometheus.MustRegister(SitemapURLs)
	prometheus.MustRegister(SitemapLastGenerated)
}
