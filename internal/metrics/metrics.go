// Package metrics defines the Prometheus instruments for the analysis
// pipeline. All instruments register against the default registerer and are
// served by the /metrics endpoint.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the business metrics recorded by the orchestrator.
type Metrics struct {
	AnalysesTotal          *prometheus.CounterVec
	AnalysisDuration       *prometheus.HistogramVec
	SEOScore               prometheus.Histogram
	ProviderRequestsTotal  *prometheus.CounterVec
	KeywordInsertionsTotal prometheus.Counter
}

// New registers and returns the service metrics under the given namespace.
func New(namespace string) *Metrics {
	return &Metrics{
		AnalysesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "analyses_total",
			Help:      "Total number of analyze operations by status",
		}, []string{"status"}),
		AnalysisDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "analysis_duration_seconds",
			Help:      "Duration of analyze operations including the provider call",
			Buckets:   prometheus.DefBuckets,
		}, []string{"status"}),
		SEOScore: promauto.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "seo_score",
			Help:      "Distribution of computed SEO scores",
			Buckets:   prometheus.LinearBuckets(0, 10, 11),
		}),
		ProviderRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "provider_requests_total",
			Help:      "Language-analysis provider calls by provider and status",
		}, []string{"provider", "status"}),
		KeywordInsertionsTotal: promauto.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "keyword_insertions_total",
			Help:      "Total number of keyword insertions performed",
		}),
	}
}
