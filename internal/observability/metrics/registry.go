// Package metrics provides centralized Prometheus metrics for the application.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// HTTP metrics track request patterns and performance
var (
	// HTTPRequestsTotal counts total HTTP requests by method, path, and status
	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "path", "status"},
	)

	// HTTPRequestDuration measures HTTP request duration in seconds
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Business metrics track ingestion and summarization activity
var (
	// ArticlesFetchedTotal counts articles fetched per source type
	ArticlesFetchedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_fetched_total",
			Help: "Total number of articles fetched from sources",
		},
		[]string{"source_type"},
	)

	// ArticlesSavedTotal counts articles persisted after deduplication
	ArticlesSavedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_saved_total",
			Help: "Total number of articles saved to the database",
		},
		[]string{"source_type"},
	)

	// ArticlesDuplicatedTotal counts articles skipped as duplicates
	ArticlesDuplicatedTotal = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "articles_duplicated_total",
			Help: "Total number of articles skipped because their URL already existed",
		},
	)

	// ArticlesSummarizedTotal counts summarization attempts by status
	ArticlesSummarizedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "articles_summarized_total",
			Help: "Total number of article summarization attempts",
		},
		[]string{"status"},
	)

	// SummarizationDuration measures time to summarize an article
	SummarizationDuration = promauto.NewHistogram(
		prometheus.HistogramOpts{
			Name:    "summarization_duration_seconds",
			Help:    "Time taken to summarize an article",
			Buckets: prometheus.ExponentialBuckets(0.5, 2, 10),
		},
	)

	// DigestsGeneratedTotal counts digest generations by status
	DigestsGeneratedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "digests_generated_total",
			Help: "Total number of news digest generations",
		},
		[]string{"status"},
	)

	// IngestDuration measures end-to-end ingestion pipeline runs
	IngestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "ingest_duration_seconds",
			Help:    "Time taken by a full ingestion pipeline run",
			Buckets: prometheus.ExponentialBuckets(0.1, 2, 12),
		},
		[]string{"source_type"},
	)

	// ContentFetchAttemptsTotal counts readability content fetches by outcome
	ContentFetchAttemptsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "content_fetch_attempts_total",
			Help: "Total number of full-content fetch attempts",
		},
		[]string{"status"},
	)
)
