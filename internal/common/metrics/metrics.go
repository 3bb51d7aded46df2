package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	QueriesAnalyzed = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medical_queries_analyzed_total",
			Help: "Total number of queries analyzed, by detected intent",
		},
		[]string{"intent"},
	)

	RiskAssessments = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medical_risk_assessments_total",
			Help: "Total number of patient risk assessments, by overall risk level",
		},
		[]string{"risk_level"},
	)

	SearchRequests = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medical_search_requests_total",
			Help: "Total number of intelligent search requests, by status",
		},
		[]string{"status"},
	)

	PipelineDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "medical_pipeline_duration_seconds",
			Help: "Duration of pipeline stages in seconds",
		},
		[]string{"stage"},
	)

	CacheOperations = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "medical_cache_operations_total",
			Help: "Response cache operations, by result (hit, miss, error)",
		},
		[]string{"result"},
	)
)
