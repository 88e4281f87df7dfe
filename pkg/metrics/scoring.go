package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the sustainability score HTTP handler
	SustainabilityScoreLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "sustainability_score_latency_seconds",
		Help:    "Latency of the sustainability score handler",
		Buckets: prometheus.DefBuckets,
	})

	// Scores served, split by message framing (positive / negative)
	SustainabilityScoresTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "sustainability_scores_total",
		Help: "Total number of sustainability scores computed",
	}, []string{"framing", "group_delivery"})

	// Latency of the preference event HTTP handler
	PreferenceEventLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "preference_event_latency_seconds",
		Help:    "Latency of the preference event handler",
		Buckets: prometheus.DefBuckets,
	})
)

func Init() {
	prometheus.MustRegister(
		SustainabilityScoreLatency,
		SustainabilityScoresTotal,
		PreferenceEventLatency,
	)
}
