package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// Latency of the prediction HTTP handler
	PredictionLatency = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "examscore_prediction_latency_seconds",
		Help:    "Latency of the prediction handler",
		Buckets: prometheus.DefBuckets,
	})

	// Predictions served, by predictor path and resulting score band
	PredictionsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "examscore_predictions_total",
			Help: "Total predictions served by mode and score band",
		},
		[]string{"mode", "band"},
	)

	// 1 while the process runs on the heuristic fallback path
	DegradedMode = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "examscore_degraded_mode",
		Help: "Whether prediction artifacts failed to load (1 = heuristic mode)",
	})
)

func Init() {
	prometheus.MustRegister(
		PredictionLatency,
		PredictionsTotal,
		DegradedMode,
	)
}
