// Package metrics provides Prometheus instrumentation for the composer. It
// exposes counters for commit outcomes, gauges mirroring the counter store
// and toggle, and a histogram of delivered message sizes.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// CommitsTotal counts commit attempts, labeled by result: "sent" or
	// "declined".
	CommitsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "compose_commits_total",
		Help: "Total number of commit attempts",
	}, []string{"result"}) // result = "sent", "declined"

	// MessageBytes records the byte length of each delivered message.
	MessageBytes = prometheus.NewHistogram(prometheus.HistogramOpts{
		Name:    "compose_message_bytes",
		Help:    "Byte length of delivered messages",
		Buckets: []float64{1, 8, 32, 64, 128, 256, 512, 1024},
	})

	// CounterValue mirrors the current value of the counter store.
	CounterValue = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "compose_counter_value",
		Help: "Current value of the counter store",
	})

	// HelpVisible is 1 while the help footer is shown.
	HelpVisible = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "compose_help_visible",
		Help: "Whether the help footer is visible (1) or hidden (0)",
	})
)

func init() {
	prometheus.MustRegister(
		CommitsTotal,
		MessageBytes,
		CounterValue,
		HelpVisible,
	)
}

// ObserveCommit records a commit outcome. It matches the composer's
// observer signature.
func ObserveCommit(result string) {
	CommitsTotal.WithLabelValues(result).Inc()
}

// ObserveMessage records the size of a delivered message.
func ObserveMessage(text string) {
	MessageBytes.Observe(float64(len(text)))
}

// SetCounter mirrors the counter store value.
func SetCounter(count int) {
	CounterValue.Set(float64(count))
}

// SetHelpVisible mirrors the help toggle.
func SetHelpVisible(visible bool) {
	if visible {
		HelpVisible.Set(1)
		return
	}
	HelpVisible.Set(0)
}

// Handler returns the Prometheus metrics HTTP handler.
func Handler() http.Handler {
	return promhttp.Handler()
}
