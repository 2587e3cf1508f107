package loader

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics are the loader's Prometheus collectors. A nil *Metrics records nothing.
type Metrics struct {
	loads         *prometheus.CounterVec
	fetchDuration prometheus.Histogram
	players       prometheus.Gauge
}

// NewMetrics creates the collectors and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		loads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "leaderboard",
			Name:      "loads_total",
			Help:      "Leaderboard loads by outcome.",
		}, []string{"outcome"}),
		fetchDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "leaderboard",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and decoding the sheet export.",
			Buckets:   prometheus.DefBuckets,
		}),
		players: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "leaderboard",
			Name:      "players",
			Help:      "Players in the most recent successful load.",
		}),
	}
	reg.MustRegister(m.loads, m.fetchDuration, m.players)
	return m
}

func (m *Metrics) observeFetch(d time.Duration) {
	if m == nil {
		return
	}
	m.fetchDuration.Observe(d.Seconds())
}

func (m *Metrics) loadFailed() {
	if m == nil {
		return
	}
	m.loads.WithLabelValues("error").Inc()
}

func (m *Metrics) loadSucceeded(players int) {
	if m == nil {
		return
	}
	m.loads.WithLabelValues("success").Inc()
	m.players.Set(float64(players))
}
