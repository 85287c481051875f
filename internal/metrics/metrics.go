package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"motionview/internal/gallery"
)

// Metrics holds the viewer's Prometheus collectors.
type Metrics struct {
	Registry       *prometheus.Registry
	QueriesTotal   *prometheus.CounterVec
	QueryDuration  prometheus.Histogram
	StaleResponses prometheus.Counter
	CardClicks     prometheus.Counter
	Sessions       prometheus.Gauge
}

// NewMetrics registers the collectors on a fresh registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		QueriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "motionview",
			Name:      "queries_total",
			Help:      "Total number of queries by outcome",
		}, []string{"outcome"}),
		QueryDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "motionview",
			Name:      "query_duration_seconds",
			Help:      "Time from query submission to render",
			Buckets:   prometheus.DefBuckets,
		}),
		StaleResponses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "motionview",
			Name:      "stale_responses_total",
			Help:      "Responses dropped because a newer query was issued",
		}),
		CardClicks: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "motionview",
			Name:      "card_clicks_total",
			Help:      "Cards opened in the player",
		}),
		Sessions: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "motionview",
			Name:      "sessions",
			Help:      "Page sessions currently held",
		}),
	}
	m.Registry.MustRegister(m.QueriesTotal, m.QueryDuration, m.StaleResponses, m.CardClicks, m.Sessions)
	return m
}

func (m *Metrics) ObserveQuery(outcome gallery.Outcome, elapsed time.Duration) {
	m.QueriesTotal.WithLabelValues(string(outcome)).Inc()
	if outcome == gallery.OutcomeStale {
		m.StaleResponses.Inc()
		return
	}
	m.QueryDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveClick() {
	m.CardClicks.Inc()
}
