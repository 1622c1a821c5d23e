package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	OutcomeLive     = "live"
	OutcomeFallback = "fallback"
)

// Metrics 进程内指标，使用独立 Registry，避免测试间重复注册
type Metrics struct {
	registry *prometheus.Registry

	FetchTotal    *prometheus.CounterVec
	FetchDuration prometheus.Histogram
	FetchedItems  prometheus.Gauge
	AskTotal      *prometheus.CounterVec
}

func New() *Metrics {
	reg := prometheus.NewRegistry()
	f := promauto.With(reg)

	return &Metrics{
		registry: reg,
		FetchTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newspulse",
			Name:      "fetch_total",
			Help:      "Headline loads by outcome (live or fallback).",
		}, []string{"source", "outcome"}),
		FetchDuration: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: "newspulse",
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and extracting the source page.",
			Buckets:   prometheus.DefBuckets,
		}),
		FetchedItems: f.NewGauge(prometheus.GaugeOpts{
			Namespace: "newspulse",
			Name:      "fetched_items",
			Help:      "Number of items produced by the most recent load.",
		}),
		AskTotal: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: "newspulse",
			Name:      "ask_total",
			Help:      "Questions answered by backend and status code.",
		}, []string{"backend", "status"}),
	}
}

// Handler 暴露 /metrics
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
