// Package metrics publishes benchmark timings as Prometheus metrics.
package metrics

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/prometheus/common/expfmt"

	"github.com/psantana5/tempo/pkg/report"
)

// Exporter holds a private registry with per-workload call duration
// histograms and call counters.
type Exporter struct {
	registry  *promclient.Registry
	durations *promclient.HistogramVec
	calls     *promclient.CounterVec
	startTime time.Time
}

// NewExporter creates an Exporter with an empty registry.
func NewExporter() *Exporter {
	e := &Exporter{
		registry:  promclient.NewRegistry(),
		startTime: time.Now(),
	}
	e.durations = promclient.NewHistogramVec(promclient.HistogramOpts{
		Name:    "tempo_call_duration_seconds",
		Help:    "Wall-clock duration of timed calls",
		Buckets: promclient.DefBuckets,
	}, []string{"workload"})
	e.calls = promclient.NewCounterVec(promclient.CounterOpts{
		Name: "tempo_calls_total",
		Help: "Total number of timed calls",
	}, []string{"workload"})
	uptime := promclient.NewGaugeFunc(promclient.GaugeOpts{
		Name: "tempo_uptime_seconds",
		Help: "Time since the exporter started",
	}, func() float64 { return time.Since(e.startTime).Seconds() })

	e.registry.MustRegister(e.durations, e.calls, uptime)
	return e
}

// Observe records one timed call.
func (e *Exporter) Observe(workload string, d time.Duration) {
	e.durations.WithLabelValues(workload).Observe(d.Seconds())
	e.calls.WithLabelValues(workload).Inc()
}

// ObserveReport records every entry of a finished report.
func (e *Exporter) ObserveReport(r *report.Report) {
	for _, entry := range r.Entries {
		e.durations.WithLabelValues(r.Workload).Observe(entry.Seconds)
		e.calls.WithLabelValues(r.Workload).Inc()
	}
}

// Handler returns the /metrics HTTP handler for this exporter's registry.
func (e *Exporter) Handler() http.Handler {
	return promhttp.HandlerFor(e.registry, promhttp.HandlerOpts{})
}

// Text renders the current metrics in Prometheus text exposition format.
func (e *Exporter) Text() (string, error) {
	metricFamilies, err := e.registry.Gather()
	if err != nil {
		return "", fmt.Errorf("gathering metrics: %w", err)
	}

	var buf bytes.Buffer
	encoder := expfmt.NewEncoder(&buf, expfmt.NewFormat(expfmt.TypeTextPlain))
	for _, mf := range metricFamilies {
		if err := encoder.Encode(mf); err != nil {
			return "", fmt.Errorf("encoding metric %s: %w", mf.GetName(), err)
		}
	}
	return buf.String(), nil
}

// Routes returns a router serving /metrics and /healthz.
func (e *Exporter) Routes() *mux.Router {
	router := mux.NewRouter()
	router.Handle("/metrics", e.Handler()).Methods(http.MethodGet)
	router.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintln(w, "ok")
	}).Methods(http.MethodGet)
	return router
}
