// Package metrics records load cycle measurements as Prometheus metrics.
package metrics

import (
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"go.trai.ch/pkgraph/internal/core/domain"
	"go.trai.ch/pkgraph/internal/core/ports"
	"go.trai.ch/zerr"
)

// Observer implements ports.LoadObserver on a private Prometheus registry.
type Observer struct {
	registry *prometheus.Registry

	loaderDuration *prometheus.HistogramVec
	loaderPackages *prometheus.GaugeVec
	loaderErrors   *prometheus.CounterVec
	loadTotal      *prometheus.CounterVec
	loadDuration   prometheus.Histogram
	graphRecords   *prometheus.GaugeVec
}

var _ ports.LoadObserver = (*Observer)(nil)

// NewObserver creates an Observer with its own registry.
func NewObserver() *Observer {
	o := &Observer{
		registry: prometheus.NewRegistry(),
		loaderDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pkgraph_loader_duration_seconds",
				Help:    "Time taken by a loader to build its packages.",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"loader"},
		),
		loaderPackages: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pkgraph_loader_packages",
				Help: "Number of packages built by a loader in the last load cycle.",
			},
			[]string{"loader"},
		),
		loaderErrors: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkgraph_loader_errors_total",
				Help: "Number of failed loader runs.",
			},
			[]string{"loader"},
		),
		loadTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pkgraph_load_total",
				Help: "Number of load cycles by result.",
			},
			[]string{"result"},
		),
		loadDuration: prometheus.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "pkgraph_load_duration_seconds",
				Help:    "Time taken by a complete load cycle.",
				Buckets: prometheus.DefBuckets,
			},
		),
		graphRecords: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "pkgraph_graph_records",
				Help: "Number of records in the graph after the last load cycle.",
			},
			[]string{"kind"},
		),
	}

	o.registry.MustRegister(
		o.loaderDuration,
		o.loaderPackages,
		o.loaderErrors,
		o.loadTotal,
		o.loadDuration,
		o.graphRecords,
	)
	return o
}

// Registry returns the registry holding the observer's metrics.
func (o *Observer) Registry() *prometheus.Registry {
	return o.registry
}

// LoaderFinished records one loader run.
func (o *Observer) LoaderFinished(source string, packages int, elapsed time.Duration, err error) {
	o.loaderDuration.WithLabelValues(source).Observe(elapsed.Seconds())
	o.loaderPackages.WithLabelValues(source).Set(float64(packages))
	if err != nil {
		o.loaderErrors.WithLabelValues(source).Inc()
	}
}

// LoadFinished records one load cycle and the resulting graph size.
func (o *Observer) LoadFinished(stats domain.Stats, elapsed time.Duration, err error) {
	result := "success"
	if err != nil {
		result = "failure"
	}
	o.loadTotal.WithLabelValues(result).Inc()
	o.loadDuration.Observe(elapsed.Seconds())

	o.graphRecords.WithLabelValues("packages").Set(float64(stats.Packages))
	o.graphRecords.WithLabelValues("provides").Set(float64(stats.Provides))
	o.graphRecords.WithLabelValues("requires").Set(float64(stats.Requires))
	o.graphRecords.WithLabelValues("upgrades").Set(float64(stats.Upgrades))
	o.graphRecords.WithLabelValues("conflicts").Set(float64(stats.Conflicts))
	o.graphRecords.WithLabelValues("links").Set(float64(stats.Links))
}

// WriteText writes every metric in the Prometheus text exposition format.
func (o *Observer) WriteText(w io.Writer) error {
	families, err := o.registry.Gather()
	if err != nil {
		return zerr.Wrap(err, "gather metrics")
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return zerr.Wrap(err, "write metrics")
		}
	}
	return nil
}
