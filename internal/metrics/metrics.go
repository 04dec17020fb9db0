// Package metrics records vet runs as Prometheus metrics and writes them in
// the node-exporter textfile format.
package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Result labels for FilesTotal.
const (
	ResultValid   = "valid"
	ResultInvalid = "invalid"
	ResultError   = "error"
)

// Severity labels for FindingsTotal.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Recorder owns a private registry so repeated runs and tests never collide
// with the global default registry.
type Recorder struct {
	registry *prometheus.Registry

	// FilesTotal counts vetted documents by result
	FilesTotal *prometheus.CounterVec

	// FindingsTotal counts findings by severity
	FindingsTotal *prometheus.CounterVec

	// Duration tracks per-document vet time
	Duration prometheus.Histogram
}

// NewRecorder creates a Recorder with its metrics registered.
func NewRecorder() *Recorder {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Recorder{
		registry: reg,
		FilesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themecfg_files_total",
			Help: "Theme documents vetted, by result",
		}, []string{"result"}),
		FindingsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Name: "themecfg_findings_total",
			Help: "Findings reported by vet, by severity",
		}, []string{"severity"}),
		Duration: factory.NewHistogram(prometheus.HistogramOpts{
			Name:    "themecfg_vet_duration_seconds",
			Help:    "Time spent vetting one document",
			Buckets: []float64{.001, .005, .01, .05, .1, .5, 1, 5},
		}),
	}
}

// ObserveFile records one vetted document.
func (r *Recorder) ObserveFile(result string, errs, warnings int, d time.Duration) {
	r.FilesTotal.WithLabelValues(result).Inc()
	r.FindingsTotal.WithLabelValues(SeverityError).Add(float64(errs))
	r.FindingsTotal.WithLabelValues(SeverityWarning).Add(float64(warnings))
	r.Duration.Observe(d.Seconds())
}

// Registry exposes the underlying registry.
func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// WriteTextfile writes all metrics to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.registry); err != nil {
		return fmt.Errorf("writing metrics to %s: %w", path, err)
	}
	return nil
}
