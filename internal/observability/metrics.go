// Package observability provides Prometheus metrics for the application.
// A CLI run is too short to be scraped, so metrics are flushed to a
// node_exporter textfile on exit.
package observability

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Probe results.
const (
	ProbeAvailable = "available"
	ProbeLiveClip  = "live_clip"
	ProbeFailed    = "failed"
)

// Download results.
const (
	DownloadSuccess     = "success"
	DownloadFailed      = "failed"
	DownloadCancelled   = "cancelled"
	DownloadInterrupted = "interrupted"
)

// Metrics holds all application metrics.
type Metrics struct {
	registry *prometheus.Registry

	ProbeTotal       *prometheus.CounterVec
	DownloadsTotal   *prometheus.CounterVec
	DownloadDuration prometheus.Histogram
}

// New creates all application metrics on a private registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &Metrics{
		registry: reg,
		ProbeTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ytclip",
			Name:      "probe_total",
			Help:      "Total number of live clip probes by result",
		}, []string{"result"}),
		DownloadsTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: "ytclip",
			Name:      "downloads_total",
			Help:      "Total number of downloads by result",
		}, []string{"result"}),
		DownloadDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace: "ytclip",
			Name:      "download_duration_seconds",
			Help:      "Histogram of yt-dlp download duration in seconds",
			Buckets:   []float64{1, 5, 10, 30, 60, 120, 300, 600, 1800},
		}),
	}
}

// Registry returns the registry holding the metrics.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// ObserveProbe counts a probe result.
func (m *Metrics) ObserveProbe(result string) {
	m.ProbeTotal.WithLabelValues(result).Inc()
}

// ObserveDownload counts a download result and, when started is set, its duration.
func (m *Metrics) ObserveDownload(result string, started time.Time) {
	m.DownloadsTotal.WithLabelValues(result).Inc()

	if !started.IsZero() {
		m.DownloadDuration.Observe(time.Since(started).Seconds())
	}
}

// WriteTextfile writes the metrics to path atomically. An empty path is a no-op.
func (m *Metrics) WriteTextfile(path string) error {
	if path == "" {
		return nil
	}

	if err := prometheus.WriteToTextfile(path, m.registry); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}

	return nil
}
