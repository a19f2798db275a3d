// SPDX-License-Identifier: MPL-2.0

// Package metrics records the outcome of one vocab run as Prometheus metrics
// and writes them in text exposition format, for the node_exporter textfile
// collector or any scraper reading files.
package metrics

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gamo/vocab/internal/store"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "vocab"

type (
	// Counts is the part of a loaded vocabulary the metrics observe.
	Counts interface {
		FolderSummary() []store.FolderTypeCount
		Len() int
	}

	// Run holds the metrics of a single run on a private registry.
	Run struct {
		reg      *prometheus.Registry
		records  *prometheus.GaugeVec
		total    prometheus.Gauge
		created  *prometheus.GaugeVec
		renames  prometheus.Counter
		finished prometheus.Gauge
	}
)

// NewRun creates the run metrics.
func NewRun() *Run {
	r := &Run{
		reg: prometheus.NewRegistry(),
		records: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records",
			Help:      "Records per data file.",
		}, []string{"folder", "type"}),
		total: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "records_total",
			Help:      "Records in the flat aggregate.",
		}),
		created: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "created_entries",
			Help:      "Directories and files created by the last materialize.",
		}, []string{"kind"}),
		renames: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "renames_applied_total",
			Help:      "Data files renamed by the rename script.",
		}),
		finished: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the run finished.",
		}),
	}
	r.reg.MustRegister(r.records, r.total, r.created, r.renames, r.finished)
	return r
}

// ObserveMaterialize records how many entries a materialize created.
func (r *Run) ObserveMaterialize(res store.MaterializeResult) {
	r.created.WithLabelValues("dir").Set(float64(len(res.CreatedDirs)))
	r.created.WithLabelValues("file").Set(float64(len(res.CreatedFiles)))
}

// ObserveRenames adds n applied renames.
func (r *Run) ObserveRenames(n int) {
	r.renames.Add(float64(n))
}

// ObserveVocabulary records per-file and total record counts.
func (r *Run) ObserveVocabulary(c Counts) {
	r.records.Reset()
	for _, fc := range c.FolderSummary() {
		r.records.WithLabelValues(fc.Folder.String(), fc.Type.String()).Set(float64(fc.Count))
	}
	r.total.Set(float64(c.Len()))
}

// WriteFile stamps the finish time and writes the metrics to path. The
// file is replaced atomically by the client library.
func (r *Run) WriteFile(path string) error {
	r.finished.SetToCurrentTime()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create metrics directory: %w", err)
	}
	if err := prometheus.WriteToTextfile(path, r.reg); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
