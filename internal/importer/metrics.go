package importer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	importsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "torneos_imports_total",
		Help: "Import calls by outcome.",
	}, []string{"outcome"})

	rowsCreated = promauto.NewCounter(prometheus.CounterOpts{
		Name: "torneos_import_rows_created_total",
		Help: "Result rows created by imports.",
	})

	rowsSkipped = promauto.NewCounter(prometheus.CounterOpts{
		Name: "torneos_import_rows_skipped_total",
		Help: "Rows skipped as duplicates.",
	})

	rowsRejected = promauto.NewCounter(prometheus.CounterOpts{
		Name: "torneos_import_rows_rejected_total",
		Help: "Rows rejected by validation or reference resolution.",
	})
)

func observeReport(r *Report) {
	outcome := "ok"
	switch {
	case r.DryRun:
		outcome = "dry_run"
	case r.Created == 0 && len(r.Errors) > 0:
		outcome = "rejected"
	}
	importsTotal.WithLabelValues(outcome).Inc()
	rowsCreated.Add(float64(r.Created))
	rowsSkipped.Add(float64(r.Skipped))
	if rejected := len(r.Errors) - r.Skipped; rejected > 0 {
		rowsRejected.Add(float64(rejected))
	}
}
