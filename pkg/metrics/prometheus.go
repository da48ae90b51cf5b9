// Package metrics exports statement executions as Prometheus metrics.
package metrics

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/pthm/pgupsert/pkg/query"
)

// Prometheus implements query.Reporter.
type Prometheus struct {
	duration  *prometheus.HistogramVec
	total     *prometheus.CounterVec
	proposed  *prometheus.CounterVec
	affected  *prometheus.CounterVec
	conflicts *prometheus.CounterVec
}

var _ query.Reporter = (*Prometheus)(nil)

// NewPrometheus creates the collectors and registers them with reg.
func NewPrometheus(reg prometheus.Registerer) (*Prometheus, error) {
	p := &Prometheus{
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "pgupsert_statement_duration_seconds",
				Help:    "Duration of statement execution in seconds",
				Buckets: prometheus.ExponentialBuckets(0.0005, 2, 15), // 0.5ms to ~8s
			},
			[]string{"kind", "table", "conflict", "status"},
		),
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pgupsert_statements_total",
				Help: "Total number of statements executed",
			},
			[]string{"kind", "table", "conflict", "status"},
		),
		proposed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pgupsert_rows_proposed_total",
				Help: "Rows proposed for insertion",
			},
			[]string{"table"},
		),
		affected: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pgupsert_rows_affected_total",
				Help: "Rows inserted or updated",
			},
			[]string{"kind", "table"},
		),
		conflicts: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "pgupsert_rows_skipped_total",
				Help: "Proposed rows skipped by ON CONFLICT DO NOTHING",
			},
			[]string{"table"},
		),
	}

	for _, c := range []prometheus.Collector{p.duration, p.total, p.proposed, p.affected, p.conflicts} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// ReportExecution records one execution.
func (p *Prometheus) ReportExecution(_ context.Context, e query.Execution) {
	status := "success"
	if e.Err != nil {
		status = "error"
		if query.IsUniqueViolation(e.Err) {
			status = "unique_violation"
		}
	}

	p.duration.WithLabelValues(e.Kind, e.Table, e.Conflict, status).Observe(e.Duration.Seconds())
	p.total.WithLabelValues(e.Kind, e.Table, e.Conflict, status).Inc()
	if e.Err != nil {
		return
	}

	if e.Kind == "insert" {
		p.proposed.WithLabelValues(e.Table).Add(float64(e.Rows))
	}
	// Affected is unknown for queries.
	if e.Query {
		return
	}
	p.affected.WithLabelValues(e.Kind, e.Table).Add(float64(e.Affected))
	if e.Kind == "insert" && e.Conflict == "nothing" && int64(e.Rows) > e.Affected {
		p.conflicts.WithLabelValues(e.Table).Add(float64(int64(e.Rows) - e.Affected))
	}
}
