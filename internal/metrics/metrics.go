// Package metrics exposes search activity as Prometheus metrics fed by lifecycle hooks.
package metrics

import (
	"context"
	"fmt"
	"io"

	"github.com/aretw0/statespace/pkg/domain"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
)

const namespace = "statespace"

// Collector owns the search metrics. Register it once, then attach Hooks to every run.
type Collector struct {
	searches   *prometheus.CounterVec
	expansions *prometheus.CounterVec
	generated  *prometheus.CounterVec
	frontier   *prometheus.GaugeVec
	duration   *prometheus.HistogramVec
	pathLength *prometheus.HistogramVec
}

// NewCollector creates the metrics and registers them on reg.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	c := &Collector{
		searches: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "searches_total",
				Help:      "Finished searches by algorithm and outcome",
			},
			[]string{"algorithm", "status"},
		),
		expansions: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "expansions_total",
				Help:      "Expanded configurations",
			},
			[]string{"algorithm"},
		),
		generated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "generated_total",
				Help:      "Generated successors, duplicates included",
			},
			[]string{"algorithm"},
		),
		frontier: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Name:      "frontier_size",
				Help:      "Frontier size at the most recent expansion",
			},
			[]string{"algorithm"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "search_duration_seconds",
				Help:      "Wall time of finished searches",
				Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 10),
			},
			[]string{"algorithm"},
		),
		pathLength: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "path_length",
				Help:      "Configurations on the reported path",
				Buckets:   prometheus.LinearBuckets(1, 4, 10),
			},
			[]string{"algorithm"},
		),
	}

	for _, col := range []prometheus.Collector{c.searches, c.expansions, c.generated, c.frontier, c.duration, c.pathLength} {
		if err := reg.Register(col); err != nil {
			return nil, fmt.Errorf("register search metrics: %w", err)
		}
	}
	return c, nil
}

// Hooks returns lifecycle hooks recording into the collector.
func (c *Collector) Hooks() domain.Hooks {
	return domain.Hooks{
		OnExpand: func(_ context.Context, e *domain.ExpandEvent) {
			alg := string(e.Algorithm)
			c.expansions.WithLabelValues(alg).Inc()
			c.generated.WithLabelValues(alg).Add(float64(e.Successors))
			c.frontier.WithLabelValues(alg).Set(float64(e.FrontierSize))
		},
		OnSearchEnd: func(_ context.Context, e *domain.SearchEvent) {
			alg := string(e.Algorithm)
			c.searches.WithLabelValues(alg, string(e.Status)).Inc()
			c.duration.WithLabelValues(alg).Observe(e.Duration.Seconds())
			c.pathLength.WithLabelValues(alg).Observe(float64(e.PathLen))
		},
	}
}

// WriteText gathers g and writes every family in the Prometheus text exposition format.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("gather metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("encode metric %s: %w", mf.GetName(), err)
		}
	}
	return nil
}
