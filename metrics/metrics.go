// Package metrics records pathfinding activity as Prometheus metrics.
//
// A Recorder registers its collectors on a caller-supplied registerer, so
// tests and embedding programs can keep them off the global registry.
package metrics

import (
	"context"
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/katalvlaran/lvpath/nodegraph"
	"github.com/katalvlaran/lvpath/search"
)

// Outcome label values.
const (
	OutcomeFound   = "found"
	OutcomeNoPath  = "no_path"
	OutcomeBudget  = "budget"
	OutcomeAborted = "aborted"
	OutcomeError   = "error"
)

// Recorder holds the search collectors.
type Recorder struct {
	searches *prometheus.CounterVec
	expanded prometheus.Histogram
	cost     prometheus.Histogram
	length   prometheus.Histogram
	duration *prometheus.HistogramVec
}

// NewRecorder creates the collectors under namespace and registers them on
// reg. It panics if any collector is already registered there.
func NewRecorder(reg prometheus.Registerer, namespace string) *Recorder {
	f := promauto.With(reg)

	return &Recorder{
		searches: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "total",
			Help:      "Searches by outcome",
		}, []string{"outcome"}),
		expanded: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "expanded_nodes",
			Help:      "Nodes expanded per search",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 10),
		}),
		cost: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "path_cost",
			Help:      "Total cost of found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		length: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "path_nodes",
			Help:      "Node count of found paths",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 16),
		}),
		duration: f.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "search",
			Name:      "duration_seconds",
			Help:      "Search wall time in seconds",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
	}
}

// Outcome classifies the return values of a search.
func Outcome(res search.Result, err error) string {
	switch {
	case err == nil && res.Found:
		return OutcomeFound
	case err == nil:
		return OutcomeNoPath
	case errors.Is(err, search.ErrStepBudget):
		return OutcomeBudget
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		return OutcomeAborted
	default:
		return OutcomeError
	}
}

// Observe records one finished search.
func (r *Recorder) Observe(res search.Result, err error, elapsed time.Duration) {
	outcome := Outcome(res, err)
	r.searches.WithLabelValues(outcome).Inc()
	r.duration.WithLabelValues(outcome).Observe(elapsed.Seconds())
	if err != nil {
		return
	}
	r.expanded.Observe(float64(res.Expanded))
	if res.Found {
		r.cost.Observe(res.Cost)
		r.length.Observe(float64(len(res.Path)))
	}
}

// FindPath runs search.FindPath and records its outcome.
func (r *Recorder) FindPath(g *nodegraph.Graph, start, goal nodegraph.NodeID, opts ...search.Option) (search.Result, error) {
	began := time.Now()
	res, err := search.FindPath(g, start, goal, opts...)
	r.Observe(res, err, time.Since(began))

	return res, err
}
