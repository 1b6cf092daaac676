package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the counters and gauges one solver run updates.
// Registered against its own registry rather than prometheus.DefaultRegisterer
// so repeated solver runs in the same process (e.g. a test suite) never
// collide on duplicate registration.
type Collector struct {
	registry *prometheus.Registry

	NodesCreated   prometheus.Counter
	NodesProcessed prometheus.Counter
	NodesPruned    prometheus.Counter
	ColumnGenIters prometheus.Counter
	LPObjective    prometheus.Gauge
	BestObjective  prometheus.Gauge
}

// New builds a Collector with a fresh registry.
func New() *Collector {
	reg := prometheus.NewRegistry()
	c := &Collector{
		registry: reg,
		NodesCreated: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcpsolve_nodes_created_total",
			Help: "Number of branch-and-price nodes created.",
		}),
		NodesProcessed: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcpsolve_nodes_processed_total",
			Help: "Number of branch-and-price nodes run through column generation.",
		}),
		NodesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcpsolve_nodes_pruned_total",
			Help: "Number of branch-and-price nodes pruned without branching.",
		}),
		ColumnGenIters: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "pcpsolve_colgen_iterations_total",
			Help: "Number of master/pricing iterations across all nodes.",
		}),
		LPObjective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcpsolve_lp_objective",
			Help: "LP objective of the most recently processed node.",
		}),
		BestObjective: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "pcpsolve_best_integer_objective",
			Help: "Best known integer objective found so far.",
		}),
	}
	reg.MustRegister(c.NodesCreated, c.NodesProcessed, c.NodesPruned, c.ColumnGenIters, c.LPObjective, c.BestObjective)
	return c
}

// Handler returns an http.Handler serving this collector's metrics in the
// Prometheus exposition format.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.registry, promhttp.HandlerOpts{})
}
