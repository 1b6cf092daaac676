// Package metrics exposes Prometheus counters and gauges for one solver
// run: nodes created/processed/pruned, column-generation iterations, and
// the current and best-known LP objectives.
package metrics
